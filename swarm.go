package dockside

import (
	"context"
	"fmt"

	"github.com/docker/docker/api/types/swarm"
)

// Swarm represents the daemon's swarm membership. A fresh model knows
// nothing about the swarm; call Reload to fetch its state into Attrs.
type Swarm struct {
	// Attrs is the raw daemon payload describing the swarm. It is empty
	// until Init or Reload.
	Attrs swarm.Swarm

	client *Client
}

// ID returns the swarm's identifier, or an empty string before Init or
// Reload.
func (s *Swarm) ID() string {
	return s.Attrs.ID
}

// Init makes the daemon a single-node swarm and returns the new node's ID.
// The model is reloaded with the new swarm's state.
func (s *Swarm) Init(ctx context.Context, req swarm.InitRequest) (string, error) {
	nodeID, err := s.client.api.SwarmInit(ctx, req)
	if err != nil {
		return "", fmt.Errorf("failed to initialize swarm: %w\nLeave the current swarm first if the daemon is already a member", err)
	}

	if err := s.Reload(ctx); err != nil {
		return nodeID, err
	}
	return nodeID, nil
}

// Join makes the daemon join an existing swarm.
//
// The model is not reloaded: workers may not inspect the swarm, so there is
// nothing to fetch unless the daemon joined as a manager.
func (s *Swarm) Join(ctx context.Context, req swarm.JoinRequest) error {
	err := s.client.api.SwarmJoin(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to join swarm: %w\nCheck the join token and that a manager is reachable", err)
	}
	return nil
}

// Leave makes the daemon leave its swarm. Force is required on a manager.
func (s *Swarm) Leave(ctx context.Context, force bool) error {
	err := s.client.api.SwarmLeave(ctx, force)
	if err != nil {
		return fmt.Errorf("failed to leave swarm: %w\nManagers must set force", err)
	}
	return nil
}

// Update replaces the swarm's spec. The version in Attrs is sent with the
// update, so Reload first when the swarm may have changed since the model
// was built.
func (s *Swarm) Update(ctx context.Context, spec swarm.Spec, flags swarm.UpdateFlags) error {
	err := s.client.api.SwarmUpdate(ctx, s.Attrs.Version, spec, flags)
	if err != nil {
		return fmt.Errorf("failed to update swarm: %w\nReload the swarm and retry if its version is out of date", err)
	}
	return nil
}

// UnlockKey returns the key needed to unlock a manager after its daemon
// restarts with swarm autolock enabled.
func (s *Swarm) UnlockKey(ctx context.Context) (string, error) {
	resp, err := s.client.api.SwarmGetUnlockKey(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get swarm unlock key: %w", err)
	}
	return resp.UnlockKey, nil
}

// Unlock unlocks a locked swarm manager.
func (s *Swarm) Unlock(ctx context.Context, key string) error {
	err := s.client.api.SwarmUnlock(ctx, swarm.UnlockRequest{UnlockKey: key})
	if err != nil {
		return fmt.Errorf("failed to unlock swarm: %w", err)
	}
	return nil
}

// Reload fetches the swarm's state from the daemon into Attrs. Only managers
// can inspect the swarm.
func (s *Swarm) Reload(ctx context.Context) error {
	resp, err := s.client.api.SwarmInspect(ctx)
	if err != nil {
		return fmt.Errorf("failed to inspect swarm: %w\nOnly swarm managers can inspect the swarm", err)
	}

	s.Attrs = resp
	return nil
}
