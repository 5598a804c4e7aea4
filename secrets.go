package dockside

import (
	"context"
	"fmt"

	"github.com/docker/docker/api/types/swarm"
)

// SecretCollection manages swarm secrets. The daemon must be a swarm
// manager.
type SecretCollection struct {
	client *Client
}

// Get returns the secret identified by ID or name.
func (c *SecretCollection) Get(ctx context.Context, secretID string) (*Secret, error) {
	if secretID == "" {
		return nil, ErrNullResource
	}

	resp, _, err := c.client.api.SecretInspectWithRaw(ctx, secretID)
	if err != nil {
		return nil, fmt.Errorf("failed to inspect secret %q: %w", secretID, err)
	}

	return newSecret(c.client, resp), nil
}

// List returns the swarm's secrets. Secret values are never included; the
// daemon only reports metadata.
func (c *SecretCollection) List(ctx context.Context, options swarm.SecretListOptions) ([]*Secret, error) {
	resp, err := c.client.api.SecretList(ctx, options)
	if err != nil {
		return nil, fmt.Errorf("failed to list secrets: %w", err)
	}

	secrets := make([]*Secret, 0, len(resp))
	for _, secret := range resp {
		secrets = append(secrets, newSecret(c.client, secret))
	}
	return secrets, nil
}

// Create creates a secret from the given spec and returns its model.
func (c *SecretCollection) Create(ctx context.Context, spec swarm.SecretSpec) (*Secret, error) {
	resp, err := c.client.api.SecretCreate(ctx, spec)
	if err != nil {
		return nil, fmt.Errorf("failed to create secret %q: %w", spec.Name, err)
	}

	return c.Get(ctx, resp.ID)
}

// Secret is a local representation of a swarm secret. Its value stays on the
// swarm's managers; only metadata is available here.
type Secret struct {
	ID   string
	Name string

	// Attrs is the raw daemon payload backing the fields above.
	Attrs swarm.Secret

	client *Client
}

func newSecret(client *Client, resp swarm.Secret) *Secret {
	return &Secret{
		ID:     resp.ID,
		Name:   resp.Spec.Name,
		Attrs:  resp,
		client: client,
	}
}

// ShortID returns the truncated form of the secret's ID.
func (s *Secret) ShortID() string {
	if len(s.ID) > shortIDLength {
		return s.ID[:shortIDLength]
	}
	return s.ID
}

// Remove deletes the secret from the swarm.
func (s *Secret) Remove(ctx context.Context) error {
	err := s.client.api.SecretRemove(ctx, s.ID)
	if err != nil {
		return fmt.Errorf("failed to remove secret %q: %w\nRemove services using the secret first", s.ID, err)
	}
	return nil
}

// Reload fetches the secret's current state from the swarm and updates the
// model in place.
func (s *Secret) Reload(ctx context.Context) error {
	resp, _, err := s.client.api.SecretInspectWithRaw(ctx, s.ID)
	if err != nil {
		return fmt.Errorf("failed to inspect secret %q: %w", s.ID, err)
	}

	*s = *newSecret(s.client, resp)
	return nil
}
