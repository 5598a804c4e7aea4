package dockside

import (
	"context"
	"fmt"

	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/api/types/network"
	"github.com/sirupsen/logrus"
)

// NetworkCollection manages networks on the daemon.
type NetworkCollection struct {
	client *Client
}

// Get returns the network identified by ID or name.
func (c *NetworkCollection) Get(ctx context.Context, networkID string, options network.InspectOptions) (*Network, error) {
	if networkID == "" {
		return nil, ErrNullResource
	}

	resp, err := c.client.api.NetworkInspect(ctx, networkID, options)
	if err != nil {
		return nil, fmt.Errorf("failed to inspect network %q: %w", networkID, err)
	}

	return newNetwork(c.client, resp), nil
}

// List returns networks known to the daemon.
func (c *NetworkCollection) List(ctx context.Context, options network.ListOptions) ([]*Network, error) {
	summaries, err := c.client.api.NetworkList(ctx, options)
	if err != nil {
		return nil, fmt.Errorf("failed to list networks: %w", err)
	}

	networks := make([]*Network, 0, len(summaries))
	for _, summary := range summaries {
		networks = append(networks, newNetwork(c.client, summary))
	}
	return networks, nil
}

// Create creates a network and returns its model.
func (c *NetworkCollection) Create(ctx context.Context, name string, options network.CreateOptions) (*Network, error) {
	resp, err := c.client.api.NetworkCreate(ctx, name, options)
	if err != nil {
		return nil, fmt.Errorf("failed to create network %q: %w", name, err)
	}

	if resp.Warning != "" {
		logrus.WithField("network", name).Warn(resp.Warning)
	}

	return c.Get(ctx, resp.ID, network.InspectOptions{})
}

// Prune removes unused networks and reports what was deleted.
func (c *NetworkCollection) Prune(ctx context.Context, pruneFilter filters.Args) (network.PruneReport, error) {
	report, err := c.client.api.NetworksPrune(ctx, pruneFilter)
	if err != nil {
		return network.PruneReport{}, fmt.Errorf("failed to prune networks: %w", err)
	}
	return report, nil
}

// Network is a local representation of a network on the daemon.
//
// The exported fields are a snapshot taken when the model was built; call
// Reload to refresh them.
type Network struct {
	ID   string
	Name string

	// Attrs is the raw daemon payload backing the fields above.
	Attrs network.Inspect

	client *Client
}

func newNetwork(client *Client, resp network.Inspect) *Network {
	return &Network{
		ID:     resp.ID,
		Name:   resp.Name,
		Attrs:  resp,
		client: client,
	}
}

// ShortID returns the truncated form of the network's ID.
func (n *Network) ShortID() string {
	if len(n.ID) > shortIDLength {
		return n.ID[:shortIDLength]
	}
	return n.ID
}

// Containers returns models for the containers connected to the network.
// The membership comes from the snapshot in Attrs; Reload first for a
// current view.
func (n *Network) Containers(ctx context.Context) ([]*Container, error) {
	containers := make([]*Container, 0, len(n.Attrs.Containers))
	for containerID := range n.Attrs.Containers {
		ctr, err := n.client.Containers().Get(ctx, containerID)
		if err != nil {
			return nil, err
		}
		containers = append(containers, ctr)
	}
	return containers, nil
}

// Connect attaches a container to the network. Endpoint settings such as
// aliases or a static address may be nil.
func (n *Network) Connect(ctx context.Context, containerID string, config *network.EndpointSettings) error {
	err := n.client.api.NetworkConnect(ctx, n.ID, containerID, config)
	if err != nil {
		return fmt.Errorf("failed to connect container %q to network %q: %w", containerID, n.ID, err)
	}
	return nil
}

// Disconnect detaches a container from the network.
func (n *Network) Disconnect(ctx context.Context, containerID string, force bool) error {
	err := n.client.api.NetworkDisconnect(ctx, n.ID, containerID, force)
	if err != nil {
		return fmt.Errorf("failed to disconnect container %q from network %q: %w", containerID, n.ID, err)
	}
	return nil
}

// Remove deletes the network from the daemon.
func (n *Network) Remove(ctx context.Context) error {
	err := n.client.api.NetworkRemove(ctx, n.ID)
	if err != nil {
		return fmt.Errorf("failed to remove network %q: %w\nDisconnect remaining containers first", n.ID, err)
	}
	return nil
}

// Reload fetches the network's current state from the daemon and updates the
// model in place.
func (n *Network) Reload(ctx context.Context) error {
	resp, err := n.client.api.NetworkInspect(ctx, n.ID, network.InspectOptions{})
	if err != nil {
		return fmt.Errorf("failed to inspect network %q: %w", n.ID, err)
	}

	*n = *newNetwork(n.client, resp)
	return nil
}
