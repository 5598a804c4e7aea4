package dockside

import (
	"context"
	"fmt"

	"github.com/docker/docker/api/types/swarm"
)

// ConfigCollection manages swarm configs. The daemon must be a swarm
// manager.
type ConfigCollection struct {
	client *Client
}

// Get returns the config identified by ID or name.
func (c *ConfigCollection) Get(ctx context.Context, configID string) (*Config, error) {
	if configID == "" {
		return nil, ErrNullResource
	}

	resp, _, err := c.client.api.ConfigInspectWithRaw(ctx, configID)
	if err != nil {
		return nil, fmt.Errorf("failed to inspect config %q: %w", configID, err)
	}

	return newConfig(c.client, resp), nil
}

// List returns the swarm's configs.
func (c *ConfigCollection) List(ctx context.Context, options swarm.ConfigListOptions) ([]*Config, error) {
	resp, err := c.client.api.ConfigList(ctx, options)
	if err != nil {
		return nil, fmt.Errorf("failed to list configs: %w", err)
	}

	configs := make([]*Config, 0, len(resp))
	for _, config := range resp {
		configs = append(configs, newConfig(c.client, config))
	}
	return configs, nil
}

// Create creates a config from the given spec and returns its model.
func (c *ConfigCollection) Create(ctx context.Context, spec swarm.ConfigSpec) (*Config, error) {
	resp, err := c.client.api.ConfigCreate(ctx, spec)
	if err != nil {
		return nil, fmt.Errorf("failed to create config %q: %w", spec.Name, err)
	}

	return c.Get(ctx, resp.ID)
}

// Config is a local representation of a swarm config. Unlike secrets, the
// daemon reports a config's data in its spec.
type Config struct {
	ID   string
	Name string

	// Attrs is the raw daemon payload backing the fields above.
	Attrs swarm.Config

	client *Client
}

func newConfig(client *Client, resp swarm.Config) *Config {
	return &Config{
		ID:     resp.ID,
		Name:   resp.Spec.Name,
		Attrs:  resp,
		client: client,
	}
}

// ShortID returns the truncated form of the config's ID.
func (c *Config) ShortID() string {
	if len(c.ID) > shortIDLength {
		return c.ID[:shortIDLength]
	}
	return c.ID
}

// Remove deletes the config from the swarm.
func (c *Config) Remove(ctx context.Context) error {
	err := c.client.api.ConfigRemove(ctx, c.ID)
	if err != nil {
		return fmt.Errorf("failed to remove config %q: %w\nRemove services using the config first", c.ID, err)
	}
	return nil
}

// Reload fetches the config's current state from the swarm and updates the
// model in place.
func (c *Config) Reload(ctx context.Context) error {
	resp, _, err := c.client.api.ConfigInspectWithRaw(ctx, c.ID)
	if err != nil {
		return fmt.Errorf("failed to inspect config %q: %w", c.ID, err)
	}

	*c = *newConfig(c.client, resp)
	return nil
}
