package dockside

import (
	"context"
	"fmt"

	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/api/types/volume"
	"github.com/sirupsen/logrus"
)

// VolumeCollection manages volumes on the daemon.
type VolumeCollection struct {
	client *Client
}

// Get returns the volume with the given name.
func (c *VolumeCollection) Get(ctx context.Context, name string) (*Volume, error) {
	if name == "" {
		return nil, ErrNullResource
	}

	resp, err := c.client.api.VolumeInspect(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to inspect volume %q: %w", name, err)
	}

	return newVolume(c.client, resp), nil
}

// List returns volumes known to the daemon.
func (c *VolumeCollection) List(ctx context.Context, options volume.ListOptions) ([]*Volume, error) {
	resp, err := c.client.api.VolumeList(ctx, options)
	if err != nil {
		return nil, fmt.Errorf("failed to list volumes: %w", err)
	}

	for _, warning := range resp.Warnings {
		logrus.Warn(warning)
	}

	volumes := make([]*Volume, 0, len(resp.Volumes))
	for _, vol := range resp.Volumes {
		volumes = append(volumes, newVolume(c.client, *vol))
	}
	return volumes, nil
}

// Create creates a volume and returns its model. The daemon generates a name
// when options leave it empty.
func (c *VolumeCollection) Create(ctx context.Context, options volume.CreateOptions) (*Volume, error) {
	resp, err := c.client.api.VolumeCreate(ctx, options)
	if err != nil {
		return nil, fmt.Errorf("failed to create volume %q: %w", options.Name, err)
	}

	return newVolume(c.client, resp), nil
}

// Prune removes unused local volumes and reports what was deleted.
func (c *VolumeCollection) Prune(ctx context.Context, pruneFilter filters.Args) (volume.PruneReport, error) {
	report, err := c.client.api.VolumesPrune(ctx, pruneFilter)
	if err != nil {
		return volume.PruneReport{}, fmt.Errorf("failed to prune volumes: %w", err)
	}
	return report, nil
}

// Volume is a local representation of a volume on the daemon. Volumes are
// identified by name.
//
// The exported fields are a snapshot taken when the model was built; call
// Reload to refresh them.
type Volume struct {
	Name string

	// Attrs is the raw daemon payload backing the fields above.
	Attrs volume.Volume

	client *Client
}

func newVolume(client *Client, resp volume.Volume) *Volume {
	return &Volume{
		Name:   resp.Name,
		Attrs:  resp,
		client: client,
	}
}

// Remove deletes the volume from the daemon. Force removes it even when the
// daemon thinks it is in use.
func (v *Volume) Remove(ctx context.Context, force bool) error {
	err := v.client.api.VolumeRemove(ctx, v.Name, force)
	if err != nil {
		return fmt.Errorf("failed to remove volume %q: %w\nRemove containers using the volume first", v.Name, err)
	}
	return nil
}

// Reload fetches the volume's current state from the daemon and updates the
// model in place.
func (v *Volume) Reload(ctx context.Context) error {
	resp, err := v.client.api.VolumeInspect(ctx, v.Name)
	if err != nil {
		return fmt.Errorf("failed to inspect volume %q: %w", v.Name, err)
	}

	*v = *newVolume(v.client, resp)
	return nil
}
