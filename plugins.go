package dockside

import (
	"context"
	"fmt"
	"io"

	"github.com/distribution/reference"
	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/api/types/registry"
)

// PluginCollection manages plugins on the daemon.
type PluginCollection struct {
	client *Client
}

// Get returns the plugin with the given name.
func (c *PluginCollection) Get(ctx context.Context, name string) (*Plugin, error) {
	if name == "" {
		return nil, ErrNullResource
	}

	resp, _, err := c.client.api.PluginInspectWithRaw(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to inspect plugin %q: %w", name, err)
	}

	return newPlugin(c.client, resp), nil
}

// List returns the plugins installed on the daemon.
func (c *PluginCollection) List(ctx context.Context, filter filters.Args) ([]*Plugin, error) {
	resp, err := c.client.api.PluginList(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list plugins: %w", err)
	}

	plugins := make([]*Plugin, 0, len(resp))
	for _, plugin := range resp {
		plugins = append(plugins, newPlugin(c.client, plugin))
	}
	return plugins, nil
}

// PluginInstallOptions describes how to install a plugin.
type PluginInstallOptions struct {
	// LocalName renames the plugin on install. Empty keeps the remote
	// reference as the name.
	LocalName string

	// Disabled leaves the plugin disabled after install.
	Disabled bool

	// Args sets plugin settings at install time, each entry in KEY=value
	// form.
	Args []string

	// AcceptPermissions decides whether to grant the privileges the
	// plugin requests. Leaving it nil grants everything.
	AcceptPermissions func(ctx context.Context, privileges types.PluginPrivileges) (bool, error)

	// Auth overrides the credentials the client would otherwise resolve
	// from its configuration for the plugin's registry.
	Auth *registry.AuthConfig

	// Progress receives the daemon's progress stream when set.
	Progress io.Writer
}

// Install fetches a plugin from a registry and returns its model. The
// requested permissions are granted outright unless options carry an
// AcceptPermissions callback to vet them.
func (c *PluginCollection) Install(ctx context.Context, remoteRef string, options PluginInstallOptions) (*Plugin, error) {
	name := options.LocalName
	if name == "" {
		name = remoteRef
	}

	encodedAuth, err := c.authHeader(remoteRef, options.Auth)
	if err != nil {
		return nil, err
	}

	body, err := c.client.api.PluginInstall(ctx, name, types.PluginInstallOptions{
		RemoteRef:             remoteRef,
		Disabled:              options.Disabled,
		AcceptAllPermissions:  options.AcceptPermissions == nil,
		AcceptPermissionsFunc: options.AcceptPermissions,
		RegistryAuth:          encodedAuth,
		Args:                  options.Args,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to install plugin %q: %w\nVerify the reference and your registry credentials", remoteRef, err)
	}
	defer body.Close()

	if _, err := followStream(ctx, body, options.Progress, nil); err != nil {
		return nil, fmt.Errorf("failed to install plugin %q: %w", remoteRef, err)
	}

	return c.Get(ctx, name)
}

// authHeader resolves registry credentials for a plugin reference. Plugin
// names that do not parse as references resolve to no credentials.
func (c *PluginCollection) authHeader(ref string, override *registry.AuthConfig) (string, error) {
	if override != nil {
		return encodeAuthConfig(*override)
	}

	named, err := reference.ParseNormalizedNamed(ref)
	if err != nil {
		return "", nil
	}
	return c.client.registryAuthHeader(named)
}

// Plugin is a local representation of a plugin on the daemon.
//
// The exported fields are a snapshot taken when the model was built; call
// Reload to refresh them.
type Plugin struct {
	ID   string
	Name string

	// Enabled reports whether the plugin was enabled when the model was
	// built.
	Enabled bool

	// Attrs is the raw daemon payload backing the fields above.
	Attrs types.Plugin

	client *Client
}

func newPlugin(client *Client, resp *types.Plugin) *Plugin {
	plugin := &Plugin{client: client}
	if resp != nil {
		plugin.ID = resp.ID
		plugin.Name = resp.Name
		plugin.Enabled = resp.Enabled
		plugin.Attrs = *resp
	}
	return plugin
}

// ShortID returns the truncated form of the plugin's ID.
func (p *Plugin) ShortID() string {
	if len(p.ID) > shortIDLength {
		return p.ID[:shortIDLength]
	}
	return p.ID
}

// Enable activates the plugin. Timeout is in seconds; zero uses the daemon's
// default.
func (p *Plugin) Enable(ctx context.Context, timeout int) error {
	err := p.client.api.PluginEnable(ctx, p.Name, types.PluginEnableOptions{Timeout: timeout})
	if err != nil {
		return fmt.Errorf("failed to enable plugin %q: %w", p.Name, err)
	}
	return nil
}

// Disable deactivates the plugin. Force disables it even while containers
// use it.
func (p *Plugin) Disable(ctx context.Context, force bool) error {
	err := p.client.api.PluginDisable(ctx, p.Name, types.PluginDisableOptions{Force: force})
	if err != nil {
		return fmt.Errorf("failed to disable plugin %q: %w", p.Name, err)
	}
	return nil
}

// Configure changes the plugin's settings, each entry in KEY=value form. The
// plugin must be disabled first.
func (p *Plugin) Configure(ctx context.Context, args []string) error {
	err := p.client.api.PluginSet(ctx, p.Name, args)
	if err != nil {
		return fmt.Errorf("failed to configure plugin %q: %w\nDisable the plugin before changing its settings", p.Name, err)
	}
	return nil
}

// Push uploads the plugin to its registry.
func (p *Plugin) Push(ctx context.Context, progress io.Writer) error {
	encodedAuth, err := p.client.Plugins().authHeader(p.Name, nil)
	if err != nil {
		return err
	}

	body, err := p.client.api.PluginPush(ctx, p.Name, encodedAuth)
	if err != nil {
		return fmt.Errorf("failed to push plugin %q: %w\nLog in to the registry and check that the repository exists", p.Name, err)
	}
	defer body.Close()

	if _, err := followStream(ctx, body, progress, nil); err != nil {
		return fmt.Errorf("failed to push plugin %q: %w", p.Name, err)
	}
	return nil
}

// Upgrade replaces the plugin with the version at the given remote
// reference, granting every permission the new version requests. The plugin
// must be disabled first. The model is reloaded afterwards.
func (p *Plugin) Upgrade(ctx context.Context, remoteRef string, progress io.Writer) error {
	encodedAuth, err := p.client.Plugins().authHeader(remoteRef, nil)
	if err != nil {
		return err
	}

	body, err := p.client.api.PluginUpgrade(ctx, p.Name, types.PluginInstallOptions{
		RemoteRef:            remoteRef,
		AcceptAllPermissions: true,
		RegistryAuth:         encodedAuth,
	})
	if err != nil {
		return fmt.Errorf("failed to upgrade plugin %q: %w\nDisable the plugin before upgrading it", p.Name, err)
	}
	defer body.Close()

	if _, err := followStream(ctx, body, progress, nil); err != nil {
		return fmt.Errorf("failed to upgrade plugin %q: %w", p.Name, err)
	}

	return p.Reload(ctx)
}

// Remove deletes the plugin from the daemon.
func (p *Plugin) Remove(ctx context.Context, force bool) error {
	err := p.client.api.PluginRemove(ctx, p.Name, types.PluginRemoveOptions{Force: force})
	if err != nil {
		return fmt.Errorf("failed to remove plugin %q: %w\nDisable the plugin first or set force", p.Name, err)
	}
	return nil
}

// Reload fetches the plugin's current state from the daemon and updates the
// model in place.
func (p *Plugin) Reload(ctx context.Context) error {
	resp, _, err := p.client.api.PluginInspectWithRaw(ctx, p.Name)
	if err != nil {
		return fmt.Errorf("failed to inspect plugin %q: %w", p.Name, err)
	}

	*p = *newPlugin(p.client, resp)
	return nil
}
