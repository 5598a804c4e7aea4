package dockside

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/docker/cli/cli/config"
	"github.com/docker/cli/cli/config/configfile"
	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/events"
	"github.com/docker/docker/api/types/registry"
	"github.com/docker/docker/api/types/system"
	"github.com/docker/docker/client"
	"github.com/docker/go-connections/tlsconfig"
)

// Client is the entry point for talking to a Docker daemon. It holds a single
// low-level API client and hands out resource collections bound to it.
//
// The Client adds no locking of its own. The underlying connection is shared
// by everything reached through this Client, and must not be used after Close.
type Client struct {
	api APIClient

	configFile   *configfile.ConfigFile
	credstoreEnv map[string]string
}

// New constructs a Client from the given options. With no options it connects
// to the default local daemon socket with a 60 second request timeout and
// negotiates the API version on first use.
//
// Connection errors are not detected here: construction only fails on invalid
// parameters, such as a malformed host URL or unreadable TLS material.
func New(opts ...Opt) (*Client, error) {
	o, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	return newClient(o)
}

func newClient(o *options) (*Client, error) {
	api := o.api
	if api == nil {
		var clientOpts []client.Opt

		if o.tls != nil {
			httpClient, err := newTLSHTTPClient(o.tls, o.timeout)
			if err != nil {
				return nil, err
			}
			clientOpts = append(clientOpts, client.WithHTTPClient(httpClient))
		}
		if o.host != "" {
			clientOpts = append(clientOpts, client.WithHost(o.host))
		}
		clientOpts = append(clientOpts, client.WithTimeout(o.timeout))
		if o.userAgent != "" {
			clientOpts = append(clientOpts, client.WithUserAgent(o.userAgent))
		}
		if len(o.headers) > 0 {
			clientOpts = append(clientOpts, client.WithHTTPHeaders(o.headers))
		}
		if o.version != "" && o.version != APIVersionAuto {
			clientOpts = append(clientOpts, client.WithVersion(o.version))
		} else {
			clientOpts = append(clientOpts, client.WithAPIVersionNegotiation())
		}

		cli, err := client.NewClientWithOpts(clientOpts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create docker client: %w\nEnsure Docker is running and DOCKER_HOST is set correctly", err)
		}
		api = cli
	}

	return &Client{
		api:          api,
		configFile:   loadConfigFile(o.configDir),
		credstoreEnv: o.credstoreEnv,
	}, nil
}

// newTLSHTTPClient builds the HTTP client used when TLS options are given.
func newTLSHTTPClient(opts *tlsconfig.Options, timeout time.Duration) (*http.Client, error) {
	tlsClientConfig, err := tlsconfig.Client(*opts)
	if err != nil {
		return nil, fmt.Errorf("failed to load TLS configuration: %w\nCheck that the certificate files exist and are readable", err)
	}

	return &http.Client{
		Transport: &http.Transport{TLSClientConfig: tlsClientConfig},
		Timeout:   timeout,
	}, nil
}

// loadConfigFile reads the registry configuration used for credential
// resolution. A missing or unreadable file yields an empty configuration.
func loadConfigFile(configDir string) *configfile.ConfigFile {
	if configDir != "" {
		configFile, err := config.Load(configDir)
		if err != nil {
			return configfile.New(config.ConfigFileName)
		}
		return configFile
	}
	return config.LoadDefaultConfigFile(io.Discard)
}

// API exposes the low-level client. Operations without a high-level
// counterpart, such as exec or checkpoint management, are reached here.
func (c *Client) API() APIClient {
	return c.api
}

// Configs returns a collection for managing swarm configs. Each call returns
// a new collection bound to this Client.
func (c *Client) Configs() *ConfigCollection {
	return &ConfigCollection{client: c}
}

// Containers returns a collection for managing containers. Each call returns
// a new collection bound to this Client.
func (c *Client) Containers() *ContainerCollection {
	return &ContainerCollection{client: c}
}

// Images returns a collection for managing images. Each call returns a new
// collection bound to this Client.
func (c *Client) Images() *ImageCollection {
	return &ImageCollection{client: c}
}

// Networks returns a collection for managing networks. Each call returns a
// new collection bound to this Client.
func (c *Client) Networks() *NetworkCollection {
	return &NetworkCollection{client: c}
}

// Nodes returns a collection for managing swarm nodes. Each call returns a
// new collection bound to this Client.
func (c *Client) Nodes() *NodeCollection {
	return &NodeCollection{client: c}
}

// Plugins returns a collection for managing plugins. Each call returns a new
// collection bound to this Client.
func (c *Client) Plugins() *PluginCollection {
	return &PluginCollection{client: c}
}

// Secrets returns a collection for managing swarm secrets. Each call returns
// a new collection bound to this Client.
func (c *Client) Secrets() *SecretCollection {
	return &SecretCollection{client: c}
}

// Services returns a collection for managing swarm services. Each call
// returns a new collection bound to this Client.
func (c *Client) Services() *ServiceCollection {
	return &ServiceCollection{client: c}
}

// Swarm returns a handle on the daemon's swarm membership. Each call returns
// a new handle bound to this Client; call Reload on it to fetch state.
func (c *Client) Swarm() *Swarm {
	return &Swarm{client: c}
}

// Volumes returns a collection for managing volumes. Each call returns a new
// collection bound to this Client.
func (c *Client) Volumes() *VolumeCollection {
	return &VolumeCollection{client: c}
}

// Events streams real-time events from the daemon until ctx is cancelled.
// Both channels are the low-level client's own; the error channel receives at
// most one error, then the stream is over.
func (c *Client) Events(ctx context.Context, options events.ListOptions) (<-chan events.Message, <-chan error) {
	return c.api.Events(ctx, options)
}

// DiskUsage returns data usage information by resource type, like
// "docker system df".
func (c *Client) DiskUsage(ctx context.Context, options types.DiskUsageOptions) (types.DiskUsage, error) {
	return c.api.DiskUsage(ctx, options)
}

// Info returns system-wide information about the daemon.
func (c *Client) Info(ctx context.Context) (system.Info, error) {
	return c.api.Info(ctx)
}

// Login authenticates against a registry. On success the response may carry
// an identity token to use in place of the password.
func (c *Client) Login(ctx context.Context, auth registry.AuthConfig) (registry.AuthenticateOKBody, error) {
	return c.api.RegistryLogin(ctx, auth)
}

// Ping checks that the daemon is reachable and returns negotiated metadata.
func (c *Client) Ping(ctx context.Context) (types.Ping, error) {
	return c.api.Ping(ctx)
}

// Version returns version information about the daemon.
func (c *Client) Version(ctx context.Context) (types.Version, error) {
	return c.api.ServerVersion(ctx)
}

// Close releases the underlying connection. The Client and every collection
// or model bound to it must not be used afterwards; the transport will fail
// subsequent calls.
func (c *Client) Close() error {
	return c.api.Close()
}
