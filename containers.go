package dockside

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/containerd/platforms"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/api/types/mount"
	"github.com/docker/docker/api/types/network"
	"github.com/docker/docker/api/types/strslice"
	"github.com/docker/go-connections/nat"
	"github.com/docker/go-units"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
	"github.com/sirupsen/logrus"
)

// ContainerCollection manages containers on the daemon.
type ContainerCollection struct {
	client *Client
}

// CreateOptions describes a container to create. Only Image is required.
type CreateOptions struct {
	// Image is the reference of the image to create the container from.
	Image string

	// Name assigns a name to the container. The daemon generates one when
	// empty.
	Name string

	// Command overrides the image's default command.
	Command []string

	// Entrypoint overrides the image's entrypoint.
	Entrypoint []string

	// Env sets environment variables, each entry in KEY=value form.
	Env []string

	// Labels sets metadata labels on the container.
	Labels map[string]string

	// User sets the user (or UID, optionally with a group) that commands
	// run as inside the container.
	User string

	// WorkingDir sets the working directory inside the container.
	WorkingDir string

	// Hostname sets the container's hostname.
	Hostname string

	// Tty allocates a pseudo-TTY.
	Tty bool

	// OpenStdin keeps the container's stdin open.
	OpenStdin bool

	// StopSignal overrides the signal used to stop the container.
	StopSignal string

	// StopTimeout overrides the seconds to wait for the container to stop
	// before killing it.
	StopTimeout *int

	// Healthcheck overrides the image's health check.
	Healthcheck *container.HealthConfig

	// Ports publishes container ports, each entry in the same form the
	// command line accepts: "8080:80", "127.0.0.1:8080:80/tcp", "80".
	Ports []string

	// Binds mounts host paths or volumes, each entry in
	// "host-src:container-dest[:options]" form.
	Binds []string

	// Mounts attaches mounts in their structured form.
	Mounts []mount.Mount

	// Network connects the container to a network.
	Network string

	// NetworkAliases adds network-scoped aliases on Network.
	NetworkAliases []string

	// ExtraHosts adds entries to /etc/hosts, each in "host:ip" form.
	ExtraHosts []string

	// DNS sets custom DNS servers.
	DNS []string

	// Tmpfs mounts tmpfs filesystems, mapping container path to mount
	// options.
	Tmpfs map[string]string

	// CapAdd grants additional kernel capabilities.
	CapAdd []string

	// CapDrop removes kernel capabilities.
	CapDrop []string

	// Privileged gives extended privileges to the container.
	Privileged bool

	// ReadOnly mounts the container's root filesystem read-only.
	ReadOnly bool

	// AutoRemove makes the daemon remove the container when it exits.
	AutoRemove bool

	// RestartPolicy controls restart behavior on exit.
	RestartPolicy container.RestartPolicy

	// LogConfig selects the logging driver and its options.
	LogConfig container.LogConfig

	// Memory limits memory in human-readable form, for example "512m".
	Memory string

	// ShmSize sizes /dev/shm in human-readable form, for example "64m".
	ShmSize string

	// CPUs limits how many CPUs the container may use.
	CPUs float64

	// Platform selects the platform when the image is multi-platform.
	Platform *ocispec.Platform
}

// configs translates the options into the daemon's wire configuration.
func (o CreateOptions) configs() (*container.Config, *container.HostConfig, *network.NetworkingConfig, error) {
	config := &container.Config{
		Image:       o.Image,
		Cmd:         strslice.StrSlice(o.Command),
		Entrypoint:  strslice.StrSlice(o.Entrypoint),
		Env:         o.Env,
		Labels:      o.Labels,
		User:        o.User,
		WorkingDir:  o.WorkingDir,
		Hostname:    o.Hostname,
		Tty:         o.Tty,
		OpenStdin:   o.OpenStdin,
		StopSignal:  o.StopSignal,
		StopTimeout: o.StopTimeout,
		Healthcheck: o.Healthcheck,
	}

	hostConfig := &container.HostConfig{
		Binds:          o.Binds,
		Mounts:         o.Mounts,
		NetworkMode:    container.NetworkMode(o.Network),
		ExtraHosts:     o.ExtraHosts,
		DNS:            o.DNS,
		Tmpfs:          o.Tmpfs,
		CapAdd:         strslice.StrSlice(o.CapAdd),
		CapDrop:        strslice.StrSlice(o.CapDrop),
		Privileged:     o.Privileged,
		ReadonlyRootfs: o.ReadOnly,
		AutoRemove:     o.AutoRemove,
		RestartPolicy:  o.RestartPolicy,
		LogConfig:      o.LogConfig,
	}

	if len(o.Ports) > 0 {
		exposed, bindings, err := nat.ParsePortSpecs(o.Ports)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to parse port specs: %w\nExpected entries like \"8080:80\" or \"127.0.0.1:8080:80/tcp\"", err)
		}
		config.ExposedPorts = exposed
		hostConfig.PortBindings = bindings
	}

	if o.Memory != "" {
		limit, err := units.RAMInBytes(o.Memory)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to parse memory limit %q: %w", o.Memory, err)
		}
		hostConfig.Resources.Memory = limit
	}

	if o.ShmSize != "" {
		size, err := units.RAMInBytes(o.ShmSize)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to parse shm size %q: %w", o.ShmSize, err)
		}
		hostConfig.ShmSize = size
	}

	if o.CPUs != 0 {
		hostConfig.Resources.NanoCPUs = int64(o.CPUs * 1e9)
	}

	var networkingConfig *network.NetworkingConfig
	if o.Network != "" {
		networkingConfig = &network.NetworkingConfig{
			EndpointsConfig: map[string]*network.EndpointSettings{
				o.Network: {Aliases: o.NetworkAliases},
			},
		}
	}

	return config, hostConfig, networkingConfig, nil
}

// Get returns the container identified by ID or name.
func (c *ContainerCollection) Get(ctx context.Context, containerID string) (*Container, error) {
	if containerID == "" {
		return nil, ErrNullResource
	}

	resp, err := c.client.api.ContainerInspect(ctx, containerID)
	if err != nil {
		return nil, fmt.Errorf("failed to inspect container %q: %w", containerID, err)
	}

	return newContainerFromInspect(c.client, resp), nil
}

// List returns containers known to the daemon. Only running containers are
// included unless options say otherwise.
//
// The returned models carry the sparse attributes of the list endpoint; call
// Reload on a model to fetch its full state.
func (c *ContainerCollection) List(ctx context.Context, options container.ListOptions) ([]*Container, error) {
	summaries, err := c.client.api.ContainerList(ctx, options)
	if err != nil {
		return nil, fmt.Errorf("failed to list containers: %w", err)
	}

	containers := make([]*Container, 0, len(summaries))
	for _, summary := range summaries {
		containers = append(containers, newContainerFromSummary(c.client, summary))
	}
	return containers, nil
}

// Create creates a container without starting it and returns its model.
func (c *ContainerCollection) Create(ctx context.Context, options CreateOptions) (*Container, error) {
	config, hostConfig, networkingConfig, err := options.configs()
	if err != nil {
		return nil, err
	}

	resp, err := c.client.api.ContainerCreate(ctx, config, hostConfig, networkingConfig, options.Platform, options.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to create container from image %q: %w\nEnsure the image exists and the configuration is valid", options.Image, err)
	}

	for _, warning := range resp.Warnings {
		logrus.WithField("container", resp.ID).Warn(warning)
	}

	return c.Get(ctx, resp.ID)
}

// RunOptions describes a container to create and start.
type RunOptions struct {
	CreateOptions

	// Detach returns as soon as the container started instead of waiting
	// for it to exit.
	Detach bool

	// Remove removes the container after it exited. Ignored when Detach is
	// set; use AutoRemove to have the daemon clean up a detached container.
	Remove bool

	// Stdout receives the container's standard output after it exited.
	Stdout io.Writer

	// Stderr receives the container's standard error after it exited.
	Stderr io.Writer
}

// Run creates a container, pulls its image first if the daemon does not have
// it, and starts it.
//
// Detached runs return the running container immediately. Otherwise Run waits
// for the container to exit, copies its output to Stdout and Stderr when they
// are set, and returns a *ContainerError if the exit status was non-zero.
func (c *ContainerCollection) Run(ctx context.Context, options RunOptions) (*Container, error) {
	created, err := c.Create(ctx, options.CreateOptions)
	if err != nil && IsNotFound(err) {
		logrus.WithField("image", options.Image).Debug("image not found locally, pulling")

		_, err = c.client.Images().Pull(ctx, options.Image, PullOptions{Platform: platformString(options.Platform)})
		if err != nil {
			return nil, err
		}
		created, err = c.Create(ctx, options.CreateOptions)
	}
	if err != nil {
		return nil, err
	}

	if err := created.Start(ctx); err != nil {
		return nil, err
	}

	if options.Detach {
		return created, nil
	}

	status, err := created.Wait(ctx, container.WaitConditionNotRunning)
	if err != nil {
		return nil, err
	}

	if options.Stdout != nil || options.Stderr != nil {
		if err := created.demuxLogs(ctx, options.Tty, options.Stdout, options.Stderr); err != nil {
			return nil, err
		}
	}

	var runErr error
	if status.StatusCode != 0 {
		runErr = &ContainerError{
			ContainerID: created.ID,
			Image:       options.Image,
			Command:     options.Command,
			ExitCode:    status.StatusCode,
			Stderr:      created.stderrTail(ctx, options),
		}
	}

	if options.Remove {
		if err := created.Remove(ctx, container.RemoveOptions{}); err != nil {
			if runErr != nil {
				logrus.WithField("container", created.ID).Warnf("failed to remove container: %v", err)
			} else {
				runErr = err
			}
		}
	}

	if runErr != nil {
		return nil, runErr
	}
	return created, nil
}

// Prune removes stopped containers and reports what was deleted.
func (c *ContainerCollection) Prune(ctx context.Context, pruneFilters filters.Args) (container.PruneReport, error) {
	report, err := c.client.api.ContainersPrune(ctx, pruneFilters)
	if err != nil {
		return container.PruneReport{}, fmt.Errorf("failed to prune containers: %w", err)
	}
	return report, nil
}

// stderrTail collects the container's stderr for a ContainerError. The logs
// are gone when the daemon auto-removes the container, and a TTY merges both
// streams, so in those cases there is nothing separate to report.
func (c *Container) stderrTail(ctx context.Context, options RunOptions) string {
	if options.AutoRemove || options.Tty {
		return ""
	}

	var buf bytes.Buffer
	if err := c.demuxLogs(ctx, false, nil, &buf); err != nil {
		return ""
	}
	return strings.TrimSpace(buf.String())
}

func platformString(platform *ocispec.Platform) string {
	if platform == nil {
		return ""
	}
	return platforms.Format(*platform)
}
