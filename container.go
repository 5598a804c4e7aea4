package dockside

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/pkg/stdcopy"
)

// shortIDLength is the number of identifier characters the command line
// prints, and what the ShortID methods on models return.
const shortIDLength = 12

// Container is a local representation of a container on the daemon.
//
// The exported fields are a snapshot taken when the model was built; they are
// not updated by operations on the model. Call Reload to refresh them.
type Container struct {
	// ID is the container's full 64-character identifier.
	ID string

	// Name is the container's name without the leading slash the daemon
	// reports.
	Name string

	// ImageID identifies the image the container was created from.
	ImageID string

	// Status is the container's state, for example "running" or "exited".
	Status string

	// Labels holds the container's metadata labels.
	Labels map[string]string

	// Attrs is the raw daemon payload backing the fields above. Models
	// built by List carry only what the list endpoint returns until Reload
	// fills in the rest.
	Attrs container.InspectResponse

	client *Client
}

func newContainerFromInspect(client *Client, resp container.InspectResponse) *Container {
	ctr := &Container{Attrs: resp, client: client}
	if resp.ContainerJSONBase != nil {
		ctr.ID = resp.ID
		ctr.Name = strings.TrimPrefix(resp.Name, "/")
		ctr.ImageID = resp.Image
		if resp.State != nil {
			ctr.Status = resp.State.Status
		}
	}
	if resp.Config != nil {
		ctr.Labels = resp.Config.Labels
	}
	return ctr
}

func newContainerFromSummary(client *Client, summary container.Summary) *Container {
	var name string
	if len(summary.Names) > 0 {
		name = strings.TrimPrefix(summary.Names[0], "/")
	}
	return &Container{
		ID:      summary.ID,
		Name:    name,
		ImageID: summary.ImageID,
		Status:  summary.State,
		Labels:  summary.Labels,
		client:  client,
	}
}

// ShortID returns the truncated form of the container's ID, the same twelve
// characters the command line prints.
func (c *Container) ShortID() string {
	if len(c.ID) > shortIDLength {
		return c.ID[:shortIDLength]
	}
	return c.ID
}

// Reload fetches the container's current state from the daemon and updates
// the model in place.
func (c *Container) Reload(ctx context.Context) error {
	resp, err := c.client.api.ContainerInspect(ctx, c.ID)
	if err != nil {
		return fmt.Errorf("failed to inspect container %q: %w", c.ID, err)
	}

	*c = *newContainerFromInspect(c.client, resp)
	return nil
}

// Start starts the container.
func (c *Container) Start(ctx context.Context) error {
	err := c.client.api.ContainerStart(ctx, c.ID, container.StartOptions{})
	if err != nil {
		return fmt.Errorf("failed to start container %q: %w\nInspect the container for configuration problems", c.ID, err)
	}
	return nil
}

// Stop stops the container, killing it after the configured timeout.
func (c *Container) Stop(ctx context.Context, options container.StopOptions) error {
	err := c.client.api.ContainerStop(ctx, c.ID, options)
	if err != nil {
		return fmt.Errorf("failed to stop container %q: %w", c.ID, err)
	}
	return nil
}

// Restart stops and starts the container.
func (c *Container) Restart(ctx context.Context, options container.StopOptions) error {
	err := c.client.api.ContainerRestart(ctx, c.ID, options)
	if err != nil {
		return fmt.Errorf("failed to restart container %q: %w", c.ID, err)
	}
	return nil
}

// Kill sends a signal to the container. An empty signal sends the daemon's
// default, SIGKILL.
func (c *Container) Kill(ctx context.Context, signal string) error {
	err := c.client.api.ContainerKill(ctx, c.ID, signal)
	if err != nil {
		return fmt.Errorf("failed to kill container %q: %w", c.ID, err)
	}
	return nil
}

// Pause suspends all processes in the container.
func (c *Container) Pause(ctx context.Context) error {
	err := c.client.api.ContainerPause(ctx, c.ID)
	if err != nil {
		return fmt.Errorf("failed to pause container %q: %w", c.ID, err)
	}
	return nil
}

// Unpause resumes all processes in the container.
func (c *Container) Unpause(ctx context.Context) error {
	err := c.client.api.ContainerUnpause(ctx, c.ID)
	if err != nil {
		return fmt.Errorf("failed to unpause container %q: %w", c.ID, err)
	}
	return nil
}

// Remove deletes the container from the daemon.
func (c *Container) Remove(ctx context.Context, options container.RemoveOptions) error {
	err := c.client.api.ContainerRemove(ctx, c.ID, options)
	if err != nil {
		return fmt.Errorf("failed to remove container %q: %w\nStop the container first or set Force", c.ID, err)
	}
	return nil
}

// Rename gives the container a new name. The model's Name field keeps the old
// value until Reload.
func (c *Container) Rename(ctx context.Context, name string) error {
	err := c.client.api.ContainerRename(ctx, c.ID, name)
	if err != nil {
		return fmt.Errorf("failed to rename container %q to %q: %w", c.ID, name, err)
	}
	return nil
}

// Update changes the container's resource limits without recreating it.
func (c *Container) Update(ctx context.Context, config container.UpdateConfig) (container.UpdateResponse, error) {
	resp, err := c.client.api.ContainerUpdate(ctx, c.ID, config)
	if err != nil {
		return container.UpdateResponse{}, fmt.Errorf("failed to update container %q: %w", c.ID, err)
	}
	return resp, nil
}

// Wait blocks until the container reaches the given condition, typically
// container.WaitConditionNotRunning, and returns its exit status.
func (c *Container) Wait(ctx context.Context, condition container.WaitCondition) (container.WaitResponse, error) {
	statusCh, errCh := c.client.api.ContainerWait(ctx, c.ID, condition)
	select {
	case err := <-errCh:
		return container.WaitResponse{}, fmt.Errorf("failed to wait for container %q: %w", c.ID, err)
	case status := <-statusCh:
		return status, nil
	}
}

// Logs returns the container's log stream. Unless the container was created
// with a TTY, the stream is multiplexed and must be split with the stdcopy
// package.
func (c *Container) Logs(ctx context.Context, options container.LogsOptions) (io.ReadCloser, error) {
	logs, err := c.client.api.ContainerLogs(ctx, c.ID, options)
	if err != nil {
		return nil, fmt.Errorf("failed to read logs of container %q: %w", c.ID, err)
	}
	return logs, nil
}

// demuxLogs copies the container's buffered logs into the given writers,
// splitting the multiplexed stream unless the container runs with a TTY. Nil
// writers discard their stream.
func (c *Container) demuxLogs(ctx context.Context, tty bool, stdout, stderr io.Writer) error {
	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}

	logs, err := c.Logs(ctx, container.LogsOptions{ShowStdout: true, ShowStderr: true})
	if err != nil {
		return err
	}
	defer logs.Close()

	if tty {
		_, err = io.Copy(stdout, logs)
	} else {
		_, err = stdcopy.StdCopy(stdout, stderr, logs)
	}
	if err != nil {
		return fmt.Errorf("failed to copy logs of container %q: %w", c.ID, err)
	}
	return nil
}

// Top lists the processes running inside the container. Arguments are passed
// to ps.
func (c *Container) Top(ctx context.Context, arguments []string) (container.TopResponse, error) {
	resp, err := c.client.api.ContainerTop(ctx, c.ID, arguments)
	if err != nil {
		return container.TopResponse{}, fmt.Errorf("failed to list processes of container %q: %w", c.ID, err)
	}
	return resp, nil
}

// Stats returns the container's resource usage statistics. With stream set
// the reader delivers updates until closed; otherwise it carries a single
// sample.
func (c *Container) Stats(ctx context.Context, stream bool) (container.StatsResponseReader, error) {
	var resp container.StatsResponseReader
	var err error
	if stream {
		resp, err = c.client.api.ContainerStats(ctx, c.ID, true)
	} else {
		resp, err = c.client.api.ContainerStatsOneShot(ctx, c.ID)
	}
	if err != nil {
		return container.StatsResponseReader{}, fmt.Errorf("failed to read stats of container %q: %w", c.ID, err)
	}
	return resp, nil
}

// Diff lists the filesystem changes made since the container started.
func (c *Container) Diff(ctx context.Context) ([]container.FilesystemChange, error) {
	changes, err := c.client.api.ContainerDiff(ctx, c.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to diff container %q: %w", c.ID, err)
	}
	return changes, nil
}

// Export returns the container's filesystem as a tar archive stream.
func (c *Container) Export(ctx context.Context) (io.ReadCloser, error) {
	archive, err := c.client.api.ContainerExport(ctx, c.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to export container %q: %w", c.ID, err)
	}
	return archive, nil
}

// Commit creates an image from the container's current state and returns its
// model.
func (c *Container) Commit(ctx context.Context, options container.CommitOptions) (*Image, error) {
	resp, err := c.client.api.ContainerCommit(ctx, c.ID, options)
	if err != nil {
		return nil, fmt.Errorf("failed to commit container %q: %w", c.ID, err)
	}

	return c.client.Images().Get(ctx, resp.ID)
}

// Resize changes the size of the container's TTY.
func (c *Container) Resize(ctx context.Context, height, width uint) error {
	err := c.client.api.ContainerResize(ctx, c.ID, container.ResizeOptions{Height: height, Width: width})
	if err != nil {
		return fmt.Errorf("failed to resize container %q: %w", c.ID, err)
	}
	return nil
}

// CopyFrom returns a tar archive of the file or directory at the given path
// inside the container, along with the path's stat information.
func (c *Container) CopyFrom(ctx context.Context, srcPath string) (io.ReadCloser, container.PathStat, error) {
	content, stat, err := c.client.api.CopyFromContainer(ctx, c.ID, srcPath)
	if err != nil {
		return nil, container.PathStat{}, fmt.Errorf("failed to copy %q from container %q: %w", srcPath, c.ID, err)
	}
	return content, stat, nil
}

// CopyTo extracts a tar archive into the given directory inside the
// container.
func (c *Container) CopyTo(ctx context.Context, dstPath string, content io.Reader, options container.CopyToContainerOptions) error {
	err := c.client.api.CopyToContainer(ctx, c.ID, dstPath, content, options)
	if err != nil {
		return fmt.Errorf("failed to copy to %q in container %q: %w\nThe destination directory must exist", dstPath, c.ID, err)
	}
	return nil
}

// Attach connects to the container's streams. The caller owns the returned
// hijacked connection and must close it.
func (c *Container) Attach(ctx context.Context, options container.AttachOptions) (types.HijackedResponse, error) {
	resp, err := c.client.api.ContainerAttach(ctx, c.ID, options)
	if err != nil {
		return types.HijackedResponse{}, fmt.Errorf("failed to attach to container %q: %w", c.ID, err)
	}
	return resp, nil
}
