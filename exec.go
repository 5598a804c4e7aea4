package dockside

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/pkg/stdcopy"
	"golang.org/x/sync/errgroup"
)

// ExecOptions describes a command to run inside a running container.
type ExecOptions struct {
	// Cmd is the command and its arguments.
	Cmd []string

	// User runs the command as this user instead of the container's
	// default.
	User string

	// Privileged runs the command with extended privileges.
	Privileged bool

	// Tty allocates a pseudo-TTY, merging the command's output into a
	// single stream.
	Tty bool

	// Env sets additional environment variables, each entry in KEY=value
	// form.
	Env []string

	// WorkingDir sets the working directory for the command.
	WorkingDir string

	// Detach starts the command without waiting for it to finish.
	Detach bool

	// Stdin is fed to the command's standard input when set.
	Stdin io.Reader

	// Stdout receives the command's standard output as it runs. When nil,
	// the output is captured in the result instead.
	Stdout io.Writer

	// Stderr receives the command's standard error as it runs. When nil,
	// the output is captured in the result instead.
	Stderr io.Writer
}

// ExecResult reports the outcome of a command run inside a container.
type ExecResult struct {
	// ExecID identifies the exec instance on the daemon.
	ExecID string

	// ExitCode is the command's exit status. Detached commands report
	// zero because the command may still be running.
	ExitCode int

	// Stdout holds the command's standard output when no Stdout writer
	// was given. A TTY merges both streams here.
	Stdout []byte

	// Stderr holds the command's standard error when no Stderr writer was
	// given.
	Stderr []byte
}

// Exec runs a command inside the container and waits for it to finish,
// unless Detach is set.
func (c *Container) Exec(ctx context.Context, options ExecOptions) (ExecResult, error) {
	createOptions := container.ExecOptions{
		User:         options.User,
		Privileged:   options.Privileged,
		Tty:          options.Tty,
		AttachStdin:  !options.Detach && options.Stdin != nil,
		AttachStdout: !options.Detach,
		AttachStderr: !options.Detach,
		Env:          options.Env,
		WorkingDir:   options.WorkingDir,
		Cmd:          options.Cmd,
	}

	created, err := c.client.api.ContainerExecCreate(ctx, c.ID, createOptions)
	if err != nil {
		return ExecResult{}, fmt.Errorf("failed to create exec in container %q: %w\nThe container must be running", c.ID, err)
	}

	if options.Detach {
		err := c.client.api.ContainerExecStart(ctx, created.ID, container.ExecStartOptions{Detach: true, Tty: options.Tty})
		if err != nil {
			return ExecResult{}, fmt.Errorf("failed to start exec %q in container %q: %w", created.ID, c.ID, err)
		}
		return ExecResult{ExecID: created.ID}, nil
	}

	resp, err := c.client.api.ContainerExecAttach(ctx, created.ID, container.ExecAttachOptions{Tty: options.Tty})
	if err != nil {
		return ExecResult{}, fmt.Errorf("failed to attach to exec %q in container %q: %w", created.ID, c.ID, err)
	}
	defer resp.Close()

	var stdoutBuf, stderrBuf bytes.Buffer
	stdout := options.Stdout
	if stdout == nil {
		stdout = &stdoutBuf
	}
	stderr := options.Stderr
	if stderr == nil {
		stderr = &stderrBuf
	}

	if options.Stdin != nil {
		go func() {
			io.Copy(resp.Conn, options.Stdin)
			resp.CloseWrite()
		}()
	}

	group, _ := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		if options.Tty {
			_, err = io.Copy(stdout, resp.Reader)
		} else {
			_, err = stdcopy.StdCopy(stdout, stderr, resp.Reader)
		}
		return err
	})
	if err := group.Wait(); err != nil {
		return ExecResult{}, fmt.Errorf("failed to copy output of exec %q in container %q: %w", created.ID, c.ID, err)
	}

	inspect, err := c.client.api.ContainerExecInspect(ctx, created.ID)
	if err != nil {
		return ExecResult{}, fmt.Errorf("failed to inspect exec %q in container %q: %w", created.ID, c.ID, err)
	}

	return ExecResult{
		ExecID:   created.ID,
		ExitCode: inspect.ExitCode,
		Stdout:   stdoutBuf.Bytes(),
		Stderr:   stderrBuf.Bytes(),
	}, nil
}
