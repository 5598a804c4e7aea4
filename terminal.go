package dockside

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/docker/cli/cli/streams"
	"github.com/docker/docker/api/types/container"
	"github.com/moby/term"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	// resizeRetries is how many times the resize monitor retries the
	// initial TTY resize before giving up.
	resizeRetries = 5

	// resizeRetryDelay is the base delay between resize retries. The
	// delay grows with each attempt.
	resizeRetryDelay = 250 * time.Millisecond
)

// AttachTerminal connects the calling process's terminal to the container
// and blocks until the container exits or ctx is cancelled, returning the
// container's exit status.
//
// The local terminal is put into raw mode and restored on return, and window
// size changes are forwarded so the container's TTY tracks the local
// terminal. The container must have been created with Tty and OpenStdin set.
func (c *Container) AttachTerminal(ctx context.Context) (int64, error) {
	stdin, stdout, _ := term.StdStreams()
	in := streams.NewIn(stdin)
	out := streams.NewOut(stdout)

	td := &teardownStack{}
	defer td.run()

	monitor := resizeMonitor{api: c.client.api, out: out, containerID: c.ID}
	stopMonitor := monitor.start(ctx)
	td.add("stop resize monitor", func() error {
		stopMonitor()
		return nil
	})

	restore := sync.OnceFunc(func() {
		in.RestoreTerminal()
		out.RestoreTerminal()
	})
	td.add("restore terminal", func() error {
		restore()
		return nil
	})

	if err := in.SetRawTerminal(); err != nil {
		return 0, fmt.Errorf("failed to set stdin to raw terminal mode: %w\nYour terminal may not support TTY operations", err)
	}
	if err := out.SetRawTerminal(); err != nil {
		return 0, fmt.Errorf("failed to set stdout to raw terminal mode: %w\nYour terminal may not support TTY operations", err)
	}

	resp, err := c.Attach(ctx, container.AttachOptions{
		Stream: true,
		Stdin:  true,
		Stdout: true,
		Stderr: true,
	})
	if err != nil {
		return 0, err
	}
	td.add("close attach connection", func() error {
		resp.Close()
		return nil
	})

	group, gctx := errgroup.WithContext(ctx)

	// Forward local stdin to the container.
	group.Go(func() error {
		defer restore()
		defer resp.Conn.Close()

		_, err := io.Copy(resp.Conn, in)
		// Context cancellation is expected, not an error.
		if gctx.Err() != nil {
			return nil
		}
		if err != nil {
			logrus.Warnf("stdin forwarding error: %v", err)
		}
		return nil
	})

	// Forward container output to the local terminal.
	group.Go(func() error {
		defer restore()

		_, err := io.Copy(out, resp.Reader)
		if gctx.Err() != nil {
			return nil
		}
		if err != nil && err != io.EOF {
			logrus.Warnf("output forwarding error: %v", err)
		}
		return nil
	})

	// The stdin pump can outlive the session while it blocks on a terminal
	// read, so the group is reaped in the background instead of waited on.
	go func() {
		_ = group.Wait()
	}()

	status, err := c.Wait(ctx, container.WaitConditionNotRunning)
	if err != nil {
		return 0, err
	}
	if status.Error != nil {
		return status.StatusCode, fmt.Errorf("failed to wait for container %q: %s", c.ID, status.Error.Message)
	}

	return status.StatusCode, nil
}

// resizeMonitor keeps a container's TTY sized to the local terminal.
type resizeMonitor struct {
	api         APIClient
	out         *streams.Out
	containerID string
}

// start performs an initial resize, retrying in the background when it
// fails, and then forwards window size changes until the returned stop
// function is called or ctx is cancelled.
func (m resizeMonitor) start(ctx context.Context) func() {
	ctx, cancel := context.WithCancel(ctx)

	if err := m.resize(ctx); err != nil {
		go func() {
			var err error
			for retry := range resizeRetries {
				select {
				case <-ctx.Done():
					return
				case <-time.After(time.Duration(retry+1) * resizeRetryDelay):
					if err = m.resize(ctx); err == nil {
						return
					}
				}
			}
			if err != nil {
				logrus.Warnf("failed to resize tty: %v", err)
			}
		}()
	}

	sigchan := make(chan os.Signal, 1)
	signal.Notify(sigchan, syscall.SIGWINCH)
	go func() {
		defer signal.Stop(sigchan)
		for {
			select {
			case <-ctx.Done():
				return
			case <-sigchan:
				_ = m.resize(ctx)
			}
		}
	}()

	return cancel
}

// resize matches the container's TTY to the current terminal size. A zero
// size means no terminal is present and there is nothing to do.
func (m resizeMonitor) resize(ctx context.Context) error {
	height, width := m.out.GetTtySize()
	if height == 0 && width == 0 {
		return nil
	}

	return m.api.ContainerResize(ctx, m.containerID, container.ResizeOptions{
		Height: height,
		Width:  width,
	})
}
