package dockside

import (
	"errors"
	"fmt"
	"strings"

	cerrdefs "github.com/containerd/errdefs"
	"github.com/docker/docker/pkg/jsonmessage"
)

// ErrNullResource is returned when an operation that needs a resource ID or
// name is given an empty string.
var ErrNullResource = errors.New("resource ID was not provided")

// IsNotFound returns true when err reports that the requested resource does
// not exist on the daemon.
func IsNotFound(err error) bool {
	return cerrdefs.IsNotFound(err)
}

// IsConflict returns true when err reports that the operation conflicts with
// the current state of the resource, such as removing a running container.
func IsConflict(err error) bool {
	return cerrdefs.IsConflict(err)
}

// IsInvalidParameter returns true when err reports that the daemon rejected
// the request parameters.
func IsInvalidParameter(err error) bool {
	return cerrdefs.IsInvalidArgument(err)
}

// IsUnauthorized returns true when err reports an authentication failure,
// such as bad registry credentials.
func IsUnauthorized(err error) bool {
	return cerrdefs.IsUnauthorized(err)
}

// BuildError is returned when the daemon reports a failure while building an
// image. Log holds the full build output received before the failure.
type BuildError struct {
	Reason string
	Log    []jsonmessage.JSONMessage
}

func (e *BuildError) Error() string {
	return e.Reason
}

// ContainerError is returned by ContainerCollection.Run when a container
// exits with a non-zero status.
type ContainerError struct {
	ContainerID string
	Image       string
	Command     []string
	ExitCode    int64
	Stderr      string
}

func (e *ContainerError) Error() string {
	msg := fmt.Sprintf("command %q in image %q returned non-zero exit status %d", strings.Join(e.Command, " "), e.Image, e.ExitCode)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

// UnknownAttributeError is returned by Client.Attr when the requested name
// does not resolve to a collection accessor or a forwarded operation.
type UnknownAttributeError struct {
	// Attr is the name that was requested.
	Attr string

	// LowLevel is true when the name exists on the low-level APIClient
	// rather than on Client.
	LowLevel bool
}

func (e *UnknownAttributeError) Error() string {
	msg := fmt.Sprintf("dockside.Client has no attribute %q", e.Attr)
	if e.LowLevel {
		msg += fmt.Sprintf("\n%q is an operation on the low-level APIClient. Call Client.API() to reach it. See the low-level API section of the documentation for details", e.Attr)
	}
	return msg
}

// IsUnknownAttribute returns true when err is an UnknownAttributeError.
func IsUnknownAttribute(err error) bool {
	var unknownErr *UnknownAttributeError
	return errors.As(err, &unknownErr)
}
