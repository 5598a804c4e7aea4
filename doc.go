// Package dockside provides a high-level client for the Docker Engine API.
//
// The Client type is the main entry point. It wraps a low-level API client
// and exposes one collection per resource type (containers, images,
// networks, volumes, services, and so on), plus direct forwarders for the
// daemon-wide operations (Events, Info, Ping, Version, DiskUsage, Login).
// Collections return model objects that carry their identifying attributes
// and operate on the resource they describe.
package dockside
