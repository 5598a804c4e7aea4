package dockside_test

import (
	"github.com/docker/docker/client"
	"github.com/ryanmoran/dockside"
)

// Compile-time check that *client.Client implements APIClient interface
var _ dockside.APIClient = (*client.Client)(nil)
