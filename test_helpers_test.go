package dockside_test

import (
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/registry"
	"github.com/stretchr/testify/require"

	"github.com/ryanmoran/dockside"
)

// newTestClient builds a Client around a mock API client. The registry
// configuration is pointed at an empty directory so credentials on the
// machine running the tests never leak into assertions.
func newTestClient(t *testing.T, api dockside.APIClient, opts ...dockside.Opt) *dockside.Client {
	t.Helper()

	opts = append([]dockside.Opt{
		dockside.WithAPIClient(api),
		dockside.WithConfigDir(t.TempDir()),
	}, opts...)

	c, err := dockside.New(opts...)
	require.NoError(t, err)
	return c
}

// jsonLines encodes each message as a JSON line, the framing the daemon uses
// for progress streams.
func jsonLines(t *testing.T, messages ...map[string]interface{}) []byte {
	t.Helper()

	var out []byte
	for _, message := range messages {
		line, err := json.Marshal(message)
		require.NoError(t, err)
		out = append(out, line...)
		out = append(out, '\n')
	}
	return out
}

// containerInspectFixture builds the inspect payload the daemon would return
// for a container, populated just enough for the model constructor.
func containerInspectFixture(id, name, imageID, status string) container.InspectResponse {
	return container.InspectResponse{
		ContainerJSONBase: &container.ContainerJSONBase{
			ID:    id,
			Name:  "/" + name,
			Image: imageID,
			State: &container.State{Status: status},
		},
		Config: &container.Config{},
	}
}

// decodeAuthHeader reverses the X-Registry-Auth encoding.
func decodeAuthHeader(t *testing.T, header string) registry.AuthConfig {
	t.Helper()

	buf, err := base64.URLEncoding.DecodeString(header)
	require.NoError(t, err)

	var auth registry.AuthConfig
	require.NoError(t, json.Unmarshal(buf, &auth))
	return auth
}
