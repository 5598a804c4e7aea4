package dockside

import (
	"fmt"
	"time"

	"github.com/docker/go-connections/tlsconfig"
)

const (
	// DefaultTimeout is the request timeout applied when no WithTimeout
	// option is given. 60 seconds covers slow daemon operations such as
	// stopping a container with a generous grace period.
	DefaultTimeout = 60 * time.Second

	// APIVersionAuto requests API version negotiation with the daemon
	// instead of pinning a fixed version.
	APIVersionAuto = "auto"
)

type options struct {
	host         string
	version      string
	timeout      time.Duration
	userAgent    string
	headers      map[string]string
	tls          *tlsconfig.Options
	environment  map[string]string
	credstoreEnv map[string]string
	configDir    string
	api          APIClient
}

// Opt configures a Client during construction.
type Opt func(*options) error

func applyOptions(opts []Opt) (*options, error) {
	o := &options{
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// WithHost sets the daemon address, for example "unix:///var/run/docker.sock"
// or "tcp://127.0.0.1:2376".
func WithHost(host string) Opt {
	return func(o *options) error {
		o.host = host
		return nil
	}
}

// WithVersion pins the API version, for example "1.47". The empty string and
// APIVersionAuto both negotiate the version with the daemon instead.
func WithVersion(version string) Opt {
	return func(o *options) error {
		o.version = version
		return nil
	}
}

// WithTimeout sets the request timeout on the underlying HTTP client.
func WithTimeout(timeout time.Duration) Opt {
	return func(o *options) error {
		if timeout < 0 {
			return fmt.Errorf("timeout must not be negative, got %s", timeout)
		}
		o.timeout = timeout
		return nil
	}
}

// WithUserAgent sets a custom User-Agent header on every request.
func WithUserAgent(userAgent string) Opt {
	return func(o *options) error {
		o.userAgent = userAgent
		return nil
	}
}

// WithHTTPHeaders sets custom headers sent with every request.
func WithHTTPHeaders(headers map[string]string) Opt {
	return func(o *options) error {
		o.headers = headers
		return nil
	}
}

// WithTLSConfig enables TLS on the connection using the given certificate
// material. Set InsecureSkipVerify to connect to a daemon whose certificate
// is not signed by the CA in CAFile.
func WithTLSConfig(tls tlsconfig.Options) Opt {
	return func(o *options) error {
		o.tls = &tls
		return nil
	}
}

// WithEnvironment makes FromEnv read configuration variables from the given
// map instead of the process environment. New ignores this option.
func WithEnvironment(environment map[string]string) Opt {
	return func(o *options) error {
		o.environment = environment
		return nil
	}
}

// WithCredentialStoreEnv sets the environment passed to credential-helper
// subprocesses when registry credentials are resolved.
func WithCredentialStoreEnv(environment map[string]string) Opt {
	return func(o *options) error {
		o.credstoreEnv = environment
		return nil
	}
}

// WithConfigDir overrides the directory the registry configuration file is
// loaded from. The default is the Docker CLI's configuration directory,
// typically ~/.docker.
func WithConfigDir(dir string) Opt {
	return func(o *options) error {
		o.configDir = dir
		return nil
	}
}

// WithAPIClient injects a pre-built low-level client, skipping transport
// construction entirely. Connection options such as WithHost and WithTimeout
// have no effect when this option is used.
func WithAPIClient(api APIClient) Opt {
	return func(o *options) error {
		o.api = api
		return nil
	}
}
