package dockside

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/docker/go-connections/tlsconfig"
)

// Environment variables recognized by FromEnv.
const (
	// EnvHost sets the daemon address.
	EnvHost = "DOCKER_HOST"

	// EnvTLSVerify enables certificate verification when set to any
	// non-empty value. Setting it also enables TLS.
	EnvTLSVerify = "DOCKER_TLS_VERIFY"

	// EnvCertPath names the directory holding ca.pem, cert.pem and
	// key.pem. Setting it enables TLS.
	EnvCertPath = "DOCKER_CERT_PATH"

	// EnvAPIVersion pins the API version instead of negotiating it.
	EnvAPIVersion = "DOCKER_API_VERSION"
)

// FromEnv constructs a Client configured from environment variables.
//
// DOCKER_HOST sets the daemon address, DOCKER_TLS_VERIFY and DOCKER_CERT_PATH
// control TLS, and DOCKER_API_VERSION pins the API version. Variables are
// read from the process environment unless WithEnvironment supplies a map to
// read from instead. Explicit options win over environment values.
//
//	cli, err := dockside.FromEnv()
//	if err != nil {
//	    return err
//	}
//	defer cli.Close()
func FromEnv(opts ...Opt) (*Client, error) {
	o, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	lookup := func(name string) (string, bool) {
		if o.environment != nil {
			value, ok := o.environment[name]
			return value, ok
		}
		return os.LookupEnv(name)
	}

	if o.host == "" {
		if host, ok := lookup(EnvHost); ok && host != "" {
			o.host = host
		}
	}

	if o.version == "" {
		if version, ok := lookup(EnvAPIVersion); ok && version != "" {
			o.version = version
		}
	}

	if o.tls == nil {
		tls, err := tlsOptionsFromEnv(lookup)
		if err != nil {
			return nil, err
		}
		o.tls = tls
	}

	return newClient(o)
}

// tlsOptionsFromEnv derives TLS settings the way the Docker CLI does: TLS is
// enabled when DOCKER_CERT_PATH is set or DOCKER_TLS_VERIFY is non-empty, the
// certificate directory falls back to ~/.docker when only the verify flag is
// set, and verification is skipped when DOCKER_TLS_VERIFY is empty or unset.
func tlsOptionsFromEnv(lookup func(string) (string, bool)) (*tlsconfig.Options, error) {
	certPath, _ := lookup(EnvCertPath)
	verifyValue, verifySet := lookup(EnvTLSVerify)
	verify := verifySet && verifyValue != ""

	if certPath == "" && !verify {
		return nil, nil
	}

	if certPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve the default certificate directory: %w\nSet DOCKER_CERT_PATH explicitly", err)
		}
		certPath = filepath.Join(home, ".docker")
	}

	return &tlsconfig.Options{
		CAFile:             filepath.Join(certPath, "ca.pem"),
		CertFile:           filepath.Join(certPath, "cert.pem"),
		KeyFile:            filepath.Join(certPath, "key.pem"),
		InsecureSkipVerify: !verify,
	}, nil
}
