package dockside

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/distribution/reference"
	credclient "github.com/docker/docker-credential-helpers/client"
	"github.com/docker/docker/api/types/registry"
	"github.com/sirupsen/logrus"
)

const (
	// indexHostname is the hostname of the official index.
	indexHostname = "index.docker.io"
	// indexServer is the key the official index is stored under in the
	// registry configuration file.
	indexServer = "https://index.docker.io/v1/"
	// indexName is the normalized domain of official images.
	indexName = "docker.io"

	// tokenUsername is the username credential helpers report when the
	// secret is an identity token rather than a password.
	tokenUsername = "<token>"
)

// registryAuthHeader resolves credentials for the image reference and encodes
// them for the X-Registry-Auth header.
func (c *Client) registryAuthHeader(ref reference.Named) (string, error) {
	auth, err := c.resolveAuthConfig(authConfigKey(ref))
	if err != nil {
		return "", err
	}
	return encodeAuthConfig(auth)
}

// authConfigKey special-cases the official index, which is stored under its
// full v1 address, and uses the (host)name[:port] for private registries.
func authConfigKey(ref reference.Named) string {
	domain := reference.Domain(ref)
	if domain == indexName || domain == indexHostname {
		return indexServer
	}
	return domain
}

// resolveAuthConfig looks up credentials for a registry in the configuration
// file, going through a credential helper when one is configured. A helper is
// run with the credential-store environment override when one was given at
// construction.
func (c *Client) resolveAuthConfig(key string) (registry.AuthConfig, error) {
	logrus.WithField("registry", key).Debug("resolving registry credentials")

	if len(c.credstoreEnv) > 0 {
		if helper := c.credentialHelper(key); helper != "" {
			return c.credentialHelperAuth(helper, key)
		}
	}

	auth, err := c.configFile.GetAuthConfig(key)
	if err != nil {
		return registry.AuthConfig{}, fmt.Errorf("failed to resolve registry credentials for %q: %w", key, err)
	}

	// The file store leaves ServerAddress empty for registries it has no
	// entry for; fill in the lookup key so the encoded header names the
	// registry it is for.
	if auth.ServerAddress == "" {
		auth.ServerAddress = key
	}

	return registry.AuthConfig{
		Username:      auth.Username,
		Password:      auth.Password,
		Auth:          auth.Auth,
		Email:         auth.Email,
		ServerAddress: auth.ServerAddress,
		IdentityToken: auth.IdentityToken,
		RegistryToken: auth.RegistryToken,
	}, nil
}

// credentialHelper returns the helper name configured for a registry, falling
// back to the default credentials store. Empty means plain file storage.
func (c *Client) credentialHelper(key string) string {
	if helper, ok := c.configFile.CredentialHelpers[key]; ok {
		return helper
	}
	return c.configFile.CredentialsStore
}

func (c *Client) credentialHelperAuth(helper, serverAddress string) (registry.AuthConfig, error) {
	env := c.credstoreEnv
	program := credclient.NewShellProgramFuncWithEnv("docker-credential-"+helper, &env)

	creds, err := credclient.Get(program, serverAddress)
	if err != nil {
		return registry.AuthConfig{}, fmt.Errorf("failed to get credentials from helper %q: %w\nCheck that docker-credential-%s is installed and on PATH", helper, err, helper)
	}

	auth := registry.AuthConfig{ServerAddress: serverAddress}
	if creds.Username == tokenUsername {
		auth.IdentityToken = creds.Secret
	} else {
		auth.Username = creds.Username
		auth.Password = creds.Secret
	}
	return auth, nil
}

func encodeAuthConfig(auth registry.AuthConfig) (string, error) {
	buf, err := json.Marshal(auth)
	if err != nil {
		return "", fmt.Errorf("failed to encode registry credentials: %w", err)
	}
	return base64.URLEncoding.EncodeToString(buf), nil
}

// allAuthConfigs returns every credential the client's configuration can
// produce, keyed by registry. Builds send these so the daemon can pull from
// private registries. Credential store failures are logged rather than
// returned because most builds never need them.
func (c *Client) allAuthConfigs() map[string]registry.AuthConfig {
	creds, err := c.configFile.GetAllCredentials()
	if err != nil {
		logrus.Debugf("failed to load registry credentials: %v", err)
		return nil
	}

	authConfigs := make(map[string]registry.AuthConfig, len(creds))
	for key, auth := range creds {
		authConfigs[key] = registry.AuthConfig(auth)
	}
	return authConfigs
}
