package exchange

import (
	"context"
	"os"
)

// Credentials is a basic auth username/password pair.
type Credentials struct {
	Username string
	Password string
}

// IsZero reports whether no credentials are set.
func (c Credentials) IsZero() bool {
	return c.Username == "" && c.Password == ""
}

// CredentialProvider supplies the credentials attached to each request.
type CredentialProvider interface {
	Credentials(ctx context.Context) (Credentials, error)
}

// CredentialProviderFunc adapts a function to CredentialProvider.
type CredentialProviderFunc func(ctx context.Context) (Credentials, error)

// Credentials implements CredentialProvider.
func (f CredentialProviderFunc) Credentials(ctx context.Context) (Credentials, error) {
	return f(ctx)
}

// StaticCredentials always returns the same pair.
type StaticCredentials Credentials

// Credentials implements CredentialProvider.
func (s StaticCredentials) Credentials(_ context.Context) (Credentials, error) {
	return Credentials(s), nil
}

// Environment variables read by EnvCredentials.
const (
	EnvUsername = "COINADMIN_AUTH_USERNAME"
	EnvPassword = "COINADMIN_AUTH_PASSWORD"
)

// EnvCredentials reads the pair from the environment on every request so
// rotated secrets take effect without a restart.
type EnvCredentials struct {
	// Lookup defaults to os.LookupEnv.
	Lookup func(string) (string, bool)
}

// Credentials implements CredentialProvider.
func (e EnvCredentials) Credentials(_ context.Context) (Credentials, error) {
	lookup := e.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}
	user, _ := lookup(EnvUsername)
	pass, _ := lookup(EnvPassword)
	return Credentials{Username: user, Password: pass}, nil
}
