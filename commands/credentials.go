package commands

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// CredentialProvider supplies the Google service account (or OAuth2 client) credentials
// JSON from the host secret store.
type CredentialProvider interface {
	Credentials(ctx context.Context) ([]byte, error)
}

// FileCredentials reads the credentials from a 'credentials.json' file.
type FileCredentials string

// JSONCredentials holds the credentials JSON directly e.g. from an environment variable.
type JSONCredentials []byte

// EnvCredentials reads the credentials from an environment variable. The variable may
// hold either the credentials JSON or the path to a credentials file.
type EnvCredentials string

func (f FileCredentials) Credentials(ctx context.Context) ([]byte, error) {
	if strings.TrimSpace(string(f)) == "" {
		return nil, fmt.Errorf("--credentials is a required option")
	}

	return os.ReadFile(string(f))
}

func (j JSONCredentials) Credentials(ctx context.Context) ([]byte, error) {
	if len(j) == 0 {
		return nil, fmt.Errorf("empty credentials")
	}

	return []byte(j), nil
}

func (e EnvCredentials) Credentials(ctx context.Context) ([]byte, error) {
	v, ok := os.LookupEnv(string(e))
	if !ok || strings.TrimSpace(v) == "" {
		return nil, fmt.Errorf("missing %v environment variable", string(e))
	}

	return credentials(v).Credentials(ctx)
}

// credentials returns a provider for either an inline JSON blob or a credentials file.
func credentials(v string) CredentialProvider {
	if s := strings.TrimSpace(v); strings.HasPrefix(s, "{") {
		return JSONCredentials(s)
	}

	return FileCredentials(v)
}
