package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	SHEETS = "https://www.googleapis.com/auth/spreadsheets.readonly"
	DRIVE  = "https://www.googleapis.com/auth/drive.metadata.readonly"
)

// authorize returns an HTTP client authorised with the credentials from the provider.
// Service account and authorized user credentials are used as is, OAuth2 client
// credentials ('installed' or 'web') require a previously saved token in the workdir.
func authorize(ctx context.Context, provider CredentialProvider, workdir string, scopes ...string) (*http.Client, error) {
	b, err := provider.Credentials(ctx)
	if err != nil {
		return nil, err
	}

	var info struct {
		Type      string          `json:"type"`
		Installed json.RawMessage `json:"installed"`
		Web       json.RawMessage `json:"web"`
	}

	if err := json.Unmarshal(b, &info); err != nil {
		return nil, fmt.Errorf("invalid credentials (%v)", err)
	}

	switch {
	case info.Type == "service_account":
		config, err := google.JWTConfigFromJSON(b, scopes...)
		if err != nil {
			return nil, err
		}

		return config.Client(ctx), nil

	case info.Type != "":
		creds, err := google.CredentialsFromJSON(ctx, b, scopes...)
		if err != nil {
			return nil, err
		}

		return oauth2.NewClient(ctx, creds.TokenSource), nil

	case info.Installed != nil || info.Web != nil:
		config, err := google.ConfigFromJSON(b, scopes...)
		if err != nil {
			return nil, err
		}

		tokens := filepath.Join(workdir, ".google", "dashboard.tokens")
		token, err := tokenFromFile(tokens)
		if err != nil {
			return nil, fmt.Errorf("no authorisation token in %v (%v)", tokens, err)
		}

		return config.Client(ctx, token), nil

	default:
		return nil, fmt.Errorf("unrecognised credentials type")
	}
}

// Retrieves a token from a local file.
func tokenFromFile(file string) (*oauth2.Token, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tok := &oauth2.Token{}
	err = json.NewDecoder(f).Decode(tok)

	return tok, err
}
