// Package googleauth builds OAuth2 token sources for the Google APIs from a
// credentials file: a service account key, or an installed (desktop) app
// paired with a previously saved token.
package googleauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/tasks/v1"
)

// DefaultTokenPath is where the authorization helper stores the user token.
const DefaultTokenPath = "token.json"

// Scopes covers every API the reminder stores call.
var Scopes = []string{calendar.CalendarScope, tasks.TasksScope}

var (
	ErrUnsupportedCredentials = errors.New("unsupported google credentials format")
	ErrMissingToken           = errors.New("google credentials are an OAuth desktop app but no saved token was found, run the auth helper first")
)

// TokenSourceFromFile reads credentialsPath and delegates to TokenSourceFromJSON.
func TokenSourceFromFile(ctx context.Context, credentialsPath, tokenPath string, scopes ...string) (oauth2.TokenSource, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return TokenSourceFromJSON(ctx, data, tokenPath, scopes...)
}

// TokenSourceFromJSON tries a service account first and falls back to an
// installed app whose token is read from tokenPath.
func TokenSourceFromJSON(ctx context.Context, credentialsJSON []byte, tokenPath string, scopes ...string) (oauth2.TokenSource, error) {
	if len(scopes) == 0 {
		scopes = Scopes
	}

	if jwt, err := google.JWTConfigFromJSON(credentialsJSON, scopes...); err == nil {
		return jwt.TokenSource(ctx), nil
	}

	cfg, err := InstalledConfig(credentialsJSON, scopes...)
	if err != nil {
		return nil, err
	}

	tok, err := LoadToken(tokenPath)
	if err != nil {
		return nil, err
	}
	return cfg.TokenSource(ctx, tok), nil
}

// InstalledConfig parses OAuth desktop app credentials.
func InstalledConfig(credentialsJSON []byte, scopes ...string) (*oauth2.Config, error) {
	if len(scopes) == 0 {
		scopes = Scopes
	}
	cfg, err := google.ConfigFromJSON(credentialsJSON, scopes...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedCredentials, err)
	}
	return cfg, nil
}

// LoadToken reads a token saved by SaveToken.
func LoadToken(path string) (*oauth2.Token, error) {
	if path == "" {
		path = DefaultTokenPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrMissingToken
		}
		return nil, fmt.Errorf("failed to read token: %w", err)
	}

	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("failed to parse token %s: %w", path, err)
	}
	return &tok, nil
}

// SaveToken writes tok to path with owner-only permissions.
func SaveToken(path string, tok *oauth2.Token) error {
	if path == "" {
		path = DefaultTokenPath
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("failed to create token file: %w", err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		return fmt.Errorf("failed to write token: %w", err)
	}
	return nil
}
