package googledrive

import (
	"context"
	"fmt"

	"drivefiles/internal/infrastructure/config"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// DriveScope grants full access to the user's files
const DriveScope = "https://www.googleapis.com/auth/drive"

// AccessToken resolves the server-wide bearer credential. A configured
// DRIVE_ACCESS_TOKEN wins; otherwise a refresh token is exchanged once.
// An empty token with a nil error means no credential is configured.
func AccessToken(ctx context.Context, cfg *config.Config) (string, error) {
	if cfg.DriveAccessToken != "" {
		return cfg.DriveAccessToken, nil
	}
	if !cfg.HasOAuth() {
		return "", nil
	}

	endpoint := google.Endpoint
	if cfg.GoogleTokenURL != "" {
		endpoint.TokenURL = cfg.GoogleTokenURL
	}
	oauthConfig := &oauth2.Config{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		Scopes:       []string{DriveScope},
		Endpoint:     endpoint,
	}

	token, err := oauthConfig.TokenSource(ctx, &oauth2.Token{
		RefreshToken: cfg.GoogleRefreshToken,
		TokenType:    "Bearer",
	}).Token()
	if err != nil {
		return "", fmt.Errorf("refresh access token: %w", err)
	}
	if !token.Valid() {
		return "", fmt.Errorf("refresh access token: %w", ErrEmptyAccessToken)
	}
	return token.AccessToken, nil
}
