package googledrive

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"drivefiles/internal/infrastructure/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessToken_StaticTokenWins(t *testing.T) {
	cfg := &config.Config{DriveAccessToken: "static", GoogleClientID: "id", GoogleRefreshToken: "refresh"}

	token, err := AccessToken(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, "static", token)
}

func TestAccessToken_NothingConfigured(t *testing.T) {
	token, err := AccessToken(context.Background(), &config.Config{})
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestAccessToken_RefreshFlow(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
		assert.Equal(t, "refresh", r.PostForm.Get("refresh_token"))
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"access_token":"minted","token_type":"Bearer","expires_in":3600}`)
	}))
	defer srv.Close()

	cfg := &config.Config{
		GoogleClientID:     "id",
		GoogleClientSecret: "secret",
		GoogleRefreshToken: "refresh",
		GoogleTokenURL:     srv.URL,
	}

	token, err := AccessToken(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, "minted", token)
}

func TestAccessToken_RefreshRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"error":"invalid_grant"}`)
	}))
	defer srv.Close()

	cfg := &config.Config{GoogleClientID: "id", GoogleRefreshToken: "stale", GoogleTokenURL: srv.URL}

	_, err := AccessToken(context.Background(), cfg)
	assert.Error(t, err)
}
