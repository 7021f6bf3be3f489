package googledrive

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"drivefiles/internal/domain/drive"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingTransport struct {
	err error
}

func (f failingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, f.err
}

func TestNewDispatcher_EmptyToken(t *testing.T) {
	_, err := NewDispatcher("  ", nil)
	assert.ErrorIs(t, err, ErrEmptyAccessToken)
}

func TestDispatch_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, "yes", r.Header.Get("X-Extra"))
		assert.Equal(t, "v", r.URL.Query().Get("k"))
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, "payload", string(body))
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, "  raw body\n")
	}))
	defer srv.Close()

	d, err := NewDispatcher("secret", nil)
	require.NoError(t, err)

	out, err := d.Dispatch(context.Background(), http.MethodPost, srv.URL,
		map[string]string{"k": "v"},
		map[string]string{"X-Extra": "yes", "Authorization": "Bearer forged"},
		"payload")
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, out.Status)
	assert.Equal(t, "  raw body\n", out.Payload)
	assert.True(t, out.OK())
}

func TestDispatch_NilMapsAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	d, err := NewDispatcher("secret", nil)
	require.NoError(t, err)

	out, err := d.Dispatch(context.Background(), http.MethodDelete, srv.URL, nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, Outcome{Status: http.StatusNoContent, Payload: ""}, out)
}

func TestDispatch_ErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"error":{"code":404,"message":"File not found: f1."}}`)
	}))
	defer srv.Close()

	d, err := NewDispatcher("secret", nil)
	require.NoError(t, err)

	out, err := d.Dispatch(context.Background(), http.MethodGet, srv.URL, nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, out.Status)
	assert.Equal(t, "File not found: f1.", out.Payload)
	assert.False(t, out.OK())
}

func TestDispatch_MalformedErrorEnvelope(t *testing.T) {
	for name, body := range map[string]string{
		"not json":        "<html>bad gateway</html>",
		"missing error":   `{"message":"nope"}`,
		"missing message": `{"error":{"code":500}}`,
	} {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
				io.WriteString(w, body)
			}))
			defer srv.Close()

			d, err := NewDispatcher("secret", nil)
			require.NoError(t, err)

			out, err := d.Dispatch(context.Background(), http.MethodGet, srv.URL, nil, nil, nil)
			assert.ErrorIs(t, err, drive.ErrMalformedResponse)
			assert.Equal(t, http.StatusBadGateway, out.Status)
		})
	}
}

func TestDispatch_TransportFailure(t *testing.T) {
	boom := errors.New("dial tcp: connection refused")
	d, err := NewDispatcher("secret", &http.Client{Transport: failingTransport{err: boom}})
	require.NoError(t, err)

	out, err := d.Dispatch(context.Background(), http.MethodGet, "http://drive.invalid/files", nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, drive.StatusTransportFailure, out.Status)
	assert.Contains(t, out.Payload, boom.Error())
}

func TestDispatch_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	d, err := NewDispatcher("secret", nil)
	require.NoError(t, err)

	out, err := d.Dispatch(context.Background(), http.MethodGet, addr, nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, drive.StatusTransportFailure, out.Status)
	assert.NotEmpty(t, out.Payload)
}

func TestDispatch_MalformedURL(t *testing.T) {
	d, err := NewDispatcher("secret", nil)
	require.NoError(t, err)

	out, err := d.Dispatch(context.Background(), http.MethodGet, "://no-scheme", nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, drive.StatusTransportFailure, out.Status)
	assert.NotEmpty(t, out.Payload)
}

func TestNewDispatcher_SharedClientUntouched(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, r.Header.Get("Authorization"))
	}))
	defer srv.Close()

	shared := &http.Client{}

	var wg sync.WaitGroup
	dispatchers := make([]*Dispatcher, 8)
	for i := range dispatchers {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			d, err := NewDispatcher("tok", shared)
			assert.NoError(t, err)
			dispatchers[i] = d
		}()
	}
	wg.Wait()

	assert.Nil(t, shared.Transport)
	for _, d := range dispatchers {
		require.NotNil(t, d)
		out, err := d.Dispatch(context.Background(), http.MethodGet, srv.URL, nil, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, "Bearer tok", out.Payload)
	}
}
