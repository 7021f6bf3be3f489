package googledrive

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"drivefiles/internal/domain/drive"
)

// Base URIs for Drive v3 Files API requests
const (
	DefaultMetadataURL = "https://www.googleapis.com/drive/v3/files/"
	DefaultUploadURL   = "https://www.googleapis.com/upload/drive/v3/files/"
)

type options struct {
	metadataURL string
	uploadURL   string
	httpClient  *http.Client
	timeout     time.Duration
	logger      *slog.Logger
}

// Option configures a Client
type Option func(*options)

// WithBaseURLs overrides the metadata and upload endpoint roots
func WithBaseURLs(metadataURL, uploadURL string) Option {
	return func(o *options) {
		if metadataURL != "" {
			o.metadataURL = metadataURL
		}
		if uploadURL != "" {
			o.uploadURL = uploadURL
		}
	}
}

// WithHTTPClient overrides the underlying HTTP client
func WithHTTPClient(h *http.Client) Option {
	return func(o *options) {
		o.httpClient = h
	}
}

// WithTimeout bounds each request. Ignored when WithHTTPClient is used.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithLogger sets the logger used to report failed requests
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Client implements drive.Repository over the Drive v3 Files API
type Client struct {
	dispatcher  *Dispatcher
	metadataURL string
	uploadURL   string
	logger      *slog.Logger
}

var _ drive.Repository = (*Client)(nil)

// New creates a Client authenticating with the given bearer token
func New(token string, opts ...Option) (*Client, error) {
	o := options{
		metadataURL: DefaultMetadataURL,
		uploadURL:   DefaultUploadURL,
		timeout:     30 * time.Second,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&o)
	}

	hc := o.httpClient
	if hc == nil {
		hc = &http.Client{Timeout: o.timeout}
	}
	d, err := NewDispatcher(token, hc)
	if err != nil {
		return nil, err
	}

	return &Client{
		dispatcher:  d,
		metadataURL: withTrailingSlash(o.metadataURL),
		uploadURL:   withTrailingSlash(o.uploadURL),
		logger:      o.logger,
	}, nil
}

// call describes one operation: where it goes, what it sends and how the
// success payload is projected into the result.
type call[T any] struct {
	op      string
	method  string
	url     string
	query   map[string]string
	headers map[string]string
	body    any
	project func(payload string) (T, error)
}

func execute[T any](ctx context.Context, c *Client, req call[T]) (T, error) {
	var zero T

	outcome, err := c.dispatcher.Dispatch(ctx, req.method, req.url, req.query, req.headers, req.body)
	if err != nil {
		c.logger.Error("drive error response violates contract", "op", req.op, "status", outcome.Status, "error", err)
		return zero, fmt.Errorf("%s: %w", req.op, err)
	}
	if !outcome.OK() {
		c.logger.Warn("drive request failed", "op", req.op, "status", outcome.Status, "message", outcome.Payload)
		return zero, &drive.RequestError{Op: req.op, Status: outcome.Status, Message: outcome.Payload}
	}

	result, err := req.project(outcome.Payload)
	if err != nil {
		c.logger.Error("drive response violates contract", "op", req.op, "status", outcome.Status, "error", err)
		return zero, fmt.Errorf("%s: %w: %v", req.op, drive.ErrMalformedResponse, err)
	}
	return result, nil
}

// List returns the entries whose parents contain dirID, or the default
// listing scope when dirID is empty. No matches yields an empty slice.
func (c *Client) List(ctx context.Context, dirID string) ([]drive.FileResource, error) {
	var query map[string]string
	if dirID != "" {
		query = map[string]string{"q": "'" + dirID + "' in parents"}
	}
	return execute(ctx, c, call[[]drive.FileResource]{
		op:      "list",
		method:  http.MethodGet,
		url:     c.metadataURL,
		query:   query,
		headers: map[string]string{"Accept": "application/json"},
		project: projectFiles,
	})
}

// GetMetadata returns the id, name and parents of a resource
func (c *Client) GetMetadata(ctx context.Context, id string) (*drive.FileResource, error) {
	return execute(ctx, c, call[*drive.FileResource]{
		op:      "get metadata",
		method:  http.MethodGet,
		url:     c.metadataURL + url.PathEscape(id),
		query:   map[string]string{"fields": "kind, id, name, parents, mimeType"},
		headers: map[string]string{"Accept": "application/json"},
		project: projectMetadata,
	})
}

// CreateDirectory creates a folder under parentID, or under the root
// folder when parentID is empty.
func (c *Client) CreateDirectory(ctx context.Context, name, parentID string) (*drive.FileResource, error) {
	body, err := json.Marshal(newFileMetadata(name, drive.MimeTypeFolder, parentID))
	if err != nil {
		return nil, fmt.Errorf("create directory: encode metadata: %w", err)
	}
	return execute(ctx, c, call[*drive.FileResource]{
		op:     "create directory",
		method: http.MethodPost,
		url:    c.metadataURL,
		headers: map[string]string{
			"Content-Type": "application/json; charset=UTF-8",
			"Accept":       "application/json",
		},
		body:    string(body),
		project: projectIDName,
	})
}

// CreateTextFile uploads a new text file with its metadata in one
// multipart request.
func (c *Client) CreateTextFile(ctx context.Context, name, parentID, contents string) (*drive.FileResource, error) {
	body, contentType, err := textFileBody(name, parentID, contents)
	if err != nil {
		return nil, fmt.Errorf("create text file: %w", err)
	}
	return execute(ctx, c, call[*drive.FileResource]{
		op:     "create text file",
		method: http.MethodPost,
		url:    c.uploadURL,
		query:  map[string]string{"uploadType": "multipart"},
		headers: map[string]string{
			"Content-Type": contentType,
			"Accept":       "*/*",
		},
		body:    body,
		project: projectIDName,
	})
}

// UpdateTextFile replaces the media of an existing file, leaving its
// metadata untouched.
func (c *Client) UpdateTextFile(ctx context.Context, id, contents string) (*drive.FileResource, error) {
	return execute(ctx, c, call[*drive.FileResource]{
		op:     "update text file",
		method: http.MethodPatch,
		url:    c.uploadURL + url.PathEscape(id),
		query:  map[string]string{"uploadType": "media"},
		headers: map[string]string{
			"Content-Type": drive.MimeTypeText,
			"Accept":       "application/json",
		},
		body:    contents,
		project: projectIDName,
	})
}

// ExportTextFile downloads the server-side text/plain export of a file
func (c *Client) ExportTextFile(ctx context.Context, id string) (string, error) {
	return execute(ctx, c, call[string]{
		op:      "export text file",
		method:  http.MethodGet,
		url:     c.metadataURL + url.PathEscape(id) + "/export",
		query:   map[string]string{"mimeType": drive.MimeTypeText},
		headers: map[string]string{"Accept": drive.MimeTypeText},
		project: passthrough,
	})
}

// Delete removes a resource. Success yields the empty body of the response.
func (c *Client) Delete(ctx context.Context, id string) (string, error) {
	return execute(ctx, c, call[string]{
		op:      "delete",
		method:  http.MethodDelete,
		url:     c.metadataURL + url.PathEscape(id),
		query:   map[string]string{"fileId": id},
		headers: map[string]string{"Accept": "application/json"},
		project: passthrough,
	})
}

// rawResource mirrors a files resource with presence-checked fields
type rawResource struct {
	Kind     string   `json:"kind"`
	ID       *string  `json:"id"`
	Name     *string  `json:"name"`
	MimeType string   `json:"mimeType"`
	Parents  []string `json:"parents"`
}

func decodeResource(payload string) (*rawResource, error) {
	var r rawResource
	if err := json.Unmarshal([]byte(payload), &r); err != nil {
		return nil, err
	}
	if r.ID == nil || r.Name == nil {
		return nil, errors.New("resource is missing id or name")
	}
	return &r, nil
}

func projectFiles(payload string) ([]drive.FileResource, error) {
	var list struct {
		Files *[]drive.FileResource `json:"files"`
	}
	if err := json.Unmarshal([]byte(payload), &list); err != nil {
		return nil, err
	}
	if list.Files == nil {
		return nil, errors.New("listing is missing files")
	}
	return *list.Files, nil
}

func projectMetadata(payload string) (*drive.FileResource, error) {
	r, err := decodeResource(payload)
	if err != nil {
		return nil, err
	}
	return &drive.FileResource{ID: *r.ID, Name: *r.Name, Parents: r.Parents}, nil
}

func projectIDName(payload string) (*drive.FileResource, error) {
	r, err := decodeResource(payload)
	if err != nil {
		return nil, err
	}
	return &drive.FileResource{ID: *r.ID, Name: *r.Name}, nil
}

func passthrough(payload string) (string, error) {
	return payload, nil
}

func withTrailingSlash(s string) string {
	if strings.HasSuffix(s, "/") {
		return s
	}
	return s + "/"
}
