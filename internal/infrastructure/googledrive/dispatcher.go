package googledrive

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"drivefiles/internal/domain/drive"

	"github.com/go-resty/resty/v2"
)

var ErrEmptyAccessToken = errors.New("access token is required")

// Outcome is the normalized result of a single dispatched request.
// Payload holds the raw body on success, the remote error message on
// failure and the transport error description for StatusTransportFailure.
type Outcome struct {
	Status  int
	Payload string
}

// OK reports whether the outcome represents a successful response
func (o Outcome) OK() bool {
	return o.Status <= 299
}

// Dispatcher issues authenticated requests against the Drive API.
// It never retries and keeps no state besides the credential.
type Dispatcher struct {
	client *resty.Client
}

// NewDispatcher creates a dispatcher presenting token as a bearer credential.
// httpClient is copied, never modified, so one client can back many
// dispatchers. A nil client or transport selects http.DefaultTransport.
func NewDispatcher(token string, httpClient *http.Client) (*Dispatcher, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrEmptyAccessToken
	}

	var hc http.Client
	if httpClient != nil {
		hc = *httpClient
	}
	if hc.Transport == nil {
		hc.Transport = http.DefaultTransport
	}

	rc := resty.NewWithClient(&hc)
	rc.SetAuthScheme("Bearer")
	rc.SetAuthToken(token)
	rc.SetRetryCount(0)

	return &Dispatcher{client: rc}, nil
}

// Dispatch performs one request and normalizes the result.
//
// Transport failures are reported as data with StatusTransportFailure and a
// nil error. The returned error is non-nil only when a failed response does
// not carry the documented error envelope.
func (d *Dispatcher) Dispatch(ctx context.Context, method, url string, query, headers map[string]string, body any) (Outcome, error) {
	req := d.client.R()
	if ctx != nil {
		req.SetContext(ctx)
	}
	if len(query) > 0 {
		req.SetQueryParams(query)
	}
	for k, v := range headers {
		// The bearer credential always wins.
		if strings.EqualFold(k, "Authorization") {
			continue
		}
		req.SetHeader(k, v)
	}
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, url)
	if err != nil {
		return Outcome{Status: drive.StatusTransportFailure, Payload: err.Error()}, nil
	}

	status := resp.StatusCode()
	if status <= 299 {
		return Outcome{Status: status, Payload: string(resp.Body())}, nil
	}

	message, err := errorMessage(resp.Body())
	if err != nil {
		return Outcome{Status: status}, fmt.Errorf("%w: status %d: %v", drive.ErrMalformedResponse, status, err)
	}
	return Outcome{Status: status, Payload: message}, nil
}

// errorMessage extracts error.message from a Drive error envelope
func errorMessage(body []byte) (string, error) {
	var envelope struct {
		Error *struct {
			Message *string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return "", err
	}
	if envelope.Error == nil || envelope.Error.Message == nil {
		return "", errors.New("missing error.message")
	}
	return *envelope.Error.Message, nil
}
