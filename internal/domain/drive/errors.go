package drive

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidID         = errors.New("invalid resource id")
	ErrInvalidName       = errors.New("invalid resource name")
	ErrInvalidContents   = errors.New("invalid file contents")
	ErrRequestFailed     = errors.New("drive request failed")
	ErrTransport         = errors.New("drive transport failure")
	ErrMalformedResponse = errors.New("malformed drive response")
)

// RequestError carries the normalized outcome of a failed operation.
// Transport failures report StatusTransportFailure.
type RequestError struct {
	Op      string
	Status  int
	Message string
}

// StatusTransportFailure marks an outcome where no HTTP response was received.
// It is distinct from every real HTTP status code.
const StatusTransportFailure = 9999

func (e *RequestError) Error() string {
	if e.Status == StatusTransportFailure {
		return fmt.Sprintf("%s: transport failure: %s", e.Op, e.Message)
	}
	return fmt.Sprintf("%s: status %d: %s", e.Op, e.Status, e.Message)
}

func (e *RequestError) Unwrap() error {
	if e.Status == StatusTransportFailure {
		return ErrTransport
	}
	return ErrRequestFailed
}
