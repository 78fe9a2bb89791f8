package sheets

import (
	"errors"
	"fmt"
)

// TransportError means the remote call itself failed: network error or a
// non-success HTTP status. The fetch is not retried here; the refresher
// decides what to do with the previous snapshot.
type TransportError struct {
	Source     string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("sheet %s: unexpected status %d", e.Source, e.StatusCode)
	}
	return fmt.Sprintf("sheet %s: request failed: %v", e.Source, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// FormatError means the response body did not match the expected gviz
// envelope, or the embedded payload failed to decode.
type FormatError struct {
	Source string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("sheet %s: %s", e.Source, e.Reason)
}

// IsTransport reports whether err is a TransportError.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsFormat reports whether err is a FormatError.
func IsFormat(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}
