package probe

import (
	"errors"
	"fmt"
	"net"
)

// ErrMissingCredential is returned before any network activity when no API key is set
var ErrMissingCredential = errors.New("missing credential")

// RemoteError is a response with a non-2xx status
// Status and body are kept verbatim for the operator
type RemoteError struct {
	StatusCode int
	Body       string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("HTTPError %d: %s", e.StatusCode, e.Body)
}

// TransportError is any failure below HTTP semantics: DNS, refused connection, timeout, broken body
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the failure was a timeout
func (e *TransportError) Timeout() bool {
	var netErr net.Error
	return errors.As(e.Err, &netErr) && netErr.Timeout()
}
