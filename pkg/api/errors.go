package api

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport marks failures below HTTP: DNS, refused connections,
	// timeouts and cancelled contexts.
	ErrTransport = errors.New("api: transport failure")
	// ErrMalformed marks responses whose body can't be decoded into the
	// expected shape.
	ErrMalformed = errors.New("api: malformed response")
)

// StatusError is a request the backend answered but refused, either with a
// non-2xx status or with "success": false in the body.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api: request rejected (%d): %s", e.Code, e.Message)
}

// Message returns the text a user should see for err, if the backend
// supplied one.
func Message(err error) string {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Message
	}
	return ""
}
