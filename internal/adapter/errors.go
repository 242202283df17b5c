package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyAddress       = errors.New("empty address")
	ErrUnexpectedResponse = errors.New("unexpected response from vault api")
)

// RemoteError is a failed API call. It wraps the sentinel matching the
// response status and keeps the message the server wrote for the user.
type RemoteError struct {
	Status  int
	Message string
	cause   error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%v: http %d: %s", e.cause, e.Status, e.Message)
}

func (e *RemoteError) Unwrap() error {
	return e.cause
}

// UserMessage returns the server's message so both presentations show the
// same text.
func (e *RemoteError) UserMessage() string {
	return e.Message
}
