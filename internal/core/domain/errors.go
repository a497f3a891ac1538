package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyTitle    = errors.New("title cannot be empty")
	ErrDuplicateStep = errors.New("step already exists")
	ErrGoalNotFound  = errors.New("goal not found")
	ErrNotLoggedIn   = errors.New("no user session")
	ErrStepsPending  = errors.New("goal still has pending steps")
)

// TransportError means the request never produced a usable HTTP exchange:
// connectivity failure, timeout, or a body that could not be decoded.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("network error during %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// APIError is a non-success HTTP status returned by the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("server returned status %d: %s", e.StatusCode, e.Message)
}

// MalformedResponseError is a success status whose payload lacks a required field.
type MalformedResponseError struct {
	Field string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response: missing %s", e.Field)
}

// ValidationError is raised client-side before any request is sent.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Field == "" {
		return msg
	}
	return e.Field + ": " + msg
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Error is what every repository returns on failure. Message is meant for the user
// and is shown verbatim; Cause keeps the typed error for errors.As / errors.Is.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Cause }

// AsError converts any error into *Error, leaving existing *Error values alone.
// A nil input yields nil.
func AsError(err error) error {
	if err == nil {
		return nil
	}
	var de *Error
	if errors.As(err, &de) {
		return de
	}
	return &Error{Message: err.Error(), Cause: err}
}

// Message extracts the user-facing text of err.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	return err.Error()
}
