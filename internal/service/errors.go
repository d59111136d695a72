package service

import (
	"errors"
	"fmt"
)

// Kind classifies a service failure so transports can pick a status code.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindAuth
	KindForbidden
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindAuth:
		return "auth"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	default:
		return "internal"
	}
}

// Error is returned by every service operation that fails.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func validationError(msg string) error { return &Error{Kind: KindValidation, Message: msg} }
func conflictError(msg string) error { return &Error{Kind: KindConflict, Message: msg} }
func authError(msg string) error { return &Error{Kind: KindAuth, Message: msg} }
func forbiddenError(msg string) error { return &Error{Kind: KindForbidden, Message: msg} }
func notFoundError(msg string) error { return &Error{Kind: KindNotFound, Message: msg} }

// internalError keeps the underlying fault's message for the response body.
func internalError(op string, err error) error {
	return &Error{Kind: KindInternal, Message: err.Error(), Err: fmt.Errorf("%s: %w", op, err)}
}

// KindOf returns the kind of err, or KindInternal for foreign errors.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindInternal
}

// MessageOf returns the client-facing message for err.
func MessageOf(err error) string {
	var se *Error
	if errors.As(err, &se) && se.Message != "" {
		return se.Message
	}
	return "Internal Server Error"
}
