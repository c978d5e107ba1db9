package errs

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindValidation   Kind = "validation"
	KindNotFound     Kind = "not_found"
	KindUnauthorized Kind = "unauthorized"
	KindUpstream     Kind = "upstream"
	KindInternal     Kind = "internal"
)

// AppError is the error every service returns across a module boundary.
type AppError struct {
	Kind    Kind
	Message string
	// Status is the upstream HTTP status for KindUpstream errors.
	Status  int
	Details any
	Err     error
}

type ErrorOpts struct {
	Kind    Kind
	Message string
	Status  int
	Details any
}

func (e *AppError) Error() string {
	if e.Err != nil && e.Message != "" {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Kind)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WrapAppError wraps err into an AppError. An err that already is an AppError
// keeps its kind unless opts overrides it.
func WrapAppError(err error, opts *ErrorOpts) *AppError {
	if opts == nil {
		opts = &ErrorOpts{}
	}

	var existing *AppError
	if errors.As(err, &existing) && opts.Kind == "" {
		wrapped := *existing
		if opts.Message != "" {
			wrapped.Message = opts.Message
			wrapped.Err = existing
		}
		return &wrapped
	}

	kind := opts.Kind
	if kind == "" {
		kind = KindInternal
	}

	return &AppError{
		Kind:    kind,
		Message: opts.Message,
		Status:  opts.Status,
		Details: opts.Details,
		Err:     err,
	}
}

func Validation(msg string) *AppError {
	return &AppError{Kind: KindValidation, Message: msg}
}

func NotFound(msg string) *AppError {
	return &AppError{Kind: KindNotFound, Message: msg}
}

func Unauthorized() *AppError {
	return &AppError{Kind: KindUnauthorized, Message: "Unauthorized"}
}

// Upstream reports a failed call to an external service, keeping its status
// and raw body for diagnostics.
func Upstream(msg string, status int, body string) *AppError {
	return &AppError{Kind: KindUpstream, Message: msg, Status: status, Details: body}
}

func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}
