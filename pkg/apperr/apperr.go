// Package apperr classifies service errors so controllers can map them
// to HTTP status codes without string matching.
package apperr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindUnauthorized
	KindNotFound
	KindConflict
)

type Error struct {
	kind Kind
	err  error
}

func (e *Error) Error() string { return e.err.Error() }
func (e *Error) Unwrap() error { return e.err }
func (e *Error) Kind() Kind    { return e.kind }

func newError(kind Kind, err error) *Error {
	return &Error{kind: kind, err: err}
}

func NewValidationError(msg string) *Error   { return newError(KindValidation, errors.New(msg)) }
func NewUnauthorizedError(msg string) *Error { return newError(KindUnauthorized, errors.New(msg)) }
func NewNotFoundError(msg string) *Error     { return newError(KindNotFound, errors.New(msg)) }
func NewConflictError(msg string) *Error     { return newError(KindConflict, errors.New(msg)) }
func NewInternalError(err error) *Error      { return newError(KindInternal, err) }

func kindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind()
	}
	return KindInternal
}

func IsValidation(err error) bool   { return kindOf(err) == KindValidation }
func IsUnauthorized(err error) bool { return kindOf(err) == KindUnauthorized }
func IsNotFound(err error) bool     { return kindOf(err) == KindNotFound }
func IsConflict(err error) bool     { return kindOf(err) == KindConflict }

// HTTPStatus maps an error to the status code its kind renders as.
// Unclassified errors are treated as internal.
func HTTPStatus(err error) int {
	switch kindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
