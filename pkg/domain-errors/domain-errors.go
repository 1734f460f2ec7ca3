package domainerrors

import "errors"

// Code names a failure category in business terms, not HTTP terms;
// the transport layer owns the mapping to status codes.
type Code string

const (
	CodeNotFound     Code = "not_found"
	CodeBadRequest   Code = "bad_request"
	CodeInvalidInput Code = "invalid_input"
	CodeValidation   Code = "validation_failed"
	CodeInternal     Code = "internal_error"
	CodeConflict     Code = "conflict"
	CodeUnauthorized Code = "unauthorized"
	CodeForbidden    Code = "forbidden"

	// Credential workflow codes.
	CodeRoleMismatch        Code = "role_mismatch"        // account exists but lacks the required role
	CodeOwnership           Code = "ownership_violation"  // acting issuer does not own the target
	CodeIdentifierExhausted Code = "identifier_exhausted" // uniqueness could not be established within the retry ceiling
	CodeInvalidState        Code = "invalid_state"        // status transition not allowed from the current state
)

// Error carries a stable code alongside the message and the wrapped cause.
// Services return it at operation boundaries; handlers translate it.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return string(e.Code)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches by code, so errors.Is can test a category without caring
// which operation produced it.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

func New(code Code, msg string) error {
	return &Error{Code: code, Message: msg}
}

// Wrap attaches a code and message to an existing error. A cause that is
// already coded keeps its original code; re-wrapping never launders a
// not_found into an internal_error.
func Wrap(err error, code Code, msg string) error {
	var existing *Error
	if errors.As(err, &existing) {
		return &Error{Code: existing.Code, Message: msg, Err: err}
	}
	return &Error{Code: code, Message: msg, Err: err}
}

// HasCode reports whether err is (or wraps) a domain error with the code.
func HasCode(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}
