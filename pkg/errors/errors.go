package errors

import (
	stderrors "errors"
	"fmt"
)

type AppError struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	Cause   error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Cause }

// Is makes sentinel AppErrors comparable through errors.Is even after
// wrapping: two AppErrors match on code + message.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !stderrors.As(target, &t) {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

// Constructors
func New(code Code, message string) error {
	return &AppError{Code: code, Message: message}
}

func Wrap(code Code, message string, cause error) error {
	return &AppError{Code: code, Message: message, Cause: cause}
}

func InvalidArg(msg string) error {
	return New(CodeInvalidArgument, msg)
}

func NotFound(msg string) error {
	return New(CodeNotFound, msg)
}

func Forbidden(msg string) error {
	return New(CodePermissionDenied, msg)
}

func Unauthorized(msg string) error {
	return New(CodeUnauthenticated, msg)
}

func Unavailable(msg string) error {
	return New(CodeUnavailable, msg)
}

func Internal(msg string) error {
	return New(CodeInternal, msg)
}

// StatusOf returns the HTTP status for any error, defaulting to 500 for
// errors outside the taxonomy.
func StatusOf(err error) int {
	var app *AppError
	if stderrors.As(err, &app) {
		return HTTPStatus(app.Code)
	}
	return HTTPStatus(CodeUnknown)
}
