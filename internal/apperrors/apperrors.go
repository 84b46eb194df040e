// Package apperrors defines the typed error conditions the services raise
// and maps them to HTTP responses in one place, so services never depend on
// the transport layer.
package apperrors

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Kind classifies an application error.
type Kind int

const (
	KindBadRequest Kind = iota + 1
	KindNotFound
	KindForbidden
	KindUnauthorized
)

// Error is a typed application error. Callers distinguish conditions by Kind.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// BadRequest marks invalid input or an invalid state transition.
func BadRequest(message string) error {
	return &Error{Kind: KindBadRequest, Message: message}
}

// NotFound marks a referenced entity that does not exist.
func NotFound(message string) error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Forbidden marks an authenticated caller acting on an entity it does not own.
func Forbidden(message string) error {
	return &Error{Kind: KindForbidden, Message: message}
}

// Unauthorized marks a recipient mismatch on notification access.
func Unauthorized(message string) error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

// IsKind reports whether err is an application error of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}

// HTTPStatus returns the transport status for an error.
func HTTPStatus(err error) int {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}
	switch appErr.Kind {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindForbidden:
		return http.StatusForbidden
	case KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// HTTPErrorHandler is the Echo error handler translating typed application
// errors into JSON responses. Unknown errors become opaque 500s.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		_ = c.JSON(HTTPStatus(appErr), map[string]string{"message": appErr.Message})
		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		_ = c.JSON(httpErr.Code, map[string]any{"message": httpErr.Message})
		return
	}

	c.Logger().Error(err)
	_ = c.JSON(http.StatusInternalServerError, map[string]string{"message": "Internal server error"})
}
