// Package errors defines the API error taxonomy and the centralized HTTP
// error handler.
package errors

import (
	stderrors "errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"coursehub/internal/datatable"
)

// APIError is an error with an HTTP status whose message is safe to show to
// clients.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// New creates an APIError with the given status and message.
func New(status int, message string) *APIError {
	return &APIError{Status: status, Message: message}
}

func BadRequest(message string) *APIError   { return New(http.StatusBadRequest, message) }
func Unauthorized(message string) *APIError { return New(http.StatusUnauthorized, message) }
func Forbidden(message string) *APIError    { return New(http.StatusForbidden, message) }
func NotFound(message string) *APIError     { return New(http.StatusNotFound, message) }
func Conflict(message string) *APIError     { return New(http.StatusConflict, message) }

var (
	// ErrWrongCredentials deliberately covers both unknown email and wrong
	// password so login failures cannot be used to enumerate users.
	ErrWrongCredentials = Unauthorized("Wrong credentials!")
	// ErrInvalidToken covers missing, malformed, expired and revoked tokens.
	ErrInvalidToken = Unauthorized("Invalid token")
	// ErrUserAlreadyExists is returned when signing up an already registered email.
	ErrUserAlreadyExists = Conflict("User already exists")
	// ErrAccessDenied is returned when the principal's role is not on the
	// operation's allow-list.
	ErrAccessDenied = Forbidden("Access denied")
)

// Response is the error body shape every failed request produces.
type Response struct {
	StatusCode int         `json:"statusCode"`
	Message    interface{} `json:"message"`
	Timestamp  string      `json:"timestamp"`
	Path       string      `json:"path"`
}

// NewHTTPErrorHandler returns echo's centralized error handler. Domain and
// validation errors map to their statuses; anything unrecognized is logged
// and surfaces as a generic 500 so persistence-layer details never leak.
func NewHTTPErrorHandler(log *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		var message interface{} = "Internal server error"

		var apiErr *APIError
		var valErr *datatable.ValidationError
		var echoErr *echo.HTTPError
		switch {
		case stderrors.As(err, &apiErr):
			status = apiErr.Status
			message = apiErr.Message
		case stderrors.As(err, &valErr):
			status = http.StatusBadRequest
			message = valErr.Message
		case stderrors.As(err, &echoErr):
			status = echoErr.Code
			message = echoErr.Message
		default:
			log.Error("unhandled error",
				zap.String("path", c.Request().URL.Path),
				zap.Error(err),
			)
		}

		body := Response{
			StatusCode: status,
			Message:    message,
			Timestamp:  time.Now().UTC().Format(time.RFC3339),
			Path:       c.Request().URL.Path,
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, body)
		}
		if writeErr != nil {
			log.Error("write error response", zap.Error(writeErr))
		}
	}
}
