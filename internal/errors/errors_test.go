package errors

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"coursehub/internal/datatable"
)

func handle(t *testing.T, err error, path string) (*httptest.ResponseRecorder, Response) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zap.NewNop())(err, c)

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestHTTPErrorHandler_APIError(t *testing.T) {
	rec, body := handle(t, ErrWrongCredentials, "/api/auth/login")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, http.StatusUnauthorized, body.StatusCode)
	assert.Equal(t, "Wrong credentials!", body.Message)
	assert.Equal(t, "/api/auth/login", body.Path)
	assert.NotEmpty(t, body.Timestamp)
}

func TestHTTPErrorHandler_DatatableValidationError(t *testing.T) {
	valErr := &datatable.ValidationError{Column: "secret", Message: `invalid column "secret"`}
	rec, body := handle(t, valErr, "/api/courses")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, `invalid column "secret"`, body.Message)
}

func TestHTTPErrorHandler_EchoHTTPError(t *testing.T) {
	rec, body := handle(t, echo.NewHTTPError(http.StatusBadRequest, "invalid request body"), "/api/courses")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid request body", body.Message)
}

func TestHTTPErrorHandler_UnknownErrorHidesDetails(t *testing.T) {
	rec, body := handle(t, stderrors.New("dial tcp 10.0.0.5:3306: connect: connection refused"), "/api/users")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", body.Message)
	assert.NotContains(t, rec.Body.String(), "10.0.0.5")
}
