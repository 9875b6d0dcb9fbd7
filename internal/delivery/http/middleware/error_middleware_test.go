package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"signup/internal/delivery/http/response"
	domainerrors "signup/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer() *echo.Echo {
	e := echo.New()
	em := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	e.HTTPErrorHandler = em.HandleHTTPError

	return e
}

// A request to an unregistered route falls through to the centralized error
// handler and comes back as the JSON error envelope, not echo's default body.
func TestErrorMiddleware_UnknownRoute(t *testing.T) {
	e := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/no/such/route", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "HTTP_ERROR", body.Error.Code)
	assert.Equal(t, "Not Found", body.Error.Message)
	require.NotNil(t, body.Meta)
	assert.NotEmpty(t, body.Meta.RequestID)
}

func TestErrorMiddleware_AppError(t *testing.T) {
	e := newTestServer()
	e.GET("/boom", func(c echo.Context) error {
		return domainerrors.ErrUsernameAlreadyExists.
			WithDetails("test").
			WrapMessage("user registration failed")
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "USERNAME_ALREADY_EXISTS", body.Error.Code)
	assert.Equal(t, "test", body.Error.Details)
}

// Unclassified errors come back as a generic 500 with no internal detail.
func TestErrorMiddleware_UnhandledError(t *testing.T) {
	e := newTestServer()
	e.GET("/boom", func(c echo.Context) error {
		return errors.New("sql: connection is already closed")
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.Nil(t, body.Error.Details)
	assert.NotContains(t, rec.Body.String(), "connection is already closed")
}
