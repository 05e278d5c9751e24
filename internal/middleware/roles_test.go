package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "coursehub/internal/errors"
	"coursehub/internal/model"
)

func newRoleContext(role string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	if role != "" {
		c.Set(principalKey, &model.User{ID: 1, Role: model.Role{Name: role}})
	}
	return c
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestRequireRoles(t *testing.T) {
	tests := []struct {
		name       string
		allowed    []string
		role       string
		wantStatus int
	}{
		{name: "role on allow-list", allowed: []string{model.RoleAdmin}, role: model.RoleAdmin, wantStatus: http.StatusOK},
		{name: "role off allow-list", allowed: []string{model.RoleAdmin}, role: model.RoleStudent, wantStatus: http.StatusForbidden},
		{name: "empty list admits any principal", allowed: nil, role: model.RoleStudent, wantStatus: http.StatusOK},
		{name: "matching is case-insensitive", allowed: []string{"ADMIN"}, role: model.RoleAdmin, wantStatus: http.StatusOK},
		{name: "one of several roles", allowed: []string{model.RoleAdmin, model.RoleInstructor}, role: model.RoleInstructor, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newRoleContext(tt.role)
			err := RequireRoles(tt.allowed...)(okHandler)(c)

			if tt.wantStatus == http.StatusOK {
				assert.NoError(t, err)
				return
			}
			var apiErr *apperrors.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.wantStatus, apiErr.Status)
		})
	}
}

func TestRequireRoles_MissingPrincipalUnauthorized(t *testing.T) {
	c := newRoleContext("")
	err := RequireRoles(model.RoleAdmin)(okHandler)(c)

	var apiErr *apperrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
}
