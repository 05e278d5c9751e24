package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursehub/internal/auth"
	apperrors "coursehub/internal/errors"
	"coursehub/internal/model"
)

type fakeAuthService struct {
	login  func(email, password string) (auth.TokenPair, *model.User, error)
	signUp func(email, password, firstName, lastName string) (auth.TokenPair, *model.User, error)
	logout func(userID uint) error
}

func (f *fakeAuthService) Login(ctx context.Context, email, password string) (auth.TokenPair, *model.User, error) {
	return f.login(email, password)
}

func (f *fakeAuthService) SignUp(ctx context.Context, email, password, firstName, lastName string) (auth.TokenPair, *model.User, error) {
	return f.signUp(email, password, firstName, lastName)
}

func (f *fakeAuthService) Refresh(ctx context.Context, user *model.User) (auth.TokenPair, error) {
	return auth.TokenPair{}, nil
}

func (f *fakeAuthService) Logout(ctx context.Context, userID uint) error {
	return f.logout(userID)
}

func (f *fakeAuthService) ValidateAccessToken(ctx context.Context, claims *auth.Claims) (*model.User, error) {
	return nil, apperrors.ErrInvalidToken
}

func (f *fakeAuthService) ValidateRefreshToken(ctx context.Context, claims *auth.Claims, refreshToken string) (*model.User, error) {
	return nil, apperrors.ErrInvalidToken
}

type testValidator struct {
	v *validator.Validate
}

func (t *testValidator) Validate(i interface{}) error {
	return t.v.Struct(i)
}

func newAuthTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = &testValidator{v: validator.New()}
	return e
}

func refreshCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "refreshToken" {
			return cookie
		}
	}
	t.Fatal("refreshToken cookie not set")
	return nil
}

func TestLogin_SetsHTTPOnlyRefreshCookie(t *testing.T) {
	pair := auth.TokenPair{AccessToken: "access.jwt", RefreshToken: "refresh.jwt"}
	svc := &fakeAuthService{
		login: func(email, password string) (auth.TokenPair, *model.User, error) {
			assert.Equal(t, "ada@example.com", email)
			assert.Equal(t, "s3cret", password)
			return pair, &model.User{ID: 1, Email: email}, nil
		},
	}
	jwtSvc := auth.NewJWTService("a", "r", 15*time.Minute, 7*24*time.Hour)
	h := NewAuthHandler(svc, jwtSvc)

	e := newAuthTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"ada@example.com","password":"s3cret"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Login(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body auth.TokenPair
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, pair, body)

	cookie := refreshCookie(t, rec)
	assert.Equal(t, "refresh.jwt", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/api/auth", cookie.Path)
	assert.True(t, cookie.Expires.After(time.Now().Add(6*24*time.Hour)))
}

func TestLogin_InvalidBodyRejectedBeforeService(t *testing.T) {
	svc := &fakeAuthService{
		login: func(email, password string) (auth.TokenPair, *model.User, error) {
			t.Fatal("service must not be called for invalid requests")
			return auth.TokenPair{}, nil, nil
		},
	}
	jwtSvc := auth.NewJWTService("a", "r", time.Minute, time.Minute)
	h := NewAuthHandler(svc, jwtSvc)

	e := newAuthTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"not-an-email","password":""}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := h.Login(e.NewContext(req, rec))
	var echoErr *echo.HTTPError
	require.ErrorAs(t, err, &echoErr)
	assert.Equal(t, http.StatusBadRequest, echoErr.Code)
}

func TestSignUp_Returns201WithPair(t *testing.T) {
	pair := auth.TokenPair{AccessToken: "access.jwt", RefreshToken: "refresh.jwt"}
	svc := &fakeAuthService{
		signUp: func(email, password, firstName, lastName string) (auth.TokenPair, *model.User, error) {
			assert.Equal(t, "Grace", firstName)
			return pair, &model.User{ID: 2, Email: email}, nil
		},
	}
	jwtSvc := auth.NewJWTService("a", "r", time.Minute, time.Minute)
	h := NewAuthHandler(svc, jwtSvc)

	e := newAuthTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup",
		strings.NewReader(`{"email":"grace@example.com","password":"s3cret","firstName":"Grace","lastName":"Hopper"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.SignUp(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "refresh.jwt", refreshCookie(t, rec).Value)
}

func TestLogout_ClearsCookieAndReturns204(t *testing.T) {
	svc := &fakeAuthService{
		logout: func(userID uint) error {
			assert.EqualValues(t, 7, userID)
			return nil
		},
	}
	jwtSvc := auth.NewJWTService("a", "r", time.Minute, time.Minute)
	h := NewAuthHandler(svc, jwtSvc)

	e := newAuthTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("principal", &model.User{ID: 7, Email: "ada@example.com"})

	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	cookie := refreshCookie(t, rec)
	assert.Empty(t, cookie.Value)
	assert.Less(t, cookie.MaxAge, 0)
}

func TestLogout_WithoutPrincipalUnauthorized(t *testing.T) {
	svc := &fakeAuthService{
		logout: func(userID uint) error {
			t.Fatal("logout must not run without a principal")
			return nil
		},
	}
	jwtSvc := auth.NewJWTService("a", "r", time.Minute, time.Minute)
	h := NewAuthHandler(svc, jwtSvc)

	e := newAuthTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	err := h.Logout(c)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}
