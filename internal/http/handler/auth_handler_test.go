package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/furnishhq/quotation-api/internal/domain"
)

func TestSignupEndpoint(t *testing.T) {
	env := newHandlerEnv(t)

	req := env.newRequest(t, http.MethodPost, "/api/v1/auth/signup", &domain.SignupRequest{
		Name:     "Priya",
		Email:    "priya@example.com",
		Password: "s3cret-pass",
	})
	req = req.WithContext(context.Background())
	w := httptest.NewRecorder()
	env.authHandler.Signup(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	resp := decodeJSON[domain.AuthResponse](t, w)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "priya@example.com", resp.User.Email)
}

func TestSignupEndpointValidationError(t *testing.T) {
	env := newHandlerEnv(t)

	// Password below the minimum length and a malformed email.
	req := env.newRequest(t, http.MethodPost, "/api/v1/auth/signup", &domain.SignupRequest{
		Name:     "Priya",
		Email:    "not-an-email",
		Password: "abc",
	})
	req = req.WithContext(context.Background())
	w := httptest.NewRecorder()
	env.authHandler.Signup(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	apiErr := decodeJSON[domain.APIError](t, w)
	assert.Contains(t, apiErr.Errors, "email")
	assert.Contains(t, apiErr.Errors, "password")
}

func TestSignupEndpointDuplicateEmail(t *testing.T) {
	env := newHandlerEnv(t)

	signup := func() *httptest.ResponseRecorder {
		req := env.newRequest(t, http.MethodPost, "/api/v1/auth/signup", &domain.SignupRequest{
			Name:     "Priya",
			Email:    "priya@example.com",
			Password: "s3cret-pass",
		})
		w := httptest.NewRecorder()
		env.authHandler.Signup(w, req)
		return w
	}

	require.Equal(t, http.StatusCreated, signup().Code)
	assert.Equal(t, http.StatusConflict, signup().Code)
}

func TestLoginEndpointRejectsBadPassword(t *testing.T) {
	env := newHandlerEnv(t)

	req := env.newRequest(t, http.MethodPost, "/api/v1/auth/signup", &domain.SignupRequest{
		Name:     "Priya",
		Email:    "priya@example.com",
		Password: "s3cret-pass",
	})
	w := httptest.NewRecorder()
	env.authHandler.Signup(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	req = env.newRequest(t, http.MethodPost, "/api/v1/auth/login", &domain.LoginRequest{
		Email:    "priya@example.com",
		Password: "wrong-pass",
	})
	w = httptest.NewRecorder()
	env.authHandler.Login(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMeEndpoint(t *testing.T) {
	env := newHandlerEnv(t)

	req := env.newRequest(t, http.MethodGet, "/api/v1/auth/me", nil)
	w := httptest.NewRecorder()
	env.authHandler.Me(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	me := decodeJSON[domain.UserDTO](t, w)
	assert.Equal(t, env.user.ID, me.ID)
	assert.Equal(t, "meena@example.com", me.Email)
}
