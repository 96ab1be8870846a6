// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"rapideat_backend/internal/api"
	"rapideat_backend/internal/feature/auth/domain/entity"
	"rapideat_backend/internal/feature/auth/transport/http/dto"
	"rapideat_backend/internal/feature/auth/usecase"
)

// AuthUsecase defines the auth operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type AuthUsecase interface {
	// Register creates a new account and returns the raw session token.
	Register(ctx context.Context, name, email, password, confirmPassword string) (string, error)
	// Login authenticates a user and returns the raw session token.
	Login(ctx context.Context, email, password string) (string, error)
	// ResolveCurrentUser returns the user owning the token, or nil when unauthenticated.
	ResolveCurrentUser(ctx context.Context, rawToken string) (*entity.SafeUser, error)
	// DestroySession deletes the session behind the token, idempotently.
	DestroySession(ctx context.Context, rawToken string) error
}

// CookieConfig describes how the session cookie is written to responses.
type CookieConfig struct {
	Name   string
	MaxAge int  // seconds
	Secure bool // true in production, so the cookie only travels over HTTPS
}

// AuthHandler handles HTTP requests for registration, login, logout, and the
// current-user lookup. The session token never appears in a response body;
// it travels exclusively in the HttpOnly cookie.
type AuthHandler struct {
	auth   AuthUsecase
	cookie CookieConfig
}

// NewAuthHandler creates a new instance of AuthHandler.
func NewAuthHandler(auth AuthUsecase, cookie CookieConfig) *AuthHandler {
	return &AuthHandler{auth: auth, cookie: cookie}
}

// Register handles the user registration endpoint.
// - 400 with per-field errors when validation fails
// - 409 when the email is already taken
// - 503 when the backing store is unreachable
// - 201 with the session cookie set on success
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register: malformed request body", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	token, err := h.auth.Register(c.Request.Context(), req.Name, req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		h.writeAuthError(c, "register", req.Email, err)
		return
	}

	h.setSessionCookie(c, token)
	slog.Info("user registered", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, api.AuthFormState{
		Status:  api.StatusSuccess,
		Message: "Welcome aboard! Redirecting...",
	})
}

// Login handles the user login endpoint.
// - 400 with per-field errors when validation fails
// - 401 when the credentials do not match
// - 503 when the backing store is unreachable
// - 200 with the session cookie set on success
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login: malformed request body", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.writeAuthError(c, "login", req.Email, err)
		return
	}

	h.setSessionCookie(c, token)
	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.AuthFormState{
		Status:  api.StatusSuccess,
		Message: "Logged in successfully!",
	})
}

// Logout destroys the current session and clears the cookie. It succeeds even
// when no session exists, so repeated logouts are harmless.
func (h *AuthHandler) Logout(c *gin.Context) {
	token, _ := c.Cookie(h.cookie.Name)

	if err := h.auth.DestroySession(c.Request.Context(), token); err != nil {
		slog.Error("logout failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Error: "logout failed, please try again"})
		return
	}

	h.clearSessionCookie(c)
	c.JSON(http.StatusOK, api.MessageResponse{Message: "logged out"})
}

// Me returns the sanitized current user, or 401 when the request carries no
// valid session.
func (h *AuthHandler) Me(c *gin.Context) {
	token, _ := c.Cookie(h.cookie.Name)

	user, err := h.auth.ResolveCurrentUser(c.Request.Context(), token)
	if err != nil || user == nil {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthenticated"})
		return
	}

	c.JSON(http.StatusOK, api.CurrentUserResponse{User: user})
}

// writeAuthError maps usecase errors onto form states the frontend renders
// next to the offending inputs.
func (h *AuthHandler) writeAuthError(c *gin.Context, op, email string, err error) {
	var verr *usecase.ValidationError
	var cerr *usecase.InvalidCredentialsError

	switch {
	case errors.As(err, &verr):
		slog.Warn(op+": validation failed", "fields", len(verr.Fields), "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.AuthFormState{
			Status:      api.StatusError,
			Message:     "Please fix the highlighted fields",
			FieldErrors: verr.Fields,
		})
	case errors.Is(err, usecase.ErrEmailAlreadyExists):
		slog.Warn("register: email already taken", "email", email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusConflict, api.AuthFormState{
			Status:      api.StatusError,
			Message:     "This email is already registered",
			FieldErrors: map[string]string{"email": "Email already in use"},
		})
	case errors.As(err, &cerr):
		slog.Warn("login: invalid credentials", "field", cerr.Field, "remote_addr", c.ClientIP())
		fieldErrors := map[string]string{"email": "Email not found"}
		if cerr.Field == "password" {
			fieldErrors = map[string]string{"password": "Incorrect password"}
		}
		c.JSON(http.StatusUnauthorized, api.AuthFormState{
			Status:      api.StatusError,
			Message:     "Invalid credentials",
			FieldErrors: fieldErrors,
		})
	default:
		slog.Error(op+" failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusServiceUnavailable, api.AuthFormState{
			Status:  api.StatusError,
			Message: "Unable to reach the database. Please try again later.",
		})
	}
}

// setSessionCookie writes the session cookie the way browsers expect for a
// first-party auth flow: HttpOnly always, Secure in production, Lax so
// top-level navigations keep the session.
func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, token, h.cookie.MaxAge, "/", "", h.cookie.Secure, true)
}

// clearSessionCookie expires the session cookie immediately.
func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, "", -1, "/", "", h.cookie.Secure, true)
}
