package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rapideat_backend/internal/feature/auth/domain/entity"
	"rapideat_backend/internal/feature/auth/usecase"
)

// mockAuthUsecase is a mock implementation of the AuthUsecase interface.
type mockAuthUsecase struct {
	RegisterFunc           func(ctx context.Context, name, email, password, confirmPassword string) (string, error)
	LoginFunc              func(ctx context.Context, email, password string) (string, error)
	ResolveCurrentUserFunc func(ctx context.Context, rawToken string) (*entity.SafeUser, error)
	DestroySessionFunc     func(ctx context.Context, rawToken string) error
}

func (m *mockAuthUsecase) Register(ctx context.Context, name, email, password, confirmPassword string) (string, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, name, email, password, confirmPassword)
	}
	return "", errors.New("register failed")
}

func (m *mockAuthUsecase) Login(ctx context.Context, email, password string) (string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return "", errors.New("login failed")
}

func (m *mockAuthUsecase) ResolveCurrentUser(ctx context.Context, rawToken string) (*entity.SafeUser, error) {
	if m.ResolveCurrentUserFunc != nil {
		return m.ResolveCurrentUserFunc(ctx, rawToken)
	}
	return nil, nil
}

func (m *mockAuthUsecase) DestroySession(ctx context.Context, rawToken string) error {
	if m.DestroySessionFunc != nil {
		return m.DestroySessionFunc(ctx, rawToken)
	}
	return nil
}

func testCookieConfig() CookieConfig {
	return CookieConfig{Name: "rapideat_session", MaxAge: 604800, Secure: false}
}

// sessionCookie returns the session cookie from the recorded response, or nil.
func sessionCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, ck := range w.Result().Cookies() {
		if ck.Name == name {
			return ck
		}
	}
	return nil
}

func TestAuthHandler_Register(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name            string
		requestBody     gin.H
		mockRegister    func(ctx context.Context, name, email, password, confirmPassword string) (string, error)
		expectedStatus  int
		expectedState   gin.H
		expectSetCookie bool
	}{
		{
			name:        "success: user registration sets the session cookie",
			requestBody: gin.H{"name": "Taro", "email": "taro@example.com", "password": "password123", "confirmPassword": "password123"},
			mockRegister: func(ctx context.Context, name, email, password, confirmPassword string) (string, error) {
				return "raw-session-token", nil
			},
			expectedStatus:  http.StatusCreated,
			expectedState:   gin.H{"status": "success", "message": "Welcome aboard! Redirecting..."},
			expectSetCookie: true,
		},
		{
			name:        "failure: validation errors list every offending field",
			requestBody: gin.H{"name": "T", "email": "not-an-email", "password": "short", "confirmPassword": "other"},
			mockRegister: func(ctx context.Context, name, email, password, confirmPassword string) (string, error) {
				return "", &usecase.ValidationError{Fields: map[string]string{
					"name":            "Name is too short",
					"email":           "Please enter a valid email",
					"password":        "Password must be at least 8 characters",
					"confirmPassword": "Passwords do not match",
				}}
			},
			expectedStatus: http.StatusBadRequest,
			expectedState: gin.H{
				"status":  "error",
				"message": "Please fix the highlighted fields",
				"fieldErrors": map[string]any{
					"name":            "Name is too short",
					"email":           "Please enter a valid email",
					"password":        "Password must be at least 8 characters",
					"confirmPassword": "Passwords do not match",
				},
			},
		},
		{
			name:        "failure: duplicate email",
			requestBody: gin.H{"name": "Taro", "email": "taken@example.com", "password": "password123", "confirmPassword": "password123"},
			mockRegister: func(ctx context.Context, name, email, password, confirmPassword string) (string, error) {
				return "", usecase.ErrEmailAlreadyExists
			},
			expectedStatus: http.StatusConflict,
			expectedState: gin.H{
				"status":      "error",
				"message":     "This email is already registered",
				"fieldErrors": map[string]any{"email": "Email already in use"},
			},
		},
		{
			name:        "failure: store unavailable",
			requestBody: gin.H{"name": "Taro", "email": "taro@example.com", "password": "password123", "confirmPassword": "password123"},
			mockRegister: func(ctx context.Context, name, email, password, confirmPassword string) (string, error) {
				return "", usecase.ErrStoreUnavailable
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedState:  gin.H{"status": "error", "message": "Unable to reach the database. Please try again later."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockAuthUsecase{RegisterFunc: tt.mockRegister}
			h := NewAuthHandler(mockUC, testCookieConfig())

			router := gin.New()
			router.POST("/auth/register", h.Register)

			body, _ := json.Marshal(tt.requestBody)
			req, _ := http.NewRequest(http.MethodPost, "/auth/register", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var responseBody gin.H
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &responseBody))
			assert.Equal(t, tt.expectedState, responseBody)

			ck := sessionCookie(w, "rapideat_session")
			if tt.expectSetCookie {
				require.NotNil(t, ck, "expected session cookie to be set")
				assert.Equal(t, "raw-session-token", ck.Value)
				assert.True(t, ck.HttpOnly)
				assert.Equal(t, "/", ck.Path)
				assert.Equal(t, 604800, ck.MaxAge)
				assert.Equal(t, http.SameSiteLaxMode, ck.SameSite)
			} else {
				assert.Nil(t, ck, "no session cookie expected on failure")
			}
		})
	}
}

func TestAuthHandler_Register_MalformedBody(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewAuthHandler(&mockAuthUsecase{}, testCookieConfig())
	router := gin.New()
	router.POST("/auth/register", h.Register)

	req, _ := http.NewRequest(http.MethodPost, "/auth/register", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request")
}

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name            string
		requestBody     gin.H
		mockLogin       func(ctx context.Context, email, password string) (string, error)
		expectedStatus  int
		expectedState   gin.H
		expectSetCookie bool
	}{
		{
			name:        "success: login sets the session cookie",
			requestBody: gin.H{"email": "taro@example.com", "password": "password123"},
			mockLogin: func(ctx context.Context, email, password string) (string, error) {
				return "raw-session-token", nil
			},
			expectedStatus:  http.StatusOK,
			expectedState:   gin.H{"status": "success", "message": "Logged in successfully!"},
			expectSetCookie: true,
		},
		{
			name:        "failure: unknown email is reported on the email field",
			requestBody: gin.H{"email": "nobody@example.com", "password": "password123"},
			mockLogin: func(ctx context.Context, email, password string) (string, error) {
				return "", &usecase.InvalidCredentialsError{Field: "email"}
			},
			expectedStatus: http.StatusUnauthorized,
			expectedState: gin.H{
				"status":      "error",
				"message":     "Invalid credentials",
				"fieldErrors": map[string]any{"email": "Email not found"},
			},
		},
		{
			name:        "failure: wrong password is reported on the password field",
			requestBody: gin.H{"email": "taro@example.com", "password": "wrong-password"},
			mockLogin: func(ctx context.Context, email, password string) (string, error) {
				return "", &usecase.InvalidCredentialsError{Field: "password"}
			},
			expectedStatus: http.StatusUnauthorized,
			expectedState: gin.H{
				"status":      "error",
				"message":     "Invalid credentials",
				"fieldErrors": map[string]any{"password": "Incorrect password"},
			},
		},
		{
			name:        "failure: validation errors",
			requestBody: gin.H{"email": "", "password": ""},
			mockLogin: func(ctx context.Context, email, password string) (string, error) {
				return "", &usecase.ValidationError{Fields: map[string]string{
					"email":    "Please enter a valid email",
					"password": "Password is required",
				}}
			},
			expectedStatus: http.StatusBadRequest,
			expectedState: gin.H{
				"status":  "error",
				"message": "Please fix the highlighted fields",
				"fieldErrors": map[string]any{
					"email":    "Please enter a valid email",
					"password": "Password is required",
				},
			},
		},
		{
			name:        "failure: store unavailable",
			requestBody: gin.H{"email": "taro@example.com", "password": "password123"},
			mockLogin: func(ctx context.Context, email, password string) (string, error) {
				return "", usecase.ErrStoreUnavailable
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedState:  gin.H{"status": "error", "message": "Unable to reach the database. Please try again later."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockAuthUsecase{LoginFunc: tt.mockLogin}
			h := NewAuthHandler(mockUC, testCookieConfig())

			router := gin.New()
			router.POST("/auth/login", h.Login)

			body, _ := json.Marshal(tt.requestBody)
			req, _ := http.NewRequest(http.MethodPost, "/auth/login", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var responseBody gin.H
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &responseBody))
			assert.Equal(t, tt.expectedState, responseBody)

			ck := sessionCookie(w, "rapideat_session")
			if tt.expectSetCookie {
				require.NotNil(t, ck, "expected session cookie to be set")
				assert.Equal(t, "raw-session-token", ck.Value)
				assert.True(t, ck.HttpOnly)
			} else {
				assert.Nil(t, ck, "no session cookie expected on failure")
			}
		})
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("destroys the session and expires the cookie", func(t *testing.T) {
		var destroyedToken string
		mockUC := &mockAuthUsecase{
			DestroySessionFunc: func(ctx context.Context, rawToken string) error {
				destroyedToken = rawToken
				return nil
			},
		}
		h := NewAuthHandler(mockUC, testCookieConfig())

		router := gin.New()
		router.POST("/auth/logout", h.Logout)

		req, _ := http.NewRequest(http.MethodPost, "/auth/logout", nil)
		req.AddCookie(&http.Cookie{Name: "rapideat_session", Value: "raw-session-token"})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "raw-session-token", destroyedToken)

		ck := sessionCookie(w, "rapideat_session")
		require.NotNil(t, ck)
		assert.Empty(t, ck.Value)
		assert.Negative(t, ck.MaxAge, "cookie must be expired")
	})

	t.Run("succeeds without a cookie", func(t *testing.T) {
		called := false
		mockUC := &mockAuthUsecase{
			DestroySessionFunc: func(ctx context.Context, rawToken string) error {
				called = true
				assert.Empty(t, rawToken)
				return nil
			},
		}
		h := NewAuthHandler(mockUC, testCookieConfig())

		router := gin.New()
		router.POST("/auth/logout", h.Logout)

		req, _ := http.NewRequest(http.MethodPost, "/auth/logout", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, called)
	})

	t.Run("store failure returns 503 and keeps the cookie", func(t *testing.T) {
		mockUC := &mockAuthUsecase{
			DestroySessionFunc: func(ctx context.Context, rawToken string) error {
				return usecase.ErrStoreUnavailable
			},
		}
		h := NewAuthHandler(mockUC, testCookieConfig())

		router := gin.New()
		router.POST("/auth/logout", h.Logout)

		req, _ := http.NewRequest(http.MethodPost, "/auth/logout", nil)
		req.AddCookie(&http.Cookie{Name: "rapideat_session", Value: "raw-session-token"})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Nil(t, sessionCookie(w, "rapideat_session"))
	})
}

func TestAuthHandler_Me(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns the sanitized current user", func(t *testing.T) {
		mockUC := &mockAuthUsecase{
			ResolveCurrentUserFunc: func(ctx context.Context, rawToken string) (*entity.SafeUser, error) {
				assert.Equal(t, "raw-session-token", rawToken)
				return &entity.SafeUser{ID: 7, Name: "Taro", Email: "taro@example.com", Role: "user"}, nil
			},
		}
		h := NewAuthHandler(mockUC, testCookieConfig())

		router := gin.New()
		router.GET("/auth/me", h.Me)

		req, _ := http.NewRequest(http.MethodGet, "/auth/me", nil)
		req.AddCookie(&http.Cookie{Name: "rapideat_session", Value: "raw-session-token"})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var responseBody struct {
			User *entity.SafeUser `json:"user"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &responseBody))
		require.NotNil(t, responseBody.User)
		assert.Equal(t, uint(7), responseBody.User.ID)
		assert.Equal(t, "taro@example.com", responseBody.User.Email)
	})

	t.Run("no cookie returns 401", func(t *testing.T) {
		h := NewAuthHandler(&mockAuthUsecase{}, testCookieConfig())

		router := gin.New()
		router.GET("/auth/me", h.Me)

		req, _ := http.NewRequest(http.MethodGet, "/auth/me", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "unauthenticated")
	})

	t.Run("stale session resolves to 401", func(t *testing.T) {
		mockUC := &mockAuthUsecase{
			ResolveCurrentUserFunc: func(ctx context.Context, rawToken string) (*entity.SafeUser, error) {
				return nil, nil
			},
		}
		h := NewAuthHandler(mockUC, testCookieConfig())

		router := gin.New()
		router.GET("/auth/me", h.Me)

		req, _ := http.NewRequest(http.MethodGet, "/auth/me", nil)
		req.AddCookie(&http.Cookie{Name: "rapideat_session", Value: "stale-token"})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
