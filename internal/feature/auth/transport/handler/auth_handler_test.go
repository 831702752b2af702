package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop_backend/internal/api"
	"shop_backend/internal/feature/auth/domain/entity"
	"shop_backend/internal/feature/auth/usecase"
	jwtmw "shop_backend/internal/platform/jwt"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	api.RegisterValidators()
	os.Exit(m.Run())
}

var validRefresh = strings.Repeat("ab", 32)

type mockAuthUsecase struct {
	RegisterFunc func(ctx context.Context, in usecase.RegisterInput, client entity.ClientInfo) (*entity.TokenPair, error)
	LoginFunc    func(ctx context.Context, email, password string, client entity.ClientInfo) (*entity.TokenPair, error)
	RefreshFunc  func(ctx context.Context, token string, client entity.ClientInfo) (*entity.TokenPair, error)
	LogoutFunc   func(ctx context.Context, token string) error
}

func (m *mockAuthUsecase) Register(ctx context.Context, in usecase.RegisterInput, client entity.ClientInfo) (*entity.TokenPair, error) {
	return m.RegisterFunc(ctx, in, client)
}

func (m *mockAuthUsecase) Login(ctx context.Context, email, password string, client entity.ClientInfo) (*entity.TokenPair, error) {
	return m.LoginFunc(ctx, email, password, client)
}

func (m *mockAuthUsecase) Refresh(ctx context.Context, token string, client entity.ClientInfo) (*entity.TokenPair, error) {
	return m.RefreshFunc(ctx, token, client)
}

func (m *mockAuthUsecase) Logout(ctx context.Context, token string) error {
	return m.LogoutFunc(ctx, token)
}

type mockProfileUsecase struct {
	GetProfileFunc    func(ctx context.Context, userID uint) (*entity.User, error)
	UpdateProfileFunc func(ctx context.Context, actorID, targetID uint, in usecase.ProfileInput) (*entity.User, error)
}

func (m *mockProfileUsecase) GetProfile(ctx context.Context, userID uint) (*entity.User, error) {
	return m.GetProfileFunc(ctx, userID)
}

func (m *mockProfileUsecase) UpdateProfile(ctx context.Context, actorID, targetID uint, in usecase.ProfileInput) (*entity.User, error) {
	return m.UpdateProfileFunc(ctx, actorID, targetID, in)
}

func okPair(context.Context, string, string, entity.ClientInfo) (*entity.TokenPair, error) {
	return &entity.TokenPair{AccessToken: "acc", RefreshToken: validRefresh, ExpiresIn: 15 * time.Minute}, nil
}

// newRouter wires h with a fake auth step that authenticates as user 7.
func newRouter(h *AuthHandler) *gin.Engine {
	r := gin.New()
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	r.POST("/token/refresh", h.Refresh)
	r.POST("/logout", h.Logout)
	authed := r.Group("/", func(c *gin.Context) {
		c.Set(jwtmw.ContextUserID, uint(7))
		c.Next()
	})
	authed.GET("/users/me", h.Me)
	authed.PUT("/users/:id", h.UpdateProfile)
	return r
}

func doJSON(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Register(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    gin.H
		registerFunc   func(context.Context, usecase.RegisterInput, entity.ClientInfo) (*entity.TokenPair, error)
		expectedStatus int
		expectedBody   gin.H
	}{
		{
			name:        "success: user registration",
			requestBody: gin.H{"email": "test@example.com", "phone_number": "+998901234567", "password": "password123"},
			registerFunc: func(_ context.Context, in usecase.RegisterInput, _ entity.ClientInfo) (*entity.TokenPair, error) {
				return okPair(context.Background(), in.Email, in.Password, entity.ClientInfo{})
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   gin.H{"access": "acc", "refresh": validRefresh, "expires_in": float64(900)},
		},
		{
			name:           "failure: invalid email address",
			requestBody:    gin.H{"email": "invalid-email", "phone_number": "+998901234567", "password": "password123"},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "invalid request", "fields": map[string]any{"email": "email"}},
		},
		{
			name:           "failure: short password and bad phone",
			requestBody:    gin.H{"email": "test@example.com", "phone_number": "call me", "password": "short"},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "invalid request", "fields": map[string]any{"password": "min=8", "phone_number": "phone"}},
		},
		{
			name:           "failure: password longer than 72 characters",
			requestBody:    gin.H{"email": "test@example.com", "phone_number": "+998901234567", "password": strings.Repeat("p", 80)},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "invalid request", "fields": map[string]any{"password": "max=72"}},
		},
		{
			name:        "failure: multibyte password over 72 bytes",
			requestBody: gin.H{"email": "test@example.com", "phone_number": "+998901234567", "password": strings.Repeat("パ", 30)},
			registerFunc: func(context.Context, usecase.RegisterInput, entity.ClientInfo) (*entity.TokenPair, error) {
				return nil, usecase.ErrWeakPassword
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "invalid password length"},
		},
		{
			name:        "failure: duplicate user",
			requestBody: gin.H{"email": "existing@example.com", "phone_number": "+998901234567", "password": "password123"},
			registerFunc: func(context.Context, usecase.RegisterInput, entity.ClientInfo) (*entity.TokenPair, error) {
				return nil, usecase.ErrUserAlreadyExists
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   gin.H{"error": "user already exists"},
		},
		{
			name:        "failure: unexpected error is hidden",
			requestBody: gin.H{"email": "x@example.com", "phone_number": "+998901234567", "password": "password123"},
			registerFunc: func(context.Context, usecase.RegisterInput, entity.ClientInfo) (*entity.TokenPair, error) {
				return nil, errors.New("pq: connection refused")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   gin.H{"error": "internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockAuthUsecase{RegisterFunc: tt.registerFunc}
			r := newRouter(NewAuthHandler(mockUC, &mockProfileUsecase{}))

			w := doJSON(r, http.MethodPost, "/register", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			var body gin.H
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedBody, body)
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    gin.H
		loginErr       error
		expectedStatus int
	}{
		{"success", gin.H{"email": "test@example.com", "password": "password123"}, nil, http.StatusOK},
		{"missing password", gin.H{"email": "test@example.com"}, nil, http.StatusBadRequest},
		{"bad credentials", gin.H{"email": "test@example.com", "password": "nope"}, usecase.ErrInvalidCredentials, http.StatusUnauthorized},
		{"inactive account", gin.H{"email": "test@example.com", "password": "password123"}, usecase.ErrInactiveUser, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotClient entity.ClientInfo
			mockUC := &mockAuthUsecase{LoginFunc: func(ctx context.Context, email, password string, client entity.ClientInfo) (*entity.TokenPair, error) {
				gotClient = client
				if tt.loginErr != nil {
					return nil, tt.loginErr
				}
				return okPair(ctx, email, password, client)
			}}
			r := newRouter(NewAuthHandler(mockUC, &mockProfileUsecase{}))

			w := doJSON(r, http.MethodPost, "/login", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var res api.TokenPairResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
				assert.Equal(t, "acc", res.Access)
				assert.Equal(t, int64(900), res.ExpiresIn)
				assert.Equal(t, "192.0.2.1", gotClient.IPAddress)
			}
		})
	}
}

func TestAuthHandler_RefreshAndLogout(t *testing.T) {
	mockUC := &mockAuthUsecase{
		RefreshFunc: func(_ context.Context, token string, _ entity.ClientInfo) (*entity.TokenPair, error) {
			if token != validRefresh {
				return nil, usecase.ErrInvalidRefreshToken
			}
			return &entity.TokenPair{AccessToken: "new", RefreshToken: strings.Repeat("cd", 32), ExpiresIn: time.Minute}, nil
		},
		LogoutFunc: func(_ context.Context, token string) error {
			if token != validRefresh {
				return usecase.ErrInvalidRefreshToken
			}
			return nil
		},
	}
	r := newRouter(NewAuthHandler(mockUC, &mockProfileUsecase{}))
	unknown := strings.Repeat("ef", 32)

	w := doJSON(r, http.MethodPost, "/token/refresh", gin.H{"refresh": validRefresh})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"access":"new"`)

	w = doJSON(r, http.MethodPost, "/token/refresh", gin.H{"refresh": unknown})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodPost, "/token/refresh", gin.H{"refresh": "short"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPost, "/logout", gin.H{"refresh": validRefresh})
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = doJSON(r, http.MethodPost, "/logout", gin.H{"refresh": unknown})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Me(t *testing.T) {
	profile := &mockProfileUsecase{GetProfileFunc: func(_ context.Context, id uint) (*entity.User, error) {
		return &entity.User{ID: id, Email: "me@example.com", Password: "secret-hash", Role: entity.RoleUser}, nil
	}}
	r := newRouter(NewAuthHandler(&mockAuthUsecase{}, profile))

	w := doJSON(r, http.MethodGet, "/users/me", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":7`)
	assert.NotContains(t, w.Body.String(), "secret-hash")
}

func TestAuthHandler_UpdateProfile(t *testing.T) {
	body := gin.H{"first_name": "Ali", "email": "ali@example.com", "password": "password123"}

	tests := []struct {
		name           string
		path           string
		body           gin.H
		updateErr      error
		expectedStatus int
	}{
		{"own profile", "/users/7", body, nil, http.StatusOK},
		{"someone else", "/users/8", body, usecase.ErrForbidden, http.StatusForbidden},
		{"email taken", "/users/7", body, usecase.ErrUserAlreadyExists, http.StatusConflict},
		{"bad id", "/users/abc", body, nil, http.StatusBadRequest},
		{"missing first name", "/users/7", gin.H{"email": "ali@example.com", "password": "password123"}, nil, http.StatusBadRequest},
		{"password too long", "/users/7", gin.H{"first_name": "Ali", "email": "ali@example.com", "password": strings.Repeat("p", 73)}, nil, http.StatusBadRequest},
		{"password over 72 bytes", "/users/7", gin.H{"first_name": "Ali", "email": "ali@example.com", "password": strings.Repeat("パ", 30)}, usecase.ErrWeakPassword, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := &mockProfileUsecase{UpdateProfileFunc: func(_ context.Context, actorID, targetID uint, in usecase.ProfileInput) (*entity.User, error) {
				assert.Equal(t, uint(7), actorID)
				if tt.updateErr != nil {
					return nil, tt.updateErr
				}
				return &entity.User{ID: targetID, FirstName: in.FirstName, Email: in.Email}, nil
			}}
			r := newRouter(NewAuthHandler(&mockAuthUsecase{}, profile))

			w := doJSON(r, http.MethodPut, tt.path, tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
