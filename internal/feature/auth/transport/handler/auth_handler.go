// Package handler provides the HTTP handlers of the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"shop_backend/internal/api"
	"shop_backend/internal/feature/auth/domain/entity"
	"shop_backend/internal/feature/auth/transport/http/dto"
	"shop_backend/internal/feature/auth/usecase"
	jwtmw "shop_backend/internal/platform/jwt"
)

// AuthUsecase is declared here, by its consumer, rather than in the usecase package.
type AuthUsecase interface {
	Register(ctx context.Context, in usecase.RegisterInput, client entity.ClientInfo) (*entity.TokenPair, error)
	Login(ctx context.Context, email, password string, client entity.ClientInfo) (*entity.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string, client entity.ClientInfo) (*entity.TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
}

// ProfileUsecase reads and edits the caller's account.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uint) (*entity.User, error)
	UpdateProfile(ctx context.Context, actorID, targetID uint, in usecase.ProfileInput) (*entity.User, error)
}

// AuthHandler handles account and token endpoints.
type AuthHandler struct {
	auth    AuthUsecase
	profile ProfileUsecase
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(auth AuthUsecase, profile ProfileUsecase) *AuthHandler {
	return &AuthHandler{auth: auth, profile: profile}
}

func clientInfo(c *gin.Context) entity.ClientInfo {
	return entity.ClientInfo{UserAgent: c.Request.UserAgent(), IPAddress: c.ClientIP()}
}

func tokenPairResponse(p *entity.TokenPair) api.TokenPairResponse {
	return api.TokenPairResponse{
		Access:    p.AccessToken,
		Refresh:   p.RefreshToken,
		ExpiresIn: int64(p.ExpiresIn.Seconds()),
	}
}

// Register handles POST /register.
//   - 400 on validation errors
//   - 409 when the email, phone number or username is taken
//   - 201 with a token pair on success
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		api.AbortInvalid(c, err)
		return
	}

	pair, err := h.auth.Register(c.Request.Context(), usecase.RegisterInput{
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
		Username:    req.Username,
	}, clientInfo(c))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserAlreadyExists):
			slog.Warn("register conflict", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, usecase.ErrWeakPassword):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		default:
			slog.Error("register failed", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		}
		return
	}

	slog.Info("user registered", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, tokenPairResponse(pair))
}

// Login handles POST /login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		api.AbortInvalid(c, err)
		return
	}

	pair, err := h.auth.Login(c.Request.Context(), req.Email, req.Password, clientInfo(c))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCredentials):
			// never reveal which half of the credentials was wrong
			slog.Warn("login failed", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, usecase.ErrInactiveUser):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		default:
			slog.Error("login failed", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		}
		return
	}

	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, tokenPairResponse(pair))
}

// Refresh handles POST /token/refresh.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshReq
	if err := c.ShouldBindJSON(&req); err != nil {
		api.AbortInvalid(c, err)
		return
	}

	pair, err := h.auth.Refresh(c.Request.Context(), req.Refresh, clientInfo(c))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidRefreshToken), errors.Is(err, usecase.ErrInactiveUser):
			slog.Warn("token refresh rejected", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: usecase.ErrInvalidRefreshToken.Error()})
		default:
			slog.Error("token refresh failed", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, tokenPairResponse(pair))
}

// Logout handles POST /logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	var req dto.RefreshReq
	if err := c.ShouldBindJSON(&req); err != nil {
		api.AbortInvalid(c, err)
		return
	}

	if err := h.auth.Logout(c.Request.Context(), req.Refresh); err != nil {
		if errors.Is(err, usecase.ErrInvalidRefreshToken) {
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: err.Error()})
			return
		}
		slog.Error("logout failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}

// Me handles GET /users/me.
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.profile.GetProfile(c.Request.Context(), jwtmw.UserID(c))
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
			return
		}
		slog.Error("get profile failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, dto.NewUserRes(user))
}

// UpdateProfile handles PUT /users/:id.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	id, ok := api.ParamID(c, "id")
	if !ok {
		return
	}
	var req dto.ProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		api.AbortInvalid(c, err)
		return
	}

	user, err := h.profile.UpdateProfile(c.Request.Context(), jwtmw.UserID(c), id, usecase.ProfileInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrForbidden):
			slog.Warn("profile update forbidden", "target_id", id, "remote_addr", c.ClientIP())
			c.JSON(http.StatusForbidden, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, usecase.ErrUserAlreadyExists):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "email already in use"})
		case errors.Is(err, usecase.ErrWeakPassword):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		default:
			slog.Error("profile update failed", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.NewUserRes(user))
}
