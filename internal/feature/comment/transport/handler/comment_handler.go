// Package handler provides the HTTP handlers of the comment feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"shop_backend/internal/api"
	"shop_backend/internal/feature/comment/domain/entity"
	"shop_backend/internal/feature/comment/transport/http/dto"
	"shop_backend/internal/feature/comment/usecase"
	jwtmw "shop_backend/internal/platform/jwt"
)

type CommentUsecase interface {
	Visible(ctx context.Context) ([]entity.Comment, error)
	Post(ctx context.Context, userID uint, message string) (*entity.Comment, error)
	SetStatus(ctx context.Context, id uint, status entity.Status) (*entity.Comment, error)
}

type CommentHandler struct {
	comments CommentUsecase
}

func NewCommentHandler(comments CommentUsecase) *CommentHandler {
	return &CommentHandler{comments: comments}
}

func writeError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, usecase.ErrCommentNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
	default:
		slog.Error(op+" failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
	}
}

// List handles GET /comments. Hidden comments are left out.
func (h *CommentHandler) List(c *gin.Context) {
	list, err := h.comments.Visible(c.Request.Context())
	if err != nil {
		writeError(c, "list comments", err)
		return
	}
	out := make([]dto.CommentRes, 0, len(list))
	for i := range list {
		out = append(out, dto.NewCommentRes(&list[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Create handles POST /comments.
func (h *CommentHandler) Create(c *gin.Context) {
	var req dto.CommentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		api.AbortInvalid(c, err)
		return
	}
	cm, err := h.comments.Post(c.Request.Context(), jwtmw.UserID(c), req.Message)
	if err != nil {
		writeError(c, "post comment", err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewCommentRes(cm))
}

// SetStatus handles PATCH /comments/:id/status (admin).
func (h *CommentHandler) SetStatus(c *gin.Context) {
	id, ok := api.ParamID(c, "id")
	if !ok {
		return
	}
	var req dto.StatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		api.AbortInvalid(c, err)
		return
	}
	cm, err := h.comments.SetStatus(c.Request.Context(), id, entity.Status(req.Status))
	if err != nil {
		writeError(c, "set comment status", err)
		return
	}
	slog.Info("comment moderated", "comment_id", id, "status", req.Status, "admin_id", jwtmw.UserID(c))
	c.JSON(http.StatusOK, dto.NewCommentRes(cm))
}
