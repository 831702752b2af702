// Package handler provides the HTTP handlers of the review feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"shop_backend/internal/api"
	"shop_backend/internal/feature/review/domain/entity"
	"shop_backend/internal/feature/review/transport/http/dto"
	"shop_backend/internal/feature/review/usecase"
	jwtmw "shop_backend/internal/platform/jwt"
)

type ReviewUsecase interface {
	List(ctx context.Context, productID *uint) ([]entity.Review, error)
	Create(ctx context.Context, userID, productID uint, rating int, comment string) (*entity.Review, error)
	Rating(ctx context.Context, productID uint) (*entity.Rating, error)
}

type ReviewHandler struct {
	reviews ReviewUsecase
}

func NewReviewHandler(reviews ReviewUsecase) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

func writeError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, usecase.ErrProductNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrAlreadyReviewed):
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrInvalidRating):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
	default:
		slog.Error(op+" failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
	}
}

// List handles GET /reviews?product_id=.
func (h *ReviewHandler) List(c *gin.Context) {
	list, err := h.reviews.List(c.Request.Context(), api.QueryUint(c, "product_id"))
	if err != nil {
		writeError(c, "list reviews", err)
		return
	}
	out := make([]dto.ReviewRes, 0, len(list))
	for i := range list {
		out = append(out, dto.NewReviewRes(&list[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Create handles POST /reviews.
func (h *ReviewHandler) Create(c *gin.Context) {
	var req dto.ReviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		api.AbortInvalid(c, err)
		return
	}
	r, err := h.reviews.Create(c.Request.Context(), jwtmw.UserID(c), req.ProductID, req.Rating, req.Comment)
	if err != nil {
		writeError(c, "create review", err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewReviewRes(r))
}

// Rating handles GET /products/:id/rating.
func (h *ReviewHandler) Rating(c *gin.Context) {
	id, ok := api.ParamID(c, "id")
	if !ok {
		return
	}
	r, err := h.reviews.Rating(c.Request.Context(), id)
	if err != nil {
		writeError(c, "product rating", err)
		return
	}
	c.JSON(http.StatusOK, dto.RatingRes{ProductID: r.ProductID, Count: r.Count, Average: r.Average})
}
