// Package handler provides the HTTP handlers of the wishlist.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"shop_backend/internal/api"
	"shop_backend/internal/feature/wishlist/domain/entity"
	"shop_backend/internal/feature/wishlist/transport/http/dto"
	"shop_backend/internal/feature/wishlist/usecase"
	jwtmw "shop_backend/internal/platform/jwt"
)

type WishlistUsecase interface {
	List(ctx context.Context, userID uint) ([]entity.WishlistItem, error)
	Add(ctx context.Context, userID, productID uint) (*entity.WishlistItem, error)
	Remove(ctx context.Context, userID, id uint) error
}

type WishlistHandler struct {
	wishlist WishlistUsecase
}

func NewWishlistHandler(wishlist WishlistUsecase) *WishlistHandler {
	return &WishlistHandler{wishlist: wishlist}
}

func writeError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, usecase.ErrItemNotFound), errors.Is(err, usecase.ErrProductNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrAlreadyListed):
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
	default:
		slog.Error(op+" failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
	}
}

// List handles GET /wishlist.
func (h *WishlistHandler) List(c *gin.Context) {
	items, err := h.wishlist.List(c.Request.Context(), jwtmw.UserID(c))
	if err != nil {
		writeError(c, "list wishlist", err)
		return
	}
	out := make([]dto.WishlistItemRes, 0, len(items))
	for i := range items {
		out = append(out, dto.NewWishlistItemRes(&items[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Add handles POST /wishlist.
func (h *WishlistHandler) Add(c *gin.Context) {
	var req dto.WishlistReq
	if err := c.ShouldBindJSON(&req); err != nil {
		api.AbortInvalid(c, err)
		return
	}
	item, err := h.wishlist.Add(c.Request.Context(), jwtmw.UserID(c), req.ProductID)
	if err != nil {
		writeError(c, "add wishlist item", err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewWishlistItemRes(item))
}

// Remove handles DELETE /wishlist/:id.
func (h *WishlistHandler) Remove(c *gin.Context) {
	id, ok := api.ParamID(c, "id")
	if !ok {
		return
	}
	if err := h.wishlist.Remove(c.Request.Context(), jwtmw.UserID(c), id); err != nil {
		writeError(c, "remove wishlist item", err)
		return
	}
	c.Status(http.StatusNoContent)
}
