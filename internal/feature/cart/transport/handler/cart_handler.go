// Package handler provides the HTTP handlers of the shopping cart.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"shop_backend/internal/api"
	"shop_backend/internal/feature/cart/domain/entity"
	"shop_backend/internal/feature/cart/transport/http/dto"
	"shop_backend/internal/feature/cart/usecase"
	jwtmw "shop_backend/internal/platform/jwt"
)

type CartUsecase interface {
	Get(ctx context.Context, userID uint) (*entity.Cart, error)
	Add(ctx context.Context, userID, productID uint, quantity int) (*entity.CartItem, error)
	Update(ctx context.Context, userID, id uint, quantity int) (*entity.CartItem, error)
	Remove(ctx context.Context, userID, id uint) error
	Clear(ctx context.Context, userID uint) error
}

type CartHandler struct {
	cart CartUsecase
}

func NewCartHandler(cart CartUsecase) *CartHandler {
	return &CartHandler{cart: cart}
}

func writeError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, usecase.ErrItemNotFound), errors.Is(err, usecase.ErrProductNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrInsufficientStock):
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
	default:
		slog.Error(op+" failed", "error", err, "user_id", jwtmw.UserID(c), "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
	}
}

// Get handles GET /cart.
func (h *CartHandler) Get(c *gin.Context) {
	cart, err := h.cart.Get(c.Request.Context(), jwtmw.UserID(c))
	if err != nil {
		writeError(c, "get cart", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCartRes(cart))
}

// Add handles POST /cart.
func (h *CartHandler) Add(c *gin.Context) {
	var req dto.AddItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		api.AbortInvalid(c, err)
		return
	}
	item, err := h.cart.Add(c.Request.Context(), jwtmw.UserID(c), req.ProductID, req.Quantity)
	if err != nil {
		writeError(c, "add cart item", err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewCartItemRes(item))
}

// Update handles PUT /cart/:id.
func (h *CartHandler) Update(c *gin.Context) {
	id, ok := api.ParamID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		api.AbortInvalid(c, err)
		return
	}
	item, err := h.cart.Update(c.Request.Context(), jwtmw.UserID(c), id, req.Quantity)
	if err != nil {
		writeError(c, "update cart item", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCartItemRes(item))
}

// Remove handles DELETE /cart/:id.
func (h *CartHandler) Remove(c *gin.Context) {
	id, ok := api.ParamID(c, "id")
	if !ok {
		return
	}
	if err := h.cart.Remove(c.Request.Context(), jwtmw.UserID(c), id); err != nil {
		writeError(c, "remove cart item", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Clear handles DELETE /cart.
func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.cart.Clear(c.Request.Context(), jwtmw.UserID(c)); err != nil {
		writeError(c, "clear cart", err)
		return
	}
	c.Status(http.StatusNoContent)
}
