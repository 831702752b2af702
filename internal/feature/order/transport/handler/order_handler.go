// Package handler provides the HTTP handlers of the order feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"shop_backend/internal/api"
	"shop_backend/internal/feature/order/domain/entity"
	"shop_backend/internal/feature/order/transport/http/dto"
	"shop_backend/internal/feature/order/usecase"
	jwtmw "shop_backend/internal/platform/jwt"
)

// OrderUsecase places orders and moves them through their lifecycle.
type OrderUsecase interface {
	Checkout(ctx context.Context, userID uint) (*entity.Order, error)
	List(ctx context.Context, userID uint) ([]entity.Order, error)
	Get(ctx context.Context, userID, id uint) (*entity.Order, error)
	Cancel(ctx context.Context, userID, id uint) (*entity.Order, error)
	Complete(ctx context.Context, id uint) (*entity.Order, error)
}

type OrderHandler struct {
	orders OrderUsecase
}

func NewOrderHandler(orders OrderUsecase) *OrderHandler {
	return &OrderHandler{orders: orders}
}

func writeError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, usecase.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrInsufficientStock), errors.Is(err, usecase.ErrInvalidTransition),
		errors.Is(err, usecase.ErrOrderTooLarge):
		slog.Warn(op+" rejected", "error", err, "user_id", jwtmw.UserID(c))
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
	default:
		slog.Error(op+" failed", "error", err, "user_id", jwtmw.UserID(c), "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
	}
}

// Checkout handles POST /orders.
func (h *OrderHandler) Checkout(c *gin.Context) {
	o, err := h.orders.Checkout(c.Request.Context(), jwtmw.UserID(c))
	if err != nil {
		writeError(c, "checkout", err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewOrderRes(o))
}

// List handles GET /orders.
func (h *OrderHandler) List(c *gin.Context) {
	list, err := h.orders.List(c.Request.Context(), jwtmw.UserID(c))
	if err != nil {
		writeError(c, "list orders", err)
		return
	}
	out := make([]dto.OrderRes, 0, len(list))
	for i := range list {
		out = append(out, dto.NewOrderRes(&list[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Get handles GET /orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := api.ParamID(c, "id")
	if !ok {
		return
	}
	o, err := h.orders.Get(c.Request.Context(), jwtmw.UserID(c), id)
	if err != nil {
		writeError(c, "get order", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderRes(o))
}

// Cancel handles POST /orders/:id/cancel.
func (h *OrderHandler) Cancel(c *gin.Context) {
	id, ok := api.ParamID(c, "id")
	if !ok {
		return
	}
	o, err := h.orders.Cancel(c.Request.Context(), jwtmw.UserID(c), id)
	if err != nil {
		writeError(c, "cancel order", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderRes(o))
}

// Complete handles POST /orders/:id/complete (admin).
func (h *OrderHandler) Complete(c *gin.Context) {
	id, ok := api.ParamID(c, "id")
	if !ok {
		return
	}
	o, err := h.orders.Complete(c.Request.Context(), id)
	if err != nil {
		writeError(c, "complete order", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderRes(o))
}
