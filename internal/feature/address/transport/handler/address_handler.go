// Package handler provides the HTTP handlers of the address book.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"shop_backend/internal/api"
	"shop_backend/internal/feature/address/domain/entity"
	"shop_backend/internal/feature/address/transport/http/dto"
	"shop_backend/internal/feature/address/usecase"
	jwtmw "shop_backend/internal/platform/jwt"
)

// AddressUsecase manages the caller's addresses.
type AddressUsecase interface {
	List(ctx context.Context, userID uint) ([]entity.Address, error)
	Get(ctx context.Context, userID, id uint) (*entity.Address, error)
	Create(ctx context.Context, userID uint, in usecase.AddressInput) (*entity.Address, error)
	Update(ctx context.Context, userID, id uint, in usecase.AddressInput) (*entity.Address, error)
	Delete(ctx context.Context, userID, id uint) error
}

type AddressHandler struct {
	addresses AddressUsecase
}

func NewAddressHandler(addresses AddressUsecase) *AddressHandler {
	return &AddressHandler{addresses: addresses}
}

func writeError(c *gin.Context, op string, err error) {
	if errors.Is(err, usecase.ErrAddressNotFound) {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
		return
	}
	slog.Error(op+" failed", "error", err, "user_id", jwtmw.UserID(c), "remote_addr", c.ClientIP())
	c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
}

func toInput(req dto.AddressReq) usecase.AddressInput {
	return usecase.AddressInput{
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		City:         req.City,
		State:        req.State,
		ZipCode:      req.ZipCode,
		Country:      req.Country,
	}
}

// List handles GET /addresses.
func (h *AddressHandler) List(c *gin.Context) {
	list, err := h.addresses.List(c.Request.Context(), jwtmw.UserID(c))
	if err != nil {
		writeError(c, "list addresses", err)
		return
	}
	out := make([]dto.AddressRes, 0, len(list))
	for i := range list {
		out = append(out, dto.NewAddressRes(&list[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Get handles GET /addresses/:id.
func (h *AddressHandler) Get(c *gin.Context) {
	id, ok := api.ParamID(c, "id")
	if !ok {
		return
	}
	a, err := h.addresses.Get(c.Request.Context(), jwtmw.UserID(c), id)
	if err != nil {
		writeError(c, "get address", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAddressRes(a))
}

// Create handles POST /addresses.
func (h *AddressHandler) Create(c *gin.Context) {
	var req dto.AddressReq
	if err := c.ShouldBindJSON(&req); err != nil {
		api.AbortInvalid(c, err)
		return
	}
	a, err := h.addresses.Create(c.Request.Context(), jwtmw.UserID(c), toInput(req))
	if err != nil {
		writeError(c, "create address", err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewAddressRes(a))
}

// Update handles PUT /addresses/:id.
func (h *AddressHandler) Update(c *gin.Context) {
	id, ok := api.ParamID(c, "id")
	if !ok {
		return
	}
	var req dto.AddressReq
	if err := c.ShouldBindJSON(&req); err != nil {
		api.AbortInvalid(c, err)
		return
	}
	a, err := h.addresses.Update(c.Request.Context(), jwtmw.UserID(c), id, toInput(req))
	if err != nil {
		writeError(c, "update address", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAddressRes(a))
}

// Delete handles DELETE /addresses/:id.
func (h *AddressHandler) Delete(c *gin.Context) {
	id, ok := api.ParamID(c, "id")
	if !ok {
		return
	}
	if err := h.addresses.Delete(c.Request.Context(), jwtmw.UserID(c), id); err != nil {
		writeError(c, "delete address", err)
		return
	}
	c.Status(http.StatusNoContent)
}
