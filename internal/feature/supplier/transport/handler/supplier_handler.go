// Package handler provides the HTTP handlers of the supplier feature.
package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"shop_backend/internal/api"
	"shop_backend/internal/feature/supplier/domain/entity"
	"shop_backend/internal/feature/supplier/transport/http/dto"
	"shop_backend/internal/feature/supplier/usecase"
	jwtmw "shop_backend/internal/platform/jwt"
)

type SupplierUsecase interface {
	List(ctx context.Context) ([]entity.Supplier, error)
	Create(ctx context.Context, userID uint, name, location string) (*entity.Supplier, error)
	Get(ctx context.Context, userID, id uint) (*entity.Supplier, error)
	Delete(ctx context.Context, userID, id uint) error
	Verify(ctx context.Context, id uint, verified bool) (*entity.Supplier, error)
}

type SupplierHandler struct {
	suppliers SupplierUsecase
}

func NewSupplierHandler(suppliers SupplierUsecase) *SupplierHandler {
	return &SupplierHandler{suppliers: suppliers}
}

func writeError(c *gin.Context, op string, err error) {
	if errors.Is(err, usecase.ErrSupplierNotFound) {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
		return
	}
	slog.Error(op+" failed", "error", err, "remote_addr", c.ClientIP())
	c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
}

// List handles GET /suppliers.
func (h *SupplierHandler) List(c *gin.Context) {
	list, err := h.suppliers.List(c.Request.Context())
	if err != nil {
		writeError(c, "list suppliers", err)
		return
	}
	out := make([]dto.SupplierRes, 0, len(list))
	for i := range list {
		out = append(out, dto.NewSupplierRes(&list[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Create handles POST /suppliers. The caller becomes the owner.
func (h *SupplierHandler) Create(c *gin.Context) {
	var req dto.SupplierReq
	if err := c.ShouldBindJSON(&req); err != nil {
		api.AbortInvalid(c, err)
		return
	}
	s, err := h.suppliers.Create(c.Request.Context(), jwtmw.UserID(c), req.Name, req.Location)
	if err != nil {
		writeError(c, "create supplier", err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewSupplierRes(s))
}

// Get handles GET /suppliers/:id for the owner.
func (h *SupplierHandler) Get(c *gin.Context) {
	id, ok := api.ParamID(c, "id")
	if !ok {
		return
	}
	s, err := h.suppliers.Get(c.Request.Context(), jwtmw.UserID(c), id)
	if err != nil {
		writeError(c, "get supplier", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSupplierRes(s))
}

// Delete handles DELETE /suppliers/:id for the owner.
func (h *SupplierHandler) Delete(c *gin.Context) {
	id, ok := api.ParamID(c, "id")
	if !ok {
		return
	}
	if err := h.suppliers.Delete(c.Request.Context(), jwtmw.UserID(c), id); err != nil {
		writeError(c, "delete supplier", err)
		return
	}
	slog.Info("supplier deleted", "supplier_id", id, "user_id", jwtmw.UserID(c))
	c.Status(http.StatusNoContent)
}

// Verify handles PATCH /suppliers/:id/verify (admin).
func (h *SupplierHandler) Verify(c *gin.Context) {
	id, ok := api.ParamID(c, "id")
	if !ok {
		return
	}
	var req dto.VerifyReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		api.AbortInvalid(c, err)
		return
	}
	verified := req.Verified == nil || *req.Verified

	s, err := h.suppliers.Verify(c.Request.Context(), id, verified)
	if err != nil {
		writeError(c, "verify supplier", err)
		return
	}
	slog.Info("supplier verification changed", "supplier_id", id, "verified", verified, "admin_id", jwtmw.UserID(c))
	c.JSON(http.StatusOK, dto.NewSupplierRes(s))
}
