// Package handler provides the HTTP handlers of the deal feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"shop_backend/internal/api"
	"shop_backend/internal/feature/deal/domain/entity"
	"shop_backend/internal/feature/deal/transport/http/dto"
	"shop_backend/internal/feature/deal/usecase"
)

// DealUsecase manages deals.
type DealUsecase interface {
	Active(ctx context.Context) ([]entity.Deal, error)
	All(ctx context.Context) ([]entity.Deal, error)
	Create(ctx context.Context, in usecase.DealInput) (*entity.Deal, error)
	Delete(ctx context.Context, id uint) error
}

type DealHandler struct {
	deals DealUsecase
}

func NewDealHandler(deals DealUsecase) *DealHandler {
	return &DealHandler{deals: deals}
}

func writeError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, usecase.ErrDealNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrInvalidDeal):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
	default:
		slog.Error(op+" failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
	}
}

// Active handles GET /deals: deals running today.
func (h *DealHandler) Active(c *gin.Context) {
	deals, err := h.deals.Active(c.Request.Context())
	if err != nil {
		writeError(c, "list active deals", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewDealList(deals))
}

// All handles GET /deals/all.
func (h *DealHandler) All(c *gin.Context) {
	deals, err := h.deals.All(c.Request.Context())
	if err != nil {
		writeError(c, "list deals", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewDealList(deals))
}

// Create handles POST /deals (admin).
func (h *DealHandler) Create(c *gin.Context) {
	var req dto.DealReq
	if err := c.ShouldBindJSON(&req); err != nil {
		api.AbortInvalid(c, err)
		return
	}
	// the binding already checked the layout
	start, _ := time.Parse(dto.DateLayout, req.StartTime)
	end, _ := time.Parse(dto.DateLayout, req.EndTime)

	d, err := h.deals.Create(c.Request.Context(), usecase.DealInput{
		StartTime:    start,
		EndTime:      end,
		PhoneName:    req.PhoneName,
		ImageURL:     req.ImageURL,
		Discount:     entity.Discount(req.Discount),
		DiscountTime: req.DiscountTime,
	})
	if err != nil {
		writeError(c, "create deal", err)
		return
	}
	slog.Info("deal created", "deal_id", d.ID, "phone_name", d.PhoneName, "discount", d.Discount)
	c.JSON(http.StatusCreated, dto.NewDealRes(d))
}

// Delete handles DELETE /deals/:id (admin).
func (h *DealHandler) Delete(c *gin.Context) {
	id, ok := api.ParamID(c, "id")
	if !ok {
		return
	}
	if err := h.deals.Delete(c.Request.Context(), id); err != nil {
		writeError(c, "delete deal", err)
		return
	}
	c.Status(http.StatusNoContent)
}
