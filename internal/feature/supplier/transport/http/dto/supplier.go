// Package dto defines the request and response bodies of the supplier endpoints.
package dto

import (
	"time"

	"shop_backend/internal/feature/supplier/domain/entity"
)

type SupplierReq struct {
	Name     string `json:"name" binding:"required,max=255"`
	Location string `json:"location" binding:"required,max=255"`
}

// VerifyReq sets the verified flag. An empty body verifies.
type VerifyReq struct {
	Verified *bool `json:"verified"`
}

type SupplierRes struct {
	ID        uint      `json:"id"`
	UserID    *uint     `json:"user_id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"created_at"`
}

func NewSupplierRes(s *entity.Supplier) SupplierRes {
	return SupplierRes{
		ID:        s.ID,
		UserID:    s.UserID,
		Name:      s.Name,
		Location:  s.Location,
		Verified:  s.Verified,
		CreatedAt: s.CreatedAt,
	}
}
