// Package dto defines the request and response bodies of the address endpoints.
package dto

import (
	"time"

	"shop_backend/internal/feature/address/domain/entity"
)

// AddressReq creates or replaces an address.
type AddressReq struct {
	AddressLine1 string  `json:"address_line1" binding:"required,max=255"`
	AddressLine2 *string `json:"address_line2" binding:"omitempty,max=255"`
	City         string  `json:"city" binding:"required,max=100"`
	State        string  `json:"state" binding:"required,max=100"`
	ZipCode      string  `json:"zip_code" binding:"required,max=20"`
	Country      string  `json:"country" binding:"required,max=100"`
}

type AddressRes struct {
	ID           uint      `json:"id"`
	AddressLine1 string    `json:"address_line1"`
	AddressLine2 *string   `json:"address_line2"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	ZipCode      string    `json:"zip_code"`
	Country      string    `json:"country"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func NewAddressRes(a *entity.Address) AddressRes {
	return AddressRes{
		ID:           a.ID,
		AddressLine1: a.AddressLine1,
		AddressLine2: a.AddressLine2,
		City:         a.City,
		State:        a.State,
		ZipCode:      a.ZipCode,
		Country:      a.Country,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}
