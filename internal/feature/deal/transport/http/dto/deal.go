// Package dto defines the request and response bodies of the deal endpoints.
package dto

import (
	"time"

	"shop_backend/internal/feature/deal/domain/entity"
)

// DateLayout is the wire format of deal dates.
const DateLayout = time.DateOnly

// DealReq creates a deal.
type DealReq struct {
	StartTime    string `json:"start_time" binding:"required,datetime=2006-01-02"`
	EndTime      string `json:"end_time" binding:"required,datetime=2006-01-02"`
	PhoneName    string `json:"phone_name" binding:"max=30"`
	ImageURL     string `json:"image_url" binding:"required,url,max=1024"`
	Discount     string `json:"discount" binding:"omitempty,oneof=no_discount 10% 15% 25% 40%"`
	DiscountTime string `json:"discount_time" binding:"required,datetime=15:04:05"`
}

type DealRes struct {
	ID           uint   `json:"id"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	PhoneName    string `json:"phone_name"`
	ImageURL     string `json:"image_url"`
	Discount     string `json:"discount"`
	Percent      int    `json:"percent"`
	DiscountTime string `json:"discount_time"`
}

func NewDealRes(d *entity.Deal) DealRes {
	return DealRes{
		ID:           d.ID,
		StartTime:    d.StartTime.Format(DateLayout),
		EndTime:      d.EndTime.Format(DateLayout),
		PhoneName:    d.PhoneName,
		ImageURL:     d.ImageURL,
		Discount:     string(d.Discount),
		Percent:      d.Discount.Percent(),
		DiscountTime: d.DiscountTime,
	}
}

func NewDealList(deals []entity.Deal) []DealRes {
	out := make([]DealRes, 0, len(deals))
	for i := range deals {
		out = append(out, NewDealRes(&deals[i]))
	}
	return out
}
