// Package dto defines the request and response bodies of the catalog endpoints.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"shop_backend/internal/feature/catalog/domain/entity"
)

// NameReq creates a brand or category.
type NameReq struct {
	Name string `json:"name" binding:"required,max=255"`
}

// ProductReq creates or replaces a product.
type ProductReq struct {
	Name        string           `json:"name" binding:"required,max=255"`
	Description string           `json:"description" binding:"max=10000"`
	Price       *decimal.Decimal `json:"price" binding:"required"`
	Stock       int              `json:"stock" binding:"min=0"`
	CategoryID  *uint            `json:"category_id" binding:"omitempty,min=1"`
	BrandID     uint             `json:"brand_id" binding:"required,min=1"`
}

// ProductQuery holds the product list filters.
type ProductQuery struct {
	CategoryID *uint  `form:"category_id" binding:"omitempty,min=1"`
	BrandID    *uint  `form:"brand_id" binding:"omitempty,min=1"`
	Search     string `form:"search" binding:"max=255"`
	Limit      int    `form:"limit" binding:"min=0"`
	Offset     int    `form:"offset" binding:"min=0"`
}

// ImageReq attaches an image to a product.
type ImageReq struct {
	ImageURL string `json:"image_url" binding:"required,url,max=1024"`
}

// ProductRes is a product without its images.
type ProductRes struct {
	ID          uint            `json:"id"`
	UserID      *uint           `json:"user_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	CategoryID  *uint           `json:"category_id"`
	BrandID     uint            `json:"brand_id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ImageRes is one product image.
type ImageRes struct {
	ID        uint   `json:"id"`
	ProductID uint   `json:"product_id"`
	ImageURL  string `json:"image_url"`
}

// ProductDetailRes is a product with its images.
type ProductDetailRes struct {
	ProductRes
	Images []ImageRes `json:"images"`
}

func NewProductRes(p *entity.Product) ProductRes {
	return ProductRes{
		ID:          p.ID,
		UserID:      p.UserID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		CategoryID:  p.CategoryID,
		BrandID:     p.BrandID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func NewImageRes(img *entity.ProductImage) ImageRes {
	return ImageRes{ID: img.ID, ProductID: img.ProductID, ImageURL: img.ImageURL}
}

func NewProductDetailRes(p *entity.Product) ProductDetailRes {
	images := make([]ImageRes, 0, len(p.Images))
	for i := range p.Images {
		images = append(images, NewImageRes(&p.Images[i]))
	}
	return ProductDetailRes{ProductRes: NewProductRes(p), Images: images}
}
