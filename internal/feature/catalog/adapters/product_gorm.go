package adapters

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"shop_backend/internal/feature/catalog/domain/entity"
	"shop_backend/internal/feature/catalog/usecase"
)

type productGorm struct {
	db *gorm.DB
}

var _ usecase.ProductRepository = (*productGorm)(nil)

// NewProductRepository creates a product repository.
func NewProductRepository(db *gorm.DB) *productGorm {
	return &productGorm{db: db}
}

// likeEscaper makes LIKE wildcards in a search match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

func orderedImages(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}

// List returns products in id order. Limit and offset are taken as given.
func (r *productGorm) List(ctx context.Context, f entity.ProductFilter) ([]entity.Product, error) {
	q := r.db.WithContext(ctx).Model(&entity.Product{})
	if f.CategoryID != nil {
		q = q.Where("category_id = ?", *f.CategoryID)
	}
	if f.BrandID != nil {
		q = q.Where("brand_id = ?", *f.BrandID)
	}
	if f.Search != "" {
		q = q.Where(`LOWER(name) LIKE ? ESCAPE '\'`, "%"+likeEscaper.Replace(strings.ToLower(f.Search))+"%")
	}
	if f.WithImages {
		q = q.Preload("Images", orderedImages)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}

	var out []entity.Product
	if err := q.Order("id ASC").Offset(f.Offset).Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return out, nil
}

func (r *productGorm) FindByID(ctx context.Context, id uint) (*entity.Product, error) {
	var p entity.Product
	err := r.db.WithContext(ctx).Preload("Images", orderedImages).First(&p, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return &p, nil
}

func (r *productGorm) Create(ctx context.Context, p *entity.Product) error {
	if err := r.db.WithContext(ctx).Omit("Images").Create(p).Error; err != nil {
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

func (r *productGorm) Update(ctx context.Context, p *entity.Product) error {
	res := r.db.WithContext(ctx).
		Model(p).
		Select("name", "description", "price", "stock", "category_id", "brand_id").
		Updates(p)
	if res.Error != nil {
		return fmt.Errorf("update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return usecase.ErrProductNotFound
	}
	return nil
}

// Delete removes the product together with its images.
func (r *productGorm) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&entity.ProductImage{}).Error; err != nil {
			return fmt.Errorf("delete product images: %w", err)
		}
		res := tx.Delete(&entity.Product{}, id)
		if res.Error != nil {
			return fmt.Errorf("delete product: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return usecase.ErrProductNotFound
		}
		return nil
	})
}

func (r *productGorm) AddImage(ctx context.Context, img *entity.ProductImage) error {
	if err := r.db.WithContext(ctx).Create(img).Error; err != nil {
		return fmt.Errorf("add product image: %w", err)
	}
	return nil
}
