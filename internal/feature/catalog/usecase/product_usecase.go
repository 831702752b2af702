package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"shop_backend/internal/feature/catalog/domain/entity"
)

const (
	// DefaultLimit is the page size when none is requested.
	DefaultLimit = 50
	// MaxLimit caps the requested page size.
	MaxLimit = 200
)

// MaxPrice is the exclusive upper bound of a product price; prices are stored as numeric(10,2).
var MaxPrice = decimal.New(1, 8)

// ProductRepository abstracts product persistence.
type ProductRepository interface {
	List(ctx context.Context, f entity.ProductFilter) ([]entity.Product, error)
	// FindByID returns ErrProductNotFound when nothing matches. Images are loaded.
	FindByID(ctx context.Context, id uint) (*entity.Product, error)
	Create(ctx context.Context, p *entity.Product) error
	Update(ctx context.Context, p *entity.Product) error
	Delete(ctx context.Context, id uint) error
	AddImage(ctx context.Context, img *entity.ProductImage) error
}

// ProductInput is the writable part of a product.
type ProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	CategoryID  *uint
	BrandID     uint
}

// productUsecase manages the product listing.
type productUsecase struct {
	products   ProductRepository
	brands     BrandRepository
	categories CategoryRepository
}

// NewProductUsecase creates a productUsecase.
func NewProductUsecase(products ProductRepository, brands BrandRepository, categories CategoryRepository) *productUsecase {
	return &productUsecase{products: products, brands: brands, categories: categories}
}

// NormalizeFilter applies the default and maximum page size.
func NormalizeFilter(f entity.ProductFilter) entity.ProductFilter {
	if f.Limit <= 0 {
		f.Limit = DefaultLimit
	}
	if f.Limit > MaxLimit {
		f.Limit = MaxLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	f.Search = strings.TrimSpace(f.Search)
	return f
}

// List returns a page of products matching f.
func (u *productUsecase) List(ctx context.Context, f entity.ProductFilter) ([]entity.Product, error) {
	return u.products.List(ctx, NormalizeFilter(f))
}

// Get returns one product with its images.
func (u *productUsecase) Get(ctx context.Context, id uint) (*entity.Product, error) {
	return u.products.FindByID(ctx, id)
}

// Create lists a new product owned by actorID.
func (u *productUsecase) Create(ctx context.Context, actorID uint, in ProductInput) (*entity.Product, error) {
	if err := u.validate(ctx, in); err != nil {
		return nil, err
	}
	owner := actorID
	p := &entity.Product{UserID: &owner}
	apply(p, in)
	if err := u.products.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Update replaces the writable fields. Only the owner or an admin may do this.
func (u *productUsecase) Update(ctx context.Context, actorID uint, isAdmin bool, id uint, in ProductInput) (*entity.Product, error) {
	p, err := u.authorize(ctx, actorID, isAdmin, id)
	if err != nil {
		return nil, err
	}
	if err := u.validate(ctx, in); err != nil {
		return nil, err
	}
	apply(p, in)
	if err := u.products.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes a product and its images. Only the owner or an admin may do this.
func (u *productUsecase) Delete(ctx context.Context, actorID uint, isAdmin bool, id uint) error {
	if _, err := u.authorize(ctx, actorID, isAdmin, id); err != nil {
		return err
	}
	return u.products.Delete(ctx, id)
}

// AddImage attaches an image URL to a product. Only the owner or an admin may do this.
func (u *productUsecase) AddImage(ctx context.Context, actorID uint, isAdmin bool, productID uint, url string) (*entity.ProductImage, error) {
	if _, err := u.authorize(ctx, actorID, isAdmin, productID); err != nil {
		return nil, err
	}
	img := &entity.ProductImage{ProductID: productID, ImageURL: strings.TrimSpace(url)}
	if err := u.products.AddImage(ctx, img); err != nil {
		return nil, err
	}
	return img, nil
}

func (u *productUsecase) authorize(ctx context.Context, actorID uint, isAdmin bool, id uint) (*entity.Product, error) {
	p, err := u.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isAdmin && !p.OwnedBy(actorID) {
		return nil, ErrForbidden
	}
	return p, nil
}

func (u *productUsecase) validate(ctx context.Context, in ProductInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidProduct)
	}
	if in.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidProduct)
	}
	if in.Price.Round(2).GreaterThanOrEqual(MaxPrice) {
		return fmt.Errorf("%w: price must be below %s", ErrInvalidProduct, MaxPrice)
	}
	if in.Stock < 0 {
		return fmt.Errorf("%w: stock must not be negative", ErrInvalidProduct)
	}

	ok, err := u.brands.Exists(ctx, in.BrandID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrBrandNotFound
	}
	if in.CategoryID != nil {
		ok, err := u.categories.Exists(ctx, *in.CategoryID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrCategoryNotFound
		}
	}
	return nil
}

func apply(p *entity.Product, in ProductInput) {
	p.Name = strings.TrimSpace(in.Name)
	p.Description = in.Description
	p.Price = in.Price.Round(2)
	p.Stock = in.Stock
	p.CategoryID = in.CategoryID
	p.BrandID = in.BrandID
}
