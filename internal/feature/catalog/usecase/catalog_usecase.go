package usecase

import (
	"context"
	"strings"

	"shop_backend/internal/feature/catalog/domain/entity"
)

// BrandRepository abstracts brand persistence.
type BrandRepository interface {
	List(ctx context.Context) ([]entity.Brand, error)
	// Create returns ErrNameTaken on a duplicate name.
	Create(ctx context.Context, brand *entity.Brand) error
	Exists(ctx context.Context, id uint) (bool, error)
}

// CategoryRepository abstracts category persistence.
type CategoryRepository interface {
	List(ctx context.Context) ([]entity.Category, error)
	// Create returns ErrNameTaken on a duplicate name.
	Create(ctx context.Context, category *entity.Category) error
	Exists(ctx context.Context, id uint) (bool, error)
}

// taxonomyUsecase serves brands and categories.
type taxonomyUsecase struct {
	brands           BrandRepository
	categories       CategoryRepository
	priorityCategory string
}

// NewTaxonomyUsecase creates a taxonomyUsecase. priorityCategory is listed
// before every other category.
func NewTaxonomyUsecase(brands BrandRepository, categories CategoryRepository, priorityCategory string) *taxonomyUsecase {
	return &taxonomyUsecase{brands: brands, categories: categories, priorityCategory: priorityCategory}
}

func (u *taxonomyUsecase) ListBrands(ctx context.Context) ([]entity.Brand, error) {
	return u.brands.List(ctx)
}

func (u *taxonomyUsecase) CreateBrand(ctx context.Context, name string) (*entity.Brand, error) {
	b := &entity.Brand{Name: strings.TrimSpace(name)}
	if err := u.brands.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// ListCategories returns every category in display order.
func (u *taxonomyUsecase) ListCategories(ctx context.Context) ([]entity.Category, error) {
	cats, err := u.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	return SortCategories(cats, u.priorityCategory), nil
}

func (u *taxonomyUsecase) CreateCategory(ctx context.Context, name string) (*entity.Category, error) {
	c := &entity.Category{Name: strings.TrimSpace(name)}
	if err := u.categories.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}
