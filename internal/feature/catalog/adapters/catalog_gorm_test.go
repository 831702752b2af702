package adapters

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"shop_backend/internal/feature/catalog/domain/entity"
	"shop_backend/internal/feature/catalog/usecase"
	"shop_backend/internal/platform/db/dbtest"
)

func setupCatalogDB(t *testing.T) *gorm.DB {
	t.Helper()
	return dbtest.Open(t, &entity.Brand{}, &entity.Category{}, &entity.Product{}, &entity.ProductImage{})
}

func uintPtr(v uint) *uint { return &v }

func seedProduct(t *testing.T, repo *productGorm, name string, brandID uint, categoryID *uint) *entity.Product {
	t.Helper()
	p := &entity.Product{
		UserID:     uintPtr(1),
		Name:       name,
		Price:      decimal.RequireFromString("199.99"),
		Stock:      5,
		BrandID:    brandID,
		CategoryID: categoryID,
	}
	require.NoError(t, repo.Create(context.Background(), p))
	return p
}

func TestBrandAndCategoryRepositories(t *testing.T) {
	db := setupCatalogDB(t)
	ctx := context.Background()
	brands := NewBrandRepository(db)
	categories := NewCategoryRepository(db)

	samsung := &entity.Brand{Name: "Samsung"}
	require.NoError(t, brands.Create(ctx, samsung))
	require.NoError(t, brands.Create(ctx, &entity.Brand{Name: "Apple"}))
	assert.ErrorIs(t, brands.Create(ctx, &entity.Brand{Name: "Samsung"}), usecase.ErrNameTaken)

	list, err := brands.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Apple", list[0].Name)

	ok, err := brands.Exists(ctx, samsung.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = brands.Exists(ctx, 999)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, categories.Create(ctx, &entity.Category{Name: "Laptops"}))
	require.NoError(t, categories.Create(ctx, &entity.Category{Name: "Phones"}))
	assert.ErrorIs(t, categories.Create(ctx, &entity.Category{Name: "Phones"}), usecase.ErrNameTaken)

	cats, err := categories.List(ctx)
	require.NoError(t, err)
	assert.Len(t, cats, 2)
}

func TestProductGorm_List(t *testing.T) {
	db := setupCatalogDB(t)
	ctx := context.Background()
	repo := NewProductRepository(db)

	phones := uintPtr(1)
	seedProduct(t, repo, "Galaxy S24", 1, phones)
	seedProduct(t, repo, "iPhone 15", 2, phones)
	macbook := seedProduct(t, repo, "MacBook Air", 2, uintPtr(2))
	require.NoError(t, repo.AddImage(ctx, &entity.ProductImage{ProductID: macbook.ID, ImageURL: "https://cdn.example.com/mba.jpg"}))

	tests := []struct {
		name   string
		filter entity.ProductFilter
		want   []string
	}{
		{"all", entity.ProductFilter{}, []string{"Galaxy S24", "iPhone 15", "MacBook Air"}},
		{"by category", entity.ProductFilter{CategoryID: phones}, []string{"Galaxy S24", "iPhone 15"}},
		{"by brand", entity.ProductFilter{BrandID: uintPtr(2)}, []string{"iPhone 15", "MacBook Air"}},
		{"search ignores case", entity.ProductFilter{Search: "IPHONE"}, []string{"iPhone 15"}},
		{"limit and offset", entity.ProductFilter{Limit: 1, Offset: 1}, []string{"iPhone 15"}},
		{"offset past end", entity.ProductFilter{Limit: 10, Offset: 10}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.List(ctx, tt.filter)
			require.NoError(t, err)

			var names []string
			for _, p := range got {
				names = append(names, p.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}

	t.Run("with images", func(t *testing.T) {
		got, err := repo.List(ctx, entity.ProductFilter{BrandID: uintPtr(2), WithImages: true})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Empty(t, got[0].Images)
		require.Len(t, got[1].Images, 1)
		assert.Equal(t, "https://cdn.example.com/mba.jpg", got[1].Images[0].ImageURL)
	})
}

func TestProductGorm_List_SearchWildcardsAreLiteral(t *testing.T) {
	db := setupCatalogDB(t)
	ctx := context.Background()
	repo := NewProductRepository(db)

	seedProduct(t, repo, "100% Recycled Case", 1, nil)
	seedProduct(t, repo, "USB_C Cable", 1, nil)
	seedProduct(t, repo, "USB C Hub", 1, nil)
	seedProduct(t, repo, `Back\Slash Stand`, 1, nil)

	tests := []struct {
		search string
		want   []string
	}{
		{"%", []string{"100% Recycled Case"}},
		{"_", []string{"USB_C Cable"}},
		{"usb_c", []string{"USB_C Cable"}},
		{"usb c", []string{"USB C Hub"}},
		{`\`, []string{`Back\Slash Stand`}},
	}
	for _, tt := range tests {
		t.Run(tt.search, func(t *testing.T) {
			got, err := repo.List(ctx, entity.ProductFilter{Search: tt.search})
			require.NoError(t, err)

			var names []string
			for _, p := range got {
				names = append(names, p.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestProductGorm_CRUD(t *testing.T) {
	db := setupCatalogDB(t)
	ctx := context.Background()
	repo := NewProductRepository(db)

	p := seedProduct(t, repo, "Pixel 8", 1, nil)
	require.NoError(t, repo.AddImage(ctx, &entity.ProductImage{ProductID: p.ID, ImageURL: "a.jpg"}))

	found, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("199.99").Equal(found.Price))
	assert.True(t, found.OwnedBy(1))
	assert.Len(t, found.Images, 1)

	found.Name = "Pixel 8 Pro"
	found.Price = decimal.RequireFromString("899.00")
	found.Stock = 0
	require.NoError(t, repo.Update(ctx, found))

	updated, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pixel 8 Pro", updated.Name)
	assert.Equal(t, 0, updated.Stock)
	assert.True(t, decimal.NewFromInt(899).Equal(updated.Price))

	require.NoError(t, repo.Delete(ctx, p.ID))
	_, err = repo.FindByID(ctx, p.ID)
	assert.ErrorIs(t, err, usecase.ErrProductNotFound)

	var images int64
	require.NoError(t, db.Model(&entity.ProductImage{}).Count(&images).Error)
	assert.Zero(t, images, "images go with the product")

	assert.ErrorIs(t, repo.Delete(ctx, p.ID), usecase.ErrProductNotFound)
	assert.ErrorIs(t, repo.Update(ctx, &entity.Product{ID: 404, Name: "x", BrandID: 1}), usecase.ErrProductNotFound)
}
