package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop_backend/internal/api"
	"shop_backend/internal/feature/catalog/domain/entity"
	"shop_backend/internal/feature/catalog/usecase"
	jwtmw "shop_backend/internal/platform/jwt"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	api.RegisterValidators()
	os.Exit(m.Run())
}

type mockTaxonomy struct {
	cats []entity.Category
	err  error
}

func (m *mockTaxonomy) ListBrands(context.Context) ([]entity.Brand, error) {
	return []entity.Brand{{ID: 1, Name: "Apple"}}, m.err
}

func (m *mockTaxonomy) CreateBrand(_ context.Context, name string) (*entity.Brand, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &entity.Brand{ID: 2, Name: name}, nil
}

func (m *mockTaxonomy) ListCategories(context.Context) ([]entity.Category, error) { return m.cats, m.err }

func (m *mockTaxonomy) CreateCategory(_ context.Context, name string) (*entity.Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &entity.Category{ID: 3, Name: name}, nil
}

type mockProducts struct {
	ListFunc   func(f entity.ProductFilter) ([]entity.Product, error)
	GetFunc    func(id uint) (*entity.Product, error)
	CreateFunc func(actorID uint, in usecase.ProductInput) (*entity.Product, error)
	UpdateFunc func(actorID uint, isAdmin bool, id uint, in usecase.ProductInput) (*entity.Product, error)
	DeleteFunc func(actorID uint, isAdmin bool, id uint) error
	ImageFunc  func(actorID uint, isAdmin bool, id uint, url string) (*entity.ProductImage, error)
}

func (m *mockProducts) List(_ context.Context, f entity.ProductFilter) ([]entity.Product, error) {
	return m.ListFunc(f)
}

func (m *mockProducts) Get(_ context.Context, id uint) (*entity.Product, error) { return m.GetFunc(id) }

func (m *mockProducts) Create(_ context.Context, actorID uint, in usecase.ProductInput) (*entity.Product, error) {
	return m.CreateFunc(actorID, in)
}

func (m *mockProducts) Update(_ context.Context, actorID uint, isAdmin bool, id uint, in usecase.ProductInput) (*entity.Product, error) {
	return m.UpdateFunc(actorID, isAdmin, id, in)
}

func (m *mockProducts) Delete(_ context.Context, actorID uint, isAdmin bool, id uint) error {
	return m.DeleteFunc(actorID, isAdmin, id)
}

func (m *mockProducts) AddImage(_ context.Context, actorID uint, isAdmin bool, id uint, url string) (*entity.ProductImage, error) {
	return m.ImageFunc(actorID, isAdmin, id, url)
}

// newRouter authenticates every request as user 7 with the given role.
func newRouter(h *CatalogHandler, role string) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(jwtmw.ContextUserID, uint(7))
		c.Set(jwtmw.ContextRole, role)
		c.Next()
	})
	r.GET("/brands", h.ListBrands)
	r.POST("/brands", h.CreateBrand)
	r.GET("/categories", h.ListCategories)
	r.POST("/categories", h.CreateCategory)
	r.GET("/products", h.ListProducts)
	r.GET("/product-images", h.ListProductImages)
	r.GET("/products/:id", h.GetProduct)
	r.POST("/products", h.CreateProduct)
	r.PUT("/products/:id", h.UpdateProduct)
	r.DELETE("/products/:id", h.DeleteProduct)
	r.POST("/products/:id/images", h.AddProductImage)
	return r
}

func do(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCatalogHandler_Taxonomy(t *testing.T) {
	tax := &mockTaxonomy{cats: []entity.Category{{ID: 2, Name: "Phones"}, {ID: 1, Name: "Audio"}}}
	r := newRouter(NewCatalogHandler(tax, &mockProducts{}), "admin")

	w := do(r, http.MethodGet, "/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":2,"name":"Phones"},{"id":1,"name":"Audio"}]`, w.Body.String())

	w = do(r, http.MethodPost, "/brands", gin.H{"name": "Xiaomi"})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = do(r, http.MethodPost, "/categories", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	tax.err = usecase.ErrNameTaken
	w = do(r, http.MethodPost, "/brands", gin.H{"name": "Apple"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCatalogHandler_ListProducts(t *testing.T) {
	var got entity.ProductFilter
	products := &mockProducts{ListFunc: func(f entity.ProductFilter) ([]entity.Product, error) {
		got = f
		return []entity.Product{{
			ID:     1,
			Name:   "Galaxy S24",
			Price:  decimal.RequireFromString("999.90"),
			Images: []entity.ProductImage{{ID: 4, ProductID: 1, ImageURL: "a.jpg"}},
		}}, nil
	}}
	r := newRouter(NewCatalogHandler(&mockTaxonomy{}, products), "user")

	w := do(r, http.MethodGet, "/products?category_id=3&brand_id=2&search=galaxy&limit=10&offset=20", nil)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, got.CategoryID)
	assert.Equal(t, uint(3), *got.CategoryID)
	assert.Equal(t, uint(2), *got.BrandID)
	assert.Equal(t, "galaxy", got.Search)
	assert.Equal(t, 10, got.Limit)
	assert.Equal(t, 20, got.Offset)
	assert.False(t, got.WithImages)
	assert.Contains(t, w.Body.String(), `"price":"999.9"`)
	assert.NotContains(t, w.Body.String(), "images")

	w = do(r, http.MethodGet, "/product-images", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, got.WithImages)
	assert.Contains(t, w.Body.String(), `"image_url":"a.jpg"`)

	w = do(r, http.MethodGet, "/products?limit=-1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCatalogHandler_ProductWrites(t *testing.T) {
	body := gin.H{"name": "Pixel 8", "price": "699.00", "stock": 3, "brand_id": 1}

	tests := []struct {
		name       string
		role       string
		method     string
		path       string
		body       any
		wantStatus int
	}{
		{"create", "user", http.MethodPost, "/products", body, http.StatusCreated},
		{"create missing brand", "user", http.MethodPost, "/products", gin.H{"name": "x", "price": 1}, http.StatusBadRequest},
		{"create missing price", "user", http.MethodPost, "/products", gin.H{"name": "x", "stock": 1, "brand_id": 1}, http.StatusBadRequest},
		{"update by owner", "user", http.MethodPut, "/products/5", body, http.StatusOK},
		{"update by stranger", "user", http.MethodPut, "/products/6", body, http.StatusForbidden},
		{"update by admin", "admin", http.MethodPut, "/products/6", body, http.StatusOK},
		{"update missing", "user", http.MethodPut, "/products/404", body, http.StatusNotFound},
		{"delete by owner", "user", http.MethodDelete, "/products/5", nil, http.StatusNoContent},
		{"delete by stranger", "user", http.MethodDelete, "/products/6", nil, http.StatusForbidden},
		{"add image", "user", http.MethodPost, "/products/5/images", gin.H{"image_url": "https://cdn.example.com/p.jpg"}, http.StatusCreated},
		{"add image bad url", "user", http.MethodPost, "/products/5/images", gin.H{"image_url": "not a url"}, http.StatusBadRequest},
		{"bad id", "user", http.MethodDelete, "/products/zero", nil, http.StatusBadRequest},
	}

	// product 5 belongs to user 7, product 6 to someone else
	authorize := func(actorID uint, isAdmin bool, id uint) error {
		switch {
		case id == 404:
			return usecase.ErrProductNotFound
		case id == 6 && !isAdmin:
			return usecase.ErrForbidden
		}
		return nil
	}
	products := &mockProducts{
		CreateFunc: func(actorID uint, in usecase.ProductInput) (*entity.Product, error) {
			return &entity.Product{ID: 10, UserID: &actorID, Name: in.Name, Price: in.Price}, nil
		},
		UpdateFunc: func(actorID uint, isAdmin bool, id uint, in usecase.ProductInput) (*entity.Product, error) {
			if err := authorize(actorID, isAdmin, id); err != nil {
				return nil, err
			}
			return &entity.Product{ID: id, Name: in.Name}, nil
		},
		DeleteFunc: authorize,
		ImageFunc: func(actorID uint, isAdmin bool, id uint, url string) (*entity.ProductImage, error) {
			if err := authorize(actorID, isAdmin, id); err != nil {
				return nil, err
			}
			return &entity.ProductImage{ID: 1, ProductID: id, ImageURL: url}, nil
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRouter(NewCatalogHandler(&mockTaxonomy{}, products), tt.role)

			w := do(r, tt.method, tt.path, tt.body)

			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
		})
	}
}

func TestCatalogHandler_GetProduct(t *testing.T) {
	products := &mockProducts{GetFunc: func(id uint) (*entity.Product, error) {
		if id != 1 {
			return nil, usecase.ErrProductNotFound
		}
		return &entity.Product{ID: 1, Name: "Galaxy S24"}, nil
	}}
	r := newRouter(NewCatalogHandler(&mockTaxonomy{}, products), "")

	w := do(r, http.MethodGet, "/products/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"images":[]`)

	w = do(r, http.MethodGet, "/products/2", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"product not found"}`, w.Body.String())
}
