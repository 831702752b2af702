// Package handler provides the HTTP handlers of the catalog feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"shop_backend/internal/api"
	"shop_backend/internal/feature/catalog/domain/entity"
	"shop_backend/internal/feature/catalog/transport/http/dto"
	"shop_backend/internal/feature/catalog/usecase"
	jwtmw "shop_backend/internal/platform/jwt"
)

// TaxonomyUsecase serves brands and categories.
type TaxonomyUsecase interface {
	ListBrands(ctx context.Context) ([]entity.Brand, error)
	CreateBrand(ctx context.Context, name string) (*entity.Brand, error)
	ListCategories(ctx context.Context) ([]entity.Category, error)
	CreateCategory(ctx context.Context, name string) (*entity.Category, error)
}

// ProductUsecase manages products and their images.
type ProductUsecase interface {
	List(ctx context.Context, f entity.ProductFilter) ([]entity.Product, error)
	Get(ctx context.Context, id uint) (*entity.Product, error)
	Create(ctx context.Context, actorID uint, in usecase.ProductInput) (*entity.Product, error)
	Update(ctx context.Context, actorID uint, isAdmin bool, id uint, in usecase.ProductInput) (*entity.Product, error)
	Delete(ctx context.Context, actorID uint, isAdmin bool, id uint) error
	AddImage(ctx context.Context, actorID uint, isAdmin bool, productID uint, url string) (*entity.ProductImage, error)
}

// CatalogHandler handles brand, category, product and image endpoints.
type CatalogHandler struct {
	taxonomy TaxonomyUsecase
	products ProductUsecase
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(taxonomy TaxonomyUsecase, products ProductUsecase) *CatalogHandler {
	return &CatalogHandler{taxonomy: taxonomy, products: products}
}

// writeError maps catalog errors to HTTP responses.
func writeError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, usecase.ErrProductNotFound),
		errors.Is(err, usecase.ErrBrandNotFound),
		errors.Is(err, usecase.ErrCategoryNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrForbidden):
		slog.Warn(op+" forbidden", "user_id", jwtmw.UserID(c), "remote_addr", c.ClientIP())
		c.JSON(http.StatusForbidden, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrNameTaken):
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrInvalidProduct):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
	default:
		slog.Error(op+" failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
	}
}

// ListBrands handles GET /brands.
func (h *CatalogHandler) ListBrands(c *gin.Context) {
	brands, err := h.taxonomy.ListBrands(c.Request.Context())
	if err != nil {
		writeError(c, "list brands", err)
		return
	}
	c.JSON(http.StatusOK, brands)
}

// CreateBrand handles POST /brands (admin).
func (h *CatalogHandler) CreateBrand(c *gin.Context) {
	var req dto.NameReq
	if err := c.ShouldBindJSON(&req); err != nil {
		api.AbortInvalid(c, err)
		return
	}
	b, err := h.taxonomy.CreateBrand(c.Request.Context(), req.Name)
	if err != nil {
		writeError(c, "create brand", err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// ListCategories handles GET /categories. The priority category comes first.
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	cats, err := h.taxonomy.ListCategories(c.Request.Context())
	if err != nil {
		writeError(c, "list categories", err)
		return
	}
	c.JSON(http.StatusOK, cats)
}

// CreateCategory handles POST /categories (admin).
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req dto.NameReq
	if err := c.ShouldBindJSON(&req); err != nil {
		api.AbortInvalid(c, err)
		return
	}
	cat, err := h.taxonomy.CreateCategory(c.Request.Context(), req.Name)
	if err != nil {
		writeError(c, "create category", err)
		return
	}
	c.JSON(http.StatusCreated, cat)
}

func (h *CatalogHandler) bindFilter(c *gin.Context) (entity.ProductFilter, bool) {
	var q dto.ProductQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		api.AbortInvalid(c, err)
		return entity.ProductFilter{}, false
	}
	return entity.ProductFilter{
		CategoryID: q.CategoryID,
		BrandID:    q.BrandID,
		Search:     q.Search,
		Limit:      q.Limit,
		Offset:     q.Offset,
	}, true
}

// ListProducts handles GET /products.
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	f, ok := h.bindFilter(c)
	if !ok {
		return
	}
	products, err := h.products.List(c.Request.Context(), f)
	if err != nil {
		writeError(c, "list products", err)
		return
	}
	out := make([]dto.ProductRes, 0, len(products))
	for i := range products {
		out = append(out, dto.NewProductRes(&products[i]))
	}
	c.JSON(http.StatusOK, out)
}

// ListProductImages handles GET /product-images: products with their images.
func (h *CatalogHandler) ListProductImages(c *gin.Context) {
	f, ok := h.bindFilter(c)
	if !ok {
		return
	}
	f.WithImages = true
	products, err := h.products.List(c.Request.Context(), f)
	if err != nil {
		writeError(c, "list product images", err)
		return
	}
	out := make([]dto.ProductDetailRes, 0, len(products))
	for i := range products {
		out = append(out, dto.NewProductDetailRes(&products[i]))
	}
	c.JSON(http.StatusOK, out)
}

// GetProduct handles GET /products/:id.
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, ok := api.ParamID(c, "id")
	if !ok {
		return
	}
	p, err := h.products.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, "get product", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProductDetailRes(p))
}

// toInput expects a bound request; binding guarantees Price is set.
func toInput(req dto.ProductReq) usecase.ProductInput {
	return usecase.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Stock:       req.Stock,
		CategoryID:  req.CategoryID,
		BrandID:     req.BrandID,
	}
}

// CreateProduct handles POST /products. The caller becomes the owner.
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req dto.ProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		api.AbortInvalid(c, err)
		return
	}
	p, err := h.products.Create(c.Request.Context(), jwtmw.UserID(c), toInput(req))
	if err != nil {
		writeError(c, "create product", err)
		return
	}
	slog.Info("product created", "product_id", p.ID, "user_id", jwtmw.UserID(c))
	c.JSON(http.StatusCreated, dto.NewProductRes(p))
}

// UpdateProduct handles PUT /products/:id.
func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	id, ok := api.ParamID(c, "id")
	if !ok {
		return
	}
	var req dto.ProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		api.AbortInvalid(c, err)
		return
	}
	p, err := h.products.Update(c.Request.Context(), jwtmw.UserID(c), jwtmw.IsAdmin(c), id, toInput(req))
	if err != nil {
		writeError(c, "update product", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProductRes(p))
}

// DeleteProduct handles DELETE /products/:id.
func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	id, ok := api.ParamID(c, "id")
	if !ok {
		return
	}
	if err := h.products.Delete(c.Request.Context(), jwtmw.UserID(c), jwtmw.IsAdmin(c), id); err != nil {
		writeError(c, "delete product", err)
		return
	}
	slog.Info("product deleted", "product_id", id, "user_id", jwtmw.UserID(c))
	c.Status(http.StatusNoContent)
}

// AddProductImage handles POST /products/:id/images.
func (h *CatalogHandler) AddProductImage(c *gin.Context) {
	id, ok := api.ParamID(c, "id")
	if !ok {
		return
	}
	var req dto.ImageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		api.AbortInvalid(c, err)
		return
	}
	img, err := h.products.AddImage(c.Request.Context(), jwtmw.UserID(c), jwtmw.IsAdmin(c), id, req.ImageURL)
	if err != nil {
		writeError(c, "add product image", err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewImageRes(img))
}
