// Package router assembles the gin engine.
package router

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	addresshandler "shop_backend/internal/feature/address/transport/handler"
	authhandler "shop_backend/internal/feature/auth/transport/handler"
	carthandler "shop_backend/internal/feature/cart/transport/handler"
	cataloghandler "shop_backend/internal/feature/catalog/transport/handler"
	commenthandler "shop_backend/internal/feature/comment/transport/handler"
	dealhandler "shop_backend/internal/feature/deal/transport/handler"
	orderhandler "shop_backend/internal/feature/order/transport/handler"
	reviewhandler "shop_backend/internal/feature/review/transport/handler"
	supplierhandler "shop_backend/internal/feature/supplier/transport/handler"
	wishlisthandler "shop_backend/internal/feature/wishlist/transport/handler"
	"shop_backend/internal/platform/http/handler"
	"shop_backend/internal/platform/http/middleware"
	jwtmw "shop_backend/internal/platform/jwt"
	"shop_backend/internal/shared/ratelimiter"
)

// Handlers bundles every feature handler the router mounts.
type Handlers struct {
	Auth     *authhandler.AuthHandler
	Address  *addresshandler.AddressHandler
	Catalog  *cataloghandler.CatalogHandler
	Supplier *supplierhandler.SupplierHandler
	Review   *reviewhandler.ReviewHandler
	Wishlist *wishlisthandler.WishlistHandler
	Cart     *carthandler.CartHandler
	Order    *orderhandler.OrderHandler
	Comment  *commenthandler.CommentHandler
	Deal     *dealhandler.DealHandler
}

// Options carries the router-level settings.
type Options struct {
	JWTSecret   string
	CORSOrigins []string
	AuthLimiter ratelimiter.Limiter
	Readiness   map[string]handler.Check
}

func NewRouter(logger *slog.Logger, h Handlers, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.AccessLog(logger), middleware.Recovery(logger))

	if len(opts.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     opts.CORSOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.HeaderRequestID},
			ExposeHeaders:    []string{middleware.HeaderRequestID},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	// 導通確認用
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)
	r.OPTIONS("/healthz", handler.Health)
	r.GET("/readyz", handler.Readiness(opts.Readiness))

	// 認証エンドポイントはIP単位でレート制限
	public := r.Group("/")
	if opts.AuthLimiter != nil {
		public.Use(middleware.RateLimit(opts.AuthLimiter))
	}
	{
		public.POST("/register", h.Auth.Register)
		public.POST("/login", h.Auth.Login)
		public.POST("/token/refresh", h.Auth.Refresh)
		public.POST("/logout", h.Auth.Logout)
	}

	// 認証不要の参照系
	r.GET("/brands", h.Catalog.ListBrands)
	r.GET("/categories", h.Catalog.ListCategories)
	r.GET("/products", h.Catalog.ListProducts)
	r.GET("/product-images", h.Catalog.ListProductImages)
	r.GET("/products/:id", h.Catalog.GetProduct)
	r.GET("/products/:id/rating", h.Review.Rating)
	r.GET("/reviews", h.Review.List)
	r.GET("/comments", h.Comment.List)
	r.GET("/deals", h.Deal.Active)
	r.GET("/deals/all", h.Deal.All)
	r.GET("/suppliers", h.Supplier.List)

	// 認証必須のルート
	auth := r.Group("/")
	auth.Use(jwtmw.AuthRequired(opts.JWTSecret))
	{
		auth.GET("/users/me", h.Auth.Me)
		auth.PUT("/users/:id", h.Auth.UpdateProfile)

		auth.GET("/addresses", h.Address.List)
		auth.POST("/addresses", h.Address.Create)
		auth.GET("/addresses/:id", h.Address.Get)
		auth.PUT("/addresses/:id", h.Address.Update)
		auth.DELETE("/addresses/:id", h.Address.Delete)

		auth.POST("/products", h.Catalog.CreateProduct)
		auth.PUT("/products/:id", h.Catalog.UpdateProduct)
		auth.DELETE("/products/:id", h.Catalog.DeleteProduct)
		auth.POST("/products/:id/images", h.Catalog.AddProductImage)

		auth.POST("/suppliers", h.Supplier.Create)
		auth.GET("/suppliers/:id", h.Supplier.Get)
		auth.DELETE("/suppliers/:id", h.Supplier.Delete)

		auth.POST("/reviews", h.Review.Create)

		auth.GET("/wishlist", h.Wishlist.List)
		auth.POST("/wishlist", h.Wishlist.Add)
		auth.DELETE("/wishlist/:id", h.Wishlist.Remove)

		auth.GET("/cart", h.Cart.Get)
		auth.POST("/cart", h.Cart.Add)
		auth.PUT("/cart/:id", h.Cart.Update)
		auth.DELETE("/cart/:id", h.Cart.Remove)
		auth.DELETE("/cart", h.Cart.Clear)

		auth.POST("/orders", h.Order.Checkout)
		auth.GET("/orders", h.Order.List)
		auth.GET("/orders/:id", h.Order.Get)
		auth.POST("/orders/:id/cancel", h.Order.Cancel)

		auth.POST("/comments", h.Comment.Create)
	}

	admin := auth.Group("/")
	admin.Use(jwtmw.RequireRole(jwtmw.RoleAdmin))
	{
		admin.POST("/brands", h.Catalog.CreateBrand)
		admin.POST("/categories", h.Catalog.CreateCategory)
		admin.POST("/deals", h.Deal.Create)
		admin.DELETE("/deals/:id", h.Deal.Delete)
		admin.PATCH("/suppliers/:id/verify", h.Supplier.Verify)
		admin.POST("/orders/:id/complete", h.Order.Complete)
		admin.PATCH("/comments/:id/status", h.Comment.SetStatus)
	}

	return r
}
