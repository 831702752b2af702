package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	redisv9 "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"shop_backend/internal/api"
	"shop_backend/internal/app/di"
	"shop_backend/internal/app/router"
	"shop_backend/internal/config"
	addressadapters "shop_backend/internal/feature/address/adapters"
	addresshandler "shop_backend/internal/feature/address/transport/handler"
	addressusecase "shop_backend/internal/feature/address/usecase"
	authadapters "shop_backend/internal/feature/auth/adapters"
	authhandler "shop_backend/internal/feature/auth/transport/handler"
	authusecase "shop_backend/internal/feature/auth/usecase"
	cartadapters "shop_backend/internal/feature/cart/adapters"
	carthandler "shop_backend/internal/feature/cart/transport/handler"
	cartusecase "shop_backend/internal/feature/cart/usecase"
	catalogadapters "shop_backend/internal/feature/catalog/adapters"
	cataloghandler "shop_backend/internal/feature/catalog/transport/handler"
	catalogusecase "shop_backend/internal/feature/catalog/usecase"
	commentadapters "shop_backend/internal/feature/comment/adapters"
	commenthandler "shop_backend/internal/feature/comment/transport/handler"
	commentusecase "shop_backend/internal/feature/comment/usecase"
	dealadapters "shop_backend/internal/feature/deal/adapters"
	dealhandler "shop_backend/internal/feature/deal/transport/handler"
	dealusecase "shop_backend/internal/feature/deal/usecase"
	orderadapters "shop_backend/internal/feature/order/adapters"
	orderhandler "shop_backend/internal/feature/order/transport/handler"
	orderusecase "shop_backend/internal/feature/order/usecase"
	reviewadapters "shop_backend/internal/feature/review/adapters"
	reviewhandler "shop_backend/internal/feature/review/transport/handler"
	reviewusecase "shop_backend/internal/feature/review/usecase"
	supplieradapters "shop_backend/internal/feature/supplier/adapters"
	supplierhandler "shop_backend/internal/feature/supplier/transport/handler"
	supplierusecase "shop_backend/internal/feature/supplier/usecase"
	wishlistadapters "shop_backend/internal/feature/wishlist/adapters"
	wishlisthandler "shop_backend/internal/feature/wishlist/transport/handler"
	wishlistusecase "shop_backend/internal/feature/wishlist/usecase"
	"shop_backend/internal/platform/cache"
	infradb "shop_backend/internal/platform/db"
	"shop_backend/internal/platform/http/handler"
	jwtmw "shop_backend/internal/platform/jwt"
	"shop_backend/internal/platform/logger"
	infraredis "shop_backend/internal/platform/redis"
	"shop_backend/internal/shared/ratelimiter"
)

const (
	shutdownTimeout = 10 * time.Second
	purgeInterval   = time.Hour
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	if cfg.App.Env == config.EnvDevelopment && cfg.JWT.Secret == config.DevJWTSecret {
		log.Warn("JWT_SECRET is not set. Using the development secret.")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// db
	db, err := infradb.OpenDB(cfg.DB)
	if err != nil {
		return err
	}
	if cfg.DB.RunMigrations {
		if err := infradb.Migrate(db, di.Models()...); err != nil {
			return err
		}
		log.Info("auto migration finished")
	}

	// Redis
	var rdb *redisv9.Client
	if cfg.Redis.Host == "" {
		log.Info("REDIS_HOST not set. Running without cache.")
	} else if tmp, err := infraredis.NewRedisClient(ctx, cfg.Redis); err != nil {
		log.Warn("Redis unavailable. Running without cache.", "error", err)
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Error("failed to close Redis client", "error", err)
			}
		}()
	}

	publisher, err := di.NewOrderPublisher(cfg.Kafka)
	if err != nil {
		return err
	}
	defer publisher.Close()

	api.RegisterValidators()

	// Repository
	userRepo := authadapters.NewUserRepository(db)
	sessionRepo := di.NewSessionRepository(rdb, db)
	brandRepo := catalogadapters.NewBrandRepository(db)
	categoryRepo := catalogadapters.NewCategoryRepository(db)
	productRepo := cache.NewCachingProductRepository(rdb, cfg.Catalog.CacheTTL, catalogadapters.NewProductRepository(db), "")
	dealRepo := cache.NewCachingDealRepository(rdb, cfg.App.Location, dealadapters.NewDealRepository(db), "")
	reviewRepo := reviewadapters.NewReviewRepository(db)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, sessionRepo, jwtmw.NewGenerator(cfg.JWT.Secret, cfg.JWT.AccessTTL), authusecase.Options{
		AccessTTL:          cfg.JWT.AccessTTL,
		RefreshTTL:         cfg.JWT.RefreshTTL,
		MaxSessionsPerUser: cfg.JWT.MaxSessionsPerUser,
	})
	profileUC := authusecase.NewProfileUsecase(userRepo, sessionRepo)
	dealUC := dealusecase.NewDealUsecase(dealRepo, cfg.App.Location)

	// Handler
	handlers := router.Handlers{
		Auth:     authhandler.NewAuthHandler(authUC, profileUC),
		Address:  addresshandler.NewAddressHandler(addressusecase.NewAddressUsecase(addressadapters.NewAddressRepository(db))),
		Catalog:  cataloghandler.NewCatalogHandler(catalogusecase.NewTaxonomyUsecase(brandRepo, categoryRepo, cfg.Catalog.PriorityCategory), catalogusecase.NewProductUsecase(productRepo, brandRepo, categoryRepo)),
		Supplier: supplierhandler.NewSupplierHandler(supplierusecase.NewSupplierUsecase(supplieradapters.NewSupplierRepository(db))),
		Review:   reviewhandler.NewReviewHandler(reviewusecase.NewReviewUsecase(reviewRepo, reviewRepo)),
		Wishlist: wishlisthandler.NewWishlistHandler(wishlistusecase.NewWishlistUsecase(wishlistadapters.NewWishlistRepository(db))),
		Cart:     carthandler.NewCartHandler(cartusecase.NewCartUsecase(cartadapters.NewCartRepository(db), dealUC)),
		Order:    orderhandler.NewOrderHandler(orderusecase.NewOrderUsecase(orderadapters.NewOrderRepository(db), dealUC, publisher, productRepo)),
		Comment:  commenthandler.NewCommentHandler(commentusecase.NewCommentUsecase(commentadapters.NewCommentRepository(db))),
		Deal:     dealhandler.NewDealHandler(dealUC),
	}

	engine := router.NewRouter(log, handlers, router.Options{
		JWTSecret:   cfg.JWT.Secret,
		CORSOrigins: cfg.HTTP.CORSAllowOrigins,
		AuthLimiter: ratelimiter.NewRateLimiter(cfg.HTTP.AuthRateLimit, cfg.HTTP.AuthRateWindow),
		Readiness:   readinessChecks(db, rdb),
	})

	go purgeExpiredSessions(ctx, authUC, purgeInterval)

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening", "addr", srv.Addr, "env", cfg.App.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func readinessChecks(db *gorm.DB, rdb *redisv9.Client) map[string]handler.Check {
	checks := map[string]handler.Check{
		"db": func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
	if rdb != nil {
		checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	}
	return checks
}

// sessionPurger deletes refresh sessions past their expiry.
type sessionPurger interface {
	PurgeExpiredSessions(ctx context.Context) (int64, error)
}

// purgeExpiredSessions runs purger every interval until ctx ends.
func purgeExpiredSessions(ctx context.Context, purger sessionPurger, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := purger.PurgeExpiredSessions(ctx)
			if err != nil {
				slog.Warn("session purge failed", "error", err)
				continue
			}
			if n > 0 {
				slog.Info("expired sessions purged", "count", n)
			}
		}
	}
}
