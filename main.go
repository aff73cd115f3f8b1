package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"solarcatalog/internal/catalog"
	"solarcatalog/internal/config"
	"solarcatalog/internal/database"
	"solarcatalog/internal/handlers"
	"solarcatalog/internal/leads"
	"solarcatalog/internal/logging"
	"solarcatalog/internal/middleware"
)

func main() {
	config.Load()
	cfg := config.AppEnv

	logging.Setup(os.Stdout, cfg.AppEnv, cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	client, err := database.Connect(cfg.MongoURI)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Disconnect(context.Background())

	db := client.Database(cfg.DBName)

	log.Println("MongoDB connected to:", db.Name())

	if err := database.EnsureCatalogIndexes(db); err != nil {
		log.Warnf("catalog index warning: %v", err)
	}

	rdb := connectRedis(cfg.RedisURL)
	if rdb != nil {
		defer rdb.Close()
	}

	store := database.NewCatalogStore(db)
	catalogSvc := catalog.NewService(store,
		catalog.WithCacheTTL(cfg.CacheTTL),
		catalog.WithProductLimit(cfg.ProductLimit),
	)
	leadSvc := leads.NewService(database.NewLeadStore(db))
	admins := database.NewAdminStore(db)

	if cfg.AppEnv == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	r.GET("/healthz", handlers.Healthz(store))

	r.GET("/products", handlers.GetProducts(catalogSvc))
	r.GET("/products/featured", handlers.GetFeaturedProducts(catalogSvc))
	r.GET("/products/popular", handlers.GetPopularProducts(catalogSvc))
	r.GET("/products/in-stock", handlers.GetInStockProducts(catalogSvc))
	r.GET("/products/slug/:slug", handlers.GetProductBySlug(catalogSvc))
	r.GET("/products/:id", handlers.GetProduct(catalogSvc))
	r.GET("/products/:id/related", handlers.GetRelatedProducts(catalogSvc))

	r.GET("/categories", handlers.GetCategories(catalogSvc))
	r.GET("/brands", handlers.GetBrands(catalogSvc))
	r.GET("/stats", handlers.GetStats(catalogSvc))
	r.GET("/catalog/overview", handlers.GetCatalogOverview(catalogSvc))

	r.POST("/contact",
		middleware.RateLimiter(rdb, "contact", cfg.ContactRateLimit, cfg.ContactRateWindow),
		handlers.SubmitContact(leadSvc),
	)

	r.POST("/webhooks/cms", handlers.CMSWebhook(catalogSvc, cfg.WebhookSecret))

	r.POST("/admin/login", handlers.AdminLogin(admins, cfg.JWTSecret, cfg.AccessTokenTTL))

	admin := r.Group("/admin/api")
	admin.Use(middleware.AdminAuth(cfg.JWTSecret))
	{
		admin.GET("/me", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})
		admin.POST("/cache/clear", handlers.ClearCatalogCache(catalogSvc))
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}
}

// connectRedis returns nil when no URL is configured or Redis is unreachable;
// the contact form then runs without rate limiting.
func connectRedis(url string) *redis.Client {
	if url == "" {
		log.Warn("REDIS_URL not set, contact rate limiting disabled")
		return nil
	}

	opt, err := redis.ParseURL(url)
	if err != nil {
		log.WithError(err).Warn("invalid REDIS_URL, contact rate limiting disabled")
		return nil
	}

	rdb := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.WithError(err).Warn("redis unreachable, contact rate limiting disabled")
		_ = rdb.Close()
		return nil
	}

	log.Println("Redis connected")
	return rdb
}
