package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Tanvi183/zap-shift-server/controllers"
	"github.com/Tanvi183/zap-shift-server/database"
	"github.com/Tanvi183/zap-shift-server/providers"
	"github.com/Tanvi183/zap-shift-server/repository"
	"github.com/Tanvi183/zap-shift-server/routes"
	servicepkg "github.com/Tanvi183/zap-shift-server/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	cfg, err := LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	db, err := database.Connect(context.Background(), cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close(context.Background(), db) //nolint:errcheck

	// Repositories and DI chain
	parcelRepo := repository.NewMongoParcelRepository(db)
	paymentRepo := repository.NewMongoPaymentRepository(db)
	if err := paymentRepo.EnsureIndexes(context.Background()); err != nil {
		logger.Fatal("Failed to create payment indexes", zap.Error(err))
	}

	checkoutProvider := providers.NewStripeProvider(cfg.StripeSecret, cfg.SiteDomain)
	parcelService := servicepkg.NewParcelService(parcelRepo, logger)
	paymentService := servicepkg.NewPaymentService(parcelRepo, paymentRepo, checkoutProvider, logger)

	parcelController := controllers.NewParcelController(parcelService)
	paymentController := controllers.NewPaymentController(paymentService)

	r := gin.New()
	r.Use(gin.Recovery())

	// Global request-logging middleware
	r.Use(func(c *gin.Context) {
		start := time.Now()
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("request_id", requestID)
		c.Next()
		logger.Info("request",
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	})

	// 30-second request timeout
	r.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Parcel delivery server is running")
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "zap-shift-server"})
	})

	routes.RegisterRoutes(r, parcelController, paymentController)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	logger.Info("Parcel service started", zap.String("port", cfg.Port))
	<-quit
	logger.Info("Shutting down parcel service...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	logger.Info("Server exited cleanly")
}
