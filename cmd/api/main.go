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
	"go.uber.org/zap"

	"github.com/barberrock/booking-api/internal/audit"
	"github.com/barberrock/booking-api/internal/auth"
	"github.com/barberrock/booking-api/internal/config"
	dbpkg "github.com/barberrock/booking-api/internal/db"
	"github.com/barberrock/booking-api/internal/lock"
	"github.com/barberrock/booking-api/internal/media"
	"github.com/barberrock/booking-api/internal/middleware"
	"github.com/barberrock/booking-api/internal/routes"
	ucGallery "github.com/barberrock/booking-api/internal/usecase/gallery"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsDevelopment() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := dbpkg.NewDB(cfg, logger)
	if err != nil {
		return err
	}

	// ======================================================
	// LOCKS
	// ======================================================
	var locker lock.Locker = lock.NewLocalLocker()
	if cfg.RedisURL != "" {
		client, err := lock.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			return err
		}
		defer client.Close()

		locker = lock.NewRedisLocker(client, cfg.LockTTL, logger)
		logger.Info("booking locks backed by redis")
	}

	// ======================================================
	// MEDIA
	// ======================================================
	var store ucGallery.ObjectStore
	if cfg.MediaEnabled() {
		store = media.NewS3Store(media.S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			PublicURL: cfg.S3PublicURL,
		}, logger)
	}

	dispatcher := audit.NewDispatcher(audit.New(db), logger)
	defer dispatcher.Close()

	// ======================================================
	// HTTP
	// ======================================================
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORSMiddleware(cfg.FrontendURL))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, routes.Deps{
		Audit:  dispatcher,
		Locker: locker,
		Store:  store,
		Tokens: auth.NewTokens(cfg.JWTSecret),
		Logger: logger,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server running", zap.String("addr", cfg.Addr()))
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

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
