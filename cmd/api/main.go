package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/sundrymarket/storefront/api/routes"
	cartsvc "github.com/sundrymarket/storefront/internal/cart"
	catalogsvc "github.com/sundrymarket/storefront/internal/catalog"
	contentsvc "github.com/sundrymarket/storefront/internal/content"
	prefssvc "github.com/sundrymarket/storefront/internal/prefs"
	"github.com/sundrymarket/storefront/pkg/config"
	"github.com/sundrymarket/storefront/pkg/logger"
	"github.com/sundrymarket/storefront/pkg/metrics"
	"github.com/sundrymarket/storefront/pkg/storage"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "storefront"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "storefront",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx := context.Background()

	store, err := buildStore(ctx, cfg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap storage", err)
		os.Exit(1)
	}
	defer func() {
		closer, ok := store.(io.Closer)
		if !ok {
			return
		}
		if err := storage.CloseAll(closer); err != nil {
			logg.Error(ctx, "error closing storage", err)
		}
	}()

	registry := prometheus.NewRegistry()
	storefrontMetrics := metrics.NewStorefrontMetrics(registry)

	feedSource, err := catalogsvc.NewFileSource(cfg.Catalog.FeedPath)
	if err != nil {
		logg.Error(ctx, "failed to open catalog feed", err)
		os.Exit(1)
	}

	catalogService, err := catalogsvc.NewService(catalogsvc.ServiceParams{
		Source:       feedSource,
		Logger:       logg,
		Metrics:      storefrontMetrics,
		ItemsPerPage: cfg.Catalog.ItemsPerPage,
		InitialBatch: cfg.Catalog.InitialBatch,
		BatchSize:    cfg.Catalog.BatchSize,
	})
	if err != nil {
		logg.Error(ctx, "failed to create catalog service", err)
		os.Exit(1)
	}
	if err := catalogService.Refresh(ctx); err != nil {
		logg.Error(ctx, "failed to load catalog feed", err)
		os.Exit(1)
	}

	cartManager, err := cartsvc.NewManager(cartsvc.ManagerParams{
		Store:   store,
		Logger:  logg,
		Metrics: storefrontMetrics,
	})
	if err != nil {
		logg.Error(ctx, "failed to create cart manager", err)
		os.Exit(1)
	}

	prefsService, err := prefssvc.NewService(ctx, prefssvc.ServiceParams{
		Store:  store,
		Logger: logg,
	})
	if err != nil {
		logg.Error(ctx, "failed to create prefs service", err)
		os.Exit(1)
	}

	contentService, err := contentsvc.NewService(cfg.Content.BlocksPath)
	if err != nil {
		logg.Error(ctx, "failed to load content blocks", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	startCtx := logg.WithFields(ctx, map[string]any{
		"env":     cfg.App.Env,
		"addr":    addr,
		"storage": cfg.Storage.Backend,
	})
	logg.Info(startCtx, "starting storefront server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.RouterParams{
			Config:   cfg,
			Logger:   logg,
			Store:    store,
			Catalog:  catalogService,
			Carts:    cartManager,
			Prefs:    prefsService,
			Content:  contentService,
			Gatherer: registry,
		}),
	}

	shutdownCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(startCtx, "storefront server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-shutdownCtx.Done():
		logg.Info(startCtx, "shutting down storefront server")
		graceCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(graceCtx); err != nil {
			logg.Error(startCtx, "graceful shutdown failed", err)
		}
	}
}

func buildStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	switch strings.ToLower(cfg.Storage.Backend) {
	case config.StorageBackendFile:
		return storage.NewFileStore(cfg.Storage.Dir)
	case config.StorageBackendRedis:
		return storage.NewRedisStore(ctx, storage.RedisOptions{
			URL:          cfg.Storage.Redis.URL,
			Address:      cfg.Storage.Redis.Address,
			Password:     cfg.Storage.Redis.Password,
			DB:           cfg.Storage.Redis.DB,
			PoolSize:     cfg.Storage.Redis.PoolSize,
			MinIdleConns: cfg.Storage.Redis.MinIdleConns,
			DialTimeout:  cfg.Storage.Redis.DialTimeout,
			ReadTimeout:  cfg.Storage.Redis.ReadTimeout,
			WriteTimeout: cfg.Storage.Redis.WriteTimeout,
		})
	case config.StorageBackendSQLite:
		return storage.NewSQLiteStore(cfg.Storage.SQLitePath)
	default:
		return storage.NewMemoryStore(), nil
	}
}
