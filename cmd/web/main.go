package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	cartapp "github.com/dwikikusuma/shoply/internal/cart/app"
	cartmem "github.com/dwikikusuma/shoply/internal/cart/infra/memory"
	cartredis "github.com/dwikikusuma/shoply/internal/cart/infra/redis"
	catalogapp "github.com/dwikikusuma/shoply/internal/catalog/app"
	"github.com/dwikikusuma/shoply/internal/catalog/infra/fakestore"
	checkoutapp "github.com/dwikikusuma/shoply/internal/checkout/app"
	"github.com/dwikikusuma/shoply/internal/web"
	"github.com/dwikikusuma/shoply/pkg/config"
	"github.com/dwikikusuma/shoply/pkg/logger"
	"github.com/dwikikusuma/shoply/pkg/shutdown"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{Service: "web", Env: cfg.AppEnv, Level: cfg.LogLevel, AddSource: true})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	storage := mustStorage(ctx, cfg, log)

	// Catalog
	catalogClient := fakestore.New(cfg.CatalogBaseURL, &http.Client{Timeout: 10 * time.Second})
	catalogSvc := catalogapp.NewService(catalogClient)

	// Cart
	cartManager := cartapp.NewManager(storage, log)

	// Checkout stub
	checkoutSvc := checkoutapp.NewService()

	handler := web.NewHandler(catalogSvc, cartManager, checkoutSvc, log)
	router, err := web.NewRouter(handler)
	if err != nil {
		log.Error("router setup failed", slog.Any("err", err))
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info("http server starting", slog.String("addr", addr), slog.String("catalog", cfg.CatalogBaseURL))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", slog.Any("err", err))
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown requested")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown error", slog.Any("err", err))
	}

	wg.Wait()
	log.Info("bye")
}

// mustStorage picks Redis when configured, in-process memory otherwise.
func mustStorage(ctx context.Context, cfg config.Config, log *slog.Logger) cartapp.Storage {
	if cfg.RedisAddr == "" {
		log.Info("no REDIS_ADDR set, carts are in-memory only")
		return cartmem.New()
	}

	storage, err := cartredis.New(ctx, cfg.RedisAddr)
	if err != nil {
		log.Error("redis connect failed", slog.Any("err", err), slog.String("addr", cfg.RedisAddr))
		os.Exit(1)
	}
	log.Info("cart storage on redis", slog.String("addr", cfg.RedisAddr))
	return storage
}
