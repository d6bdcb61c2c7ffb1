package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/mfetisov/storefront/internal/gateway"
	"github.com/mfetisov/storefront/internal/httpapi"
	"github.com/mfetisov/storefront/internal/pricing"
	"github.com/mfetisov/storefront/internal/receipt"
	"github.com/mfetisov/storefront/pkg/config"
	"github.com/mfetisov/storefront/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(logger.Options{
		Service: "storefront",
		Env:     cfg.AppEnv,
		Level:   cfg.LogLevel,
	})

	httpClient := &http.Client{Timeout: cfg.RequestTimeout}
	tokens := gateway.ContextTokenSource{}
	cartClient := gateway.NewCartClient(cfg.APIBaseURL, httpClient, tokens)
	orderClient := gateway.NewOrderClient(cfg.APIBaseURL, httpClient, tokens)

	receipts := httpapi.ReceiptStoreFactory(func(string) receipt.Store {
		return receipt.NewMemoryStore()
	})
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		defer rdb.Close()
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Error("redis connection failed", "addr", cfg.RedisAddr, "error", err)
			os.Exit(1)
		}
		log.Info("receipt snapshots backed by redis", "addr", cfg.RedisAddr)
		receipts = func(scope string) receipt.Store {
			return receipt.NewRedisStore(rdb, scope)
		}
	}

	router := httpapi.NewRouter(httpapi.RouterConfig{
		Carts:    cartClient,
		Orders:   orderClient,
		OrderRds: orderClient,
		Receipts: receipts,
		Identity: subjectIdentity{},
		Coupons:  pricing.AcceptAllCoupons{},
		Log:      log,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("storefront engine listening", "port", cfg.HTTPPort, "api", cfg.APIBaseURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("forced shutdown", "error", err)
	}
	log.Info("server exited")
}

// subjectIdentity trusts the token subject as the user id. Stands in for the
// auth service until token introspection is wired up.
type subjectIdentity struct{}

func (subjectIdentity) Resolve(_ context.Context, token string) (string, error) {
	return token, nil
}
