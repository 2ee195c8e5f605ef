package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/gizemabali/retaildiscountsapi/internal/clock"
	"github.com/gizemabali/retaildiscountsapi/internal/config"
	"github.com/gizemabali/retaildiscountsapi/internal/hashing"
	httpapi "github.com/gizemabali/retaildiscountsapi/internal/http"
	"github.com/gizemabali/retaildiscountsapi/internal/obs"
	"github.com/gizemabali/retaildiscountsapi/internal/repository"
	"github.com/gizemabali/retaildiscountsapi/internal/service"

	_ "github.com/gizemabali/retaildiscountsapi/docs"
)

func main() {
	_ = godotenv.Load()
	obs.InitLogger(slog.LevelInfo)
	cfg := config.Load()

	var idx repository.SearchIndex
	switch cfg.IndexBackend {
	case "memory":
		idx = repository.NewMemoryIndex()
	default:
		es, err := repository.NewElasticIndex(cfg.ElasticAddresses)
		if err != nil {
			obs.Logger.Error("elasticsearch setup", "error", err)
			os.Exit(1)
		}
		idx = es
	}

	clk := clock.System{}
	products := service.NewProductService(idx, cfg.ProductIndex)
	basket := service.NewBasketService(idx, cfg.ProductIndex, clk)
	users := service.NewUserService(idx, cfg.UserIndex, clk, hashing.SHA256{})

	srv := httpapi.NewServer(products, basket, users)
	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: srv.Engine(),
	}

	go func() {
		obs.Logger.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			obs.Logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		obs.Logger.Error("shutdown error", "error", err)
	}
}
