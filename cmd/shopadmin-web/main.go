package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"shopadmin/internal/apis/backend"
	"shopadmin/internal/bootstrap"
	"shopadmin/internal/config"
	httpserver "shopadmin/internal/http-server"
	"shopadmin/internal/logger"
	"shopadmin/internal/maintenance"
)

func main() {
	var (
		configPath = flag.String("config", "./config/config.yaml", "path to config.yaml")
		host       = flag.String("host", "", "override host")
		port       = flag.Int("port", 0, "override port")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("load config failed", "err", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:     cfg.Log.Level,
		Format:    cfg.Log.Format,
		AddSource: cfg.Log.AddSource,
		Env:       cfg.Env,
	})
	slog.SetDefault(log)

	if *host != "" {
		cfg.Server.Host = *host
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}

	mode := maintenance.New(log, nil)

	svcs, err := bootstrap.BuildServices(cfg, log, mode)
	if err != nil {
		log.Error("build services failed", "err", err)
		os.Exit(1)
	}

	api := httpserver.New(log, mode)
	api.RegisterRoutes(httpserver.Deps{
		Services:             svcs,
		PageSize:             cfg.Backend.PageSize,
		ShopProductsPageSize: cfg.Backend.ShopProductsPageSize,
		Timeout:              requestTimeout(cfg),
		Probe: func(ctx context.Context) error {
			_, err := svcs.Shops.ListSorted(ctx, 0, 1, backend.SortByName)
			return err
		},
	})

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))

	srv := &http.Server{
		Addr:              addr,
		Handler:           api.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		log.Info("web started", "addr", addr, "backend", cfg.Backend.BaseURL)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case sig := <-stop:
		log.Info("shutdown signal received", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("graceful shutdown failed", "err", err)
			_ = srv.Close()
		}
		log.Info("server stopped gracefully")

	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			log.Info("server closed")
			return
		}
		log.Error("server stopped with error", "err", err)
		os.Exit(1)
	}
}

// requestTimeout leaves room for the whole shop-list retry budget.
func requestTimeout(cfg *config.Config) time.Duration {
	perCall := time.Duration(cfg.HTTP.TimeoutSeconds) * time.Second
	interval := time.Duration(cfg.Retry.IntervalSeconds) * time.Second
	return time.Duration(cfg.Retry.MaxAttempts) * (perCall + interval)
}
