package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"

	"nutribites-storefront/internal/catalog"
	"nutribites-storefront/internal/config"
	"nutribites-storefront/internal/db"
	"nutribites-storefront/internal/httpserver"
	"nutribites-storefront/internal/storefront"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()

	var dbpool *pgxpool.Pool
	if cfg.DBConnString != "" {
		pool, err := db.Connect(ctx, cfg.DBConnString)
		if err != nil {
			logger.Fatalf("connect to db: %v", err)
		}
		defer pool.Close()
		dbpool = pool
	} else {
		logger.Println("no DB_DSN set, cart sessions held in memory")
	}

	var catalogSrc catalog.Source = catalog.NewMock()
	var remote httpserver.RemoteCartClient
	if cfg.Remote != nil {
		client := storefront.NewClient(cfg.Remote.Endpoint(), cfg.Remote.AccessToken, logger)
		catalogSrc = client
		remote = client
		logger.Printf("storefront backend configured: %s", cfg.Remote.Domain)
	} else {
		logger.Println("no storefront backend configured, serving mock catalog")
	}

	sessions := httpserver.NewSessionManager(dbpool, remote, logger)

	srv := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		Catalog:        catalogSrc,
		Sessions:       sessions,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
