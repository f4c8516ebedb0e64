package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/DiogoCoutinz/DashboardComercial/internal/config"
	"github.com/DiogoCoutinz/DashboardComercial/internal/dashboard"
	"github.com/DiogoCoutinz/DashboardComercial/internal/httpx"
	"github.com/DiogoCoutinz/DashboardComercial/internal/postgres"
	"github.com/DiogoCoutinz/DashboardComercial/internal/store"
	"github.com/DiogoCoutinz/DashboardComercial/internal/utils"
)

func main() {
	cfg := config.FromEnv()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	var src dashboard.Source = store.NewMemoryStore()
	if cfg.DatabaseURL != "" {
		var db *postgres.Store
		err := utils.NewBackoff(time.Second, 4).Do(func(i int) error {
			ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
			defer cancel()
			var err error
			db, err = postgres.Connect(ctx, cfg.DatabaseURL, logger)
			if err != nil {
				logger.Warn("database connect failed", slog.Int("attempt", i+1), slog.String("err", err.Error()))
			}
			return err
		})
		if err != nil {
			logger.Error("database unreachable", slog.String("err", err.Error()))
			os.Exit(1)
		}
		defer db.Close()
		src = db
	} else {
		logger.Info("no DATABASE_URL set, serving from the in-memory store")
	}

	svc := dashboard.NewService(src, logger)
	r := httpx.NewRouter(logger, svc)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("starting server", slog.String("port", cfg.Port))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", slog.String("err", err.Error()))
		os.Exit(1)
	}
}
