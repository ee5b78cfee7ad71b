package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/joya-jewelry/server/config"
	"github.com/joya-jewelry/server/database"
	"github.com/joya-jewelry/server/handlers"
	"github.com/joya-jewelry/server/services"
	"github.com/joya-jewelry/server/store"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	// A .env file is optional; in production the variables come from the
	// process environment.
	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file loaded, relying on process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Error("loading configuration", "error", err)
		os.Exit(1)
	}

	// Fail fast: an unreachable storage endpoint at boot aborts the process
	// instead of accepting requests that can only fail.
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout())
	client, err := database.Connect(ctx, cfg.URI())
	cancel()
	if err != nil {
		logger.Error("connecting to mongo", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to mongo", "database", cfg.DBName)

	db := client.Database(cfg.DBName)

	// The unique index on users.email backs the one-profile-per-email
	// invariant; without it the startup is not safe to continue.
	ctx, cancel = context.WithTimeout(context.Background(), cfg.ConnectTimeout())
	err = database.EnsureIndexes(ctx, db)
	cancel()
	if err != nil {
		logger.Error("ensuring indexes", "error", err)
		os.Exit(1)
	}

	users := store.NewMongoUserStore(db)
	products := store.NewMongoProductStore(db)
	brands := store.NewMongoBrandStore(db)
	profiles := services.NewProfileService(users)

	h := handlers.New(profiles, users, products, brands, logger, cfg.DBTimeout())
	h.Ping = func(ctx context.Context) error {
		return client.Ping(ctx, readpref.Primary())
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handlers.NewRouter(h),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("http_listen", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server error", "error", err)
			os.Exit(1)
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	s := <-sigc
	logger.Info("shutdown_signal", "signal", s.String())

	ctx, cancel = context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("http shutdown error", "error", err)
	}
	if err := database.Disconnect(ctx, client); err != nil {
		logger.Error("mongo disconnect error", "error", err)
	}
	logger.Info("server stopped")
}
