package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookcatalog/internal/book"
	"bookcatalog/internal/config"
	"bookcatalog/internal/logger"
	"bookcatalog/internal/platform/alfabank"
	"bookcatalog/internal/platform/openlibrary"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("cannot load config", "error", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Environment: cfg.Env,
		Level:       logger.ParseLevel(cfg.LogLevel),
		AddSource:   cfg.Env != "production",
	})
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := openDB(ctx, cfg.DSN)
	if err != nil {
		log.Error("cannot open database", "dsn", config.RedactDSN(cfg.DSN), "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()
	log.Info("database connection OK")

	bookService := book.NewService(
		book.NewPostgresRepo(dbPool, cfg.DBTimeout),
		openlibrary.NewClient(cfg.OpenLibraryURL, cfg.UserAgent, cfg.OpenLibraryRPS, cfg.MaxRetries),
		alfabank.NewClient(cfg.AlfaBankURL, cfg.UserAgent, cfg.AlfaBankRPS, cfg.MaxRetries),
		log,
	)

	router := newRouter(ctx, routerDeps{
		cfg:    cfg,
		logger: log,
		db:     dbPool,
		books:  book.NewHTTPHandler(bookService, log),
	})

	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("starting server", "addr", cfg.Addr, "env", cfg.Env)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
}

func openDB(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}
