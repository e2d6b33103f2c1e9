package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"bookcatalog/internal/auth"
	"bookcatalog/internal/book"
	"bookcatalog/internal/config"
	"bookcatalog/internal/httpx"

	"github.com/go-chi/chi/v5"
)

const maxRequestBytes = 1 << 20

type pinger interface {
	Ping(ctx context.Context) error
}

type routerDeps struct {
	cfg    config.Config
	logger *slog.Logger
	db     pinger
	books  *book.HTTPHandler
}

func newRouter(ctx context.Context, d routerDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(httpx.RequestIDMiddleware)
	r.Use(httpx.RecoveryMiddleware(d.logger))
	r.Use(httpx.AccessLogMiddleware(d.logger))
	r.Use(httpx.SecurityHeadersMiddleware(d.cfg.EnableHSTS))
	r.Use(httpx.CORSMiddleware(d.cfg.CORSOrigins))
	r.Use(httpx.NewRateLimitMiddleware(ctx, d.cfg.RateLimitRPS, d.cfg.RateLimitBurst).Middleware)
	r.Use(httpx.RequestSizeLimitMiddleware(maxRequestBytes))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSONSuccess(w, r, map[string]string{"status": "ok"}, nil)
	})
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := d.db.Ping(ctx); err != nil {
			httpx.JSONError(w, r, http.StatusServiceUnavailable, "NOT_READY", "database not ready", nil)
			return
		}
		httpx.JSONSuccess(w, r, map[string]string{"status": "ready"}, nil)
	})

	r.Route("/v1", func(r chi.Router) {
		r.Mount("/books", d.books.Routes(
			httpx.AuthMiddleware(d.cfg.JWTSecret),
			httpx.RequireRole(auth.RoleAdmin),
		))
	})

	return r
}
