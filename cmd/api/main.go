package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"libreria/internal/author"
	"libreria/internal/book"
	"libreria/internal/config"
	"libreria/internal/editorial"
	"libreria/internal/httpx"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("loading config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbPool, err := openDB(ctx, cfg.DatabaseDSN)
	if err != nil {
		slog.Error("connecting to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	authorService := author.NewService(author.NewPostgresRepo(dbPool, cfg.QueryTimeout))
	editorialService := editorial.NewService(editorial.NewPostgresRepo(dbPool, cfg.QueryTimeout))
	bookService := book.NewService(
		book.NewPostgresRepo(dbPool, cfg.QueryTimeout),
		authorService,
		editorialService,
	)

	router := newRouter(dbPool.Ping, authorService, editorialService, bookService)

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errShutdown := make(chan error, 1)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownGrace)
		defer cancel()
		errShutdown <- httpServer.Shutdown(shutdownCtx)
	}()

	slog.Info("starting server", "addr", cfg.Addr)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
	if err := <-errShutdown; err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

func newRouter(ping func(context.Context) error, authorService *author.Service, editorialService *editorial.Service, bookService *book.Service) *chi.Mux {
	requestLogger := httplog.NewLogger("libreria", httplog.Options{JSON: true})

	router := chi.NewRouter()
	router.Use(httplog.RequestLogger(requestLogger))
	router.Use(httpx.RequestIDMiddleware)
	router.Use(httpx.RecoveryMiddleware)
	router.Use(httpx.SecurityHeadersMiddleware)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		pingCtx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := ping(pingCtx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.Route("/api", func(r chi.Router) {
		r.Mount("/authors", author.NewHTTPHandler(authorService).Routes())
		r.Mount("/editorials", editorial.NewHTTPHandler(editorialService).Routes())
		r.Mount("/books", book.NewHTTPHandler(bookService).Routes())
	})

	return router
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
