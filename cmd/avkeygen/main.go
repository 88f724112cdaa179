// avkeygen serves an HTTP API that mints Alpha Vantage API keys via the
// vendor signup form.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/seenimoa/alphavantage/internal/config"
	"github.com/seenimoa/alphavantage/internal/keygen"
	"github.com/seenimoa/alphavantage/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", slog.Any("err", err))
		os.Exit(1)
	}
	log := logger.New("avkeygen", cfg.Logging.Level, cfg.Logging.Format)

	srv := &server{
		log: log,
		gen: keygen.New(log, keygen.WithSiteURL(cfg.Keygen.SiteURL)),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/health", srv.handleHealth)
	r.Get("/api/token", srv.handleToken)

	httpServer := &http.Server{
		Addr:              cfg.Keygen.BindAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	go func() {
		log.Info("keygen server starting", slog.String("addr", cfg.Keygen.BindAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", slog.Any("err", err))
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	log.Info("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", slog.Any("err", err))
	}
}

type server struct {
	log *slog.Logger
	gen *keygen.Generator
}

type tokenResponse struct {
	Success     bool   `json:"success"`
	APIKey      string `json:"api_key,omitempty"`
	GeneratedAt string `json:"generated_at,omitempty"`
	Error       string `json:"error,omitempty"`
	Message     string `json:"message"`
}

func (s *server) handleToken(w http.ResponseWriter, r *http.Request) {
	key, err := s.gen.Generate(r.Context())
	if err != nil {
		s.log.Error("generate key", slog.Any("err", err))
		writeJSON(w, http.StatusInternalServerError, tokenResponse{
			Success: false,
			Error:   err.Error(),
			Message: "Failed to generate API key",
		})
		return
	}
	writeJSON(w, http.StatusOK, tokenResponse{
		Success:     true,
		APIKey:      key,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Message:     "API key generated successfully",
	})
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
