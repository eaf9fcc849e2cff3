package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"calcapi/internal/server/handlers"
	"calcapi/internal/server/metrics"
	"calcapi/internal/server/middleware"
)

// Handlers объединяет все endpoint handlers для монтирования в router
type Handlers struct {
	Calc    *handlers.CalcHandler
	Account *handlers.AccountHandler
	Info    *handlers.InfoHandler
	Health  *handlers.HealthHandler
}

// NewRouter собирает chi router со всеми endpoints и middleware
func NewRouter(logger *slog.Logger, h Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.LoggingWithSkip(logger, []string{"/api/health", "/metrics"}))

	r.Route("/api", func(r chi.Router) {
		r.Post("/calculate", h.Calc.Calculate)
		r.Get("/history", h.Calc.History)
		r.Post("/register", h.Account.Register)
		r.Post("/login", h.Account.Login)
		r.Get("/info", h.Info.Info)
		r.Get("/health", h.Health.Health)
	})

	r.Handle("/metrics", metrics.Handler())

	return r
}

// Server HTTP сервер с graceful shutdown
type Server struct {
	logger          *slog.Logger
	httpServer      *http.Server
	shutdownTimeout time.Duration
}

// New создает сервер на указанном адресе
func New(logger *slog.Logger, addr string, handler http.Handler, shutdownTimeout time.Duration) *Server {
	return &Server{
		logger: logger,
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
		shutdownTimeout: shutdownTimeout,
	}
}

// Run запускает сервер и блокируется до отмены контекста
// После отмены выполняется graceful shutdown с таймаутом
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info("HTTP server starting", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("HTTP server shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	return nil
}
