package v1

import (
	"context"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/kurochkinivan/food_classifier/internal/config"
)

type Server struct {
	httpServer *http.Server
}

func NewServer(log *slog.Logger, cfg config.HTTP, classifier ImageClassifier, notifications NotificationHandler) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
			Handler:      NewRouter(log, classifier, notifications),
		},
	}
}

func NewRouter(log *slog.Logger, classifier ImageClassifier, notifications NotificationHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	ch := NewClassifyHandler(log, classifier)
	wh := NewWebhookHandler(log, notifications)

	r.Post("/classify", ch.Classify)
	r.Get("/webhook", wh.Status)
	r.Post("/webhook", wh.Notify)
	r.Get("/healthz", Healthz)

	return r
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
