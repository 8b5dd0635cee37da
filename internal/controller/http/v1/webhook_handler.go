package v1

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/kurochkinivan/food_classifier/internal/domain"
)

const (
	headerResourceState = "X-Goog-Resource-State"
	headerResourceID    = "X-Goog-Resource-Id"
	headerResourceURI   = "X-Goog-Resource-Uri"
)

type NotificationHandler interface {
	HandleNotification(ctx context.Context, n domain.Notification) (*domain.DiscoveryResult, error)
}

type WebhookHandler struct {
	log           *slog.Logger
	notifications NotificationHandler
}

func NewWebhookHandler(log *slog.Logger, notifications NotificationHandler) *WebhookHandler {
	return &WebhookHandler{
		log:           log,
		notifications: notifications,
	}
}

func (h *WebhookHandler) Status(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "Drive webhook service is running")
}

func (h *WebhookHandler) Notify(w http.ResponseWriter, r *http.Request) {
	n := domain.Notification{
		ResourceState: r.Header.Get(headerResourceState),
		ResourceID:    r.Header.Get(headerResourceID),
		ResourceURI:   r.Header.Get(headerResourceURI),
	}

	result, err := h.notifications.HandleNotification(r.Context(), n)
	if err != nil {
		h.log.ErrorContext(r.Context(), "failed to handle notification",
			slog.String("resource_state", n.ResourceState),
			slog.String("err", err.Error()))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}
