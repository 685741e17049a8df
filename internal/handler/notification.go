package handler

import (
	"net/http"

	"github.com/easyqist/storefront/internal/service"
	"github.com/easyqist/storefront/pkg/response"
)

type NotificationHandler struct {
	notifier *service.Notifier
}

func NewNotificationHandler(notifier *service.Notifier) *NotificationHandler {
	return &NotificationHandler{notifier: notifier}
}

// List returns the caller's not-yet-expired notifications.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.notifier.Active(UserID(r)))
}

// Clear dismisses all of the caller's notifications.
func (h *NotificationHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.notifier.Clear(UserID(r))
	response.Success(w, nil)
}
