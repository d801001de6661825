package handlers

import (
	"encoding/json"
	"net/http"

	"LabStore/internal/mailer"
	"LabStore/internal/model"

	"go.uber.org/zap"
)

// NotificationHandler принимает запросы на почтовые уведомления
// и отправляет письма в фоне, не задерживая ответ.
type NotificationHandler struct {
	Sender mailer.Sender
	Logger *zap.SugaredLogger
}

func NewNotificationHandler(sender mailer.Sender, logger *zap.SugaredLogger) *NotificationHandler {
	return &NotificationHandler{Sender: sender, Logger: logger}
}

// NotificationRequest — {type: storage|extension|pickup, item, additionalDays?}.
type NotificationRequest struct {
	Type           string     `json:"type"`
	Item           model.Item `json:"item"`
	AdditionalDays int        `json:"additionalDays,omitempty"`
}

// Send ставит письмо в очередь отправки
func (h *NotificationHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req NotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Send: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.Type == "" || req.Item.EmailID == "" {
		writeError(w, http.StatusBadRequest, "missing notification type or item data")
		return
	}

	var subject, body string
	switch req.Type {
	case "storage":
		subject, body = mailer.StorageEmail(&req.Item)
	case "extension":
		subject, body = mailer.ExtensionEmail(&req.Item, req.AdditionalDays)
	case "pickup":
		subject, body = mailer.PickupEmail(&req.Item)
	default:
		writeError(w, http.StatusBadRequest, "unknown notification type")
		return
	}

	// письмо уходит в фоне: сбой почты не должен ломать операцию клиента
	go func(to string) {
		if err := h.Sender.Send(to, subject, body); err != nil {
			h.Logger.Warnw("notification email failed", "to", to, "type", req.Type, "error", err)
		}
	}(req.Item.EmailID)

	writeJSON(w, http.StatusOK, apiResponse{Success: true, Message: "Notification queued"})
}
