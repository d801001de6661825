// Package notify — побочный канал уведомлений о событиях хранения.
// Отправка fire-and-forget: никогда не блокирует основную операцию,
// не повторяется, ошибки только логируются.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"LabStore/internal/model"

	"go.uber.org/zap"
)

// Kind — тип уведомления.
type Kind string

const (
	KindStorage   Kind = "storage"
	KindExtension Kind = "extension"
	KindPickup    Kind = "pickup"
)

// Sender отправляет уведомление о событии с записью.
type Sender interface {
	Send(kind Kind, item model.Item, additionalDays int)
}

// payload — wire-формат POST /send-notification.
type payload struct {
	Type           Kind       `json:"type"`
	Item           model.Item `json:"item"`
	AdditionalDays int        `json:"additionalDays,omitempty"`
}

// HTTP — отправитель через POST {baseURL}/send-notification.
type HTTP struct {
	baseURL string
	client  *http.Client
	logger  *zap.SugaredLogger
}

var _ Sender = (*HTTP)(nil)

func NewHTTP(baseURL string, logger *zap.SugaredLogger) *HTTP {
	return &HTTP{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 5 * time.Second},
		logger:  logger,
	}
}

// Send отправляет уведомление в отдельной горутине.
func (n *HTTP) Send(kind Kind, item model.Item, additionalDays int) {
	go func() {
		if err := n.post(payload{Type: kind, Item: item, AdditionalDays: additionalDays}); err != nil {
			n.logger.Warnw("notification failed",
				"type", kind,
				"item_id", item.ID,
				"error", err,
			)
			return
		}
		n.logger.Infow("notification sent", "type", kind, "item_id", item.ID)
	}()
}

func (n *HTTP) post(p payload) error {
	b, err := json.Marshal(p)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.baseURL+"/send-notification", bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return nil
}

// Nop — заглушка для тестов и режима без уведомлений.
type Nop struct{}

func (Nop) Send(Kind, model.Item, int) {}
