package persist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"LabStore/internal/model"
)

// Remote — адаптер поверх серверного HTTP API.
// Load собирает снапшот из GET /api/items и GET /api/archived,
// Save отправляет его целиком на POST /api/items/sync.
type Remote struct {
	baseURL string
	client  *http.Client
}

var _ Adapter = (*Remote)(nil)

// apiResponse — серверный конверт {success, message?, items?}.
type apiResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Items   []model.Item `json:"items,omitempty"`
	Count   int          `json:"count,omitempty"`
}

func NewRemote(baseURL string) *Remote {
	return &Remote{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// Probe проверяет доступность сервера через /api/health.
func (r *Remote) Probe(ctx context.Context) error {
	resp, err := r.getJSON(ctx, "/api/health")
	if err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("health check rejected: %s", resp.Message)
	}
	return nil
}

func (r *Remote) Load(ctx context.Context) (*model.Snapshot, error) {
	current, err := r.getJSON(ctx, "/api/items")
	if err != nil {
		return nil, err
	}
	if !current.Success {
		return nil, fmt.Errorf("server rejected items load: %s", current.Message)
	}
	archived, err := r.getJSON(ctx, "/api/archived")
	if err != nil {
		return nil, err
	}
	if !archived.Success {
		return nil, fmt.Errorf("server rejected archive load: %s", archived.Message)
	}
	return &model.Snapshot{
		CurrentItems:  current.Items,
		ArchivedItems: archived.Items,
		LastUpdated:   time.Now(),
	}, nil
}

func (r *Remote) Save(ctx context.Context, snap *model.Snapshot) error {
	resp, err := r.postJSON(ctx, "/api/items/sync", snap)
	if err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("server rejected sync: %s", resp.Message)
	}
	return nil
}

func (r *Remote) getJSON(ctx context.Context, path string) (*apiResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	return r.do(req)
}

// postJSON отправляет JSON POST-запрос и разбирает серверный конверт.
func (r *Remote) postJSON(ctx context.Context, path string, payload any) (*apiResponse, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return r.do(req)
}

func (r *Remote) do(req *http.Request) (*apiResponse, error) {
	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	var out apiResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("%s %s: status %d, unreadable body: %w", req.Method, req.URL.Path, resp.StatusCode, err)
	}
	// любой не-2xx статус — отказ: пустой ответ блуждающего сервера нельзя
	// принять за пустое состояние
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%s %s: server error %d: %s", req.Method, req.URL.Path, resp.StatusCode, out.Message)
	}
	return &out, nil
}
