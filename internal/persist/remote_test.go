package persist

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"LabStore/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemote_LoadAssemblesSnapshot(t *testing.T) {
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/items":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"items": []model.Item{{ID: "a", UniqueID: "TAG-1",
					DateAdded: now, ExpiryDate: now.Add(24 * time.Hour)}},
			})
		case "/api/archived":
			_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "items": []model.Item{}})
		default:
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "not found"})
		}
	}))
	defer srv.Close()

	snap, err := NewRemote(srv.URL).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, snap.CurrentItems, 1)
	assert.Equal(t, "TAG-1", snap.CurrentItems[0].UniqueID)
	assert.Empty(t, snap.ArchivedItems)
}

func TestRemote_SaveSendsWholeSnapshot(t *testing.T) {
	var got model.Snapshot
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/items/sync", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))
	defer srv.Close()

	now := time.Now().UTC().Truncate(time.Second)
	snap := &model.Snapshot{
		CurrentItems: []model.Item{{ID: "a", UniqueID: "TAG-1", DateAdded: now, ExpiryDate: now}},
		LastUpdated:  now,
	}
	require.NoError(t, NewRemote(srv.URL).Save(context.Background(), snap))
	require.Len(t, got.CurrentItems, 1)
	assert.Equal(t, "TAG-1", got.CurrentItems[0].UniqueID)
}

func TestRemote_SaveRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "duplicate uniqueId"})
	}))
	defer srv.Close()

	err := NewRemote(srv.URL).Save(context.Background(), &model.Snapshot{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate uniqueId")
}

// Сервер, отвечающий 404 на все пути (например, за неверным прокси),
// не должен выглядеть как пустой инвентарь: иначе следующий commit
// синхронизировал бы потерю данных обратно на сервер.
func TestRemote_Load4xxIsErrorNotEmptySnapshot(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "not found"})
	}))
	defer srv.Close()

	snap, err := NewRemote(srv.URL).Load(context.Background())
	require.Error(t, err)
	assert.Nil(t, snap)
	assert.Contains(t, err.Error(), "404")
}

// Конверт с success=false при статусе 200 — тоже отказ загрузки.
func TestRemote_LoadRejectedEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "maintenance"})
	}))
	defer srv.Close()

	snap, err := NewRemote(srv.URL).Load(context.Background())
	require.Error(t, err)
	assert.Nil(t, snap)
	assert.Contains(t, err.Error(), "maintenance")
}

func TestRemote_ProbeDownServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))
	url := srv.URL
	require.NoError(t, NewRemote(url).Probe(context.Background()))

	srv.Close()
	require.Error(t, NewRemote(url).Probe(context.Background()))
}
