package persist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"LabStore/internal/model"
)

// Local — локальный кеш: один файл с JSON-блобом
// {currentItems, archivedItems, lastUpdated}, который читается и
// перезаписывается целиком при каждом сохранении.
type Local struct {
	mu   sync.Mutex
	path string
}

var _ Adapter = (*Local)(nil)

// NewLocal создаёт адаптер поверх указанного файла. Каталог создаётся
// при первом сохранении.
func NewLocal(path string) *Local {
	return &Local{path: path}
}

// Path возвращает путь к файлу кеша.
func (l *Local) Path() string { return l.path }

func (l *Local) Load(ctx context.Context) (*model.Snapshot, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, err := os.ReadFile(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &model.Snapshot{}, nil
		}
		return nil, fmt.Errorf("read local cache: %w", err)
	}
	var snap model.Snapshot
	if err := json.Unmarshal(b, &snap); err != nil {
		return nil, fmt.Errorf("parse local cache %s: %w", l.path, err)
	}
	return &snap, nil
}

func (l *Local) Save(ctx context.Context, snap *model.Snapshot) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := *snap
	if out.LastUpdated.IsZero() {
		out.LastUpdated = time.Now()
	}
	b, err := json.MarshalIndent(&out, "", "  ")
	if err != nil {
		return fmt.Errorf("encode local cache: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(l.path), 0o700); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}
	// запись во временный файл + rename, чтобы кеш не оставался полузаписанным
	tmp := l.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return fmt.Errorf("write local cache: %w", err)
	}
	if err := os.Rename(tmp, l.path); err != nil {
		return fmt.Errorf("replace local cache: %w", err)
	}
	return nil
}
