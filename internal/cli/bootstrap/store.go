// Package bootstrap собирает клиентское хранилище из конфигурации:
// основной адаптер — серверный API, фолбэк — локальный кеш.
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"LabStore/internal/config"
	"LabStore/internal/notify"
	"LabStore/internal/persist"
	"LabStore/internal/store"

	"go.uber.org/zap"
)

// OpenStore создаёт хранилище и загружает текущее состояние.
// При недоступном сервере состояние читается из локального кеша,
// и хранилище работает в деградированном режиме.
func OpenStore(ctx context.Context, cfg *config.Config) (*store.Store, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	sugar := logger.Sugar()

	remote := persist.NewRemote(cfg.ServerURL)
	local := persist.NewLocal(cfg.LocalCachePath)

	st := store.New(remote, local, store.Options{
		Notifier:    notify.NewHTTP(cfg.NotifyURL, sugar),
		Logger:      sugar,
		SaveTimeout: time.Duration(cfg.PersistTimeout) * time.Second,
	})
	if err := st.Load(ctx); err != nil {
		return nil, err
	}
	return st, nil
}

// ProbeServer проверяет доступность сервера без загрузки состояния.
func ProbeServer(ctx context.Context, cfg *config.Config) error {
	return persist.NewRemote(cfg.ServerURL).Probe(ctx)
}
