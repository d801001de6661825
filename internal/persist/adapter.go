// Package persist определяет порт персистентности для хранилища записей
// и две его реализации: удалённый HTTP API и локальный файл-кеш.
package persist

import (
	"context"

	"LabStore/internal/model"
)

// Adapter — единый контракт персистентности: загрузить всё состояние,
// сохранить всё состояние. Хранилище записей пишется один раз против
// этого интерфейса и не знает, куда именно уходят данные.
type Adapter interface {
	// Load возвращает последнее сохранённое состояние.
	// Отсутствие данных — не ошибка: возвращается пустой снапшот.
	Load(ctx context.Context) (*model.Snapshot, error)

	// Save сохраняет состояние целиком.
	Save(ctx context.Context, snap *model.Snapshot) error
}
