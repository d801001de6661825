package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"LabStore/internal/model"

	"gorm.io/gorm"
)

// ErrNoRows возвращается, когда запись с указанным id отсутствует.
var ErrNoRows = errors.New("no rows")

// InventoryRepository определяет контракт доступа к обеим таблицам учёта.
// Переносы между таблицами (архивирование, восстановление) выполняются
// одной транзакцией: запись никогда не наблюдаема в обеих таблицах или ни в одной.
type InventoryRepository interface {
	// ListCurrent возвращает активные записи, ближайшее истечение первым.
	ListCurrent(ctx context.Context) ([]model.Item, error)

	// ListArchived возвращает архив, последняя выдача первой.
	ListArchived(ctx context.Context) ([]model.Item, error)

	// GetCurrent ищет активную запись по id.
	GetCurrent(ctx context.Context, id string) (*model.Item, error)

	// GetArchived ищет архивную запись по id.
	GetArchived(ctx context.Context, id string) (*model.Item, error)

	// CurrentUniqueIDExists проверяет занятость uniqueId среди активных.
	CurrentUniqueIDExists(ctx context.Context, uniqueID string) (bool, error)

	// CreateCurrent вставляет новую активную запись.
	CreateCurrent(ctx context.Context, it *model.Item) error

	// UpdateCurrent применяет частичное обновление по id.
	UpdateCurrent(ctx context.Context, id string, updates map[string]any) error

	// Archive переносит запись из inventory в archived, проставляя pickupDate.
	Archive(ctx context.Context, id string, pickup time.Time) (*model.Item, error)

	// Restore переносит запись из archived обратно в inventory, очищая pickupDate.
	Restore(ctx context.Context, id string) (*model.Item, error)

	// DeleteArchived безвозвратно удаляет архивную запись.
	DeleteArchived(ctx context.Context, id string) error

	// Replace заменяет содержимое обеих таблиц состоянием снапшота.
	Replace(ctx context.Context, snap *model.Snapshot) error
}

type inventoryRepo struct {
	db *gorm.DB
}

// NewInventoryRepository создаёт реализацию репозитория учёта.
func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepo{db: db}
}

func (r *inventoryRepo) ListCurrent(ctx context.Context) ([]model.Item, error) {
	var items []model.Item
	err := r.db.WithContext(ctx).Table(TableInventory).
		Order(`"expiryDate" asc`).Find(&items).Error
	return items, err
}

func (r *inventoryRepo) ListArchived(ctx context.Context) ([]model.Item, error) {
	var items []model.Item
	err := r.db.WithContext(ctx).Table(TableArchived).
		Order(`"pickupDate" desc`).Find(&items).Error
	return items, err
}

func (r *inventoryRepo) GetCurrent(ctx context.Context, id string) (*model.Item, error) {
	return r.getFrom(ctx, TableInventory, id)
}

func (r *inventoryRepo) GetArchived(ctx context.Context, id string) (*model.Item, error) {
	return r.getFrom(ctx, TableArchived, id)
}

func (r *inventoryRepo) getFrom(ctx context.Context, table, id string) (*model.Item, error) {
	var it model.Item
	err := r.db.WithContext(ctx).Table(table).Where("id = ?", id).Take(&it).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoRows
	}
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *inventoryRepo) CurrentUniqueIDExists(ctx context.Context, uniqueID string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Table(TableInventory).
		Where(`"uniqueId" = ?`, uniqueID).Count(&n).Error
	return n > 0, err
}

func (r *inventoryRepo) CreateCurrent(ctx context.Context, it *model.Item) error {
	return r.db.WithContext(ctx).Table(TableInventory).Create(it).Error
}

func (r *inventoryRepo) UpdateCurrent(ctx context.Context, id string, updates map[string]any) error {
	tx := r.db.WithContext(ctx).Table(TableInventory).Where("id = ?", id).Updates(updates)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNoRows
	}
	return nil
}

func (r *inventoryRepo) Archive(ctx context.Context, id string, pickup time.Time) (*model.Item, error) {
	var moved model.Item
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var it model.Item
		if err := tx.Table(TableInventory).Where("id = ?", id).Take(&it).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNoRows
			}
			return err
		}
		it.PickupDate = &pickup
		if err := tx.Table(TableArchived).Create(&it).Error; err != nil {
			return fmt.Errorf("insert archived: %w", err)
		}
		if err := tx.Table(TableInventory).Where("id = ?", id).Delete(&model.Item{}).Error; err != nil {
			return fmt.Errorf("delete current: %w", err)
		}
		moved = it
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &moved, nil
}

func (r *inventoryRepo) Restore(ctx context.Context, id string) (*model.Item, error) {
	var moved model.Item
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var it model.Item
		if err := tx.Table(TableArchived).Where("id = ?", id).Take(&it).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNoRows
			}
			return err
		}
		it.PickupDate = nil
		if err := tx.Table(TableInventory).Create(&it).Error; err != nil {
			return fmt.Errorf("insert current: %w", err)
		}
		if err := tx.Table(TableArchived).Where("id = ?", id).Delete(&model.Item{}).Error; err != nil {
			return fmt.Errorf("delete archived: %w", err)
		}
		moved = it
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &moved, nil
}

func (r *inventoryRepo) DeleteArchived(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Table(TableArchived).Where("id = ?", id).Delete(&model.Item{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNoRows
	}
	return nil
}

func (r *inventoryRepo) Replace(ctx context.Context, snap *model.Snapshot) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Table(TableInventory).Where("1 = 1").Delete(&model.Item{}).Error; err != nil {
			return err
		}
		if err := tx.Table(TableArchived).Where("1 = 1").Delete(&model.Item{}).Error; err != nil {
			return err
		}
		if len(snap.CurrentItems) > 0 {
			if err := tx.Table(TableInventory).Create(&snap.CurrentItems).Error; err != nil {
				return err
			}
		}
		if len(snap.ArchivedItems) > 0 {
			if err := tx.Table(TableArchived).Create(&snap.ArchivedItems).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
