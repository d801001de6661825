package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"LabStore/internal/model"
	"LabStore/internal/repo"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Ошибки уровня сервиса; хендлеры переводят их в конверт {success:false, message}.
var (
	ErrNotFound  = errors.New("item not found")
	ErrDuplicate = errors.New("item with this unique id already exists")
)

// ValidationError — обязательное поле записи не заполнено.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("required field %q is empty", e.Field)
}

// InventoryService — бизнес-логика учёта на сервере: валидация,
// уникальность активных тегов, переносы между таблицами.
type InventoryService struct {
	repo   repo.InventoryRepository
	logger *zap.SugaredLogger
	now    func() time.Time
}

func NewInventoryService(r repo.InventoryRepository, logger *zap.SugaredLogger) *InventoryService {
	return &InventoryService{repo: r, logger: logger, now: time.Now}
}

// UpdateRequest — частичное обновление активной записи.
type UpdateRequest struct {
	ExpiryDate *time.Time `json:"expiryDate,omitempty"`
	TimePeriod *int       `json:"timePeriod,omitempty"`
	Location   *string    `json:"location,omitempty"`
}

// AddItem валидирует и вставляет активную запись. Пустые id/даты
// заполняются на сервере (клиенты фронтенда присылают свои).
func (s *InventoryService) AddItem(ctx context.Context, it *model.Item) error {
	if err := validateItem(it); err != nil {
		return err
	}
	exists, err := s.repo.CurrentUniqueIDExists(ctx, it.UniqueID)
	if err != nil {
		return err
	}
	if exists {
		return ErrDuplicate
	}

	if it.ID == "" {
		it.ID = uuid.NewString()
	}
	if it.TimePeriod <= 0 {
		it.TimePeriod = 1
	}
	if it.DateAdded.IsZero() {
		it.DateAdded = s.now()
	}
	if it.ExpiryDate.IsZero() {
		it.ExpiryDate = it.DateAdded.Add(time.Duration(it.TimePeriod) * 24 * time.Hour)
	}
	it.PickupDate = nil

	return s.repo.CreateCurrent(ctx, it)
}

// UpdateItem применяет частичное обновление активной записи.
func (s *InventoryService) UpdateItem(ctx context.Context, id string, upd UpdateRequest) error {
	updates := map[string]any{}
	if upd.ExpiryDate != nil {
		updates["expiryDate"] = *upd.ExpiryDate
	}
	if upd.TimePeriod != nil {
		updates["timePeriod"] = *upd.TimePeriod
	}
	if upd.Location != nil {
		updates["location"] = *upd.Location
	}
	if len(updates) == 0 {
		return nil
	}
	err := s.repo.UpdateCurrent(ctx, id, updates)
	if errors.Is(err, repo.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// ArchiveItem отмечает выдачу и переносит запись в архив.
func (s *InventoryService) ArchiveItem(ctx context.Context, id string, pickup time.Time) (*model.Item, error) {
	if pickup.IsZero() {
		pickup = s.now()
	}
	it, err := s.repo.Archive(ctx, id, pickup)
	if errors.Is(err, repo.ErrNoRows) {
		return nil, ErrNotFound
	}
	return it, err
}

// RestoreItem возвращает архивную запись в активные. Уникальность тега
// проверяется заново, чтобы восстановление не ввело дубликат.
func (s *InventoryService) RestoreItem(ctx context.Context, id string) (*model.Item, error) {
	arch, err := s.repo.GetArchived(ctx, id)
	if errors.Is(err, repo.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	exists, err := s.repo.CurrentUniqueIDExists(ctx, arch.UniqueID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicate
	}

	it, err := s.repo.Restore(ctx, id)
	if errors.Is(err, repo.ErrNoRows) {
		return nil, ErrNotFound
	}
	return it, err
}

// DeleteArchived безвозвратно удаляет архивную запись.
func (s *InventoryService) DeleteArchived(ctx context.Context, id string) error {
	err := s.repo.DeleteArchived(ctx, id)
	if errors.Is(err, repo.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// ImportItems применяет батч: невалидные и конфликтующие записи
// пропускаются, остальные вставляются. Возвращает счётчики.
func (s *InventoryService) ImportItems(ctx context.Context, items []model.Item) (imported, skipped int, err error) {
	for i := range items {
		it := items[i]
		if addErr := s.AddItem(ctx, &it); addErr != nil {
			var ve *ValidationError
			if errors.Is(addErr, ErrDuplicate) || errors.As(addErr, &ve) {
				skipped++
				continue
			}
			return imported, skipped, addErr
		}
		imported++
	}
	return imported, skipped, nil
}

// ListItems возвращает активные записи, самые срочные первыми.
func (s *InventoryService) ListItems(ctx context.Context) ([]model.Item, error) {
	return s.repo.ListCurrent(ctx)
}

// ListArchived возвращает архив, последние выдачи первыми.
func (s *InventoryService) ListArchived(ctx context.Context) ([]model.Item, error) {
	return s.repo.ListArchived(ctx)
}

// Replace заменяет всё состояние сервера снапшотом клиента.
func (s *InventoryService) Replace(ctx context.Context, snap *model.Snapshot) error {
	return s.repo.Replace(ctx, snap)
}

func validateItem(it *model.Item) error {
	fields := []struct {
		name  string
		value string
	}{
		{"ownerName", it.OwnerName},
		{"emailId", it.EmailID},
		{"ssoId", it.SSOID},
		{"objectStored", it.ObjectStored},
		{"uniqueId", it.UniqueID},
		{"location", it.Location},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return &ValidationError{Field: f.name}
		}
	}
	return nil
}
