// Package store — ядро учёта: две закрытые коллекции (активные и архивные
// записи), правила жизненного цикла и уникальности. Снаружи коллекции
// недоступны — только операции.
package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"LabStore/internal/duration"
	"LabStore/internal/model"
	"LabStore/internal/notify"
	"LabStore/internal/persist"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Event — извещение подписчикам о зафиксированной мутации.
// Degraded=true означает, что основное хранилище было недоступно и запись
// ушла только в локальный кеш.
type Event struct {
	Op       string
	ItemID   string
	Degraded bool
}

// Subscriber получает события после каждой зафиксированной мутации.
type Subscriber func(Event)

// Draft — данные новой записи до присвоения id и дат.
type Draft struct {
	OwnerName    string
	EmailID      string
	SSOID        string
	ObjectStored string
	UniqueID     string
	Location     string
	TimePeriod   int
}

// Summary — итог батч-импорта.
type Summary struct {
	Imported int
	Skipped  int
}

// Options — зависимости хранилища. Нулевые значения заменяются
// безопасными умолчаниями.
type Options struct {
	Notifier    notify.Sender
	Logger      *zap.SugaredLogger
	SaveTimeout time.Duration
	Now         func() time.Time
}

// Store владеет коллекциями и сериализует все мутации: изменение сначала
// готовится на копии состояния, затем ожидается подтверждение
// персистентности, и только после этого состояние становится видимым.
type Store struct {
	mu       sync.RWMutex
	active   []model.Item
	archived []model.Item
	degraded bool

	// opMu сериализует последовательность "стадия-сохранение-фиксация",
	// поэтому две операции не могут потерять изменения друг друга.
	opMu sync.Mutex

	primary  persist.Adapter
	fallback persist.Adapter
	notifier notify.Sender
	logger   *zap.SugaredLogger
	timeout  time.Duration
	now      func() time.Time

	subMu sync.Mutex
	subs  []Subscriber
}

// New создаёт хранилище поверх основного адаптера и локального фолбэка.
// fallback может быть nil — тогда деградация невозможна и ошибка
// персистентности сразу фатальна для операции.
func New(primary, fallback persist.Adapter, opts Options) *Store {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop().Sugar()
	}
	if opts.Notifier == nil {
		opts.Notifier = notify.Nop{}
	}
	if opts.SaveTimeout <= 0 {
		opts.SaveTimeout = 5 * time.Second
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Store{
		primary:  primary,
		fallback: fallback,
		notifier: opts.Notifier,
		logger:   opts.Logger,
		timeout:  opts.SaveTimeout,
		now:      opts.Now,
	}
}

// Subscribe регистрирует подписчика на события изменений.
func (s *Store) Subscribe(fn Subscriber) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	s.subs = append(s.subs, fn)
}

// Degraded сообщает, произошло ли последнее сохранение только в локальный кеш.
func (s *Store) Degraded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.degraded
}

// Load загружает состояние из основного адаптера; при его недоступности —
// из локального кеша (с предупреждением).
func (s *Store) Load(ctx context.Context) error {
	cctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	snap, err := s.primary.Load(cctx)
	degraded := false
	if err != nil {
		if s.fallback == nil {
			return &PersistenceError{Op: "load", Err: err}
		}
		s.logger.Warnw("primary load failed, reading local cache", "error", err)
		snap, err = s.fallback.Load(ctx)
		if err != nil {
			return &PersistenceError{Op: "load", Err: err}
		}
		degraded = true
	}

	s.mu.Lock()
	s.active = append([]model.Item(nil), snap.CurrentItems...)
	s.archived = append([]model.Item(nil), snap.ArchivedItems...)
	s.degraded = degraded
	s.mu.Unlock()

	s.publish(Event{Op: "load", Degraded: degraded})
	return nil
}

// Create заводит новую активную запись: валидация обязательных полей,
// проверка уникальности uniqueId среди активных, отметка дат.
func (s *Store) Create(ctx context.Context, d Draft) (*model.Item, error) {
	if err := validateDraft(d); err != nil {
		return nil, err
	}

	s.opMu.Lock()
	defer s.opMu.Unlock()

	active, archived := s.stage()
	if findByUniqueID(active, d.UniqueID) >= 0 {
		return nil, &DuplicateKeyError{UniqueID: d.UniqueID}
	}

	now := s.now()
	it := model.Item{
		ID:           uuid.NewString(),
		OwnerName:    d.OwnerName,
		EmailID:      d.EmailID,
		SSOID:        d.SSOID,
		ObjectStored: d.ObjectStored,
		UniqueID:     d.UniqueID,
		Location:     d.Location,
		TimePeriod:   d.TimePeriod,
		DateAdded:    now,
		ExpiryDate:   now.Add(time.Duration(d.TimePeriod) * 24 * time.Hour),
	}
	active = append(active, it)

	if err := s.commit(ctx, "create", it.ID, active, archived); err != nil {
		return nil, err
	}
	s.notifier.Send(notify.KindStorage, it, 0)
	return &it, nil
}

// Extend продлевает срок хранения активной записи на additionalDays.
// timePeriod — накопительный итог: исходный срок плюс каждое продление.
func (s *Store) Extend(ctx context.Context, id string, additionalDays int) (*model.Item, error) {
	if additionalDays <= 0 {
		return nil, &InvalidAmountError{Amount: additionalDays}
	}

	s.opMu.Lock()
	defer s.opMu.Unlock()

	active, archived := s.stage()
	idx := findByID(active, id)
	if idx < 0 {
		return nil, &NotFoundError{ID: id}
	}

	it := &active[idx]
	it.ExpiryDate = it.ExpiryDate.Add(time.Duration(additionalDays) * 24 * time.Hour)
	it.TimePeriod += additionalDays

	if err := s.commit(ctx, "extend", id, active, archived); err != nil {
		return nil, err
	}
	s.notifier.Send(notify.KindExtension, *it, additionalDays)
	out := *it
	return &out, nil
}

// Pickup отмечает выдачу: ставит pickupDate и атомарно переносит запись
// из активных в архив. Промежуточное состояние снаружи не наблюдаемо.
func (s *Store) Pickup(ctx context.Context, id string) (*model.Item, error) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	active, archived := s.stage()
	idx := findByID(active, id)
	if idx < 0 {
		return nil, &NotFoundError{ID: id}
	}

	it := active[idx]
	now := s.now()
	it.PickupDate = &now
	active = append(active[:idx], active[idx+1:]...)
	archived = append(archived, it)

	if err := s.commit(ctx, "pickup", id, active, archived); err != nil {
		return nil, err
	}
	s.notifier.Send(notify.KindPickup, it, 0)
	return &it, nil
}

// Restore возвращает архивную запись в активные, очищая pickupDate.
// Уникальность uniqueId среди активных проверяется заново: восстановление
// не должно вводить дубликат, который create/import отверг бы.
func (s *Store) Restore(ctx context.Context, id string) (*model.Item, error) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	active, archived := s.stage()
	idx := findByID(archived, id)
	if idx < 0 {
		return nil, &NotFoundError{ID: id}
	}
	if findByUniqueID(active, archived[idx].UniqueID) >= 0 {
		return nil, &DuplicateKeyError{UniqueID: archived[idx].UniqueID}
	}

	it := archived[idx]
	it.PickupDate = nil
	archived = append(archived[:idx], archived[idx+1:]...)
	active = append(active, it)

	if err := s.commit(ctx, "restore", id, active, archived); err != nil {
		return nil, err
	}
	return &it, nil
}

// DeletePermanently безвозвратно удаляет архивную запись. Подтверждение —
// обязанность презентационного слоя.
func (s *Store) DeletePermanently(ctx context.Context, id string) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	active, archived := s.stage()
	idx := findByID(archived, id)
	if idx < 0 {
		return &NotFoundError{ID: id}
	}
	archived = append(archived[:idx], archived[idx+1:]...)

	return s.commit(ctx, "delete", id, active, archived)
}

// ImportBatch применяет кандидатов импорта: строка принимается, только если
// все обязательные поля заполнены и uniqueId не конфликтует ни с уже
// принятыми в этом батче, ни с активными записями. Частичный успех — норма.
func (s *Store) ImportBatch(ctx context.Context, drafts []Draft) (Summary, error) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	active, archived := s.stage()
	var sum Summary
	now := s.now()

	for _, d := range drafts {
		if validateDraft(d) != nil || findByUniqueID(active, d.UniqueID) >= 0 {
			sum.Skipped++
			continue
		}
		active = append(active, model.Item{
			ID:           uuid.NewString(),
			OwnerName:    d.OwnerName,
			EmailID:      d.EmailID,
			SSOID:        d.SSOID,
			ObjectStored: d.ObjectStored,
			UniqueID:     d.UniqueID,
			Location:     d.Location,
			TimePeriod:   d.TimePeriod,
			DateAdded:    now,
			ExpiryDate:   now.Add(time.Duration(d.TimePeriod) * 24 * time.Hour),
		})
		sum.Imported++
	}

	if sum.Imported == 0 {
		return sum, nil
	}
	if err := s.commit(ctx, "import", "", active, archived); err != nil {
		return Summary{}, err
	}
	return sum, nil
}

// ListActive возвращает копию активных записей, самые срочные первыми.
func (s *Store) ListActive() []model.Item {
	s.mu.RLock()
	out := append([]model.Item(nil), s.active...)
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ExpiryDate.Before(out[j].ExpiryDate)
	})
	return out
}

// ListArchived возвращает копию архива, последние выдачи первыми.
func (s *Store) ListArchived() []model.Item {
	s.mu.RLock()
	out := append([]model.Item(nil), s.archived...)
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		ti, tj := pickupTime(out[i]), pickupTime(out[j])
		return ti.After(tj)
	})
	return out
}

// Stats — сводка по активным записям на текущий момент.
func (s *Store) Stats() duration.Stats {
	s.mu.RLock()
	expiries := make([]time.Time, 0, len(s.active))
	for _, it := range s.active {
		expiries = append(expiries, it.ExpiryDate)
	}
	s.mu.RUnlock()
	return duration.Tally(expiries, s.now())
}

// stage возвращает копии коллекций для подготовки мутации.
func (s *Store) stage() (active, archived []model.Item) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Item(nil), s.active...), append([]model.Item(nil), s.archived...)
}

// commit сохраняет подготовленное состояние и делает его видимым.
// При отказе основного адаптера запись уходит в локальный кеш и операция
// фиксируется с пометкой degraded; если отказал и кеш — мутация откатывается.
func (s *Store) commit(ctx context.Context, op, id string, active, archived []model.Item) error {
	snap := &model.Snapshot{
		CurrentItems:  active,
		ArchivedItems: archived,
		LastUpdated:   s.now(),
	}

	cctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	degraded := false
	if err := s.primary.Save(cctx, snap); err != nil {
		if s.fallback == nil {
			return &PersistenceError{Op: op, Err: err}
		}
		s.logger.Warnw("primary save failed, keeping local cache copy",
			"op", op, "item_id", id, "error", err)
		if ferr := s.fallback.Save(ctx, snap); ferr != nil {
			s.logger.Errorw("local cache save failed, rolling back",
				"op", op, "item_id", id, "error", ferr)
			return &PersistenceError{Op: op, Err: err}
		}
		degraded = true
	}

	s.mu.Lock()
	s.active = active
	s.archived = archived
	s.degraded = degraded
	s.mu.Unlock()

	s.publish(Event{Op: op, ItemID: id, Degraded: degraded})
	return nil
}

func (s *Store) publish(ev Event) {
	s.subMu.Lock()
	subs := append([]Subscriber(nil), s.subs...)
	s.subMu.Unlock()
	for _, fn := range subs {
		fn(ev)
	}
}

func validateDraft(d Draft) error {
	fields := []struct {
		name  string
		value string
	}{
		{"ownerName", d.OwnerName},
		{"emailId", d.EmailID},
		{"ssoId", d.SSOID},
		{"objectStored", d.ObjectStored},
		{"uniqueId", d.UniqueID},
		{"location", d.Location},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return &ValidationError{Field: f.name}
		}
	}
	if d.TimePeriod <= 0 {
		return &InvalidAmountError{Amount: d.TimePeriod}
	}
	return nil
}

func findByID(items []model.Item, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}

func findByUniqueID(items []model.Item, uniqueID string) int {
	for i := range items {
		if items[i].UniqueID == uniqueID {
			return i
		}
	}
	return -1
}

func pickupTime(it model.Item) time.Time {
	if it.PickupDate != nil {
		return *it.PickupDate
	}
	return time.Time{}
}
