package mailer

import (
	"context"
	"time"

	"LabStore/internal/model"

	"go.uber.org/zap"
)

// ItemLister отдаёт активные записи для плановой рассылки.
type ItemLister interface {
	ListItems(ctx context.Context) ([]model.Item, error)
}

// Reminder — фоновая рассылка напоминаний: за два дня до срока,
// в день срока и ежедневно после просрочки. Повторные письма одного
// типа в один и тот же день не отправляются.
type Reminder struct {
	lister   ItemLister
	sender   Sender
	logger   *zap.SugaredLogger
	interval time.Duration
	now      func() time.Time

	// item id + тип напоминания -> дата последней отправки (ГГГГ-ММ-ДД)
	history map[string]string
}

func NewReminder(lister ItemLister, sender Sender, interval time.Duration, logger *zap.SugaredLogger) *Reminder {
	return &Reminder{
		lister:   lister,
		sender:   sender,
		logger:   logger,
		interval: interval,
		now:      time.Now,
		history:  make(map[string]string),
	}
}

// Run запускает цикл рассылки до отмены контекста. Первый проход
// выполняется сразу, дальше по тикеру.
func (r *Reminder) Run(ctx context.Context) {
	r.Sweep(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Sweep(ctx)
		}
	}
}

// Sweep — один проход по активным записям.
func (r *Reminder) Sweep(ctx context.Context) {
	items, err := r.lister.ListItems(ctx)
	if err != nil {
		r.logger.Errorw("reminder sweep: list items failed", "error", err)
		return
	}

	sent := 0
	for i := range items {
		if r.remind(&items[i]) {
			sent++
		}
	}
	r.logger.Infow("reminder sweep completed", "checked", len(items), "sent", sent)
}

func (r *Reminder) remind(it *model.Item) bool {
	now := r.now()
	daysFromDue := dayDiff(it.ExpiryDate, now)

	var kind string
	switch {
	case daysFromDue == -2:
		kind = "warning"
	case daysFromDue == 0:
		kind = "due"
	case daysFromDue > 0:
		kind = "overdue"
	default:
		return false
	}

	today := now.Format("2006-01-02")
	key := it.ID + "/" + kind
	if r.history[key] == today {
		return false
	}

	subject, body := ReminderEmail(it, daysFromDue)
	if err := r.sender.Send(it.EmailID, subject, body); err != nil {
		r.logger.Warnw("reminder email failed", "id", it.ID, "kind", kind, "error", err)
		return false
	}
	r.history[key] = today
	return true
}

// dayDiff — разница в календарных днях между now и due:
// отрицательная до срока, нулевая в день срока, положительная после.
func dayDiff(due, now time.Time) int {
	dueDay := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, time.UTC)
	nowDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return int(nowDay.Sub(dueDay).Hours() / 24)
}
