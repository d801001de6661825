package mailer

import (
	"context"
	"errors"
	"testing"
	"time"

	"LabStore/internal/model"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeSender struct {
	sent []string // subjects
	fail bool
}

func (f *fakeSender) Send(to, subject, body string) error {
	if f.fail {
		return errors.New("smtp down")
	}
	f.sent = append(f.sent, subject)
	return nil
}

type fakeLister struct {
	items []model.Item
	err   error
}

func (f *fakeLister) ListItems(ctx context.Context) ([]model.Item, error) {
	return f.items, f.err
}

func itemDue(id string, expiry time.Time) model.Item {
	return model.Item{
		ID:           id,
		OwnerName:    "Alice",
		EmailID:      "alice@lab.example",
		SSOID:        "A100",
		ObjectStored: "Samples",
		UniqueID:     "TAG-" + id,
		Location:     "Shelf 3",
		TimePeriod:   7,
		ExpiryDate:   expiry,
	}
}

func newTestReminder(lister ItemLister, sender Sender, now time.Time) *Reminder {
	r := NewReminder(lister, sender, time.Hour, zap.NewNop().Sugar())
	r.now = func() time.Time { return now }
	return r
}

func TestSweep_SelectsByDueDate(t *testing.T) {
	now := time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC)
	lister := &fakeLister{items: []model.Item{
		itemDue("warn", now.Add(2*24*time.Hour)),  // due in 2 days
		itemDue("due", now.Add(2*time.Hour)),      // due today
		itemDue("over", now.Add(-3*24*time.Hour)), // overdue
		itemDue("far", now.Add(10*24*time.Hour)),  // too early
	}}
	sender := &fakeSender{}
	r := newTestReminder(lister, sender, now)

	r.Sweep(context.Background())

	assert.Len(t, sender.sent, 3)
	assert.Contains(t, sender.sent, "AMTC Lab Storage Reminder - Item Due in 2 Days")
	assert.Contains(t, sender.sent, "AMTC Lab Storage - Item Due TODAY")
	assert.Contains(t, sender.sent, "URGENT - AMTC Lab Storage OVERDUE (3 days)")
}

func TestSweep_NoDuplicateSameDay(t *testing.T) {
	now := time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC)
	lister := &fakeLister{items: []model.Item{itemDue("due", now)}}
	sender := &fakeSender{}
	r := newTestReminder(lister, sender, now)

	r.Sweep(context.Background())
	r.Sweep(context.Background())
	assert.Len(t, sender.sent, 1)

	// на следующий день просрочка — новое письмо другого типа
	r.now = func() time.Time { return now.Add(24 * time.Hour) }
	r.Sweep(context.Background())
	assert.Len(t, sender.sent, 2)
	assert.Equal(t, "URGENT - AMTC Lab Storage OVERDUE (1 day)", sender.sent[1])
}

func TestSweep_SenderFailureDoesNotMark(t *testing.T) {
	now := time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC)
	lister := &fakeLister{items: []model.Item{itemDue("due", now)}}
	sender := &fakeSender{fail: true}
	r := newTestReminder(lister, sender, now)

	r.Sweep(context.Background())
	assert.Empty(t, sender.sent)

	// после восстановления письмо уходит
	sender.fail = false
	r.Sweep(context.Background())
	assert.Len(t, sender.sent, 1)
}

func TestReminderEmail_Overdue(t *testing.T) {
	it := itemDue("x", time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	subject, body := ReminderEmail(&it, 5)
	assert.Equal(t, "URGENT - AMTC Lab Storage OVERDUE (5 days)", subject)
	assert.Contains(t, body, "Days Overdue: 5 days")
	assert.Contains(t, body, "March 1, 2024")
}

func TestStorageEmail(t *testing.T) {
	it := itemDue("x", time.Date(2024, 3, 8, 12, 0, 0, 0, time.UTC))
	subject, body := StorageEmail(&it)
	assert.Equal(t, "AMTC Lab - Item Stored: Samples", subject)
	assert.Contains(t, body, "Tag ID: TAG-x")
	assert.Contains(t, body, "Storage Period: 7 days")
}

func TestPickupEmail_NoDate(t *testing.T) {
	it := itemDue("x", time.Now())
	_, body := PickupEmail(&it)
	assert.Contains(t, body, "Pickup Date: unknown")
}
