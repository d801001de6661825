// Package duration содержит чистые функции расчёта оставшегося и прошедшего
// времени хранения. Никаких побочных эффектов: результат всегда выводится
// заново из двух меток времени.
package duration

import (
	"fmt"
	"time"
)

// Status — классификация записи по оставшемуся времени.
type Status int

const (
	StatusNormal Status = iota
	StatusExpiringSoon
	StatusExpired
)

func (s Status) String() string {
	switch s {
	case StatusExpired:
		return "expired"
	case StatusExpiringSoon:
		return "expiring-soon"
	default:
		return "normal"
	}
}

// Remaining — структурированный результат расчёта оставшегося времени.
// Display — короткий вид ("2d 6h"), Text — развёрнутый ("2 days, 6 hours").
type Remaining struct {
	Expired    bool
	TotalHours int
	Days       int
	Hours      int
	Text       string
	Display    string
}

// TimeRemaining считает время до истечения срока хранения.
// Если срок уже наступил (expiry <= now) — запись просрочена.
func TimeRemaining(expiry, now time.Time) Remaining {
	diff := expiry.Sub(now)
	if diff <= 0 {
		return Remaining{Expired: true, Text: "EXPIRED", Display: "EXPIRED"}
	}

	totalHours := int(diff / time.Hour)
	days := totalHours / 24
	hours := totalHours % 24

	r := Remaining{TotalHours: totalHours, Days: days, Hours: hours}
	if days > 0 {
		r.Display = fmt.Sprintf("%dd %dh", days, hours)
		r.Text = fmt.Sprintf("%d %s, %d %s", days, plural(days, "day"), hours, plural(hours, "hour"))
	} else {
		r.Display = fmt.Sprintf("%dh", hours)
		r.Text = fmt.Sprintf("%d %s", hours, plural(hours, "hour"))
	}
	return r
}

// Elapsed — сколько предмет пролежал на хранении (для архива).
type Elapsed struct {
	Days    int
	Hours   int
	Display string
}

// StorageDuration считает прошедшее время между поступлением и выдачей.
// Семантики истечения здесь нет — только прошедшее время.
func StorageDuration(added, picked time.Time) Elapsed {
	diff := picked.Sub(added)
	if diff < 0 {
		diff = 0
	}

	days := int(diff / (24 * time.Hour))
	hours := int((diff % (24 * time.Hour)) / time.Hour)

	e := Elapsed{Days: days, Hours: hours}
	if days > 0 {
		e.Display = fmt.Sprintf("%d days %dh", days, hours)
	} else {
		e.Display = fmt.Sprintf("%d hours", hours)
	}
	return e
}

// StatusOf классифицирует запись: просрочена — критично; остался максимум
// день — скоро истекает; иначе — норма. Порог в 24 часа определяет и
// подсветку строк, и счётчик "expiring soon".
func StatusOf(r Remaining) Status {
	switch {
	case r.Expired:
		return StatusExpired
	case r.TotalHours <= 24:
		return StatusExpiringSoon
	default:
		return StatusNormal
	}
}

// Stats — сводка по коллекции активных записей.
type Stats struct {
	Total        int
	Expired      int
	ExpiringSoon int
}

// Tally считает сводку по срокам истечения активных записей.
func Tally(expiries []time.Time, now time.Time) Stats {
	st := Stats{Total: len(expiries)}
	for _, e := range expiries {
		r := TimeRemaining(e, now)
		switch StatusOf(r) {
		case StatusExpired:
			st.Expired++
		case StatusExpiringSoon:
			st.ExpiringSoon++
		}
	}
	return st
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
