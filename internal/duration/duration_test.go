package duration

import (
	"strings"
	"testing"
	"time"
)

var base = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func TestTimeRemaining_ThirtyHours(t *testing.T) {
	r := TimeRemaining(base.Add(30*time.Hour), base)

	if r.Expired {
		t.Fatal("30h in the future must not be expired")
	}
	if r.TotalHours != 30 {
		t.Fatalf("TotalHours want 30, got %d", r.TotalHours)
	}
	if !strings.Contains(r.Display, "1d") || !strings.Contains(r.Display, "6h") {
		t.Fatalf("display must contain '1d' and '6h', got %q", r.Display)
	}
	if r.Text != "1 day, 6 hours" {
		t.Fatalf("unexpected text: %q", r.Text)
	}
}

func TestTimeRemaining_ExpiredNowAndPast(t *testing.T) {
	for _, expiry := range []time.Time{base, base.Add(-time.Minute), base.Add(-72 * time.Hour)} {
		r := TimeRemaining(expiry, base)
		if !r.Expired {
			t.Fatalf("expiry %v must be expired", expiry)
		}
		if r.Display != "EXPIRED" || r.Text != "EXPIRED" {
			t.Fatalf("expired display/text want EXPIRED, got %q/%q", r.Display, r.Text)
		}
		if r.TotalHours != 0 {
			t.Fatalf("expired TotalHours want 0, got %d", r.TotalHours)
		}
	}
}

func TestTimeRemaining_SubDayAndPlurals(t *testing.T) {
	tests := []struct {
		hours   time.Duration
		display string
		text    string
	}{
		{5 * time.Hour, "5h", "5 hours"},
		{1*time.Hour + 30*time.Minute, "1h", "1 hour"},
		{25 * time.Hour, "1d 1h", "1 day, 1 hour"},
		{49 * time.Hour, "2d 1h", "2 days, 1 hour"},
	}
	for _, tc := range tests {
		r := TimeRemaining(base.Add(tc.hours), base)
		if r.Display != tc.display {
			t.Errorf("%v: display want %q, got %q", tc.hours, tc.display, r.Display)
		}
		if r.Text != tc.text {
			t.Errorf("%v: text want %q, got %q", tc.hours, tc.text, r.Text)
		}
	}
}

func TestStatusOf_Thresholds(t *testing.T) {
	if got := StatusOf(TimeRemaining(base.Add(-time.Hour), base)); got != StatusExpired {
		t.Fatalf("want expired, got %v", got)
	}
	// ровно 24 часа — ещё "скоро истекает"
	if got := StatusOf(TimeRemaining(base.Add(24*time.Hour+30*time.Minute), base)); got != StatusExpiringSoon {
		t.Fatalf("want expiring-soon at 24h, got %v", got)
	}
	if got := StatusOf(TimeRemaining(base.Add(25*time.Hour), base)); got != StatusNormal {
		t.Fatalf("want normal at 25h, got %v", got)
	}
}

func TestStorageDuration(t *testing.T) {
	tests := []struct {
		elapsed time.Duration
		display string
		days    int
		hours   int
	}{
		{3*24*time.Hour + 4*time.Hour, "3 days 4h", 3, 4},
		{5 * time.Hour, "5 hours", 0, 5},
		{0, "0 hours", 0, 0},
	}
	for _, tc := range tests {
		e := StorageDuration(base, base.Add(tc.elapsed))
		if e.Display != tc.display || e.Days != tc.days || e.Hours != tc.hours {
			t.Errorf("%v: got %+v", tc.elapsed, e)
		}
	}
	// отрицательная длительность не должна давать отрицательных значений
	if e := StorageDuration(base, base.Add(-time.Hour)); e.Days != 0 || e.Hours != 0 {
		t.Errorf("negative elapsed must clamp to zero, got %+v", e)
	}
}

func TestTally(t *testing.T) {
	st := Tally([]time.Time{
		base.Add(-time.Hour),     // expired
		base.Add(10 * time.Hour), // expiring soon
		base.Add(48 * time.Hour), // normal
	}, base)

	if st.Total != 3 || st.Expired != 1 || st.ExpiringSoon != 1 {
		t.Fatalf("unexpected stats: %+v", st)
	}
}
