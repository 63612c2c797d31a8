package phoneinput

import (
	"sync"
	"testing"
	"time"
)

func testRecords() []CountryRecord {
	return []CountryRecord{
		{
			Code:        "US",
			Icon:        "🇺🇸",
			Names:       LocalizedNames{EN: "United States", UK: "Сполучені Штати", RU: "Соединённые Штаты"},
			CallingCode: "1",
			Regex:       `^1\d{10}$`,
			Mask:        "XXX-XXX-XXXX",
			Placeholder: "555-123-4567",
		},
		{
			Code:        "GB",
			Icon:        "🇬🇧",
			Names:       LocalizedNames{EN: "United Kingdom", UK: "Велика Британія", RU: "Великобритания"},
			CallingCode: "44",
			Regex:       `^44\d{10}$`,
			Mask:        "XXXX XXXXXX",
			Placeholder: "7400 123456",
		},
		{
			Code:        "UA",
			Icon:        "🇺🇦",
			Names:       LocalizedNames{EN: "Ukraine", UK: "Україна", RU: "Украина"},
			CallingCode: "380",
			Regex:       `^380\d{9}$`,
			Mask:        "XX XXX XX XX",
			Placeholder: "50 123 45 67",
		},
		{
			Code:        "DE",
			Icon:        "🇩🇪",
			Names:       LocalizedNames{EN: "Germany", UK: "Німеччина", RU: "Германия"},
			CallingCode: "49",
			Regex:       `^49\d{11}$`,
			Mask:        "XXX XXXXXXXX",
		},
	}
}

func newTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	catalog, err := NewCatalog(testRecords())
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	return catalog
}

func codesOf(records []CountryRecord) []CountryCode {
	out := make([]CountryCode, len(records))
	for i, record := range records {
		out[i] = record.Code
	}
	return out
}

func equalCodes(got []CountryRecord, want ...CountryCode) bool {
	if len(got) != len(want) {
		return false
	}
	for i, record := range got {
		if record.Code != want[i] {
			return false
		}
	}
	return true
}

// fakeClock hands out timers that only fire when the test says so.
type fakeClock struct {
	mu     sync.Mutex
	timers []*fakeTimer
}

type fakeTimer struct {
	delay   time.Duration
	fn      func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	active := !t.stopped && !t.fired
	t.stopped = true
	return active
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	timer := &fakeTimer{delay: d, fn: f}
	c.timers = append(c.timers, timer)
	return timer
}

// FireAll runs every timer that has not been stopped or fired yet.
func (c *fakeClock) FireAll() int {
	c.mu.Lock()
	var due []*fakeTimer
	for _, timer := range c.timers {
		if !timer.stopped && !timer.fired {
			timer.fired = true
			due = append(due, timer)
		}
	}
	c.mu.Unlock()

	for _, timer := range due {
		timer.fn()
	}
	return len(due)
}

func (c *fakeClock) Timers() []*fakeTimer {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*fakeTimer(nil), c.timers...)
}
