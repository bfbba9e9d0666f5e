package session

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/i474232898/weather-dashboard/internal/weather"
)

// Ticket identifies one search. Seq grows monotonically in Begin order.
type Ticket struct {
	Seq uint64
	ID  string
}

// Tracker holds the dashboard's current result. Searches may resolve out of
// order; a result only replaces the current one if its search began later
// than the search that produced the current one.
type Tracker struct {
	next atomic.Uint64

	mu        sync.RWMutex
	committed uint64
	current   *weather.WeatherData
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Begin tags a new search.
func (t *Tracker) Begin() Ticket {
	return Ticket{
		Seq: t.next.Add(1),
		ID:  uuid.NewString(),
	}
}

// Commit stores data as the current result. It reports false, leaving the
// current result untouched, when a newer search has already settled.
func (t *Tracker) Commit(tk Ticket, data weather.WeatherData) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if tk.Seq <= t.committed {
		return false
	}
	t.committed = tk.Seq
	t.current = &data
	return true
}

// Fail clears the current result for a search that ended in an error, under
// the same ordering rule as Commit.
func (t *Tracker) Fail(tk Ticket) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if tk.Seq <= t.committed {
		return false
	}
	t.committed = tk.Seq
	t.current = nil
	return true
}

// Current returns the current result, if any.
func (t *Tracker) Current() (weather.WeatherData, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.current == nil {
		return weather.WeatherData{}, false
	}
	return *t.current, true
}
