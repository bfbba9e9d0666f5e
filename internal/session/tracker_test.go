package session

import (
	"sync"
	"testing"

	"github.com/i474232898/weather-dashboard/internal/weather"
)

func TestBeginIsMonotonic(t *testing.T) {
	tr := NewTracker()
	a, b := tr.Begin(), tr.Begin()
	if b.Seq <= a.Seq {
		t.Fatalf("expected increasing sequence, got %d then %d", a.Seq, b.Seq)
	}
	if a.ID == "" || a.ID == b.ID {
		t.Fatalf("expected distinct search IDs, got %q and %q", a.ID, b.ID)
	}
}

func TestCommitDropsStaleResults(t *testing.T) {
	tr := NewTracker()
	first := tr.Begin()
	second := tr.Begin()

	// The later search resolves first.
	if !tr.Commit(second, weather.WeatherData{City: "Paris"}) {
		t.Fatal("expected newer result to commit")
	}
	if tr.Commit(first, weather.WeatherData{City: "London"}) {
		t.Fatal("expected stale result to be dropped")
	}

	cur, ok := tr.Current()
	if !ok || cur.City != "Paris" {
		t.Fatalf("current = %+v (ok=%v), want Paris", cur, ok)
	}
}

func TestCommitInOrder(t *testing.T) {
	tr := NewTracker()
	first := tr.Begin()
	second := tr.Begin()

	if !tr.Commit(first, weather.WeatherData{City: "London"}) {
		t.Fatal("expected first result to commit")
	}
	if !tr.Commit(second, weather.WeatherData{City: "Paris"}) {
		t.Fatal("expected second result to commit")
	}
	if cur, _ := tr.Current(); cur.City != "Paris" {
		t.Fatalf("current = %q, want Paris", cur.City)
	}
}

func TestFailClearsOnlyWhenNewest(t *testing.T) {
	tr := NewTracker()
	old := tr.Begin()
	fresh := tr.Begin()

	tr.Commit(fresh, weather.WeatherData{City: "Tokyo"})
	if tr.Fail(old) {
		t.Fatal("stale failure must not clear a newer result")
	}
	if _, ok := tr.Current(); !ok {
		t.Fatal("current result was cleared")
	}

	next := tr.Begin()
	if !tr.Fail(next) {
		t.Fatal("expected newest failure to clear the current result")
	}
	if _, ok := tr.Current(); ok {
		t.Fatal("expected no current result after failure")
	}
}

func TestConcurrentCommitsKeepNewest(t *testing.T) {
	tr := NewTracker()
	tickets := make([]Ticket, 50)
	for i := range tickets {
		tickets[i] = tr.Begin()
	}

	var wg sync.WaitGroup
	for i := len(tickets) - 1; i >= 0; i-- {
		wg.Add(1)
		go func(tk Ticket) {
			defer wg.Done()
			tr.Commit(tk, weather.WeatherData{Temperature: int(tk.Seq)})
		}(tickets[i])
	}
	wg.Wait()

	cur, ok := tr.Current()
	if !ok || cur.Temperature != int(tickets[len(tickets)-1].Seq) {
		t.Fatalf("current = %+v, want result of the newest search", cur)
	}
}
