package store

import (
	"encoding/json"
	"errors"
	"strings"
	"sync"
)

const (
	recentSearchesKey = "recentSearches"
	themeKey          = "theme"

	DefaultRecentSearches = 5
)

// Theme is the dashboard color scheme preference.
type Theme string

const (
	ThemeDark   Theme = "dark"
	ThemeLight  Theme = "light"
	ThemeSystem Theme = "system"
)

// ErrInvalidTheme is returned when setting an unknown theme.
var ErrInvalidTheme = errors.New("theme must be one of dark, light, system")

// RecentSearches is a bounded most-recent-first list of searched cities,
// persisted as JSON in a KV store.
type RecentSearches struct {
	mu  sync.Mutex // serializes read-modify-write of the stored list
	kv  KV
	max int
}

// NewRecentSearches keeps at most limit entries (DefaultRecentSearches if limit <= 0).
func NewRecentSearches(kv KV, limit int) *RecentSearches {
	if limit <= 0 {
		limit = DefaultRecentSearches
	}
	return &RecentSearches{kv: kv, max: limit}
}

// List returns the stored searches, most recent first. A corrupt value reads
// as an empty list.
func (r *RecentSearches) List() []string {
	raw, ok := r.kv.Get(recentSearchesKey)
	if !ok {
		return []string{}
	}
	var cities []string
	if err := json.Unmarshal([]byte(raw), &cities); err != nil {
		return []string{}
	}
	return cities
}

// Add moves city to the front, dropping case-insensitive duplicates and
// anything beyond the limit. Blank input is ignored.
func (r *RecentSearches) Add(city string) {
	city = strings.TrimSpace(city)
	if city == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cities := []string{city}
	for _, c := range r.List() {
		if len(cities) >= r.max {
			break
		}
		if !strings.EqualFold(c, city) {
			cities = append(cities, c)
		}
	}

	raw, err := json.Marshal(cities)
	if err != nil {
		return
	}
	r.kv.Set(recentSearchesKey, string(raw))
}

// Clear removes every stored search.
func (r *RecentSearches) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.kv.Remove(recentSearchesKey)
}

// GetTheme returns the stored theme, ThemeSystem when unset or invalid.
func GetTheme(kv KV) Theme {
	raw, ok := kv.Get(themeKey)
	if !ok {
		return ThemeSystem
	}
	t := Theme(raw)
	if !t.Valid() {
		return ThemeSystem
	}
	return t
}

// SetTheme stores t.
func SetTheme(kv KV, t Theme) error {
	if !t.Valid() {
		return ErrInvalidTheme
	}
	kv.Set(themeKey, string(t))
	return nil
}

func (t Theme) Valid() bool {
	switch t {
	case ThemeDark, ThemeLight, ThemeSystem:
		return true
	}
	return false
}
