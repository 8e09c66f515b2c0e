package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Settings is the user configuration persisted as a single JSON blob.
type Settings struct {
	APIKey          string            `json:"apiKey"`
	RefreshInterval int               `json:"refreshInterval"` // seconds
	DemoMode        bool              `json:"demoMode"`
	APICosts        float64           `json:"apiCosts"`
	DailyLimit      float64           `json:"dailyLimit"`
	LastResetDate   string            `json:"lastResetDate"` // YYYY-MM-DD
	Theme           string            `json:"theme"`
	Prompts         map[string]string `json:"prompts"`
}

// DefaultSettings returns the built-in settings for a fresh installation.
func DefaultSettings(now time.Time) Settings {
	return Settings{
		APIKey:          "",
		RefreshInterval: 60,
		DemoMode:        true,
		APICosts:        0,
		DailyLimit:      5,
		LastResetDate:   now.Format("2006-01-02"),
		Theme:           "dark",
		Prompts:         DefaultPrompts(),
	}
}

// SettingsStore owns the persisted settings blob. All reads return copies;
// updates are read-modify-write under the lock, last write wins.
type SettingsStore struct {
	mu   sync.Mutex
	path string
	s    Settings
	now  func() time.Time
}

// OpenSettings loads settings from path, merging saved prompt templates
// over the built-in defaults per key. A missing file yields defaults.
func OpenSettings(path string) (*SettingsStore, error) {
	st := &SettingsStore{path: path, now: time.Now}

	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		st.s = DefaultSettings(st.now())
		return st, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	s := DefaultSettings(st.now())
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	s.Prompts = mergePrompts(s.Prompts)
	st.s = s
	return st, nil
}

// mergePrompts overlays saved templates on the defaults, key by key, so new
// built-in templates appear without migrating old saved blobs.
func mergePrompts(saved map[string]string) map[string]string {
	merged := DefaultPrompts()
	for k, v := range saved {
		merged[k] = v
	}
	return merged
}

// Get returns a copy of the current settings after the daily-reset check.
func (st *SettingsStore) Get() Settings {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.resetIfNewDayLocked()
	return cloneSettings(st.s)
}

// Update applies a mutation to a copy of the settings, persists the result,
// and returns it. Prompt overrides are re-merged with the defaults.
func (st *SettingsStore) Update(apply func(*Settings)) (Settings, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.resetIfNewDayLocked()

	next := cloneSettings(st.s)
	apply(&next)
	next.Prompts = mergePrompts(next.Prompts)
	st.s = next

	if err := st.saveLocked(); err != nil {
		return Settings{}, err
	}
	return cloneSettings(st.s), nil
}

// CheckBudget reports whether adding the estimated cost to today's
// accumulator stays within the daily limit.
func (st *SettingsStore) CheckBudget(estimated float64) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.resetIfNewDayLocked()
	return st.s.APICosts+estimated <= st.s.DailyLimit
}

// AddCost adds actual incurred provider cost to today's accumulator.
func (st *SettingsStore) AddCost(cost float64) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.resetIfNewDayLocked()
	st.s.APICosts += cost
	return st.saveLocked()
}

// resetIfNewDayLocked zeroes the cost accumulator on the first access of a
// new calendar day. Caller holds the lock.
func (st *SettingsStore) resetIfNewDayLocked() {
	today := st.now().Format("2006-01-02")
	if st.s.LastResetDate != today {
		st.s.APICosts = 0
		st.s.LastResetDate = today
		if err := st.saveLocked(); err != nil {
			// A failed save keeps the reset in memory; the next
			// successful write will persist it.
			_ = err
		}
	}
}

func (st *SettingsStore) saveLocked() error {
	if err := os.MkdirAll(filepath.Dir(st.path), 0755); err != nil {
		return fmt.Errorf("failed to create settings dir: %w", err)
	}
	b, err := json.MarshalIndent(st.s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := os.WriteFile(st.path, b, 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}

func cloneSettings(s Settings) Settings {
	out := s
	out.Prompts = make(map[string]string, len(s.Prompts))
	for k, v := range s.Prompts {
		out.Prompts[k] = v
	}
	return out
}
