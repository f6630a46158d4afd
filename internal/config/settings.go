package config

import (
	"encoding/json"
	"sync"
)

// Settings is the recognized user options set. It is persisted as one
// JSON document in the store; unknown keys in older documents are
// dropped on load, missing keys keep their defaults.
type Settings struct {
	Volume        bool   `json:"volume"`
	SoundEffects  bool   `json:"soundEffects"`
	Theme         string `json:"theme"` // light | dark | system
	Notifications bool   `json:"notifications"`
	Animations    bool   `json:"animation"`
	CompactMode   bool   `json:"compactMode"`
	Language      string `json:"language"`
	AutoSave      bool   `json:"autoSave"`
}

// DefaultSettings mirrors the original defaults.
func DefaultSettings() Settings {
	return Settings{
		Volume:        true,
		SoundEffects:  true,
		Theme:         "system",
		Notifications: true,
		Animations:    true,
		CompactMode:   false,
		Language:      "en",
		AutoSave:      true,
	}
}

// ParseSettings decodes a stored settings document over the defaults, so
// documents written by older versions stay readable.
func ParseSettings(raw string) Settings {
	s := DefaultSettings()
	if raw == "" {
		return s
	}
	_ = json.Unmarshal([]byte(raw), &s)
	return s
}

// SettingsStore holds the current settings and an explicit listener list.
// Views that care about changes register a callback instead of reaching
// for ambient state.
type SettingsStore struct {
	mu      sync.Mutex
	current Settings
	subs    []func(Settings)
}

func NewSettingsStore(initial Settings) *SettingsStore {
	return &SettingsStore{current: initial}
}

// Get returns the current settings value.
func (s *SettingsStore) Get() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Update applies the mutation and notifies every subscriber with the new
// value.
func (s *SettingsStore) Update(mutate func(*Settings)) Settings {
	s.mu.Lock()
	mutate(&s.current)
	updated := s.current
	subs := make([]func(Settings), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(updated)
	}
	return updated
}

// Reset restores the defaults and notifies subscribers.
func (s *SettingsStore) Reset() Settings {
	return s.Update(func(cur *Settings) { *cur = DefaultSettings() })
}

// Subscribe registers a change callback.
func (s *SettingsStore) Subscribe(fn func(Settings)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Marshal serializes the current settings for persistence.
func (s *SettingsStore) Marshal() (string, error) {
	b, err := json.Marshal(s.Get())
	if err != nil {
		return "", err
	}
	return string(b), nil
}
