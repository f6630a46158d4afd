package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSettingsDefaultsOverlay(t *testing.T) {
	// Empty document: pure defaults.
	s := ParseSettings("")
	assert.Equal(t, DefaultSettings(), s)

	// Partial document: named keys override, the rest keep defaults.
	s = ParseSettings(`{"theme":"dark","volume":false}`)
	assert.Equal(t, "dark", s.Theme)
	assert.False(t, s.Volume)
	assert.True(t, s.SoundEffects)
	assert.Equal(t, "en", s.Language)

	// Garbage documents fall back to defaults rather than failing.
	s = ParseSettings(`{not json`)
	assert.Equal(t, DefaultSettings(), s)
}

func TestSettingsStoreUpdateNotifies(t *testing.T) {
	store := NewSettingsStore(DefaultSettings())

	var seen []Settings
	store.Subscribe(func(s Settings) { seen = append(seen, s) })

	updated := store.Update(func(s *Settings) { s.Theme = "dark" })
	assert.Equal(t, "dark", updated.Theme)
	require.Len(t, seen, 1)
	assert.Equal(t, "dark", seen[0].Theme)

	assert.Equal(t, "dark", store.Get().Theme)
}

func TestSettingsStoreReset(t *testing.T) {
	store := NewSettingsStore(Settings{Theme: "dark", Language: "de"})

	got := store.Reset()
	assert.Equal(t, DefaultSettings(), got)
	assert.Equal(t, DefaultSettings(), store.Get())
}

func TestSettingsStoreMarshalRoundTrip(t *testing.T) {
	store := NewSettingsStore(DefaultSettings())
	store.Update(func(s *Settings) {
		s.CompactMode = true
		s.Language = "de"
	})

	doc, err := store.Marshal()
	require.NoError(t, err)

	back := ParseSettings(doc)
	assert.Equal(t, store.Get(), back)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SHADOW_DATA_DIR", t.TempDir())
	t.Setenv("SHADOW_DB_PATH", "")
	t.Setenv("SHADOW_DIAG_PATH", "")
	t.Setenv("SHADOW_DIAG_RETENTION", "")
	t.Setenv("SHADOW_LOG_LEVEL", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.DBPath)
	assert.NotEmpty(t, cfg.DiagPath)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Positive(t, cfg.DiagRetention)
}

func TestLoadRetentionForms(t *testing.T) {
	t.Setenv("SHADOW_DATA_DIR", t.TempDir())

	t.Setenv("SHADOW_DIAG_RETENTION", "48h")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "48h0m0s", cfg.DiagRetention.String())

	// Bare integers are read as seconds.
	t.Setenv("SHADOW_DIAG_RETENTION", "3600")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "1h0m0s", cfg.DiagRetention.String())
}
