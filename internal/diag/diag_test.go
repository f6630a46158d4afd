package diag

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestLog(t *testing.T) *Log {
	t.Helper()
	l, err := Open(filepath.Join(t.TempDir(), "diag.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = l.Close() })
	return l
}

func TestRecordAndRecent(t *testing.T) {
	l := openTestLog(t)
	base := time.Date(2025, 6, 18, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		require.NoError(t, l.Record(Entry{
			Time:    base.Add(time.Duration(i) * time.Minute),
			Kind:    KindMission,
			Action:  "COMPLETE_TASK",
			Message: "SUCCESS",
		}))
	}

	entries, err := l.Recent(3)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	// Newest first.
	assert.True(t, entries[0].Time.After(entries[1].Time))
	assert.True(t, entries[1].Time.After(entries[2].Time))

	n, err := l.Size()
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestRecordFillsDefaults(t *testing.T) {
	l := openTestLog(t)

	require.NoError(t, l.Record(Entry{
		Kind:     KindStorage,
		Severity: SeverityHigh,
		Action:   "ADD_TASK",
		Message:  "disk full",
	}))

	entries, err := l.Recent(1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.NotEmpty(t, entries[0].ID)
	assert.False(t, entries[0].Time.IsZero())
	assert.Equal(t, SeverityHigh, entries[0].Severity)
}

func TestCleanup(t *testing.T) {
	l := openTestLog(t)
	base := time.Date(2025, 6, 18, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 4; i++ {
		require.NoError(t, l.Record(Entry{
			Time:    base.AddDate(0, 0, i),
			Kind:    KindSystem,
			Action:  "STARTUP",
			Message: "SUCCESS",
		}))
	}

	require.NoError(t, l.Cleanup(base.AddDate(0, 0, 2)))

	n, err := l.Size()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	entries, err := l.Recent(10)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, e.Time.Before(base.AddDate(0, 0, 2)))
	}
}

func TestNilLogIsNoop(t *testing.T) {
	var l *Log

	assert.NoError(t, l.Record(Entry{Kind: KindSystem, Action: "X", Message: "y"}))
	entries, err := l.Recent(10)
	assert.NoError(t, err)
	assert.Empty(t, entries)
	n, err := l.Size()
	assert.NoError(t, err)
	assert.Zero(t, n)
	assert.NoError(t, l.Cleanup(time.Now()))
	assert.NoError(t, l.Close())
}
