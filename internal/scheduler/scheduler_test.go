package scheduler

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/talha426/Shadow-Console-Track/internal/diag"
	"github.com/talha426/Shadow-Console-Track/internal/engine"
	"github.com/talha426/Shadow-Console-Track/internal/storage"
)

func TestStartStopLeaksNoGoroutines(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx := context.Background()
	db, err := storage.Open(ctx, filepath.Join(t.TempDir(), "shadow.db"))
	require.NoError(t, err)
	defer db.Close()

	dl, err := diag.Open(filepath.Join(t.TempDir(), "diag.db"))
	require.NoError(t, err)
	defer dl.Close()

	s := New(engine.NewService(db), dl, nil, Config{DiagRetention: time.Hour})
	s.Start()

	stopCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	s.Stop(stopCtx)
}

func TestJobsRunAgainstStore(t *testing.T) {
	ctx := context.Background()
	db, err := storage.Open(ctx, filepath.Join(t.TempDir(), "shadow.db"))
	require.NoError(t, err)
	defer db.Close()

	dl, err := diag.Open(filepath.Join(t.TempDir(), "diag.db"))
	require.NoError(t, err)
	defer dl.Close()

	svc := engine.NewService(db)
	s := New(svc, dl, nil, Config{DiagRetention: time.Hour})

	// Exercise the job bodies directly instead of waiting on cron ticks.
	s.refreshQuests()
	daily, err := storage.NewQuestRepo(db).ListByType(ctx, "daily")
	require.NoError(t, err)
	require.NotEmpty(t, daily)

	old := diag.Entry{
		Time:    time.Now().Add(-2 * time.Hour),
		Kind:    diag.KindSystem,
		Action:  "STARTUP",
		Message: "SUCCESS",
	}
	require.NoError(t, dl.Record(old))
	s.cleanupDiagnostics()
	n, err := dl.Size()
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestNilSchedulerSafe(t *testing.T) {
	var s *Scheduler
	s.Start()
	s.Stop(context.Background())
}
