package engine

import (
	"testing"
	"time"

	"github.com/talha426/Shadow-Console-Track/internal/storage"
)

func completedOn(at time.Time) storage.Task {
	return storage.Task{
		Title:       "done",
		Category:    "Work",
		Priority:    "C",
		Status:      "completed",
		XPValue:     20,
		CompletedAt: &at,
	}
}

func TestCalculateStreakConsecutiveDays(t *testing.T) {
	now := time.Date(2025, 6, 18, 15, 0, 0, 0, time.Local)
	tasks := []storage.Task{
		completedOn(now.Add(-1 * time.Hour)),     // today
		completedOn(now.AddDate(0, 0, -1)),       // yesterday
		completedOn(now.AddDate(0, 0, -2)),       // two days ago
		{Title: "open", Status: "pending"},       // ignored
		completedOn(now.AddDate(0, 0, -10)),      // outside the run
	}
	if got := calculateStreakAt(tasks, now); got != 3 {
		t.Fatalf("streak = %d, want 3", got)
	}
}

// No completion today does not break a run ending yesterday; the walk
// starts from the grace day instead.
func TestCalculateStreakGraceDay(t *testing.T) {
	now := time.Date(2025, 6, 18, 9, 0, 0, 0, time.Local)
	tasks := []storage.Task{
		completedOn(now.AddDate(0, 0, -1)),
		completedOn(now.AddDate(0, 0, -2)),
	}
	if got := calculateStreakAt(tasks, now); got != 2 {
		t.Fatalf("streak = %d, want 2 (yesterday's run still counts)", got)
	}
}

// A full-day gap ends the run: completions on D-1 and D-3 give a streak
// of 1 — the grace day admits yesterday, and the walk stops at the D-2
// hole.
func TestCalculateStreakGapResets(t *testing.T) {
	now := time.Date(2025, 6, 18, 12, 0, 0, 0, time.Local)
	tasks := []storage.Task{
		completedOn(now.AddDate(0, 0, -1)),
		completedOn(now.AddDate(0, 0, -3)),
	}
	if got := calculateStreakAt(tasks, now); got != 1 {
		t.Fatalf("streak = %d, want 1", got)
	}

	// Nothing today or yesterday: streak is fully reset.
	tasks = []storage.Task{completedOn(now.AddDate(0, 0, -3))}
	if got := calculateStreakAt(tasks, now); got != 0 {
		t.Fatalf("streak = %d, want 0", got)
	}
}

func TestCalculateStreakEmpty(t *testing.T) {
	if got := calculateStreakAt(nil, time.Now()); got != 0 {
		t.Fatalf("streak over no tasks = %d, want 0", got)
	}
}

func TestBestStreakWindow(t *testing.T) {
	now := time.Date(2025, 6, 18, 12, 0, 0, 0, time.Local)
	var tasks []storage.Task
	// Run of 4 in the middle of the window, run of 2 near the edge.
	for _, off := range []int{-5, -6, -7, -8, -20, -21} {
		tasks = append(tasks, completedOn(now.AddDate(0, 0, off)))
	}
	if got := bestStreakAt(tasks, 30, now); got != 4 {
		t.Fatalf("best streak = %d, want 4", got)
	}
	// A run outside the window is invisible.
	if got := bestStreakAt([]storage.Task{completedOn(now.AddDate(0, 0, -40))}, 30, now); got != 0 {
		t.Fatalf("best streak outside window = %d, want 0", got)
	}
}

func TestWeeklyXP(t *testing.T) {
	// Wednesday; the week runs Sunday June 15 through Saturday June 21.
	now := time.Date(2025, 6, 18, 12, 0, 0, 0, time.Local)

	inWeek := completedOn(time.Date(2025, 6, 16, 10, 0, 0, 0, time.Local))
	inWeek.XPValue = 35
	sundayEdge := completedOn(time.Date(2025, 6, 15, 0, 30, 0, 0, time.Local))
	sundayEdge.XPValue = 20
	lastWeek := completedOn(time.Date(2025, 6, 14, 10, 0, 0, 0, time.Local))
	lastWeek.XPValue = 75
	open := storage.Task{Status: "pending", XPValue: 50}

	got := weeklyXPAt([]storage.Task{inWeek, sundayEdge, lastWeek, open}, now)
	if got != 55 {
		t.Fatalf("weekly XP = %d, want 55", got)
	}
}
