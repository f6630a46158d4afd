package engine

import (
	"testing"
	"time"

	"github.com/talha426/Shadow-Console-Track/internal/storage"
)

func TestCheckAchievementsIdempotent(t *testing.T) {
	now := time.Date(2025, 6, 18, 12, 0, 0, 0, time.Local)
	tasks := []storage.Task{completedOn(now.Add(-1 * time.Hour))}
	player := &storage.Player{TotalXP: 20, CompletedTasks: 1}

	updated, unlocked := CheckAchievements(tasks, player, nil, now)
	if len(unlocked) != 1 || unlocked[0].ID != "first_blood" {
		t.Fatalf("expected first_blood unlock only, got %+v", unlocked)
	}

	// Re-evaluating with unchanged state must not produce new unlocks.
	again, unlockedAgain := CheckAchievements(tasks, player, updated, now.Add(time.Hour))
	if len(unlockedAgain) != 0 {
		t.Fatalf("repeat evaluation unlocked again: %+v", unlockedAgain)
	}
	for i := range again {
		if again[i].Unlocked != updated[i].Unlocked {
			t.Fatalf("unlock state drifted for %s", again[i].ID)
		}
	}
}

func TestCheckAchievementsUnlockedAtStampedOnce(t *testing.T) {
	now := time.Date(2025, 6, 18, 12, 0, 0, 0, time.Local)
	tasks := []storage.Task{completedOn(now.Add(-1 * time.Hour))}
	player := &storage.Player{TotalXP: 20, CompletedTasks: 1}

	updated, _ := CheckAchievements(tasks, player, nil, now)
	var first *time.Time
	for _, a := range updated {
		if a.ID == "first_blood" {
			first = a.UnlockedAt
		}
	}
	if first == nil || !first.Equal(now) {
		t.Fatalf("first_blood UnlockedAt = %v, want %v", first, now)
	}

	later := now.Add(48 * time.Hour)
	again, _ := CheckAchievements(tasks, player, updated, later)
	for _, a := range again {
		if a.ID == "first_blood" {
			if a.UnlockedAt == nil || !a.UnlockedAt.Equal(now) {
				t.Fatalf("UnlockedAt restamped: %v", a.UnlockedAt)
			}
		}
	}
}

func TestCheckAchievementsNeverRelocks(t *testing.T) {
	now := time.Date(2025, 6, 18, 12, 0, 0, 0, time.Local)
	at := now.Add(-72 * time.Hour)
	prev := []storage.Achievement{
		{ID: "first_blood", Unlocked: true, UnlockedAt: &at},
	}

	// No tasks at all: the predicate is false, but the stored unlock holds.
	updated, unlocked := CheckAchievements(nil, &storage.Player{}, prev, now)
	if len(unlocked) != 0 {
		t.Fatalf("unexpected unlocks: %+v", unlocked)
	}
	for _, a := range updated {
		if a.ID == "first_blood" && !a.Unlocked {
			t.Fatalf("first_blood relocked")
		}
	}
}

func TestCheckAchievementsTimeOfDay(t *testing.T) {
	now := time.Date(2025, 6, 18, 23, 30, 0, 0, time.Local)
	early := completedOn(time.Date(2025, 6, 18, 7, 30, 0, 0, time.Local))
	late := completedOn(time.Date(2025, 6, 18, 22, 15, 0, 0, time.Local))

	_, unlocked := CheckAchievements([]storage.Task{early, late}, &storage.Player{}, nil, now)
	got := map[string]bool{}
	for _, a := range unlocked {
		got[a.ID] = true
	}
	if !got["early_bird"] || !got["night_owl"] {
		t.Fatalf("expected early_bird and night_owl, got %v", got)
	}
}

func TestCheckAchievementsBossSlayer(t *testing.T) {
	now := time.Date(2025, 6, 18, 12, 0, 0, 0, time.Local)
	var tasks []storage.Task
	for i := 0; i < 10; i++ {
		task := completedOn(now.Add(-time.Duration(i+1) * time.Hour))
		task.Priority = "S"
		tasks = append(tasks, task)
	}

	_, unlocked := CheckAchievements(tasks, &storage.Player{}, nil, now)
	found := false
	for _, a := range unlocked {
		if a.ID == "boss_slayer" {
			found = true
		}
	}
	if !found {
		t.Fatalf("10 S-rank completions did not unlock boss_slayer")
	}
}

func TestAvailableAchievementsAllLocked(t *testing.T) {
	for _, a := range AvailableAchievements() {
		if a.Unlocked || a.UnlockedAt != nil {
			t.Fatalf("catalog entry %s pre-unlocked", a.ID)
		}
	}
}
