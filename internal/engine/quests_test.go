package engine

import (
	"testing"
	"time"

	"github.com/talha426/Shadow-Console-Track/internal/storage"
)

func TestGenerateQuestsDeterministic(t *testing.T) {
	now := time.Date(2025, 6, 18, 9, 30, 0, 0, time.Local)
	a := GenerateDailyQuests(now)
	b := GenerateDailyQuests(now.Add(2 * time.Hour))
	if len(a) != len(b) {
		t.Fatalf("daily sets differ in size")
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("daily quest %d differs within the same day: %+v vs %+v", i, a[i], b[i])
		}
	}

	for _, q := range a {
		if !q.ExpiresAt.After(now) {
			t.Fatalf("quest %s already expired at generation", q.ID)
		}
		if q.Target <= 0 || q.XPReward <= 0 {
			t.Fatalf("quest %s has degenerate target/reward: %+v", q.ID, q)
		}
	}
}

func TestEvaluateQuestsRecomputeStable(t *testing.T) {
	now := time.Date(2025, 6, 18, 14, 0, 0, 0, time.Local)
	tasks := []storage.Task{
		completedOn(now.Add(-1 * time.Hour)),
		completedOn(now.Add(-2 * time.Hour)),
	}
	quests := GenerateDailyQuests(now)

	first, _ := EvaluateQuests(quests, tasks, now)
	for i := 0; i < 5; i++ {
		again, _ := EvaluateQuests(first, tasks, now)
		for j := range again {
			if again[j].Current != first[j].Current {
				t.Fatalf("quest %s drifted: %d -> %d", again[j].ID, first[j].Current, again[j].Current)
			}
		}
		first = again
	}
}

func TestEvaluateQuestsUnlockFiresOnce(t *testing.T) {
	now := time.Date(2025, 6, 18, 14, 0, 0, 0, time.Local)
	tasks := []storage.Task{
		completedOn(now.Add(-1 * time.Hour)),
		completedOn(now.Add(-2 * time.Hour)),
		completedOn(now.Add(-3 * time.Hour)),
	}
	quests := GenerateDailyQuests(now)

	updated, unlocked := EvaluateQuests(quests, tasks, now)
	found := false
	for _, q := range unlocked {
		if q.ID == "daily_complete_3" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected daily_complete_3 unlock, got %+v", unlocked)
	}

	// Second pass over the same collection: no new unlock events.
	_, unlockedAgain := EvaluateQuests(updated, tasks, now)
	for _, q := range unlockedAgain {
		if q.ID == "daily_complete_3" {
			t.Fatalf("unlock fired twice for daily_complete_3")
		}
	}
}

func TestEvaluateQuestsEarlyBird(t *testing.T) {
	now := time.Date(2025, 6, 18, 14, 0, 0, 0, time.Local)
	early := completedOn(time.Date(2025, 6, 18, 8, 15, 0, 0, time.Local))
	late := completedOn(time.Date(2025, 6, 18, 13, 0, 0, 0, time.Local))

	_, unlocked := EvaluateQuests(GenerateDailyQuests(now), []storage.Task{late}, now)
	for _, q := range unlocked {
		if q.ID == "daily_early_task" {
			t.Fatalf("early bird unlocked by a 13:00 completion")
		}
	}

	_, unlocked = EvaluateQuests(GenerateDailyQuests(now), []storage.Task{early}, now)
	found := false
	for _, q := range unlocked {
		if q.ID == "daily_early_task" {
			found = true
		}
	}
	if !found {
		t.Fatalf("early bird not unlocked by an 08:15 completion")
	}
}

func TestEvaluateQuestsBossCountsSRank(t *testing.T) {
	now := time.Date(2025, 6, 18, 14, 0, 0, 0, time.Local)
	boss := completedOn(now.Add(-1 * time.Hour))
	boss.Priority = "S"
	legacyBoss := completedOn(now.Add(-2 * time.Hour))
	legacyBoss.Priority = "Boss"

	updated, _ := EvaluateQuests(GenerateDailyQuests(now), []storage.Task{boss, legacyBoss}, now)
	for _, q := range updated {
		if q.ID == "daily_boss_mission" && q.Current != 2 {
			t.Fatalf("boss quest current = %d, want 2", q.Current)
		}
	}
}

func TestEvaluateQuestsExpiredInert(t *testing.T) {
	now := time.Date(2025, 6, 18, 14, 0, 0, 0, time.Local)
	quests := GenerateDailyQuests(now.AddDate(0, 0, -1)) // yesterday's set
	tasks := []storage.Task{
		completedOn(now.Add(-1 * time.Hour)),
		completedOn(now.Add(-2 * time.Hour)),
		completedOn(now.Add(-3 * time.Hour)),
	}

	updated, unlocked := EvaluateQuests(quests, tasks, now)
	if len(unlocked) != 0 {
		t.Fatalf("expired quests unlocked: %+v", unlocked)
	}
	for i := range updated {
		if updated[i] != quests[i] {
			t.Fatalf("expired quest mutated: %+v -> %+v", quests[i], updated[i])
		}
	}
}

func TestEvaluateQuestsWeeklyCategories(t *testing.T) {
	now := time.Date(2025, 6, 18, 14, 0, 0, 0, time.Local)
	var tasks []storage.Task
	for _, cat := range []string{"Work", "Study", "Fitness", "Work"} {
		task := completedOn(now.Add(-1 * time.Hour))
		task.Category = cat
		tasks = append(tasks, task)
	}

	updated, _ := EvaluateQuests(GenerateWeeklyQuests(now), tasks, now)
	for _, q := range updated {
		if q.ID == "weekly_categories" && q.Current != 3 {
			t.Fatalf("weekly categories current = %d, want 3 distinct", q.Current)
		}
		if q.ID == "weekly_missions" && q.Current != 4 {
			t.Fatalf("weekly missions current = %d, want 4", q.Current)
		}
	}
}
