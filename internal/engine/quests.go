package engine

import (
	"time"

	"github.com/talha426/Shadow-Console-Track/internal/storage"
)

const (
	QuestTypeDaily  = "daily"
	QuestTypeWeekly = "weekly"
)

// earlyBirdHour is the local cutoff for the daily early-completion quest.
const earlyBirdHour = 10

// GenerateDailyQuests produces the daily quest set for the period
// containing now. Generation is deterministic, so regenerating within the
// same day (guarded by the daily reset marker in meta) is idempotent.
func GenerateDailyQuests(now time.Time) []storage.Quest {
	expires := endOfDay(now)
	return []storage.Quest{
		{
			ID:          "daily_complete_3",
			Title:       "Triple Threat",
			Description: "Complete 3 missions today",
			Type:        QuestTypeDaily,
			Target:      3,
			XPReward:    50,
			ExpiresAt:   expires,
		},
		{
			ID:          "daily_early_task",
			Title:       "Early Riser",
			Description: "Complete a mission before 10:00",
			Type:        QuestTypeDaily,
			Target:      1,
			XPReward:    30,
			ExpiresAt:   expires,
		},
		{
			ID:          "daily_boss_mission",
			Title:       "Boss Hunt",
			Description: "Complete an S-rank mission today",
			Type:        QuestTypeDaily,
			Target:      1,
			XPReward:    75,
			ExpiresAt:   expires,
		},
	}
}

// GenerateWeeklyQuests produces the weekly quest set. Weekly quests
// persist until explicitly regenerated at the week boundary.
func GenerateWeeklyQuests(now time.Time) []storage.Quest {
	expires := endOfWeek(now)
	return []storage.Quest{
		{
			ID:          "weekly_missions",
			Title:       "Relentless",
			Description: "Complete 15 missions this week",
			Type:        QuestTypeWeekly,
			Target:      15,
			XPReward:    200,
			ExpiresAt:   expires,
		},
		{
			ID:          "weekly_categories",
			Title:       "Jack of All Trades",
			Description: "Complete missions in 4 different categories this week",
			Type:        QuestTypeWeekly,
			Target:      4,
			XPReward:    150,
			ExpiresAt:   expires,
		},
		{
			ID:          "weekly_streak",
			Title:       "Unbroken Chain",
			Description: "Keep a 7-day completion streak",
			Type:        QuestTypeWeekly,
			Target:      7,
			XPReward:    250,
			ExpiresAt:   expires,
		},
	}
}

// EvaluateQuests recomputes every quest's progress from the task
// collection. Current is always derived from scratch — never incremented —
// so repeated evaluation over the same tasks is stable. The returned
// unlocked slice holds quests whose Completed flag transitioned false→true
// on this pass; quests past their expiry are left untouched.
func EvaluateQuests(quests []storage.Quest, tasks []storage.Task, now time.Time) (updated []storage.Quest, unlocked []storage.Quest) {
	updated = make([]storage.Quest, 0, len(quests))
	for _, q := range quests {
		if now.After(q.ExpiresAt) {
			// Expired quests stay visible but are inert.
			updated = append(updated, q)
			continue
		}

		current := questProgress(q.ID, tasks, now)
		wasCompleted := q.Completed
		q.Current = current
		q.Completed = wasCompleted || current >= q.Target
		if q.Completed && !wasCompleted {
			unlocked = append(unlocked, q)
		}
		updated = append(updated, q)
	}
	return updated, unlocked
}

func questProgress(questID string, tasks []storage.Task, now time.Time) int {
	completedToday := completedOnDay(tasks, now)
	switch questID {
	case "daily_complete_3":
		return len(completedToday)
	case "daily_early_task":
		for _, t := range completedToday {
			if t.CompletedAt.Local().Hour() < earlyBirdHour {
				return 1
			}
		}
		return 0
	case "daily_boss_mission":
		n := 0
		for _, t := range completedToday {
			if PriorityFromStored(t.Priority) == PriorityS {
				n++
			}
		}
		return n
	case "weekly_missions":
		return len(completedThisWeek(tasks, now))
	case "weekly_categories":
		categories := map[string]bool{}
		for _, t := range completedThisWeek(tasks, now) {
			categories[t.Category] = true
		}
		return len(categories)
	case "weekly_streak":
		return calculateStreakAt(tasks, now)
	default:
		return 0
	}
}

func completedOnDay(tasks []storage.Task, now time.Time) []storage.Task {
	day := dayOf(now)
	var out []storage.Task
	for _, t := range tasks {
		if StatusFromStored(t.Status) != StatusCompleted || t.CompletedAt == nil {
			continue
		}
		if dayOf(*t.CompletedAt).Equal(day) {
			out = append(out, t)
		}
	}
	return out
}

func completedThisWeek(tasks []storage.Task, now time.Time) []storage.Task {
	weekStart := dayOf(now).AddDate(0, 0, -int(dayOf(now).Weekday()))
	weekEnd := weekStart.AddDate(0, 0, 7)
	var out []storage.Task
	for _, t := range tasks {
		if StatusFromStored(t.Status) != StatusCompleted || t.CompletedAt == nil {
			continue
		}
		c := t.CompletedAt.Local()
		if !c.Before(weekStart) && c.Before(weekEnd) {
			out = append(out, t)
		}
	}
	return out
}

func endOfDay(now time.Time) time.Time {
	return dayOf(now).AddDate(0, 0, 1).Add(-time.Second)
}

func endOfWeek(now time.Time) time.Time {
	weekStart := dayOf(now).AddDate(0, 0, -int(dayOf(now).Weekday()))
	return weekStart.AddDate(0, 0, 7).Add(-time.Second)
}
