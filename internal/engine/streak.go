package engine

import (
	"time"

	"github.com/talha426/Shadow-Console-Track/internal/storage"
)

// completionDays collects the set of local calendar days (midnight
// truncated) carrying at least one completion.
func completionDays(tasks []storage.Task) map[time.Time]bool {
	days := map[time.Time]bool{}
	for _, t := range tasks {
		if StatusFromStored(t.Status) != StatusCompleted || t.CompletedAt == nil {
			continue
		}
		days[dayOf(*t.CompletedAt)] = true
	}
	return days
}

func dayOf(t time.Time) time.Time {
	local := t.Local()
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, local.Location())
}

// CalculateStreak counts consecutive calendar days ending at "today"
// (local time) with at least one completed mission. Policy: an empty
// today does not break a run that includes yesterday — the walk starts at
// yesterday instead. Any earlier full-day gap resets the streak to 0.
func CalculateStreak(tasks []storage.Task) int {
	return calculateStreakAt(tasks, time.Now())
}

func calculateStreakAt(tasks []storage.Task, now time.Time) int {
	days := completionDays(tasks)
	day := dayOf(now)
	if !days[day] {
		// Grace day: today without a completion yet still counts
		// yesterday's run.
		day = day.AddDate(0, 0, -1)
	}
	streak := 0
	for days[day] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// BestStreakWindow is the trailing window scanned for the best streak.
const BestStreakWindow = 30

// BestStreak scans the trailing window of days for the longest run of
// consecutive completion days. A miss day resets the running counter.
func BestStreak(tasks []storage.Task, windowDays int) int {
	return bestStreakAt(tasks, windowDays, time.Now())
}

func bestStreakAt(tasks []storage.Task, windowDays int, now time.Time) int {
	if windowDays <= 0 {
		windowDays = BestStreakWindow
	}
	days := completionDays(tasks)
	best, run := 0, 0
	for i := windowDays - 1; i >= 0; i-- {
		if days[dayOf(now).AddDate(0, 0, -i)] {
			run++
			if run > best {
				best = run
			}
		} else {
			run = 0
		}
	}
	return best
}

// WeeklyXP sums the XP of missions completed in the current week
// (Sunday through Saturday, local time). Non-completed missions
// contribute nothing.
func WeeklyXP(tasks []storage.Task) int {
	return weeklyXPAt(tasks, time.Now())
}

func weeklyXPAt(tasks []storage.Task, now time.Time) int {
	weekStart := dayOf(now).AddDate(0, 0, -int(dayOf(now).Weekday()))
	weekEnd := weekStart.AddDate(0, 0, 7)

	total := 0
	for _, t := range tasks {
		if StatusFromStored(t.Status) != StatusCompleted || t.CompletedAt == nil {
			continue
		}
		c := t.CompletedAt.Local()
		if !c.Before(weekStart) && c.Before(weekEnd) {
			total += t.XPValue
		}
	}
	return total
}
