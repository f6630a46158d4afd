package engine

import (
	"time"

	"github.com/talha426/Shadow-Console-Track/internal/storage"
)

// achievementDef couples a catalog entry with its unlock predicate.
type achievementDef struct {
	storage.Achievement
	earned func(s achievementStats) bool
}

// achievementStats is everything the predicates look at, computed once
// per evaluation pass.
type achievementStats struct {
	completed     int
	totalXP       int
	level         int
	streak        int
	bossKills     int
	categories    int
	earlyComplete bool
	lateComplete  bool
}

func catalog() []achievementDef {
	a := func(id, title, desc, icon string, xp int) storage.Achievement {
		return storage.Achievement{ID: id, Title: title, Description: desc, Icon: icon, XPReward: xp}
	}
	return []achievementDef{
		// Completion milestones
		{a("first_blood", "First Blood", "Complete your first mission", "🗡️", 10),
			func(s achievementStats) bool { return s.completed >= 1 }},
		{a("operative", "Operative", "Complete 10 missions", "🎯", 25),
			func(s achievementStats) bool { return s.completed >= 10 }},
		{a("veteran_hunter", "Veteran Hunter", "Complete 50 missions", "🏅", 100),
			func(s achievementStats) bool { return s.completed >= 50 }},
		{a("centurion", "Centurion", "Complete 100 missions", "🏆", 250),
			func(s achievementStats) bool { return s.completed >= 100 }},

		// Progression milestones
		{a("xp_collector", "XP Collector", "Earn 1,000 total XP", "⚡", 50),
			func(s achievementStats) bool { return s.totalXP >= 1000 }},
		{a("level_legend", "Level Legend", "Reach level 10", "🌟", 150),
			func(s achievementStats) bool { return s.level >= 10 }},

		// Streaks
		{a("warming_up", "Warming Up", "Hold a 3-day streak", "🔥", 30),
			func(s achievementStats) bool { return s.streak >= 3 }},
		{a("on_fire", "On Fire", "Hold a 7-day streak", "🔥", 75),
			func(s achievementStats) bool { return s.streak >= 7 }},
		{a("unstoppable", "Unstoppable", "Hold a 30-day streak", "💫", 300),
			func(s achievementStats) bool { return s.streak >= 30 }},

		// Style
		{a("boss_slayer", "Boss Slayer", "Complete 10 S-rank missions", "👑", 150),
			func(s achievementStats) bool { return s.bossKills >= 10 }},
		{a("early_bird", "Early Bird", "Complete a mission before 08:00", "🌅", 20),
			func(s achievementStats) bool { return s.earlyComplete }},
		{a("night_owl", "Night Owl", "Complete a mission after 22:00", "🦉", 20),
			func(s achievementStats) bool { return s.lateComplete }},
		{a("explorer", "Explorer", "Complete missions in 5 different categories", "🧭", 60),
			func(s achievementStats) bool { return s.categories >= 5 }},
	}
}

// AvailableAchievements returns the fixed catalog, all locked.
func AvailableAchievements() []storage.Achievement {
	defs := catalog()
	out := make([]storage.Achievement, len(defs))
	for i, d := range defs {
		out[i] = d.Achievement
	}
	return out
}

// CheckAchievements evaluates every unlock predicate against the task
// collection and player totals. Unlocked only ever flips false→true; a
// repeat call with unchanged tasks yields no newly-unlocked entries.
// prev carries the stored unlock state; entries absent from prev count as
// locked.
func CheckAchievements(tasks []storage.Task, player *storage.Player, prev []storage.Achievement, now time.Time) (updated, newlyUnlocked []storage.Achievement) {
	prevByID := make(map[string]storage.Achievement, len(prev))
	for _, a := range prev {
		prevByID[a.ID] = a
	}

	stats := collectStats(tasks, player, now)
	for _, def := range catalog() {
		a := def.Achievement
		if p, ok := prevByID[a.ID]; ok && p.Unlocked {
			a.Unlocked = true
			a.UnlockedAt = p.UnlockedAt
		} else if def.earned(stats) {
			a.Unlocked = true
			at := now
			a.UnlockedAt = &at
			newlyUnlocked = append(newlyUnlocked, a)
		}
		updated = append(updated, a)
	}
	return updated, newlyUnlocked
}

func collectStats(tasks []storage.Task, player *storage.Player, now time.Time) achievementStats {
	s := achievementStats{streak: calculateStreakAt(tasks, now)}
	categories := map[string]bool{}
	for _, t := range tasks {
		if StatusFromStored(t.Status) != StatusCompleted || t.CompletedAt == nil {
			continue
		}
		s.completed++
		categories[t.Category] = true
		if PriorityFromStored(t.Priority) == PriorityS {
			s.bossKills++
		}
		h := t.CompletedAt.Local().Hour()
		if h < 8 {
			s.earlyComplete = true
		}
		if h >= 22 {
			s.lateComplete = true
		}
	}
	s.categories = len(categories)
	if player != nil {
		s.totalXP = player.TotalXP
		s.level = GetLevelInfo(player.TotalXP).Level
	}
	return s
}
