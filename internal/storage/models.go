package storage

import "time"

// Task is a mission record. Priority and Status are stored as strings;
// internal/engine owns the typed enumerations and the legacy-form mapping.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	XPValue     int        `json:"xpValue"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Player is the single local player record.
type Player struct {
	Key            string    `json:"id"`
	Name           string    `json:"name"`
	Level          int       `json:"level"`
	TotalXP        int       `json:"totalXP"`
	CurrentStreak  int       `json:"currentStreak"`
	LongestStreak  int       `json:"longestStreak"`
	CompletedTasks int       `json:"completedTasks"`
	Rank           string    `json:"rank"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Quest is a daily or weekly objective. Current is recomputed from the
// task collection on every evaluation pass; Completed only ever flips
// false→true within a period.
type Quest struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Type        string    `json:"type"` // daily | weekly
	Target      int       `json:"target"`
	Current     int       `json:"current"`
	Completed   bool      `json:"completed"`
	XPReward    int       `json:"xpReward"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// Achievement is a permanent one-way unlockable milestone.
type Achievement struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	XPReward    int        `json:"xpReward"`
	Unlocked    bool       `json:"unlocked"`
	UnlockedAt  *time.Time `json:"unlockedAt,omitempty"`
}
