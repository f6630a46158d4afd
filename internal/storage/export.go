package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// Snapshot is the full-state export document: every persisted collection
// combined into one JSON object. Dates serialize as RFC3339 strings.
type Snapshot struct {
	ExportedAt   time.Time       `json:"exportedAt"`
	Tasks        []Task          `json:"tasks"`
	Player       *Player         `json:"player,omitempty"`
	DailyQuests  []Quest         `json:"dailyQuests"`
	WeeklyQuests []Quest         `json:"weeklyQuests"`
	Achievements []Achievement   `json:"achievements"`
	Settings     json.RawMessage `json:"settings,omitempty"`
}

// ExportFilename returns the timestamped download name for a snapshot.
func ExportFilename(at time.Time) string {
	return fmt.Sprintf("shadowconsole-backup-%s.json", at.Format("2006-01-02-150405"))
}

// Export assembles a snapshot of the whole store.
func Export(ctx context.Context, db *sql.DB) (*Snapshot, error) {
	tasks, err := NewTaskRepo(db).ListAll(ctx)
	if err != nil {
		return nil, err
	}
	player, err := NewPlayerRepo(db).Get(ctx, MainPlayerKey)
	if err != nil {
		return nil, err
	}
	questRepo := NewQuestRepo(db)
	daily, err := questRepo.ListByType(ctx, "daily")
	if err != nil {
		return nil, err
	}
	weekly, err := questRepo.ListByType(ctx, "weekly")
	if err != nil {
		return nil, err
	}
	achievements, err := NewAchievementRepo(db).ListAll(ctx)
	if err != nil {
		return nil, err
	}
	settingsRaw, err := NewSettingsRepo(db).Get(ctx, SettingsKey)
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{
		ExportedAt:   time.Now(),
		Tasks:        tasks,
		Player:       player,
		DailyQuests:  daily,
		WeeklyQuests: weekly,
		Achievements: achievements,
	}
	if settingsRaw != "" {
		snap.Settings = json.RawMessage(settingsRaw)
	}
	return snap, nil
}

// Import restores a snapshot into the store. The restore is a full
// replace, last write wins: existing tasks, quests and achievements are
// dropped first, nothing is merged.
func Import(ctx context.Context, db *sql.DB, snap *Snapshot) error {
	taskRepo := NewTaskRepo(db)
	if err := taskRepo.DeleteAll(ctx); err != nil {
		return err
	}
	for _, t := range snap.Tasks {
		if err := taskRepo.Insert(ctx, t); err != nil {
			return err
		}
	}

	if snap.Player != nil {
		playerRepo := NewPlayerRepo(db)
		if _, err := playerRepo.GetOrCreateMain(ctx); err != nil {
			return err
		}
		p := *snap.Player
		p.Key = MainPlayerKey
		if err := playerRepo.Update(ctx, &p); err != nil {
			return err
		}
	}

	questRepo := NewQuestRepo(db)
	if err := questRepo.ReplaceByType(ctx, "daily", snap.DailyQuests); err != nil {
		return err
	}
	if err := questRepo.ReplaceByType(ctx, "weekly", snap.WeeklyQuests); err != nil {
		return err
	}

	if len(snap.Achievements) > 0 {
		if err := NewAchievementRepo(db).SaveAll(ctx, snap.Achievements); err != nil {
			return err
		}
	}

	if len(snap.Settings) > 0 {
		if err := NewSettingsRepo(db).Set(ctx, SettingsKey, string(snap.Settings)); err != nil {
			return err
		}
	}
	return nil
}
