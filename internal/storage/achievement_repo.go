package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type AchievementRepo struct {
	db *sql.DB
}

func NewAchievementRepo(db *sql.DB) *AchievementRepo {
	return &AchievementRepo{db: db}
}

func (r *AchievementRepo) ListAll(ctx context.Context) ([]Achievement, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, description, icon, xp_reward, unlocked, unlocked_at
		FROM achievements ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("achievement list: %w", err)
	}
	defer rows.Close()

	var out []Achievement
	for rows.Next() {
		var a Achievement
		var unlocked int
		var unlockedAt sql.NullString
		if err := rows.Scan(&a.ID, &a.Title, &a.Description, &a.Icon,
			&a.XPReward, &unlocked, &unlockedAt); err != nil {
			return nil, fmt.Errorf("achievement scan: %w", err)
		}
		a.Unlocked = unlocked != 0
		if a.UnlockedAt, err = parseTimeNull(unlockedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("achievement rows: %w", err)
	}
	return out, nil
}

// SaveAll upserts the full catalog. unlocked only moves forward: a row
// already unlocked in the store keeps its original unlocked_at.
func (r *AchievementRepo) SaveAll(ctx context.Context, achievements []Achievement) error {
	return WithTx(ctx, r.db, func(tx *sql.Tx) error {
		for _, a := range achievements {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO achievements (id, title, description, icon, xp_reward, unlocked, unlocked_at)
				VALUES (?, ?, ?, ?, ?, ?, ?)
				ON CONFLICT(id) DO UPDATE SET
					title = excluded.title,
					description = excluded.description,
					icon = excluded.icon,
					xp_reward = excluded.xp_reward,
					unlocked = MAX(achievements.unlocked, excluded.unlocked),
					unlocked_at = COALESCE(achievements.unlocked_at, excluded.unlocked_at)
			`, a.ID, a.Title, a.Description, a.Icon, a.XPReward,
				boolToInt(a.Unlocked), fmtTimePtr(a.UnlockedAt)); err != nil {
				return fmt.Errorf("achievement upsert: %w", err)
			}
		}
		return nil
	})
}
