package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type QuestRepo struct {
	db *sql.DB
}

func NewQuestRepo(db *sql.DB) *QuestRepo {
	return &QuestRepo{db: db}
}

func (r *QuestRepo) ListByType(ctx context.Context, questType string) ([]Quest, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, description, type, target, current, completed, xp_reward, expires_at
		FROM quests WHERE type = ? ORDER BY id ASC
	`, questType)
	if err != nil {
		return nil, fmt.Errorf("quest list: %w", err)
	}
	defer rows.Close()

	var out []Quest
	for rows.Next() {
		q, err := scanQuest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("quest rows: %w", err)
	}
	return out, nil
}

// ReplaceByType swaps the whole quest set for a period type in one
// transaction. Used by the generation cycle.
func (r *QuestRepo) ReplaceByType(ctx context.Context, questType string, quests []Quest) error {
	return WithTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM quests WHERE type = ?`, questType); err != nil {
			return fmt.Errorf("quest clear: %w", err)
		}
		for _, q := range quests {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO quests (id, title, description, type, target, current, completed, xp_reward, expires_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			`, q.ID, q.Title, q.Description, q.Type, q.Target, q.Current,
				boolToInt(q.Completed), q.XPReward, fmtTime(q.ExpiresAt)); err != nil {
				return fmt.Errorf("quest insert: %w", err)
			}
		}
		return nil
	})
}

// UpdateProgress persists a re-evaluated quest.
func (r *QuestRepo) UpdateProgress(ctx context.Context, q Quest) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE quests SET current = ?, completed = ? WHERE id = ?
	`, q.Current, boolToInt(q.Completed), q.ID)
	if err != nil {
		return fmt.Errorf("quest update: %w", err)
	}
	return nil
}

func scanQuest(rows *sql.Rows) (*Quest, error) {
	var q Quest
	var completed int
	var expiresAt string
	if err := rows.Scan(&q.ID, &q.Title, &q.Description, &q.Type, &q.Target,
		&q.Current, &completed, &q.XPReward, &expiresAt); err != nil {
		return nil, fmt.Errorf("quest scan: %w", err)
	}
	q.Completed = completed != 0
	var err error
	if q.ExpiresAt, err = parseTime(expiresAt); err != nil {
		return nil, err
	}
	return &q, nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
