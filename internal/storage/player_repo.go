package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

const MainPlayerKey = "player_1"

// DefaultPlayerName matches the original operative handle.
const DefaultPlayerName = "Shadow Operative"

type PlayerRepo struct {
	db *sql.DB
}

func NewPlayerRepo(db *sql.DB) *PlayerRepo {
	return &PlayerRepo{db: db}
}

func (r *PlayerRepo) Get(ctx context.Context, key string) (*Player, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT key, name, level, total_xp, current_streak, longest_streak,
			completed_tasks, rank, created_at
		FROM player WHERE key = ?
	`, key)

	var p Player
	var createdAt string
	if err := row.Scan(&p.Key, &p.Name, &p.Level, &p.TotalXP, &p.CurrentStreak,
		&p.LongestStreak, &p.CompletedTasks, &p.Rank, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("player get: %w", err)
	}
	var err error
	if p.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PlayerRepo) GetOrCreateMain(ctx context.Context) (*Player, error) {
	p, err := r.Get(ctx, MainPlayerKey)
	if err != nil {
		return nil, err
	}
	if p != nil {
		return p, nil
	}

	if _, err := r.db.ExecContext(ctx, `
		INSERT INTO player (key, name, created_at) VALUES (?, ?, ?)
	`, MainPlayerKey, DefaultPlayerName, fmtTime(time.Now())); err != nil {
		return nil, fmt.Errorf("player insert: %w", err)
	}
	return r.Get(ctx, MainPlayerKey)
}

func (r *PlayerRepo) Update(ctx context.Context, p *Player) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE player
		SET name = ?, level = ?, total_xp = ?, current_streak = ?,
			longest_streak = ?, completed_tasks = ?, rank = ?
		WHERE key = ?
	`, p.Name, p.Level, p.TotalXP, p.CurrentStreak, p.LongestStreak,
		p.CompletedTasks, p.Rank, p.Key)
	if err != nil {
		return fmt.Errorf("player update: %w", err)
	}
	return nil
}
