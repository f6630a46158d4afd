package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// Meta keys used by the periodic quest cycle.
const (
	MetaDailyResetDate  = "daily_reset_date"
	MetaWeeklyResetDate = "weekly_reset_date"
	MetaAppStartTime    = "app_start_time"
)

// SettingsKey is the single row holding the serialized user settings.
const SettingsKey = "user_settings"

// KVRepo backs the settings and meta tables: small JSON or marker values
// addressed by key.
type KVRepo struct {
	db    *sql.DB
	table string
}

func NewMetaRepo(db *sql.DB) *KVRepo     { return &KVRepo{db: db, table: "meta"} }
func NewSettingsRepo(db *sql.DB) *KVRepo { return &KVRepo{db: db, table: "settings"} }

// Get returns the stored value, or "" when the key is absent.
func (r *KVRepo) Get(ctx context.Context, key string) (string, error) {
	row := r.db.QueryRowContext(ctx, `SELECT value FROM `+r.table+` WHERE key = ?`, key)
	var v string
	if err := row.Scan(&v); err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("%s get %q: %w", r.table, key, err)
	}
	return v, nil
}

func (r *KVRepo) Set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO `+r.table+` (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("%s set %q: %w", r.table, key, err)
	}
	return nil
}
