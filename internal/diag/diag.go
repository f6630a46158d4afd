package diag

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"
)

// Kind classifies a diagnostic entry.
type Kind string

const (
	KindSystem  Kind = "SYSTEM"
	KindMission Kind = "MISSION"
	KindStorage Kind = "STORAGE"
)

// Severity grades a diagnostic entry.
type Severity string

const (
	SeverityLow      Severity = "LOW"
	SeverityMedium   Severity = "MEDIUM"
	SeverityHigh     Severity = "HIGH"
	SeverityCritical Severity = "CRITICAL"
)

// Entry is one diagnostic record. Success diagnostics carry an empty
// Severity; failures carry the taxonomy severity.
type Entry struct {
	ID       string            `json:"id"`
	Time     time.Time         `json:"time"`
	Kind     Kind              `json:"kind"`
	Severity Severity          `json:"severity,omitempty"`
	Action   string            `json:"action"`
	Message  string            `json:"message"`
	Details  map[string]string `json:"details,omitempty"`
}

// Log is a rolling diagnostic store over bbolt. A nil *Log is a no-op
// sink, so callers keep working when the diagnostic store failed to open.
type Log struct {
	db     *bolt.DB
	bucket []byte
}

// DefaultPath returns the default diagnostic store location.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".shadowconsole", "diag.db"), nil
}

// Open initializes the bolt file and ensures the bucket exists.
func Open(path string) (*Log, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	bucket := []byte("diagnostics")
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucket)
		return err
	}); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Log{db: db, bucket: bucket}, nil
}

// Record appends an entry. Keys are time-ordered so Recent and Cleanup
// can walk the bucket chronologically.
func (l *Log) Record(e Entry) error {
	if l == nil || l.db == nil {
		return nil
	}
	if e.Time.IsZero() {
		e.Time = time.Now()
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	key := []byte(e.Time.UTC().Format(time.RFC3339Nano) + "_" + e.ID)
	payload, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return l.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(l.bucket).Put(key, payload)
	})
}

// Recent returns up to limit entries, newest first.
func (l *Log) Recent(limit int) ([]Entry, error) {
	if l == nil || l.db == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 50
	}
	var out []Entry
	err := l.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(l.bucket).Cursor()
		for k, v := c.Last(); k != nil && len(out) < limit; k, v = c.Prev() {
			var e Entry
			if err := json.Unmarshal(v, &e); err != nil {
				continue
			}
			out = append(out, e)
		}
		return nil
	})
	return out, err
}

// Cleanup removes entries older than the provided timestamp.
func (l *Log) Cleanup(olderThan time.Time) error {
	if l == nil || l.db == nil {
		return nil
	}
	return l.db.Update(func(tx *bolt.Tx) error {
		c := tx.Bucket(l.bucket).Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			var e Entry
			if err := json.Unmarshal(v, &e); err != nil {
				continue
			}
			if e.Time.Before(olderThan) {
				if err := c.Delete(); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// Size returns the number of stored entries.
func (l *Log) Size() (int, error) {
	if l == nil || l.db == nil {
		return 0, nil
	}
	var n int
	err := l.db.View(func(tx *bolt.Tx) error {
		n = tx.Bucket(l.bucket).Stats().KeyN
		return nil
	})
	return n, err
}

// Close closes the underlying store.
func (l *Log) Close() error {
	if l == nil || l.db == nil {
		return nil
	}
	return l.db.Close()
}
