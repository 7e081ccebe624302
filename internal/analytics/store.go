// Package analytics records pilot-study interaction data in SQLite and
// exports it as daily JSONL files. Recording happens only at the command
// surfaces; the engine packages stay side-effect free.
package analytics

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// #region schema

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	session_id  TEXT PRIMARY KEY,
	unit_id     TEXT NOT NULL,
	user_hash   TEXT NOT NULL,
	started_at  TEXT NOT NULL,
	ended_at    TEXT
);

CREATE TABLE IF NOT EXISTS events (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id  TEXT NOT NULL,
	kind        TEXT NOT NULL,
	payload     TEXT NOT NULL,
	created_at  TEXT NOT NULL,
	FOREIGN KEY (session_id) REFERENCES sessions(session_id)
);
CREATE INDEX IF NOT EXISTS idx_events_session ON events(session_id);
`

// #endregion schema

// #region store

// Store manages the analytics database.
type Store struct {
	db     *sql.DB
	config Config
	rng    *rand.Rand
}

// NewStore opens the SQLite database at dbPath and runs migrations.
func NewStore(dbPath string, config Config) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db, config: config, rng: rand.New(rand.NewSource(time.Now().UnixNano()))}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for use by other packages.
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion store

// #region sessions

// StartSession records a new session and returns its id.
func (s *Store) StartSession(unitID, userID string) (string, error) {
	if !s.config.Enabled {
		return uuid.New().String()[:8], nil
	}
	id := uuid.New().String()[:8]
	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := s.db.Exec(
		`INSERT INTO sessions (session_id, unit_id, user_hash, started_at) VALUES (?, ?, ?, ?)`,
		id, unitID, ShortHash(userID), now,
	)
	if err != nil {
		return "", fmt.Errorf("start session: %w", err)
	}
	return id, nil
}

// EndSession stamps a session's end time.
func (s *Store) EndSession(sessionID string) error {
	if !s.config.Enabled {
		return nil
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := s.db.Exec(`UPDATE sessions SET ended_at = ? WHERE session_id = ?`, now, sessionID)
	if err != nil {
		return fmt.Errorf("end session: %w", err)
	}
	return nil
}

// ListSessions returns the most recent sessions.
func (s *Store) ListSessions(limit int) ([]Session, error) {
	rows, err := s.db.Query(
		`SELECT session_id, unit_id, user_hash, started_at, ended_at
		 FROM sessions ORDER BY started_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var rec Session
		var started string
		var ended sql.NullString
		if err := rows.Scan(&rec.ID, &rec.UnitID, &rec.UserHash, &started, &ended); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		rec.StartedAt, _ = time.Parse(time.RFC3339Nano, started)
		if ended.Valid {
			rec.EndedAt, _ = time.Parse(time.RFC3339Nano, ended.String)
		}
		sessions = append(sessions, rec)
	}
	return sessions, rows.Err()
}

// #endregion sessions

// #region events

// Record stores one event. Disabled or sampled-out calls are silent
// no-ops. payload is marshaled to JSON.
func (s *Store) Record(sessionID string, kind EventKind, payload any) error {
	if !s.config.Enabled {
		return nil
	}
	if s.config.SampleRate < 1.0 && s.rng.Float64() > s.config.SampleRate {
		return nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err = s.db.Exec(
		`INSERT INTO events (session_id, kind, payload, created_at) VALUES (?, ?, ?, ?)`,
		sessionID, string(kind), string(raw), now,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

// Events returns all events of a session in insertion order.
func (s *Store) Events(sessionID string) ([]Event, error) {
	rows, err := s.db.Query(
		`SELECT id, session_id, kind, payload, created_at
		 FROM events WHERE session_id = ? ORDER BY id`, sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var e Event
		var kind, created string
		if err := rows.Scan(&e.ID, &e.SessionID, &kind, &e.Payload, &created); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		e.Kind = EventKind(kind)
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, created)
		events = append(events, e)
	}
	return events, rows.Err()
}

// #endregion events

// #region export

// ExportJSONL writes every recorded event into daily files under dir,
// named pilot_data_YYYYMMDD.jsonl by event date. Returns the number of
// lines written.
func (s *Store) ExportJSONL(dir string) (int, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("analytics dir: %w", err)
	}
	rows, err := s.db.Query(
		`SELECT e.kind, e.payload, e.created_at, e.session_id, s.user_hash
		 FROM events e JOIN sessions s ON e.session_id = s.session_id
		 ORDER BY e.created_at, e.id`,
	)
	if err != nil {
		return 0, fmt.Errorf("export query: %w", err)
	}
	defer rows.Close()

	files := map[string]*os.File{}
	defer func() {
		for _, f := range files {
			f.Close()
		}
	}()

	count := 0
	for rows.Next() {
		var kind, payload, created, sessionID, userHash string
		if err := rows.Scan(&kind, &payload, &created, &sessionID, &userHash); err != nil {
			return count, fmt.Errorf("scan export row: %w", err)
		}
		ts, _ := time.Parse(time.RFC3339Nano, created)
		day := ts.UTC().Format("20060102")
		f, ok := files[day]
		if !ok {
			path := filepath.Join(dir, fmt.Sprintf("pilot_data_%s.jsonl", day))
			f, err = os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
			if err != nil {
				return count, fmt.Errorf("open export file: %w", err)
			}
			files[day] = f
		}
		entry := ExportEntry{
			Timestamp: ts.UTC().Format(time.RFC3339Nano),
			EventType: EventKind(kind),
			UserID:    userHash,
			SessionID: sessionID,
			Data:      json.RawMessage(payload),
		}
		line, err := json.Marshal(entry)
		if err != nil {
			return count, fmt.Errorf("marshal export entry: %w", err)
		}
		if _, err := f.Write(append(line, '\n')); err != nil {
			return count, fmt.Errorf("write export line: %w", err)
		}
		count++
	}
	return count, rows.Err()
}

// #endregion export
