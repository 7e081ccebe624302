// Package vocab maintains the character association graph: which
// vocabulary words share which characters, with weights that grow as the
// student encounters them. Association tips in the matching activity
// read from here.
package vocab

import (
	"database/sql"
	"fmt"
)

// #region schema

const schema = `
CREATE TABLE IF NOT EXISTS vocab_edges (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    char        TEXT NOT NULL,
    word        TEXT NOT NULL,
    unit_id     TEXT NOT NULL,
    weight      REAL NOT NULL DEFAULT 0.1,
    UNIQUE(char, word, unit_id)
);
CREATE INDEX IF NOT EXISTS idx_vocab_edges_char ON vocab_edges(char);
CREATE INDEX IF NOT EXISTS idx_vocab_edges_word ON vocab_edges(word);
`

// #endregion schema

// #region types

// Edge links one character to one vocabulary word of a unit.
type Edge struct {
	ID     int64
	Char   string
	Word   string
	UnitID string
	Weight float64
}

// AssocStore manages the vocab_edges table.
type AssocStore struct {
	db *sql.DB
}

// #endregion types

// #region constructor

// NewAssocStore creates tables and returns an AssocStore.
func NewAssocStore(db *sql.DB) (*AssocStore, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("vocab schema: %w", err)
	}
	return &AssocStore{db: db}, nil
}

// #endregion constructor

// #region add-edge

// AddEdge inserts a char-word edge. An existing edge is left unchanged.
func (s *AssocStore) AddEdge(char, word, unitID string, weight float64) error {
	_, err := s.db.Exec(
		`INSERT OR IGNORE INTO vocab_edges (char, word, unit_id, weight)
		 VALUES (?, ?, ?, ?)`,
		char, word, unitID, weight,
	)
	return err
}

// #endregion add-edge

// #region increment-edge

// IncrementEdge increases the weight of an edge by delta, capped at 1.0.
// A missing edge is created with weight=delta.
func (s *AssocStore) IncrementEdge(char, word, unitID string, delta float64) error {
	_, err := s.db.Exec(
		`INSERT INTO vocab_edges (char, word, unit_id, weight)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(char, word, unit_id) DO UPDATE SET
		   weight = MIN(1.0, vocab_edges.weight + ?)`,
		char, word, unitID, delta,
		delta,
	)
	return err
}

// #endregion increment-edge

// #region queries

// WordsFor returns the words of a unit that contain char, ordered by
// weight descending.
func (s *AssocStore) WordsFor(char, unitID string) ([]Edge, error) {
	rows, err := s.db.Query(
		`SELECT id, char, word, unit_id, weight
		 FROM vocab_edges
		 WHERE char = ? AND unit_id = ?
		 ORDER BY weight DESC, word`,
		char, unitID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var edges []Edge
	for rows.Next() {
		var e Edge
		if err := rows.Scan(&e.ID, &e.Char, &e.Word, &e.UnitID, &e.Weight); err != nil {
			return nil, err
		}
		edges = append(edges, e)
	}
	return edges, rows.Err()
}

// SharedChars returns the characters of word that also appear in other
// words of the same unit.
func (s *AssocStore) SharedChars(word, unitID string) ([]string, error) {
	rows, err := s.db.Query(
		`SELECT DISTINCT a.char
		 FROM vocab_edges a
		 JOIN vocab_edges b ON a.char = b.char AND a.unit_id = b.unit_id
		 WHERE a.word = ? AND a.unit_id = ? AND b.word != ?
		 ORDER BY a.char`,
		word, unitID, word,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var chars []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		chars = append(chars, c)
	}
	return chars, rows.Err()
}

// #endregion queries
