package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/VicRabbit89/Mandarin-Chatbot1/internal/analytics"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to coach.db")
	last := flag.Int("last", 20, "show N most recent sessions")
	sessionID := flag.String("session", "", "show single session detail")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/coach.db [--last N] [--session id] [--json]")
		os.Exit(2)
	}

	store, err := analytics.NewStore(*dbPath, analytics.DefaultConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if *sessionID != "" {
		err = runDetailMode(store, *sessionID, *jsonOut)
	} else {
		err = runListMode(store, *last, *jsonOut)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region list-mode

type listRow struct {
	SessionID string `json:"session_id"`
	UnitID    string `json:"unit_id"`
	StartedAt string `json:"started_at"`
	EndedAt   string `json:"ended_at,omitempty"`
	Events    int    `json:"events"`
}

func runListMode(store *analytics.Store, last int, jsonOut bool) error {
	sessions, err := store.ListSessions(last)
	if err != nil {
		return err
	}

	rows := make([]listRow, 0, len(sessions))
	for _, s := range sessions {
		events, err := store.Events(s.ID)
		if err != nil {
			return err
		}
		row := listRow{
			SessionID: s.ID,
			UnitID:    s.UnitID,
			StartedAt: s.StartedAt.Format(time.RFC3339),
			Events:    len(events),
		}
		if !s.EndedAt.IsZero() {
			row.EndedAt = s.EndedAt.Format(time.RFC3339)
		}
		rows = append(rows, row)
	}

	if jsonOut {
		return json.NewEncoder(os.Stdout).Encode(rows)
	}
	fmt.Printf("%-10s %-8s %-25s %-25s %s\n", "SESSION", "UNIT", "STARTED", "ENDED", "EVENTS")
	for _, r := range rows {
		ended := r.EndedAt
		if ended == "" {
			ended = "-"
		}
		fmt.Printf("%-10s %-8s %-25s %-25s %d\n", r.SessionID, r.UnitID, r.StartedAt, ended, r.Events)
	}
	return nil
}

// #endregion list-mode

// #region detail-mode

type detailRow struct {
	Kind      string          `json:"kind"`
	CreatedAt string          `json:"created_at"`
	Payload   json.RawMessage `json:"payload"`
}

func runDetailMode(store *analytics.Store, sessionID string, jsonOut bool) error {
	events, err := store.Events(sessionID)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		return fmt.Errorf("session %s has no events", sessionID)
	}

	rows := make([]detailRow, 0, len(events))
	for _, e := range events {
		rows = append(rows, detailRow{
			Kind:      string(e.Kind),
			CreatedAt: e.CreatedAt.Format(time.RFC3339),
			Payload:   json.RawMessage(e.Payload),
		})
	}

	if jsonOut {
		return json.NewEncoder(os.Stdout).Encode(rows)
	}
	for _, r := range rows {
		fmt.Printf("%-17s %-25s %s\n", r.Kind, r.CreatedAt, string(r.Payload))
	}
	return nil
}

// #endregion detail-mode
