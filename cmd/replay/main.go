package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/VicRabbit89/Mandarin-Chatbot1/internal/analytics"
	"github.com/VicRabbit89/Mandarin-Chatbot1/internal/catalog"
	"github.com/VicRabbit89/Mandarin-Chatbot1/internal/orchestrator"
	"github.com/VicRabbit89/Mandarin-Chatbot1/internal/replay"
	"github.com/VicRabbit89/Mandarin-Chatbot1/internal/transcript"
)

// #region main

func main() {
	fixturePath := flag.String("fixture", "", "replay fixture JSON file")
	dbPath := flag.String("db", "", "analytics database with recorded sessions")
	sessionID := flag.String("session", "", "session id to replay from --db")
	catalogPath := flag.String("catalog", "", "optional catalog YAML (default: built-in)")
	flag.Parse()

	if *fixturePath == "" && *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: replay --fixture file.json | --db coach.db [--session id]")
		os.Exit(2)
	}

	cat, err := loadCatalog(*catalogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load catalog: %v\n", err)
		os.Exit(1)
	}
	engine := orchestrator.NewEngine(cat, orchestrator.DefaultConfig())

	var fixture *replay.Fixture
	if *fixturePath != "" {
		fixture, err = replay.LoadFixture(*fixturePath)
	} else {
		fixture, err = fixtureFromDB(*dbPath, *sessionID)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	results, err := replay.Replay(engine, fixture)
	if err != nil {
		fmt.Fprintf(os.Stderr, "replay: %v\n", err)
		os.Exit(1)
	}

	if fixture.Description != "" {
		fmt.Printf("# %s\n", fixture.Description)
	}
	fmt.Printf("unit=%s turns=%d\n\n", fixture.UnitID, len(results))
	for _, r := range results {
		fmt.Printf("[%2d] %-9s %s\n", r.TurnIndex, r.Role, r.Text)
		fmt.Printf("     next=%d covered=%d remaining=%d prohibited=%v fallback=%v\n",
			r.Directive.NextIndex, len(r.Directive.CoveredIndices),
			len(r.Directive.Remaining), r.Directive.Prohibited, r.Directive.FallbackFired)
	}

	if len(fixture.ExpectedResults) == 0 {
		return
	}
	summary := replay.Verify(results, fixture)
	fmt.Printf("\nchecked %d expectations, %d mismatches\n", summary.Checked, len(summary.Mismatches))
	for _, m := range summary.Mismatches {
		fmt.Printf("  turn %d: %s got=%s want=%s\n", m.TurnIndex, m.Field, m.Got, m.Want)
	}
	if !summary.Passed() {
		os.Exit(1)
	}
}

// #endregion main

// #region db-source

// fixtureFromDB rebuilds a fixture from a recorded session's roleplay
// turn events. The latest session is used when none is named.
func fixtureFromDB(dbPath, sessionID string) (*replay.Fixture, error) {
	store, err := analytics.NewStore(dbPath, analytics.DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	defer store.Close()

	unitID := ""
	if sessionID == "" {
		sessions, err := store.ListSessions(1)
		if err != nil {
			return nil, err
		}
		if len(sessions) == 0 {
			return nil, fmt.Errorf("no sessions in %s", dbPath)
		}
		sessionID = sessions[0].ID
		unitID = sessions[0].UnitID
	} else {
		sessions, err := store.ListSessions(1000)
		if err != nil {
			return nil, err
		}
		for _, s := range sessions {
			if s.ID == sessionID {
				unitID = s.UnitID
			}
		}
		if unitID == "" {
			return nil, fmt.Errorf("session %s not found", sessionID)
		}
	}

	events, err := store.Events(sessionID)
	if err != nil {
		return nil, err
	}
	fixture := &replay.Fixture{
		Description: fmt.Sprintf("session %s", sessionID),
		UnitID:      unitID,
	}
	for _, e := range events {
		if e.Kind != analytics.EventRoleplayTurn {
			continue
		}
		var payload struct {
			Text string `json:"text"`
		}
		if err := json.Unmarshal([]byte(e.Payload), &payload); err != nil || payload.Text == "" {
			continue
		}
		fixture.Turns = append(fixture.Turns, transcript.RawTurn{Role: "user", Text: payload.Text})
	}
	if len(fixture.Turns) == 0 {
		return nil, fmt.Errorf("session %s has no roleplay turns", sessionID)
	}
	return fixture, nil
}

// #endregion db-source

// #region helpers

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.DefaultCatalog(), nil
	}
	return catalog.LoadCatalog(path)
}

// #endregion helpers
