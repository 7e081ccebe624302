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
	dbPath := flag.String("db", "", "path to coach.db")
	sessionID := flag.String("session", "", "session id to export")
	outPath := flag.String("out", "", "output fixture JSON path")
	flag.Parse()

	if *dbPath == "" || *sessionID == "" || *outPath == "" {
		fmt.Fprintln(os.Stderr, "usage: fixture-export --db coach.db --session id --out fixture.json")
		os.Exit(2)
	}

	if err := run(*dbPath, *sessionID, *outPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(dbPath, sessionID, outPath string) error {
	store, err := analytics.NewStore(dbPath, analytics.DefaultConfig())
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer store.Close()

	unitID := ""
	sessions, err := store.ListSessions(1000)
	if err != nil {
		return err
	}
	for _, s := range sessions {
		if s.ID == sessionID {
			unitID = s.UnitID
		}
	}
	if unitID == "" {
		return fmt.Errorf("session %s not found", sessionID)
	}

	events, err := store.Events(sessionID)
	if err != nil {
		return err
	}

	fixture := &replay.Fixture{
		Description: fmt.Sprintf("exported session %s", sessionID),
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
		return fmt.Errorf("session %s has no roleplay turns", sessionID)
	}

	// Expectations come from replaying the exported turns themselves, so
	// the fixture locks in the current behavior.
	engine := orchestrator.NewEngine(catalog.DefaultCatalog(), orchestrator.DefaultConfig())
	results, err := replay.Replay(engine, fixture)
	if err != nil {
		return fmt.Errorf("replay for expectations: %w", err)
	}
	for _, r := range results {
		fixture.ExpectedResults = append(fixture.ExpectedResults, replay.FixtureExpectedResult{
			TurnIndex:      r.TurnIndex,
			NextIndex:      r.Directive.NextIndex,
			CoveredCount:   len(r.Directive.CoveredIndices),
			RemainingCount: len(r.Directive.Remaining),
			Prohibited:     r.Directive.Prohibited,
			FallbackFired:  r.Directive.FallbackFired,
		})
	}

	if err := replay.SaveFixture(outPath, fixture); err != nil {
		return err
	}
	fmt.Printf("wrote %s: %d turns, %d expectations\n", outPath, len(fixture.Turns), len(fixture.ExpectedResults))
	return nil
}

// #endregion main
