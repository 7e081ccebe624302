package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/VicRabbit89/Mandarin-Chatbot1/internal/transcript"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture: a
// recorded conversation plus the per-turn directive expectations.
type Fixture struct {
	Description     string                  `json:"description"`
	UnitID          string                  `json:"unit_id"`
	Turns           []transcript.RawTurn    `json:"turns"`
	ExpectedResults []FixtureExpectedResult `json:"expected_results"`
}

// FixtureExpectedResult captures the expected directive facts after the
// transcript prefix ending at TurnIndex.
type FixtureExpectedResult struct {
	TurnIndex      int      `json:"turn_index"`
	NextIndex      int      `json:"next_index"`
	CoveredCount   int      `json:"covered_count"`
	RemainingCount int      `json:"remaining_count"`
	Prohibited     []string `json:"prohibited,omitempty"`
	FallbackFired  bool     `json:"fallback_fired,omitempty"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	if f.UnitID == "" {
		return nil, fmt.Errorf("fixture %s: unit_id is required", path)
	}
	return &f, nil
}

// SaveFixture writes a fixture as indented JSON.
func SaveFixture(path string, f *Fixture) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal fixture: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write fixture %s: %w", path, err)
	}
	return nil
}

// #endregion fixture-loader
