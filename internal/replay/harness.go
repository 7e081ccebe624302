// Package replay re-runs recorded conversations through the directive
// pipeline. Because the engine derives everything from the transcript,
// replaying a fixture reproduces every historical decision exactly.
package replay

import (
	"fmt"

	"github.com/VicRabbit89/Mandarin-Chatbot1/internal/orchestrator"
	"github.com/VicRabbit89/Mandarin-Chatbot1/internal/transcript"
)

// #region types

// TurnResult is the directive computed after one transcript prefix.
type TurnResult struct {
	TurnIndex int
	Role      transcript.Role
	Text      string
	Directive orchestrator.Directive
}

// Mismatch names one divergence between a replayed turn and the
// fixture's expectation.
type Mismatch struct {
	TurnIndex int
	Field     string
	Got       string
	Want      string
}

// Summary aggregates one replay run.
type Summary struct {
	TotalTurns int
	Checked    int
	Mismatches []Mismatch
}

// Passed reports whether every expectation held.
func (s Summary) Passed() bool {
	return len(s.Mismatches) == 0
}

// #endregion types

// #region replay

// Replay feeds the fixture's turns through the engine one prefix at a
// time, returning the directive after each turn.
func Replay(engine *orchestrator.Engine, f *Fixture) ([]TurnResult, error) {
	ts := transcript.ParseTurns(f.Turns)
	results := make([]TurnResult, 0, len(ts))
	for i := range ts {
		d, err := engine.BuildDirective(f.UnitID, ts[:i+1])
		if err != nil {
			return nil, fmt.Errorf("turn %d: %w", i, err)
		}
		results = append(results, TurnResult{
			TurnIndex: i,
			Role:      ts[i].Role,
			Text:      ts[i].Text,
			Directive: d,
		})
	}
	return results, nil
}

// Verify checks replay results against the fixture's expectations.
func Verify(results []TurnResult, f *Fixture) Summary {
	summary := Summary{TotalTurns: len(results)}
	byIndex := make(map[int]orchestrator.Directive, len(results))
	for _, r := range results {
		byIndex[r.TurnIndex] = r.Directive
	}

	for _, want := range f.ExpectedResults {
		summary.Checked++
		d, ok := byIndex[want.TurnIndex]
		if !ok {
			summary.Mismatches = append(summary.Mismatches, Mismatch{
				TurnIndex: want.TurnIndex,
				Field:     "turn_index",
				Got:       "absent",
				Want:      fmt.Sprintf("%d", want.TurnIndex),
			})
			continue
		}
		check := func(field string, got, wantVal int) {
			if got != wantVal {
				summary.Mismatches = append(summary.Mismatches, Mismatch{
					TurnIndex: want.TurnIndex, Field: field,
					Got: fmt.Sprintf("%d", got), Want: fmt.Sprintf("%d", wantVal),
				})
			}
		}
		check("next_index", d.NextIndex, want.NextIndex)
		check("covered_count", len(d.CoveredIndices), want.CoveredCount)
		check("remaining_count", len(d.Remaining), want.RemainingCount)
		if !sameStrings(d.Prohibited, want.Prohibited) {
			summary.Mismatches = append(summary.Mismatches, Mismatch{
				TurnIndex: want.TurnIndex,
				Field:     "prohibited",
				Got:       fmt.Sprintf("%v", d.Prohibited),
				Want:      fmt.Sprintf("%v", want.Prohibited),
			})
		}
		if d.FallbackFired != want.FallbackFired {
			summary.Mismatches = append(summary.Mismatches, Mismatch{
				TurnIndex: want.TurnIndex,
				Field:     "fallback_fired",
				Got:       fmt.Sprintf("%v", d.FallbackFired),
				Want:      fmt.Sprintf("%v", want.FallbackFired),
			})
		}
	}
	return summary
}

func sameStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// #endregion replay
