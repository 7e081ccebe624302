package orchestrator

import (
	"github.com/VicRabbit89/Mandarin-Chatbot1/internal/catalog"
	"github.com/VicRabbit89/Mandarin-Chatbot1/internal/constraint"
	"github.com/VicRabbit89/Mandarin-Chatbot1/internal/coverage"
	"github.com/VicRabbit89/Mandarin-Chatbot1/internal/facts"
	"github.com/VicRabbit89/Mandarin-Chatbot1/internal/family"
	"github.com/VicRabbit89/Mandarin-Chatbot1/internal/transcript"
)

// #region engine

// Engine recomputes the conversation state from the full transcript on
// every call. All state is derived from the arguments; the only shared
// data is the read-only catalog, so arbitrarily many calls may run
// concurrently without coordination.
type Engine struct {
	catalog *catalog.Catalog
	config  Config
	filter  *constraint.Filter
}

// NewEngine creates an engine over an immutable catalog with the given
// heuristic tables.
func NewEngine(cat *catalog.Catalog, config Config) *Engine {
	return &Engine{
		catalog: cat,
		config:  config,
		filter:  constraint.NewFilter(config.Filter),
	}
}

// #endregion engine

// #region build-directive

// BuildDirective derives the full directive for one turn. Pure composition:
// coverage and fact extraction run over the transcript, the composition
// resolver refines the facts, the constraint filter prunes the uncovered
// remainder. Fails with catalog.ErrUnitNotFound for an unknown unit and
// returns no partial output.
func (e *Engine) BuildDirective(unitID string, ts transcript.Transcript) (Directive, error) {
	d, _, err := e.Analyze(unitID, ts)
	return d, err
}

// Analyze is BuildDirective plus the intermediate stages.
func (e *Engine) Analyze(unitID string, ts transcript.Transcript) (Directive, Analysis, error) {
	questions, err := e.catalog.GetQuestions(unitID)
	if err != nil {
		return Directive{}, Analysis{}, err
	}

	cov := coverage.ComputeCoverage(questions, ts)
	extracted := facts.ExtractFacts(ts, e.config.Extractor)
	resolved := family.ResolveComposition(extracted, ts, e.config.Resolver)
	filtered := e.filter.Apply(cov.Remaining, resolved)

	d := Directive{
		UnitID:         unitID,
		Remaining:      filtered.Allowed,
		NextIndex:      cov.NextIndex,
		Prohibited:     filtered.Prohibited,
		CoveredIndices: cov.CoveredIndices,
		FallbackFired:  filtered.FallbackFired,
		Facts:          resolved,
	}
	a := Analysis{
		Coverage:  cov,
		Extracted: extracted,
		Resolved:  resolved,
		Filter:    filtered,
	}
	return d, a, nil
}

// #endregion build-directive
