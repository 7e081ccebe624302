package orchestrator

import (
	"github.com/VicRabbit89/Mandarin-Chatbot1/internal/catalog"
	"github.com/VicRabbit89/Mandarin-Chatbot1/internal/constraint"
	"github.com/VicRabbit89/Mandarin-Chatbot1/internal/coverage"
	"github.com/VicRabbit89/Mandarin-Chatbot1/internal/facts"
	"github.com/VicRabbit89/Mandarin-Chatbot1/internal/family"
)

// #region directive

// Directive is the computed instruction context for the downstream
// text-generation collaborator: which target questions remain, which to
// prefer next, and which entities must not be asked about. Constructed
// fresh per call, never cached, never persisted.
type Directive struct {
	UnitID string
	// Remaining lists the allowed uncovered questions in catalog order.
	Remaining []catalog.Question
	// NextIndex points into the full catalog, not into Remaining. Always a
	// valid catalog index for non-empty catalogs.
	NextIndex int
	// Prohibited carries the entity tokens the partner must not reference.
	Prohibited []string
	// CoveredIndices are the catalog indices heuristically detected as
	// already addressed.
	CoveredIndices []int
	// FallbackFired reports that constraint filtering removed every
	// remaining question and the unfiltered list was returned instead.
	FallbackFired bool
	// Facts is the resolved tri-state table the prohibitions derive from.
	Facts facts.FactTable
}

// #endregion directive

// #region engine-config

// Config bundles the heuristic tables for every pipeline stage.
type Config struct {
	Extractor facts.ExtractorConfig
	Resolver  family.ResolverConfig
	Filter    constraint.FilterConfig
}

// DefaultConfig returns the built-in tables for all stages.
func DefaultConfig() Config {
	return Config{
		Extractor: facts.DefaultExtractorConfig(),
		Resolver:  family.DefaultResolverConfig(),
		Filter:    constraint.DefaultFilterConfig(),
	}
}

// #endregion engine-config

// #region analysis

// Analysis exposes the intermediate pipeline stages for callers that want
// more than the Directive (progress stats, replay inspection).
type Analysis struct {
	Coverage  coverage.State
	Extracted facts.FactTable
	Resolved  facts.FactTable
	Filter    constraint.Result
}

// #endregion analysis
