package constraint

import (
	"github.com/VicRabbit89/Mandarin-Chatbot1/internal/catalog"
	"github.com/VicRabbit89/Mandarin-Chatbot1/internal/facts"
)

// #region filter-config

// FilterConfig names the token that banning all siblings additionally
// prohibits. Entity tokens themselves come from the fact table keys.
type FilterConfig struct {
	// SiblingsCompound is excluded when all four sibling categories are
	// asserted absent (questions phrased around 兄弟姐妹 as a group).
	SiblingsCompound string
}

// DefaultFilterConfig returns the built-in configuration.
func DefaultFilterConfig() FilterConfig {
	return FilterConfig{SiblingsCompound: "兄弟姐妹"}
}

// #endregion filter-config

// #region exclusion

// Exclusion records one filtered question and the entity that excluded it.
type Exclusion struct {
	Question catalog.Question
	Entity   string
	Key      facts.Key
}

// #endregion exclusion

// #region result

// Result is the output of one filter pass.
type Result struct {
	Allowed    []catalog.Question // order preserved
	Prohibited []string           // entity tokens the partner must not ask about
	Excluded   []Exclusion        // why each removed question was removed
	// FallbackFired reports that filtering removed every question and the
	// unfiltered list was returned instead. The conversation must never
	// dead-end on an empty directive.
	FallbackFired bool
}

// #endregion result
