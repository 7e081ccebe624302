package coverage

import "github.com/VicRabbit89/Mandarin-Chatbot1/internal/catalog"

// #region state

// State is the derived coverage view of one transcript. Constructed fresh
// per call, never cached.
type State struct {
	Covered        []bool             // same length as the question catalog
	CoveredIndices []int              // ascending catalog indices marked covered
	NextIndex      int                // first uncovered index, clamped to the last when all covered
	Remaining      []catalog.Question // uncovered questions in catalog order
}

// CoveredCount returns how many questions are marked covered.
func (s State) CoveredCount() int {
	return len(s.CoveredIndices)
}

// #endregion state
