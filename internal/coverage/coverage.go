package coverage

import (
	"strings"

	"github.com/VicRabbit89/Mandarin-Chatbot1/internal/catalog"
	"github.com/VicRabbit89/Mandarin-Chatbot1/internal/transcript"
)

// #region compute

// ComputeCoverage marks a question covered when any of its keywords appears
// as a substring anywhere in the transcript text, both roles. Intentionally
// coarse: keywords overlap across questions, so false positives happen. The
// result is a soft progress hint, not a correctness gate.
//
// Pure and deterministic: identical inputs always yield an identical state.
func ComputeCoverage(questions []catalog.Question, ts transcript.Transcript) State {
	covered := make([]bool, len(questions))
	joined := ts.JoinedText()

	if joined != "" {
		for i, q := range questions {
			for _, kw := range q.Keywords {
				if strings.Contains(joined, kw) {
					covered[i] = true
					break
				}
			}
		}
	}

	next := 0
	found := false
	for i := range covered {
		if !covered[i] {
			next = i
			found = true
			break
		}
	}
	// All covered: clamp to the last valid index rather than running past
	// the catalog.
	if !found && len(questions) > 0 {
		next = len(questions) - 1
	}

	var remaining []catalog.Question
	var coveredIdx []int
	for i, q := range questions {
		if covered[i] {
			coveredIdx = append(coveredIdx, i)
		} else {
			remaining = append(remaining, q)
		}
	}

	return State{
		Covered:        covered,
		CoveredIndices: coveredIdx,
		NextIndex:      next,
		Remaining:      remaining,
	}
}

// #endregion compute
