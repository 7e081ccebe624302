package facts

import (
	"strings"

	"github.com/VicRabbit89/Mandarin-Chatbot1/internal/textnorm"
	"github.com/VicRabbit89/Mandarin-Chatbot1/internal/transcript"
)

// #region extract

// ExtractFacts scans student turns for affirmation and negation of specific
// relatives and pets. Partner turns are ignored. Negation patterns are
// evaluated first and win over affirmations for the same key: an earlier
// denial followed by later generic possession wording stays a denial.
// Text that matches no pattern leaves the key Unknown; ambiguity is never
// an error and never guessed at.
func ExtractFacts(ts transcript.Transcript, config ExtractorConfig) FactTable {
	table := NewFactTable()
	// Compacted text: stray spacing inside a phrase must not defeat the
	// spaceless patterns.
	text := textnorm.Compact(ts.StudentText())
	if text == "" {
		return table
	}

	for _, r := range config.Negations {
		if strings.Contains(text, r.Pattern) {
			table.Set(r.Key, r.Value)
		}
	}
	for _, r := range config.Affirmations {
		// Negation precedence: never downgrade an asserted absence.
		if table.Get(r.Key) == AssertedAbsent {
			continue
		}
		if strings.Contains(text, r.Pattern) {
			table.Set(r.Key, r.Value)
		}
	}

	return table
}

// #endregion extract
