// Package progress computes heuristic end-of-session statistics from a
// transcript plus the final coverage and fact analysis.
package progress

import (
	"fmt"
	"strings"

	"github.com/VicRabbit89/Mandarin-Chatbot1/internal/catalog"
	"github.com/VicRabbit89/Mandarin-Chatbot1/internal/coverage"
	"github.com/VicRabbit89/Mandarin-Chatbot1/internal/facts"
	"github.com/VicRabbit89/Mandarin-Chatbot1/internal/textnorm"
	"github.com/VicRabbit89/Mandarin-Chatbot1/internal/transcript"
)

// #region producer

// Producer computes session statistics.
type Producer struct {
	config ProducerConfig
}

// NewProducer creates a Producer.
func NewProducer(config ProducerConfig) *Producer {
	return &Producer{config: config}
}

// Produce computes all session statistics for a finished transcript.
func (p *Producer) Produce(u catalog.Unit, ts transcript.Transcript, cov coverage.State, table facts.FactTable) SessionStats {
	stats := SessionStats{
		CoveredCount:   len(cov.CoveredIndices),
		TotalQuestions: len(u.Questions),
		AssertedFacts:  table.AssertedCount(),
	}
	for _, turn := range ts {
		switch turn.Role {
		case transcript.RoleStudent:
			stats.StudentTurns++
			if p.isQuestion(turn.Text) {
				stats.StudentQuestions++
			}
		case transcript.RolePartner:
			stats.PartnerTurns++
		}
	}
	if stats.TotalQuestions > 0 {
		stats.CoverageRatio = float64(stats.CoveredCount) / float64(stats.TotalQuestions)
	}
	stats.VocabUsed = vocabUsed(u, ts)
	return stats
}

// isQuestion reports whether a student turn reads as a question.
func (p *Producer) isQuestion(text string) bool {
	for _, m := range p.config.QuestionMarkers {
		if strings.Contains(text, m) {
			return true
		}
	}
	return false
}

// vocabUsed collects the unit's vocabulary words that appear in the
// student's turns, in catalog order, each word at most once.
func vocabUsed(u catalog.Unit, ts transcript.Transcript) []string {
	text := textnorm.Compact(ts.StudentText())
	if text == "" {
		return nil
	}
	var used []string
	for _, entry := range u.Vocab {
		if strings.Contains(text, entry.Hanzi) {
			used = append(used, entry.Hanzi)
		}
	}
	return used
}

// #endregion producer

// #region feedback

// FeedbackBrief renders the instruction context used to ask the
// collaborator for end-of-session feedback in English.
func FeedbackBrief(u catalog.Unit, stats SessionStats) string {
	var b strings.Builder
	b.WriteString("The role play has ended. Switch to English and give the student brief, encouraging feedback as their Mandarin practice partner.\n")
	fmt.Fprintf(&b, "Unit: %s.\n", u.Title)
	fmt.Fprintf(&b, "Session stats: %d student turns, %d of them questions; covered %d of %d target questions (%.0f%%); %d family facts stated.\n",
		stats.StudentTurns, stats.StudentQuestions, stats.CoveredCount, stats.TotalQuestions, stats.CoverageRatio*100, stats.AssertedFacts)
	if len(stats.VocabUsed) > 0 {
		fmt.Fprintf(&b, "Unit vocabulary they used: %s.\n", strings.Join(stats.VocabUsed, ", "))
	}
	b.WriteString("Mention 2-3 things they did well and at most 2 things to practice. Keep it under 120 words. Remind them to download their learning summary.")
	return b.String()
}

// #endregion feedback
