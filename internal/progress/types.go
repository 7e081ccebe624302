package progress

// #region types

// SessionStats summarizes one role-play session for end-of-session feedback.
type SessionStats struct {
	StudentTurns     int
	PartnerTurns     int
	StudentQuestions int
	CoveredCount     int
	TotalQuestions   int
	CoverageRatio    float64
	AssertedFacts    int
	VocabUsed        []string
}

// ProducerConfig tunes stat production.
type ProducerConfig struct {
	// QuestionMarkers are tokens whose presence marks a student turn
	// as a question.
	QuestionMarkers []string
}

// DefaultProducerConfig returns the standard production settings.
func DefaultProducerConfig() ProducerConfig {
	return ProducerConfig{
		QuestionMarkers: []string{"？", "?", "吗", "呢", "几", "什么", "谁", "哪", "多少", "多大"},
	}
}

// #endregion types
