package partner

import (
	"context"

	"github.com/VicRabbit89/Mandarin-Chatbot1/internal/transcript"
)

// #region engine

// Engine produces the language partner's reply for one turn. brief is
// the full instruction context; history is every prior turn.
type Engine interface {
	Generate(ctx context.Context, brief string, history transcript.Transcript, studentMsg string) (string, error)
}

// #endregion engine

// #region config

// Config holds generation settings for the Gemini engine.
type Config struct {
	APIKey          string
	Model           string
	Temperature     float32
	MaxOutputTokens int32
}

// DefaultConfig returns the standard generation settings.
func DefaultConfig() Config {
	return Config{
		Model:           "gemini-1.5-flash",
		Temperature:     0.6,
		MaxOutputTokens: 300,
	}
}

// #endregion config
