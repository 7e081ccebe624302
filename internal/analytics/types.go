package analytics

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"strconv"
	"time"
)

// #region kinds

// EventKind names one recorded interaction type.
type EventKind string

const (
	EventSessionStart    EventKind = "session_start"
	EventRoleplayTurn    EventKind = "roleplay_turn"
	EventMatchingAttempt EventKind = "matching_attempt"
	EventFeedback        EventKind = "feedback"
	EventSessionEnd      EventKind = "session_end"
)

// #endregion kinds

// #region records

// Session is one recorded practice session.
type Session struct {
	ID        string
	UnitID    string
	UserHash  string
	StartedAt time.Time
	EndedAt   time.Time
}

// Event is one recorded interaction within a session.
type Event struct {
	ID        int64
	SessionID string
	Kind      EventKind
	Payload   string
	CreatedAt time.Time
}

// ExportEntry is the JSONL line shape written by ExportJSONL.
type ExportEntry struct {
	Timestamp string          `json:"timestamp"`
	EventType EventKind       `json:"event_type"`
	UserID    string          `json:"user_id"`
	SessionID string          `json:"session_id"`
	Data      json.RawMessage `json:"data"`
}

// #endregion records

// #region config

// Config controls whether and how densely interactions are recorded.
type Config struct {
	Enabled    bool
	SampleRate float64
}

// DefaultConfig returns recording on at full sample rate.
func DefaultConfig() Config {
	return Config{Enabled: true, SampleRate: 1.0}
}

// ConfigFromEnv reads ANALYTICS_ENABLED and ANALYTICS_SAMPLE_RATE,
// falling back to the defaults on absent or unparseable values.
func ConfigFromEnv() Config {
	config := DefaultConfig()
	if v := os.Getenv("ANALYTICS_ENABLED"); v != "" {
		config.Enabled = v == "true" || v == "1"
	}
	if v := os.Getenv("ANALYTICS_SAMPLE_RATE"); v != "" {
		if rate, err := strconv.ParseFloat(v, 64); err == nil && rate >= 0 && rate <= 1 {
			config.SampleRate = rate
		}
	}
	return config
}

// #endregion config

// #region privacy

const maxStoredTextLen = 100

// TruncateText caps stored student text at 100 runes.
func TruncateText(text string) string {
	runes := []rune(text)
	if len(runes) <= maxStoredTextLen {
		return text
	}
	return string(runes[:maxStoredTextLen]) + "…"
}

// ShortHash returns a 12-hex-digit identifier hash, used instead of any
// raw user identifier.
func ShortHash(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])[:12]
}

// #endregion privacy
