package transcript

import (
	"strings"

	"github.com/VicRabbit89/Mandarin-Chatbot1/internal/textnorm"
)

// #region parse

// roleAliases maps accepted wire roles onto the two engine roles. Callers
// built against chat-completion APIs send user/assistant.
var roleAliases = map[string]Role{
	"student":   RoleStudent,
	"user":      RoleStudent,
	"partner":   RolePartner,
	"assistant": RolePartner,
}

// ParseTurns converts raw caller input into a Transcript, skipping malformed
// entries (unknown role, empty text) instead of failing.
func ParseTurns(raw []RawTurn) Transcript {
	ts := make(Transcript, 0, len(raw))
	for _, r := range raw {
		role, ok := roleAliases[strings.ToLower(strings.TrimSpace(r.Role))]
		if !ok {
			continue
		}
		text := strings.TrimSpace(r.Text)
		if text == "" {
			continue
		}
		ts = append(ts, Turn{Role: role, Text: text})
	}
	return ts
}

// #endregion parse

// #region text-views

// JoinedText concatenates every turn's normalized text, both roles.
// Coverage matching looks at the whole conversation.
func (ts Transcript) JoinedText() string {
	lines := make([]string, 0, len(ts))
	for _, t := range ts {
		if n := textnorm.CollapseSpace(t.Text); n != "" {
			lines = append(lines, n)
		}
	}
	return strings.Join(lines, " ")
}

// StudentText concatenates normalized student-authored text only. Partner
// turns are not authoritative about the learner's real-world facts.
func (ts Transcript) StudentText() string {
	lines := make([]string, 0, len(ts))
	for _, t := range ts {
		if t.Role != RoleStudent {
			continue
		}
		if n := textnorm.CollapseSpace(t.Text); n != "" {
			lines = append(lines, n)
		}
	}
	return strings.Join(lines, " ")
}

// LastStudentText returns the normalized text of the most recent student
// turn, or "" when the student has not spoken.
func (ts Transcript) LastStudentText() string {
	for i := len(ts) - 1; i >= 0; i-- {
		if ts[i].Role == RoleStudent {
			return textnorm.CollapseSpace(ts[i].Text)
		}
	}
	return ""
}

// #endregion text-views
