package transcript

// #region role

// Role identifies who authored a turn.
type Role string

const (
	RoleStudent Role = "student"
	RolePartner Role = "partner"
)

// #endregion role

// #region turn

// Turn is one utterance in a conversation.
type Turn struct {
	Role Role
	Text string
}

// Transcript is the complete ordered history supplied on every call.
// The engine never owns, diffs, or persists it.
type Transcript []Turn

// #endregion turn

// #region raw-turn

// RawTurn is the wire shape a caller hands in before validation. Entries
// with an unknown role or empty text are skipped, never fatal.
type RawTurn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// #endregion raw-turn
