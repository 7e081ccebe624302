package catalog

// #region question

// Question is one target question of a unit: the literal Chinese text
// plus the keyword tokens treated as coverage evidence.
type Question struct {
	Text     string   `yaml:"text" json:"text"`
	Keywords []string `yaml:"keywords" json:"keywords"`
}

// #endregion question

// #region vocab

// VocabEntry is one unit vocabulary word.
type VocabEntry struct {
	Hanzi   string `yaml:"hanzi" json:"hanzi"`
	Pinyin  string `yaml:"pinyin" json:"pinyin"`
	English string `yaml:"english" json:"english"`
}

// #endregion vocab

// #region unit

// Unit is a lesson module. Loaded once at startup, read-only, shared by
// all calls, never mutated. Question order is significant.
type Unit struct {
	ID            string       `yaml:"id" json:"id"`
	Title         string       `yaml:"title" json:"title"`
	Objectives    []string     `yaml:"objectives" json:"objectives"`
	Questions     []Question   `yaml:"questions" json:"questions"`
	Vocab         []VocabEntry `yaml:"vocab" json:"vocab"`
	FirstQuestion string       `yaml:"first_question" json:"first_question"`
	// Predetermined are the only questions the partner may initiate itself.
	Predetermined []string `yaml:"predetermined" json:"predetermined"`
	PersonaNotes  string   `yaml:"persona_notes" json:"persona_notes"`
}

// #endregion unit

// #region unit-summary

// UnitSummary is the listing shape returned by ListUnits.
type UnitSummary struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Objectives []string `json:"objectives"`
}

// #endregion unit-summary
