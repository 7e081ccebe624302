package matching

import "github.com/VicRabbit89/Mandarin-Chatbot1/internal/catalog"

// #region mode

// Mode selects which value side the student matches against.
type Mode string

const (
	ModeEnglish Mode = "english"
	ModePinyin  Mode = "pinyin"
)

// ParseMode maps free-form input to a Mode, defaulting to english.
func ParseMode(s string) Mode {
	if Mode(s) == ModePinyin {
		return ModePinyin
	}
	return ModeEnglish
}

// #endregion mode

// #region round

// Card is one side of a match pair presented to the student.
type Card struct {
	ID      string `json:"id"`
	Hanzi   string `json:"hanzi,omitempty"`
	Pinyin  string `json:"pinyin,omitempty"`
	English string `json:"english,omitempty"`
}

// Round is one dealt matching round. Left holds hanzi in selection
// order; Right holds the shuffled value cards.
type Round struct {
	UnitID string            `json:"unitId"`
	Left   []Card            `json:"left"`
	Right  []Card            `json:"right"`
	Key    map[string]string `json:"key"`
}

// SelectionConfig tunes round dealing.
type SelectionConfig struct {
	// Size is the requested round size before clamping.
	Size int
	// Missed lists hanzi to prioritize from earlier rounds.
	Missed []string
	// OnlyMissed restricts the round to previously missed items.
	OnlyMissed bool
}

const (
	minRoundSize     = 2
	maxRoundSize     = 12
	defaultRoundSize = 6
	maxPairsPerCheck = 24
)

// #endregion round

// #region grade

// Pair is one student answer: the hanzi they matched and the value
// they chose for it.
type Pair struct {
	Hanzi  string `json:"leftHanzi"`
	Chosen string `json:"rightValue"`
}

// SampleSentence is a short beginner sentence demonstrating a word.
type SampleSentence struct {
	Chinese string `json:"chinese"`
	Pinyin  string `json:"pinyin"`
	English string `json:"english"`
}

// CharRadicals lists the radicals of one character of a word.
type CharRadicals struct {
	Char     string   `json:"char"`
	Radicals []string `json:"radicals"`
}

// ItemResult is the graded outcome for one pair. Incorrect items carry
// the study enrichment fields; correct items carry only the expectation.
type ItemResult struct {
	Hanzi    string `json:"leftHanzi"`
	Chosen   string `json:"rightValue"`
	Expected string `json:"expected"`

	Pinyin          string          `json:"pinyin,omitempty"`
	PinyinDisplay   string          `json:"pinyinDisplay,omitempty"`
	Meaning         string          `json:"meaning,omitempty"`
	Radicals        []string        `json:"radicals,omitempty"`
	RadicalsByChar  []CharRadicals  `json:"radicalsByChar,omitempty"`
	AssociationTips []string        `json:"associationTips,omitempty"`
	Explanation     string          `json:"explanation,omitempty"`
	Sample          *SampleSentence `json:"sample,omitempty"`
}

// GradeResult is the full outcome of one checked round.
type GradeResult struct {
	Accuracy  int          `json:"accuracy"`
	Correct   []ItemResult `json:"correct"`
	Incorrect []ItemResult `json:"incorrect"`
	Missed    []string     `json:"missed"`
	NextSize  int          `json:"nextSize"`
	Feedback  string       `json:"feedback"`
	Mode      Mode         `json:"mode"`
}

// #endregion grade

// #region index

// vocabIndex maps hanzi to its catalog entry.
func vocabIndex(u catalog.Unit) map[string]catalog.VocabEntry {
	idx := make(map[string]catalog.VocabEntry, len(u.Vocab))
	for _, v := range u.Vocab {
		idx[v.Hanzi] = v
	}
	return idx
}

// #endregion index
