package facts

// #region presence

// Presence is the tri-state value of a learner self-disclosure fact.
type Presence string

const (
	Unknown         Presence = "unknown"
	AssertedPresent Presence = "asserted_present"
	AssertedAbsent  Presence = "asserted_absent"
)

// #endregion presence

// #region fact-key

// Key names one tracked fact. The set is closed; FactTable has one field
// per key so the compiler checks exhaustiveness instead of a runtime map.
type Key string

const (
	KeyOlderBrother   Key = "has_older_brother"
	KeyYoungerBrother Key = "has_younger_brother"
	KeyOlderSister    Key = "has_older_sister"
	KeyYoungerSister  Key = "has_younger_sister"
	KeyPet            Key = "has_pet"
)

// SiblingKeys lists the four sibling keys in canonical order.
var SiblingKeys = []Key{KeyOlderBrother, KeyYoungerBrother, KeyOlderSister, KeyYoungerSister}

// EntityToken returns the Chinese entity term a key refers to. Constraint
// filtering matches these tokens against question text.
func EntityToken(k Key) string {
	switch k {
	case KeyOlderBrother:
		return "哥哥"
	case KeyYoungerBrother:
		return "弟弟"
	case KeyOlderSister:
		return "姐姐"
	case KeyYoungerSister:
		return "妹妹"
	case KeyPet:
		return "宠物"
	}
	return ""
}

// #endregion fact-key

// #region fact-table

// FactTable is a fixed-shape tri-state record, one field per tracked fact.
// The zero value is not usable; construct with NewFactTable.
type FactTable struct {
	OlderBrother   Presence
	YoungerBrother Presence
	OlderSister    Presence
	YoungerSister  Presence
	Pet            Presence
}

// NewFactTable returns a table with every fact Unknown.
func NewFactTable() FactTable {
	return FactTable{
		OlderBrother:   Unknown,
		YoungerBrother: Unknown,
		OlderSister:    Unknown,
		YoungerSister:  Unknown,
		Pet:            Unknown,
	}
}

// Get reads the value for a key.
func (t FactTable) Get(k Key) Presence {
	switch k {
	case KeyOlderBrother:
		return t.OlderBrother
	case KeyYoungerBrother:
		return t.YoungerBrother
	case KeyOlderSister:
		return t.OlderSister
	case KeyYoungerSister:
		return t.YoungerSister
	case KeyPet:
		return t.Pet
	}
	return Unknown
}

// Set writes the value for a key.
func (t *FactTable) Set(k Key, v Presence) {
	switch k {
	case KeyOlderBrother:
		t.OlderBrother = v
	case KeyYoungerBrother:
		t.YoungerBrother = v
	case KeyOlderSister:
		t.OlderSister = v
	case KeyYoungerSister:
		t.YoungerSister = v
	case KeyPet:
		t.Pet = v
	}
}

// AbsentKeys returns every key currently asserted absent, in canonical order.
func (t FactTable) AbsentKeys() []Key {
	keys := []Key{KeyOlderBrother, KeyYoungerBrother, KeyOlderSister, KeyYoungerSister, KeyPet}
	var out []Key
	for _, k := range keys {
		if t.Get(k) == AssertedAbsent {
			out = append(out, k)
		}
	}
	return out
}

// AllSiblingsAbsent reports whether all four sibling keys are asserted absent.
func (t FactTable) AllSiblingsAbsent() bool {
	for _, k := range SiblingKeys {
		if t.Get(k) != AssertedAbsent {
			return false
		}
	}
	return true
}

// AssertedCount returns how many facts are resolved either way.
func (t FactTable) AssertedCount() int {
	keys := []Key{KeyOlderBrother, KeyYoungerBrother, KeyOlderSister, KeyYoungerSister, KeyPet}
	n := 0
	for _, k := range keys {
		if t.Get(k) != Unknown {
			n++
		}
	}
	return n
}

// #endregion fact-table

// #region rules

// Rule is one (pattern, key, value) entry of the heuristic tables. The
// table order is the documented precedence order.
type Rule struct {
	Pattern string
	Key     Key
	Value   Presence
}

// ExtractorConfig holds the ordered pattern tables. Negations evaluate
// before affirmations, and a negation match wins for its key even when an
// affirmation also matches somewhere in the transcript.
type ExtractorConfig struct {
	Negations    []Rule
	Affirmations []Rule
}

// DefaultExtractorConfig returns the built-in pattern tables.
func DefaultExtractorConfig() ExtractorConfig {
	return ExtractorConfig{
		Negations: []Rule{
			{Pattern: "我没有哥哥", Key: KeyOlderBrother, Value: AssertedAbsent},
			{Pattern: "没有哥哥", Key: KeyOlderBrother, Value: AssertedAbsent},
			{Pattern: "我没有弟弟", Key: KeyYoungerBrother, Value: AssertedAbsent},
			{Pattern: "没有弟弟", Key: KeyYoungerBrother, Value: AssertedAbsent},
			{Pattern: "我没有姐姐", Key: KeyOlderSister, Value: AssertedAbsent},
			{Pattern: "没有姐姐", Key: KeyOlderSister, Value: AssertedAbsent},
			{Pattern: "我没有妹妹", Key: KeyYoungerSister, Value: AssertedAbsent},
			{Pattern: "没有妹妹", Key: KeyYoungerSister, Value: AssertedAbsent},
			{Pattern: "我没有宠物", Key: KeyPet, Value: AssertedAbsent},
			{Pattern: "没有宠物", Key: KeyPet, Value: AssertedAbsent},
			{Pattern: "没宠物", Key: KeyPet, Value: AssertedAbsent},
		},
		Affirmations: []Rule{
			{Pattern: "我有哥哥", Key: KeyOlderBrother, Value: AssertedPresent},
			{Pattern: "有哥哥", Key: KeyOlderBrother, Value: AssertedPresent},
			{Pattern: "我有弟弟", Key: KeyYoungerBrother, Value: AssertedPresent},
			{Pattern: "有弟弟", Key: KeyYoungerBrother, Value: AssertedPresent},
			{Pattern: "我有姐姐", Key: KeyOlderSister, Value: AssertedPresent},
			{Pattern: "有姐姐", Key: KeyOlderSister, Value: AssertedPresent},
			{Pattern: "我有妹妹", Key: KeyYoungerSister, Value: AssertedPresent},
			{Pattern: "有妹妹", Key: KeyYoungerSister, Value: AssertedPresent},
			{Pattern: "我有宠物", Key: KeyPet, Value: AssertedPresent},
			{Pattern: "有宠物", Key: KeyPet, Value: AssertedPresent},
		},
	}
}

// #endregion rules
