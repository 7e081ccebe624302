package family

import "github.com/VicRabbit89/Mandarin-Chatbot1/internal/facts"

// #region size-claim

// SizeClaim pairs a stated household size with the tokens that state it.
type SizeClaim struct {
	Size   int
	Tokens []string
}

// #endregion size-claim

// #region resolver-config

// ResolverConfig holds the closed enumeration the resolver recognizes:
// household sizes three through six, the parents-and-self anchor, the four
// sibling terms, and the standalone no-siblings declarations.
type ResolverConfig struct {
	SizeClaims       []SizeClaim
	AnchorTokens     []string // all must be present: parents and self
	SiblingTerms     map[facts.Key]string
	NoSiblingPhrases []string
}

// DefaultResolverConfig returns the built-in enumeration tables.
func DefaultResolverConfig() ResolverConfig {
	return ResolverConfig{
		SizeClaims: []SizeClaim{
			{Size: 3, Tokens: []string{"三口人", "三个人"}},
			{Size: 4, Tokens: []string{"四口人", "四个人"}},
			{Size: 5, Tokens: []string{"五口人", "五个人"}},
			{Size: 6, Tokens: []string{"六口人", "六个人"}},
		},
		AnchorTokens: []string{"爸爸", "妈妈", "我"},
		SiblingTerms: map[facts.Key]string{
			facts.KeyOlderBrother:   "哥哥",
			facts.KeyYoungerBrother: "弟弟",
			facts.KeyOlderSister:    "姐姐",
			facts.KeyYoungerSister:  "妹妹",
		},
		NoSiblingPhrases: []string{
			"没有兄弟姐妹",
			"没兄弟姐妹",
			"我是独生子女",
		},
	}
}

// #endregion resolver-config
