package family

import (
	"strings"

	"github.com/VicRabbit89/Mandarin-Chatbot1/internal/facts"
	"github.com/VicRabbit89/Mandarin-Chatbot1/internal/textnorm"
	"github.com/VicRabbit89/Mandarin-Chatbot1/internal/transcript"
)

// ResolveComposition refines an extracted fact table from size-plus-
// enumeration phrases like 我家有四口人爸爸妈妈姐姐和我. The extractor alone
// cannot infer absence from omission; the resolver can, but only when the
// stated size exactly equals parents(2) + self(1) + count of named sibling
// categories. A mismatched count is left as the extractor produced it.
//
// Standalone no-siblings declarations (没有兄弟姐妹, 我是独生子女) set all
// four sibling categories absent directly, overriding enumeration matching.
// An extractor negation is never overridden either way. Pet facts are never
// touched.

// #region resolve

// ResolveComposition returns a possibly refined copy of table.
func ResolveComposition(table facts.FactTable, ts transcript.Transcript, config ResolverConfig) facts.FactTable {
	out := table
	text := textnorm.Compact(ts.StudentText())
	if text == "" {
		return out
	}

	// Standalone declaration: all four sibling categories absent.
	for _, p := range config.NoSiblingPhrases {
		if strings.Contains(text, p) {
			for _, k := range facts.SiblingKeys {
				out.Set(k, facts.AssertedAbsent)
			}
			return out
		}
	}

	// Exactly one size claim; two conflicting sizes are ambiguous.
	size, ok := statedSize(text, config.SizeClaims)
	if !ok {
		return out
	}

	if !containsAll(text, config.AnchorTokens) {
		return out
	}

	// Distinct sibling categories mentioned anywhere in the student text.
	// Repeats of one term count once.
	var named []facts.Key
	for _, k := range facts.SiblingKeys {
		if strings.Contains(text, config.SiblingTerms[k]) {
			named = append(named, k)
		}
	}

	// parents(2) + self(1) + named siblings must equal the stated size.
	if size != 3+len(named) {
		return out
	}

	namedSet := make(map[facts.Key]bool, len(named))
	for _, k := range named {
		namedSet[k] = true
	}
	for _, k := range facts.SiblingKeys {
		if namedSet[k] {
			// Extractor negation wins over enumeration presence.
			if out.Get(k) != facts.AssertedAbsent {
				out.Set(k, facts.AssertedPresent)
			}
		} else {
			out.Set(k, facts.AssertedAbsent)
		}
	}
	return out
}

// #endregion resolve

// #region helpers

// statedSize returns the household size claimed in text. ok is false when
// no claim or more than one distinct claim is present.
func statedSize(text string, claims []SizeClaim) (int, bool) {
	size := 0
	for _, c := range claims {
		for _, tok := range c.Tokens {
			if strings.Contains(text, tok) {
				if size != 0 && size != c.Size {
					return 0, false
				}
				size = c.Size
				break
			}
		}
	}
	return size, size != 0
}

func containsAll(text string, tokens []string) bool {
	for _, tok := range tokens {
		if !strings.Contains(text, tok) {
			return false
		}
	}
	return true
}

// #endregion helpers
