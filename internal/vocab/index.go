package vocab

import (
	"strings"

	"github.com/VicRabbit89/Mandarin-Chatbot1/internal/catalog"
)

// #region index

// cjkCutoff is the first code point treated as CJK when indexing; ASCII
// and other low-plane characters inside a vocab entry are skipped.
const cjkCutoff = 0x3400

// BuildIndex maps each CJK character of a unit's vocabulary to the words
// containing it, in vocabulary order.
func BuildIndex(u catalog.Unit) map[rune][]string {
	index := make(map[rune][]string)
	for _, v := range u.Vocab {
		hz := strings.TrimSpace(v.Hanzi)
		if hz == "" {
			continue
		}
		seen := make(map[rune]struct{})
		for _, ch := range hz {
			if ch < cjkCutoff {
				continue
			}
			if _, dup := seen[ch]; dup {
				continue
			}
			seen[ch] = struct{}{}
			index[ch] = append(index[ch], hz)
		}
	}
	return index
}

// SeedStore loads a unit's character index into the association store
// with the given initial weight.
func SeedStore(store *AssocStore, u catalog.Unit, weight float64) (int, error) {
	index := BuildIndex(u)
	count := 0
	for ch, words := range index {
		for _, w := range words {
			if err := store.AddEdge(string(ch), w, u.ID, weight); err != nil {
				return count, err
			}
			count++
		}
	}
	return count, nil
}

// #endregion index
