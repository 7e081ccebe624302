// Package matching implements the vocabulary matching activity: dealing
// rounds from a unit's vocab list and grading the student's pairs with
// study enrichment for the misses.
package matching

import (
	"fmt"
	"math/rand"

	"github.com/VicRabbit89/Mandarin-Chatbot1/internal/catalog"
)

// #region deal

// Deal builds one matching round from the unit vocabulary. Previously
// missed items come first; the rest is shuffled with rng so rounds are
// reproducible under a fixed seed.
func Deal(u catalog.Unit, config SelectionConfig, rng *rand.Rand) Round {
	size := config.Size
	if size == 0 {
		size = defaultRoundSize
	}
	if size < minRoundSize {
		size = minRoundSize
	}
	if size > maxRoundSize {
		size = maxRoundSize
	}

	idx := vocabIndex(u)
	missedSet := make(map[string]struct{}, len(config.Missed))
	var prioritized []catalog.VocabEntry
	for _, h := range config.Missed {
		missedSet[h] = struct{}{}
		if v, ok := idx[h]; ok {
			prioritized = append(prioritized, v)
		}
	}
	var others []catalog.VocabEntry
	for _, v := range u.Vocab {
		if _, ok := missedSet[v.Hanzi]; !ok {
			others = append(others, v)
		}
	}
	rng.Shuffle(len(others), func(i, j int) { others[i], others[j] = others[j], others[i] })

	var items []catalog.VocabEntry
	if config.OnlyMissed {
		items = prioritized
		if len(items) == 0 && len(others) > 0 {
			n := size
			if n > len(others) {
				n = len(others)
			}
			items = others[:n]
		}
	} else {
		items = append(append([]catalog.VocabEntry{}, prioritized...), others...)
		if len(items) > size {
			items = items[:size]
		}
	}

	round := Round{
		UnitID: u.ID,
		Left:   make([]Card, len(items)),
		Right:  make([]Card, len(items)),
		Key:    make(map[string]string, len(items)),
	}
	for i, v := range items {
		leftID := fmt.Sprintf("L%d", i)
		round.Left[i] = Card{ID: leftID, Hanzi: v.Hanzi}
		round.Right[i] = Card{ID: fmt.Sprintf("R%d", i), Hanzi: v.Hanzi, Pinyin: v.Pinyin, English: v.English}
		round.Key[leftID] = v.English
	}
	rng.Shuffle(len(round.Right), func(i, j int) { round.Right[i], round.Right[j] = round.Right[j], round.Right[i] })
	return round
}

// #endregion deal
