package matching

import (
	"fmt"
	"math"
	"strings"

	"github.com/VicRabbit89/Mandarin-Chatbot1/internal/catalog"
	"github.com/VicRabbit89/Mandarin-Chatbot1/internal/vocab"
)

// #region errors

// ErrTooManyPairs is returned when a check request exceeds the pair cap.
var ErrTooManyPairs = fmt.Errorf("too many pairs (max %d)", maxPairsPerCheck)

// ErrNoPairs is returned when a check request carries no pairs.
var ErrNoPairs = fmt.Errorf("pairs are required")

// #endregion errors

// #region grade

// Grade checks the student's pairs against the unit vocabulary and
// enriches every miss with study material.
func Grade(u catalog.Unit, pairs []Pair, mode Mode) (GradeResult, error) {
	if len(pairs) == 0 {
		return GradeResult{}, ErrNoPairs
	}
	if len(pairs) > maxPairsPerCheck {
		return GradeResult{}, ErrTooManyPairs
	}

	idx := vocabIndex(u)
	truth := make(map[string]string, len(u.Vocab))
	for _, v := range u.Vocab {
		if mode == ModePinyin {
			truth[v.Hanzi] = v.Pinyin
		} else {
			truth[v.Hanzi] = v.English
		}
	}
	charToWords := vocab.BuildIndex(u)

	result := GradeResult{Mode: mode}
	for _, p := range pairs {
		expected := truth[p.Hanzi]
		item := ItemResult{Hanzi: p.Hanzi, Chosen: p.Chosen, Expected: expected}
		if expected == p.Chosen {
			result.Correct = append(result.Correct, item)
			continue
		}
		enrich(&item, u.ID, idx[p.Hanzi], charToWords, mode)
		result.Incorrect = append(result.Incorrect, item)
		result.Missed = append(result.Missed, p.Hanzi)
	}

	result.Accuracy = int(math.Round(100 * float64(len(result.Correct)) / float64(len(pairs))))
	if result.Accuracy >= 70 {
		result.NextSize = 6
	} else {
		result.NextSize = 4
	}
	result.Feedback = fmt.Sprintf("Accuracy: %d%%. %s", result.Accuracy, encouragement(result.Accuracy))
	return result, nil
}

// encouragement picks the tone line for an accuracy band.
func encouragement(accuracy int) string {
	switch {
	case accuracy >= 90:
		return "Fantastic work! 继续加油 (jìxù jiāyóu), keep it up!"
	case accuracy >= 70:
		return "Nice progress! 稍微复习一下就更棒了, a little review will make it perfect."
	default:
		return "Good effort! 别担心 (bié dānxīn), mistakes help you learn. Let's focus on the tricky ones."
	}
}

// #endregion grade

// #region enrich

// enrich fills the study fields of an incorrect item: pinyin and
// meaning, per-character radicals, association tips from vocabulary
// sharing a character, an explanation, and a sample sentence.
func enrich(item *ItemResult, unitID string, entry catalog.VocabEntry, charToWords map[rune][]string, mode Mode) {
	item.Pinyin = entry.Pinyin
	item.Meaning = entry.English
	switch item.Hanzi {
	case "她":
		if item.Pinyin != "" {
			item.PinyinDisplay = item.Pinyin + " (female)"
		}
	case "他":
		if item.Pinyin != "" {
			item.PinyinDisplay = item.Pinyin + " (male)"
		}
	}

	seen := make(map[rune]struct{})
	for _, ch := range item.Hanzi {
		rads := radicalsMap[ch]
		if len(rads) > 0 {
			item.Radicals = append(item.Radicals, rads...)
			item.RadicalsByChar = append(item.RadicalsByChar, CharRadicals{Char: string(ch), Radicals: rads})
		}
		if _, dup := seen[ch]; dup {
			continue
		}
		seen[ch] = struct{}{}
		var words []string
		for _, w := range charToWords[ch] {
			if w != item.Hanzi {
				words = append(words, w)
			}
		}
		if len(words) == 0 {
			continue
		}
		if len(words) > 3 {
			words = words[:3]
		}
		examples := strings.Join(words, ", ")
		if gloss, ok := sharedCharGloss[ch]; ok {
			item.AssociationTips = append(item.AssociationTips, fmt.Sprintf("%c appears in %s. Think '%s'.", ch, examples, gloss))
		} else {
			item.AssociationTips = append(item.AssociationTips, fmt.Sprintf("%c appears in %s.", ch, examples))
		}
	}

	if mode == ModePinyin {
		item.Explanation = fmt.Sprintf("Pinyin for %s is '%s'. You chose '%s'. Notice tone marks and initials/finals. Try saying it with the tones from the pinyin shown.",
			item.Hanzi, item.Expected, item.Chosen)
	} else {
		item.Explanation = fmt.Sprintf("Meaning for %s is '%s'. You chose '%s'. Focus on key radical(s) to recall meaning.",
			item.Hanzi, item.Expected, item.Chosen)
	}

	sample := GenerateSample(unitID, item.Hanzi, entry.Pinyin, entry.English)
	item.Sample = &sample
}

// #endregion enrich
