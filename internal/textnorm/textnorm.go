package textnorm

import (
	"strings"
)

// #region collapse-space

// CollapseSpace normalizes learner text before pattern matching: full-width
// spaces (U+3000) and newlines become ASCII spaces, surrounding space is
// trimmed. Matching downstream is substring-based, so internal spacing is
// kept as single characters rather than removed.
func CollapseSpace(text string) string {
	t := strings.ReplaceAll(text, "　", " ")
	t = strings.ReplaceAll(t, "\n", " ")
	t = strings.ReplaceAll(t, "\r", " ")
	return strings.TrimSpace(t)
}

// Compact collapses and then removes ASCII spaces entirely. Heuristic
// pattern tables match against compacted text so that stray spacing inside
// a phrase (我 没有 哥哥) still matches the spaceless pattern.
func Compact(text string) string {
	return strings.ReplaceAll(CollapseSpace(text), " ", "")
}

// #endregion collapse-space

// #region apologies

// NormalizeApologies rewrites 抱歉 (and modified forms like 很抱歉) to 对不起.
// The partner persona apologizes with 对不起 only.
func NormalizeApologies(text string) string {
	return strings.ReplaceAll(text, "抱歉", "对不起")
}

// #endregion apologies

// #region telephony

// telephonyDigits maps ASCII digits to Chinese telephony reading. 1 reads as
// 幺 (yāo), the standard disambiguation when reciting numbers aloud.
var telephonyDigits = map[rune]string{
	'0': "零", '1': "幺", '2': "二", '3': "三", '4': "四",
	'5': "五", '6': "六", '7': "七", '8': "八", '9': "九",
}

// minTelephonyRun is the shortest digit run converted; shorter runs (ages,
// grades, times) are left as digits.
const minTelephonyRun = 6

// TelephonyDigits converts runs of 6+ ASCII digits to space-separated
// per-digit Chinese telephony reading, for text headed to speech synthesis.
func TelephonyDigits(text string) string {
	var out strings.Builder
	runes := []rune(text)
	i := 0
	for i < len(runes) {
		if runes[i] < '0' || runes[i] > '9' {
			out.WriteRune(runes[i])
			i++
			continue
		}
		j := i
		for j < len(runes) && runes[j] >= '0' && runes[j] <= '9' {
			j++
		}
		if j-i >= minTelephonyRun {
			for k := i; k < j; k++ {
				if k > i {
					out.WriteByte(' ')
				}
				out.WriteString(telephonyDigits[runes[k]])
			}
		} else {
			out.WriteString(string(runes[i:j]))
		}
		i = j
	}
	return out.String()
}

// #endregion telephony
