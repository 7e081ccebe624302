package matching

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/VicRabbit89/Mandarin-Chatbot1/internal/catalog"
)

func unit2() catalog.Unit {
	c := catalog.DefaultCatalog()
	u, err := c.GetUnit("unit2")
	if err != nil {
		panic(err)
	}
	return u
}

func TestDealSizeClamp(t *testing.T) {
	u := unit2()

	tests := []struct {
		name string
		size int
		want int
	}{
		{"default", 0, 6},
		{"below min", 1, 2},
		{"above max", 50, 12},
		{"in range", 4, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Deal(u, SelectionConfig{Size: tt.size}, rand.New(rand.NewSource(1)))
			if len(r.Left) != tt.want {
				t.Errorf("len(Left) = %d, want %d", len(r.Left), tt.want)
			}
			if len(r.Right) != len(r.Left) {
				t.Errorf("len(Right) = %d, want %d", len(r.Right), len(r.Left))
			}
		})
	}
}

func TestDealPrioritizesMissed(t *testing.T) {
	u := unit2()
	missed := []string{"哥哥", "妹妹"}

	r := Deal(u, SelectionConfig{Size: 6, Missed: missed}, rand.New(rand.NewSource(7)))

	if r.Left[0].Hanzi != "哥哥" || r.Left[1].Hanzi != "妹妹" {
		t.Errorf("missed items not prioritized, got %q, %q", r.Left[0].Hanzi, r.Left[1].Hanzi)
	}
}

func TestDealOnlyMissed(t *testing.T) {
	u := unit2()

	r := Deal(u, SelectionConfig{Size: 6, Missed: []string{"宠物"}, OnlyMissed: true}, rand.New(rand.NewSource(3)))
	if len(r.Left) != 1 || r.Left[0].Hanzi != "宠物" {
		t.Errorf("only-missed round = %v, want single 宠物", r.Left)
	}

	// With no missed items the round falls back to a random set.
	r = Deal(u, SelectionConfig{Size: 4, OnlyMissed: true}, rand.New(rand.NewSource(3)))
	if len(r.Left) != 4 {
		t.Errorf("fallback round size = %d, want 4", len(r.Left))
	}
}

func TestDealDeterministicUnderSeed(t *testing.T) {
	u := unit2()

	a := Deal(u, SelectionConfig{Size: 6}, rand.New(rand.NewSource(42)))
	b := Deal(u, SelectionConfig{Size: 6}, rand.New(rand.NewSource(42)))

	for i := range a.Left {
		if a.Left[i] != b.Left[i] {
			t.Fatalf("left[%d] differs under same seed: %v vs %v", i, a.Left[i], b.Left[i])
		}
	}
}

func TestDealKeyMapsLeftToEnglish(t *testing.T) {
	u := unit2()
	idx := map[string]string{}
	for _, v := range u.Vocab {
		idx[v.Hanzi] = v.English
	}

	r := Deal(u, SelectionConfig{Size: 6}, rand.New(rand.NewSource(9)))
	for i, card := range r.Left {
		want := idx[card.Hanzi]
		if r.Key[card.ID] != want {
			t.Errorf("key[%s] = %q, want %q (left %d)", card.ID, r.Key[card.ID], want, i)
		}
	}
}

func TestGradeAccuracyAndNextSize(t *testing.T) {
	u := unit2()
	idx := map[string]catalog.VocabEntry{}
	for _, v := range u.Vocab {
		idx[v.Hanzi] = v
	}

	pairs := []Pair{
		{Hanzi: "哥哥", Chosen: idx["哥哥"].English},
		{Hanzi: "妹妹", Chosen: idx["妹妹"].English},
		{Hanzi: "宠物", Chosen: "wrong"},
		{Hanzi: "猫", Chosen: idx["猫"].English},
	}

	got, err := Grade(u, pairs, ModeEnglish)
	if err != nil {
		t.Fatalf("Grade() error = %v", err)
	}
	if got.Accuracy != 75 {
		t.Errorf("Accuracy = %d, want 75", got.Accuracy)
	}
	if got.NextSize != 6 {
		t.Errorf("NextSize = %d, want 6", got.NextSize)
	}
	if len(got.Missed) != 1 || got.Missed[0] != "宠物" {
		t.Errorf("Missed = %v, want [宠物]", got.Missed)
	}
	if !strings.Contains(got.Feedback, "Accuracy: 75%") {
		t.Errorf("Feedback = %q, want accuracy line", got.Feedback)
	}
}

func TestGradeLowAccuracyShrinksNextRound(t *testing.T) {
	u := unit2()
	pairs := []Pair{
		{Hanzi: "哥哥", Chosen: "x"},
		{Hanzi: "妹妹", Chosen: "y"},
	}

	got, err := Grade(u, pairs, ModeEnglish)
	if err != nil {
		t.Fatalf("Grade() error = %v", err)
	}
	if got.Accuracy != 0 {
		t.Errorf("Accuracy = %d, want 0", got.Accuracy)
	}
	if got.NextSize != 4 {
		t.Errorf("NextSize = %d, want 4", got.NextSize)
	}
}

func TestGradeEnrichesIncorrect(t *testing.T) {
	u := unit2()

	got, err := Grade(u, []Pair{{Hanzi: "妈妈", Chosen: "wrong"}}, ModeEnglish)
	if err != nil {
		t.Fatalf("Grade() error = %v", err)
	}
	if len(got.Incorrect) != 1 {
		t.Fatalf("len(Incorrect) = %d, want 1", len(got.Incorrect))
	}
	item := got.Incorrect[0]
	if item.Pinyin == "" || item.Meaning == "" {
		t.Errorf("incorrect item missing pinyin/meaning: %+v", item)
	}
	if item.Sample == nil || !strings.Contains(item.Sample.Chinese, "妈妈") {
		t.Errorf("incorrect item missing sample sentence: %+v", item.Sample)
	}
	if !strings.Contains(item.Explanation, "Meaning for 妈妈") {
		t.Errorf("Explanation = %q", item.Explanation)
	}
}

func TestGradePinyinMode(t *testing.T) {
	u := unit2()
	var pinyin string
	for _, v := range u.Vocab {
		if v.Hanzi == "哥哥" {
			pinyin = v.Pinyin
		}
	}

	got, err := Grade(u, []Pair{{Hanzi: "哥哥", Chosen: pinyin}}, ModePinyin)
	if err != nil {
		t.Fatalf("Grade() error = %v", err)
	}
	if len(got.Correct) != 1 {
		t.Errorf("pinyin match not graded correct: %+v", got)
	}

	got, err = Grade(u, []Pair{{Hanzi: "哥哥", Chosen: "wrong"}}, ModePinyin)
	if err != nil {
		t.Fatalf("Grade() error = %v", err)
	}
	if !strings.Contains(got.Incorrect[0].Explanation, "tone marks") {
		t.Errorf("pinyin explanation = %q", got.Incorrect[0].Explanation)
	}
}

func TestGradeInputLimits(t *testing.T) {
	u := unit2()

	if _, err := Grade(u, nil, ModeEnglish); err != ErrNoPairs {
		t.Errorf("Grade(nil) error = %v, want ErrNoPairs", err)
	}

	many := make([]Pair, maxPairsPerCheck+1)
	for i := range many {
		many[i] = Pair{Hanzi: "猫", Chosen: "cat"}
	}
	if _, err := Grade(u, many, ModeEnglish); err != ErrTooManyPairs {
		t.Errorf("Grade(25 pairs) error = %v, want ErrTooManyPairs", err)
	}
}

func TestGenderedPinyinDisplay(t *testing.T) {
	u := catalog.Unit{ID: "unit1", Vocab: []catalog.VocabEntry{
		{Hanzi: "她", Pinyin: "tā", English: "she (pronoun)"},
		{Hanzi: "他", Pinyin: "tā", English: "he (pronoun)"},
	}}

	got, err := Grade(u, []Pair{{Hanzi: "她", Chosen: "x"}, {Hanzi: "他", Chosen: "y"}}, ModeEnglish)
	if err != nil {
		t.Fatalf("Grade() error = %v", err)
	}
	if got.Incorrect[0].PinyinDisplay != "tā (female)" {
		t.Errorf("她 display = %q, want %q", got.Incorrect[0].PinyinDisplay, "tā (female)")
	}
	if got.Incorrect[1].PinyinDisplay != "tā (male)" {
		t.Errorf("他 display = %q, want %q", got.Incorrect[1].PinyinDisplay, "tā (male)")
	}
}

func TestGenerateSampleTemplates(t *testing.T) {
	got := GenerateSample("unit2", "哥哥", "gēge", "older brother (noun)")
	if got.Chinese != "我有一个哥哥。" {
		t.Errorf("unit2 template Chinese = %q", got.Chinese)
	}
	if !strings.Contains(got.Pinyin, "gēge") {
		t.Errorf("unit2 template Pinyin = %q, want substituted pinyin", got.Pinyin)
	}

	got = GenerateSample("unit3", "学校", "xuéxiào", "school (noun)")
	if got.Chinese != "我在学校学习。" {
		t.Errorf("unit3 template Chinese = %q", got.Chinese)
	}

	// No template: falls back on the part-of-speech pattern.
	got = GenerateSample("unit1", "高", "gāo", "tall (adjective)")
	if got.Chinese != "他很高。" {
		t.Errorf("adjective fallback Chinese = %q", got.Chinese)
	}
}
