package coverage

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/VicRabbit89/Mandarin-Chatbot1/internal/catalog"
	"github.com/VicRabbit89/Mandarin-Chatbot1/internal/transcript"
)

func unit2Questions(t *testing.T) []catalog.Question {
	t.Helper()
	qs, err := catalog.DefaultCatalog().GetQuestions("unit2")
	if err != nil {
		t.Fatal(err)
	}
	return qs
}

func TestEmptyTranscript(t *testing.T) {
	qs := unit2Questions(t)

	s := ComputeCoverage(qs, nil)

	if s.NextIndex != 0 {
		t.Errorf("next index: got %d, want 0", s.NextIndex)
	}
	if s.CoveredCount() != 0 {
		t.Errorf("covered: got %d, want 0", s.CoveredCount())
	}
	if len(s.Remaining) != len(qs) {
		t.Errorf("remaining: got %d, want full catalog %d", len(s.Remaining), len(qs))
	}
}

func TestKeywordMarksCovered(t *testing.T) {
	qs := unit2Questions(t)
	ts := transcript.Transcript{
		{Role: transcript.RoleStudent, Text: "你是哪国人？"},
		{Role: transcript.RolePartner, Text: "我是中国人。"},
	}

	s := ComputeCoverage(qs, ts)

	if !s.Covered[0] {
		t.Error("question 0 should be covered by 哪国")
	}
	if s.NextIndex != 1 {
		t.Errorf("next index: got %d, want 1", s.NextIndex)
	}
}

func TestBothRolesCount(t *testing.T) {
	qs := unit2Questions(t)
	// Only the partner mentioned pets; coverage still counts it.
	ts := transcript.Transcript{
		{Role: transcript.RolePartner, Text: "我有一只猫。"},
	}

	s := ComputeCoverage(qs, ts)

	if !s.Covered[6] {
		t.Error("pet question should be covered by partner mention of 猫")
	}
}

func TestAllCoveredClampsNextIndex(t *testing.T) {
	qs := []catalog.Question{
		{Text: "你好吗？", Keywords: []string{"你好"}},
		{Text: "你高吗？", Keywords: []string{"高"}},
	}
	ts := transcript.Transcript{
		{Role: transcript.RoleStudent, Text: "你好！你很高。"},
	}

	s := ComputeCoverage(qs, ts)

	if s.NextIndex != 1 {
		t.Errorf("next index must clamp to last: got %d, want 1", s.NextIndex)
	}
	if len(s.Remaining) != 0 {
		t.Errorf("remaining should be empty, got %d", len(s.Remaining))
	}
}

func TestNextIndexAlwaysValid(t *testing.T) {
	qs := unit2Questions(t)
	transcripts := []transcript.Transcript{
		nil,
		{{Role: transcript.RoleStudent, Text: "你家有几口人？"}},
		{{Role: transcript.RoleStudent, Text: "哪国 几口人 哥哥 弟弟 姐姐 妹妹 宠物 爸爸 岁 老师 在哪儿 几年级"}},
	}
	for i, ts := range transcripts {
		s := ComputeCoverage(qs, ts)
		if s.NextIndex < 0 || s.NextIndex >= len(qs) {
			t.Errorf("case %d: next index %d out of range", i, s.NextIndex)
		}
	}
}

func TestIdempotent(t *testing.T) {
	qs := unit2Questions(t)
	ts := transcript.Transcript{
		{Role: transcript.RolePartner, Text: "你家有几口人？"},
		{Role: transcript.RoleStudent, Text: "我家有四口人，爸爸妈妈姐姐和我。"},
	}

	first := ComputeCoverage(qs, ts)
	second := ComputeCoverage(qs, ts)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("coverage not idempotent (-first +second):\n%s", diff)
	}
}
