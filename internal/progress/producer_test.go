package progress

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/VicRabbit89/Mandarin-Chatbot1/internal/catalog"
	"github.com/VicRabbit89/Mandarin-Chatbot1/internal/coverage"
	"github.com/VicRabbit89/Mandarin-Chatbot1/internal/facts"
	"github.com/VicRabbit89/Mandarin-Chatbot1/internal/transcript"
)

func unit2() catalog.Unit {
	c := catalog.DefaultCatalog()
	u, err := c.GetUnit("unit2")
	if err != nil {
		panic(err)
	}
	return u
}

func TestProduceCountsTurnsAndQuestions(t *testing.T) {
	u := unit2()
	ts := transcript.Transcript{
		{Role: transcript.RoleStudent, Text: "你家有几口人？"},
		{Role: transcript.RolePartner, Text: "我家有五口人。"},
		{Role: transcript.RoleStudent, Text: "我家有四口人。"},
		{Role: transcript.RolePartner, Text: "好的。"},
		{Role: transcript.RoleStudent, Text: "你有宠物吗？"},
	}
	cov := coverage.ComputeCoverage(u.Questions, ts)
	table := facts.ExtractFacts(ts, facts.DefaultExtractorConfig())

	p := NewProducer(DefaultProducerConfig())
	got := p.Produce(u, ts, cov, table)

	if got.StudentTurns != 3 {
		t.Errorf("StudentTurns = %d, want 3", got.StudentTurns)
	}
	if got.PartnerTurns != 2 {
		t.Errorf("PartnerTurns = %d, want 2", got.PartnerTurns)
	}
	if got.StudentQuestions != 2 {
		t.Errorf("StudentQuestions = %d, want 2", got.StudentQuestions)
	}
	if got.TotalQuestions != len(u.Questions) {
		t.Errorf("TotalQuestions = %d, want %d", got.TotalQuestions, len(u.Questions))
	}
	if got.CoveredCount == 0 {
		t.Errorf("CoveredCount = 0, want > 0")
	}
	wantRatio := float64(got.CoveredCount) / float64(got.TotalQuestions)
	if got.CoverageRatio != wantRatio {
		t.Errorf("CoverageRatio = %v, want %v", got.CoverageRatio, wantRatio)
	}
}

func TestProduceVocabUsed(t *testing.T) {
	u := unit2()
	ts := transcript.Transcript{
		{Role: transcript.RoleStudent, Text: "我没有哥哥，我有一只宠物。"},
	}
	cov := coverage.ComputeCoverage(u.Questions, ts)
	table := facts.ExtractFacts(ts, facts.DefaultExtractorConfig())

	p := NewProducer(DefaultProducerConfig())
	got := p.Produce(u, ts, cov, table)

	found := false
	for _, w := range got.VocabUsed {
		if w == "哥哥" {
			found = true
		}
	}
	if !found {
		t.Errorf("VocabUsed = %v, want to include 哥哥", got.VocabUsed)
	}
	if got.AssertedFacts == 0 {
		t.Errorf("AssertedFacts = 0, want > 0")
	}
}

func TestProduceEmptyTranscript(t *testing.T) {
	u := unit2()
	var ts transcript.Transcript
	cov := coverage.ComputeCoverage(u.Questions, ts)
	table := facts.ExtractFacts(ts, facts.DefaultExtractorConfig())

	p := NewProducer(DefaultProducerConfig())
	got := p.Produce(u, ts, cov, table)

	want := SessionStats{TotalQuestions: len(u.Questions)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Produce() empty transcript mismatch (-want +got):\n%s", diff)
	}
}

func TestFeedbackBrief(t *testing.T) {
	u := unit2()
	stats := SessionStats{
		StudentTurns:     6,
		StudentQuestions: 4,
		CoveredCount:     4,
		TotalQuestions:   12,
		CoverageRatio:    4.0 / 12.0,
		AssertedFacts:    2,
		VocabUsed:        []string{"哥哥", "宠物"},
	}

	got := FeedbackBrief(u, stats)
	for _, want := range []string{"English", "4 of 12", "哥哥, 宠物", u.Title} {
		if !strings.Contains(got, want) {
			t.Errorf("FeedbackBrief missing %q, got:\n%s", want, got)
		}
	}
}
