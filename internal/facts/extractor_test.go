package facts

import (
	"testing"

	"github.com/VicRabbit89/Mandarin-Chatbot1/internal/transcript"
)

func studentTurns(texts ...string) transcript.Transcript {
	ts := make(transcript.Transcript, 0, len(texts))
	for _, txt := range texts {
		ts = append(ts, transcript.Turn{Role: transcript.RoleStudent, Text: txt})
	}
	return ts
}

func TestExtractFactsTable(t *testing.T) {
	tests := []struct {
		name string
		ts   transcript.Transcript
		key  Key
		want Presence
	}{
		{"negation full form", studentTurns("我没有哥哥"), KeyOlderBrother, AssertedAbsent},
		{"negation short form", studentTurns("没有妹妹"), KeyYoungerSister, AssertedAbsent},
		{"affirmation full form", studentTurns("我有姐姐"), KeyOlderSister, AssertedPresent},
		{"affirmation short form", studentTurns("有弟弟"), KeyYoungerBrother, AssertedPresent},
		{"pet negation elided", studentTurns("我没宠物"), KeyPet, AssertedAbsent},
		{"pet affirmation", studentTurns("我有宠物，是一只猫"), KeyPet, AssertedPresent},
		{"no mention stays unknown", studentTurns("我是美国人"), KeyOlderBrother, Unknown},
		{"full-width space normalized", studentTurns("我　没有　哥哥"), KeyOlderBrother, AssertedAbsent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := ExtractFacts(tt.ts, DefaultExtractorConfig())
			if got := table.Get(tt.key); got != tt.want {
				t.Errorf("%s: got %s, want %s", tt.key, got, tt.want)
			}
		})
	}
}

func TestNegationBeatsAffirmation(t *testing.T) {
	// Denial in one turn, generic possession wording later: negation wins
	// regardless of turn order.
	orders := []transcript.Transcript{
		studentTurns("我没有哥哥", "我有哥哥"),
		studentTurns("我有哥哥", "我没有哥哥"),
		studentTurns("我没有哥哥，可是我有姐姐"),
	}
	for i, ts := range orders {
		table := ExtractFacts(ts, DefaultExtractorConfig())
		if table.OlderBrother != AssertedAbsent {
			t.Errorf("case %d: got %s, want asserted_absent", i, table.OlderBrother)
		}
	}
}

func TestExtractFactsIgnoresPartnerTurns(t *testing.T) {
	ts := transcript.Transcript{
		{Role: transcript.RolePartner, Text: "我有哥哥和妹妹。"},
		{Role: transcript.RoleStudent, Text: "你好！"},
	}

	table := ExtractFacts(ts, DefaultExtractorConfig())
	if table.OlderBrother != Unknown || table.YoungerSister != Unknown {
		t.Errorf("partner turns must not set facts: %+v", table)
	}
}

func TestExtractFactsEmptyTranscript(t *testing.T) {
	table := ExtractFacts(nil, DefaultExtractorConfig())
	want := NewFactTable()
	if table != want {
		t.Errorf("got %+v, want all unknown", table)
	}
}

func TestFactTableHelpers(t *testing.T) {
	table := NewFactTable()
	table.Set(KeyOlderBrother, AssertedAbsent)
	table.Set(KeyPet, AssertedAbsent)
	table.Set(KeyOlderSister, AssertedPresent)

	absent := table.AbsentKeys()
	if len(absent) != 2 {
		t.Fatalf("expected 2 absent keys, got %d", len(absent))
	}
	if absent[0] != KeyOlderBrother || absent[1] != KeyPet {
		t.Errorf("absent keys in wrong order: %v", absent)
	}
	if table.AllSiblingsAbsent() {
		t.Error("not all siblings are absent")
	}
	if got := table.AssertedCount(); got != 3 {
		t.Errorf("asserted count: got %d, want 3", got)
	}
}
