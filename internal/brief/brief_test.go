package brief

import (
	"strings"
	"testing"

	"github.com/VicRabbit89/Mandarin-Chatbot1/internal/catalog"
	"github.com/VicRabbit89/Mandarin-Chatbot1/internal/orchestrator"
)

func unit2() catalog.Unit {
	c := catalog.DefaultCatalog()
	u, err := c.GetUnit("unit2")
	if err != nil {
		panic(err)
	}
	return u
}

func TestIsFarewell(t *testing.T) {
	config := DefaultFarewellConfig()

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"zaijian", "好的，再见！", true},
		{"baibai", "拜拜", true},
		{"english bye", "ok bye", true},
		{"goodbye word", "goodbye teacher", true},
		{"plain answer", "我家有四口人", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsFarewell(tt.text, config); got != tt.want {
				t.Errorf("IsFarewell(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestRenderBriefIncludesProhibitions(t *testing.T) {
	u := unit2()
	d := orchestrator.Directive{
		UnitID:         "unit2",
		Remaining:      u.Questions[:3],
		NextIndex:      0,
		Prohibited:     []string{"哥哥", "妹妹"},
		CoveredIndices: []int{},
	}

	got := RenderBrief(u, d)

	if !strings.Contains(got, "PROHIBITED") {
		t.Fatalf("brief missing prohibition block:\n%s", got)
	}
	if !strings.Contains(got, "哥哥、妹妹") {
		t.Errorf("brief missing prohibited entities, got:\n%s", got)
	}
	if !strings.Contains(got, "STRICT COMPLIANCE") {
		t.Errorf("brief missing strict compliance block")
	}
	if !strings.Contains(got, "对不起") {
		t.Errorf("brief missing apology rule")
	}
}

func TestRenderBriefOmitsProhibitionsWhenNone(t *testing.T) {
	u := unit2()
	d := orchestrator.Directive{
		UnitID:    "unit2",
		Remaining: u.Questions,
		NextIndex: 0,
	}

	got := RenderBrief(u, d)
	if strings.Contains(got, "PROHIBITED") {
		t.Errorf("brief should not carry a prohibition block when nothing is prohibited")
	}
	if !strings.Contains(got, "next_index: 0") {
		t.Errorf("brief missing next index, got:\n%s", got)
	}
}

func TestRenderBriefNextQuestion(t *testing.T) {
	u := unit2()
	d := orchestrator.Directive{
		UnitID:    "unit2",
		Remaining: u.Questions[4:],
		NextIndex: 4,
	}

	got := RenderBrief(u, d)
	if !strings.Contains(got, u.Questions[4].Text) {
		t.Errorf("brief missing next question %q", u.Questions[4].Text)
	}
}

func TestOpening(t *testing.T) {
	u := unit2()

	got := Opening(u, 0)
	if !strings.Contains(got, catalog.Greetings[0]) {
		t.Errorf("opening missing greeting, got %q", got)
	}
	if !strings.Contains(got, catalog.FirstQuestion(u)) {
		t.Errorf("opening missing first question, got %q", got)
	}

	// Out-of-range picks wrap instead of panicking.
	if Opening(u, -1) == "" || Opening(u, 99) == "" {
		t.Errorf("opening should tolerate any pick value")
	}
}
