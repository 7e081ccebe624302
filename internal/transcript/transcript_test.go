package transcript

import "testing"

func TestParseTurnsSkipsMalformed(t *testing.T) {
	raw := []RawTurn{
		{Role: "user", Text: "你好"},
		{Role: "assistant", Text: "你好！你是哪国人？"},
		{Role: "narrator", Text: "should be dropped"},
		{Role: "user", Text: "   "},
		{Role: "", Text: "no role"},
		{Role: "student", Text: "我是美国人"},
	}

	ts := ParseTurns(raw)

	if len(ts) != 3 {
		t.Fatalf("expected 3 turns, got %d", len(ts))
	}
	if ts[0].Role != RoleStudent || ts[1].Role != RolePartner || ts[2].Role != RoleStudent {
		t.Errorf("roles wrong: %v %v %v", ts[0].Role, ts[1].Role, ts[2].Role)
	}
}

func TestStudentTextExcludesPartner(t *testing.T) {
	ts := Transcript{
		{Role: RolePartner, Text: "你有几个哥哥？"},
		{Role: RoleStudent, Text: "我没有哥哥"},
	}

	got := ts.StudentText()
	if got != "我没有哥哥" {
		t.Errorf("got %q, want student text only", got)
	}
}

func TestJoinedTextBothRoles(t *testing.T) {
	ts := Transcript{
		{Role: RolePartner, Text: "你家有几口人？"},
		{Role: RoleStudent, Text: "三口人"},
	}

	got := ts.JoinedText()
	want := "你家有几口人？ 三口人"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestLastStudentText(t *testing.T) {
	ts := Transcript{
		{Role: RoleStudent, Text: "你好"},
		{Role: RolePartner, Text: "你好！"},
		{Role: RoleStudent, Text: "再见　"},
	}

	if got := ts.LastStudentText(); got != "再见" {
		t.Errorf("got %q, want %q", got, "再见")
	}

	empty := Transcript{{Role: RolePartner, Text: "你好"}}
	if got := empty.LastStudentText(); got != "" {
		t.Errorf("expected empty, got %q", got)
	}
}
