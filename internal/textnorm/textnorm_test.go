package textnorm

import "testing"

func TestCollapseSpace(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"full-width space", "我家　有三口人", "我家 有三口人"},
		{"newlines", "我没有哥哥\n我有姐姐", "我没有哥哥 我有姐姐"},
		{"trim", "  你好  ", "你好"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CollapseSpace(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCompact(t *testing.T) {
	if got := Compact("我　没有 哥哥\n"); got != "我没有哥哥" {
		t.Errorf("got %q, want %q", got, "我没有哥哥")
	}
}

func TestNormalizeApologies(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare", "抱歉，我不知道。", "对不起，我不知道。"},
		{"modified", "很抱歉！", "很对不起！"},
		{"already correct", "对不起。", "对不起。"},
		{"none", "你好！", "你好！"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeApologies(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTelephonyDigits(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"phone number", "我的电话是1358679042。", "我的电话是幺 三 五 八 六 七 九 零 四 二。"},
		{"short run untouched", "我12岁。", "我12岁。"},
		{"exactly six", "135867", "幺 三 五 八 六 七"},
		{"five stays", "13586", "13586"},
		{"no digits", "你好", "你好"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TelephonyDigits(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
