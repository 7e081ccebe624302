package partner

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/VicRabbit89/Mandarin-Chatbot1/internal/transcript"
)

func TestScriptAnswersByKeyword(t *testing.T) {
	engine := NewScript()

	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"family size", "你家有几口人？", "五口人"},
		{"name", "你叫什么名字？", "李爱"},
		{"friend", "你的朋友是谁？", "高山"},
		{"full-width spaces", "你家　有　几口人？", "五口人"},
		{"fallback", "今天天气很好。", "好的"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.Generate(context.Background(), "", nil, tt.message)
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("Generate(%q) = %q, want to contain %q", tt.message, got, tt.want)
			}
		})
	}
}

func TestScriptDeterministic(t *testing.T) {
	engine := NewScript()
	ts := transcript.Transcript{{Role: transcript.RoleStudent, Text: "你好"}}

	a, _ := engine.Generate(context.Background(), "brief", ts, "你家有几口人？")
	b, _ := engine.Generate(context.Background(), "brief", ts, "你家有几口人？")
	if a != b {
		t.Errorf("scripted replies differ: %q vs %q", a, b)
	}
}

func TestGeminiRequiresAPIKey(t *testing.T) {
	engine := NewGemini(Config{Model: "gemini-1.5-flash"})

	_, err := engine.Generate(context.Background(), "brief", nil, "你好")
	if err == nil || !strings.Contains(err.Error(), "GEMINI_API_KEY") {
		t.Errorf("Generate() without key error = %v, want key error", err)
	}
}

func TestGeminiCancelledContextFailsOnce(t *testing.T) {
	engine := NewGemini(Config{APIKey: "test-key", Model: "gemini-1.5-flash"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	_, err := engine.Generate(ctx, "brief", nil, "你好")
	elapsed := time.Since(start)

	if err == nil {
		t.Fatal("Generate() with cancelled context should fail")
	}
	// A single attempt returns as soon as the transport sees the dead
	// context; any backoff wait here means the call was re-attempted.
	if elapsed > 250*time.Millisecond {
		t.Errorf("Generate() took %v after cancellation, want immediate return", elapsed)
	}
}

func TestHistoryContentRoles(t *testing.T) {
	ts := transcript.Transcript{
		{Role: transcript.RoleStudent, Text: "你好"},
		{Role: transcript.RolePartner, Text: "你好！"},
	}

	history := historyContent(ts)
	if len(history) != 2 {
		t.Fatalf("len(history) = %d, want 2", len(history))
	}
	if history[0].Role != "user" {
		t.Errorf("history[0].Role = %q, want user", history[0].Role)
	}
	if history[1].Role != "model" {
		t.Errorf("history[1].Role = %q, want model", history[1].Role)
	}
}
