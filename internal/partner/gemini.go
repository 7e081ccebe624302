// Package partner holds the reply engines behind the practice loop: a
// Gemini-backed engine for live sessions and a deterministic scripted
// engine for replay and tests.
package partner

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/VicRabbit89/Mandarin-Chatbot1/internal/textnorm"
	"github.com/VicRabbit89/Mandarin-Chatbot1/internal/transcript"
)

// #region gemini

// Gemini generates replies through the Gemini API. A fresh client is
// opened per call; session state lives in the history argument.
type Gemini struct {
	config Config
}

// NewGemini creates a Gemini engine.
func NewGemini(config Config) *Gemini {
	config.APIKey = strings.TrimSpace(config.APIKey)
	config.Model = strings.TrimSpace(config.Model)
	return &Gemini{config: config}
}

// Generate produces the partner's next reply. The API is called exactly
// once per turn; any failure is returned wrapped, never retried here.
func (g *Gemini) Generate(ctx context.Context, brief string, history transcript.Transcript, studentMsg string) (string, error) {
	if g.config.APIKey == "" {
		return "", errors.New("GEMINI_API_KEY is empty")
	}
	cl, err := genai.NewClient(ctx, option.WithAPIKey(g.config.APIKey))
	if err != nil {
		return "", err
	}
	defer cl.Close()

	m := cl.GenerativeModel(g.config.Model)
	if m == nil {
		return "", fmt.Errorf("gemini: model is nil")
	}
	temp := g.config.Temperature
	maxTok := g.config.MaxOutputTokens
	m.GenerationConfig = genai.GenerationConfig{
		Temperature:     &temp,
		MaxOutputTokens: &maxTok,
	}
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(brief)},
	}

	cs := m.StartChat()
	cs.History = historyContent(history)

	// One attempt per turn. A failed call is the turn's error; the
	// surface decides whether to prompt the student again.
	resp, err := cs.SendMessage(ctx, genai.Text(studentMsg))
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	txt := strings.TrimSpace(firstText(resp))
	if txt == "" {
		return "", fmt.Errorf("gemini generate: empty response")
	}
	// The model sometimes emits raw digit strings for the phone
	// number; recite them in telephony reading instead.
	return textnorm.NormalizeApologies(textnorm.TelephonyDigits(txt)), nil
}

// historyContent maps transcript turns to the API's chat roles.
func historyContent(ts transcript.Transcript) []*genai.Content {
	var history []*genai.Content
	for _, turn := range ts {
		role := "user"
		if turn.Role == transcript.RolePartner {
			role = "model"
		}
		history = append(history, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(turn.Text)},
		})
	}
	return history
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	for _, c := range resp.Candidates {
		if c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				return string(t)
			}
		}
	}
	return ""
}

// #endregion gemini
