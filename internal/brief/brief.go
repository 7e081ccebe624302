// Package brief renders the system-instruction text handed to the
// text-generation collaborator. Rendering is deterministic string assembly:
// the collaborator is expected, but not mechanically enforced, to honor the
// prohibitions and to prefer the next target question.
package brief

import (
	"fmt"
	"strings"

	"github.com/VicRabbit89/Mandarin-Chatbot1/internal/catalog"
	"github.com/VicRabbit89/Mandarin-Chatbot1/internal/orchestrator"
)

// #region persona

const personaRules = `Persona: You are the student's Mandarin language partner (语言朋友), NEVER say you are an AI. ` +
	`Name 李爱 (Emily), from Beijing, Chinese teacher, phone 1358679042. Friend 高山 (Gordon), American doctor; he is tall and handsome; you are short.
During the role play, answer in Chinese with pinyin in parentheses, no English unless asked for help or they don't understand. ` +
	`Turn order: the student asks questions first; only respond after they ask. ` +
	`Disclosure constraint: only reveal information the student explicitly asks for. Do NOT volunteer extra details. Keep answers BRIEF and on-topic. ` +
	`If asked '你家有几口人？', reply only '我家有五口人。(Wǒ jiā yǒu wǔ kǒu rén.)'; do not list members unless asked '都有谁？'. ` +
	`You may ONLY ask your predetermined questions, no other questions; otherwise WAIT silently. Do NOT ask '你呢？'. ` +
	`If the student has given only answers without asking anything for two turns, nudge them in Chinese to ask a question, ONCE per response cycle. ` +
	`Apologies: always 对不起 (duìbuqǐ), never 抱歉. ` +
	`Do not correct mistakes mid-conversation; save feedback for the end.`

// #endregion persona

// #region render

// RenderBrief builds the full instruction context for one turn.
func RenderBrief(u catalog.Unit, d orchestrator.Directive) string {
	var b strings.Builder

	b.WriteString(personaRules)
	b.WriteString("\n\n")

	if u.PersonaNotes != "" {
		fmt.Fprintf(&b, "Unit guidance (%s): %s\n", u.Title, u.PersonaNotes)
	}

	if len(u.Predetermined) > 0 {
		fmt.Fprintf(&b, "PREDETERMINED QUESTIONS (%s): you may ask these %d questions contextually when appropriate, and no others:\n",
			u.Title, len(u.Predetermined))
		for i, q := range u.Predetermined {
			fmt.Fprintf(&b, "%d. %s\n", i+1, q)
		}
	}

	// Units with a target-question list get the strict-compliance block.
	if len(u.Questions) > 0 {
		b.WriteString("\nSTRICT COMPLIANCE: the student works through the following target questions, in order. Do NOT suggest questions; answer briefly and wait.\n")
		b.WriteString("Ordered target questions:\n")
		for _, q := range u.Questions {
			fmt.Fprintf(&b, "- %s\n", q.Text)
		}
		fmt.Fprintf(&b, "Progress hint: asked indices: %v; next_index: %d; next_question: %s; remaining_count: %d.\n",
			coveredOrEmpty(d.CoveredIndices), d.NextIndex, nextQuestionText(u, d), len(d.Remaining))
		if len(d.Remaining) > 0 {
			b.WriteString("Filtered remaining: ")
			for i, q := range d.Remaining {
				if i > 0 {
					b.WriteString("; ")
				}
				b.WriteString(q.Text)
			}
			b.WriteString("\n")
		}
		if len(d.Prohibited) > 0 {
			fmt.Fprintf(&b, "PROHIBITED: the student said they do not have: %s. NEVER ask about them.\n",
				strings.Join(d.Prohibited, "、"))
		}
	}

	return b.String()
}

func coveredOrEmpty(idx []int) []int {
	if idx == nil {
		return []int{}
	}
	return idx
}

func nextQuestionText(u catalog.Unit, d orchestrator.Directive) string {
	if d.NextIndex >= 0 && d.NextIndex < len(u.Questions) {
		return u.Questions[d.NextIndex].Text
	}
	if len(u.Questions) > 0 {
		return u.Questions[len(u.Questions)-1].Text
	}
	return ""
}

// #endregion render

// #region opening

// Opening returns the greeting-plus-first-question line a session starts
// with. pick selects the greeting variant; callers pass a random index.
func Opening(u catalog.Unit, pick int) string {
	greet := catalog.Greetings[0]
	if len(catalog.Greetings) > 0 {
		greet = catalog.Greetings[((pick%len(catalog.Greetings))+len(catalog.Greetings))%len(catalog.Greetings)]
	}
	first := catalog.FirstQuestion(u)
	if first == "" {
		return greet
	}
	return greet + "\n" + first
}

// #endregion opening

// #region farewell

// IsFarewell reports whether the student's message ends the session.
func IsFarewell(text string, config FarewellConfig) bool {
	for _, tok := range config.Tokens {
		if strings.Contains(text, tok) {
			return true
		}
	}
	return false
}

// #endregion farewell
