package partner

import (
	"context"
	"strings"

	"github.com/VicRabbit89/Mandarin-Chatbot1/internal/textnorm"
	"github.com/VicRabbit89/Mandarin-Chatbot1/internal/transcript"
)

// #region script

// scriptRule maps a student-question keyword to the persona's answer.
type scriptRule struct {
	Keyword string
	Reply   string
}

// Script is a deterministic engine for tests and offline runs. Replies
// come from a keyword table in rule order; unmatched input gets the
// fallback line.
type Script struct {
	rules    []scriptRule
	fallback string
}

// NewScript creates a Script with the persona's default answer table.
func NewScript() *Script {
	return &Script{
		rules: []scriptRule{
			{"名字", "我叫李爱。(Wǒ jiào Lǐ Ài.)"},
			{"几口人", "我家有五口人。(Wǒ jiā yǒu wǔ kǒu rén.)"},
			{"都有谁", "爸爸、妈妈、哥哥、妹妹和我。(Bàba, māma, gēge, mèimei hé wǒ.)"},
			{"哪里", "我家在北京。(Wǒ jiā zài Běijīng.)"},
			{"电话", "我的电话号码是幺三五八六七九零四二。(Wǒ de diànhuà hàomǎ shì...)"},
			{"医生", "我不是医生，我是老师。(Wǒ bú shì yīshēng, wǒ shì lǎoshī.)"},
			{"宠物", "我有一只猫。(Wǒ yǒu yì zhī māo.)"},
			{"高", "我不高，我的朋友高山很高。(Wǒ bù gāo, wǒ de péngyou Gāo Shān hěn gāo.)"},
			{"朋友", "我的朋友叫高山，他是美国医生。(Wǒ de péngyou jiào Gāo Shān, tā shì Měiguó yīshēng.)"},
		},
		fallback: "好的。(Hǎo de.)",
	}
}

// Generate returns the scripted answer for the student's message. The
// brief and history are accepted for interface parity but unused.
func (s *Script) Generate(_ context.Context, _ string, _ transcript.Transcript, studentMsg string) (string, error) {
	text := textnorm.Compact(studentMsg)
	for _, r := range s.rules {
		if strings.Contains(text, r.Keyword) {
			return r.Reply, nil
		}
	}
	return s.fallback, nil
}

// #endregion script
