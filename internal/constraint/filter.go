package constraint

import (
	"strings"

	"github.com/VicRabbit89/Mandarin-Chatbot1/internal/catalog"
	"github.com/VicRabbit89/Mandarin-Chatbot1/internal/facts"
)

// #region filter

// Filter removes questions that reference entities the learner disclosed
// as absent.
type Filter struct {
	config FilterConfig
}

// NewFilter creates a filter with the given configuration.
func NewFilter(config FilterConfig) *Filter {
	return &Filter{config: config}
}

// Apply excludes every question whose text contains a prohibited entity
// token. When all four sibling categories are absent, the compound siblings
// term is prohibited as well. If filtering would remove every question the
// unfiltered list is returned with FallbackFired set: an empty prohibition
// set is safer than silently stalling the conversation.
func (f *Filter) Apply(questions []catalog.Question, table facts.FactTable) Result {
	type ban struct {
		token string
		key   facts.Key
	}
	var bans []ban
	for _, k := range table.AbsentKeys() {
		bans = append(bans, ban{token: facts.EntityToken(k), key: k})
	}
	if table.AllSiblingsAbsent() && f.config.SiblingsCompound != "" {
		bans = append(bans, ban{token: f.config.SiblingsCompound})
	}

	prohibited := make([]string, 0, len(bans))
	for _, b := range bans {
		prohibited = append(prohibited, b.token)
	}

	if len(bans) == 0 {
		return Result{Allowed: questions, Prohibited: prohibited}
	}

	var allowed []catalog.Question
	var excluded []Exclusion
	for _, q := range questions {
		hit := false
		for _, b := range bans {
			if strings.Contains(q.Text, b.token) {
				excluded = append(excluded, Exclusion{Question: q, Entity: b.token, Key: b.key})
				hit = true
				break
			}
		}
		if !hit {
			allowed = append(allowed, q)
		}
	}

	if len(allowed) == 0 && len(questions) > 0 {
		return Result{
			Allowed:       questions,
			Prohibited:    prohibited,
			Excluded:      excluded,
			FallbackFired: true,
		}
	}

	return Result{Allowed: allowed, Prohibited: prohibited, Excluded: excluded}
}

// #endregion filter
