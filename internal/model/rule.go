package model

// ExtractionMode selects which prompt template and rule set applies.
type ExtractionMode string

const (
	ModeGeneral ExtractionMode = "general"
	ModeEmail   ExtractionMode = "email"
	ModeMeeting ExtractionMode = "meeting"
)

// ParseExtractionMode returns the mode for s, defaulting to ModeGeneral.
func ParseExtractionMode(s string) ExtractionMode {
	switch ExtractionMode(s) {
	case ModeEmail, ModeMeeting:
		return ExtractionMode(s)
	}
	return ModeGeneral
}

// RuleType is the kind of user-defined extraction rule.
type RuleType string

const (
	RuleKeyword RuleType = "keyword"
	RulePattern RuleType = "pattern"
	RuleIgnore  RuleType = "ignore"
)

// ExtractionRule is a user-defined hint rendered into the prompt. Rules are
// advisory: they change the instructions given to the LLM, they never mutate
// Task records directly.
type ExtractionRule struct {
	Type     RuleType `json:"type"`
	Value    string   `json:"value"`
	Priority Priority `json:"priority,omitempty"` // optional priority override
	Category Category `json:"category,omitempty"` // optional category override
	Enabled  bool     `json:"enabled"`
}

// EnabledRules filters rules down to the enabled ones, preserving order.
func EnabledRules(rules []ExtractionRule) []ExtractionRule {
	var out []ExtractionRule
	for _, r := range rules {
		if r.Enabled {
			out = append(out, r)
		}
	}
	return out
}
