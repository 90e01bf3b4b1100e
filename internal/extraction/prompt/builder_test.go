package prompt

import (
	"strings"
	"testing"
	"unicode/utf8"

	"tasklens/internal/model"
)

func TestTruncate(t *testing.T) {
	t.Run("Short Content Untouched", func(t *testing.T) {
		content := "a short page"
		if got := Truncate(content); got != content {
			t.Errorf("expected content unchanged, got %q", got)
		}
	})

	t.Run("Exact Budget Untouched", func(t *testing.T) {
		content := strings.Repeat("x", MaxContentChars)
		got := Truncate(content)
		if got != content {
			t.Errorf("content at the budget must not be truncated")
		}
		if strings.Contains(got, TruncationMarker) {
			t.Errorf("marker must not appear on untruncated content")
		}
	})

	t.Run("Over Budget Cut With Marker", func(t *testing.T) {
		content := strings.Repeat("x", MaxContentChars+500)
		got := Truncate(content)
		if !strings.HasSuffix(got, TruncationMarker) {
			t.Errorf("expected truncation marker suffix")
		}
		if len(got) != MaxContentChars+len(TruncationMarker) {
			t.Errorf("expected %d chars, got %d", MaxContentChars+len(TruncationMarker), len(got))
		}
	})

	t.Run("Multi Byte Rune Not Split At Boundary", func(t *testing.T) {
		// 14999 ASCII bytes put a 3-byte rune astride the cut point.
		content := strings.Repeat("x", MaxContentChars-1) + strings.Repeat("日", 200)
		got := Truncate(content)
		if !utf8.ValidString(got) {
			t.Fatalf("truncated content contains invalid UTF-8")
		}
		kept := strings.TrimSuffix(got, TruncationMarker)
		if len(kept) > MaxContentChars {
			t.Errorf("kept %d bytes, budget is %d", len(kept), MaxContentChars)
		}
		if strings.ContainsRune(kept, utf8.RuneError) {
			t.Errorf("truncation left a replacement rune")
		}
	})
}

func TestBuildBlockOrder(t *testing.T) {
	rules := []model.ExtractionRule{
		{Type: model.RuleKeyword, Value: "urgent", Priority: model.PriorityHigh, Enabled: true},
	}
	p := Build("review the budget", "Q3 Planning", model.ModeGeneral, rules)

	contentIdx := strings.Index(p, "PAGE CONTENT:")
	rulesIdx := strings.Index(p, rulesHeader)
	formatIdx := strings.Index(p, "Respond with ONLY a valid JSON object")

	if contentIdx < 0 || rulesIdx < 0 || formatIdx < 0 {
		t.Fatalf("prompt is missing a required block:\n%s", p)
	}
	if !(contentIdx < rulesIdx && rulesIdx < formatIdx) {
		t.Errorf("expected content < rules < format, got %d %d %d", contentIdx, rulesIdx, formatIdx)
	}
	if !strings.Contains(p, "PAGE TITLE: Q3 Planning") {
		t.Errorf("expected page title block")
	}
}

func TestBuildModeInstructions(t *testing.T) {
	tests := []struct {
		name string
		mode model.ExtractionMode
		want string
	}{
		{"General", model.ModeGeneral, "task extraction assistant"},
		{"Email", model.ModeEmail, "EMAIL HEURISTICS:"},
		{"Meeting", model.ModeMeeting, "MEETING HEURISTICS:"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Build("content", "", tt.mode, nil)
			if !strings.Contains(p, tt.want) {
				t.Errorf("mode %s: expected %q in prompt", tt.mode, tt.want)
			}
		})
	}

	t.Run("Email Includes Sender Field", func(t *testing.T) {
		p := Build("content", "", model.ModeEmail, nil)
		if !strings.Contains(p, "sender:") {
			t.Errorf("email mode must describe the sender field")
		}
	})

	t.Run("General Has No Mode Heuristics", func(t *testing.T) {
		p := Build("content", "", model.ModeGeneral, nil)
		if strings.Contains(p, "EMAIL HEURISTICS") || strings.Contains(p, "MEETING HEURISTICS") {
			t.Errorf("general mode must not carry email or meeting heuristics")
		}
	})
}

func TestBuildRules(t *testing.T) {
	t.Run("Disabled Rule Absent", func(t *testing.T) {
		rules := []model.ExtractionRule{
			{Type: model.RuleKeyword, Value: "budget", Priority: model.PriorityHigh, Enabled: false},
		}
		p := Build("content", "", model.ModeGeneral, rules)
		if strings.Contains(p, rulesHeader) {
			t.Errorf("disabled rules must leave no trace in the prompt")
		}
		if strings.Contains(p, "budget]") {
			t.Errorf("disabled rule value leaked into the prompt")
		}
	})

	t.Run("No Rules No Header", func(t *testing.T) {
		p := Build("content", "", model.ModeGeneral, nil)
		if strings.Contains(p, rulesHeader) {
			t.Errorf("empty rule set must not render the rules header")
		}
	})

	t.Run("Keyword Rule With Overrides", func(t *testing.T) {
		rules := []model.ExtractionRule{
			{Type: model.RuleKeyword, Value: "invoice, payment", Priority: model.PriorityHigh, Category: model.CategoryDeadline, Enabled: true},
		}
		p := Build("content", "", model.ModeGeneral, rules)
		if !strings.Contains(p, `If the content contains [invoice, payment]: mark it as priority "high" and mark it as category "deadline"`) {
			t.Errorf("keyword rule rendered wrong:\n%s", p)
		}
	})

	t.Run("Ignore Rules Collapse To One Line", func(t *testing.T) {
		rules := []model.ExtractionRule{
			{Type: model.RuleIgnore, Value: "advertisement", Enabled: true},
			{Type: model.RuleIgnore, Value: "cookie notice, newsletter", Enabled: true},
		}
		p := Build("content", "", model.ModeGeneral, rules)
		if !strings.Contains(p, "Skip items containing: [advertisement, cookie notice, newsletter]") {
			t.Errorf("ignore rules should collapse into one skip line:\n%s", p)
		}
		if strings.Count(p, "Skip items containing") != 1 {
			t.Errorf("expected exactly one skip line")
		}
	})

	t.Run("Pattern Rule Without Overrides", func(t *testing.T) {
		rules := []model.ExtractionRule{
			{Type: model.RulePattern, Value: `TODO-\d+`, Enabled: true},
		}
		p := Build("content", "", model.ModeGeneral, rules)
		if !strings.Contains(p, `If the content matches the pattern "TODO-\\d+": pay special attention to it`) {
			t.Errorf("pattern rule rendered wrong:\n%s", p)
		}
	})
}

func TestBuildNeverFails(t *testing.T) {
	// Degenerate inputs still yield a prompt ending in the format block.
	p := Build("", "", model.ExtractionMode("bogus"), nil)
	if !strings.HasSuffix(p, responseFormat) {
		t.Errorf("prompt must always end with the response format block")
	}
	if !strings.Contains(p, "task extraction assistant") {
		t.Errorf("unknown mode must fall back to general instructions")
	}
}
