package prompt

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"tasklens/internal/model"
)

// Build renders the full provider prompt for one extraction call. It cannot
// fail: empty content or an absent rule set yields a degenerate but valid
// prompt. Block order is fixed (instructions, content, rubrics, custom
// rules, response format) because the format constraint must stay last.
func Build(content, title string, mode model.ExtractionMode, rules []model.ExtractionRule) string {
	var sb strings.Builder

	sb.WriteString(instructionsFor(mode))
	sb.WriteString("\n\n")

	if title != "" {
		sb.WriteString(fmt.Sprintf("PAGE TITLE: %s\n\n", title))
	}
	sb.WriteString("PAGE CONTENT:\n")
	sb.WriteString(Truncate(content))
	sb.WriteString("\n\n")

	sb.WriteString(confidenceRubric)
	sb.WriteString("\n\n")
	sb.WriteString(timeEstimateRubric)
	sb.WriteString("\n\n")

	if block := renderRules(model.EnabledRules(rules)); block != "" {
		sb.WriteString(block)
		sb.WriteString("\n\n")
	}

	sb.WriteString(responseFormat)

	return sb.String()
}

// Truncate cuts content at MaxContentChars and appends the truncation
// marker. Content within budget is returned verbatim. The cut backs off to
// a rune boundary so multi-byte text never yields a split rune.
func Truncate(content string) string {
	if len(content) <= MaxContentChars {
		return content
	}
	cut := MaxContentChars
	for cut > 0 && !utf8.RuneStart(content[cut]) {
		cut--
	}
	return content[:cut] + TruncationMarker
}

func instructionsFor(mode model.ExtractionMode) string {
	switch mode {
	case model.ModeEmail:
		return emailInstructions
	case model.ModeMeeting:
		return meetingInstructions
	}
	return generalInstructions
}

// renderRules turns enabled rules into an instruction block. Ignore rules
// collapse into a single skip line; keyword and pattern rules render one
// line each with their optional priority/category overrides.
func renderRules(rules []model.ExtractionRule) string {
	if len(rules) == 0 {
		return ""
	}

	var lines []string
	var ignoreValues []string

	for _, r := range rules {
		switch r.Type {
		case model.RuleIgnore:
			ignoreValues = append(ignoreValues, splitValues(r.Value)...)
		case model.RuleKeyword:
			lines = append(lines, fmt.Sprintf("- If the content contains [%s]: %s",
				strings.Join(splitValues(r.Value), ", "), renderOverrides(r)))
		case model.RulePattern:
			lines = append(lines, fmt.Sprintf("- If the content matches the pattern %q: %s",
				r.Value, renderOverrides(r)))
		}
	}

	if len(ignoreValues) > 0 {
		lines = append(lines, fmt.Sprintf("- Skip items containing: [%s]", strings.Join(ignoreValues, ", ")))
	}
	if len(lines) == 0 {
		return ""
	}

	return rulesHeader + "\n" + strings.Join(lines, "\n")
}

func renderOverrides(r model.ExtractionRule) string {
	var parts []string
	if r.Priority != "" {
		parts = append(parts, fmt.Sprintf("mark it as priority %q", r.Priority))
	}
	if r.Category != "" {
		parts = append(parts, fmt.Sprintf("mark it as category %q", r.Category))
	}
	if len(parts) == 0 {
		return "pay special attention to it"
	}
	return strings.Join(parts, " and ")
}

// splitValues splits a comma-separated rule value into trimmed keywords.
func splitValues(value string) []string {
	var out []string
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
