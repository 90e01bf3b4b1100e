package usecase

const (
	// DefaultDailyLimit caps free-tier extractions per calendar day.
	DefaultDailyLimit = 5

	// DefaultTemperature keeps completions near-deterministic so the
	// structured output parses reliably.
	DefaultTemperature = 0.3

	// MaxOutputTokens bounds the completion; a full task list for a dense
	// page fits well within this.
	MaxOutputTokens = 4096

	// ContextWindowTokens is the smallest context window among the
	// configurable models. Prompts that leave less than MaxOutputTokens of
	// headroom against it get a warning before the call goes out.
	ContextWindowTokens = 128000
)
