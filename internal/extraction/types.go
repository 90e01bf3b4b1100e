package extraction

import (
	"tasklens/internal/model"
)

// ExtractInput carries one page's content into the pipeline.
type ExtractInput struct {
	Content string
	Title   string
	URL     string
	Mode    model.ExtractionMode
}

// ExtractOutput is the pipeline's success payload.
type ExtractOutput struct {
	Result    model.ExtractionResult
	Provider  string
	ModelName string
	// UsedToday is the quota count after this extraction committed.
	// Zero for pro-tier scopes, which bypass the quota entirely.
	UsedToday int
}

// UsageOutput reports a scope's standing against the daily quota.
type UsageOutput struct {
	Date      string
	Count     int
	Limit     int
	Remaining int
	Pro       bool
}

// UpdateTaskInput is a partial task edit. Nil fields are left untouched.
type UpdateTaskInput struct {
	Title        *string
	Description  *string
	Priority     *model.Priority
	Category     *model.Category
	Assignee     *string
	DueDate      *string
	TimeEstimate *model.TimeEstimate
	Selected     *bool
}
