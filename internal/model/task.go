package model

// Priority is the task priority level.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// DefaultPriority is applied when the extracted priority is absent or invalid.
const DefaultPriority = PriorityMedium

// ParsePriority returns the Priority for s, or (DefaultPriority, false) when
// s is not one of the recognized levels.
func ParsePriority(s string) (Priority, bool) {
	switch Priority(s) {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return Priority(s), true
	}
	return DefaultPriority, false
}

// Category classifies what kind of actionable item a task is.
type Category string

const (
	CategoryAction   Category = "action"
	CategoryFollowUp Category = "follow-up"
	CategoryDecision Category = "decision"
	CategoryDeadline Category = "deadline"
	CategoryQuestion Category = "question"
	CategoryIdea     Category = "idea"
	CategoryOther    Category = "other"
)

// DefaultCategory is applied when the extracted category is absent or invalid.
const DefaultCategory = CategoryAction

// ParseCategory returns the Category for s, or (DefaultCategory, false) when
// s is not one of the recognized categories.
func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case CategoryAction, CategoryFollowUp, CategoryDecision,
		CategoryDeadline, CategoryQuestion, CategoryIdea, CategoryOther:
		return Category(s), true
	}
	return DefaultCategory, false
}

// TimeEstimate is a closed set of duration buckets. Values outside the set
// are dropped during normalization, never coerced.
type TimeEstimate string

const (
	Estimate15Min TimeEstimate = "15min"
	Estimate30Min TimeEstimate = "30min"
	Estimate1H    TimeEstimate = "1h"
	Estimate2H    TimeEstimate = "2h"
	Estimate4H    TimeEstimate = "4h"
	Estimate1D    TimeEstimate = "1d"
	Estimate2D    TimeEstimate = "2d"
	Estimate1W    TimeEstimate = "1w"
)

// ParseTimeEstimate returns the TimeEstimate for s and whether s matched
// one of the eight recognized tokens exactly.
func ParseTimeEstimate(s string) (TimeEstimate, bool) {
	switch TimeEstimate(s) {
	case Estimate15Min, Estimate30Min, Estimate1H, Estimate2H,
		Estimate4H, Estimate1D, Estimate2D, Estimate1W:
		return TimeEstimate(s), true
	}
	return "", false
}

// RecurringFrequency is the closed set of recognized recurrence intervals.
type RecurringFrequency string

const (
	FrequencyDaily     RecurringFrequency = "daily"
	FrequencyWeekly    RecurringFrequency = "weekly"
	FrequencyBiweekly  RecurringFrequency = "biweekly"
	FrequencyMonthly   RecurringFrequency = "monthly"
	FrequencyQuarterly RecurringFrequency = "quarterly"
	FrequencyYearly    RecurringFrequency = "yearly"
)

// ParseRecurringFrequency returns the RecurringFrequency for s and whether
// s is one of the six recognized values.
func ParseRecurringFrequency(s string) (RecurringFrequency, bool) {
	switch RecurringFrequency(s) {
	case FrequencyDaily, FrequencyWeekly, FrequencyBiweekly,
		FrequencyMonthly, FrequencyQuarterly, FrequencyYearly:
		return RecurringFrequency(s), true
	}
	return "", false
}

// DefaultConfidence is used when the model reports no usable confidence score.
const DefaultConfidence = 0.7

// SubTask is a single checklist step under a Task.
type SubTask struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Recurring describes a repeating schedule attached to a task. It is only
// present when the extracted frequency is one of the recognized values.
type Recurring struct {
	Frequency   RecurringFrequency `json:"frequency"`
	Description string             `json:"description,omitempty"`
	DayOfWeek   *int               `json:"day_of_week,omitempty"`  // 0-6, Sunday first
	DayOfMonth  *int               `json:"day_of_month,omitempty"` // 1-31
}

// Task is the central entity produced by extraction. IDs are always
// generated locally; identity coming back from the LLM is never reused.
type Task struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description,omitempty"`
	Priority     Priority     `json:"priority"`
	Category     Category     `json:"category"`
	Assignee     string       `json:"assignee,omitempty"`
	DueDate      string       `json:"due_date,omitempty"` // YYYY-MM-DD, not validated as a real date
	Context      string       `json:"context,omitempty"`  // source snippet justifying the task
	Confidence   float64      `json:"confidence"`
	SubTasks     []SubTask    `json:"sub_tasks,omitempty"`
	Recurring    *Recurring   `json:"recurring,omitempty"`
	TimeEstimate TimeEstimate `json:"time_estimate,omitempty"`
	Sender       string       `json:"sender,omitempty"`    // email mode only
	Attendees    []string     `json:"attendees,omitempty"` // meeting mode only
	Selected     bool         `json:"selected"`            // newly extracted tasks start selected for export
}
