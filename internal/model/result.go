package model

import "time"

// ExtractionResult is one completed extraction run against a page.
type ExtractionResult struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Tasks       []Task    `json:"tasks"`
	CompletedAt time.Time `json:"completed_at"`
}

// UsageDateFormat is the calendar-date key used for quota accounting.
const UsageDateFormat = "2006-01-02"

// UsageRecord is the date-keyed extraction counter for one scope.
// A record from a prior date counts as zero; there is no carryover and
// no active reset.
type UsageRecord struct {
	Date  string `json:"date"` // UsageDateFormat
	Count int    `json:"count"`
}

// CountedToday returns the record's count if it belongs to today (as given),
// and 0 for any other date.
func (r UsageRecord) CountedToday(today string) int {
	if r.Date != today {
		return 0
	}
	return r.Count
}
