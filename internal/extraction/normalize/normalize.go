// Package normalize turns raw LLM completion text into validated Task
// records. Only a top-level failure (no JSON, no tasks field) is an error;
// field-level anomalies are silently normalized because over-rejecting a
// quota-limited call on minor field issues would waste it.
package normalize

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"tasklens/internal/extraction"
	"tasklens/internal/model"
)

var fenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// Tasks parses raw completion text into Task records. Malformed individual
// task entries are dropped; every surviving task gets a locally generated id
// and starts selected.
func Tasks(raw string) ([]model.Task, error) {
	payload := isolateJSON(raw)

	var tree map[string]any
	if err := json.Unmarshal([]byte(payload), &tree); err != nil {
		return nil, fmt.Errorf("%w: %v", extraction.ErrParse, err)
	}

	rawTasks, ok := tree["tasks"].([]any)
	if !ok {
		return nil, fmt.Errorf("%w: response has no tasks array", extraction.ErrParse)
	}

	tasks := make([]model.Task, 0, len(rawTasks))
	for _, entry := range rawTasks {
		obj, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		task, ok := normalizeTask(obj)
		if !ok {
			continue
		}
		tasks = append(tasks, task)
	}

	return tasks, nil
}

// isolateJSON extracts the JSON payload from completion text that may be
// wrapped in code fences or surrounded by prose. Fenced block first, then
// the widest {...} span, then the trimmed text as-is.
func isolateJSON(raw string) string {
	if m := fenceRe.FindStringSubmatch(raw); len(m) > 1 {
		return strings.TrimSpace(m[1])
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start >= 0 && end > start {
		return strings.TrimSpace(raw[start : end+1])
	}

	return strings.TrimSpace(raw)
}

// normalizeTask coerces one untyped task entry into the typed shape. A task
// without a usable title is discarded; everything else degrades to defaults.
func normalizeTask(obj map[string]any) (model.Task, bool) {
	title := strings.TrimSpace(stringField(obj, "title"))
	if title == "" {
		return model.Task{}, false
	}

	priority, _ := model.ParsePriority(stringField(obj, "priority"))
	category, _ := model.ParseCategory(stringField(obj, "category"))

	task := model.Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: stringField(obj, "description"),
		Priority:    priority,
		Category:    category,
		Assignee:    stringField(obj, "assignee"),
		DueDate:     stringField(obj, "dueDate", "due_date"),
		Context:     stringField(obj, "context"),
		Confidence:  confidenceField(obj),
		Sender:      stringField(obj, "sender"),
		Attendees:   stringSliceField(obj, "attendees"),
		Selected:    true,
	}

	if subs := subTasksField(obj); len(subs) > 0 {
		task.SubTasks = subs
	}
	if rec := recurringField(obj); rec != nil {
		task.Recurring = rec
	}
	if est, ok := model.ParseTimeEstimate(stringField(obj, "timeEstimate", "time_estimate")); ok {
		task.TimeEstimate = est
	}

	return task, true
}

// confidenceField returns the confidence clamped to [0,1], or the default
// when the value is absent or not a finite number.
func confidenceField(obj map[string]any) float64 {
	v, ok := lookup(obj, "confidence")
	if !ok {
		return model.DefaultConfidence
	}
	f, ok := v.(float64)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return model.DefaultConfidence
	}
	return math.Min(1, math.Max(0, f))
}

// subTasksField accepts either {"title": "..."} objects or bare strings.
// Sub-task ids are generated locally and completion always starts false.
func subTasksField(obj map[string]any) []model.SubTask {
	raw, ok := lookup(obj, "subTasks", "sub_tasks")
	if !ok {
		return nil
	}
	arr, ok := raw.([]any)
	if !ok {
		return nil
	}

	var subs []model.SubTask
	for _, entry := range arr {
		var title string
		switch v := entry.(type) {
		case string:
			title = v
		case map[string]any:
			title = stringField(v, "title")
		}
		if title = strings.TrimSpace(title); title == "" {
			continue
		}
		subs = append(subs, model.SubTask{ID: uuid.NewString(), Title: title, Completed: false})
	}
	return subs
}

// recurringField keeps the recurring object only when its frequency is one
// of the recognized values; an unrecognized frequency drops the whole
// object, never a partial one.
func recurringField(obj map[string]any) *model.Recurring {
	raw, ok := lookup(obj, "recurring")
	if !ok {
		return nil
	}
	rec, ok := raw.(map[string]any)
	if !ok {
		return nil
	}

	freq, ok := model.ParseRecurringFrequency(stringField(rec, "frequency"))
	if !ok {
		return nil
	}

	out := &model.Recurring{
		Frequency:   freq,
		Description: stringField(rec, "description"),
	}
	if d, ok := intField(rec, "dayOfWeek", "day_of_week"); ok && d >= 0 && d <= 6 {
		out.DayOfWeek = &d
	}
	if d, ok := intField(rec, "dayOfMonth", "day_of_month"); ok && d >= 1 && d <= 31 {
		out.DayOfMonth = &d
	}
	return out
}

// lookup returns the first present key among the given aliases.
func lookup(obj map[string]any, keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := obj[k]; ok {
			return v, true
		}
	}
	return nil, false
}

func stringField(obj map[string]any, keys ...string) string {
	v, ok := lookup(obj, keys...)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

func intField(obj map[string]any, keys ...string) (int, bool) {
	v, ok := lookup(obj, keys...)
	if !ok {
		return 0, false
	}
	f, ok := v.(float64)
	if !ok || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

func stringSliceField(obj map[string]any, keys ...string) []string {
	v, ok := lookup(obj, keys...)
	if !ok {
		return nil
	}
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, entry := range arr {
		if s, ok := entry.(string); ok && strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}
