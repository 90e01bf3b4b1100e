package http

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"tasklens/internal/extraction"
	"tasklens/internal/middleware"
	"tasklens/internal/model"
)

// --- Request DTOs ---

type extractReq struct {
	Content string `json:"content" binding:"required"`
	Title   string `json:"title"   binding:"max=1000"`
	URL     string `json:"url"     binding:"omitempty,max=2048"`
	Mode    string `json:"mode"    binding:"omitempty,oneof=general email meeting"`
}

func (r extractReq) validate() error { return nil }

func (r extractReq) toInput() extraction.ExtractInput {
	return extraction.ExtractInput{
		Content: r.Content,
		Title:   r.Title,
		URL:     r.URL,
		Mode:    model.ParseExtractionMode(r.Mode),
	}
}

// ---

type updateTaskReq struct {
	Title        *string `json:"title"         binding:"omitempty,min=1,max=500"`
	Description  *string `json:"description"   binding:"omitempty,max=2000"`
	Priority     *string `json:"priority"      binding:"omitempty,oneof=high medium low"`
	Category     *string `json:"category"      binding:"omitempty,oneof=action follow-up decision deadline question idea other"`
	Assignee     *string `json:"assignee"      binding:"omitempty,max=255"`
	DueDate      *string `json:"due_date"      binding:"omitempty,max=64"`
	TimeEstimate *string `json:"time_estimate"`
	Selected     *bool   `json:"selected"`
}

func (r updateTaskReq) validate() error {
	if r.TimeEstimate != nil && *r.TimeEstimate != "" {
		if _, ok := model.ParseTimeEstimate(*r.TimeEstimate); !ok {
			return fmt.Errorf("invalid time_estimate: %q", *r.TimeEstimate)
		}
	}
	return nil
}

func (r updateTaskReq) toInput() extraction.UpdateTaskInput {
	input := extraction.UpdateTaskInput{
		Title:       r.Title,
		Description: r.Description,
		Assignee:    r.Assignee,
		DueDate:     r.DueDate,
		Selected:    r.Selected,
	}
	if r.Priority != nil {
		if p, ok := model.ParsePriority(*r.Priority); ok {
			input.Priority = &p
		}
	}
	if r.Category != nil {
		if cat, ok := model.ParseCategory(*r.Category); ok {
			input.Category = &cat
		}
	}
	if r.TimeEstimate != nil {
		if te, ok := model.ParseTimeEstimate(*r.TimeEstimate); ok {
			input.TimeEstimate = &te
		}
	}
	return input
}

// --- Response DTOs ---

type resultResp struct {
	ID          string       `json:"id"`
	URL         string       `json:"url"`
	Title       string       `json:"title"`
	Tasks       []model.Task `json:"tasks"`
	TaskCount   int          `json:"task_count"`
	CanUndo     bool         `json:"can_undo"`
	CompletedAt time.Time    `json:"completed_at"`
}

func newResultResp(result model.ExtractionResult) resultResp {
	return resultResp{
		ID:          result.ID,
		URL:         result.URL,
		Title:       result.Title,
		Tasks:       result.Tasks,
		TaskCount:   len(result.Tasks),
		CompletedAt: result.CompletedAt,
	}
}

// newReviewResp decorates a result payload with the undo affordance, so
// the client can show or hide its undo control without a second request.
func (h *handler) newReviewResp(c *gin.Context, result model.ExtractionResult) resultResp {
	resp := newResultResp(result)
	resp.CanUndo = h.uc.CanUndo(c.Request.Context(), middleware.GetScope(c), result.ID)
	return resp
}

type extractResp struct {
	Result    resultResp `json:"result"`
	Provider  string     `json:"provider"`
	Model     string     `json:"model"`
	UsedToday int        `json:"used_today"`
}

func (h *handler) newExtractResp(out extraction.ExtractOutput) extractResp {
	return extractResp{
		Result:    newResultResp(out.Result),
		Provider:  out.Provider,
		Model:     out.ModelName,
		UsedToday: out.UsedToday,
	}
}

type usageResp struct {
	Date      string `json:"date"`
	Count     int    `json:"count"`
	Limit     int    `json:"limit"`
	Remaining int    `json:"remaining"`
	Pro       bool   `json:"pro"`
}

func (h *handler) newUsageResp(out extraction.UsageOutput) usageResp {
	return usageResp{
		Date:      out.Date,
		Count:     out.Count,
		Limit:     out.Limit,
		Remaining: out.Remaining,
		Pro:       out.Pro,
	}
}

type listResp struct {
	Results []resultResp `json:"results"`
	Total   int          `json:"total"`
}

func (h *handler) newListResp(results []model.ExtractionResult) listResp {
	items := make([]resultResp, len(results))
	for i, result := range results {
		items[i] = newResultResp(result)
	}
	return listResp{
		Results: items,
		Total:   len(items),
	}
}
