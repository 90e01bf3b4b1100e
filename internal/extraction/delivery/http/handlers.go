package http

import (
	"github.com/gin-gonic/gin"

	"tasklens/internal/middleware"
	"tasklens/pkg/response"
)

// Extract godoc
// @Summary     Extract tasks from page content
// @Description Runs the LLM pipeline over the submitted page content and returns structured tasks.
// @Tags        Extraction
// @Accept      json
// @Produce     json
// @Param       body body extractReq true "Page content"
// @Success     200 {object} extractResp
// @Failure     400 {object} response.Resp "Bad Request - empty content"
// @Failure     422 {object} response.Resp "Unprocessable - missing API key or unparseable completion"
// @Failure     429 {object} response.Resp "Too Many Requests - daily limit reached"
// @Failure     502 {object} response.Resp "Bad Gateway - provider failure"
// @Router      /api/v1/extractions [POST]
func (h *handler) Extract(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExtractReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	output, err := h.uc.Extract(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Extract: %v", err)
		response.Error(c, mapStatus(err), err)
		return
	}

	response.OK(c, h.newExtractResp(output))
}

// Usage godoc
// @Summary     Today's quota standing
// @Description Returns the extraction count, limit, and remainder for today.
// @Tags        Extraction
// @Produce     json
// @Success     200 {object} usageResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/usage [GET]
func (h *handler) Usage(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Usage(ctx, middleware.GetScope(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.Usage: %v", err)
		response.Error(c, mapStatus(err), err)
		return
	}

	response.OK(c, h.newUsageResp(output))
}

// ListResults godoc
// @Summary     List extraction history
// @Description Returns the caller's extraction results, most recent first.
// @Tags        Extraction
// @Produce     json
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/extractions [GET]
func (h *handler) ListResults(c *gin.Context) {
	ctx := c.Request.Context()

	results, err := h.uc.ListResults(ctx, middleware.GetScope(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.ListResults: %v", err)
		response.Error(c, mapStatus(err), err)
		return
	}

	response.OK(c, h.newListResp(results))
}

// DetailResult godoc
// @Summary     Get one extraction result
// @Description Returns a single result, reflecting any review edits.
// @Tags        Extraction
// @Produce     json
// @Param       id path string true "Result ID"
// @Success     200 {object} resultResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/extractions/{id} [GET]
func (h *handler) DetailResult(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := resultIDParam(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	result, err := h.uc.GetResult(ctx, middleware.GetScope(c), id)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetResult: %v", err)
		response.Error(c, mapStatus(err), err)
		return
	}

	response.OK(c, h.newReviewResp(c, result))
}

// DeleteResult godoc
// @Summary     Delete an extraction result
// @Description Removes a result from history and closes its edit session.
// @Tags        Extraction
// @Produce     json
// @Param       id path string true "Result ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/extractions/{id} [DELETE]
func (h *handler) DeleteResult(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := resultIDParam(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	if err := h.uc.DeleteResult(ctx, middleware.GetScope(c), id); err != nil {
		h.l.Errorf(ctx, "uc.DeleteResult: %v", err)
		response.Error(c, mapStatus(err), err)
		return
	}

	response.OK(c, nil)
}

// UpdateTask godoc
// @Summary     Edit a task
// @Description Applies a partial update to one task of a result. All fields optional.
// @Tags        Extraction
// @Accept      json
// @Produce     json
// @Param       id     path string        true "Result ID"
// @Param       taskId path string        true "Task ID"
// @Param       body   body updateTaskReq true "Fields to update"
// @Success     200 {object} resultResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/extractions/{id}/tasks/{taskId} [PATCH]
func (h *handler) UpdateTask(c *gin.Context) {
	ctx := c.Request.Context()

	req, resultID, taskID, err := h.processUpdateTaskReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	result, err := h.uc.UpdateTask(ctx, middleware.GetScope(c), resultID, taskID, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateTask: %v", err)
		response.Error(c, mapStatus(err), err)
		return
	}

	response.OK(c, h.newReviewResp(c, result))
}

// RemoveTask godoc
// @Summary     Remove a task
// @Description Deletes one task from a result. Undoable.
// @Tags        Extraction
// @Produce     json
// @Param       id     path string true "Result ID"
// @Param       taskId path string true "Task ID"
// @Success     200 {object} resultResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/extractions/{id}/tasks/{taskId} [DELETE]
func (h *handler) RemoveTask(c *gin.Context) {
	ctx := c.Request.Context()

	resultID, taskID, err := taskPathParams(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	result, err := h.uc.RemoveTask(ctx, middleware.GetScope(c), resultID, taskID)
	if err != nil {
		h.l.Errorf(ctx, "uc.RemoveTask: %v", err)
		response.Error(c, mapStatus(err), err)
		return
	}

	response.OK(c, h.newReviewResp(c, result))
}

// ToggleTask godoc
// @Summary     Toggle a task's selection
// @Description Flips whether one task is selected for export. Undoable.
// @Tags        Extraction
// @Produce     json
// @Param       id     path string true "Result ID"
// @Param       taskId path string true "Task ID"
// @Success     200 {object} resultResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/extractions/{id}/tasks/{taskId}/toggle [POST]
func (h *handler) ToggleTask(c *gin.Context) {
	ctx := c.Request.Context()

	resultID, taskID, err := taskPathParams(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	result, err := h.uc.ToggleTask(ctx, middleware.GetScope(c), resultID, taskID)
	if err != nil {
		h.l.Errorf(ctx, "uc.ToggleTask: %v", err)
		response.Error(c, mapStatus(err), err)
		return
	}

	response.OK(c, h.newReviewResp(c, result))
}

// UndoEdit godoc
// @Summary     Undo the last edit
// @Description Reverts the most recent edit on a result's task list.
// @Tags        Extraction
// @Produce     json
// @Param       id path string true "Result ID"
// @Success     200 {object} resultResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict - nothing to undo"
// @Router      /api/v1/extractions/{id}/undo [POST]
func (h *handler) UndoEdit(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := resultIDParam(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	result, err := h.uc.UndoEdit(ctx, middleware.GetScope(c), id)
	if err != nil {
		h.l.Errorf(ctx, "uc.UndoEdit: %v", err)
		response.Error(c, mapStatus(err), err)
		return
	}

	response.OK(c, h.newReviewResp(c, result))
}
