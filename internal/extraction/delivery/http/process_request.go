package http

import (
	"errors"

	"github.com/gin-gonic/gin"
)

var errMissingResultID = errors.New("result id is required")
var errMissingTaskID = errors.New("task id is required")

// processExtractReq binds and validates the extraction request body.
func (h *handler) processExtractReq(c *gin.Context) (extractReq, error) {
	var req extractReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processUpdateTaskReq binds and validates the task edit body + URI params.
func (h *handler) processUpdateTaskReq(c *gin.Context) (updateTaskReq, string, string, error) {
	var req updateTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, "", "", err
	}
	resultID, taskID, err := taskPathParams(c)
	if err != nil {
		return req, "", "", err
	}
	return req, resultID, taskID, req.validate()
}

func resultIDParam(c *gin.Context) (string, error) {
	id := c.Param("id")
	if id == "" {
		return "", errMissingResultID
	}
	return id, nil
}

func taskPathParams(c *gin.Context) (string, string, error) {
	resultID, err := resultIDParam(c)
	if err != nil {
		return "", "", err
	}
	taskID := c.Param("taskId")
	if taskID == "" {
		return "", "", errMissingTaskID
	}
	return resultID, taskID, nil
}
