package http

import (
	"github.com/gin-gonic/gin"

	"tasklens/internal/extraction"
	"tasklens/pkg/log"
)

// Handler is the public interface for the extraction HTTP delivery layer.
type Handler interface {
	Extract(c *gin.Context)
	Usage(c *gin.Context)
	ListResults(c *gin.Context)
	DetailResult(c *gin.Context)
	DeleteResult(c *gin.Context)
	UpdateTask(c *gin.Context)
	RemoveTask(c *gin.Context)
	ToggleTask(c *gin.Context)
	UndoEdit(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc extraction.UseCase
}

// New creates a new HTTP handler for the extraction domain.
func New(l log.Logger, uc extraction.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
