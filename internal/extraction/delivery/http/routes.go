package http

import (
	"github.com/gin-gonic/gin"

	"tasklens/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Every route
// runs behind scope resolution; only the pipeline entry point is rate
// limited, because reads and edits never reach a provider.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.GET("/usage", mw.Scope(), h.Usage)

	extractions := rg.Group("/extractions")
	extractions.Use(mw.Scope())
	{
		extractions.POST("", mw.RateLimit(), h.Extract)
		extractions.GET("", h.ListResults)
		extractions.GET("/:id", h.DetailResult)
		extractions.DELETE("/:id", h.DeleteResult)
		extractions.PATCH("/:id/tasks/:taskId", h.UpdateTask)
		extractions.DELETE("/:id/tasks/:taskId", h.RemoveTask)
		extractions.POST("/:id/tasks/:taskId/toggle", h.ToggleTask)
		extractions.POST("/:id/undo", h.UndoEdit)
	}
}
