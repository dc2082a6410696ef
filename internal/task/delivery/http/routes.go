package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Tasks are addressed by their 1-based position, which shifts after deletes and sorts.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	tasks := rg.Group("/tasks")
	{
		tasks.GET("", h.List)
		tasks.POST("", h.Add)
		tasks.GET("/search", h.Search)
		tasks.GET("/stats", h.Stats)
		tasks.POST("/sort", h.Sort)
		tasks.POST("/save", h.Save)
		tasks.POST("/load", h.Load)
		tasks.PATCH("/:index/done", h.MarkDone)
		tasks.DELETE("/:index", h.Delete)
	}
}
