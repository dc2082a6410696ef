package http

import (
	"github.com/gin-gonic/gin"

	"todo-tracker/internal/task"
	"todo-tracker/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	List(c *gin.Context)
	Add(c *gin.Context)
	Search(c *gin.Context)
	Stats(c *gin.Context)
	MarkDone(c *gin.Context)
	Delete(c *gin.Context)
	Sort(c *gin.Context)
	Save(c *gin.Context)
	Load(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc task.UseCase
}

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc task.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
