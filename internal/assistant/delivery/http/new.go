package http

import (
	"github.com/gin-gonic/gin"

	"personal-assistant/internal/assistant"
	"personal-assistant/pkg/log"
)

// Handler is the public interface for the assistant HTTP delivery layer.
type Handler interface {
	Interpret(c *gin.Context)
	Execute(c *gin.Context)
	Suggestions(c *gin.Context)
	ListTasks(c *gin.Context)
	BudgetSummary(c *gin.Context)
	UpcomingEvents(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc assistant.UseCase
}

// New creates a new HTTP handler for the assistant domain.
func New(l log.Logger, uc assistant.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
