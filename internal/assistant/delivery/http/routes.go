package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.POST("/interpret", h.Interpret)
	rg.POST("/interpret/execute", h.Execute)
	rg.GET("/suggestions", h.Suggestions)

	rg.GET("/tasks", h.ListTasks)
	rg.GET("/budget/summary", h.BudgetSummary)
	rg.GET("/events", h.UpcomingEvents)
}
