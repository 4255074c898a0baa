package http

import (
	"github.com/gin-gonic/gin"

	"personal-assistant/internal/assistant"
)

// --- Request DTOs ---

type interpretReq struct {
	Text    string         `json:"text"    binding:"required,max=2000"`
	Context map[string]any `json:"context"`
}

func (r interpretReq) toInterpretInput() assistant.InterpretInput {
	return assistant.InterpretInput{
		Text:    r.Text,
		Context: r.Context,
	}
}

func (r interpretReq) toExecuteInput() assistant.ExecuteInput {
	return assistant.ExecuteInput{
		Text:    r.Text,
		Context: r.Context,
	}
}

// ---

type listTasksReq struct {
	Filter string `form:"filter" binding:"omitempty,oneof=all today overdue high_priority"`
	Done   *bool  `form:"done"`
}

func (r listTasksReq) toInput() assistant.ListTasksInput {
	return assistant.ListTasksInput{
		Filter: r.Filter,
		Done:   r.Done,
	}
}

// ---

type upcomingEventsReq struct {
	Days int `form:"days" binding:"omitempty,min=1,max=365"`
}

func (r upcomingEventsReq) toInput() assistant.UpcomingEventsInput {
	return assistant.UpcomingEventsInput{Days: r.Days}
}

// --- Binding helpers ---

func (h *handler) processInterpretReq(c *gin.Context) (interpretReq, error) {
	var req interpretReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processListTasksReq(c *gin.Context) (listTasksReq, error) {
	var req listTasksReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processUpcomingEventsReq(c *gin.Context) (upcomingEventsReq, error) {
	var req upcomingEventsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}
