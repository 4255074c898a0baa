package http

import (
	"github.com/gin-gonic/gin"

	"personal-assistant/pkg/response"
)

// Interpret godoc
// @Summary     Interpret an utterance
// @Description Classifies the text into intents, extracts entities, and proposes actions without touching the stores.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body interpretReq true "Utterance"
// @Success     200  {object} interpretResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/assistant/interpret [POST]
func (h *handler) Interpret(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processInterpretReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Interpret(ctx, req.toInterpretInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Interpret: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newInterpretResp(output))
}

// Execute godoc
// @Summary     Interpret and apply
// @Description Interprets the text and applies every proposed action against the stores. Failing actions are reported per item.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body interpretReq true "Utterance"
// @Success     200  {object} executeResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/interpret/execute [POST]
func (h *handler) Execute(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processInterpretReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Execute(ctx, req.toExecuteInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Execute: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newExecuteResp(output))
}

// Suggestions godoc
// @Summary     Proactive suggestions
// @Description Returns at most a handful of suggestions derived from the current store state and time of day.
// @Tags        Assistant
// @Produce     json
// @Success     200 {object} suggestionsResp
// @Router      /api/v1/assistant/suggestions [GET]
func (h *handler) Suggestions(c *gin.Context) {
	ctx := c.Request.Context()

	response.OK(c, suggestionsResp{Suggestions: h.uc.Suggestions(ctx)})
}

// ListTasks godoc
// @Summary     List tasks
// @Description Lists tasks by the same coarse filters the NLU proposes: all, today, overdue, high_priority.
// @Tags        Assistant
// @Produce     json
// @Param       filter query string false "all | today | overdue | high_priority"
// @Param       done   query bool   false "Filter by completion"
// @Success     200 {object} listTasksResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/tasks [GET]
func (h *handler) ListTasks(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListTasksReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	tasks, err := h.uc.ListTasks(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListTasks: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, listTasksResp{Tasks: newTaskItems(tasks), Count: len(tasks)})
}

// BudgetSummary godoc
// @Summary     Current month budget summary
// @Description Aggregates income, expenses, balance, and the per-category expense breakdown for the current month.
// @Tags        Assistant
// @Produce     json
// @Success     200 {object} summaryItem
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/budget/summary [GET]
func (h *handler) BudgetSummary(c *gin.Context) {
	ctx := c.Request.Context()

	summary, err := h.uc.BudgetSummary(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.BudgetSummary: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newSummaryItem(summary))
}

// UpcomingEvents godoc
// @Summary     Upcoming events
// @Description Lists events starting within the next N days (default 7), ordered by start time.
// @Tags        Assistant
// @Produce     json
// @Param       days query int false "Window in days (default 7)"
// @Success     200 {object} listEventsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/events [GET]
func (h *handler) UpcomingEvents(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpcomingEventsReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	events, err := h.uc.UpcomingEvents(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpcomingEvents: %v", err)
		h.mapError(c, err)
		return
	}

	items := make([]eventItem, 0, len(events))
	for _, event := range events {
		items = append(items, newEventItem(event))
	}
	response.OK(c, listEventsResp{Events: items, Count: len(items)})
}
