package http

import (
	"github.com/gin-gonic/gin"

	"personal-assistant/internal/assistant"
	"personal-assistant/pkg/response"
)

// mapError translates domain errors into HTTP responses. Anything the
// handler does not recognize becomes an opaque 500.
func (h *handler) mapError(c *gin.Context, err error) {
	switch err {
	case assistant.ErrEmptyText, assistant.ErrUnknownFilter:
		response.Error(c, err)
	default:
		response.InternalError(c, err)
	}
}
