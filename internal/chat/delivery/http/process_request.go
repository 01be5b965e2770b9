package http

import (
	"github.com/gin-gonic/gin"

	"multilingual-chatbot/internal/chat"
)

// processChatReq binds and validates the chat request body.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Debugf(c.Request.Context(), "internal.chat.delivery.http.processChatReq: %v", err)
		return req, chat.ErrInvalidRequest
	}
	return req, req.validate()
}

// processSessionID reads the session id path parameter.
func (h *handler) processSessionID(c *gin.Context) (string, error) {
	id := c.Param("session_id")
	if id == "" {
		return "", chat.ErrSessionIDRequired
	}
	return id, nil
}
