package http

import (
	"github.com/gin-gonic/gin"

	"multilingual-chatbot/pkg/response"
)

// Chat godoc
// @Summary     Send a chat message
// @Description Runs one conversation turn. A new session is started when session_id is omitted.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Chat message"
// @Success     200  {object} chatResp
// @Failure     400  {object} response.ErrorResp "Invalid request parameters"
// @Failure     429  {object} response.ErrorResp "Rate limit exceeded"
// @Failure     500  {object} response.ErrorResp "Failed to generate response"
// @Router      /chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.Chat(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Chat: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newChatResp(output))
}

// History godoc
// @Summary     Get chat history
// @Description Returns the turns of a session in conversation order. Unknown sessions return an empty list.
// @Tags        Chat
// @Produce     json
// @Param       session_id path string true "Session ID"
// @Success     200 {array}  turnResp
// @Failure     500 {object} response.ErrorResp "Internal server error"
// @Router      /chat-history/{session_id} [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processSessionID(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.History(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.History: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newHistoryResp(output))
}

// Reset godoc
// @Summary     Clear chat history
// @Description Deletes the session transcript and its conversation memory. Always succeeds for unknown sessions.
// @Tags        Chat
// @Produce     json
// @Param       session_id path string true "Session ID"
// @Success     200 {object} resetResp
// @Failure     500 {object} response.ErrorResp "Internal server error"
// @Router      /chat-history/{session_id} [DELETE]
func (h *handler) Reset(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processSessionID(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.Reset(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Reset: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newResetResp(output))
}
