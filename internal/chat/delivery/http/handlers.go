package http

import (
	"github.com/gin-gonic/gin"

	"argo-assistant/pkg/response"
)

// Chat godoc
// @Summary     Send a chat message
// @Description Classifies the message, dispatches it to the matching provider (AI completion, structured lookup or web search) and returns the response.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body     chatReq   true "Chat message"
// @Success     200  {object} chatResp
// @Failure     400  {object} errorResp "No data provided / No message provided"
// @Failure     500  {object} errorResp "Provider or unexpected failure"
// @Router      /api/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		h.l.Warnf(ctx, "chat.http.Chat: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	res := h.uc.Handle(ctx, req.toInput())
	if !res.Succeeded() {
		response.Error(c, h.mapResult(res))
		return
	}

	response.Chat(c, res.ResponseText)
}
