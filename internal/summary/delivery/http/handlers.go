package http

import (
	"github.com/gin-gonic/gin"

	"todo-summary-assistant/pkg/response"
)

// Summarize godoc
// @Summary     Summarize pending todos
// @Description Generates a summary of pending todos with the configured language model,
// @Description falling back to a local summary. Set sendToSlack to true to also post it.
// @Tags        Summary
// @Accept      json
// @Produce     json
// @Param       body body     summarizeReq false "Options"
// @Success     200  {object} summarizeResp
// @Failure     400  {object} response.Resp "Invalid request body"
// @Failure     429  {object} response.Resp "Too many requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/summarize [POST]
func (h *handler) Summarize(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSummarizeReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Summarize(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Summarize: %v", err)
		response.Error(c, h.mapError(err, "Failed to generate summary"))
		return
	}

	response.OK(c, h.newSummarizeResp(output))
}

// SendToSlack godoc
// @Summary     Send a summary to Slack
// @Description Posts an already generated summary to the configured Slack webhook.
// @Tags        Summary
// @Accept      json
// @Produce     json
// @Param       body body     sendReq true "Summary text"
// @Success     200  {object} notification.Result
// @Failure     400  {object} response.Resp "Summary is required"
// @Failure     429  {object} response.Resp "Too many requests"
// @Router      /api/send-to-slack [POST]
func (h *handler) SendToSlack(c *gin.Context) {
	ctx := c.Request.Context()

	text, err := h.processSendReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.uc.SendToSlack(ctx, text)
	if err != nil {
		h.l.Errorf(ctx, "uc.SendToSlack: %v", err)
		response.Error(c, h.mapError(err, "Failed to send to Slack"))
		return
	}

	response.OK(c, result)
}

// SendToTelegram godoc
// @Summary     Send a summary to Telegram
// @Description Posts an already generated summary to the configured Telegram chat.
// @Tags        Summary
// @Accept      json
// @Produce     json
// @Param       body body     sendReq true "Summary text"
// @Success     200  {object} notification.Result
// @Failure     400  {object} response.Resp "Summary is required"
// @Failure     429  {object} response.Resp "Too many requests"
// @Router      /api/send-to-telegram [POST]
func (h *handler) SendToTelegram(c *gin.Context) {
	ctx := c.Request.Context()

	text, err := h.processSendReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.uc.SendToTelegram(ctx, text)
	if err != nil {
		h.l.Errorf(ctx, "uc.SendToTelegram: %v", err)
		response.Error(c, h.mapError(err, "Failed to send to Telegram"))
		return
	}

	response.OK(c, result)
}
