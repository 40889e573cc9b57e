package http

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

// processSummarizeReq binds the optional summarize body. An empty body means defaults.
func (h *handler) processSummarizeReq(c *gin.Context) (summarizeReq, error) {
	var req summarizeReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, errInvalidBody
	}
	return req, nil
}

// processSendReq binds the send body and extracts the summary text.
func (h *handler) processSendReq(c *gin.Context) (string, error) {
	var req sendReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return "", errSummaryRequired
	}
	text, ok := req.text()
	if !ok {
		return "", errSummaryRequired
	}
	return text, nil
}
