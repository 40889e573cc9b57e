package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the summary actions under rg (/api). limit guards the
// endpoints that call third-party services and may be nil.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, limit gin.HandlerFunc) {
	chain := func(final gin.HandlerFunc) []gin.HandlerFunc {
		if limit == nil {
			return []gin.HandlerFunc{final}
		}
		return []gin.HandlerFunc{limit, final}
	}

	rg.POST("/summarize", chain(h.Summarize)...)
	rg.POST("/send-to-slack", chain(h.SendToSlack)...)
	rg.POST("/send-to-telegram", chain(h.SendToTelegram)...)
}
