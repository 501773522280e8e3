package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the chat endpoint onto rg (mounted at /api).
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("/chat", h.Chat)
}
