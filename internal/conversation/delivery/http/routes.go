package http

import (
	"github.com/gin-gonic/gin"

	"strategy-shop/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/topics", h.Topics)

	chat := rg.Group("/chat")
	{
		chat.POST("", mw.Identify(), mw.RateLimit(), h.Chat)
		chat.POST("/parse", h.Parse)
	}

	sessions := rg.Group("/sessions", mw.Identify())
	{
		sessions.GET("", h.ListSessions)
		sessions.GET("/current", h.CurrentSession)
		sessions.DELETE("", h.DeleteSessions)
	}
}
