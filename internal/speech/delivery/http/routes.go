package http

import (
	"github.com/gin-gonic/gin"

	"strategy-shop/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/tts", mw.Identify(), mw.RateLimit(), h.Synthesize)
}
