package http

import (
	"github.com/gin-gonic/gin"

	"strategy-shop/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	p := rg.Group("/profile", mw.Identify())
	{
		p.GET("", h.Get)
		p.DELETE("", h.Reset)
		p.GET("/metadata", h.Metadata)
		p.POST("/email", h.SaveEmail)
		p.PUT("/business", h.UpdateBusiness)
	}
}
