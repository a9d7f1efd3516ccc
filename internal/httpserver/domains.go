package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	conversationHTTP "strategy-shop/internal/conversation/delivery/http"
	"strategy-shop/internal/middleware"
	profileHTTP "strategy-shop/internal/profile/delivery/http"
	speechHTTP "strategy-shop/internal/speech/delivery/http"
	videoHTTP "strategy-shop/internal/video/delivery/http"
)

// setupConversationDomain registers /topics, /chat and /sessions.
func (srv HTTPServer) setupConversationDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := conversationHTTP.New(srv.l, srv.conversationUC)
	conversationHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Conversation domain registered")
	return nil
}

func (srv HTTPServer) setupProfileDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := profileHTTP.New(srv.l, srv.profileUC)
	profileHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Profile domain registered")
	return nil
}

func (srv HTTPServer) setupSpeechDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	h := speechHTTP.New(srv.l, srv.speechUC)
	speechHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Speech domain registered")
}

func (srv HTTPServer) setupVideoDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	h := videoHTTP.New(srv.l, srv.videoUC)
	videoHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Video domain registered")
}
