package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"strategy-shop/config"
	"strategy-shop/internal/conversation"
	"strategy-shop/internal/profile"
	"strategy-shop/internal/speech"
	"strategy-shop/internal/video"
	"strategy-shop/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin          *gin.Engine
	l            log.Logger
	port         int
	mode         string
	environment  string
	readTimeout  time.Duration
	writeTimeout time.Duration
	rateLimit    config.RateLimitConfig
	readiness    []ReadinessCheck

	// Domains
	conversationUC conversation.UseCase
	profileUC      profile.UseCase
	speechUC       speech.UseCase
	videoUC        video.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger       log.Logger
	Port         int
	Mode         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	RateLimit    config.RateLimitConfig
	Readiness    []ReadinessCheck

	ConversationUC conversation.UseCase
	ProfileUC      profile.UseCase
	SpeechUC       speech.UseCase
	VideoUC        video.UseCase
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		readTimeout:    cfg.ReadTimeout,
		writeTimeout:   cfg.WriteTimeout,
		rateLimit:      cfg.RateLimit,
		readiness:      cfg.Readiness,
		conversationUC: cfg.ConversationUC,
		profileUC:      cfg.ProfileUC,
		speechUC:       cfg.SpeechUC,
		videoUC:        cfg.VideoUC,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.conversationUC == nil {
		return errors.New("conversation usecase is required")
	}
	if srv.profileUC == nil {
		return errors.New("profile usecase is required")
	}
	return nil
}
