package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"strategy-shop/config"
	_ "strategy-shop/docs" // Swagger docs
	conversationRepo "strategy-shop/internal/conversation/repository"
	convMemory "strategy-shop/internal/conversation/repository/memory"
	convRedis "strategy-shop/internal/conversation/repository/redis"
	conversationUC "strategy-shop/internal/conversation/usecase"
	"strategy-shop/internal/httpserver"
	"strategy-shop/internal/profile"
	profileRepo "strategy-shop/internal/profile/repository"
	profileMemory "strategy-shop/internal/profile/repository/memory"
	profilePostgre "strategy-shop/internal/profile/repository/postgre"
	profileUC "strategy-shop/internal/profile/usecase"
	"strategy-shop/internal/speech"
	speechUC "strategy-shop/internal/speech/usecase"
	"strategy-shop/internal/video"
	videoUC "strategy-shop/internal/video/usecase"
	"strategy-shop/pkg/cache"
	"strategy-shop/pkg/database"
	"strategy-shop/pkg/events"
	"strategy-shop/pkg/llmprovider"
	"strategy-shop/pkg/log"
	"strategy-shop/pkg/tts"
	"strategy-shop/pkg/youtube"
)

// @title       Strategy Shop API
// @description Business strategist chat with speech, video suggestions and a freemium allowance.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Strategy Shop...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	var readiness []httpserver.ReadinessCheck

	// 3. Redis (shared by the audio cache and the session store)
	var rdb *redis.Client
	if cfg.Cache.Driver == "redis" || cfg.Session.Driver == "redis" {
		rdb, err = database.NewRedis(ctx, database.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			logger.Error(ctx, "Failed to connect to Redis: ", err)
			return
		}
		defer rdb.Close()
		readiness = append(readiness, httpserver.ReadinessCheck{
			Name:  "redis",
			Check: func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		})
		logger.Infof(ctx, "Redis connected at %s", cfg.Redis.Addr)
	}

	// 4. Profiles: Postgres when configured, memory otherwise
	var profiles profileRepo.Repository
	if cfg.Postgres.DSN != "" {
		var db *sql.DB
		db, err = database.NewPostgres(ctx, cfg.Postgres.DSN)
		if err != nil {
			logger.Error(ctx, "Failed to connect to Postgres: ", err)
			return
		}
		defer db.Close()
		readiness = append(readiness, httpserver.ReadinessCheck{
			Name:  "postgres",
			Check: db.PingContext,
		})
		profiles = profilePostgre.New(db, logger)
		logger.Info(ctx, "Profiles stored in Postgres")
	} else {
		profiles = profileMemory.New()
		logger.Warn(ctx, "POSTGRES DSN not set, profiles are kept in memory")
	}

	// 5. Events
	publisher := events.NewNoop()
	if cfg.NATS.URL != "" {
		publisher, err = events.NewNATS(ctx, events.NATSConfig{URL: cfg.NATS.URL, Token: cfg.NATS.Token}, logger)
		if err != nil {
			logger.Error(ctx, "Failed to connect to NATS: ", err)
			return
		}
		logger.Infof(ctx, "Publishing events to %s", cfg.NATS.URL)
	}
	defer publisher.Close()

	// 6. Cache
	var respCache cache.Cache
	if cfg.Cache.Driver == "redis" {
		respCache = cache.NewRedis(rdb, cfg.Redis.KeyPrefix, cfg.Cache.TTL)
	} else {
		respCache = cache.NewMemory(cfg.Cache.Size, cfg.Cache.TTL)
	}
	defer respCache.Close()

	// 7. Sessions
	var sessions conversationRepo.Repository
	if cfg.Session.Driver == "redis" {
		sessions = convRedis.New(rdb, cfg.Redis.KeyPrefix, cfg.Session.TTL, logger)
	} else {
		sessions = convMemory.New(cfg.Session.TTL)
	}

	// 8. LLM providers
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	managerCfg, err := llmprovider.NewManagerConfig(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Invalid LLM retry config: ", err)
		return
	}
	llm := llmprovider.NewManager(providers, managerCfg, logger)
	for _, p := range providers {
		logger.Infof(ctx, "LLM provider: %s (%s)", p.Name(), p.Model())
	}

	// 9. Text-to-Speech (optional)
	var synth speech.Synthesizer
	if cfg.TTS.Enabled() {
		voice := tts.Voice{
			LanguageCode: cfg.TTS.LanguageCode,
			Name:         cfg.TTS.VoiceName,
			Gender:       cfg.TTS.Gender,
			Pitch:        cfg.TTS.Pitch,
			SpeakingRate: cfg.TTS.SpeakingRate,
		}
		var ttsClient *tts.Client
		if cfg.TTS.CredentialsJSON != "" {
			ttsClient, err = tts.NewClientFromCredentialsJSON(ctx, []byte(cfg.TTS.CredentialsJSON), voice)
		} else {
			ttsClient, err = tts.NewClientFromCredentialsFile(ctx, cfg.TTS.CredentialsPath, voice)
		}
		if err != nil {
			logger.Warnf(ctx, "Text-to-Speech not available (optional): %v", err)
		} else {
			synth = ttsClient
			logger.Infof(ctx, "Text-to-Speech initialized with voice %s", cfg.TTS.VoiceName)
		}
	} else {
		logger.Warn(ctx, "Text-to-Speech skipped: GOOGLE_TTS_CREDENTIALS is missing")
	}

	// 10. YouTube (optional)
	var searcher video.Searcher
	if cfg.YouTube.APIKey != "" {
		ytClient, ytErr := youtube.NewClient(ctx, youtube.Config{
			APIKey:     cfg.YouTube.APIKey,
			MaxResults: int64(cfg.YouTube.MaxResults),
			SafeSearch: cfg.YouTube.SafeSearch,
		})
		if ytErr != nil {
			logger.Warnf(ctx, "YouTube search not available (optional): %v", ytErr)
		} else {
			searcher = ytClient
			logger.Info(ctx, "YouTube search initialized")
		}
	} else {
		logger.Warn(ctx, "YouTube search skipped: YOUTUBE_API_KEY is missing")
	}

	// 11. UseCases
	profileUseCase := profileUC.New(profiles, publisher, profile.Limits{
		FreeLimit:  cfg.Conversation.FreeLimit,
		EmailBonus: cfg.Conversation.EmailBonus,
	}, logger)
	speechUseCase := speechUC.New(synth, respCache, logger)
	videoUseCase := videoUC.New(searcher, nil, respCache, logger)
	conversationUseCase := conversationUC.New(sessions, llm, profileUseCase, speechUseCase, videoUseCase, publisher, logger)

	// 12. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		ReadTimeout:    cfg.HTTPServer.ReadTimeout,
		WriteTimeout:   cfg.HTTPServer.WriteTimeout,
		RateLimit:      cfg.RateLimit,
		Readiness:      readiness,
		ConversationUC: conversationUseCase,
		ProfileUC:      profileUseCase,
		SpeechUC:       speechUseCase,
		VideoUC:        videoUseCase,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 13. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
