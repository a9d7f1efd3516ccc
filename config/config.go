package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// LLM Provider Abstraction
	LLM LLMConfig

	// Upstream APIs
	YouTube YouTubeConfig
	TTS     TTSConfig

	// Storage
	Cache    CacheConfig
	Redis    RedisConfig
	Session  SessionConfig
	Postgres PostgresConfig

	// Messaging
	NATS NATSConfig

	RateLimit    RateLimitConfig
	Conversation ConversationConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port         int
	Mode         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	RetryBackoff    string           `yaml:"retry_backoff"`     // none | linear | exponential
	MaxTotalTimeout string           `yaml:"max_total_timeout"` // Global timeout for entire fallback chain
	MaxTokens       int              `yaml:"max_tokens"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

type YouTubeConfig struct {
	APIKey     string
	MaxResults int
	SafeSearch string
}

// TTSConfig configures Google Cloud Text-to-Speech. CredentialsJSON takes
// precedence over CredentialsPath.
type TTSConfig struct {
	CredentialsJSON string
	CredentialsPath string
	LanguageCode    string
	VoiceName       string
	Gender          string
	Pitch           float64
	SpeakingRate    float64
}

// Enabled reports whether any credentials are configured.
func (c TTSConfig) Enabled() bool {
	return c.CredentialsJSON != "" || c.CredentialsPath != ""
}

type CacheConfig struct {
	Driver string // memory | redis
	Size   int
	TTL    time.Duration
}

type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

type SessionConfig struct {
	Driver string // memory | redis
	TTL    time.Duration
}

// PostgresConfig holds the profile store DSN. Profiles stay in memory when
// DSN is empty.
type PostgresConfig struct {
	DSN string
}

type NATSConfig struct {
	URL   string
	Token string
}

type RateLimitConfig struct {
	RequestsPerMin int
	Burst          int
}

type ConversationConfig struct {
	FreeLimit  int
	EmailBonus int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/strategy-shop/
// A .env file in the working directory is loaded first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/strategy-shop/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.ReadTimeout = viper.GetDuration("http_server.read_timeout")
	cfg.HTTPServer.WriteTimeout = viper.GetDuration("http_server.write_timeout")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.RetryBackoff = viper.GetString("llm.retry_backoff")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")
	cfg.LLM.MaxTokens = viper.GetInt("llm.max_tokens")
	cfg.LLM.Providers = loadProviders()

	// Single-key deployments: ANTHROPIC_API_KEY alone is enough.
	if len(cfg.LLM.Providers) == 0 {
		if key := viper.GetString("anthropic_api_key"); key != "" {
			cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
				Name:     "anthropic",
				Enabled:  true,
				Priority: 1,
				APIKey:   key,
				Model:    viper.GetString("anthropic_model"),
				Timeout:  "30s",
			})
		}
	}

	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, fmt.Errorf("invalid llm config: %w", err)
	}

	// YouTube
	cfg.YouTube.APIKey = expandEnvVar(viper.GetString("youtube.api_key"))
	if key := viper.GetString("youtube_api_key"); key != "" {
		cfg.YouTube.APIKey = key
	}
	cfg.YouTube.MaxResults = viper.GetInt("youtube.max_results")
	cfg.YouTube.SafeSearch = viper.GetString("youtube.safe_search")

	// Text-to-Speech
	cfg.TTS.CredentialsJSON = viper.GetString("tts.credentials_json")
	if creds := viper.GetString("google_tts_credentials"); creds != "" {
		cfg.TTS.CredentialsJSON = creds
	}
	cfg.TTS.CredentialsPath = viper.GetString("tts.credentials_path")
	cfg.TTS.LanguageCode = viper.GetString("tts.language_code")
	cfg.TTS.VoiceName = viper.GetString("tts.voice_name")
	cfg.TTS.Gender = viper.GetString("tts.gender")
	cfg.TTS.Pitch = viper.GetFloat64("tts.pitch")
	cfg.TTS.SpeakingRate = viper.GetFloat64("tts.speaking_rate")

	// Storage
	cfg.Cache.Driver = viper.GetString("cache.driver")
	cfg.Cache.Size = viper.GetInt("cache.size")
	cfg.Cache.TTL = viper.GetDuration("cache.ttl")

	cfg.Redis.Addr = viper.GetString("redis.addr")
	if addr := viper.GetString("redis_addr"); addr != "" {
		cfg.Redis.Addr = addr
	}
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")
	cfg.Redis.KeyPrefix = viper.GetString("redis.key_prefix")

	cfg.Session.Driver = viper.GetString("session.driver")
	cfg.Session.TTL = viper.GetDuration("session.ttl")

	cfg.Postgres.DSN = viper.GetString("postgres.dsn")
	if dsn := viper.GetString("database_url"); dsn != "" {
		cfg.Postgres.DSN = dsn
	}

	if err := validateStorage(cfg); err != nil {
		return nil, err
	}

	// Messaging
	cfg.NATS.URL = viper.GetString("nats.url")
	if natsURL := viper.GetString("nats_url"); natsURL != "" {
		cfg.NATS.URL = natsURL
	}
	cfg.NATS.Token = viper.GetString("nats.token")

	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")

	cfg.Conversation.FreeLimit = viper.GetInt("conversation.free_limit")
	cfg.Conversation.EmailBonus = viper.GetInt("conversation.email_bonus")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.read_timeout", "15s")
	viper.SetDefault("http_server.write_timeout", "90s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 3)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.retry_backoff", "exponential")
	viper.SetDefault("llm.max_total_timeout", "60s") // Default: 60 seconds for entire fallback chain
	viper.SetDefault("llm.max_tokens", 300)
	viper.SetDefault("anthropic_model", "claude-3-haiku-20240307")

	viper.SetDefault("youtube.max_results", 3)
	viper.SetDefault("youtube.safe_search", "strict")

	viper.SetDefault("tts.language_code", "en-US")
	viper.SetDefault("tts.voice_name", "en-US-Neural2-D")
	viper.SetDefault("tts.gender", "MALE")
	viper.SetDefault("tts.pitch", 0.2)
	viper.SetDefault("tts.speaking_rate", 0.95)

	viper.SetDefault("cache.driver", "memory")
	viper.SetDefault("cache.size", 500)
	viper.SetDefault("cache.ttl", "24h")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.key_prefix", "strategy-shop:")
	viper.SetDefault("session.driver", "memory")
	viper.SetDefault("session.ttl", "24h")

	viper.SetDefault("rate_limit.requests_per_min", 30)
	viper.SetDefault("rate_limit.burst", 5)

	viper.SetDefault("conversation.free_limit", 3)
	viper.SetDefault("conversation.email_bonus", 2)
}

// loadProviders reads llm.providers; viper yields []interface{} of maps.
func loadProviders() []ProviderConfig {
	if !viper.IsSet("llm.providers") {
		return nil
	}

	var providers []ProviderConfig
	providersList, ok := viper.Get("llm.providers").([]interface{})
	if !ok {
		return nil
	}
	for _, p := range providersList {
		providerMap, ok := p.(map[string]interface{})
		if !ok {
			continue
		}
		providers = append(providers, ProviderConfig{
			Name:     getStringFromMap(providerMap, "name"),
			Enabled:  getBoolFromMap(providerMap, "enabled"),
			Priority: getIntFromMap(providerMap, "priority"),
			APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
			BaseURL:  getStringFromMap(providerMap, "base_url"),
			Model:    getStringFromMap(providerMap, "model"),
			Timeout:  getStringFromMap(providerMap, "timeout"),
		})
	}
	return providers
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured - add llm.providers to config.yaml or set ANTHROPIC_API_KEY")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}

		if provider.Enabled {
			enabledCount++

			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s: priority must be positive", provider.Name)
			}

			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true
		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

func validateStorage(cfg *Config) error {
	for name, driver := range map[string]string{"cache": cfg.Cache.Driver, "session": cfg.Session.Driver} {
		switch driver {
		case "memory":
		case "redis":
			if cfg.Redis.Addr == "" {
				return fmt.Errorf("%s.driver is redis but redis.addr is empty", name)
			}
		default:
			return fmt.Errorf("%s.driver: unknown driver %q", name, driver)
		}
	}
	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
