package config

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Chat
	Session      SessionConfig
	Redis        RedisConfig
	Orchestrator OrchestratorConfig

	// Generation pipeline; empty Path selects fallback mode
	Model ModelConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	Enabled         bool
	RequestsPerMin  int
	MaxTrackedPeers int
}

// SessionConfig selects and sizes the session store backend.
type SessionConfig struct {
	Backend  string // "memory" or "redis"
	TTL      time.Duration
	Capacity int // memory backend only
}

type RedisConfig struct {
	Addr        string
	Password    string
	DB          int
	KeyPrefix   string
	DialTimeout time.Duration
}

type OrchestratorConfig struct {
	MemoryTurns int
}

// ModelConfig configures the model-backed mode.
type ModelConfig struct {
	Provider         string
	Path             string // model name/path as exposed by the serving endpoint
	BaseURL          string
	APIKey           string
	Timeout          time.Duration
	RetryAttempts    int
	RetryDelay       time.Duration
	GenerationConfig GenerationConfig

	// Secondary servers tried in order when the primary fails
	Fallbacks []EndpointConfig
}

// EndpointConfig is one fallback model server. Blank provider, path and
// api_key are taken from the primary model.
type EndpointConfig struct {
	Provider string `mapstructure:"provider"`
	Path     string `mapstructure:"path"`
	BaseURL  string `mapstructure:"base_url"`
	APIKey   string `mapstructure:"api_key"`
}

// GenerationConfig mirrors the text-generation pipeline options.
type GenerationConfig struct {
	MaxNewTokens int      `json:"max_new_tokens"`
	DoSample     bool     `json:"do_sample"`
	Temperature  float64  `json:"temperature"`
	TopP         float64  `json:"top_p"`
	Stop         []string `json:"stop"`
}

// Enabled reports whether a model is configured.
func (m ModelConfig) Enabled() bool {
	return strings.TrimSpace(m.Path) != ""
}

// Session backends.
const (
	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"
)

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/ unless
// path points at a specific file.
func Load(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/app/")
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Legacy environment variable names.
	_ = v.BindEnv("model.path", "MODEL_PATH", "FINE_TUNED_MODEL_PATH")
	_ = v.BindEnv("model.generation_config", "MODEL_GENERATION_CONFIG", "ORCHESTRATOR_GENERATION_CONFIG")
	_ = v.BindEnv("http_server.port", "HTTP_SERVER_PORT", "PORT")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.RateLimit.Enabled = v.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.MaxTrackedPeers = v.GetInt("rate_limit.max_tracked_peers")

	// Chat
	cfg.Session.Backend = strings.ToLower(v.GetString("session.backend"))
	cfg.Session.TTL = v.GetDuration("session.ttl")
	cfg.Session.Capacity = v.GetInt("session.capacity")
	cfg.Redis.Addr = v.GetString("redis.addr")
	cfg.Redis.Password = v.GetString("redis.password")
	cfg.Redis.DB = v.GetInt("redis.db")
	cfg.Redis.KeyPrefix = v.GetString("redis.key_prefix")
	cfg.Redis.DialTimeout = v.GetDuration("redis.dial_timeout")
	cfg.Orchestrator.MemoryTurns = v.GetInt("orchestrator.memory_turns")

	// Model
	cfg.Model.Provider = v.GetString("model.provider")
	cfg.Model.Path = strings.TrimSpace(v.GetString("model.path"))
	cfg.Model.BaseURL = v.GetString("model.base_url")
	cfg.Model.APIKey = v.GetString("model.api_key")
	cfg.Model.Timeout = v.GetDuration("model.timeout")
	cfg.Model.RetryAttempts = v.GetInt("model.retry_attempts")
	cfg.Model.RetryDelay = v.GetDuration("model.retry_delay")
	if err := v.UnmarshalKey("model.fallbacks", &cfg.Model.Fallbacks); err != nil {
		return nil, fmt.Errorf("model.fallbacks: %w", err)
	}
	cfg.Model.GenerationConfig = defaultGenerationConfig()
	if raw := v.Get("model.generation_config"); raw != nil {
		if err := mergeGenerationConfig(&cfg.Model.GenerationConfig, raw); err != nil {
			// A broken override keeps the defaults, it never blocks startup.
			fmt.Printf("Warning: ignoring model.generation_config: %v\n", err)
			cfg.Model.GenerationConfig = defaultGenerationConfig()
		}
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8000)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests_per_min", 120)
	v.SetDefault("rate_limit.max_tracked_peers", 1000)

	v.SetDefault("session.backend", SessionBackendMemory)
	v.SetDefault("session.ttl", "30m")
	v.SetDefault("session.capacity", 10000)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.key_prefix", "chat")
	v.SetDefault("redis.dial_timeout", "5s")
	v.SetDefault("orchestrator.memory_turns", 10)

	v.SetDefault("model.provider", "openai")
	v.SetDefault("model.base_url", "http://localhost:8001/v1")
	v.SetDefault("model.timeout", "30s")
	v.SetDefault("model.retry_attempts", 1)
	v.SetDefault("model.retry_delay", "1s")
}

func defaultGenerationConfig() GenerationConfig {
	return GenerationConfig{
		MaxNewTokens: 128,
		DoSample:     false,
		Temperature:  0.7,
	}
}

// mergeGenerationConfig overlays a JSON string (from env) or a map (from
// YAML) onto dst. Keys absent from the override keep their defaults.
func mergeGenerationConfig(dst *GenerationConfig, raw any) error {
	var data []byte
	switch val := raw.(type) {
	case string:
		if strings.TrimSpace(val) == "" {
			return nil
		}
		data = []byte(val)
	case map[string]interface{}:
		b, err := json.Marshal(val)
		if err != nil {
			return err
		}
		data = b
	default:
		return fmt.Errorf("generation config must be a JSON object, got %T", raw)
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return fmt.Errorf("generation config must be a JSON object: %w", err)
	}
	return json.Unmarshal(data, dst)
}

func validate(cfg *Config) error {
	switch cfg.Session.Backend {
	case SessionBackendMemory, SessionBackendRedis:
	default:
		return fmt.Errorf("session.backend must be %q or %q, got %q", SessionBackendMemory, SessionBackendRedis, cfg.Session.Backend)
	}
	if cfg.Session.TTL <= 0 {
		return fmt.Errorf("session.ttl must be positive")
	}
	if cfg.Session.Backend == SessionBackendMemory && cfg.Session.Capacity <= 0 {
		return fmt.Errorf("session.capacity must be positive")
	}
	if cfg.Orchestrator.MemoryTurns <= 0 {
		return fmt.Errorf("orchestrator.memory_turns must be positive")
	}
	if cfg.Model.Enabled() && cfg.Model.Timeout <= 0 {
		return fmt.Errorf("model.timeout must be positive when a model is configured")
	}
	for i, fb := range cfg.Model.Fallbacks {
		if strings.TrimSpace(fb.BaseURL) == "" {
			return fmt.Errorf("model.fallbacks[%d].base_url is required", i)
		}
	}
	if cfg.RateLimit.Enabled && cfg.RateLimit.RequestsPerMin <= 0 {
		return fmt.Errorf("rate_limit.requests_per_min must be positive")
	}
	return nil
}
