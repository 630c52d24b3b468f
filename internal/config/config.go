package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

type Config struct {
	Port string

	DataSource   string
	CacheBackend string
	CacheTTLSecs int
	RedisURL     string

	CoinGeckoBaseURL string
	CoinGeckoAPIKey  string
	FetchTimeoutSecs int
	FetchConcurrency int
	CacheWarmSecs    int

	TelegramBotToken string

	MCPTransport string
	MCPHTTPBind  string
	MCPHTTPPort  int

	LogLevel  string
	LogFormat string

	TracingEnabled bool
	OTLPEndpoint   string
}

// Load reads configuration from the environment. Missing or invalid values
// fall back to defaults with a warning.
func Load() *Config {
	cfg := &Config{
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		CoinGeckoBaseURL: strings.TrimSpace(os.Getenv("COINGECKO_BASE_URL")),
		CoinGeckoAPIKey:  strings.TrimSpace(os.Getenv("COINGECKO_API_KEY")),
	}

	cfg.Port = strings.TrimSpace(os.Getenv("PORT"))
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	cfg.DataSource = choice("DATA_SOURCE", "static", "static", "live")
	cfg.CacheBackend = choice("CACHE_BACKEND", "memory", "memory", "redis")

	cfg.CacheTTLSecs = positiveInt("CACHE_TTL_SECS", 300)
	cfg.FetchTimeoutSecs = positiveInt("FETCH_TIMEOUT_SECS", 10)
	cfg.FetchConcurrency = positiveInt("FETCH_CONCURRENCY", 4)

	cfg.CacheWarmSecs = 0
	if v := strings.TrimSpace(os.Getenv("CACHE_WARM_SECS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.CacheWarmSecs = n
		} else {
			logrus.Warnf("invalid CACHE_WARM_SECS=%q, cache warming disabled", v)
		}
	}

	cfg.RedisURL = strings.TrimSpace(os.Getenv("REDIS_URL"))
	if cfg.RedisURL == "" {
		if cfg.CacheBackend == "redis" {
			logrus.Warn("REDIS_URL not set, defaulting to localhost:6379")
		}
		cfg.RedisURL = "localhost:6379"
	}

	if cfg.TelegramBotToken == "" {
		logrus.Info("TELEGRAM_BOT_TOKEN not set, Telegram bot disabled")
	}

	cfg.MCPTransport = choice("MCP_TRANSPORT", "stdio", "stdio", "http")

	cfg.MCPHTTPBind = strings.TrimSpace(os.Getenv("MCP_HTTP_BIND"))
	if cfg.MCPHTTPBind == "" {
		cfg.MCPHTTPBind = "127.0.0.1"
	}
	cfg.MCPHTTPPort = positiveInt("MCP_HTTP_PORT", 8090)

	cfg.LogLevel = strings.TrimSpace(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	cfg.LogFormat = choice("LOG_FORMAT", "text", "text", "json")

	cfg.TracingEnabled = !strings.EqualFold(strings.TrimSpace(os.Getenv("TRACING_ENABLED")), "false")
	cfg.OTLPEndpoint = strings.TrimSpace(os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"))

	return cfg
}

func positiveInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		logrus.Warnf("invalid %s=%q, defaulting to %d", key, v, def)
		return def
	}
	return n
}

func choice(key, def string, allowed ...string) string {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if v == "" {
		return def
	}
	for _, a := range allowed {
		if v == a {
			return v
		}
	}
	logrus.Warnf("unsupported %s=%q, defaulting to %s", key, v, def)
	return def
}
