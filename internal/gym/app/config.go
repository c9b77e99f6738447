package app

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/aussiebroadwan/gymtrack/pkg/httpx"
)

type Config struct {
	Env                 string        // dev, test, prod (default: dev)
	LogLevel            string        // debug, info, warn, error (default: info)
	LogFormat           string        // json, text (default: json)
	Port                int           // HTTP port (default: 8080)
	ShutdownGracePeriod time.Duration // default: 10s

	DatabaseDriver string // sqlite or postgres (default: sqlite)
	DatabaseFile   string // sqlite path (default: gym.db)
	DatabaseURL    string // postgres connection string
	PepperFile     string // password pepper, created when missing (default: pepper)

	LinkSecret    string        // HMAC secret for email links, at least 32 bytes
	LinkTTL       time.Duration // lifetime of email links (default: 1h)
	PublicBaseURL string        // prefix of emailed links (default: http://localhost:8080)

	MailDriver string // smtp or log (default: log)
	SMTPHost   string
	SMTPPort   int // default: 587
	SMTPUser   string
	SMTPPass   string
	SMTPFrom   string

	CORSOrigins []string // comma separated CORS_ALLOWED_ORIGINS (default: *)
	RateLimits  httpx.RateLimits
}

// LoadConfig reads the environment. A .env file in the working directory is
// loaded first without overriding variables that are already set.
func LoadConfig() Config {
	_ = godotenv.Load()

	defaults := httpx.DefaultRateLimits()

	return Config{
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),

		DatabaseDriver: getEnvOrDefault("GYM_DATABASE_DRIVER", "sqlite"),
		DatabaseFile:   getEnvOrDefault("GYM_DATABASE_FILE", "gym.db"),
		DatabaseURL:    os.Getenv("GYM_DATABASE_URL"),
		PepperFile:     getEnvOrDefault("GYM_PEPPER_FILE", "pepper"),

		LinkSecret:    os.Getenv("GYM_LINK_SECRET"),
		LinkTTL:       getEnvDurationOrDefault("GYM_LINK_TTL", time.Hour),
		PublicBaseURL: strings.TrimSuffix(getEnvOrDefault("GYM_PUBLIC_BASE_URL", "http://localhost:8080"), "/"),

		MailDriver: getEnvOrDefault("GYM_MAIL_DRIVER", "log"),
		SMTPHost:   os.Getenv("SMTP_HOST"),
		SMTPPort:   getEnvIntOrDefault("SMTP_PORT", 587),
		SMTPUser:   os.Getenv("SMTP_USERNAME"),
		SMTPPass:   os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:   os.Getenv("SMTP_FROM"),

		CORSOrigins: splitList(getEnvOrDefault("CORS_ALLOWED_ORIGINS", "*")),
		RateLimits: httpx.RateLimits{
			Strict:   getEnvRateLimit("STRICT", defaults.Strict),
			Moderate: getEnvRateLimit("MODERATE", defaults.Moderate),
			Lenient:  getEnvRateLimit("LENIENT", defaults.Lenient),
			Public:   getEnvRateLimit("PUBLIC", defaults.Public),
		},
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are minutes.
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}

// getEnvRateLimit overrides def with RATELIMIT_{prefix}_REQUESTS,
// RATELIMIT_{prefix}_WINDOW_SEC and RATELIMIT_{prefix}_BURST.
func getEnvRateLimit(prefix string, def httpx.RateLimit) httpx.RateLimit {
	return httpx.RateLimit{
		Requests: getEnvIntOrDefault("RATELIMIT_"+prefix+"_REQUESTS", def.Requests),
		Window:   time.Duration(getEnvIntOrDefault("RATELIMIT_"+prefix+"_WINDOW_SEC", int(def.Window/time.Second))) * time.Second,
		Burst:    getEnvIntOrDefault("RATELIMIT_"+prefix+"_BURST", def.Burst),
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
