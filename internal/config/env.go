package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

// Env holds all runtime configuration. Values come from the environment,
// optionally seeded from a .env file; every field has a working default so
// the service boots with zero configuration in development.
type Env struct {
	ServiceName string
	GinMode     string
	AppAddr     string

	CORSOrigins []string

	// EmailJS transactional-email delivery.
	EmailJSBaseURL    string
	EmailJSServiceID  string
	EmailJSTemplateID string
	EmailJSPublicKey  string
	EmailJSPrivateKey string
	NotifyEmail       string

	// Optional Telegram owner alerts.
	TelegramBotToken string
	TelegramChatID   int64

	// Optional Google Maps distance lookups; random stub is used when empty.
	GoogleMapsAPIKey string

	// Optional Redis distance cache; disabled when addr is empty.
	RedisAddr     string
	RedisPassword string
	DistanceTTL   time.Duration

	DispatchTimeout time.Duration
	SessionTTL      time.Duration
}

func LoadEnv() Env {
	_ = godotenv.Load(".env")

	e := Env{}

	e.ServiceName = cast.ToString(getOrReturnDefault("SERVICE_NAME", "samayas-api"))
	e.GinMode = cast.ToString(getOrReturnDefault("GIN_MODE", ""))
	e.AppAddr = cast.ToString(getOrReturnDefault("APP_ADDR", ":8080"))

	if raw := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				e.CORSOrigins = append(e.CORSOrigins, o)
			}
		}
	} else {
		e.CORSOrigins = []string{
			"http://localhost:3000",
			"http://localhost:5173",
			"http://127.0.0.1:5173",
		}
	}

	e.EmailJSBaseURL = cast.ToString(getOrReturnDefault("EMAILJS_BASE_URL", "https://api.emailjs.com/api/v1.0/email/send"))
	e.EmailJSServiceID = cast.ToString(getOrReturnDefault("EMAILJS_SERVICE_ID", ""))
	e.EmailJSTemplateID = cast.ToString(getOrReturnDefault("EMAILJS_TEMPLATE_ID", ""))
	e.EmailJSPublicKey = cast.ToString(getOrReturnDefault("EMAILJS_PUBLIC_KEY", ""))
	e.EmailJSPrivateKey = cast.ToString(getOrReturnDefault("EMAILJS_PRIVATE_KEY", ""))
	e.NotifyEmail = cast.ToString(getOrReturnDefault("NOTIFY_EMAIL", ""))

	e.TelegramBotToken = cast.ToString(getOrReturnDefault("TG_BOT_TOKEN", ""))
	e.TelegramChatID = cast.ToInt64(getOrReturnDefault("TG_CHAT_ID", 0))

	e.GoogleMapsAPIKey = cast.ToString(getOrReturnDefault("GOOGLE_MAPS_API_KEY", ""))

	e.RedisAddr = cast.ToString(getOrReturnDefault("REDIS_ADDR", ""))
	e.RedisPassword = cast.ToString(getOrReturnDefault("REDIS_PASSWORD", ""))
	e.DistanceTTL = cast.ToDuration(getOrReturnDefault("DISTANCE_CACHE_TTL", "24h"))

	e.DispatchTimeout = cast.ToDuration(getOrReturnDefault("DISPATCH_TIMEOUT", "10s"))
	e.SessionTTL = cast.ToDuration(getOrReturnDefault("SESSION_TTL", "30m"))

	return e
}

func getOrReturnDefault(key string, defaultValue interface{}) interface{} {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}
