package config

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var AppEnv Config

type Config struct {
	Port              string
	AppEnv            string
	LogLevel          string
	MongoURI          string
	DBName            string
	JWTSecret         string
	AccessTokenTTL    time.Duration
	CacheTTL          time.Duration
	ProductLimit      int64
	WebhookSecret     string
	RedisURL          string
	ContactRateLimit  int64
	ContactRateWindow time.Duration
}

// Load reads .env when present and fills AppEnv from the environment.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}
	AppEnv = FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("port", "8080")
	v.SetDefault("app_env", "dev")
	v.SetDefault("log_level", "info")
	v.SetDefault("db_name", "solarcatalog")
	v.SetDefault("product_limit", 100)
	v.SetDefault("contact_rate_limit", 5)

	return v
}

func FromViper(v *viper.Viper) Config {
	return Config{
		Port:              strings.TrimSpace(v.GetString("port")),
		AppEnv:            strings.ToLower(strings.TrimSpace(v.GetString("app_env"))),
		LogLevel:          strings.TrimSpace(v.GetString("log_level")),
		MongoURI:          strings.TrimSpace(v.GetString("mongo_uri")),
		DBName:            strings.TrimSpace(v.GetString("db_name")),
		JWTSecret:         strings.TrimSpace(v.GetString("jwt_secret")),
		AccessTokenTTL:    getDuration(v, "access_token_ttl", 20, time.Minute),
		CacheTTL:          getDuration(v, "cache_ttl", 10, time.Minute),
		ProductLimit:      v.GetInt64("product_limit"),
		WebhookSecret:     strings.TrimSpace(v.GetString("webhook_secret")),
		RedisURL:          strings.TrimSpace(v.GetString("redis_url")),
		ContactRateLimit:  v.GetInt64("contact_rate_limit"),
		ContactRateWindow: getDuration(v, "contact_rate_window", 600, time.Second),
	}
}

// getDuration reads key as a count of unit. Unset, negative or unparsable
// values fall back to def.
func getDuration(v *viper.Viper, key string, def int, unit time.Duration) time.Duration {
	raw := strings.TrimSpace(v.GetString(key))
	if raw == "" {
		return time.Duration(def) * unit
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		log.Warnf("config: ignoring invalid %s=%q", strings.ToUpper(key), raw)
		return time.Duration(def) * unit
	}
	return time.Duration(n) * unit
}

func (c Config) Validate() error {
	var errs []error
	if c.AccessTokenTTL <= 0 {
		errs = append(errs, errors.New("ACCESS_TOKEN_TTL must be positive"))
	}
	if c.MongoURI == "" {
		errs = append(errs, errors.New("MONGO_URI is required"))
	}
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	return errors.Join(errs...)
}
