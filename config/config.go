package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort       string `mapstructure:"APP_PORT"`
	DatabaseURL   string `mapstructure:"DATABASE_URL"`
	MongoDatabase string `mapstructure:"MONGO_DB"`
	Env           string `mapstructure:"ENV"`
	LogLevel      string `mapstructure:"LOG_LEVEL"`

	MaxRequestsPerMin int `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
	RedisQueueDB   int    `mapstructure:"REDIS_QUEUE_DB"`

	// Hotel search provider (RapidAPI hotels4).
	HotelsAPIHost string `mapstructure:"HOTELS_API_HOST"`
	HotelsAPIKey  string `mapstructure:"HOTELS_API_KEY"`

	SearchTimeoutSec int `mapstructure:"SEARCH_TIMEOUT_SEC"`
	SessionTTLMin    int `mapstructure:"SESSION_TTL_MIN"`

	// HistoryRetentionDays prunes old history entries when > 0.
	HistoryRetentionDays int `mapstructure:"HISTORY_RETENTION_DAYS"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("REDIS_QUEUE_DB", 1)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DB", "stayfinder")
	viper.SetDefault("HOTELS_API_HOST", "hotels4.p.rapidapi.com")
	viper.SetDefault("HOTELS_API_KEY", "")
	viper.SetDefault("SEARCH_TIMEOUT_SEC", 15)
	viper.SetDefault("SESSION_TTL_MIN", 30)
	viper.SetDefault("HISTORY_RETENTION_DAYS", 0)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// SearchTimeout returns the fixed per-call timeout for the search provider.
func SearchTimeout() time.Duration {
	return time.Duration(AppConfig.SearchTimeoutSec) * time.Second
}

// SessionTTL returns how long an inactive conversation session is cached.
func SessionTTL() time.Duration {
	return time.Duration(AppConfig.SessionTTLMin) * time.Minute
}
