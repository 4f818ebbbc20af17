package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all recognized configuration values.
type Config struct {
	AppPort  string `mapstructure:"APP_PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Scheduling engine knobs. All "today"/day-of-week reasoning runs in
	// SchedulingTimezone, not UTC.
	SchedulingTimezone    string `mapstructure:"SCHEDULING_TIMEZONE"`
	RepeatHorizonWeeks    int    `mapstructure:"REPEAT_HORIZON_WEEKS"`
	MatchToleranceSeconds int    `mapstructure:"MATCH_TOLERANCE_SECONDS"`
	AuditCronSpec         string `mapstructure:"AUDIT_CRON_SPEC"`

	// External busy-time overlay (read-only ICS feed). Empty disables it.
	BusyCalendarICSURL     string `mapstructure:"BUSY_CALENDAR_ICS_URL"`
	BusyFeedCacheTTLMin    int    `mapstructure:"BUSY_FEED_CACHE_TTL_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Cloudinary (report card photos).
	CloudinaryCloudName string `mapstructure:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `mapstructure:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `mapstructure:"CLOUDINARY_API_SECRET"`

	AdminToken        string `mapstructure:"ADMIN_TOKEN"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
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
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "barkbook")
	viper.SetDefault("SCHEDULING_TIMEZONE", "America/New_York")
	viper.SetDefault("REPEAT_HORIZON_WEEKS", 6)
	viper.SetDefault("MATCH_TOLERANCE_SECONDS", 60)
	viper.SetDefault("AUDIT_CRON_SPEC", "0 3 * * *")
	viper.SetDefault("BUSY_CALENDAR_ICS_URL", "")
	viper.SetDefault("BUSY_FEED_CACHE_TTL_MIN", 15)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_QUEUE_DB", 1)
	viper.SetDefault("ADMIN_TOKEN", "")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)

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
