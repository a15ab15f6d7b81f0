package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Intelligent Task Management specifics
	Models         ModelsConfig
	NLP            NLPConfig
	Scheduler      SchedulerConfig
	RateLimit      RateLimitConfig
	GoogleCalendar GoogleCalendarConfig
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

// ModelsConfig locates the persisted prediction model artifacts.
type ModelsConfig struct {
	Dir string
}

type NLPConfig struct {
	// CacheSize bounds the annotation LRU; repeated texts skip the
	// tokenizer entirely.
	CacheSize int
}

type SchedulerConfig struct {
	DefaultAvailableHours int
}

type RateLimitConfig struct {
	RequestsPerMin int
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
	Timezone        string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

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
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Intelligent Task Management specifics
	cfg.Models.Dir = viper.GetString("models.dir")
	if modelsDir := viper.GetString("models_dir"); modelsDir != "" {
		cfg.Models.Dir = modelsDir
	}

	cfg.NLP.CacheSize = viper.GetInt("nlp.cache_size")
	cfg.Scheduler.DefaultAvailableHours = viper.GetInt("scheduler.default_available_hours")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.Timezone = viper.GetString("google_calendar.timezone")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return fmt.Errorf("invalid http_server.port: %d", cfg.HTTPServer.Port)
	}
	if cfg.Models.Dir == "" {
		return fmt.Errorf("models.dir is required")
	}
	if cfg.NLP.CacheSize <= 0 {
		return fmt.Errorf("nlp.cache_size must be positive, got %d", cfg.NLP.CacheSize)
	}
	if cfg.Scheduler.DefaultAvailableHours <= 0 {
		return fmt.Errorf("scheduler.default_available_hours must be positive, got %d", cfg.Scheduler.DefaultAvailableHours)
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("models.dir", "./data/models")
	viper.SetDefault("nlp.cache_size", 512)
	viper.SetDefault("scheduler.default_available_hours", 8)
	viper.SetDefault("rate_limit.requests_per_min", 60)
	viper.SetDefault("google_calendar.timezone", "UTC")
}
