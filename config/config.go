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

	// Personal Assistant specifics
	SQLite         SQLiteConfig
	NLU            NLUConfig
	Suggest        SuggestConfig
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port           int
	Mode           string
	RateLimitRPS   float64
	RateLimitBurst int
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type SQLiteConfig struct {
	Path string
}

type NLUConfig struct {
	Timezone  string
	CacheSize int
}

type SuggestConfig struct {
	PendingTaskLimit int
	ExpenseRatio     float64
	MaxSuggestions   int
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
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
	cfg.HTTPServer.RateLimitRPS = viper.GetFloat64("http_server.rate_limit_rps")
	cfg.HTTPServer.RateLimitBurst = viper.GetInt("http_server.rate_limit_burst")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Personal Assistant specifics
	cfg.SQLite.Path = viper.GetString("sqlite.path")
	if sqlitePath := viper.GetString("sqlite_path"); sqlitePath != "" {
		cfg.SQLite.Path = sqlitePath
	}

	cfg.NLU.Timezone = viper.GetString("nlu.timezone")
	cfg.NLU.CacheSize = viper.GetInt("nlu.cache_size")

	cfg.Suggest.PendingTaskLimit = viper.GetInt("suggest.pending_task_limit")
	cfg.Suggest.ExpenseRatio = viper.GetFloat64("suggest.expense_ratio")
	cfg.Suggest.MaxSuggestions = viper.GetInt("suggest.max_suggestions")

	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.rate_limit_rps", 0) // 0 disables rate limiting
	viper.SetDefault("http_server.rate_limit_burst", 20)
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("sqlite.path", "assistant.db")
	viper.SetDefault("nlu.timezone", "UTC")
	viper.SetDefault("nlu.cache_size", 256)
	viper.SetDefault("suggest.pending_task_limit", 10)
	viper.SetDefault("suggest.expense_ratio", 0.8)
	viper.SetDefault("suggest.max_suggestions", 3)
}
