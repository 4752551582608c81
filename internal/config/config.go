package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	CORS      CORSConfig
	ICEGate   ICEGateConfig
	HSNSearch HSNSearchConfig
	Lookup    LookupConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ICEGateConfig holds settings for the ICEGATE trade-guide endpoints.
type ICEGateConfig struct {
	BaseURL     string   `mapstructure:"base_url"`
	TimeoutSecs int      `mapstructure:"timeout_secs"`
	UserAgent   string   `mapstructure:"user_agent"`
	Countries   []string `mapstructure:"countries"`
}

// HSNSearchConfig holds settings for the HSN master search API.
type HSNSearchConfig struct {
	BaseURL     string `mapstructure:"base_url"`
	TokenURL    string `mapstructure:"token_url"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
	UserAgent   string `mapstructure:"user_agent"`
}

// LookupConfig holds batch lookup settings and the request-layer defaults.
type LookupConfig struct {
	Concurrency            int     `mapstructure:"concurrency"`
	MaxCodes               int     `mapstructure:"max_codes"`
	DefaultAssessableValue float64 `mapstructure:"default_assessable_value"`
	DefaultQuantity        float64 `mapstructure:"default_quantity"`
}

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/141.0.0.0 Safari/537.36"

// Load reads configuration from environment variables with the DUTYCALC_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("DUTYCALC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "120s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// ICEGATE defaults
	v.SetDefault("icegate.base_url", "https://www.old.icegate.gov.in")
	v.SetDefault("icegate.timeout_secs", 30)
	v.SetDefault("icegate.user_agent", "Mozilla/5.0")
	v.SetDefault("icegate.countries", "")

	// HSN search defaults
	v.SetDefault("hsn_search.base_url", "https://api.dripcapital.com/v1/labs/hsn-code/search")
	v.SetDefault("hsn_search.token_url", "https://api.dripcapital.com/v1/access/token")
	v.SetDefault("hsn_search.timeout_secs", 30)
	v.SetDefault("hsn_search.user_agent", defaultUserAgent)

	// Lookup defaults
	v.SetDefault("lookup.concurrency", 4)
	v.SetDefault("lookup.max_codes", 50)
	v.SetDefault("lookup.default_assessable_value", 100000)
	v.SetDefault("lookup.default_quantity", 100)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                     "DUTYCALC_SERVER_PORT",
		"server.read_timeout":             "DUTYCALC_SERVER_READ_TIMEOUT",
		"server.write_timeout":            "DUTYCALC_SERVER_WRITE_TIMEOUT",
		"server.environment":              "DUTYCALC_SERVER_ENVIRONMENT",
		"log.level":                       "DUTYCALC_LOG_LEVEL",
		"log.format":                      "DUTYCALC_LOG_FORMAT",
		"cors.allowed_origins":            "DUTYCALC_CORS_ALLOWED_ORIGINS",
		"icegate.base_url":                "DUTYCALC_ICEGATE_BASE_URL",
		"icegate.timeout_secs":            "DUTYCALC_ICEGATE_TIMEOUT_SECS",
		"icegate.user_agent":              "DUTYCALC_ICEGATE_USER_AGENT",
		"icegate.countries":               "DUTYCALC_ICEGATE_COUNTRIES",
		"hsn_search.base_url":             "DUTYCALC_HSN_SEARCH_BASE_URL",
		"hsn_search.token_url":            "DUTYCALC_HSN_SEARCH_TOKEN_URL",
		"hsn_search.timeout_secs":         "DUTYCALC_HSN_SEARCH_TIMEOUT_SECS",
		"hsn_search.user_agent":           "DUTYCALC_HSN_SEARCH_USER_AGENT",
		"lookup.concurrency":              "DUTYCALC_LOOKUP_CONCURRENCY",
		"lookup.max_codes":                "DUTYCALC_LOOKUP_MAX_CODES",
		"lookup.default_assessable_value": "DUTYCALC_LOOKUP_DEFAULT_ASSESSABLE_VALUE",
		"lookup.default_quantity":         "DUTYCALC_LOOKUP_DEFAULT_QUANTITY",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if DUTYCALC_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("DUTYCALC_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: splitList(v.GetString("cors.allowed_origins"), ","),
	}

	// Country entries contain commas themselves, so the list is ';'-separated.
	// An empty list leaves the built-in reference list to the tariff service.
	countries := splitList(strings.ToUpper(v.GetString("icegate.countries")), ";")
	cfg.ICEGate = ICEGateConfig{
		BaseURL:     strings.TrimRight(v.GetString("icegate.base_url"), "/"),
		TimeoutSecs: v.GetInt("icegate.timeout_secs"),
		UserAgent:   v.GetString("icegate.user_agent"),
		Countries:   countries,
	}
	cfg.HSNSearch = HSNSearchConfig{
		BaseURL:     v.GetString("hsn_search.base_url"),
		TokenURL:    v.GetString("hsn_search.token_url"),
		TimeoutSecs: v.GetInt("hsn_search.timeout_secs"),
		UserAgent:   v.GetString("hsn_search.user_agent"),
	}
	cfg.Lookup = LookupConfig{
		Concurrency:            v.GetInt("lookup.concurrency"),
		MaxCodes:               v.GetInt("lookup.max_codes"),
		DefaultAssessableValue: v.GetFloat64("lookup.default_assessable_value"),
		DefaultQuantity:        v.GetFloat64("lookup.default_quantity"),
	}

	return cfg, nil
}

func splitList(s, sep string) []string {
	var out []string
	for _, item := range strings.Split(s, sep) {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
