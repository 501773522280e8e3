package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Store drivers for the conversation log.
const (
	StoreDriverSheets = "sheets"
	StoreDriverSQLite = "sqlite"
)

// LLM provider names.
const (
	LLMProviderOpenAI    = "openai"
	LLMProviderAnthropic = "anthropic"
)

// ErrMissingAIKey is returned by Load when no AI completion credential is configured.
var ErrMissingAIKey = errors.New("AI completion API key is required")

// Config holds all service configuration. It is built once at startup and never mutated.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig

	// Dispatch
	Dispatch  DispatchConfig
	LLM       LLMConfig
	WebSearch WebSearchConfig

	// Conversation store
	Store  StoreConfig
	Sheets SheetsConfig
	SQLite SQLiteConfig
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

type CORSConfig struct {
	AllowedOrigins []string
}

type DispatchConfig struct {
	ProviderTimeout time.Duration
	LogTimeout      time.Duration
}

// LLMConfig configures the AI completion provider.
type LLMConfig struct {
	Provider     string
	APIKey       string
	BaseURL      string
	Model        string
	SystemPrompt string
	MaxTokens    int
	Temperature  float64
}

type WebSearchConfig struct {
	APIKey            string
	BaseURL           string
	ResultCount       int
	RequestsPerSecond float64
	CacheSize         int
	CacheTTL          time.Duration
}

type StoreConfig struct {
	Driver string
}

type SheetsConfig struct {
	CredentialsPath string
	SpreadsheetID   string
	LogRange        string
}

type SQLiteConfig struct {
	Path string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
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
	cfg.CORS.AllowedOrigins = splitList(viper.GetString("cors.allowed_origins"))

	// Dispatch
	cfg.Dispatch.ProviderTimeout = viper.GetDuration("dispatch.provider_timeout")
	cfg.Dispatch.LogTimeout = viper.GetDuration("dispatch.log_timeout")

	// LLM
	cfg.LLM.Provider = strings.ToLower(viper.GetString("llm.provider"))
	cfg.LLM.APIKey = viper.GetString("llm.api_key")
	cfg.LLM.BaseURL = viper.GetString("llm.base_url")
	cfg.LLM.Model = viper.GetString("llm.model")
	cfg.LLM.SystemPrompt = viper.GetString("llm.system_prompt")
	cfg.LLM.MaxTokens = viper.GetInt("llm.max_tokens")
	cfg.LLM.Temperature = viper.GetFloat64("llm.temperature")
	if cfg.LLM.APIKey == "" {
		switch cfg.LLM.Provider {
		case LLMProviderAnthropic:
			cfg.LLM.APIKey = viper.GetString("claude_api_key")
		default:
			cfg.LLM.APIKey = viper.GetString("openai_api_key")
		}
	}

	// Web search
	cfg.WebSearch.APIKey = viper.GetString("web_search.api_key")
	cfg.WebSearch.BaseURL = viper.GetString("web_search.base_url")
	cfg.WebSearch.ResultCount = viper.GetInt("web_search.result_count")
	cfg.WebSearch.RequestsPerSecond = viper.GetFloat64("web_search.requests_per_second")
	cfg.WebSearch.CacheSize = viper.GetInt("web_search.cache_size")
	cfg.WebSearch.CacheTTL = viper.GetDuration("web_search.cache_ttl")

	// Conversation store
	cfg.Store.Driver = strings.ToLower(viper.GetString("store.driver"))
	cfg.Sheets.CredentialsPath = viper.GetString("sheets.credentials_path")
	cfg.Sheets.SpreadsheetID = viper.GetString("sheets.spreadsheet_id")
	cfg.Sheets.LogRange = viper.GetString("sheets.log_range")
	if creds := viper.GetString("google_application_credentials"); creds != "" {
		cfg.Sheets.CredentialsPath = creds
	}
	if sheetID := viper.GetString("google_sheet_id"); sheetID != "" {
		cfg.Sheets.SpreadsheetID = sheetID
	}
	cfg.SQLite.Path = viper.GetString("sqlite.path")

	// Google credentials without an explicit driver select Sheets.
	if cfg.Store.Driver == "" && cfg.Sheets.CredentialsPath != "" && cfg.Sheets.SpreadsheetID != "" {
		cfg.Store.Driver = StoreDriverSheets
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 5001)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("cors.allowed_origins", "http://localhost:3000")

	viper.SetDefault("dispatch.provider_timeout", "30s")
	viper.SetDefault("dispatch.log_timeout", "10s")

	// LLM defaults
	viper.SetDefault("llm.provider", LLMProviderOpenAI)
	viper.SetDefault("llm.system_prompt", "You are ARGO, a helpful and friendly AI assistant.")
	viper.SetDefault("llm.max_tokens", 1024)

	viper.SetDefault("web_search.base_url", "https://api.search.brave.com/res/v1")
	viper.SetDefault("web_search.result_count", 5)
	viper.SetDefault("web_search.requests_per_second", 1)
	viper.SetDefault("web_search.cache_size", 256)
	viper.SetDefault("web_search.cache_ttl", "10m")

	viper.SetDefault("sheets.log_range", "Sheet1!A:C")
	viper.SetDefault("sqlite.path", "data/conversations.db")
}

// validate rejects configurations the process must not start with.
// Only the AI completion credential is mandatory; store and search settings degrade instead.
func validate(cfg *Config) error {
	switch cfg.LLM.Provider {
	case LLMProviderOpenAI, LLMProviderAnthropic:
	default:
		return fmt.Errorf("unknown llm.provider %q", cfg.LLM.Provider)
	}
	if cfg.LLM.APIKey == "" {
		return ErrMissingAIKey
	}
	if cfg.LLM.MaxTokens <= 0 {
		return fmt.Errorf("llm.max_tokens must be positive, got %d", cfg.LLM.MaxTokens)
	}
	switch cfg.Store.Driver {
	case "", StoreDriverSheets, StoreDriverSQLite:
	default:
		return fmt.Errorf("unknown store.driver %q", cfg.Store.Driver)
	}
	return nil
}

// splitList splits a comma separated value, dropping blanks.
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
