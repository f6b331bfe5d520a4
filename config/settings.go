// Package config provides application settings loaded from environment variables.
//
// Settings are created via Load() which handles:
// - Environment variable parsing with validation
// - Default value application
// - Provider-specific model and API key lookup
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Settings holds all application configuration.
type Settings struct {
	Server    ServerConfig
	LLM       LLMConfig
	Latitude  LatitudeConfig
	Airtable  AirtableConfig
	SEMrush   SEMrushConfig
	Hootsuite HootsuiteConfig
	LogLevel  string
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Addr          string
	APIToken      string
	RatePerMinute int
	RateBurst     int
	SQLitePath    string
}

// LLMConfig holds generation provider configuration.
// HighTierModel and StandardTierModel are the two quality tiers the
// gateway exposes; both run on the same provider.
type LLMConfig struct {
	Provider          string
	APIKey            string
	HighTierModel     string
	StandardTierModel string
}

// LatitudeConfig holds prompt-store credentials. Missing credentials mean
// the resolver runs in fallback mode.
type LatitudeConfig struct {
	BaseURL   string
	APIKey    string
	ProjectID string
}

// AirtableConfig holds records-database credentials. Empty APIKey means
// analyses are persisted to the local sqlite store instead.
type AirtableConfig struct {
	BaseURL string
	APIKey  string
	BaseID  string
}

// SEMrushConfig holds keyword-data provider credentials.
type SEMrushConfig struct {
	BaseURL  string
	APIKey   string
	Database string
}

// HootsuiteConfig holds social-scheduling credentials.
type HootsuiteConfig struct {
	BaseURL     string
	AccessToken string
}

// tierModels holds per-provider default model ids for the two tiers.
type tierModels struct {
	apiKeyEnv string
	high      string
	standard  string
}

// Supported providers and their tier defaults.
var providers = map[string]tierModels{
	"anthropic": {"ANTHROPIC_API_KEY", "claude-3-opus-20240229", "claude-3-sonnet-20240229"},
	"openai":    {"OPENAI_API_KEY", "gpt-4o", "gpt-4o-mini"},
	"gemini":    {"GEMINI_API_KEY", "gemini-2.5-pro", "gemini-2.5-flash"},
}

// Provider aliases map to canonical names.
var providerAliases = map[string]string{
	"claude": "anthropic",
	"gpt":    "openai",
	"google": "gemini",
}

// Load creates settings from environment variables.
// Returns an error if the configured provider is unknown or a numeric
// variable contains an invalid value.
func Load() (Settings, error) {
	provider := normalizeProvider(getEnv("LLM_PROVIDER", "anthropic"))
	info, ok := providers[provider]
	if !ok {
		return Settings{}, fmt.Errorf("unknown provider: %q", provider)
	}

	ratePerMinute, err := getEnvInt("RATE_LIMIT_PER_MINUTE", 60)
	if err != nil {
		return Settings{}, err
	}
	rateBurst, err := getEnvInt("RATE_LIMIT_BURST", 10)
	if err != nil {
		return Settings{}, err
	}

	return Settings{
		Server: ServerConfig{
			Addr:          getEnv("SERVER_ADDR", ":8000"),
			APIToken:      os.Getenv("API_TOKEN"),
			RatePerMinute: ratePerMinute,
			RateBurst:     rateBurst,
			SQLitePath:    getEnv("SEOGATE_DB", "data/seogate.db"),
		},
		LLM: LLMConfig{
			Provider:          provider,
			APIKey:            os.Getenv(info.apiKeyEnv),
			HighTierModel:     getEnv("LLM_MODEL_HIGH", info.high),
			StandardTierModel: getEnv("LLM_MODEL_STANDARD", info.standard),
		},
		Latitude: LatitudeConfig{
			BaseURL:   getEnv("LATITUDE_BASE_URL", "https://api.latitude.so"),
			APIKey:    os.Getenv("LATITUDE_API_KEY"),
			ProjectID: os.Getenv("LATITUDE_PROJECT_ID"),
		},
		Airtable: AirtableConfig{
			BaseURL: getEnv("AIRTABLE_BASE_URL", "https://api.airtable.com/v0"),
			APIKey:  os.Getenv("AIRTABLE_API_KEY"),
			BaseID:  os.Getenv("AIRTABLE_BASE_ID"),
		},
		SEMrush: SEMrushConfig{
			BaseURL:  getEnv("SEMRUSH_BASE_URL", "https://api.semrush.com"),
			APIKey:   os.Getenv("SEMRUSH_API_KEY"),
			Database: getEnv("SEMRUSH_DATABASE", "us"),
		},
		Hootsuite: HootsuiteConfig{
			BaseURL:     getEnv("HOOTSUITE_BASE_URL", "https://platform.hootsuite.com"),
			AccessToken: os.Getenv("HOOTSUITE_ACCESS_TOKEN"),
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}, nil
}

// MustLoad creates settings from environment variables.
// Panics on invalid configuration. Use only when configuration errors
// should be fatal.
func MustLoad() Settings {
	settings, err := Load()
	if err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
	return settings
}

// normalizeProvider converts provider aliases to canonical names.
func normalizeProvider(provider string) string {
	provider = strings.ToLower(provider)
	if canonical, ok := providerAliases[provider]; ok {
		return canonical
	}
	return provider
}

// SupportedProviders returns the list of supported provider names.
func SupportedProviders() []string {
	result := make([]string, 0, len(providers))
	for name := range providers {
		result = append(result, name)
	}
	return result
}

// Environment variable helpers with proper error handling

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %q: %w", key, val, err)
	}
	return i, nil
}
