package config

import (
	"fmt"
	"os"
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

	// Extraction pipeline
	Extraction ExtractionConfig
	Storage    StorageConfig
	RateLimit  RateLimitConfig

	// LLM providers
	LLM LLMConfig
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

// ExtractionConfig controls the extraction pipeline and the user-facing
// settings it reads (tier, default mode, custom rules).
type ExtractionConfig struct {
	DailyLimit  int    // extractions per calendar day for non-pro scopes
	ProTier     bool   // pro tier is unmetered
	DefaultMode string // general, email, or meeting
	Rules       []RuleConfig
}

// RuleConfig is one user-defined extraction rule as configured.
type RuleConfig struct {
	Type     string `yaml:"type"` // keyword, pattern, ignore
	Value    string `yaml:"value"`
	Priority string `yaml:"priority,omitempty"`
	Category string `yaml:"category,omitempty"`
	Enabled  bool   `yaml:"enabled"`
}

// StorageConfig selects the quota/history backing store.
type StorageConfig struct {
	Driver      string // memory or sqlite
	Path        string // sqlite database file
	HistorySize int    // memory driver: LRU capacity
	HistoryTTL  string // memory driver: entry time-to-live, duration string
}

// RateLimitConfig throttles extraction requests per client.
type RateLimitConfig struct {
	PerMinute int
	Burst     int
}

// LLMConfig holds configuration for the LLM provider abstraction layer.
type LLMConfig struct {
	Default   string           `yaml:"default"` // provider selected for extraction calls
	Providers []ProviderConfig `yaml:"providers"`
}

// ProviderConfig holds configuration for a single LLM provider.
type ProviderConfig struct {
	Name          string `yaml:"name"`
	Enabled       bool   `yaml:"enabled"`
	APIKey        string `yaml:"api_key"`
	BaseURL       string `yaml:"base_url,omitempty"`
	Model         string `yaml:"model"`
	BrowserAccess bool   `yaml:"browser_access,omitempty"`
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

	// Extraction
	cfg.Extraction.DailyLimit = viper.GetInt("extraction.daily_limit")
	cfg.Extraction.ProTier = viper.GetBool("extraction.pro_tier")
	cfg.Extraction.DefaultMode = viper.GetString("extraction.default_mode")
	cfg.Extraction.Rules = loadRules()

	// Storage
	cfg.Storage.Driver = viper.GetString("storage.driver")
	cfg.Storage.Path = viper.GetString("storage.path")
	cfg.Storage.HistorySize = viper.GetInt("storage.history_size")
	cfg.Storage.HistoryTTL = viper.GetString("storage.history_ttl")

	// Rate limiting
	cfg.RateLimit.PerMinute = viper.GetInt("rate_limit.per_minute")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")

	// LLM providers
	cfg.LLM.Default = viper.GetString("llm.default")
	cfg.LLM.Providers = loadProviders()
	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadProviders() []ProviderConfig {
	var providers []ProviderConfig
	if !viper.IsSet("llm.providers") {
		return providers
	}
	providersList, ok := viper.Get("llm.providers").([]interface{})
	if !ok {
		return providers
	}
	for _, p := range providersList {
		providerMap, ok := p.(map[string]interface{})
		if !ok {
			continue
		}
		providers = append(providers, ProviderConfig{
			Name:          getStringFromMap(providerMap, "name"),
			Enabled:       getBoolFromMap(providerMap, "enabled"),
			APIKey:        expandEnvVar(getStringFromMap(providerMap, "api_key")),
			BaseURL:       getStringFromMap(providerMap, "base_url"),
			Model:         getStringFromMap(providerMap, "model"),
			BrowserAccess: getBoolFromMap(providerMap, "browser_access"),
		})
	}
	return providers
}

func loadRules() []RuleConfig {
	var rules []RuleConfig
	if !viper.IsSet("extraction.rules") {
		return rules
	}
	rulesList, ok := viper.Get("extraction.rules").([]interface{})
	if !ok {
		return rules
	}
	for _, r := range rulesList {
		ruleMap, ok := r.(map[string]interface{})
		if !ok {
			continue
		}
		rules = append(rules, RuleConfig{
			Type:     getStringFromMap(ruleMap, "type"),
			Value:    getStringFromMap(ruleMap, "value"),
			Priority: getStringFromMap(ruleMap, "priority"),
			Category: getStringFromMap(ruleMap, "category"),
			Enabled:  getBoolFromMap(ruleMap, "enabled"),
		})
	}
	return rules
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("extraction.daily_limit", 5)
	viper.SetDefault("extraction.pro_tier", false)
	viper.SetDefault("extraction.default_mode", "general")

	viper.SetDefault("storage.driver", "memory")
	viper.SetDefault("storage.path", "data/tasklens.db")
	viper.SetDefault("storage.history_size", 128)
	viper.SetDefault("storage.history_ttl", "720h")

	viper.SetDefault("rate_limit.per_minute", 60)
	viper.SetDefault("rate_limit.burst", 10)

	viper.SetDefault("llm.default", "openai")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if cfg.Default == "" {
		return fmt.Errorf("llm.default provider is required")
	}

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Enabled && provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}
	}

	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}
