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
	RateLimit  RateLimitConfig

	// Todo store & summaries
	Todo    TodoConfig
	Summary SummaryConfig

	// LLM Provider Abstraction
	LLM LLMConfig

	// Notification channels
	Slack    SlackConfig
	Telegram TelegramConfig
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

// RateLimitConfig bounds endpoints that call out to third parties, per client IP.
type RateLimitConfig struct {
	PerMin int
}

type TodoConfig struct {
	SeedSamples bool
}

type SummaryConfig struct {
	Timezone string
	TopTasks int
}

type SlackConfig struct {
	WebhookURL string
	Timeout    string
}

type TelegramConfig struct {
	BotToken string
	ChatID   int64
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// HasUsableProvider reports whether any enabled provider carries an API key.
func (c LLMConfig) HasUsableProvider() bool {
	for _, p := range c.Providers {
		if p.Enabled && p.APIKey != "" {
			return true
		}
	}
	return false
}

// envProviders maps API key variables to the provider they enable when
// llm.providers does not mention that provider at all.
var envProviders = []struct {
	name   string
	envKey string
}{
	{"huggingface", "huggingface_api_key"},
	{"gemini", "gemini_api_key"},
	{"deepseek", "deepseek_api_key"},
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return build(v)
}

// LoadFile loads configuration from an explicit file path.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}
	return build(v)
}

func build(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	if port := v.GetInt("port"); port != 0 {
		cfg.HTTPServer.Port = port
	}
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.RateLimit.PerMin = v.GetInt("rate_limit.per_min")

	// Todo & summary
	cfg.Todo.SeedSamples = v.GetBool("todo.seed_samples")
	cfg.Summary.Timezone = v.GetString("summary.timezone")
	cfg.Summary.TopTasks = v.GetInt("summary.top_tasks")

	// Slack
	cfg.Slack.WebhookURL = expandEnvVar(v, v.GetString("slack.webhook_url"))
	cfg.Slack.Timeout = v.GetString("slack.timeout")
	if webhookURL := v.GetString("slack_webhook_url"); webhookURL != "" {
		cfg.Slack.WebhookURL = webhookURL
	}

	// Telegram
	cfg.Telegram.BotToken = expandEnvVar(v, v.GetString("telegram.bot_token"))
	cfg.Telegram.ChatID = v.GetInt64("telegram.chat_id")
	if tgToken := v.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}
	if chatID := v.GetInt64("telegram_chat_id"); chatID != 0 {
		cfg.Telegram.ChatID = chatID
	}

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = v.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = v.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = v.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = v.GetString("llm.max_total_timeout")

	if v.IsSet("llm.providers") {
		if providersList, ok := v.Get("llm.providers").([]interface{}); ok {
			for _, p := range providersList {
				providerMap, ok := p.(map[string]interface{})
				if !ok {
					continue
				}
				cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
					Name:     getStringFromMap(providerMap, "name"),
					Enabled:  getBoolFromMap(providerMap, "enabled"),
					Priority: getIntFromMap(providerMap, "priority"),
					APIKey:   expandEnvVar(v, getStringFromMap(providerMap, "api_key")),
					BaseURL:  getStringFromMap(providerMap, "base_url"),
					Model:    getStringFromMap(providerMap, "model"),
					Timeout:  getStringFromMap(providerMap, "timeout"),
				})
			}
		}
	}
	appendEnvProviders(v, &cfg.LLM)

	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 5000)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("rate_limit.per_min", 0)

	v.SetDefault("todo.seed_samples", false)
	v.SetDefault("summary.timezone", "UTC")
	v.SetDefault("summary.top_tasks", 5)
	v.SetDefault("slack.timeout", "10s")

	// LLM defaults
	v.SetDefault("llm.fallback_enabled", true)
	v.SetDefault("llm.retry_attempts", 2)
	v.SetDefault("llm.retry_delay", "1s")
	v.SetDefault("llm.max_total_timeout", "45s")
}

// appendEnvProviders enables a provider from its API key variable alone,
// unless the provider is already listed in the config file.
func appendEnvProviders(v *viper.Viper, cfg *LLMConfig) {
	listed := make(map[string]bool, len(cfg.Providers))
	maxPriority := 0
	for _, p := range cfg.Providers {
		listed[strings.ToLower(p.Name)] = true
		if p.Priority > maxPriority {
			maxPriority = p.Priority
		}
	}

	for _, ep := range envProviders {
		if listed[ep.name] {
			continue
		}
		key := v.GetString(ep.envKey)
		if key == "" {
			continue
		}
		maxPriority++
		cfg.Providers = append(cfg.Providers, ProviderConfig{
			Name:     ep.name,
			Enabled:  true,
			Priority: maxPriority,
			APIKey:   key,
		})
	}
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	if envValue := os.Getenv(envVar); envValue != "" {
		return envValue
	}
	if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	// Unresolved reference means "no key", which disables the provider.
	return ""
}

// validateLLMConfig validates the LLM configuration. Providers are optional:
// without any the summary falls back to the local generator.
func validateLLMConfig(cfg *LLMConfig) error {
	priorityMap := make(map[int]string)
	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if !provider.Enabled {
			continue
		}
		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if other, dup := priorityMap[provider.Priority]; dup {
			return fmt.Errorf("provider %s: duplicate priority %d (already used by %s)", provider.Name, provider.Priority, other)
		}
		priorityMap[provider.Priority] = provider.Name
	}
	if cfg.RetryAttempts < 0 {
		return fmt.Errorf("llm.retry_attempts must not be negative")
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

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
