package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Veraticus/oud-emporium/internal/common"
	"github.com/spf13/viper"
)

// Config is the typed view of the storefront configuration.
type Config struct {
	Logging  LoggingConfig
	Catalog  CatalogConfig
	LLM      LLMConfig
	Language string
	Timeout  time.Duration
}

// LoggingConfig controls slog output.
type LoggingConfig struct {
	Level  string
	Format string
	File   string
}

// CatalogConfig locates the product database.
type CatalogConfig struct {
	Database string
}

// LLMConfig selects and tunes the recommendation model.
type LLMConfig struct {
	Provider    string
	Model       string
	APIKey      string
	Temperature float64
	MaxTokens   int
	MaxRetries  int
	RetryDelay  time.Duration
	CacheTTL    time.Duration
	RateLimit   int
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("i18n.language", "en")
	v.SetDefault("llm.provider", "gemini")
	v.SetDefault("llm.temperature", 0.7)
	v.SetDefault("llm.max_tokens", 1024)
	v.SetDefault("llm.max_retries", 2)
	v.SetDefault("llm.retry_delay", 500*time.Millisecond)
	v.SetDefault("llm.cache_ttl", time.Hour)
	v.SetDefault("llm.rate_limit", 30)
	v.SetDefault("recommend.timeout", 20*time.Second)
}

// Load reads a Config out of v. A missing API key is not an error; it
// leaves APIKey empty so recommendations fall back to the catalog.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		Logging: LoggingConfig{
			Level:  v.GetString("logging.level"),
			Format: v.GetString("logging.format"),
			File:   ExpandPath(v.GetString("logging.file")),
		},
		Catalog: CatalogConfig{
			Database: ExpandPath(v.GetString("catalog.database")),
		},
		LLM: LLMConfig{
			Provider:    strings.ToLower(v.GetString("llm.provider")),
			Model:       v.GetString("llm.model"),
			APIKey:      v.GetString("llm.api_key"),
			Temperature: v.GetFloat64("llm.temperature"),
			MaxTokens:   v.GetInt("llm.max_tokens"),
			MaxRetries:  v.GetInt("llm.max_retries"),
			RetryDelay:  v.GetDuration("llm.retry_delay"),
			CacheTTL:    v.GetDuration("llm.cache_ttl"),
			RateLimit:   v.GetInt("llm.rate_limit"),
		},
		Language: strings.ToLower(v.GetString("i18n.language")),
		Timeout:  v.GetDuration("recommend.timeout"),
	}

	if cfg.LLM.APIKey == "" {
		cfg.LLM.APIKey = apiKeyFromEnv(cfg.LLM.Provider)
	}

	switch cfg.LLM.Provider {
	case "gemini", "openai", "anthropic":
	default:
		return Config{}, fmt.Errorf("%w: unsupported llm provider %q", common.ErrInvalidConfig, cfg.LLM.Provider)
	}

	if cfg.Timeout <= 0 {
		return Config{}, fmt.Errorf("%w: recommend.timeout must be positive", common.ErrInvalidConfig)
	}

	return cfg, nil
}

func apiKeyFromEnv(provider string) string {
	switch provider {
	case "gemini":
		if key := os.Getenv("GEMINI_API_KEY"); key != "" {
			return key
		}
		return os.Getenv("GOOGLE_API_KEY")
	case "openai":
		return os.Getenv("OPENAI_API_KEY")
	case "anthropic":
		return os.Getenv("ANTHROPIC_API_KEY")
	}
	return ""
}
