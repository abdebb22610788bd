package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port           string   `mapstructure:"PORT"`
	Env            string   `mapstructure:"ENV"`
	DatabaseURL    string   `mapstructure:"DATABASE_URL"`
	DBMaxConns     int32    `mapstructure:"DB_MAX_CONNS"`
	DBMinConns     int32    `mapstructure:"DB_MIN_CONNS"`
	CORSOrigins    []string `mapstructure:"CORS_ORIGINS"`
	RequestTimeout int      `mapstructure:"REQUEST_TIMEOUT"`

	GenAIAPIKey    string `mapstructure:"GENAI_API_KEY"`
	GenAIBaseURL   string `mapstructure:"GENAI_BASE_URL"`
	GenAIModel     string `mapstructure:"GENAI_MODEL"`
	GenAIMaxTokens int    `mapstructure:"GENAI_MAX_TOKENS"`
	GenAITimeout   int    `mapstructure:"GENAI_TIMEOUT"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("DB_MAX_CONNS", 20)
	v.SetDefault("DB_MIN_CONNS", 5)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("REQUEST_TIMEOUT", 120)
	v.SetDefault("GENAI_BASE_URL", "https://api.openai.com/v1")
	v.SetDefault("GENAI_MODEL", "gpt-4o-mini")
	v.SetDefault("GENAI_MAX_TOKENS", 1500)
	v.SetDefault("GENAI_TIMEOUT", 90)

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("DATABASE_URL")
	v.BindEnv("DB_MAX_CONNS")
	v.BindEnv("DB_MIN_CONNS")
	v.BindEnv("CORS_ORIGINS")
	v.BindEnv("REQUEST_TIMEOUT")
	v.BindEnv("GENAI_API_KEY")
	v.BindEnv("GENAI_BASE_URL")
	v.BindEnv("GENAI_MODEL")
	v.BindEnv("GENAI_MAX_TOKENS")
	v.BindEnv("GENAI_TIMEOUT")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// GenTimeout returns the per-call deadline for the text-generation client.
func (c *Config) GenTimeout() time.Duration {
	return time.Duration(c.GenAITimeout) * time.Second
}

// Validate checks that the configuration is safe to run. Outside development
// a GENAI_API_KEY must be present, otherwise every generation request would
// fail at the upstream boundary.
func (c *Config) Validate() error {
	if !c.IsDev() && c.GenAIAPIKey == "" {
		return fmt.Errorf("GENAI_API_KEY is required when ENV=%q", c.Env)
	}
	if c.GenAIMaxTokens <= 0 {
		return fmt.Errorf("GENAI_MAX_TOKENS must be positive, got %d", c.GenAIMaxTokens)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive, got %d", c.RequestTimeout)
	}
	return nil
}
