package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration. It is built once at process
// start and threaded through every constructor; nothing reads the environment
// mid-pipeline.
type Config struct {
	Server   ServerConfig
	Log      LogConfig
	CORS     CORSConfig
	LLM      LLMConfig
	Extract  ExtractConfig
	Pipeline PipelineConfig
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

// ProviderConfig holds settings for a single LLM provider.
type ProviderConfig struct {
	Provider    string `mapstructure:"provider"`
	APIKey      string `mapstructure:"api_key"`
	Model       string `mapstructure:"model"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
}

// LLMConfig holds generative model settings with primary/secondary fallback.
type LLMConfig struct {
	Primary   ProviderConfig `mapstructure:"primary"`
	Secondary ProviderConfig `mapstructure:"secondary"`
}

// SecondaryConfig returns the secondary provider config, or nil if not configured.
func (l *LLMConfig) SecondaryConfig() *ProviderConfig {
	if l.Secondary.Provider != "" {
		return &l.Secondary
	}
	return nil
}

// ExtractConfig holds text extraction limits.
type ExtractConfig struct {
	MaxFileSizeMB int64 `mapstructure:"max_file_size_mb"`
}

// PipelineConfig holds orchestration settings.
type PipelineConfig struct {
	BatchConcurrency int `mapstructure:"batch_concurrency"`
	QAContextChars   int `mapstructure:"qa_context_chars"`
}

// Load reads configuration from environment variables with the LEXORA_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("LEXORA")
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

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// LLM defaults
	v.SetDefault("llm.primary.provider", "gemini")
	v.SetDefault("llm.primary.api_key", "")
	v.SetDefault("llm.primary.model", "gemini-1.5-pro")
	v.SetDefault("llm.primary.timeout_secs", 120)
	v.SetDefault("llm.secondary.provider", "")
	v.SetDefault("llm.secondary.api_key", "")
	v.SetDefault("llm.secondary.model", "")
	v.SetDefault("llm.secondary.timeout_secs", 120)

	// Extraction defaults
	v.SetDefault("extract.max_file_size_mb", 20)

	// Pipeline defaults
	v.SetDefault("pipeline.batch_concurrency", 3)
	v.SetDefault("pipeline.qa_context_chars", 10000)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                "LEXORA_SERVER_PORT",
		"server.read_timeout":        "LEXORA_SERVER_READ_TIMEOUT",
		"server.write_timeout":       "LEXORA_SERVER_WRITE_TIMEOUT",
		"server.environment":         "LEXORA_SERVER_ENVIRONMENT",
		"log.level":                  "LEXORA_LOG_LEVEL",
		"log.format":                 "LEXORA_LOG_FORMAT",
		"cors.allowed_origins":       "LEXORA_CORS_ALLOWED_ORIGINS",
		"llm.primary.provider":       "LEXORA_LLM_PRIMARY_PROVIDER",
		"llm.primary.api_key":        "LEXORA_LLM_PRIMARY_API_KEY",
		"llm.primary.model":          "LEXORA_LLM_PRIMARY_MODEL",
		"llm.primary.timeout_secs":   "LEXORA_LLM_PRIMARY_TIMEOUT_SECS",
		"llm.secondary.provider":     "LEXORA_LLM_SECONDARY_PROVIDER",
		"llm.secondary.api_key":      "LEXORA_LLM_SECONDARY_API_KEY",
		"llm.secondary.model":        "LEXORA_LLM_SECONDARY_MODEL",
		"llm.secondary.timeout_secs": "LEXORA_LLM_SECONDARY_TIMEOUT_SECS",
		"extract.max_file_size_mb":   "LEXORA_EXTRACT_MAX_FILE_SIZE_MB",
		"pipeline.batch_concurrency": "LEXORA_PIPELINE_BATCH_CONCURRENCY",
		"pipeline.qa_context_chars":  "LEXORA_PIPELINE_QA_CONTEXT_CHARS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if LEXORA_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("LEXORA_SERVER_PORT") == "" {
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

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	cfg.LLM = LLMConfig{
		Primary: ProviderConfig{
			Provider:    v.GetString("llm.primary.provider"),
			APIKey:      v.GetString("llm.primary.api_key"),
			Model:       v.GetString("llm.primary.model"),
			TimeoutSecs: v.GetInt("llm.primary.timeout_secs"),
		},
		Secondary: ProviderConfig{
			Provider:    v.GetString("llm.secondary.provider"),
			APIKey:      v.GetString("llm.secondary.api_key"),
			Model:       v.GetString("llm.secondary.model"),
			TimeoutSecs: v.GetInt("llm.secondary.timeout_secs"),
		},
	}

	cfg.Extract = ExtractConfig{
		MaxFileSizeMB: v.GetInt64("extract.max_file_size_mb"),
	}

	cfg.Pipeline = PipelineConfig{
		BatchConcurrency: v.GetInt("pipeline.batch_concurrency"),
		QAContextChars:   v.GetInt("pipeline.qa_context_chars"),
	}

	return cfg, nil
}
