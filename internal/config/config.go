package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config is the complete application configuration. Values resolve in
// order: struct defaults, then config.yaml if present, then ROSTER_*
// environment variables.
type Config struct {
	Server     ServerConfig     `yaml:"server" envconfig:"SERVER"`
	Security   SecurityConfig   `yaml:"security" envconfig:"SECURITY"`
	Logging    LoggingConfig    `yaml:"logging" envconfig:"LOGGING"`
	Normalizer NormalizerConfig `yaml:"normalizer" envconfig:"NORMALIZER"`
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	Port            int           `yaml:"port" envconfig:"PORT" default:"8080" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" envconfig:"READ_TIMEOUT" default:"30s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT" default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT" default:"15s"`
	RequestTimeout  time.Duration `yaml:"request_timeout" envconfig:"REQUEST_TIMEOUT" default:"2m"`
}

// SecurityConfig contains the HTTP hardening knobs.
type SecurityConfig struct {
	AllowedOrigins []string        `yaml:"allowed_origins" envconfig:"ALLOWED_ORIGINS" default:"http://localhost:8080"`
	EnableCORS     bool            `yaml:"enable_cors" envconfig:"ENABLE_CORS" default:"true"`
	RateLimit      RateLimitConfig `yaml:"rate_limit" envconfig:"RATE_LIMIT"`
}

// RateLimitConfig contains rate limiting configuration.
type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled" envconfig:"ENABLED" default:"true"`
	RPS     float64 `yaml:"rps" envconfig:"RPS" default:"20"`
	Burst   int     `yaml:"burst" envconfig:"BURST" default:"10"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"json" validate:"oneof=json text"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"console" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/rosternorm.log"`
}

// NormalizerConfig carries the core pipeline options.
type NormalizerConfig struct {
	// SectionMode picks how a table's section pattern is resolved:
	// majority vote, or forced letters/numbers.
	SectionMode    string `yaml:"section_mode" envconfig:"SECTION_MODE" default:"auto" validate:"oneof=auto letters numbers"`
	MaxUploadBytes int64  `yaml:"max_upload_bytes" envconfig:"MAX_UPLOAD_BYTES" default:"26214400" validate:"min=1"`
	// Concurrency bounds how many uploaded files are processed in
	// parallel; tables share no state so this is a pure throughput knob.
	Concurrency int `yaml:"concurrency" envconfig:"CONCURRENCY" default:"4" validate:"min=1,max=64"`
}

// Load resolves configuration from defaults, an optional YAML file and
// the environment, then validates the result.
func Load() (*Config, error) {
	return LoadFrom(configFilePath())
}

// LoadFrom is Load with an explicit config file path; a missing file is
// not an error.
func LoadFrom(path string) (*Config, error) {
	var cfg Config

	if err := envconfig.Process("ROSTER", &cfg); err != nil {
		return nil, fmt.Errorf("load config from env: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			var fileCfg Config
			if err := yaml.Unmarshal(data, &fileCfg); err != nil {
				return nil, fmt.Errorf("parse config file %s: %w", path, err)
			}
			cfg = mergeConfigs(fileCfg, cfg)
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// mergeConfigs merges file config with env config: an explicitly set
// ROSTER_* variable always wins, otherwise a key present in the file
// overrides the struct default. envconfig cannot express "default only if
// unset elsewhere" because default tags are applied whenever the variable
// is missing, so the merge is field-wise. Boolean keys cannot be
// distinguished from unset in the file and follow env/defaults.
func mergeConfigs(fileCfg, envCfg Config) Config {
	merged := envCfg

	if fileCfg.Server.Port != 0 && !envSet("ROSTER_SERVER_PORT") {
		merged.Server.Port = fileCfg.Server.Port
	}
	if fileCfg.Server.ReadTimeout != 0 && !envSet("ROSTER_SERVER_READ_TIMEOUT") {
		merged.Server.ReadTimeout = fileCfg.Server.ReadTimeout
	}
	if fileCfg.Server.WriteTimeout != 0 && !envSet("ROSTER_SERVER_WRITE_TIMEOUT") {
		merged.Server.WriteTimeout = fileCfg.Server.WriteTimeout
	}
	if fileCfg.Server.IdleTimeout != 0 && !envSet("ROSTER_SERVER_IDLE_TIMEOUT") {
		merged.Server.IdleTimeout = fileCfg.Server.IdleTimeout
	}
	if fileCfg.Server.ShutdownTimeout != 0 && !envSet("ROSTER_SERVER_SHUTDOWN_TIMEOUT") {
		merged.Server.ShutdownTimeout = fileCfg.Server.ShutdownTimeout
	}
	if fileCfg.Server.RequestTimeout != 0 && !envSet("ROSTER_SERVER_REQUEST_TIMEOUT") {
		merged.Server.RequestTimeout = fileCfg.Server.RequestTimeout
	}

	if len(fileCfg.Security.AllowedOrigins) != 0 && !envSet("ROSTER_SECURITY_ALLOWED_ORIGINS") {
		merged.Security.AllowedOrigins = fileCfg.Security.AllowedOrigins
	}
	if fileCfg.Security.RateLimit.RPS != 0 && !envSet("ROSTER_SECURITY_RATE_LIMIT_RPS") {
		merged.Security.RateLimit.RPS = fileCfg.Security.RateLimit.RPS
	}
	if fileCfg.Security.RateLimit.Burst != 0 && !envSet("ROSTER_SECURITY_RATE_LIMIT_BURST") {
		merged.Security.RateLimit.Burst = fileCfg.Security.RateLimit.Burst
	}

	if fileCfg.Logging.Level != "" && !envSet("ROSTER_LOGGING_LEVEL") {
		merged.Logging.Level = fileCfg.Logging.Level
	}
	if fileCfg.Logging.Format != "" && !envSet("ROSTER_LOGGING_FORMAT") {
		merged.Logging.Format = fileCfg.Logging.Format
	}
	if fileCfg.Logging.Output != "" && !envSet("ROSTER_LOGGING_OUTPUT") {
		merged.Logging.Output = fileCfg.Logging.Output
	}
	if fileCfg.Logging.FilePath != "" && !envSet("ROSTER_LOGGING_FILE_PATH") {
		merged.Logging.FilePath = fileCfg.Logging.FilePath
	}

	if fileCfg.Normalizer.SectionMode != "" && !envSet("ROSTER_NORMALIZER_SECTION_MODE") {
		merged.Normalizer.SectionMode = fileCfg.Normalizer.SectionMode
	}
	if fileCfg.Normalizer.MaxUploadBytes != 0 && !envSet("ROSTER_NORMALIZER_MAX_UPLOAD_BYTES") {
		merged.Normalizer.MaxUploadBytes = fileCfg.Normalizer.MaxUploadBytes
	}
	if fileCfg.Normalizer.Concurrency != 0 && !envSet("ROSTER_NORMALIZER_CONCURRENCY") {
		merged.Normalizer.Concurrency = fileCfg.Normalizer.Concurrency
	}

	return merged
}

func envSet(key string) bool {
	_, ok := os.LookupEnv(key)
	return ok
}

func configFilePath() string {
	if p := os.Getenv("ROSTER_CONFIG_FILE"); p != "" {
		return p
	}
	return "config.yaml"
}
