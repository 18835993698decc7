package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/runtime-env/internal/render"
)

const (
	defaultPort           = "8080"
	defaultOutputPath     = "env.js"
	defaultLogLevel       = "info"
	defaultRateLimitRPS   = 25.0
	defaultRateLimitBurst = 50
)

// Config aggregates runtime configuration resolved from multiple sources.
// Precedence: CLI flags > YAML config > Environment variables > Defaults
type Config struct {
	Port                 string        `yaml:"port"`
	WebRoot              string        `yaml:"web_root"`
	OutputPath           string        `yaml:"output_path"`
	Global               string        `yaml:"global"`
	OverridesFile        string        `yaml:"overrides_file"`
	DotenvFile           string        `yaml:"dotenv_file"`
	EnvPrefix            string        `yaml:"env_prefix"`
	LogLevel             string        `yaml:"log_level"`
	ShutdownGracePeriod  time.Duration `yaml:"shutdown_grace_period"`
	ReadHeaderTimeout    time.Duration `yaml:"read_header_timeout"`
	WriteTimeout         time.Duration `yaml:"write_timeout"`
	IdleTimeout          time.Duration `yaml:"idle_timeout"`
	EnableRequestLogging bool          `yaml:"enable_request_logging"`
	RateLimitRPS         float64       `yaml:"-"`
	RateLimitBurst       int           `yaml:"-"`
}

// yamlConfig represents the YAML configuration file structure.
type yamlConfig struct {
	Port                 string        `yaml:"port"`
	WebRoot              string        `yaml:"web_root"`
	OutputPath           string        `yaml:"output_path"`
	Global               string        `yaml:"global"`
	OverridesFile        string        `yaml:"overrides_file"`
	DotenvFile           string        `yaml:"dotenv_file"`
	EnvPrefix            string        `yaml:"env_prefix"`
	LogLevel             string        `yaml:"log_level"`
	ShutdownGracePeriod  string        `yaml:"shutdown_grace_period"`
	ReadHeaderTimeout    string        `yaml:"read_header_timeout"`
	WriteTimeout         string        `yaml:"write_timeout"`
	IdleTimeout          string        `yaml:"idle_timeout"`
	EnableRequestLogging *bool         `yaml:"enable_request_logging"`
	RateLimit            yamlRateLimit `yaml:"rate_limit"`
}

// yamlRateLimit represents the rate limit section in YAML.
type yamlRateLimit struct {
	RPS   *float64 `yaml:"rps"`
	Burst *int     `yaml:"burst"`
}

// CLIOverrides holds command-line flag overrides.
type CLIOverrides struct {
	ConfigFile     string
	Port           *string
	WebRoot        *string
	OutputPath     *string
	Global         *string
	OverridesFile  *string
	DotenvFile     *string
	EnvPrefix      *string
	LogLevel       *string
	RateLimitRPS   *float64
	RateLimitBurst *int
}

// Load extracts configuration from multiple sources with precedence:
// CLI flags > YAML config > Environment variables > Defaults
func Load(overrides *CLIOverrides) (Config, error) {
	cfg := defaultConfig()

	// Apply environment variables (lowest precedence after defaults)
	applyEnvConfig(&cfg)

	// Load from YAML file if specified
	if overrides != nil && overrides.ConfigFile != "" {
		yamlCfg, err := loadFromFile(overrides.ConfigFile)
		if err != nil {
			return Config{}, fmt.Errorf("load YAML config: %w", err)
		}
		applyYAMLConfig(&cfg, yamlCfg)
	}

	// Apply CLI overrides (highest precedence)
	if overrides != nil {
		applyCLIOverrides(&cfg, overrides)
	}

	// Validate final configuration
	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// defaultConfig returns a Config with default values.
func defaultConfig() Config {
	return Config{
		Port:                 defaultPort,
		OutputPath:           defaultOutputPath,
		Global:               render.DefaultGlobal,
		LogLevel:             defaultLogLevel,
		ShutdownGracePeriod:  10 * time.Second,
		ReadHeaderTimeout:    5 * time.Second,
		WriteTimeout:         15 * time.Second,
		IdleTimeout:          60 * time.Second,
		EnableRequestLogging: true,
		RateLimitRPS:         defaultRateLimitRPS,
		RateLimitBurst:       defaultRateLimitBurst,
	}
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &yamlCfg, nil
}

func setString(dst *string, value string) {
	if value = strings.TrimSpace(value); value != "" {
		*dst = value
	}
}

func setDuration(dst *time.Duration, value string) {
	if value == "" {
		return
	}
	if d, err := time.ParseDuration(value); err == nil {
		*dst = d
	}
}

// applyYAMLConfig applies YAML configuration to the Config struct.
func applyYAMLConfig(cfg *Config, yamlCfg *yamlConfig) {
	setString(&cfg.Port, yamlCfg.Port)
	setString(&cfg.WebRoot, yamlCfg.WebRoot)
	setString(&cfg.OutputPath, yamlCfg.OutputPath)
	setString(&cfg.Global, yamlCfg.Global)
	setString(&cfg.OverridesFile, yamlCfg.OverridesFile)
	setString(&cfg.DotenvFile, yamlCfg.DotenvFile)
	setString(&cfg.EnvPrefix, yamlCfg.EnvPrefix)
	setString(&cfg.LogLevel, yamlCfg.LogLevel)

	setDuration(&cfg.ShutdownGracePeriod, yamlCfg.ShutdownGracePeriod)
	setDuration(&cfg.ReadHeaderTimeout, yamlCfg.ReadHeaderTimeout)
	setDuration(&cfg.WriteTimeout, yamlCfg.WriteTimeout)
	setDuration(&cfg.IdleTimeout, yamlCfg.IdleTimeout)

	if yamlCfg.EnableRequestLogging != nil {
		cfg.EnableRequestLogging = *yamlCfg.EnableRequestLogging
	}

	if yamlCfg.RateLimit.RPS != nil && *yamlCfg.RateLimit.RPS >= 0 {
		cfg.RateLimitRPS = *yamlCfg.RateLimit.RPS
	}

	if yamlCfg.RateLimit.Burst != nil && *yamlCfg.RateLimit.Burst >= 0 {
		cfg.RateLimitBurst = *yamlCfg.RateLimit.Burst
	}
}

// applyEnvConfig applies environment variable configuration. Variables are
// prefixed with RUNTIME_ENV_ so they cannot collide with the namespace
// overrides read from the same environment.
func applyEnvConfig(cfg *Config) {
	setString(&cfg.Port, os.Getenv("PORT"))
	setString(&cfg.WebRoot, os.Getenv("RUNTIME_ENV_WEB_ROOT"))
	setString(&cfg.OutputPath, os.Getenv("RUNTIME_ENV_OUTPUT"))
	setString(&cfg.Global, os.Getenv("RUNTIME_ENV_GLOBAL"))
	setString(&cfg.OverridesFile, os.Getenv("RUNTIME_ENV_OVERRIDES_FILE"))
	setString(&cfg.DotenvFile, os.Getenv("RUNTIME_ENV_DOTENV_FILE"))
	setString(&cfg.EnvPrefix, os.Getenv("RUNTIME_ENV_PREFIX"))
	setString(&cfg.LogLevel, os.Getenv("RUNTIME_ENV_LOG_LEVEL"))

	if rps := strings.TrimSpace(os.Getenv("RATE_LIMIT_RPS")); rps != "" {
		if value, err := strconv.ParseFloat(rps, 64); err == nil && value >= 0 {
			cfg.RateLimitRPS = value
		}
	}

	if burst := strings.TrimSpace(os.Getenv("RATE_LIMIT_BURST")); burst != "" {
		if value, err := strconv.Atoi(burst); err == nil && value >= 0 {
			cfg.RateLimitBurst = value
		}
	}
}

// applyCLIOverrides applies command-line flag overrides.
func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) {
	for dst, src := range map[*string]*string{
		&cfg.Port:          overrides.Port,
		&cfg.WebRoot:       overrides.WebRoot,
		&cfg.OutputPath:    overrides.OutputPath,
		&cfg.Global:        overrides.Global,
		&cfg.OverridesFile: overrides.OverridesFile,
		&cfg.DotenvFile:    overrides.DotenvFile,
		&cfg.EnvPrefix:     overrides.EnvPrefix,
		&cfg.LogLevel:      overrides.LogLevel,
	} {
		if src != nil {
			setString(dst, *src)
		}
	}

	if overrides.RateLimitRPS != nil && *overrides.RateLimitRPS >= 0 {
		cfg.RateLimitRPS = *overrides.RateLimitRPS
	}

	if overrides.RateLimitBurst != nil && *overrides.RateLimitBurst >= 0 {
		cfg.RateLimitBurst = *overrides.RateLimitBurst
	}
}

// validateConfig validates the final configuration.
func validateConfig(cfg Config) error {
	if cfg.RateLimitRPS < 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must be >= 0")
	}
	if cfg.RateLimitBurst < 0 {
		return fmt.Errorf("RATE_LIMIT_BURST must be >= 0")
	}
	if cfg.OutputPath == "" {
		return fmt.Errorf("output path cannot be empty")
	}
	switch strings.ToLower(cfg.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unsupported log level %q", cfg.LogLevel)
	}
	return nil
}
