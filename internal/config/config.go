// Package config provides application configuration loading and validation.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultUpstreamURL is the Gondwana Collection rates endpoint.
const DefaultUpstreamURL = "https://dev.gondwana-collection.com/Web-Store/Rates/Rates.php"

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Upstream UpstreamConfig
	Rates    RatesConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port              int    `mapstructure:"port"`
	ServeSwagger      bool   `mapstructure:"serve_swagger"`
	ServeMetrics      bool   `mapstructure:"serve_metrics"`
	CORSAllowedOrigin string `mapstructure:"cors_allowed_origin"`
}

// UpstreamConfig holds settings for the remote rates provider.
type UpstreamConfig struct {
	URL        string `mapstructure:"url"`
	TimeoutSec int    `mapstructure:"timeout_sec"`
	TLSVerify  bool   `mapstructure:"tls_verify"`
}

// RatesConfig holds the request transformation settings.
type RatesConfig struct {
	AdultAgeThreshold int   `mapstructure:"adult_age_threshold"`
	UnitTypeIDs       []int `mapstructure:"unit_type_ids"`
}

// LoadConfig reads configuration from config files, environment variables, and defaults.
// Notices about missing optional files go to stderr so stdout stays free for command output.
func LoadConfig() (*Config, error) {
	return LoadConfigWithNotices(os.Stderr)
}

// LoadConfigWithNotices is LoadConfig with notices written to w.
func LoadConfigWithNotices(w io.Writer) (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		fmt.Fprintf(w, "No .env file found or error loading it: %v\n", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Config search paths
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./internal/config")

	v.SetEnvPrefix("RATESVC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// It's okay if no config file, we have defaults and env
		fmt.Fprintf(w, "Config file not found: %v\n", err)
	}

	return unmarshal(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.serve_swagger", true)
	v.SetDefault("server.serve_metrics", true)
	v.SetDefault("server.cors_allowed_origin", "*")
	v.SetDefault("upstream.url", DefaultUpstreamURL)
	v.SetDefault("upstream.timeout_sec", 30)
	v.SetDefault("upstream.tls_verify", true)
	v.SetDefault("rates.adult_age_threshold", 12)
	v.SetDefault("rates.unit_type_ids", []int{-2147483637, -2147483456})
}

func unmarshal(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate checks that all required configuration fields are set and valid.
func (c *Config) Validate() error {
	var errs []error
	if c.Server.Port <= 0 {
		errs = append(errs, fmt.Errorf("server.port must be positive, got %d", c.Server.Port))
	}

	if c.Upstream.URL == "" {
		errs = append(errs, fmt.Errorf("upstream.url is required (set RATESVC_UPSTREAM_URL)"))
	}
	if c.Upstream.TimeoutSec <= 0 {
		errs = append(errs, fmt.Errorf("upstream.timeout_sec must be positive, got %d", c.Upstream.TimeoutSec))
	}

	if c.Rates.AdultAgeThreshold <= 0 {
		errs = append(errs, fmt.Errorf("rates.adult_age_threshold must be positive, got %d", c.Rates.AdultAgeThreshold))
	}
	if len(c.Rates.UnitTypeIDs) == 0 {
		errs = append(errs, fmt.Errorf("rates.unit_type_ids must contain at least one id"))
	}

	return errors.Join(errs...)
}
