package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

//go:embed config.yml
var embeddedConfig []byte

type Config struct {
	Mode   string `mapstructure:"mode"`
	Server struct {
		HTTPPort       string        `mapstructure:"HTTPPort"`
		Timeout        time.Duration `mapstructure:"HTTPTimeout"`
		ReadTimeout    time.Duration `mapstructure:"readTimeout"`
		WriteTimeout   time.Duration `mapstructure:"writeTimeout"`
		IdleTimeout    time.Duration `mapstructure:"idleTimeout"`
		AllowedOrigins []string      `mapstructure:"allowedOrigins"`
	} `mapstructure:"server"`
	Gemini        GeminiConfig    `mapstructure:"gemini"`
	Geocoding     GeocodingConfig `mapstructure:"geocoding"`
	Extractor     ExtractorConfig `mapstructure:"extractor"`
	Chat          ChatConfig      `mapstructure:"chat"`
	Brochure      BrochureConfig  `mapstructure:"brochure"`
	RateLimit     RateLimitConfig `mapstructure:"rateLimit"`
	Observability struct {
		ServiceName string `mapstructure:"serviceName"`
	} `mapstructure:"observability"`
}

// GeminiConfig drives both the recommendation and the free-form generation calls.
type GeminiConfig struct {
	APIKey          string   `mapstructure:"apiKey"`
	Models          []string `mapstructure:"models"`
	Temperature     float32  `mapstructure:"temperature"`
	TopK            float32  `mapstructure:"topK"`
	TopP            float32  `mapstructure:"topP"`
	MaxOutputTokens int32    `mapstructure:"maxOutputTokens"`
	GenerateTokens  int32    `mapstructure:"generateMaxOutputTokens"`
	SearchGrounding bool     `mapstructure:"searchGrounding"`
}

type GeocodingConfig struct {
	APIKey      string        `mapstructure:"apiKey"`
	BaseURL     string        `mapstructure:"baseURL"`
	CountryCode string        `mapstructure:"countryCode"`
	Limit       int           `mapstructure:"limit"`
	HTTPTimeout time.Duration `mapstructure:"httpTimeout"`
	Breaker     struct {
		FailureThreshold uint32        `mapstructure:"failureThreshold"`
		OpenTimeout      time.Duration `mapstructure:"openTimeout"`
		Interval         time.Duration `mapstructure:"interval"`
	} `mapstructure:"breaker"`
}

type ExtractorConfig struct {
	MaxConcurrency int `mapstructure:"maxConcurrency"`
}

type ChatConfig struct {
	SessionTTL      time.Duration `mapstructure:"sessionTTL"`
	CleanupInterval time.Duration `mapstructure:"cleanupInterval"`
	MinBudgetINR    int           `mapstructure:"minBudgetINR"`
}

type BrochureConfig struct {
	Path         string `mapstructure:"path"`
	DownloadName string `mapstructure:"downloadName"`
}

type RateLimitConfig struct {
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

func InitConfig() (Config, error) {
	var config Config
	v := viper.New()

	// Add file-based config paths
	v.AddConfigPath(".")
	v.AddConfigPath("config")
	v.AddConfigPath("/app/config")

	v.SetConfigName("config")
	v.SetConfigType("yml")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := bindSecrets(v); err != nil {
		return Config{}, err
	}

	// Try to load file-based config
	err := v.ReadInConfig()
	if err != nil {
		fmt.Printf("Warning: Failed to find file-based config: %s. Falling back to embedded config.\n", err)
		if err = v.ReadConfig(bytes.NewReader(embeddedConfig)); err != nil {
			return Config{}, fmt.Errorf("failed to read embedded config: %s", err)
		}
	}

	// Unmarshal the config into the Config struct
	if err = v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %s", err)
	}
	fmt.Println("Successfully loaded app configs...")
	return config, nil
}

// bindSecrets maps credentials onto config keys. Keys stay empty when unset;
// the features that need them degrade instead of failing startup.
func bindSecrets(v *viper.Viper) error {
	if err := v.BindEnv("gemini.apiKey", "GEMINI_API_KEY", "GOOGLE_GEMINI_API_KEY"); err != nil {
		return fmt.Errorf("failed to bind gemini api key: %w", err)
	}
	if err := v.BindEnv("geocoding.apiKey", "OPENCAGE_API_KEY", "GEOCODING_API_KEY"); err != nil {
		return fmt.Errorf("failed to bind geocoding api key: %w", err)
	}
	if err := v.BindEnv("mode", "APP_ENV"); err != nil {
		return fmt.Errorf("failed to bind mode: %w", err)
	}
	if err := v.BindEnv("server.HTTPPort", "PORT"); err != nil {
		return fmt.Errorf("failed to bind port: %w", err)
	}
	return nil
}
