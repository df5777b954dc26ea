package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"weather-report/internal/models"
)

type Config struct {
	AppName    string `envconfig:"APP_NAME" default:"weather-report"`
	AppVersion string `envconfig:"APP_VERSION" default:"1.0.0"`
	AppEnv     string `envconfig:"APP_ENV" default:"development"`
	Port       string `envconfig:"PORT" default:"8080"`
	SentryDSN  string `envconfig:"SENTRY_DSN"`

	// Key overrides for the entries in WeatherAPIs, so secrets can stay out
	// of the YAML file.
	OpenWeatherKey string `envconfig:"OPENWEATHER_API_KEY"`
	TomorrowKey    string `envconfig:"TOMORROW_API_KEY"`
	AccuWeatherKey string `envconfig:"ACCUWEATHER_API_KEY"`

	WeatherAPIs []WeatherAPIConfig `yaml:"weather_apis"`
	Locations   []models.Location  `yaml:"locations"`
	Report      ReportConfig       `yaml:"report"`
}

type WeatherAPIConfig struct {
	Name    string `yaml:"name"`
	APIKey  string `yaml:"api_key,omitempty"`
	BaseURL string `yaml:"base_url,omitempty"`
	Timeout int    `yaml:"timeout,omitempty"`
}

type ReportConfig struct {
	RainProbabilityThreshold float64 `yaml:"rain_probability_threshold"`
	MaxGapSeconds            int64   `yaml:"max_gap_seconds"`
	MaxWindowSamples         int     `yaml:"max_window_samples"`
	DailyRainFlagThreshold   float64 `yaml:"daily_rain_flag_threshold"`
}

func NewConfig() *Config {
	var cnf Config

	// Read from YAML file first
	if yamlData, err := os.ReadFile("config/config.yaml"); err == nil {
		if err := yaml.Unmarshal(yamlData, &cnf); err != nil {
			panic(fmt.Sprintf("Warning: failed to parse YAML config: %v\n", err))
		}
	}

	// Override with environment variables
	if err := envconfig.Process("", &cnf); err != nil {
		panic(fmt.Errorf("error environment variable parsing: %w", err))
	}

	cnf.applyDefaults()
	cnf.applyKeyOverrides()

	return &cnf
}

// applyDefaults fills unset report knobs. A zero rain probability threshold
// is treated as unset; DailyRainFlagThreshold stays zero-valued because
// "any rain at all" is a valid policy for the daily flag.
func (c *Config) applyDefaults() {
	if c.Report.RainProbabilityThreshold == 0 {
		c.Report.RainProbabilityThreshold = 0.4
	}
	if c.Report.MaxGapSeconds == 0 {
		c.Report.MaxGapSeconds = 7200
	}
	if c.Report.MaxWindowSamples == 0 {
		c.Report.MaxWindowSamples = 4
	}
}

func (c *Config) applyKeyOverrides() {
	for i := range c.WeatherAPIs {
		switch c.WeatherAPIs[i].Name {
		case "openweather":
			if c.OpenWeatherKey != "" {
				c.WeatherAPIs[i].APIKey = c.OpenWeatherKey
			}
		case "tomorrow-io":
			if c.TomorrowKey != "" {
				c.WeatherAPIs[i].APIKey = c.TomorrowKey
			}
		case "accuweather":
			if c.AccuWeatherKey != "" {
				c.WeatherAPIs[i].APIKey = c.AccuWeatherKey
			}
		}
	}
}

func (c *Config) GetWeatherAPIByName(name string) (*WeatherAPIConfig, bool) {
	for i := range c.WeatherAPIs {
		if c.WeatherAPIs[i].Name == name {
			return &c.WeatherAPIs[i], true
		}
	}
	return nil, false
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production" || c.AppEnv == "prod"
}
