package repositories

import (
	"context"
	"net/http"
	"time"

	"weather-report/config"
	"weather-report/internal/models"
	"weather-report/pkg/logger"
)

const defaultRequestTimeout = 10 * time.Second

// HTTPClient is the outbound request seam, satisfied by *http.Client.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// HourlyProvider fetches an hourly forecast for a coordinate.
type HourlyProvider interface {
	Name() string
	FetchHourly(ctx context.Context, lat, lon float64) ([]models.HourlySample, error)
}

// DailyProvider fetches a daily forecast for a provider-specific location key.
type DailyProvider interface {
	Name() string
	FetchDaily(ctx context.Context, locationKey string) ([]models.DailySummary, error)
}

func InitProviders(cfg *config.Config, l *logger.Logger) ([]HourlyProvider, []DailyProvider) {
	var hourly []HourlyProvider
	var daily []DailyProvider

	for _, api := range cfg.WeatherAPIs {
		timeout := defaultRequestTimeout
		if api.Timeout > 0 {
			timeout = time.Duration(api.Timeout) * time.Second
		}
		client := &http.Client{Timeout: timeout}

		switch api.Name {
		case "openweather":
			repo, err := NewOpenWeatherRepository(api.APIKey, l, client)
			if err != nil {
				l.Warning("skipping openweather provider", map[string]any{"err": err})
				continue
			}
			if api.BaseURL != "" {
				repo.BaseURL = api.BaseURL
			}
			hourly = append(hourly, repo)
		case "open-meteo":
			repo := NewOpenMeteoRepository(l, client)
			if api.BaseURL != "" {
				repo.BaseURL = api.BaseURL
			}
			hourly = append(hourly, repo)
		case "tomorrow-io":
			repo, err := NewTomorrowIORepository(api.APIKey, l, client)
			if err != nil {
				l.Warning("skipping tomorrow.io provider", map[string]any{"err": err})
				continue
			}
			if api.BaseURL != "" {
				repo.BaseURL = api.BaseURL
			}
			hourly = append(hourly, repo)
		case "accuweather":
			repo, err := NewAccuWeatherRepository(api.APIKey, l, client)
			if err != nil {
				l.Warning("skipping accuweather provider", map[string]any{"err": err})
				continue
			}
			if api.BaseURL != "" {
				repo.BaseURL = api.BaseURL
			}
			daily = append(daily, repo)
			// Add more cases for new providers to extend the app
		}
	}

	return hourly, daily
}
