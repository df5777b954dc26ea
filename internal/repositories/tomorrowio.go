package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"weather-report/internal/models"
	"weather-report/pkg/logger"
)

const (
	TomorrowIOBaseURL = "https://api.tomorrow.io/v4/weather/forecast"
)

// TomorrowIORepository fetches hourly forecasts from the Tomorrow.io weather
// forecast endpoint.
type TomorrowIORepository struct {
	BaseURL    string
	APIKey     string
	httpClient HTTPClient
	l          *logger.Logger
}

func NewTomorrowIORepository(apiKey string, l *logger.Logger, httpClient HTTPClient) (*TomorrowIORepository, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("API key cannot be empty")
	}

	return &TomorrowIORepository{
		BaseURL:    TomorrowIOBaseURL,
		APIKey:     apiKey,
		httpClient: httpClient,
		l:          l,
	}, nil
}

func (t *TomorrowIORepository) Name() string {
	return "tomorrow-io"
}

type TomorrowIOResponse struct {
	Timelines struct {
		Hourly []struct {
			Time   string `json:"time"`
			Values struct {
				Temperature              float64 `json:"temperature"`
				PrecipitationIntensity   float64 `json:"precipitationIntensity"`
				PrecipitationProbability float64 `json:"precipitationProbability"`
				WindSpeed                float64 `json:"windSpeed"`
				Visibility               float64 `json:"visibility"`
				WeatherCode              int     `json:"weatherCode"`
				LightningStrikeCount     float64 `json:"lightningStrikeCount"`
			} `json:"values"`
		} `json:"hourly"`
	} `json:"timelines"`
}

func (t *TomorrowIORepository) FetchHourly(ctx context.Context, lat, lon float64) ([]models.HourlySample, error) {
	url := fmt.Sprintf("%s?location=%f,%f&units=metric&apikey=%s", t.BaseURL, lat, lon, t.APIKey)

	t.l.Info("making tomorrow.io API request", map[string]any{
		"lat": lat,
		"lon": lon,
	})

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to do request: %w", err)
	}
	defer resp.Body.Close()

	t.l.Info("received tomorrow.io API response", map[string]any{
		"status":     resp.StatusCode,
		"statusText": resp.Status,
	})

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error (status %d): %s", resp.StatusCode, resp.Status)
	}

	var response TomorrowIOResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	t.l.Info("parsed API response", map[string]any{
		"hours": len(response.Timelines.Hourly),
	})

	if len(response.Timelines.Hourly) == 0 {
		return nil, fmt.Errorf("no forecast data available")
	}

	samples := make([]models.HourlySample, 0, len(response.Timelines.Hourly))
	for _, h := range response.Timelines.Hourly {
		ts, err := time.Parse(time.RFC3339, h.Time)
		if err != nil {
			return nil, fmt.Errorf("failed to parse time %s: %w", h.Time, err)
		}

		v := h.Values
		// Metric units at the wire: wind m/s, visibility already km.
		visibility := 10.0
		if v.Visibility > 0 {
			visibility = v.Visibility
		}
		samples = append(samples, models.HourlySample{
			Timestamp:         ts.Unix(),
			Temperature:       v.Temperature,
			RainMM:            v.PrecipitationIntensity,
			PrecipProbability: v.PrecipitationProbability / 100,
			WindSpeedKmh:      v.WindSpeed * 3.6,
			VisibilityKm:      visibility,
			Lightning:         v.LightningStrikeCount > 0 || v.WeatherCode == 8000,
			Description:       tomorrowDescription(v.WeatherCode),
		})
	}

	return samples, nil
}

// tomorrowDescription maps Tomorrow.io weather codes to readable descriptions.
func tomorrowDescription(code int) string {
	codes := map[int]string{
		0: "Unknown", 1000: "Clear, Sunny", 1001: "Cloudy", 1100: "Mostly Clear",
		1101: "Partly Cloudy", 1102: "Mostly Cloudy", 2000: "Fog", 2100: "Light Fog",
		3000: "Light Wind", 3001: "Wind", 3002: "Strong Wind", 4000: "Drizzle",
		4001: "Rain", 4200: "Light Rain", 4201: "Heavy Rain", 5000: "Light Snow",
		5001: "Snow", 5100: "Heavy Snow", 5101: "Freezing Drizzle",
		6000: "Freezing Drizzle", 6001: "Freezing Rain", 6200: "Light Freezing Rain",
		6201: "Heavy Freezing Rain", 7000: "Light Ice Pellets", 7001: "Ice Pellets",
		7100: "Heavy Ice Pellets", 8000: "Thunderstorm",
	}
	if desc, ok := codes[code]; ok {
		return desc
	}
	return "Unknown weather code"
}
