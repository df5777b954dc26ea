package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"weather-report/internal/models"
	"weather-report/pkg/logger"
)

const (
	OpenWeatherBaseURL = "https://api.openweathermap.org/data/3.0/onecall"
)

// OpenWeatherRepository fetches hourly forecasts from the OpenWeatherMap
// One Call API 3.0.
type OpenWeatherRepository struct {
	BaseURL    string
	APIKey     string
	httpClient HTTPClient
	l          *logger.Logger
}

func NewOpenWeatherRepository(apiKey string, l *logger.Logger, httpClient HTTPClient) (*OpenWeatherRepository, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("API key cannot be empty")
	}

	return &OpenWeatherRepository{
		BaseURL:    OpenWeatherBaseURL,
		APIKey:     apiKey,
		httpClient: httpClient,
		l:          l,
	}, nil
}

func (o *OpenWeatherRepository) Name() string {
	return "openweather"
}

type OpenWeatherResponse struct {
	Hourly []struct {
		Dt         int64   `json:"dt"`
		Temp       float64 `json:"temp"`
		Pop        float64 `json:"pop"`
		WindSpeed  float64 `json:"wind_speed"`
		Visibility float64 `json:"visibility"`
		Rain       struct {
			OneHour float64 `json:"1h"`
		} `json:"rain"`
		Snow struct {
			OneHour float64 `json:"1h"`
		} `json:"snow"`
		Weather []struct {
			ID          int    `json:"id"`
			Description string `json:"description"`
		} `json:"weather"`
	} `json:"hourly"`
}

func (o *OpenWeatherRepository) FetchHourly(ctx context.Context, lat, lon float64) ([]models.HourlySample, error) {
	url := fmt.Sprintf("%s?lat=%f&lon=%f&units=metric&exclude=minutely,daily,alerts&appid=%s",
		o.BaseURL, lat, lon, o.APIKey)

	o.l.Info("making openweather API request", map[string]any{
		"lat": lat,
		"lon": lon,
	})

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := o.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to do request: %w", err)
	}
	defer resp.Body.Close()

	o.l.Info("received openweather API response", map[string]any{
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

	var response OpenWeatherResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	o.l.Info("parsed API response", map[string]any{
		"hours": len(response.Hourly),
	})

	if len(response.Hourly) == 0 {
		return nil, fmt.Errorf("no forecast data available")
	}

	samples := make([]models.HourlySample, 0, len(response.Hourly))
	for _, h := range response.Hourly {
		// Wire units: wind m/s, visibility meters (absent means full 10 km).
		visibility := 10.0
		if h.Visibility > 0 {
			visibility = h.Visibility / 1000
		}
		sample := models.HourlySample{
			Timestamp:         h.Dt,
			Temperature:       h.Temp,
			RainMM:            h.Rain.OneHour + h.Snow.OneHour,
			PrecipProbability: h.Pop,
			WindSpeedKmh:      h.WindSpeed * 3.6,
			VisibilityKm:      visibility,
		}
		if len(h.Weather) > 0 {
			sample.Description = h.Weather[0].Description
			// 2xx condition codes are the thunderstorm group.
			sample.Lightning = h.Weather[0].ID >= 200 && h.Weather[0].ID < 300
		}
		samples = append(samples, sample)
	}

	return samples, nil
}
