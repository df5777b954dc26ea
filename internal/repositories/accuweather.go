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
	AccuWeatherBaseURL = "https://dataservice.accuweather.com/forecasts/v1/daily/5day"
)

// AccuWeatherRepository fetches five-day daily forecasts. AccuWeather keys
// locations by its own location key rather than coordinates.
type AccuWeatherRepository struct {
	BaseURL    string
	APIKey     string
	httpClient HTTPClient
	l          *logger.Logger
}

func NewAccuWeatherRepository(apiKey string, l *logger.Logger, httpClient HTTPClient) (*AccuWeatherRepository, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("API key cannot be empty")
	}

	return &AccuWeatherRepository{
		BaseURL:    AccuWeatherBaseURL,
		APIKey:     apiKey,
		httpClient: httpClient,
		l:          l,
	}, nil
}

func (a *AccuWeatherRepository) Name() string {
	return "accuweather"
}

type AccuWeatherResponse struct {
	DailyForecasts []struct {
		EpochDate   int64 `json:"EpochDate"`
		Temperature struct {
			Minimum struct {
				Value float64 `json:"Value"`
			} `json:"Minimum"`
			Maximum struct {
				Value float64 `json:"Value"`
			} `json:"Maximum"`
		} `json:"Temperature"`
		Day struct {
			IconPhrase  string `json:"IconPhrase"`
			TotalLiquid struct {
				Value float64 `json:"Value"`
			} `json:"TotalLiquid"`
			PrecipitationProbability float64 `json:"PrecipitationProbability"`
		} `json:"Day"`
	} `json:"DailyForecasts"`
}

func (a *AccuWeatherRepository) FetchDaily(ctx context.Context, locationKey string) ([]models.DailySummary, error) {
	if strings.TrimSpace(locationKey) == "" {
		return nil, errors.New("location key cannot be empty")
	}

	url := fmt.Sprintf("%s/%s?apikey=%s&details=true&metric=true", a.BaseURL, locationKey, a.APIKey)

	a.l.Info("making accuweather API request", map[string]any{
		"locationKey": locationKey,
	})

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to do request: %w", err)
	}
	defer resp.Body.Close()

	a.l.Info("received accuweather API response", map[string]any{
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

	var response AccuWeatherResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	a.l.Info("parsed API response", map[string]any{
		"days": len(response.DailyForecasts),
	})

	if len(response.DailyForecasts) == 0 {
		return nil, fmt.Errorf("no forecast data available")
	}

	summaries := make([]models.DailySummary, 0, len(response.DailyForecasts))
	for _, d := range response.DailyForecasts {
		summaries = append(summaries, models.DailySummary{
			Date:              time.Unix(d.EpochDate, 0).UTC(),
			Description:       d.Day.IconPhrase,
			TempMax:           d.Temperature.Maximum.Value,
			TempMin:           d.Temperature.Minimum.Value,
			TotalRainMM:       d.Day.TotalLiquid.Value,
			PrecipProbability: d.Day.PrecipitationProbability / 100,
		})
	}

	return summaries, nil
}
