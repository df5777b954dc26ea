package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"weather-report/internal/models"
	"weather-report/pkg/logger"
)

const (
	OpenMeteoBaseURL = "https://api.open-meteo.com/v1/forecast"

	openMeteoTimeLayout = "2006-01-02T15:04"
)

// OpenMeteoRepository fetches hourly forecasts from Open-Meteo. No API key
// is required for basic forecasts.
type OpenMeteoRepository struct {
	BaseURL    string
	httpClient HTTPClient
	l          *logger.Logger
}

func NewOpenMeteoRepository(l *logger.Logger, httpClient HTTPClient) *OpenMeteoRepository {
	return &OpenMeteoRepository{
		BaseURL:    OpenMeteoBaseURL,
		httpClient: httpClient,
		l:          l,
	}
}

func (o *OpenMeteoRepository) Name() string {
	return "open-meteo"
}

type OpenMeteoHourly struct {
	Time                     []string  `json:"time"`
	Temperature2m            []float64 `json:"temperature_2m"`
	Precipitation            []float64 `json:"precipitation"`
	PrecipitationProbability []float64 `json:"precipitation_probability"`
	WindSpeed10m             []float64 `json:"wind_speed_10m"`
	Visibility               []float64 `json:"visibility"`
	WeatherCode              []int     `json:"weather_code"`
}

func (o *OpenMeteoRepository) FetchHourly(ctx context.Context, lat, lon float64) ([]models.HourlySample, error) {
	url := fmt.Sprintf("%s?latitude=%f&longitude=%f&hourly=temperature_2m,precipitation,precipitation_probability,wind_speed_10m,visibility,weather_code&forecast_days=2&timezone=UTC",
		o.BaseURL, lat, lon)

	o.l.Info("making openmeteo API request", map[string]any{
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

	o.l.Info("received openmeteo API response", map[string]any{
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

	var response struct {
		Hourly OpenMeteoHourly `json:"hourly"`
	}
	if err = json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	o.l.Info("parsed API response", map[string]any{
		"hours": len(response.Hourly.Time),
	})

	if len(response.Hourly.Time) == 0 {
		return nil, fmt.Errorf("no forecast data available")
	}

	return hourlySamplesOpenMeteo(response.Hourly)
}

func hourlySamplesOpenMeteo(hourly OpenMeteoHourly) ([]models.HourlySample, error) {
	// Find the minimum length to avoid index out of bounds
	minLength := min(len(hourly.Time), len(hourly.Temperature2m),
		len(hourly.Precipitation), len(hourly.PrecipitationProbability), len(hourly.WeatherCode))

	samples := make([]models.HourlySample, 0, minLength)
	for i := 0; i < minLength; i++ {
		t, err := time.Parse(openMeteoTimeLayout, hourly.Time[i])
		if err != nil {
			return nil, fmt.Errorf("failed to parse time %s: %w", hourly.Time[i], err)
		}

		// Wind and visibility arrays may be absent for some coordinate sets;
		// wind is already km/h at the wire, visibility is meters.
		var windKmh float64
		if i < len(hourly.WindSpeed10m) {
			windKmh = hourly.WindSpeed10m[i]
		}
		visibility := 10.0
		if i < len(hourly.Visibility) && hourly.Visibility[i] > 0 {
			visibility = hourly.Visibility[i] / 1000
		}

		code := hourly.WeatherCode[i]
		samples = append(samples, models.HourlySample{
			Timestamp:         t.Unix(),
			Temperature:       hourly.Temperature2m[i],
			RainMM:            hourly.Precipitation[i],
			PrecipProbability: hourly.PrecipitationProbability[i] / 100,
			WindSpeedKmh:      windKmh,
			VisibilityKm:      visibility,
			Lightning:         code == 95 || code == 96 || code == 99,
			Description:       wmoDescription(code),
		})
	}

	return samples, nil
}

// wmoDescription maps Open-Meteo WMO weather codes to readable descriptions.
func wmoDescription(code int) string {
	codes := map[int]string{
		0: "Clear sky", 1: "Mainly clear", 2: "Partly cloudy", 3: "Overcast",
		45: "Fog", 48: "Depositing rime fog",
		51: "Drizzle: Light", 53: "Drizzle: Moderate", 55: "Drizzle: Dense",
		61: "Rain: Light", 63: "Rain: Moderate", 65: "Rain: Heavy",
		71: "Snow fall: Slight", 73: "Snow fall: Moderate", 75: "Snow fall: Heavy",
		80: "Rain showers: Slight", 81: "Rain showers: Moderate", 82: "Rain showers: Violent",
		95: "Thunderstorm: Slight or moderate",
		96: "Thunderstorm with slight hail", 99: "Thunderstorm with heavy hail",
	}
	if desc, ok := codes[code]; ok {
		return desc
	}
	return "Unknown weather code"
}
