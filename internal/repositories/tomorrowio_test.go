package repositories

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewTomorrowIORepository_EmptyKey(t *testing.T) {
	_, err := NewTomorrowIORepository("", newTestLogger(), http.DefaultClient)
	if err == nil {
		t.Error("Expected error when API key is empty, got nil")
	}
}

func TestTomorrowIORepository_Name(t *testing.T) {
	repo := &TomorrowIORepository{}
	expected := "tomorrow-io"
	if name := repo.Name(); name != expected {
		t.Errorf("Expected name to be %s, got %s", expected, name)
	}
}

func TestTomorrowIORepository_FetchHourly_Success(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"timelines": {
				"hourly": [
					{
						"time": "2025-07-25T15:00:00Z",
						"values": {
							"temperature": 28.5,
							"precipitationIntensity": 1.2,
							"precipitationProbability": 55,
							"windSpeed": 10,
							"visibility": 16,
							"weatherCode": 4200,
							"lightningStrikeCount": 0
						}
					},
					{
						"time": "2025-07-25T16:00:00Z",
						"values": {
							"temperature": 27.0,
							"precipitationIntensity": 4.0,
							"precipitationProbability": 90,
							"windSpeed": 12,
							"visibility": 2,
							"weatherCode": 8000,
							"lightningStrikeCount": 3
						}
					}
				]
			}
		}`))
	}))
	defer mockServer.Close()

	repo, err := NewTomorrowIORepository("test-key", newTestLogger(), http.DefaultClient)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	repo.BaseURL = mockServer.URL

	samples, err := repo.FetchHourly(context.Background(), 21.7679, 83.9732)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len(samples) != 2 {
		t.Fatalf("Expected 2 samples, got %d", len(samples))
	}
	if samples[0].Timestamp != 1753455600 {
		t.Errorf("Expected timestamp 1753455600, got %d", samples[0].Timestamp)
	}
	// Wire scale is percent, samples are normalized to [0, 1]
	if samples[0].PrecipProbability != 0.55 {
		t.Errorf("Expected probability 0.55, got %f", samples[0].PrecipProbability)
	}
	// Wind is m/s at the wire, km/h in the sample
	if math.Abs(samples[0].WindSpeedKmh-36.0) > 1e-9 {
		t.Errorf("Expected wind 36.0 km/h, got %f", samples[0].WindSpeedKmh)
	}
	if samples[0].VisibilityKm != 16.0 {
		t.Errorf("Expected visibility 16.0 km, got %f", samples[0].VisibilityKm)
	}
	if samples[0].Description != "Light Rain" {
		t.Errorf("Expected description 'Light Rain', got %q", samples[0].Description)
	}
	if samples[0].Lightning {
		t.Error("Expected no lightning for first sample")
	}
	if !samples[1].Lightning {
		t.Error("Expected lightning for thunderstorm sample")
	}
	if samples[1].Description != "Thunderstorm" {
		t.Errorf("Expected description 'Thunderstorm', got %q", samples[1].Description)
	}
}

func TestTomorrowIORepository_FetchHourly_BadTimeFormat(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"timelines": {"hourly": [{"time": "not-a-time", "values": {}}]}}`))
	}))
	defer mockServer.Close()

	repo, _ := NewTomorrowIORepository("test-key", newTestLogger(), http.DefaultClient)
	repo.BaseURL = mockServer.URL

	_, err := repo.FetchHourly(context.Background(), 21.7679, 83.9732)
	if err == nil {
		t.Error("Expected error on unparseable time, got nil")
	}
}

func TestTomorrowIORepository_FetchHourly_HTTPError(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"code": 429001, "type": "Too Many Calls"}`))
	}))
	defer mockServer.Close()

	repo, _ := NewTomorrowIORepository("test-key", newTestLogger(), http.DefaultClient)
	repo.BaseURL = mockServer.URL

	_, err := repo.FetchHourly(context.Background(), 21.7679, 83.9732)
	if err == nil {
		t.Error("Expected error on HTTP 429, got nil")
	}
}

func TestTomorrowIORepository_FetchHourly_InvalidJSON(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("invalid json"))
	}))
	defer mockServer.Close()

	repo, _ := NewTomorrowIORepository("test-key", newTestLogger(), http.DefaultClient)
	repo.BaseURL = mockServer.URL

	_, err := repo.FetchHourly(context.Background(), 21.7679, 83.9732)
	if err == nil {
		t.Error("Expected error when receiving invalid JSON, got nil")
	}
}

func TestTomorrowIORepository_FetchHourly_EmptyForecast(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"timelines": {"hourly": []}}`))
	}))
	defer mockServer.Close()

	repo, _ := NewTomorrowIORepository("test-key", newTestLogger(), http.DefaultClient)
	repo.BaseURL = mockServer.URL

	_, err := repo.FetchHourly(context.Background(), 21.7679, 83.9732)
	if err == nil {
		t.Error("Expected error when forecast is empty, got nil")
	}
}
