package repositories

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewAccuWeatherRepository_EmptyKey(t *testing.T) {
	_, err := NewAccuWeatherRepository("", newTestLogger(), http.DefaultClient)
	if err == nil {
		t.Error("Expected error when API key is empty, got nil")
	}
}

func TestAccuWeatherRepository_Name(t *testing.T) {
	repo := &AccuWeatherRepository{}
	expected := "accuweather"
	if name := repo.Name(); name != expected {
		t.Errorf("Expected name to be %s, got %s", expected, name)
	}
}

func TestAccuWeatherRepository_FetchDaily_Success(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"DailyForecasts": [
				{
					"EpochDate": 1753401600,
					"Temperature": {"Minimum": {"Value": 24.3}, "Maximum": {"Value": 38.0}},
					"Day": {"IconPhrase": "Thunderstorms", "TotalLiquid": {"Value": 12.5}, "PrecipitationProbability": 76}
				},
				{
					"EpochDate": 1753488000,
					"Temperature": {"Minimum": {"Value": 23.0}, "Maximum": {"Value": 35.5}},
					"Day": {"IconPhrase": "Partly sunny", "TotalLiquid": {"Value": 0.0}, "PrecipitationProbability": 5}
				}
			]
		}`))
	}))
	defer mockServer.Close()

	repo, err := NewAccuWeatherRepository("test-key", newTestLogger(), http.DefaultClient)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	repo.BaseURL = mockServer.URL

	summaries, err := repo.FetchDaily(context.Background(), "2864547")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len(summaries) != 2 {
		t.Fatalf("Expected 2 summaries, got %d", len(summaries))
	}
	if summaries[0].Description != "Thunderstorms" {
		t.Errorf("Expected description 'Thunderstorms', got %q", summaries[0].Description)
	}
	if summaries[0].TempMax != 38.0 {
		t.Errorf("Expected max temp 38.0, got %f", summaries[0].TempMax)
	}
	if summaries[0].TotalRainMM != 12.5 {
		t.Errorf("Expected 12.5mm total rain, got %f", summaries[0].TotalRainMM)
	}
	// Wire scale is percent, summaries are normalized to [0, 1]
	if summaries[0].PrecipProbability != 0.76 {
		t.Errorf("Expected probability 0.76, got %f", summaries[0].PrecipProbability)
	}
}

func TestAccuWeatherRepository_FetchDaily_EmptyLocationKey(t *testing.T) {
	repo, _ := NewAccuWeatherRepository("test-key", newTestLogger(), http.DefaultClient)

	_, err := repo.FetchDaily(context.Background(), "")
	if err == nil {
		t.Error("Expected error when location key is empty, got nil")
	}
}

func TestAccuWeatherRepository_FetchDaily_HTTPError(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"Code": "ServiceUnavailable", "Message": "quota exceeded"}`))
	}))
	defer mockServer.Close()

	repo, _ := NewAccuWeatherRepository("test-key", newTestLogger(), http.DefaultClient)
	repo.BaseURL = mockServer.URL

	_, err := repo.FetchDaily(context.Background(), "2864547")
	if err == nil {
		t.Error("Expected error on HTTP 503, got nil")
	}
}

func TestAccuWeatherRepository_FetchDaily_InvalidJSON(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("invalid json"))
	}))
	defer mockServer.Close()

	repo, _ := NewAccuWeatherRepository("test-key", newTestLogger(), http.DefaultClient)
	repo.BaseURL = mockServer.URL

	_, err := repo.FetchDaily(context.Background(), "2864547")
	if err == nil {
		t.Error("Expected error when receiving invalid JSON, got nil")
	}
}

func TestAccuWeatherRepository_FetchDaily_EmptyForecast(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"DailyForecasts": []}`))
	}))
	defer mockServer.Close()

	repo, _ := NewAccuWeatherRepository("test-key", newTestLogger(), http.DefaultClient)
	repo.BaseURL = mockServer.URL

	_, err := repo.FetchDaily(context.Background(), "2864547")
	if err == nil {
		t.Error("Expected error when forecast is empty, got nil")
	}
}
