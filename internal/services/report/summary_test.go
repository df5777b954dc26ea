package report

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-report/internal/models"
)

func TestRainCategory(t *testing.T) {
	tests := []struct {
		mm       float64
		expected string
	}{
		{0, "No Rain"},
		{0.2, "Drizzle"},
		{1, "Light Rain"},
		{4.9, "Light Rain"},
		{5, "Moderate Rain"},
		{15, "Heavy Rain"},
		{25, "Very Heavy Rain & Storm"},
		{80, "Very Heavy Rain & Storm"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, RainCategory(tt.mm), "mm=%v", tt.mm)
	}
}

func TestSummarizeDay(t *testing.T) {
	date := time.Date(2025, 7, 25, 0, 0, 0, 0, ReportZone)
	samples := []models.HourlySample{
		{Timestamp: 0, Temperature: 24.0, RainMM: 0.5, PrecipProbability: 0.2, Description: "overcast"},
		{Timestamp: 3600, Temperature: 31.5, RainMM: 2.0, PrecipProbability: 0.8, Description: "light rain"},
		{Timestamp: 7200, Temperature: 28.0, RainMM: 1.5, PrecipProbability: 0.6, Description: "light rain"},
	}

	summary, err := SummarizeDay(date, samples)
	require.NoError(t, err)

	assert.Equal(t, date, summary.Date)
	assert.Equal(t, 31.5, summary.TempMax)
	assert.Equal(t, 24.0, summary.TempMin)
	assert.InDelta(t, 4.0, summary.TotalRainMM, 1e-9)
	assert.InDelta(t, 0.8, summary.PrecipProbability, 1e-9)
	assert.Equal(t, "light rain", summary.Description, "most frequent description wins")
}

func TestSummarizeDay_NoDescriptionsFallsBackToCategory(t *testing.T) {
	date := time.Date(2025, 7, 25, 0, 0, 0, 0, ReportZone)
	samples := []models.HourlySample{
		{Timestamp: 0, Temperature: 30, RainMM: 6.0, PrecipProbability: 0.9},
	}

	summary, err := SummarizeDay(date, samples)
	require.NoError(t, err)
	assert.Equal(t, "Moderate Rain", summary.Description)
}

func TestSummarizeDay_Empty(t *testing.T) {
	_, err := SummarizeDay(time.Now(), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoSamples))
}

func TestDailySummary_RainExpected(t *testing.T) {
	summary := models.DailySummary{PrecipProbability: 0.05}

	assert.True(t, summary.RainExpected(0))
	assert.False(t, summary.RainExpected(0.1))
	assert.False(t, models.DailySummary{}.RainExpected(0))
}
