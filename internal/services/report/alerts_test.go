package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-report/internal/models"
)

func TestScanAlerts(t *testing.T) {
	samples := []models.HourlySample{
		{Timestamp: 0, WindSpeedKmh: 10, VisibilityKm: 10},
		{Timestamp: 3600, WindSpeedKmh: 36, VisibilityKm: 10},
		{Timestamp: 7200, WindSpeedKmh: 10, VisibilityKm: 0.8},
		{Timestamp: 10800, WindSpeedKmh: 10, VisibilityKm: 10, Lightning: true},
		{Timestamp: 14400, WindSpeedKmh: 30, VisibilityKm: 1.0},
	}

	alerts := ScanAlerts(samples)
	require.Len(t, alerts, 4)

	assert.True(t, alerts[0].HighWind)
	assert.False(t, alerts[0].LowVisibility)

	assert.True(t, alerts[1].LowVisibility)
	assert.False(t, alerts[1].HighWind)

	assert.True(t, alerts[2].Lightning)

	// Thresholds are inclusive on the alerting side
	assert.True(t, alerts[3].HighWind)
	assert.True(t, alerts[3].LowVisibility)
}

func TestScanAlerts_ZeroVisibilityMeansNoData(t *testing.T) {
	samples := []models.HourlySample{
		{Timestamp: 0, WindSpeedKmh: 10, VisibilityKm: 0},
	}

	assert.Empty(t, ScanAlerts(samples))
}

func TestFormatAlerts(t *testing.T) {
	alerts := []Alert{
		{Timestamp: 0, Lightning: true, HighWind: true, WindSpeedKmh: 36, VisibilityKm: 10},
		{Timestamp: 46800, LowVisibility: true, WindSpeedKmh: 5, VisibilityKm: 0.8},
	}

	lines := FormatAlerts(alerts, time.UTC)
	require.Len(t, lines, 2)
	assert.Equal(t, "12:00 AM – Lightning expected | High Wind (36.0 km/h)", lines[0])
	assert.Equal(t, "01:00 PM – Low Visibility (0.8 km)", lines[1])
}

func TestAssessProduction_RainfallOnly(t *testing.T) {
	status := AssessProduction(3, nil)
	assert.Equal(t, "Low", status.Impact)
	assert.Equal(t, "Normal operations, minor impact possible", status.Message)

	status = AssessProduction(6, nil)
	assert.Equal(t, "Moderate", status.Impact)
	assert.Equal(t, "Proceed with caution, production may be impacted due to moderate rainfall.", status.Message)

	status = AssessProduction(20, nil)
	assert.Equal(t, "High", status.Impact)
	assert.Equal(t, "Production may be significantly impacted due to heavy rainfall.", status.Message)
}

func TestAssessProduction_LightningForcesHigh(t *testing.T) {
	status := AssessProduction(2, []Alert{{Lightning: true}})
	assert.Equal(t, "High", status.Impact)
	assert.Equal(t, "Blasting/open-pit operations likely impacted due to lightning.", status.Message)
}

func TestAssessProduction_LightningAppendsWhenAlreadyHigh(t *testing.T) {
	status := AssessProduction(20, []Alert{{Lightning: true}})
	assert.Equal(t, "High", status.Impact)
	assert.Equal(t,
		"Production may be significantly impacted due to heavy rainfall. Additionally, lightning expected.",
		status.Message)
}

func TestAssessProduction_WindRaisesLowToModerate(t *testing.T) {
	status := AssessProduction(0, []Alert{{HighWind: true}})
	assert.Equal(t, "Moderate", status.Impact)
	assert.Equal(t, "Caution advised due to high winds, potential dust/equipment issues.", status.Message)
}

func TestAssessProduction_WindAppendsToRainfallMessage(t *testing.T) {
	status := AssessProduction(6, []Alert{{HighWind: true}})
	assert.Equal(t, "Moderate", status.Impact)
	assert.Equal(t,
		"Proceed with caution, production may be impacted due to moderate rainfall. High winds also expected.",
		status.Message)
}

func TestAssessProduction_VisibilityRaisesLowToModerate(t *testing.T) {
	status := AssessProduction(0, []Alert{{LowVisibility: true}})
	assert.Equal(t, "Moderate", status.Impact)
	assert.Equal(t, "Caution advised due to low visibility, impacting vehicle movement.", status.Message)
}

func TestAssessProduction_AllHazardsCombined(t *testing.T) {
	alerts := []Alert{{Lightning: true}, {HighWind: true}, {LowVisibility: true}}

	status := AssessProduction(0, alerts)
	assert.Equal(t, "High", status.Impact)
	assert.Equal(t,
		"Blasting/open-pit operations likely impacted due to lightning. High winds also expected. Low visibility also expected.",
		status.Message)
}
