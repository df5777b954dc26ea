package report

import (
	"fmt"
	"strings"
	"time"

	"weather-report/internal/models"
)

const (
	// WindAlertThresholdKmh is the wind speed at or above which open-pit
	// operations get a high-wind warning.
	WindAlertThresholdKmh = 30.0
	// VisibilityAlertThresholdKm is the visibility at or below which vehicle
	// movement gets a low-visibility warning.
	VisibilityAlertThresholdKm = 1.0
)

// Alert marks one forecast hour with at least one operational hazard.
type Alert struct {
	Timestamp     int64
	Lightning     bool
	HighWind      bool
	LowVisibility bool
	WindSpeedKmh  float64
	VisibilityKm  float64
}

// ScanAlerts extracts the hours with lightning, high wind, or low visibility.
// A zero visibility means no provider reported the metric and is not treated
// as an alert.
func ScanAlerts(samples []models.HourlySample) []Alert {
	var alerts []Alert
	for _, s := range samples {
		a := Alert{
			Timestamp:     s.Timestamp,
			Lightning:     s.Lightning,
			HighWind:      s.WindSpeedKmh >= WindAlertThresholdKmh,
			LowVisibility: s.VisibilityKm > 0 && s.VisibilityKm <= VisibilityAlertThresholdKm,
			WindSpeedKmh:  s.WindSpeedKmh,
			VisibilityKm:  s.VisibilityKm,
		}
		if a.Lightning || a.HighWind || a.LowVisibility {
			alerts = append(alerts, a)
		}
	}
	return alerts
}

// FormatAlerts renders one display line per alerted hour, e.g.
// "03:00 PM – Lightning expected | High Wind (36.0 km/h)".
func FormatAlerts(alerts []Alert, loc *time.Location) []string {
	lines := make([]string, 0, len(alerts))
	for _, a := range alerts {
		var parts []string
		if a.Lightning {
			parts = append(parts, "Lightning expected")
		}
		if a.HighWind {
			parts = append(parts, fmt.Sprintf("High Wind (%.1f km/h)", a.WindSpeedKmh))
		}
		if a.LowVisibility {
			parts = append(parts, fmt.Sprintf("Low Visibility (%.1f km)", a.VisibilityKm))
		}
		lines = append(lines, fmt.Sprintf("%s – %s",
			time.Unix(a.Timestamp, 0).In(loc).Format(clockLayout),
			strings.Join(parts, " | ")))
	}
	return lines
}

// AssessProduction derives the operational impact verdict from the day's total
// rainfall, then overlays lightning, wind and visibility hazards. Lightning
// always forces a High impact; wind and visibility raise Low to Moderate.
func AssessProduction(totalRainMM float64, alerts []Alert) models.ProductionStatus {
	impact := "Low"
	msg := "Normal operations, minor impact possible"

	if totalRainMM >= 15 {
		impact = "High"
		msg = "Production may be significantly impacted due to heavy rainfall."
	} else if totalRainMM >= 5 {
		impact = "Moderate"
		msg = "Proceed with caution, production may be impacted due to moderate rainfall."
	}

	var lightning, highWind, lowVisibility bool
	for _, a := range alerts {
		lightning = lightning || a.Lightning
		highWind = highWind || a.HighWind
		lowVisibility = lowVisibility || a.LowVisibility
	}

	if lightning {
		if impact != "High" {
			impact = "High"
			msg = "Blasting/open-pit operations likely impacted due to lightning."
		} else {
			msg += " Additionally, lightning expected."
		}
	}

	if highWind {
		if impact == "Low" {
			impact = "Moderate"
			msg = "Caution advised due to high winds, potential dust/equipment issues."
		} else if !strings.Contains(strings.ToLower(msg), "wind") {
			msg += " High winds also expected."
		}
	}

	if lowVisibility {
		if impact == "Low" {
			impact = "Moderate"
			msg = "Caution advised due to low visibility, impacting vehicle movement."
		} else if !strings.Contains(strings.ToLower(msg), "visibility") {
			msg += " Low visibility also expected."
		}
	}

	return models.ProductionStatus{Impact: impact, Message: msg}
}
