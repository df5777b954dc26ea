package models

import "time"

// DailySummary is one day's aggregate weather record.
// PrecipProbability is normalized to [0, 1] regardless of the provider's wire scale.
type DailySummary struct {
	Date              time.Time `json:"date" example:"2025-07-25T00:00:00Z"`
	Description       string    `json:"description" example:"Thunderstorms"`
	TempMax           float64   `json:"temp_max" example:"38.0"`
	TempMin           float64   `json:"temp_min" example:"24.3"`
	TotalRainMM       float64   `json:"total_rain_mm" example:"12.5"`
	PrecipProbability float64   `json:"precip_probability" example:"0.76"`
}

// RainExpected reports whether the day's precipitation probability exceeds
// the given threshold. The threshold is a caller policy, not a fixed constant.
func (d DailySummary) RainExpected(threshold float64) bool {
	return d.PrecipProbability > threshold
}
