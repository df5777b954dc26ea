package models

// HourlySample is one consolidated hourly forecast observation.
// Timestamp is seconds since epoch; PrecipProbability is in [0, 1].
// VisibilityKm of zero means the provider reported no visibility data.
type HourlySample struct {
	Timestamp         int64   `json:"timestamp" example:"1753455600"`
	Temperature       float64 `json:"temperature" example:"31.4"`
	RainMM            float64 `json:"rain_mm" example:"0.8"`
	PrecipProbability float64 `json:"precip_probability" example:"0.55"`
	WindSpeedKmh      float64 `json:"wind_speed_kmh" example:"18.5"`
	VisibilityKm      float64 `json:"visibility_km" example:"10.0"`
	Lightning         bool    `json:"lightning,omitempty"`
	Description       string  `json:"description,omitempty" example:"light rain"`
}
