package models

import "fmt"

// Location is one monitored site.
type Location struct {
	Name           string  `json:"name" yaml:"name" example:"Talabira"`
	Lat            float64 `json:"lat" yaml:"lat" example:"21.7679"`
	Lon            float64 `json:"lon" yaml:"lon" example:"83.9732"`
	AccuWeatherKey string  `json:"-" yaml:"accuweather_location_key,omitempty"`
}

func (l Location) RequestParams() string {
	return fmt.Sprintf("name: %s lat: %.4f lon: %.4f", l.Name, l.Lat, l.Lon)
}

// LocationReport is the per-location result of one report run. A failed
// location carries Error and empty data; other locations are unaffected.
type LocationReport struct {
	Location   Location          `json:"location"`
	Summaries  []DailySummary    `json:"summaries,omitempty"`
	Windows    []RainWindow      `json:"rain_windows,omitempty"`
	RainLines  []string          `json:"rain_lines,omitempty"`
	AlertLines []string          `json:"alert_lines,omitempty"`
	Category   string            `json:"rain_category,omitempty" example:"Moderate Rain"`
	Production *ProductionStatus `json:"production_status,omitempty"`
	Error      string            `json:"error,omitempty"`
}

func (r LocationReport) Failed() bool {
	return r.Error != ""
}
