package report

import (
	"time"

	"github.com/pkg/errors"

	"weather-report/internal/models"
)

// ErrNoSamples is returned when a daily summary is requested for a day with
// no hourly data.
var ErrNoSamples = errors.New("no samples for day")

// RainCategory maps a daily rainfall total to the report's text category.
func RainCategory(mm float64) string {
	switch {
	case mm >= 25:
		return "Very Heavy Rain & Storm"
	case mm >= 15:
		return "Heavy Rain"
	case mm >= 5:
		return "Moderate Rain"
	case mm >= 1:
		return "Light Rain"
	case mm > 0:
		return "Drizzle"
	default:
		return "No Rain"
	}
}

// SummarizeDay projects a day's hourly samples into a daily summary:
// max/min temperature over the day, summed rainfall, the day's maximum hourly
// precipitation probability, and the most frequent hourly description.
func SummarizeDay(date time.Time, samples []models.HourlySample) (models.DailySummary, error) {
	if len(samples) == 0 {
		return models.DailySummary{}, ErrNoSamples
	}

	summary := models.DailySummary{
		Date:    date,
		TempMax: samples[0].Temperature,
		TempMin: samples[0].Temperature,
	}

	counts := make(map[string]int)
	for _, s := range samples {
		if s.Temperature > summary.TempMax {
			summary.TempMax = s.Temperature
		}
		if s.Temperature < summary.TempMin {
			summary.TempMin = s.Temperature
		}
		summary.TotalRainMM += s.RainMM
		if s.PrecipProbability > summary.PrecipProbability {
			summary.PrecipProbability = s.PrecipProbability
		}
		if s.Description != "" {
			counts[s.Description]++
		}
	}

	best := 0
	for _, s := range samples {
		if n := counts[s.Description]; s.Description != "" && n > best {
			best = n
			summary.Description = s.Description
		}
	}
	if summary.Description == "" {
		summary.Description = RainCategory(summary.TotalRainMM)
	}

	return summary, nil
}
