package models

import (
	"math"
	"time"
)

// RainWindow summarizes a contiguous run of likely-rain hours.
// StartTimestamp and EndTimestamp are the timestamps of the first and last
// member samples, not the close of the last hour.
type RainWindow struct {
	StartTimestamp int64   `json:"start_timestamp" example:"1753455600"`
	EndTimestamp   int64   `json:"end_timestamp" example:"1753466400"`
	AvgProbability float64 `json:"avg_probability" example:"0.55"`
	SampleCount    int     `json:"sample_count" example:"4"`
}

// Percent returns the average probability rounded to the nearest integer percent.
func (w RainWindow) Percent() int {
	return int(math.Round(w.AvgProbability * 100))
}

func (w RainWindow) Start(loc *time.Location) time.Time {
	return time.Unix(w.StartTimestamp, 0).In(loc)
}

func (w RainWindow) End(loc *time.Location) time.Time {
	return time.Unix(w.EndTimestamp, 0).In(loc)
}
