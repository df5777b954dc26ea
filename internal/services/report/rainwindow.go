package report

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/pkg/errors"

	"weather-report/internal/models"
)

const (
	// DefaultThreshold is the minimum precipitation probability for an hour
	// to count as rainy.
	DefaultThreshold = 0.4
	// DefaultMaxGapSeconds is the largest distance between two samples kept
	// in the same window (two hours).
	DefaultMaxGapSeconds = 7200
	// DefaultMaxSamples caps the number of hours merged into one window.
	DefaultMaxSamples = 4

	clockLayout = "03:04 PM"
)

// ErrInvalidSample signals a caller contract violation: samples out of order
// or a probability outside [0, 1].
var ErrInvalidSample = errors.New("invalid hourly sample")

// ReportZone is the fixed display zone for all rendered times.
var ReportZone = time.FixedZone("IST", 5*3600+1800)

// WindowOptions are the three knobs of the window grouping scan.
type WindowOptions struct {
	Threshold  float64
	MaxGap     int64
	MaxSamples int
}

func DefaultWindowOptions() WindowOptions {
	return WindowOptions{
		Threshold:  DefaultThreshold,
		MaxGap:     DefaultMaxGapSeconds,
		MaxSamples: DefaultMaxSamples,
	}
}

// GroupWindows merges qualifying hourly samples into contiguous rain windows.
// Samples below the threshold are skipped entirely; they do not count toward
// the gap between retained samples. A window closes when the next qualifying
// sample is more than MaxGap seconds after the last retained one, or when the
// window already holds MaxSamples samples. Input must be sorted by timestamp
// ascending; it is validated, not re-sorted.
func GroupWindows(samples []models.HourlySample, opts WindowOptions) ([]models.RainWindow, error) {
	var (
		windows []models.RainWindow
		open    bool
		start   int64
		last    int64
		sum     float64
		count   int
	)

	flush := func() {
		windows = append(windows, models.RainWindow{
			StartTimestamp: start,
			EndTimestamp:   last,
			AvgProbability: sum / float64(count),
			SampleCount:    count,
		})
		open = false
	}

	prev := int64(math.MinInt64)
	for _, s := range samples {
		if math.IsNaN(s.PrecipProbability) || s.PrecipProbability < 0 || s.PrecipProbability > 1 {
			return nil, errors.Wrapf(ErrInvalidSample, "probability %v at %d", s.PrecipProbability, s.Timestamp)
		}
		if s.Timestamp < prev {
			return nil, errors.Wrapf(ErrInvalidSample, "timestamp %d out of order", s.Timestamp)
		}
		prev = s.Timestamp

		if s.PrecipProbability < opts.Threshold {
			continue
		}

		if open && (s.Timestamp-last > opts.MaxGap || count == opts.MaxSamples) {
			flush()
		}
		if !open {
			open = true
			start = s.Timestamp
			sum = 0
			count = 0
		}
		last = s.Timestamp
		sum += s.PrecipProbability
		count++
	}
	if open {
		flush()
	}

	// The scan already yields ascending starts; the sort is a safety net and
	// must be a no-op on correct input.
	sort.SliceStable(windows, func(i, j int) bool {
		return windows[i].StartTimestamp < windows[j].StartTimestamp
	})

	return windows, nil
}

// FormatWindows renders one display line per window, e.g.
// "02:30 PM to 05:30 PM – 55%". Times are clock times in loc.
func FormatWindows(windows []models.RainWindow, loc *time.Location) []string {
	lines := make([]string, 0, len(windows))
	for _, w := range windows {
		lines = append(lines, fmt.Sprintf("%s to %s – %d%%",
			w.Start(loc).Format(clockLayout),
			w.End(loc).Format(clockLayout),
			w.Percent()))
	}
	return lines
}
