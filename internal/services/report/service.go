package report

import (
	"context"
	"sort"
	"sync"
	"time"

	"weather-report/internal/models"
	"weather-report/internal/repositories"
	"weather-report/pkg/logger"
)

// Service builds per-location forecast reports. Locations are processed
// independently: one location's failure never aborts the others.
type Service struct {
	hourly []repositories.HourlyProvider
	daily  []repositories.DailyProvider
	opts   WindowOptions
	zone   *time.Location
	l      *logger.Logger
}

func NewService(
	hourly []repositories.HourlyProvider,
	daily []repositories.DailyProvider,
	opts WindowOptions,
	l *logger.Logger,
) *Service {
	return &Service{
		hourly: hourly,
		daily:  daily,
		opts:   opts,
		zone:   ReportZone,
		l:      l,
	}
}

// BuildReports fetches and aggregates forecasts for all locations in
// parallel. The result preserves the input order, one report per location.
func (s *Service) BuildReports(ctx context.Context, locations []models.Location) []models.LocationReport {
	s.l.Info("starting report build", map[string]any{
		"locations":       len(locations),
		"hourlyProviders": len(s.hourly),
		"dailyProviders":  len(s.daily),
	})

	reports := make([]models.LocationReport, len(locations))

	wg := sync.WaitGroup{}
	for i, loc := range locations {
		wg.Add(1)

		go func(i int, loc models.Location) {
			defer wg.Done()
			reports[i] = s.buildOne(ctx, loc)
		}(i, loc)
	}
	wg.Wait()

	s.l.Info("completed report build", map[string]any{
		"locations": len(reports),
	})

	return reports
}

func (s *Service) buildOne(ctx context.Context, loc models.Location) models.LocationReport {
	report := models.LocationReport{Location: loc}

	samples, summaries := s.fetch(ctx, loc)
	if len(samples) == 0 && len(summaries) == 0 {
		s.l.Warning("no forecast data for location", map[string]any{
			"params": loc.RequestParams(),
		})
		report.Error = "no forecast data available"
		return report
	}

	windows, err := GroupWindows(samples, s.opts)
	if err != nil {
		s.l.Error(err, map[string]any{"params": loc.RequestParams()})
		report.Error = err.Error()
		return report
	}

	report.Windows = windows
	report.RainLines = FormatWindows(windows, s.zone)

	alerts := ScanAlerts(samples)
	report.AlertLines = FormatAlerts(alerts, s.zone)

	if len(summaries) == 0 {
		summaries = s.summarizeByDay(samples)
	}
	report.Summaries = summaries
	if len(summaries) > 0 {
		report.Category = RainCategory(summaries[0].TotalRainMM)
		status := AssessProduction(summaries[0].TotalRainMM, alerts)
		report.Production = &status
	}

	return report
}

// fetch runs the hourly and daily provider calls for one location in
// parallel. Individual provider failures are logged and skipped.
func (s *Service) fetch(ctx context.Context, loc models.Location) ([]models.HourlySample, []models.DailySummary) {
	var (
		mu         sync.Mutex
		sampleSets [][]models.HourlySample
		summaries  []models.DailySummary
	)

	wg := sync.WaitGroup{}

	for _, provider := range s.hourly {
		wg.Add(1)

		go func(provider repositories.HourlyProvider) {
			defer wg.Done()

			samples, err := provider.FetchHourly(ctx, loc.Lat, loc.Lon)
			if err != nil {
				s.l.Warning("failed to fetch hourly forecast", map[string]any{
					"provider": provider.Name(),
					"params":   loc.RequestParams(),
					"err":      err,
				})
				return
			}

			mu.Lock()
			sampleSets = append(sampleSets, samples)
			mu.Unlock()
		}(provider)
	}

	if loc.AccuWeatherKey != "" {
		for _, provider := range s.daily {
			wg.Add(1)

			go func(provider repositories.DailyProvider) {
				defer wg.Done()

				daily, err := provider.FetchDaily(ctx, loc.AccuWeatherKey)
				if err != nil {
					s.l.Warning("failed to fetch daily forecast", map[string]any{
						"provider": provider.Name(),
						"params":   loc.RequestParams(),
						"err":      err,
					})
					return
				}

				mu.Lock()
				summaries = append(summaries, daily...)
				mu.Unlock()
			}(provider)
		}
	}

	wg.Wait()

	return consolidate(sampleSets), summaries
}

// consolidate merges hourly samples from multiple providers into one
// timestamp-ordered sequence. Metrics for the same hour are averaged so a
// rain event predicted by several sources is not counted several times.
func consolidate(sets [][]models.HourlySample) []models.HourlySample {
	type acc struct {
		temp      float64
		rain      float64
		pop       float64
		wind      float64
		vis       float64
		visN      int
		lightning bool
		n         int
		desc      string
	}

	byTS := make(map[int64]*acc)
	order := make([]int64, 0)
	for _, set := range sets {
		for _, s := range set {
			a, ok := byTS[s.Timestamp]
			if !ok {
				a = &acc{}
				byTS[s.Timestamp] = a
				order = append(order, s.Timestamp)
			}
			a.temp += s.Temperature
			a.rain += s.RainMM
			a.pop += s.PrecipProbability
			a.wind += s.WindSpeedKmh
			if s.VisibilityKm > 0 {
				a.vis += s.VisibilityKm
				a.visN++
			}
			// Any source predicting lightning marks the hour.
			a.lightning = a.lightning || s.Lightning
			a.n++
			if a.desc == "" {
				a.desc = s.Description
			}
		}
	}

	if len(order) == 0 {
		return nil
	}

	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })

	merged := make([]models.HourlySample, 0, len(order))
	for _, ts := range order {
		a := byTS[ts]
		n := float64(a.n)
		var vis float64
		if a.visN > 0 {
			vis = a.vis / float64(a.visN)
		}
		merged = append(merged, models.HourlySample{
			Timestamp:         ts,
			Temperature:       a.temp / n,
			RainMM:            a.rain / n,
			PrecipProbability: a.pop / n,
			WindSpeedKmh:      a.wind / n,
			VisibilityKm:      vis,
			Lightning:         a.lightning,
			Description:       a.desc,
		})
	}

	return merged
}

// summarizeByDay splits the hourly sequence on day boundaries in the report
// zone and summarizes each day. Used when no daily provider responded.
func (s *Service) summarizeByDay(samples []models.HourlySample) []models.DailySummary {
	var (
		out    []models.DailySummary
		curDay time.Time
		group  []models.HourlySample
	)

	flush := func() {
		if len(group) == 0 {
			return
		}
		summary, err := SummarizeDay(curDay, group)
		if err != nil {
			return
		}
		out = append(out, summary)
		group = nil
	}

	for _, smp := range samples {
		t := time.Unix(smp.Timestamp, 0).In(s.zone)
		y, m, d := t.Date()
		day := time.Date(y, m, d, 0, 0, 0, 0, s.zone)
		if !day.Equal(curDay) {
			flush()
			curDay = day
		}
		group = append(group, smp)
	}
	flush()

	return out
}
