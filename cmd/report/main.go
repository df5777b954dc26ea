package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"weather-report/config"
	"weather-report/internal/models"
	"weather-report/internal/repositories"
	"weather-report/internal/services/report"
	"weather-report/pkg/logger"
)

// One-shot console reporter: fetch forecasts for every configured location,
// print the report to stdout, exit. Logs go to stderr so the report itself
// stays clean.
func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cnf := config.NewConfig()

	l := logger.NewZapLogger(cnf.AppName, cnf.AppEnv, os.Stderr)
	defer func() { _ = l.Stop() }()

	if len(cnf.Locations) == 0 {
		l.Fatal("no locations configured")
	}

	hourly, daily := repositories.InitProviders(cnf, l)

	service := report.NewService(hourly, daily, report.WindowOptions{
		Threshold:  cnf.Report.RainProbabilityThreshold,
		MaxGap:     cnf.Report.MaxGapSeconds,
		MaxSamples: cnf.Report.MaxWindowSamples,
	}, l)

	reports := service.BuildReports(ctx, cnf.Locations)
	printReports(reports, cnf.Report.DailyRainFlagThreshold)
}

func printReports(reports []models.LocationReport, rainFlagThreshold float64) {
	separator := strings.Repeat("-", 60)

	for _, rep := range reports {
		fmt.Printf("Forecast for %s (Lat: %.4f, Lon: %.4f)\n",
			rep.Location.Name, rep.Location.Lat, rep.Location.Lon)

		if rep.Failed() {
			fmt.Printf("  unavailable: %s\n%s\n", rep.Error, separator)
			continue
		}

		for _, s := range rep.Summaries {
			fmt.Printf("\n  %s\n", s.Date.In(report.ReportZone).Format("02 January, 2006"))
			fmt.Printf("  - Weather: %s\n", s.Description)
			fmt.Printf("  - Max Temp: %.1f°C\n", s.TempMax)
			fmt.Printf("  - Min Temp: %.1f°C\n", s.TempMin)
			fmt.Printf("  - Total Expected Rainfall: %.1f mm\n", s.TotalRainMM)
			fmt.Printf("  - Rain expected: %s\n", yesNo(s.RainExpected(rainFlagThreshold)))
		}

		if rep.Category != "" {
			fmt.Printf("\n  Outlook: %s\n", rep.Category)
		}

		if len(rep.RainLines) > 0 {
			fmt.Println("\n  Rain likely during:")
			for _, line := range rep.RainLines {
				fmt.Printf("  - %s\n", line)
			}
		} else {
			fmt.Println("\n  No rain windows expected.")
		}

		if len(rep.AlertLines) > 0 {
			fmt.Println("\n  Alerts:")
			for _, line := range rep.AlertLines {
				fmt.Printf("  - %s\n", line)
			}
		}

		if rep.Production != nil {
			fmt.Printf("\n  Rain Impact: %s\n", rep.Production.Impact)
			fmt.Printf("  Production Status: %s\n", rep.Production.Message)
		}

		fmt.Println(separator)
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
