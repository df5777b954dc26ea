package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weather-report/config"
	v1 "weather-report/internal/controllers/http/v1"
	"weather-report/internal/repositories"
	"weather-report/internal/services/report"
	"weather-report/pkg/httpserver"
	"weather-report/pkg/logger"
	"weather-report/pkg/observe"
)

// @title Weather Report API
// @version 1.0.0
// @description Multi-provider weather forecast reports with rain window aggregation.

// @host localhost:8080
// @BasePath /
// @schemes http https

// @tag.name Report
// @tag.description Forecast report operations
func main() {
	ctx, cancel := context.WithCancel(context.Background())

	cnf := config.NewConfig()

	writers := []io.Writer{os.Stdout}
	var hook *observe.SentryHook
	if cnf.SentryDSN != "" {
		hook = observe.NewSentryHook(cnf.AppEnv, cnf.AppName, 0, !cnf.IsProduction(), cnf.SentryDSN)
		writers = append(writers, hook)
	}

	l := logger.NewZapLogger(cnf.AppName, cnf.AppEnv, writers...)
	if hook != nil {
		hook.SetLogger(l)
	}

	app := httpserver.InitFiberServer(cnf.AppName)

	hourly, daily := repositories.InitProviders(cnf, l)

	service := report.NewService(hourly, daily, report.WindowOptions{
		Threshold:  cnf.Report.RainProbabilityThreshold,
		MaxGap:     cnf.Report.MaxGapSeconds,
		MaxSamples: cnf.Report.MaxWindowSamples,
	}, l)

	v1.NewRouter(
		app,
		service,
		cnf.Locations,
		l,
	)

	go func() {
		if err := app.Listen(":" + cnf.Port); err != nil {
			l.Fatal("cannot run the server", map[string]any{"err": err})
		}
	}()

	l.Info("application started successfully", map[string]any{"port": cnf.Port})

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer func() {
		l.Warning("stopping application services")
		signal.Stop(sigCh)
		close(sigCh)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		_ = app.ShutdownWithContext(shutdownCtx)
		if hook != nil {
			hook.Flush()
		}
		_ = l.Stop()
		cancel()
	}()

	select {
	case <-sigCh:
		fmt.Println("received shutdown signal")
	case <-ctx.Done():
		fmt.Println("context cancelled")
	}
}
