package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"weather-report/internal/models"
)

func errFromReport(rep models.LocationReport) error {
	return errors.New(rep.Error)
}

// ReportResponse is the full multi-location forecast report
type ReportResponse struct {
	Locations []models.LocationReport `json:"locations"`
}

// WindowsResponse holds the rain windows for one ad-hoc coordinate
type WindowsResponse struct {
	Latitude  float64             `json:"latitude" example:"21.7679"`
	Longitude float64             `json:"longitude" example:"83.9732"`
	Windows   []models.RainWindow `json:"rain_windows"`
	RainLines []string            `json:"rain_lines"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"Missing required parameter: lat"`
}

// handleReport builds the forecast report for every configured location.
// Per-location failures are carried inside the report, not as an HTTP error;
// the call fails only when every location failed.
func (r *routes) handleReport(c *fiber.Ctx) error {
	reports := r.service.BuildReports(c.Context(), r.locations)

	failed := 0
	for _, rep := range reports {
		if rep.Failed() {
			failed++
		}
	}
	if len(reports) > 0 && failed == len(reports) {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Failed to fetch weather data for all locations",
		})
	}

	return c.JSON(ReportResponse{Locations: reports})
}

// handleWindows computes rain windows for an ad-hoc coordinate.
func (r *routes) handleWindows(c *fiber.Ctx) error {
	lat := c.Query("lat")
	lon := c.Query("lon")

	// Check for required parameters
	if lat == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Missing required parameter: lat",
		})
	}

	if lon == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Missing required parameter: lon",
		})
	}

	latFloat, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Invalid latitude format",
		})
	}

	if latFloat < -90 || latFloat > 90 {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Latitude must be between -90 and 90",
		})
	}

	lonFloat, err := strconv.ParseFloat(lon, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Invalid longitude format",
		})
	}

	if lonFloat < -180 || lonFloat > 180 {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Longitude must be between -180 and 180",
		})
	}

	reports := r.service.BuildReports(c.Context(), []models.Location{
		{Name: "ad-hoc", Lat: latFloat, Lon: lonFloat},
	})

	rep := reports[0]
	if rep.Failed() {
		r.l.Error(errFromReport(rep), map[string]any{
			"lat": latFloat,
			"lon": lonFloat,
		})

		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Failed to fetch weather data",
		})
	}

	return c.JSON(WindowsResponse{
		Latitude:  latFloat,
		Longitude: lonFloat,
		Windows:   rep.Windows,
		RainLines: rep.RainLines,
	})
}
