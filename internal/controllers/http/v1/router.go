package http

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"weather-report/internal/models"
	"weather-report/internal/services/report"
	"weather-report/pkg/logger"
)

type routes struct {
	service   *report.Service
	locations []models.Location
	l         *logger.Logger
}

func NewRouter(
	app *fiber.App,
	reportService *report.Service,
	locations []models.Location,
	l *logger.Logger,
) {
	r := &routes{
		service:   reportService,
		locations: locations,
		l:         l,
	}

	// Swagger documentation
	app.Get("/swagger/doc.json", func(c *fiber.Ctx) error {
		// Read the committed swagger.json file
		swaggerData, err := os.ReadFile("docs/swagger.json")
		if err != nil {
			return c.Status(fiber.ErrInternalServerError.Code).JSON(fiber.Map{"error": "Failed to read Swagger documentation"})
		}

		c.Set("Content-Type", "application/json")
		return c.Send(swaggerData)
	})

	app.Get("/swagger/*", swagger.New(swagger.Config{
		URL:         "/swagger/doc.json",
		DeepLinking: true,
	}))

	// API routes
	app.Get("/report", r.handleReport)
	app.Get("/report/windows", r.handleWindows)
}
