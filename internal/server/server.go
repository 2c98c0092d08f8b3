package server

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/Zachdehooge/temperature-heatmap/internal/service"
)

// NewApp builds the fiber app serving the heat map.
func NewApp(svc *service.Service) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "temperature-heatmap",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	app.Use(requestLogger())
	app.Use(recover.New())

	RegisterRoutes(app, svc)
	return app
}
