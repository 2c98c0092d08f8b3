package server

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Zachdehooge/temperature-heatmap/internal/scales"
	"github.com/Zachdehooge/temperature-heatmap/internal/service"
	"github.com/Zachdehooge/temperature-heatmap/internal/store"
)

type legendResponse struct {
	MinTemp    float64               `json:"minTemp"`
	MaxTemp    float64               `json:"maxTemp"`
	Thresholds []float64             `json:"thresholds"`
	Buckets    []legendBucketPayload `json:"buckets"`
}

type legendBucketPayload struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Color string  `json:"color"`
}

func toLegendPayload(buckets []scales.LegendBucket) []legendBucketPayload {
	out := make([]legendBucketPayload, len(buckets))
	for i, b := range buckets {
		out[i] = legendBucketPayload{Lower: b.Lower, Upper: b.Upper, Color: b.Color}
	}
	return out
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, svc *service.Service) {
	st := svc.Store()

	latest := func() (store.Render, error) {
		r, err := st.Latest()
		if errors.Is(err, store.ErrNotFound) {
			return r, fiber.NewError(fiber.StatusServiceUnavailable, "heat map not rendered yet")
		}
		return r, err
	}

	app.Get("/", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		r, err := st.Latest()
		if err == nil {
			return c.Send(r.Page)
		}
		page, ferr := svc.FramePage()
		if ferr != nil {
			return ferr
		}
		return c.Send(page)
	})

	app.Get("/heatmap.svg", func(c *fiber.Ctx) error {
		r, err := latest()
		if err != nil {
			return err
		}
		c.Set(fiber.HeaderContentType, "image/svg+xml")
		return c.Send(r.SVG)
	})

	api := app.Group("/api")

	api.Get("/dataset", func(c *fiber.Ctx) error {
		r, err := latest()
		if err != nil {
			return err
		}
		return c.JSON(r.Dataset)
	})

	api.Get("/legend", func(c *fiber.Ctx) error {
		r, err := latest()
		if err != nil {
			return err
		}
		s := r.Chart.Scales
		return c.JSON(legendResponse{
			MinTemp:    s.MinTemp,
			MaxTemp:    s.MaxTemp,
			Thresholds: s.Legend.Bounds(),
			Buckets:    toLegendPayload(s.LegendBuckets()),
		})
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		status := st.Status()
		body := fiber.Map{
			"status":              "ok",
			"service":             "temperature-heatmap",
			"consecutiveFailures": status.ConsecutiveFailures,
		}
		if !status.LastSuccess.IsZero() {
			body["lastSuccess"] = status.LastSuccess.Format(time.RFC3339)
		}
		if status.LastError != "" {
			body["lastError"] = status.LastError
		}
		if _, err := st.Latest(); err != nil {
			body["status"] = "degraded"
		}
		return c.JSON(body)
	})
}
