package httpapi

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weather-dashboard/internal/logger"
	"github.com/i474232898/weather-dashboard/internal/session"
	"github.com/i474232898/weather-dashboard/internal/store"
	"github.com/i474232898/weather-dashboard/internal/weather"
)

var validate = validator.New()

const invalidCityMessage = "city query parameter is required (max 100 characters)"

// WeatherService is the single search entry point the API depends on.
type WeatherService interface {
	GetWeatherData(ctx context.Context, city string) (weather.WeatherData, error)
}

// Deps groups what the handlers need.
type Deps struct {
	Service WeatherService
	Tracker *session.Tracker
	Recent  *store.RecentSearches
	Prefs   store.KV
}

// ErrorHandler renders every error as {"error": true, "message": ...}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": err.Error(),
	})
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, d Deps) {
	v1 := app.Group("/api/v1")

	v1.Get("/weather", func(c *fiber.Ctx) error {
		q, err := parseCityQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, invalidCityMessage)
		}

		ticket := d.Tracker.Begin()
		c.Set("X-Search-ID", ticket.ID)
		log := logger.Log.WithField("search_id", ticket.ID)

		data, err := d.Service.GetWeatherData(c.UserContext(), q.City)
		if err != nil {
			d.Tracker.Fail(ticket)
			if weather.IsNotFound(err) {
				return fiber.NewError(fiber.StatusNotFound, err.Error())
			}
			log.WithError(err).Error("weather search failed")
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch weather data")
		}

		d.Recent.Add(q.City)
		if !d.Tracker.Commit(ticket, data) {
			log.Debug("newer search already committed; result not kept as current")
			c.Set("X-Search-Stale", strconv.FormatBool(true))
		}

		return c.JSON(data)
	})

	v1.Get("/weather/current", func(c *fiber.Ctx) error {
		data, ok := d.Tracker.Current()
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "no weather search has completed yet")
		}
		return c.JSON(data)
	})

	v1.Get("/searches/recent", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"searches": d.Recent.List(),
		})
	})

	v1.Delete("/searches/recent", func(c *fiber.Ctx) error {
		d.Recent.Clear()
		return c.SendStatus(fiber.StatusNoContent)
	})

	v1.Get("/preferences/theme", func(c *fiber.Ctx) error {
		return c.JSON(themeBody{Theme: string(store.GetTheme(d.Prefs))})
	})

	v1.Put("/preferences/theme", func(c *fiber.Ctx) error {
		var body themeBody
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, store.ErrInvalidTheme.Error())
		}
		if err := store.SetTheme(d.Prefs, store.Theme(body.Theme)); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return c.JSON(body)
	})
}

// cityQuery holds query parameters for a weather search.
type cityQuery struct {
	City string `validate:"required,max=100"`
}

func parseCityQuery(c *fiber.Ctx) (cityQuery, error) {
	var q cityQuery
	q.City = strings.TrimSpace(c.Query("city"))

	if err := validate.Struct(q); err != nil {
		return q, err
	}
	return q, nil
}

type themeBody struct {
	Theme string `json:"theme" validate:"required,oneof=dark light system"`
}
