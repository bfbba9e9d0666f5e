package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/spf13/cobra"

	httpapi "github.com/i474232898/weather-dashboard/internal/api/http"
	"github.com/i474232898/weather-dashboard/internal/logger"
	"github.com/i474232898/weather-dashboard/internal/scheduler"
	"github.com/i474232898/weather-dashboard/internal/session"
	"github.com/i474232898/weather-dashboard/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the dashboard JSON API",
	RunE: func(cmd *cobra.Command, args []string) error {
		service := newWeatherService(cfg)

		// Preferences (recent searches, theme) with configured retention.
		prefs := store.NewMemoryStore(cfg.RecentSearchesMaxAge)

		sched := scheduler.New(prefs, cfg.PruneInterval)
		if err := sched.Start(); err != nil {
			return err
		}
		defer sched.Stop()

		app := fiber.New(fiber.Config{
			AppName:               "weather-dashboard",
			DisableStartupMessage: true,
			ReadTimeout:           10 * time.Second,
			WriteTimeout:          3 * cfg.HTTPTimeout,
			ErrorHandler:          httpapi.ErrorHandler,
		})

		// Global middleware
		app.Use(requestid.New())
		app.Use(fiberlogger.New(fiberlogger.Config{Output: logger.Log.Writer()}))
		app.Use(recover.New())

		app.Get("/health", func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{
				"status":  "ok",
				"service": "weather-dashboard",
			})
		})

		httpapi.RegisterRoutes(app, httpapi.Deps{
			Service: service,
			Tracker: session.NewTracker(),
			Recent:  store.NewRecentSearches(prefs, cfg.RecentSearchesMax),
			Prefs:   prefs,
		})

		go func() {
			logger.Log.WithField("port", cfg.Port).Info("listening")
			if err := app.Listen(":" + cfg.Port); err != nil {
				logger.Log.WithError(err).Error("fiber server stopped")
			}
		}()

		// Wait for termination signal
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			logger.Log.WithError(err).Error("error during shutdown")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
