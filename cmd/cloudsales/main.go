package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/cloudsaleshq/cloudsales/internal/pkg/config"
	"github.com/cloudsaleshq/cloudsales/internal/pkg/database"
)

func main() {
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("schema reconciliation failed")
	}

	app := NewApplication(db)

	addr := fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort)
	log.Info().Str("addr", addr).Msg("listening")
	if err := app.Listen(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

// NewApplication builds the Fiber app. The service layer is external; the
// only route here is the liveness endpoint backed by a trivial round-trip
// query.
func NewApplication(db *gorm.DB) *fiber.App {
	app := fiber.New()

	app.Use(recover.New(), logger.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		if err := database.Ping(ctx, db); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "fail",
				"error":  err.Error(),
			})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	return app
}
