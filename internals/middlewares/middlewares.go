package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"gurukul_backend/internals/middlewares/logger"
)

// SetupMiddlewares registers the base middleware stack in order.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
