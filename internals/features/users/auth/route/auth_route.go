// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gurukul_backend/internals/configs"
	"gurukul_backend/internals/constants"
	"gurukul_backend/internals/features/users/auth/controller"
	"gurukul_backend/internals/middlewares"
	authmw "gurukul_backend/internals/middlewares/auth"
)

// AuthRoutes mounts /auth under the given router. Login and register sit
// behind their own rate limiters; looking up another user is admin-only.
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	auth := api.Group("/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/refresh", ctrl.Refresh)

	protected := auth.Group("", authmw.AuthJWT(authmw.AuthJWTOpts{Secret: configs.JWTSecret}))
	protected.Get("/me", ctrl.Me)
	protected.Get("/user/:user_id", authmw.RequireRole(constants.RoleAdmin), ctrl.GetUser)
}
