// file: internals/features/academics/achievers/route/achiever_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gurukul_backend/internals/features/academics/achievers/controller"
)

func AchieverRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAchieverController(db)

	achiever := api.Group("/achiever")
	achiever.Get("/", ctrl.List)
	achiever.Post("/", ctrl.Create)
	achiever.Get("/:achievement_id", ctrl.Get)
	achiever.Put("/:achievement_id", ctrl.Update)
	achiever.Delete("/:achievement_id", ctrl.Delete)
}
