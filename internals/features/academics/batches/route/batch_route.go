// file: internals/features/academics/batches/route/batch_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gurukul_backend/internals/features/academics/batches/controller"
)

func BatchRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewBatchController(db)

	batch := api.Group("/batch")
	batch.Post("/", ctrl.Create)
	batch.Get("/", ctrl.List)
	batch.Get("/:batch_id", ctrl.Get)
	batch.Put("/:batch_id", ctrl.Update)
	batch.Delete("/:batch_id", ctrl.Delete)
}
