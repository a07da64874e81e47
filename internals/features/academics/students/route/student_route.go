// file: internals/features/academics/students/route/student_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gurukul_backend/internals/features/academics/students/controller"
)

// StudentRoutes mounts /student. The static paths sit before the
// :student_id wildcard so they are not captured by it.
func StudentRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewStudentController(db)

	student := api.Group("/student")
	student.Post("/", ctrl.Create)
	student.Post("/upload", ctrl.Upload)
	student.Get("/template", ctrl.Template)
	student.Get("/batch/:batch_id", ctrl.ListByBatch)
	student.Get("/:student_id", ctrl.GetDetail)
	student.Put("/:student_id", ctrl.Update)
	student.Delete("/:student_id", ctrl.Delete)
}
