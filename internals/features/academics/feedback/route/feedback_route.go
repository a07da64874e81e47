// file: internals/features/academics/feedback/route/feedback_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gurukul_backend/internals/features/academics/feedback/controller"
)

// FeedbackRoutes lives under the analysis prefix, mirroring the frontend
// contract.
func FeedbackRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewFeedbackController(db)

	api.Post("/analysis/feedback", ctrl.Create)
	api.Get("/analysis/feedback/:student_id", ctrl.ListByStudent)
}
