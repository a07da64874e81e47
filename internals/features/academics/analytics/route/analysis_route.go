// file: internals/features/academics/analytics/route/analysis_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gurukul_backend/internals/features/academics/analytics/controller"
)

func AnalysisRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAnalysisController(db)

	analysis := api.Group("/analysis")
	analysis.Get("/health", ctrl.Health)
	analysis.Get("/filter-options", ctrl.FilterOptions)
	analysis.Get("/subjectwise", ctrl.Subjectwise)
	analysis.Get("/branchwise", ctrl.Branchwise)
	analysis.Get("/individual/students", ctrl.IndividualStudents)
	analysis.Get("/individual/:student_id", ctrl.Individual)
	analysis.Get("/batch-performance/:batch_id", ctrl.BatchPerformance)
}
