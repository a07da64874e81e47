// file: internals/features/academics/exams/route/exam_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gurukul_backend/internals/features/academics/exams/controller"
)

func ExamRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewExamController(db)

	exam := api.Group("/exam")
	exam.Get("/health", ctrl.Health)
	exam.Post("/daily-test", ctrl.CreateDailyTest)
	exam.Post("/mock-test", ctrl.CreateMockTest)
	exam.Get("/template/daily-test/:batch_id", ctrl.DailyTemplate)
	exam.Get("/template/mock-test/:batch_id", ctrl.MockTemplate)
	exam.Get("/daily-test/student/:student_id", ctrl.DailyByStudent)
	exam.Get("/mock-test/student/:student_id", ctrl.MockByStudent)
	exam.Get("/batch-report/:batch_id", ctrl.BatchReport)
}
