// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gurukul_backend/internals/configs"
	achieverRoute "gurukul_backend/internals/features/academics/achievers/route"
	analysisRoute "gurukul_backend/internals/features/academics/analytics/route"
	batchRoute "gurukul_backend/internals/features/academics/batches/route"
	examRoute "gurukul_backend/internals/features/academics/exams/route"
	feedbackRoute "gurukul_backend/internals/features/academics/feedback/route"
	studentRoute "gurukul_backend/internals/features/academics/students/route"
	authRoute "gurukul_backend/internals/features/users/auth/route"
	authmw "gurukul_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	api := app.Group("/api")

	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(api, db)

	// Exam entry and student records sit behind the access-token guard,
	// analysis and the public-facing reads do not.
	secured := api.Group("", authmw.AuthJWT(authmw.AuthJWTOpts{Secret: configs.JWTSecret}))

	log.Println("[INFO] Setting up StudentRoutes...")
	studentRoute.StudentRoutes(secured, db)

	log.Println("[INFO] Setting up ExamRoutes...")
	examRoute.ExamRoutes(secured, db)

	log.Println("[INFO] Setting up BatchRoutes...")
	batchRoute.BatchRoutes(api, db)

	log.Println("[INFO] Setting up AchieverRoutes...")
	achieverRoute.AchieverRoutes(api, db)

	log.Println("[INFO] Setting up AnalysisRoutes...")
	analysisRoute.AnalysisRoutes(api, db)

	log.Println("[INFO] Setting up FeedbackRoutes...")
	feedbackRoute.FeedbackRoutes(api, db)
}
