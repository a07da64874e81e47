// file: internals/databases/migrate.go
package databases

import (
	"log"

	"gorm.io/gorm"

	AchieverModel "gurukul_backend/internals/features/academics/achievers/model"
	BatchModel "gurukul_backend/internals/features/academics/batches/model"
	ExamModel "gurukul_backend/internals/features/academics/exams/model"
	FeedbackModel "gurukul_backend/internals/features/academics/feedback/model"
	StudentModel "gurukul_backend/internals/features/academics/students/model"
	UserModel "gurukul_backend/internals/features/users/auth/model"
)

// AutoMigrate creates or updates every table; FK order matters, so the
// referenced tables come first.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&UserModel.UserModel{},
		&BatchModel.BatchModel{},
		&StudentModel.StudentModel{},
		&StudentModel.ParentInfoModel{},
		&StudentModel.TenthMarkModel{},
		&StudentModel.TwelfthMarkModel{},
		&StudentModel.EntranceExamModel{},
		&StudentModel.CounsellingDetailModel{},
		&ExamModel.DailyTestModel{},
		&ExamModel.MockTestModel{},
		&FeedbackModel.FeedbackModel{},
		&AchieverModel.AchieverModel{},
	); err != nil {
		return err
	}
	log.Println("[INFO] Database migration completed")
	return nil
}
