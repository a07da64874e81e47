// file: internals/features/academics/feedback/model/feedback_model.go
package model

import (
	"time"

	"gorm.io/datatypes"
)

type FeedbackModel struct {
	FeedbackID                int             `gorm:"column:feedback_id;primaryKey;autoIncrement" json:"feedback_id"`
	StudentID                 string          `gorm:"column:student_id;type:varchar(50);index" json:"student_id"`
	FeedbackDate              *datatypes.Date `gorm:"column:feedback_date;type:date;not null;default:CURRENT_DATE" json:"-"`
	TeacherFeedback           *string         `gorm:"column:teacher_feedback;type:text" json:"teacher_feedback,omitempty"`
	Suggestions               *string         `gorm:"column:suggestions;type:text" json:"suggestions,omitempty"`
	AcademicDirectorSignature *string         `gorm:"column:academic_director_signature;type:varchar(255)" json:"academic_director_signature,omitempty"`
	StudentSignature          *string         `gorm:"column:student_signature;type:varchar(255)" json:"student_signature,omitempty"`
	ParentSignature           *string         `gorm:"column:parent_signature;type:varchar(255)" json:"parent_signature,omitempty"`
	CreatedAt                 time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (FeedbackModel) TableName() string { return "feedback" }
