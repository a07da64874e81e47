// file: internals/features/academics/feedback/dto/feedback_dto.go
package dto

import (
	"time"

	"gorm.io/datatypes"

	"gurukul_backend/internals/features/academics/feedback/model"
)

type FeedbackCreateRequest struct {
	StudentID                 string  `json:"student_id" validate:"required,max=50"`
	FeedbackDate              *string `json:"feedback_date"`
	TeacherFeedback           *string `json:"teacher_feedback"`
	Suggestions               *string `json:"suggestions"`
	AcademicDirectorSignature *string `json:"academic_director_signature"`
	StudentSignature          *string `json:"student_signature"`
	ParentSignature           *string `json:"parent_signature"`
}

type FeedbackResponse struct {
	FeedbackID                int     `json:"feedback_id"`
	FeedbackDate              *string `json:"feedback_date"`
	TeacherFeedback           *string `json:"teacher_feedback"`
	Suggestions               *string `json:"suggestions"`
	AcademicDirectorSignature *string `json:"academic_director_signature"`
	StudentSignature          *string `json:"student_signature"`
	ParentSignature           *string `json:"parent_signature"`
	CreatedAt                 string  `json:"created_at"`
}

func ToFeedbackResponse(fb model.FeedbackModel) FeedbackResponse {
	return FeedbackResponse{
		FeedbackID:                fb.FeedbackID,
		FeedbackDate:              FormatDate(fb.FeedbackDate),
		TeacherFeedback:           fb.TeacherFeedback,
		Suggestions:               fb.Suggestions,
		AcademicDirectorSignature: fb.AcademicDirectorSignature,
		StudentSignature:          fb.StudentSignature,
		ParentSignature:           fb.ParentSignature,
		CreatedAt:                 fb.CreatedAt.Format(time.RFC3339),
	}
}

// FormatDate renders a stored date column as yyyy-mm-dd.
func FormatDate(d *datatypes.Date) *string {
	if d == nil {
		return nil
	}
	s := time.Time(*d).Format("2006-01-02")
	return &s
}
