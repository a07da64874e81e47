// file: internals/features/academics/exams/dto/exam_dto.go
package dto

import (
	"strings"
	"time"

	"gorm.io/datatypes"

	"gurukul_backend/internals/features/academics/exams/model"
)

// DailyStudentMark carries one raw mark cell. The value is kept as a
// string so sentinels ("A", "-", "") and negatives survive verbatim.
type DailyStudentMark struct {
	StudentID string `json:"student_id" validate:"required,max=50"`
	Marks     string `json:"marks"`
}

type DailyTestCreateRequest struct {
	BatchID      int                `json:"batch_id" validate:"required"`
	ExamName     string             `json:"exam_name" validate:"required,max=100"`
	ExamDate     string             `json:"exam_date" validate:"required"`
	Subject      string             `json:"subject" validate:"required,max=100"`
	UnitName     string             `json:"unit_name" validate:"required,max=100"`
	TotalMarks   int                `json:"total_marks" validate:"required"`
	ExamType     string             `json:"exam_type"`
	StudentMarks []DailyStudentMark `json:"student_marks" validate:"required,dive"`
}

type MockStudentMark struct {
	StudentID      string `json:"student_id" validate:"required,max=50"`
	MathsMarks     string `json:"maths_marks"`
	PhysicsMarks   string `json:"physics_marks"`
	ChemistryMarks string `json:"chemistry_marks"`
	BiologyMarks   string `json:"biology_marks"`
}

type MockTestCreateRequest struct {
	BatchID            int               `json:"batch_id" validate:"required"`
	ExamName           string            `json:"exam_name" validate:"required,max=100"`
	ExamDate           string            `json:"exam_date" validate:"required"`
	ExamType           string            `json:"exam_type"`
	MathsUnitNames     string            `json:"maths_unit_names"`
	PhysicsUnitNames   string            `json:"physics_unit_names"`
	ChemistryUnitNames string            `json:"chemistry_unit_names"`
	BiologyUnitNames   string            `json:"biology_unit_names"`
	StudentMarks       []MockStudentMark `json:"student_marks" validate:"required,dive"`
}

// SplitUnitNames turns a comma-separated unit list into trimmed entries,
// dropping blanks.
func SplitUnitNames(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if u := strings.TrimSpace(p); u != "" {
			out = append(out, u)
		}
	}
	return out
}

// FailedStudent is one skipped entry in an insertion summary.
type FailedStudent struct {
	StudentID string `json:"student_id"`
	Reason    string `json:"reason"`
}

type DailyTestResponse struct {
	TestID     int     `json:"test_id"`
	Grade      *int    `json:"grade"`
	Branch     *string `json:"branch"`
	TestDate   *string `json:"test_date"`
	Subject    *string `json:"subject"`
	UnitName   *string `json:"unit_name"`
	TotalMarks string  `json:"total_marks"`
	CreatedAt  string  `json:"created_at"`
}

func ToDailyTestResponse(t model.DailyTestModel) DailyTestResponse {
	return DailyTestResponse{
		TestID:     t.TestID,
		Grade:      t.Grade,
		Branch:     t.Branch,
		TestDate:   FormatDate(t.TestDate),
		Subject:    t.Subject,
		UnitName:   t.UnitName,
		TotalMarks: t.TotalMarks,
		CreatedAt:  t.CreatedAt.Format(time.RFC3339),
	}
}

type MockTestResponse struct {
	TestID             int      `json:"test_id"`
	Grade              *int     `json:"grade"`
	Branch             *string  `json:"branch"`
	TestDate           *string  `json:"test_date"`
	MathsMarks         string   `json:"maths_marks"`
	PhysicsMarks       string   `json:"physics_marks"`
	ChemistryMarks     string   `json:"chemistry_marks"`
	BiologyMarks       string   `json:"biology_marks"`
	MathsUnitNames     []string `json:"maths_unit_names"`
	PhysicsUnitNames   []string `json:"physics_unit_names"`
	ChemistryUnitNames []string `json:"chemistry_unit_names"`
	BiologyUnitNames   []string `json:"biology_unit_names"`
	TotalMarks         string   `json:"total_marks"`
	CreatedAt          string   `json:"created_at"`
}

func ToMockTestResponse(t model.MockTestModel) MockTestResponse {
	return MockTestResponse{
		TestID:             t.TestID,
		Grade:              t.Grade,
		Branch:             t.Branch,
		TestDate:           FormatDate(t.TestDate),
		MathsMarks:         t.MathsMarks,
		PhysicsMarks:       t.PhysicsMarks,
		ChemistryMarks:     t.ChemistryMarks,
		BiologyMarks:       t.BiologyMarks,
		MathsUnitNames:     t.MathsUnitNames,
		PhysicsUnitNames:   t.PhysicsUnitNames,
		ChemistryUnitNames: t.ChemistryUnitNames,
		BiologyUnitNames:   t.BiologyUnitNames,
		TotalMarks:         t.TotalMarks,
		CreatedAt:          t.CreatedAt.Format(time.RFC3339),
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
