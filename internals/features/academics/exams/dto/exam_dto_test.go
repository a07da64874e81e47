// file: internals/features/academics/exams/dto/exam_dto_test.go
package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"

	"gurukul_backend/internals/features/academics/exams/model"
)

func TestSplitUnitNames(t *testing.T) {
	assert.Equal(t, []string{"Algebra", "Trigonometry"}, SplitUnitNames("Algebra, Trigonometry"))
	assert.Equal(t, []string{"Optics"}, SplitUnitNames("  Optics  "))
	assert.Equal(t, []string{"A", "B"}, SplitUnitNames("A,,B,"))
	assert.Empty(t, SplitUnitNames(""))
	assert.Empty(t, SplitUnitNames(" , ,"))
}

func TestFormatDate(t *testing.T) {
	assert.Nil(t, FormatDate(nil))

	d := datatypes.Date(time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC))
	got := FormatDate(&d)
	if assert.NotNil(t, got) {
		assert.Equal(t, "2025-03-14", *got)
	}
}

func TestToDailyTestResponse(t *testing.T) {
	d := datatypes.Date(time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC))
	subject := "Physics"
	unit := "Optics"
	resp := ToDailyTestResponse(model.DailyTestModel{
		TestID:     7,
		StudentID:  "STU001",
		TestDate:   &d,
		Subject:    &subject,
		UnitName:   &unit,
		TotalMarks: "A",
	})

	assert.Equal(t, 7, resp.TestID)
	assert.Equal(t, "A", resp.TotalMarks)
	if assert.NotNil(t, resp.TestDate) {
		assert.Equal(t, "2025-01-02", *resp.TestDate)
	}
}
