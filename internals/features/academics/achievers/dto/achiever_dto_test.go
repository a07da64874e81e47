// file: internals/features/academics/achievers/dto/achiever_dto_test.go
package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func int16Ptr(n int16) *int16 { return &n }

func TestToAchieverListItemDefaults(t *testing.T) {
	item := ToAchieverListItem(AchieverJoined{
		AchievementID: 3,
		StudentID:     "STU001",
		StudentName:   "Asha",
	})

	assert.Equal(t, 3, item["id"])
	assert.Equal(t, "STU001", item["admissionNo"])
	assert.Equal(t, "N/A", item["gender"])
	assert.Equal(t, "", item["dob"])
	assert.Equal(t, "-", item["academicYear"])
	assert.Equal(t, "", item["photo"])
	assert.Equal(t, float64(0), item["score"])
}

func TestToAchieverListItemPhotoFallback(t *testing.T) {
	base := AchieverJoined{StudentPhoto: strPtr("student.jpg")}
	assert.Equal(t, "student.jpg", ToAchieverListItem(base)["photo"])

	base.AchievementPhoto = strPtr("trophy.jpg")
	assert.Equal(t, "trophy.jpg", ToAchieverListItem(base)["photo"])
}

func TestToAchieverListItemAcademicYear(t *testing.T) {
	item := ToAchieverListItem(AchieverJoined{
		StartYear: int16Ptr(2024),
		EndYear:   int16Ptr(2026),
	})
	assert.Equal(t, "2024-2026", item["academicYear"])
}

func TestToAchieverListItemDates(t *testing.T) {
	achieved := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	item := ToAchieverListItem(AchieverJoined{AchievedDate: &achieved})
	assert.Equal(t, "2025-06-01", item["achievedDate"])
}

func TestParseAchievedDate(t *testing.T) {
	assert.Nil(t, ParseAchievedDate(nil))
	assert.Nil(t, ParseAchievedDate(strPtr("not a date")))

	d := ParseAchievedDate(strPtr(" 2025-06-01 "))
	if assert.NotNil(t, d) {
		assert.Equal(t, "2025-06-01", time.Time(*d).Format("2006-01-02"))
	}
}
