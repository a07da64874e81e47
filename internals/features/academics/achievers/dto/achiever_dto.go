// file: internals/features/academics/achievers/dto/achiever_dto.go
package dto

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"
)

type AchieverCreateRequest struct {
	StudentID          string   `json:"student_id" validate:"required,max=50"`
	BatchID            *int     `json:"batch_id"`
	Achievement        string   `json:"achievement" validate:"required,max=255"`
	AchievementDetails *string  `json:"achievement_details"`
	Rank               *string  `json:"rank"`
	Score              *float64 `json:"score"`
	PhotoURL           *string  `json:"photo_url"`
	AchievedDate       *string  `json:"achieved_date"`
}

func (r *AchieverCreateRequest) Normalize() {
	r.StudentID = strings.TrimSpace(r.StudentID)
	r.Achievement = strings.TrimSpace(r.Achievement)
}

type AchieverUpdateRequest struct {
	Achievement        *string  `json:"achievement" validate:"omitempty,max=255"`
	AchievementDetails *string  `json:"achievement_details"`
	Rank               *string  `json:"rank"`
	Score              *float64 `json:"score"`
	PhotoURL           *string  `json:"photo_url"`
	AchievedDate       *string  `json:"achieved_date"`
}

// AchieverJoined is the achievers row joined with student and batch,
// scanned straight from the list/get queries.
type AchieverJoined struct {
	AchievementID      int
	StudentID          string
	StudentName        string
	Gender             *string
	DOB                *time.Time
	Community          *string
	EnrollmentYear     *int16
	Course             *string
	Branch             *string
	StudentMobile      *string
	AadharNo           *string
	Email              *string
	Grade              *string
	StudentPhoto       *string
	BatchID            *int
	BatchName          *string
	StartYear          *int16
	EndYear            *int16
	Achievement        *string
	AchievementDetails *string
	Rank               *string
	Score              *float64
	AchievementPhoto   *string
	AchievedDate       *time.Time
}

// ToAchieverListItem shapes one joined row the way the frontend consumes
// it: camelCase keys, empty strings for missing values, the achievement
// photo falling back to the student photo.
func ToAchieverListItem(r AchieverJoined) map[string]interface{} {
	return map[string]interface{}{
		"id":                 r.AchievementID,
		"admissionNo":        r.StudentID,
		"name":               r.StudentName,
		"gender":             strOrDefault(r.Gender, "N/A"),
		"dob":                dateOrEmpty(r.DOB),
		"community":          strOrDefault(r.Community, ""),
		"academicYear":       academicYear(r.StartYear, r.EndYear),
		"course":             strOrDefault(r.Course, ""),
		"branch":             strOrDefault(r.Branch, ""),
		"studentMobile":      strOrDefault(r.StudentMobile, ""),
		"aadharNumber":       strOrDefault(r.AadharNo, ""),
		"emailId":            strOrDefault(r.Email, ""),
		"grade":              strOrDefault(r.Grade, ""),
		"photo":              photoOf(r),
		"batch":              strOrDefault(r.BatchName, ""),
		"batchId":            r.BatchID,
		"achievement":        strOrDefault(r.Achievement, ""),
		"achievementDetails": strOrDefault(r.AchievementDetails, ""),
		"rank":               strOrDefault(r.Rank, ""),
		"score":              scoreOrZero(r.Score),
		"achievedDate":       dateOrEmpty(r.AchievedDate),
	}
}

func ToAchieverDetail(r AchieverJoined) map[string]interface{} {
	return map[string]interface{}{
		"id":                 r.AchievementID,
		"admissionNo":        r.StudentID,
		"name":               r.StudentName,
		"gender":             strOrDefault(r.Gender, "N/A"),
		"dob":                dateOrEmpty(r.DOB),
		"community":          strOrDefault(r.Community, ""),
		"course":             strOrDefault(r.Course, ""),
		"branch":             strOrDefault(r.Branch, ""),
		"grade":              strOrDefault(r.Grade, ""),
		"batch":              strOrDefault(r.BatchName, ""),
		"achievement":        strOrDefault(r.Achievement, ""),
		"achievementDetails": strOrDefault(r.AchievementDetails, ""),
		"rank":               strOrDefault(r.Rank, ""),
		"score":              scoreOrZero(r.Score),
	}
}

func strOrDefault(s *string, def string) string {
	if s == nil || *s == "" {
		return def
	}
	return *s
}

func dateOrEmpty(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func academicYear(start, end *int16) string {
	if start == nil || end == nil {
		return "-"
	}
	return fmt.Sprintf("%d-%d", *start, *end)
}

func photoOf(r AchieverJoined) string {
	if r.AchievementPhoto != nil && *r.AchievementPhoto != "" {
		return *r.AchievementPhoto
	}
	return strOrDefault(r.StudentPhoto, "")
}

func scoreOrZero(s *float64) float64 {
	if s == nil {
		return 0
	}
	return *s
}

// ParseAchievedDate turns an optional yyyy-mm-dd string into a date
// column value, nil when absent or unparseable.
func ParseAchievedDate(s *string) *datatypes.Date {
	if s == nil {
		return nil
	}
	t, err := time.Parse("2006-01-02", strings.TrimSpace(*s))
	if err != nil {
		return nil
	}
	d := datatypes.Date(t)
	return &d
}
