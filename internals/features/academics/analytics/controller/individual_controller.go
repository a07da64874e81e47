// file: internals/features/academics/analytics/controller/individual_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gurukul_backend/internals/features/academics/analytics/engine"
	"gurukul_backend/internals/features/academics/exams/marks"
	ExamModel "gurukul_backend/internals/features/academics/exams/model"
	FeedbackModel "gurukul_backend/internals/features/academics/feedback/model"
	helper "gurukul_backend/internals/helpers"
)

// IndividualStudents lists students for the analysis picker, filtered by
// name fragment, batch, course or branch.
func (ac *AnalysisController) IndividualStudents(c *fiber.Ctx) error {
	type pickerRow struct {
		StudentID   string  `json:"student_id"`
		StudentName string  `json:"student_name"`
		Course      *string `json:"course"`
		Branch      *string `json:"branch"`
		Grade       *string `json:"grade"`
		PhotoURL    *string `json:"photo_url"`
		BatchName   string  `json:"batch_name"`
		BatchID     int     `json:"batch_id"`
	}

	q := ac.DB.Table("student s").
		Select("s.student_id, s.student_name, s.course, s.branch, s.grade, s.photo_url, b.batch_name, b.batch_id").
		Joins("JOIN batch b ON s.batch_id = b.batch_id")
	if name := c.Query("name"); name != "" {
		q = q.Where("s.student_name ILIKE ?", "%"+name+"%")
	}
	if batchID := c.QueryInt("batch_id", 0); batchID != 0 {
		q = q.Where("s.batch_id = ?", batchID)
	}
	if course := c.Query("course"); course != "" {
		q = q.Where("s.course = ?", course)
	}
	if branch := c.Query("branch"); branch != "" {
		q = q.Where("s.branch = ?", branch)
	}

	var students []pickerRow
	if err := q.Order("s.student_name").Scan(&students).Error; err != nil {
		return helper.JsonDBError(c, err, "student")
	}
	return helper.JsonSuccess(c, "OK", fiber.Map{
		"students": students,
		"count":    len(students),
	})
}

// classStat is the batch-level comparison for one test occasion.
type classStat struct {
	total subjectTally
}

// Individual returns the full per-student view: profile, every daily and
// mock test with batch average/top comparisons for the same occasion, and
// feedback history.
func (ac *AnalysisController) Individual(c *fiber.Ctx) error {
	studentID := c.Params("student_id")

	type infoRow struct {
		StudentID     string  `json:"student_id"`
		StudentName   string  `json:"student_name"`
		Course        *string `json:"course"`
		Branch        *string `json:"branch"`
		Grade         *string `json:"grade"`
		PhotoURL      *string `json:"photo_url"`
		Gender        *string `json:"gender"`
		Email         *string `json:"email"`
		StudentMobile *string `json:"student_mobile"`
		BatchName     string  `json:"batch_name"`
		BatchID       int     `json:"batch_id"`
	}
	var info infoRow
	err := ac.DB.Table("student s").
		Select("s.student_id, s.student_name, s.course, s.branch, s.grade, s.photo_url, s.gender, s.email, s.student_mobile, b.batch_name, b.batch_id").
		Joins("JOIN batch b ON s.batch_id = b.batch_id").
		Where("s.student_id = ?", studentID).
		Take(&info).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Student "+studentID+" not found")
		}
		return helper.JsonDBError(c, err, "student")
	}

	// Batch-wide rows loaded once; comparisons are computed per occasion
	// from these instead of one query per test.
	f := analysisFilters{BatchID: info.BatchID}
	batchDaily, err := ac.dailyJoined(f, false)
	if err != nil {
		return helper.JsonDBError(c, err, "daily_test")
	}
	batchMock, err := ac.mockJoined(f)
	if err != nil {
		return helper.JsonDBError(c, err, "mock_test")
	}

	dailyClass := map[string]*classStat{}
	for _, r := range batchDaily {
		key := strOr(r.Subject) + "|" + strOr(r.UnitName) + "|" + fmtTime(r.TestDate)
		cs, ok := dailyClass[key]
		if !ok {
			cs = &classStat{}
			dailyClass[key] = cs
		}
		cs.total.add(marks.FromStored(r.TotalMarks))
	}

	type mockClassStat struct {
		total, maths, physics, chem, bio subjectTally
	}
	mockClass := map[string]*mockClassStat{}
	for _, r := range batchMock {
		key := fmtTime(r.TestDate)
		cs, ok := mockClass[key]
		if !ok {
			cs = &mockClassStat{}
			mockClass[key] = cs
		}
		cs.total.add(marks.FromStored(r.TotalMarks))
		cs.maths.add(marks.FromStored(r.MathsMarks))
		cs.physics.add(marks.FromStored(r.PhysicsMarks))
		cs.chem.add(marks.FromStored(r.ChemistryMarks))
		cs.bio.add(marks.FromStored(r.BiologyMarks))
	}

	var dailyTests []ExamModel.DailyTestModel
	if err := ac.DB.Where("student_id = ?", studentID).
		Order("test_date DESC, subject").Find(&dailyTests).Error; err != nil {
		return helper.JsonDBError(c, err, "daily_test")
	}
	dailyOut := make([]fiber.Map, 0, len(dailyTests))
	for _, t := range dailyTests {
		date := ""
		if s := fmtDatePtr(t.TestDate); s != nil {
			date = *s
		}
		classAvg, topScore := 0.0, 0
		if cs, ok := dailyClass[strOr(t.Subject)+"|"+strOr(t.UnitName)+"|"+date]; ok {
			classAvg = engine.Round1(cs.total.avg())
			topScore = cs.total.max
		}
		dailyOut = append(dailyOut, fiber.Map{
			"test_id":   t.TestID,
			"subject":   t.Subject,
			"unit_name": t.UnitName,
			"marks":     t.TotalMarks,
			"test_date": date,
			"grade":     t.Grade,
			"branch":    t.Branch,
			"class_avg": classAvg,
			"top_score": topScore,
		})
	}

	var mockTests []ExamModel.MockTestModel
	if err := ac.DB.Where("student_id = ?", studentID).
		Order("test_date DESC").Find(&mockTests).Error; err != nil {
		return helper.JsonDBError(c, err, "mock_test")
	}
	mockOut := make([]fiber.Map, 0, len(mockTests))
	for _, t := range mockTests {
		date := ""
		if s := fmtDatePtr(t.TestDate); s != nil {
			date = *s
		}
		entry := fiber.Map{
			"test_id":              t.TestID,
			"test_date":            date,
			"maths_marks":          t.MathsMarks,
			"physics_marks":        t.PhysicsMarks,
			"chemistry_marks":      t.ChemistryMarks,
			"biology_marks":        t.BiologyMarks,
			"total_marks":          t.TotalMarks,
			"maths_unit_names":     t.MathsUnitNames,
			"physics_unit_names":   t.PhysicsUnitNames,
			"chemistry_unit_names": t.ChemistryUnitNames,
			"biology_unit_names":   t.BiologyUnitNames,
			"grade":                t.Grade,
			"branch":               t.Branch,
			"class_avg_total":      0.0,
			"top_score_total":      0,
			"class_avg_maths":      0.0,
			"class_avg_physics":    0.0,
			"class_avg_chemistry":  0.0,
			"class_avg_biology":    0.0,
		}
		if cs, ok := mockClass[date]; ok {
			entry["class_avg_total"] = engine.Round1(cs.total.avg())
			entry["top_score_total"] = cs.total.max
			entry["class_avg_maths"] = engine.Round1(cs.maths.avg())
			entry["class_avg_physics"] = engine.Round1(cs.physics.avg())
			entry["class_avg_chemistry"] = engine.Round1(cs.chem.avg())
			entry["class_avg_biology"] = engine.Round1(cs.bio.avg())
		}
		mockOut = append(mockOut, entry)
	}

	var feedback []FeedbackModel.FeedbackModel
	if err := ac.DB.Where("student_id = ?", studentID).
		Order("feedback_date DESC").Find(&feedback).Error; err != nil {
		return helper.JsonDBError(c, err, "feedback")
	}
	feedbackOut := make([]fiber.Map, 0, len(feedback))
	for _, fb := range feedback {
		feedbackOut = append(feedbackOut, fiber.Map{
			"feedback_id":                 fb.FeedbackID,
			"feedback_date":               fmtDatePtr(fb.FeedbackDate),
			"teacher_feedback":            fb.TeacherFeedback,
			"suggestions":                 fb.Suggestions,
			"academic_director_signature": fb.AcademicDirectorSignature,
			"student_signature":           fb.StudentSignature,
			"parent_signature":            fb.ParentSignature,
			"created_at":                  fb.CreatedAt,
		})
	}

	return helper.JsonSuccess(c, "OK", fiber.Map{
		"student":     info,
		"daily_tests": dailyOut,
		"mock_tests":  mockOut,
		"feedback":    feedbackOut,
	})
}
