// file: internals/features/academics/analytics/controller/analysis_controller.go
package controller

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"gurukul_backend/internals/features/academics/analytics/engine"
	BatchModel "gurukul_backend/internals/features/academics/batches/model"
	"gurukul_backend/internals/features/academics/exams/marks"
	StudentModel "gurukul_backend/internals/features/academics/students/model"
	helper "gurukul_backend/internals/helpers"
)

type AnalysisController struct {
	DB *gorm.DB
}

func NewAnalysisController(db *gorm.DB) *AnalysisController {
	return &AnalysisController{DB: db}
}

func (ac *AnalysisController) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "healthy", "service": "analysis-api"})
}

// analysisFilters are the shared query-string filters of the analysis
// endpoints. Zero values mean "not filtered".
type analysisFilters struct {
	Grade     string
	Admission string
	BatchID   int
	Subject   string
	FromDate  string
	ToDate    string
}

func parseFilters(c *fiber.Ctx) analysisFilters {
	return analysisFilters{
		Grade:     c.Query("grade"),
		Admission: c.Query("admission_number"),
		BatchID:   c.QueryInt("batch_id", 0),
		Subject:   c.Query("subject"),
		FromDate:  c.Query("from_date"),
		ToDate:    c.Query("to_date"),
	}
}

// dailyJoinedRow is one daily_test row joined with student and batch.
type dailyJoinedRow struct {
	StudentID   string
	StudentName string
	Grade       *string
	Branch      *string
	BatchName   string
	Subject     *string
	UnitName    *string
	TotalMarks  string
	TestDate    *time.Time
}

// mockJoinedRow is one mock_test row joined with student and batch.
type mockJoinedRow struct {
	StudentID      string
	StudentName    string
	Grade          *string
	Branch         *string
	BatchName      string
	MathsMarks     string
	PhysicsMarks   string
	ChemistryMarks string
	BiologyMarks   string
	TotalMarks     string
	TestDate       *time.Time
}

func (ac *AnalysisController) dailyJoined(f analysisFilters, withSubject bool) ([]dailyJoinedRow, error) {
	q := ac.DB.Table("daily_test dt").
		Select("s.student_id, s.student_name, s.grade, s.branch, b.batch_name, dt.subject, dt.unit_name, dt.total_marks, dt.test_date").
		Joins("JOIN student s ON dt.student_id = s.student_id").
		Joins("JOIN batch b ON s.batch_id = b.batch_id")
	if f.Grade != "" {
		q = q.Where("s.grade = ?", f.Grade)
	}
	if f.Admission != "" {
		q = q.Where("s.student_id ILIKE ?", "%"+f.Admission+"%")
	}
	if f.BatchID != 0 {
		q = q.Where("s.batch_id = ?", f.BatchID)
	}
	if withSubject && f.Subject != "" {
		q = q.Where("dt.subject = ?", f.Subject)
	}
	if f.FromDate != "" {
		q = q.Where("dt.test_date >= ?", f.FromDate)
	}
	if f.ToDate != "" {
		q = q.Where("dt.test_date <= ?", f.ToDate)
	}

	var rows []dailyJoinedRow
	err := q.Order("s.student_name, dt.subject, dt.test_date").Scan(&rows).Error
	return rows, err
}

func (ac *AnalysisController) mockJoined(f analysisFilters) ([]mockJoinedRow, error) {
	q := ac.DB.Table("mock_test mt").
		Select("s.student_id, s.student_name, s.grade, s.branch, b.batch_name, mt.maths_marks, mt.physics_marks, mt.chemistry_marks, mt.biology_marks, mt.total_marks, mt.test_date").
		Joins("JOIN student s ON mt.student_id = s.student_id").
		Joins("JOIN batch b ON s.batch_id = b.batch_id")
	if f.Grade != "" {
		q = q.Where("s.grade = ?", f.Grade)
	}
	if f.Admission != "" {
		q = q.Where("s.student_id ILIKE ?", "%"+f.Admission+"%")
	}
	if f.BatchID != 0 {
		q = q.Where("s.batch_id = ?", f.BatchID)
	}
	if f.FromDate != "" {
		q = q.Where("mt.test_date >= ?", f.FromDate)
	}
	if f.ToDate != "" {
		q = q.Where("mt.test_date <= ?", f.ToDate)
	}

	var rows []mockJoinedRow
	err := q.Order("s.student_name, mt.test_date").Scan(&rows).Error
	return rows, err
}

func fmtTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func fmtDatePtr(d *datatypes.Date) *string {
	if d == nil {
		return nil
	}
	s := time.Time(*d).Format("2006-01-02")
	return &s
}

// FilterOptions lists the distinct filter values present in the data:
// grades, batches, daily-test subjects, branches and courses.
func (ac *AnalysisController) FilterOptions(c *fiber.Ctx) error {
	var grades []string
	if err := ac.DB.Model(&StudentModel.StudentModel{}).
		Where("grade IS NOT NULL").Distinct().Order("grade").
		Pluck("grade", &grades).Error; err != nil {
		return helper.JsonDBError(c, err, "student")
	}

	var batches []BatchModel.BatchModel
	if err := ac.DB.Order("created_at DESC").Find(&batches).Error; err != nil {
		return helper.JsonDBError(c, err, "batch")
	}
	batchOut := make([]fiber.Map, 0, len(batches))
	for _, b := range batches {
		subjects := []string(b.Subjects)
		if subjects == nil {
			subjects = []string{}
		}
		batchOut = append(batchOut, fiber.Map{
			"batch_id":   b.BatchID,
			"batch_name": b.BatchName,
			"start_year": b.StartYear,
			"end_year":   b.EndYear,
			"type":       b.Type,
			"subjects":   subjects,
		})
	}

	var subjects []string
	if err := ac.DB.Table("daily_test").
		Where("subject IS NOT NULL").Distinct().Order("subject").
		Pluck("subject", &subjects).Error; err != nil {
		return helper.JsonDBError(c, err, "daily_test")
	}

	var branches []string
	if err := ac.DB.Model(&StudentModel.StudentModel{}).
		Where("branch IS NOT NULL").Distinct().Order("branch").
		Pluck("branch", &branches).Error; err != nil {
		return helper.JsonDBError(c, err, "student")
	}

	var courses []string
	if err := ac.DB.Model(&StudentModel.StudentModel{}).
		Where("course IS NOT NULL").Distinct().Order("course").
		Pluck("course", &courses).Error; err != nil {
		return helper.JsonDBError(c, err, "student")
	}

	return helper.JsonSuccess(c, "OK", fiber.Map{
		"grades":   grades,
		"batches":  batchOut,
		"subjects": subjects,
		"branches": branches,
		"courses":  courses,
	})
}

type batchPerformanceResponse struct {
	Batch fiber.Map `json:"batch"`
	engine.Report
}

// BatchPerformance computes the full analytics report for one batch:
// stats, trends, breakdowns, rankings, distributions and participation.
// Rows are loaded scoped to the batch and date range; all mark arithmetic
// happens in the engine after normalization.
func (ac *AnalysisController) BatchPerformance(c *fiber.Ctx) error {
	batchID, err := strconv.Atoi(c.Params("batch_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "batch_id must be an integer")
	}

	testType := c.Query("test_type", engine.TestTypeBoth)
	switch testType {
	case engine.TestTypeDaily, engine.TestTypeMock, engine.TestTypeBoth:
	default:
		return fiber.NewError(fiber.StatusBadRequest, "test_type must be daily, mock or both")
	}

	var batch BatchModel.BatchModel
	if err := ac.DB.First(&batch, "batch_id = ?", batchID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound,
				fmt.Sprintf("Batch %d not found", batchID))
		}
		return helper.JsonDBError(c, err, "batch")
	}

	var totalStudents int64
	if err := ac.DB.Model(&StudentModel.StudentModel{}).
		Where("batch_id = ?", batchID).Count(&totalStudents).Error; err != nil {
		return helper.JsonDBError(c, err, "student")
	}

	f := analysisFilters{
		BatchID:  batchID,
		FromDate: c.Query("date_from"),
		ToDate:   c.Query("date_to"),
	}

	input := engine.ReportInput{
		TestType:      testType,
		Subject:       c.Query("subject"),
		TotalStudents: int(totalStudents),
	}

	if testType == engine.TestTypeDaily || testType == engine.TestTypeBoth {
		rows, err := ac.dailyJoined(f, false)
		if err != nil {
			return helper.JsonDBError(c, err, "daily_test")
		}
		input.Daily = make([]engine.DailyRow, 0, len(rows))
		for _, r := range rows {
			input.Daily = append(input.Daily, engine.DailyRow{
				StudentID:   r.StudentID,
				StudentName: r.StudentName,
				Subject:     strOr(r.Subject),
				UnitName:    strOr(r.UnitName),
				TestDate:    fmtTime(r.TestDate),
				Marks:       marks.FromStored(r.TotalMarks),
			})
		}
	}

	if testType == engine.TestTypeMock || testType == engine.TestTypeBoth {
		rows, err := ac.mockJoined(f)
		if err != nil {
			return helper.JsonDBError(c, err, "mock_test")
		}
		input.Mock = make([]engine.MockRow, 0, len(rows))
		for _, r := range rows {
			input.Mock = append(input.Mock, engine.MockRow{
				StudentID:   r.StudentID,
				StudentName: r.StudentName,
				TestDate:    fmtTime(r.TestDate),
				Maths:       marks.FromStored(r.MathsMarks),
				Physics:     marks.FromStored(r.PhysicsMarks),
				Chemistry:   marks.FromStored(r.ChemistryMarks),
				Biology:     marks.FromStored(r.BiologyMarks),
				Total:       marks.FromStored(r.TotalMarks),
			})
		}
	}

	subjects := []string(batch.Subjects)
	if subjects == nil {
		subjects = []string{}
	}

	return helper.JsonSuccess(c, "OK", batchPerformanceResponse{
		Batch: fiber.Map{
			"batch_id":   batch.BatchID,
			"batch_name": batch.BatchName,
			"start_year": batch.StartYear,
			"end_year":   batch.EndYear,
			"type":       batch.Type,
			"subjects":   subjects,
		},
		Report: engine.BuildReport(input),
	})
}

func strOr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
