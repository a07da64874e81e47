// file: internals/features/academics/exams/controller/exam_controller.go
package controller

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	BatchModel "gurukul_backend/internals/features/academics/batches/model"
	"gurukul_backend/internals/features/academics/exams/dto"
	"gurukul_backend/internals/features/academics/exams/marks"
	"gurukul_backend/internals/features/academics/exams/model"
	"gurukul_backend/internals/features/academics/students/importer"
	StudentModel "gurukul_backend/internals/features/academics/students/model"
	helper "gurukul_backend/internals/helpers"
)

var gradeRe = regexp.MustCompile(`\d+`)

type ExamController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewExamController(db *gorm.DB) *ExamController {
	return &ExamController{DB: db, Validate: validator.New()}
}

// gradeFromBatchName pulls the first run of digits out of a batch name
// like "Grade 11" or "12th NEET".
func gradeFromBatchName(name string) *int {
	m := gradeRe.FindString(name)
	if m == "" {
		return nil
	}
	g, err := strconv.Atoi(m)
	if err != nil {
		return nil
	}
	return &g
}

func (ec *ExamController) loadBatch(batchID int) (*BatchModel.BatchModel, error) {
	var batch BatchModel.BatchModel
	if err := ec.DB.First(&batch, "batch_id = ?", batchID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound,
				fmt.Sprintf("Batch %d not found", batchID))
		}
		return nil, fiber.NewError(helper.DBErrorStatus(err), "Batch lookup failed")
	}
	return &batch, nil
}

func (ec *ExamController) studentBranch(studentID string) (*string, bool, error) {
	var student StudentModel.StudentModel
	err := ec.DB.Select("branch").First(&student, "student_id = ?", studentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return student.Branch, true, nil
}

// CreateDailyTest records one daily test entry per student. Empty mark
// cells mean the student was absent from the entry sheet and are skipped;
// anything else is stored verbatim through the marks normalizer.
func (ec *ExamController) CreateDailyTest(c *fiber.Ctx) error {
	var req dto.DailyTestCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ec.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	testDate := importer.ParseDate(req.ExamDate)
	if testDate == nil {
		return fiber.NewError(fiber.StatusBadRequest, "exam_date must be a valid date")
	}

	batch, err := ec.loadBatch(req.BatchID)
	if err != nil {
		return err
	}
	grade := gradeFromBatchName(batch.BatchName)

	inserted := 0
	failed := []dto.FailedStudent{}
	for _, sm := range req.StudentMarks {
		mark := marks.Parse(sm.Marks)
		if mark.IsEmpty() {
			continue
		}

		branch, found, err := ec.studentBranch(sm.StudentID)
		if err != nil {
			failed = append(failed, dto.FailedStudent{StudentID: sm.StudentID, Reason: "Marks could not be saved"})
			continue
		}
		if !found {
			failed = append(failed, dto.FailedStudent{StudentID: sm.StudentID, Reason: "Student not found"})
			continue
		}

		row := model.DailyTestModel{
			StudentID:  sm.StudentID,
			Grade:      grade,
			Branch:     branch,
			TestDate:   testDate,
			Subject:    &req.Subject,
			UnitName:   &req.UnitName,
			TotalMarks: mark.String(),
		}
		if err := ec.DB.Create(&row).Error; err != nil {
			failed = append(failed, dto.FailedStudent{StudentID: sm.StudentID, Reason: "Marks could not be saved"})
			continue
		}
		inserted++
	}

	resp := fiber.Map{
		"exam_name":      req.ExamName,
		"exam_date":      req.ExamDate,
		"subject":        req.Subject,
		"unit_name":      req.UnitName,
		"total_marks":    req.TotalMarks,
		"inserted_count": inserted,
		"total_students": len(req.StudentMarks),
	}
	if len(failed) > 0 {
		resp["failed_students"] = failed
	}
	return helper.JsonSuccessWithCode(c, fiber.StatusCreated, "Daily test marks added successfully", resp)
}

// CreateMockTest records one four-subject mock test entry per student.
// A student with all four cells empty is skipped; an empty single cell
// becomes the not-applicable sentinel. The total sums numeric subjects
// only.
func (ec *ExamController) CreateMockTest(c *fiber.Ctx) error {
	var req dto.MockTestCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ec.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	testDate := importer.ParseDate(req.ExamDate)
	if testDate == nil {
		return fiber.NewError(fiber.StatusBadRequest, "exam_date must be a valid date")
	}

	batch, err := ec.loadBatch(req.BatchID)
	if err != nil {
		return err
	}
	grade := gradeFromBatchName(batch.BatchName)

	mathsUnits := dto.SplitUnitNames(req.MathsUnitNames)
	physicsUnits := dto.SplitUnitNames(req.PhysicsUnitNames)
	chemistryUnits := dto.SplitUnitNames(req.ChemistryUnitNames)
	biologyUnits := dto.SplitUnitNames(req.BiologyUnitNames)

	inserted := 0
	failed := []dto.FailedStudent{}
	for _, sm := range req.StudentMarks {
		maths := marks.Parse(sm.MathsMarks)
		physics := marks.Parse(sm.PhysicsMarks)
		chemistry := marks.Parse(sm.ChemistryMarks)
		biology := marks.Parse(sm.BiologyMarks)
		if maths.IsEmpty() && physics.IsEmpty() && chemistry.IsEmpty() && biology.IsEmpty() {
			continue
		}

		branch, found, err := ec.studentBranch(sm.StudentID)
		if err != nil {
			failed = append(failed, dto.FailedStudent{StudentID: sm.StudentID, Reason: "Marks could not be saved"})
			continue
		}
		if !found {
			failed = append(failed, dto.FailedStudent{StudentID: sm.StudentID, Reason: "Student not found"})
			continue
		}

		row := model.MockTestModel{
			StudentID:          sm.StudentID,
			Grade:              grade,
			Branch:             branch,
			TestDate:           testDate,
			MathsMarks:         maths.String(),
			PhysicsMarks:       physics.String(),
			ChemistryMarks:     chemistry.String(),
			BiologyMarks:       biology.String(),
			MathsUnitNames:     pq.StringArray(mathsUnits),
			PhysicsUnitNames:   pq.StringArray(physicsUnits),
			ChemistryUnitNames: pq.StringArray(chemistryUnits),
			BiologyUnitNames:   pq.StringArray(biologyUnits),
			TotalMarks:         marks.Total(maths, physics, chemistry, biology).String(),
		}
		if err := ec.DB.Create(&row).Error; err != nil {
			failed = append(failed, dto.FailedStudent{StudentID: sm.StudentID, Reason: "Marks could not be saved"})
			continue
		}
		inserted++
	}

	resp := fiber.Map{
		"exam_name": req.ExamName,
		"exam_date": req.ExamDate,
		"units": fiber.Map{
			"maths":     mathsUnits,
			"physics":   physicsUnits,
			"chemistry": chemistryUnits,
			"biology":   biologyUnits,
		},
		"inserted_count": inserted,
		"total_students": len(req.StudentMarks),
	}
	if len(failed) > 0 {
		resp["failed_students"] = failed
	}
	return helper.JsonSuccessWithCode(c, fiber.StatusCreated, "Mock test marks added successfully", resp)
}

func (ec *ExamController) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "healthy", "service": "exam-api"})
}

type templateStudent struct {
	StudentID   string
	StudentName string
}

func (ec *ExamController) templateStudents(batchID int) ([]templateStudent, error) {
	var students []templateStudent
	err := ec.DB.Model(&StudentModel.StudentModel{}).
		Select("student_id", "student_name").
		Where("batch_id = ?", batchID).
		Order("student_id").
		Scan(&students).Error
	if err != nil {
		return nil, fiber.NewError(helper.DBErrorStatus(err), "Student lookup failed")
	}
	if len(students) == 0 {
		return nil, fiber.NewError(fiber.StatusNotFound,
			fmt.Sprintf("No students found for batch %d", batchID))
	}
	return students, nil
}

func headerStyle(f *excelize.File, fillColor string) (int, error) {
	thin := []excelize.Border{
		{Type: "left", Style: 1, Color: "000000"},
		{Type: "right", Style: 1, Color: "000000"},
		{Type: "top", Style: 1, Color: "000000"},
		{Type: "bottom", Style: 1, Color: "000000"},
	}
	return f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF", Size: 12},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{fillColor}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thin,
	})
}

func writeInstructions(f *excelize.File, title string, lines []string) error {
	if _, err := f.NewSheet("Instructions"); err != nil {
		return err
	}
	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return err
	}
	if err := f.SetCellValue("Instructions", "A1", title); err != nil {
		return err
	}
	if err := f.SetCellStyle("Instructions", "A1", "A1", titleStyle); err != nil {
		return err
	}
	for i, line := range lines {
		cell, err := excelize.CoordinatesToCellName(1, i+3)
		if err != nil {
			return err
		}
		if err := f.SetCellValue("Instructions", cell, line); err != nil {
			return err
		}
	}
	return f.SetColWidth("Instructions", "A", "A", 70)
}

func sendWorkbook(c *fiber.Ctx, f *excelize.File, filename string) error {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to generate template")
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename=`+filename)
	return c.Send(buf.Bytes())
}

// DailyTemplate streams a pre-filled marks-entry workbook for the batch:
// one row per student, a blank marks column, and an instructions sheet.
func (ec *ExamController) DailyTemplate(c *fiber.Ctx) error {
	batchID, err := strconv.Atoi(c.Params("batch_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "batch_id must be an integer")
	}
	totalMarks := c.QueryInt("total_marks", 100)

	students, err := ec.templateStudents(batchID)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()
	const sheet = "Daily Test Marks"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to generate template")
	}

	headers := []interface{}{"Admission Number", "Student Name", fmt.Sprintf("Marks (out of %d)", totalMarks)}
	_ = f.SetSheetRow(sheet, "A1", &headers)
	if style, err := headerStyle(f, "4472C4"); err == nil {
		_ = f.SetCellStyle(sheet, "A1", "C1", style)
	}
	for i, s := range students {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		_ = f.SetSheetRow(sheet, cell, &[]interface{}{s.StudentID, s.StudentName, ""})
	}
	_ = f.SetColWidth(sheet, "A", "A", 20)
	_ = f.SetColWidth(sheet, "B", "B", 35)
	_ = f.SetColWidth(sheet, "C", "C", 20)

	_ = writeInstructions(f, "Daily Test Marks Template - Instructions", []string{
		"1. Fill in the marks for each student in the 'Marks' column",
		"2. Do not modify the Admission Number or Student Name columns",
		"3. Ensure marks are within the specified range (0 to total marks)",
		"4. Save the file and upload it back to the system",
		"5. Empty marks will be skipped during upload",
	})

	return sendWorkbook(c, f, fmt.Sprintf("daily_test_template_batch_%d.xlsx", batchID))
}

// MockTemplate streams the four-subject mock test entry workbook.
func (ec *ExamController) MockTemplate(c *fiber.Ctx) error {
	batchID, err := strconv.Atoi(c.Params("batch_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "batch_id must be an integer")
	}

	students, err := ec.templateStudents(batchID)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()
	const sheet = "Mock Test Marks"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to generate template")
	}

	headers := []interface{}{"Admission Number", "Student Name", "Maths Marks", "Physics Marks", "Biology Marks", "Chemistry Marks"}
	_ = f.SetSheetRow(sheet, "A1", &headers)
	if style, err := headerStyle(f, "70AD47"); err == nil {
		_ = f.SetCellStyle(sheet, "A1", "F1", style)
	}
	for i, s := range students {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		_ = f.SetSheetRow(sheet, cell, &[]interface{}{s.StudentID, s.StudentName, "", "", "", ""})
	}
	_ = f.SetColWidth(sheet, "A", "A", 20)
	_ = f.SetColWidth(sheet, "B", "B", 35)
	_ = f.SetColWidth(sheet, "C", "F", 15)

	_ = writeInstructions(f, "Mock Test Marks Template - Instructions", []string{
		"1. Fill in the marks for each student for all four subjects",
		"2. Do not modify the Admission Number or Student Name columns",
		"3. Enter marks for: Maths, Physics, Biology, and Chemistry",
		"4. Save the file and upload it back to the system",
		"5. Empty marks will be treated as not applicable during upload",
	})

	return sendWorkbook(c, f, fmt.Sprintf("mock_test_template_batch_%d.xlsx", batchID))
}

func (ec *ExamController) DailyByStudent(c *fiber.Ctx) error {
	studentID := c.Params("student_id")

	var tests []model.DailyTestModel
	err := ec.DB.Where("student_id = ?", studentID).
		Order("test_date DESC, subject, unit_name").
		Find(&tests).Error
	if err != nil {
		return helper.JsonDBError(c, err, "daily_test")
	}

	out := make([]dto.DailyTestResponse, 0, len(tests))
	for _, t := range tests {
		out = append(out, dto.ToDailyTestResponse(t))
	}
	return helper.JsonSuccess(c, "OK", fiber.Map{
		"student_id":  studentID,
		"daily_tests": out,
		"total_tests": len(out),
	})
}

func (ec *ExamController) MockByStudent(c *fiber.Ctx) error {
	studentID := c.Params("student_id")

	var tests []model.MockTestModel
	err := ec.DB.Where("student_id = ?", studentID).
		Order("test_date DESC").
		Find(&tests).Error
	if err != nil {
		return helper.JsonDBError(c, err, "mock_test")
	}

	out := make([]dto.MockTestResponse, 0, len(tests))
	for _, t := range tests {
		out = append(out, dto.ToMockTestResponse(t))
	}
	return helper.JsonSuccess(c, "OK", fiber.Map{
		"student_id":  studentID,
		"mock_tests":  out,
		"total_tests": len(out),
	})
}

// BatchReport returns every student in a batch with per-student test
// counts, batch-level distinct test totals, and the raw daily/mock rows.
// A daily test occasion is a distinct (date, subject, unit) triple; a
// mock test occasion is a distinct date.
func (ec *ExamController) BatchReport(c *fiber.Ctx) error {
	batchID, err := strconv.Atoi(c.Params("batch_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "batch_id must be an integer")
	}

	batch, err := ec.loadBatch(batchID)
	if err != nil {
		return err
	}

	var students []StudentModel.StudentModel
	if err := ec.DB.Where("batch_id = ?", batchID).
		Order("student_name").Find(&students).Error; err != nil {
		return helper.JsonDBError(c, err, "student")
	}

	nameByID := make(map[string]string, len(students))
	studentIDs := make([]string, 0, len(students))
	for _, s := range students {
		nameByID[s.StudentID] = s.StudentName
		studentIDs = append(studentIDs, s.StudentID)
	}

	var dailyRows []model.DailyTestModel
	var mockRows []model.MockTestModel
	if len(studentIDs) > 0 {
		if err := ec.DB.Where("student_id IN ?", studentIDs).
			Order("test_date").Find(&dailyRows).Error; err != nil {
			return helper.JsonDBError(c, err, "daily_test")
		}
		if err := ec.DB.Where("student_id IN ?", studentIDs).
			Order("test_date").Find(&mockRows).Error; err != nil {
			return helper.JsonDBError(c, err, "mock_test")
		}
	}

	dailyCounts := make(map[string]int)
	dailyOccasions := make(map[string]struct{})
	dailyTests := make([]fiber.Map, 0, len(dailyRows))
	for _, r := range dailyRows {
		dailyCounts[r.StudentID]++
		date := dto.FormatDate(r.TestDate)
		dailyOccasions[derefOr(date)+"|"+derefOr(r.Subject)+"|"+derefOr(r.UnitName)] = struct{}{}
		dailyTests = append(dailyTests, fiber.Map{
			"student_id":   r.StudentID,
			"student_name": nameByID[r.StudentID],
			"test_date":    date,
			"subject":      r.Subject,
			"unit_name":    r.UnitName,
			"total_marks":  r.TotalMarks,
		})
	}

	mockCounts := make(map[string]int)
	mockOccasions := make(map[string]struct{})
	mockTests := make([]fiber.Map, 0, len(mockRows))
	for _, r := range mockRows {
		mockCounts[r.StudentID]++
		date := dto.FormatDate(r.TestDate)
		mockOccasions[derefOr(date)] = struct{}{}
		mockTests = append(mockTests, fiber.Map{
			"student_id":      r.StudentID,
			"student_name":    nameByID[r.StudentID],
			"test_date":       date,
			"maths_marks":     r.MathsMarks,
			"physics_marks":   r.PhysicsMarks,
			"chemistry_marks": r.ChemistryMarks,
			"biology_marks":   r.BiologyMarks,
			"total_marks":     r.TotalMarks,
		})
	}

	studentOut := make([]fiber.Map, 0, len(students))
	for _, s := range students {
		studentOut = append(studentOut, fiber.Map{
			"student_id":       s.StudentID,
			"student_name":     s.StudentName,
			"gender":           s.Gender,
			"dob":              dto.FormatDate(s.DOB),
			"community":        s.Community,
			"grade":            s.Grade,
			"enrollment_year":  s.EnrollmentYear,
			"course":           s.Course,
			"branch":           s.Branch,
			"student_mobile":   s.StudentMobile,
			"email":            s.Email,
			"daily_test_count": dailyCounts[s.StudentID],
			"mock_test_count":  mockCounts[s.StudentID],
		})
	}

	return helper.JsonSuccess(c, "OK", fiber.Map{
		"batch": fiber.Map{
			"batch_id":   batch.BatchID,
			"batch_name": batch.BatchName,
			"start_year": batch.StartYear,
			"end_year":   batch.EndYear,
			"type":       batch.Type,
		},
		"total_students":              len(students),
		"total_daily_tests_conducted": len(dailyOccasions),
		"total_mock_tests_conducted":  len(mockOccasions),
		"students":                    studentOut,
		"daily_tests":                 dailyTests,
		"mock_tests":                  mockTests,
	})
}

func derefOr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
