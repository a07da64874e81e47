// file: internals/features/academics/students/controller/student_controller.go
package controller

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	BatchModel "gurukul_backend/internals/features/academics/batches/model"
	"gurukul_backend/internals/features/academics/students/dto"
	"gurukul_backend/internals/features/academics/students/importer"
	"gurukul_backend/internals/features/academics/students/model"
	helper "gurukul_backend/internals/helpers"
)

type StudentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db, Validate: validator.New()}
}

func (sc *StudentController) batchExists(batchID int) (bool, error) {
	var n int64
	err := sc.DB.Model(&BatchModel.BatchModel{}).Where("batch_id = ?", batchID).Count(&n).Error
	return n > 0, err
}

// Create persists one student with all related sub-records atomically.
func (sc *StudentController) Create(c *fiber.Ctx) error {
	var req dto.StudentCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := sc.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	ok, err := sc.batchExists(req.BatchID)
	if err != nil {
		return helper.JsonDBError(c, err, "batch")
	}
	if !ok {
		return fiber.NewError(fiber.StatusNotFound,
			"Batch with ID "+strconv.Itoa(req.BatchID)+" not found")
	}

	rec := req.ToRecord()
	err = sc.DB.Transaction(func(tx *gorm.DB) error {
		return importer.InsertRecord(tx, rec)
	})
	if err != nil {
		if helper.IsDuplicate(err) {
			return fiber.NewError(fiber.StatusConflict,
				"Student with ID "+rec.Student.StudentID+" already exists")
		}
		return helper.JsonDBError(c, err, "student")
	}

	return helper.JsonSuccessWithCode(c, fiber.StatusCreated, "Student added successfully",
		dto.ToStudentSummary(rec.Student))
}

// Upload ingests an xlsx of students into one batch via the import pipeline.
func (sc *StudentController) Upload(c *fiber.Ctx) error {
	batchID, err := strconv.Atoi(c.FormValue("batch_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "batch_id form field must be an integer")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "file is required")
	}

	ok, err := sc.batchExists(batchID)
	if err != nil {
		return helper.JsonDBError(c, err, "batch")
	}
	if !ok {
		return fiber.NewError(fiber.StatusNotFound,
			"Batch with ID "+strconv.Itoa(batchID)+" not found")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not read uploaded file")
	}
	defer f.Close()

	rows, err := importer.ParseSheet(f)
	if err != nil {
		if errors.Is(err, importer.ErrMissingColumns) {
			return fiber.NewError(fiber.StatusBadRequest,
				"Excel file must contain 'student_id' and 'student_name' columns")
		}
		return fiber.NewError(fiber.StatusBadRequest, "File must be a readable Excel file (.xlsx)")
	}

	outcome, err := importer.Import(sc.DB, batchID, rows)
	if err != nil {
		return helper.JsonDBError(c, err, "student upload")
	}

	return helper.JsonSuccessWithCode(c, fiber.StatusCreated, outcome.Message, outcome)
}

func (sc *StudentController) ListByBatch(c *fiber.Ctx) error {
	batchID, err := strconv.Atoi(c.Params("batch_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "batch_id must be an integer")
	}

	var students []model.StudentModel
	if err := sc.DB.Where("batch_id = ?", batchID).
		Order("student_name").Find(&students).Error; err != nil {
		return helper.JsonDBError(c, err, "student")
	}

	out := make([]dto.StudentSummary, 0, len(students))
	for _, s := range students {
		out = append(out, dto.ToStudentSummary(s))
	}
	return helper.JsonSuccess(c, "OK", fiber.Map{
		"batch_id": batchID,
		"count":    len(out),
		"students": out,
	})
}

// GetDetail assembles the flat student view across every related table.
func (sc *StudentController) GetDetail(c *fiber.Ctx) error {
	studentID := c.Params("student_id")

	var student model.StudentModel
	if err := sc.DB.First(&student, "student_id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Student "+studentID+" not found")
		}
		return helper.JsonDBError(c, err, "student")
	}

	detail := fiber.Map{
		"student_id":      student.StudentID,
		"batch_id":        student.BatchID,
		"student_name":    student.StudentName,
		"dob":             dto.FormatDate(student.DOB),
		"grade":           student.Grade,
		"community":       student.Community,
		"enrollment_year": student.EnrollmentYear,
		"course":          student.Course,
		"branch":          student.Branch,
		"gender":          student.Gender,
		"student_mobile":  student.StudentMobile,
		"aadhar_no":       student.AadharNo,
		"apaar_id":        student.ApaarID,
		"email":           student.Email,
		"school_name":     student.SchoolName,
		"created_at":      student.CreatedAt,
	}

	var parent model.ParentInfoModel
	if err := sc.DB.First(&parent, "student_id = ?", studentID).Error; err == nil {
		detail["guardian_name"] = parent.GuardianName
		detail["guardian_occupation"] = parent.GuardianOccupation
		detail["guardian_mobile"] = parent.GuardianMobile
		detail["guardian_email"] = parent.GuardianEmail
		detail["father_name"] = parent.FatherName
		detail["father_occupation"] = parent.FatherOccupation
		detail["father_mobile"] = parent.FatherMobile
		detail["father_email"] = parent.FatherEmail
		detail["mother_name"] = parent.MotherName
		detail["mother_occupation"] = parent.MotherOccupation
		detail["mother_mobile"] = parent.MotherMobile
		detail["mother_email"] = parent.MotherEmail
		detail["sibling_name"] = parent.SiblingName
		detail["sibling_grade"] = parent.SiblingGrade
		detail["sibling_school"] = parent.SiblingSchool
		detail["sibling_college"] = parent.SiblingCollege
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonDBError(c, err, "student")
	}

	var tenth model.TenthMarkModel
	if err := sc.DB.First(&tenth, "student_id = ?", studentID).Error; err == nil {
		detail["tenth_school_name"] = tenth.SchoolName
		detail["tenth_year_of_passing"] = tenth.YearOfPassing
		detail["tenth_board_of_study"] = tenth.BoardOfStudy
		detail["tenth_english"] = tenth.English
		detail["tenth_tamil"] = tenth.Tamil
		detail["tenth_hindi"] = tenth.Hindi
		detail["tenth_maths"] = tenth.Maths
		detail["tenth_science"] = tenth.Science
		detail["tenth_social_science"] = tenth.SocialScience
		detail["tenth_total_marks"] = tenth.TotalMarks
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonDBError(c, err, "student")
	}

	var twelfth model.TwelfthMarkModel
	if err := sc.DB.First(&twelfth, "student_id = ?", studentID).Error; err == nil {
		detail["twelfth_school_name"] = twelfth.SchoolName
		detail["twelfth_year_of_passing"] = twelfth.YearOfPassing
		detail["twelfth_board_of_study"] = twelfth.BoardOfStudy
		detail["twelfth_english"] = twelfth.English
		detail["twelfth_physics"] = twelfth.Physics
		detail["twelfth_maths"] = twelfth.Maths
		detail["twelfth_chemistry"] = twelfth.Chemistry
		detail["twelfth_biology"] = twelfth.Biology
		detail["twelfth_computer_science"] = twelfth.ComputerScience
		detail["twelfth_tamil"] = twelfth.Tamil
		detail["twelfth_total_marks"] = twelfth.TotalMarks
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonDBError(c, err, "student")
	}

	var exams []model.EntranceExamModel
	if err := sc.DB.Where("student_id = ?", studentID).Find(&exams).Error; err != nil {
		return helper.JsonDBError(c, err, "student")
	}
	if len(exams) > 0 {
		list := make([]fiber.Map, 0, len(exams))
		for _, e := range exams {
			list = append(list, fiber.Map{
				"exam_name":       e.ExamName,
				"physics_marks":   e.PhysicsMarks,
				"chemistry_marks": e.ChemistryMarks,
				"maths_marks":     e.MathsMarks,
				"biology_marks":   e.BiologyMarks,
				"total_marks":     e.TotalMarks,
				"community_rank":  e.CommunityRank,
				"overall_rank":    e.OverallRank,
			})
		}
		detail["entrance_exams"] = list
	}

	var counselling model.CounsellingDetailModel
	if err := sc.DB.First(&counselling, "student_id = ?", studentID).Error; err == nil {
		detail["counselling_forum"] = counselling.Forum
		detail["counselling_round"] = counselling.Round
		detail["counselling_college_alloted"] = counselling.CollegeAlloted
		detail["counselling_year_of_completion"] = counselling.YearOfCompletion
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonDBError(c, err, "student")
	}

	return helper.JsonSuccess(c, "OK", detail)
}

// Update applies a partial update: student columns in place, each related
// section upserted only when it carries data.
func (sc *StudentController) Update(c *fiber.Ctx) error {
	studentID := c.Params("student_id")

	var req dto.StudentUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := sc.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var exists int64
	if err := sc.DB.Model(&model.StudentModel{}).
		Where("student_id = ?", studentID).Count(&exists).Error; err != nil {
		return helper.JsonDBError(c, err, "student")
	}
	if exists == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Student "+studentID+" not found")
	}

	updated := 0
	err := sc.DB.Transaction(func(tx *gorm.DB) error {
		if u := req.StudentUpdates(); len(u) > 0 {
			if err := tx.Model(&model.StudentModel{}).
				Where("student_id = ?", studentID).Updates(u).Error; err != nil {
				return err
			}
			updated += len(u)
		}
		if u := req.ParentUpdates(); len(u) > 0 {
			if err := upsertByStudent(tx, &model.ParentInfoModel{StudentID: studentID}, studentID, u); err != nil {
				return err
			}
			updated += len(u)
		}
		if u := req.TenthUpdates(); len(u) > 0 {
			if err := upsertByStudent(tx, &model.TenthMarkModel{StudentID: studentID}, studentID, u); err != nil {
				return err
			}
			updated += len(u)
		}
		if u := req.TwelfthUpdates(); len(u) > 0 {
			if err := upsertByStudent(tx, &model.TwelfthMarkModel{StudentID: studentID}, studentID, u); err != nil {
				return err
			}
			updated += len(u)
		}
		if u := req.CounsellingUpdates(); len(u) > 0 {
			var n int64
			if err := tx.Model(&model.CounsellingDetailModel{}).
				Where("student_id = ?", studentID).Count(&n).Error; err != nil {
				return err
			}
			if n > 0 {
				if err := tx.Model(&model.CounsellingDetailModel{}).
					Where("student_id = ?", studentID).Updates(u).Error; err != nil {
					return err
				}
			} else {
				row := model.CounsellingDetailModel{StudentID: studentID}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
				if err := tx.Model(&model.CounsellingDetailModel{}).
					Where("counselling_id = ?", row.CounsellingID).Updates(u).Error; err != nil {
					return err
				}
			}
			updated += len(u)
		}
		return nil
	})
	if err != nil {
		return helper.JsonDBError(c, err, "student")
	}

	return helper.JsonSuccess(c, "Student "+studentID+" updated successfully", fiber.Map{
		"student_id":     studentID,
		"updated_fields": updated,
	})
}

// upsertByStudent updates the student-keyed row when present, or inserts it
// first and then applies the column map.
func upsertByStudent(tx *gorm.DB, blank any, studentID string, updates map[string]any) error {
	var n int64
	if err := tx.Model(blank).Where("student_id = ?", studentID).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		if err := tx.Create(blank).Error; err != nil {
			return err
		}
	}
	return tx.Model(blank).Where("student_id = ?", studentID).Updates(updates).Error
}

// Delete removes the student and every related record.
func (sc *StudentController) Delete(c *fiber.Ctx) error {
	studentID := c.Params("student_id")

	var exists int64
	if err := sc.DB.Model(&model.StudentModel{}).
		Where("student_id = ?", studentID).Count(&exists).Error; err != nil {
		return helper.JsonDBError(c, err, "student")
	}
	if exists == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Student "+studentID+" not found")
	}

	err := sc.DB.Transaction(func(tx *gorm.DB) error {
		for _, m := range []any{
			&model.CounsellingDetailModel{},
			&model.EntranceExamModel{},
			&model.TwelfthMarkModel{},
			&model.TenthMarkModel{},
			&model.ParentInfoModel{},
		} {
			if err := tx.Where("student_id = ?", studentID).Delete(m).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&model.StudentModel{}, "student_id = ?", studentID).Error
	})
	if err != nil {
		return helper.JsonDBError(c, err, "student")
	}

	return helper.JsonSuccess(c, "Student "+studentID+" deleted successfully", fiber.Map{
		"student_id": studentID,
	})
}

// Template describes the upload sheet: required and optional column groups.
func (sc *StudentController) Template(c *fiber.Ctx) error {
	columns := fiber.Map{
		"required": []string{"student_id", "student_name"},
		"optional_student_info": []string{
			"dob", "grade", "community", "enrollment_year", "course", "branch",
			"gender", "student_mobile", "aadhar_no", "apaar_id", "email", "school_name",
		},
		"optional_parent_info": []string{
			"guardian_name", "guardian_occupation", "guardian_mobile", "guardian_email",
			"father_name", "father_occupation", "father_mobile", "father_email",
			"mother_name", "mother_occupation", "mother_mobile", "mother_email",
			"sibling_name", "sibling_grade", "sibling_school", "sibling_college",
		},
		"optional_10th_marks": []string{
			"tenth_school_name", "tenth_year_of_passing", "tenth_board_of_study",
			"tenth_english", "tenth_tamil", "tenth_hindi", "tenth_maths",
			"tenth_science", "tenth_social_science", "tenth_total_marks",
		},
		"optional_12th_marks": []string{
			"twelfth_school_name", "twelfth_year_of_passing", "twelfth_board_of_study",
			"twelfth_english", "twelfth_tamil", "twelfth_physics", "twelfth_chemistry",
			"twelfth_maths", "twelfth_biology", "twelfth_computer_science", "twelfth_total_marks",
		},
		"optional_entrance_exam": []string{
			"entrance_exam_name", "entrance_physics_marks", "entrance_chemistry_marks",
			"entrance_maths_marks", "entrance_biology_marks", "entrance_total_marks",
			"entrance_overall_rank", "entrance_community_rank",
		},
		"optional_counselling": []string{
			"counselling_forum", "counselling_round", "counselling_college_alloted",
			"counselling_year_of_completion",
		},
	}

	return helper.JsonSuccess(c, "Excel template column specifications", fiber.Map{
		"columns": columns,
		"notes": []string{
			"Only 'student_id' and 'student_name' are required",
			"All other columns are optional",
			"Date format for 'dob': YYYY-MM-DD or DD/MM/YYYY",
			"For entrance exams, only one exam per row is supported",
			"batch_id will be provided during upload, not in Excel file",
		},
	})
}
