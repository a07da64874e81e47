// file: internals/features/academics/feedback/controller/feedback_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"gurukul_backend/internals/features/academics/feedback/dto"
	"gurukul_backend/internals/features/academics/feedback/model"
	"gurukul_backend/internals/features/academics/students/importer"
	StudentModel "gurukul_backend/internals/features/academics/students/model"
	helper "gurukul_backend/internals/helpers"
)

type FeedbackController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewFeedbackController(db *gorm.DB) *FeedbackController {
	return &FeedbackController{DB: db, Validate: validator.New()}
}

func (fc *FeedbackController) Create(c *fiber.Ctx) error {
	var req dto.FeedbackCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := fc.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var student StudentModel.StudentModel
	err := fc.DB.Select("student_id").First(&student, "student_id = ?", req.StudentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "Student "+req.StudentID+" not found")
	}
	if err != nil {
		return helper.JsonDBError(c, err, "student")
	}

	feedbackDate := (*datatypes.Date)(nil)
	if req.FeedbackDate != nil {
		feedbackDate = importer.ParseDate(*req.FeedbackDate)
	}
	if feedbackDate == nil {
		today := datatypes.Date(time.Now())
		feedbackDate = &today
	}

	fb := model.FeedbackModel{
		StudentID:                 req.StudentID,
		FeedbackDate:              feedbackDate,
		TeacherFeedback:           req.TeacherFeedback,
		Suggestions:               req.Suggestions,
		AcademicDirectorSignature: req.AcademicDirectorSignature,
		StudentSignature:          req.StudentSignature,
		ParentSignature:           req.ParentSignature,
	}
	if err := fc.DB.Create(&fb).Error; err != nil {
		return helper.JsonDBError(c, err, "feedback")
	}

	return helper.JsonSuccessWithCode(c, fiber.StatusCreated, "Feedback saved successfully", fiber.Map{
		"feedback_id":   fb.FeedbackID,
		"feedback_date": dto.FormatDate(fb.FeedbackDate),
		"created_at":    fb.CreatedAt.Format(time.RFC3339),
	})
}

func (fc *FeedbackController) ListByStudent(c *fiber.Ctx) error {
	studentID := c.Params("student_id")

	var rows []model.FeedbackModel
	err := fc.DB.Where("student_id = ?", studentID).
		Order("feedback_date DESC").Find(&rows).Error
	if err != nil {
		return helper.JsonDBError(c, err, "feedback")
	}

	out := make([]dto.FeedbackResponse, 0, len(rows))
	for _, fb := range rows {
		out = append(out, dto.ToFeedbackResponse(fb))
	}
	return helper.JsonSuccess(c, "OK", fiber.Map{
		"student_id": studentID,
		"feedback":   out,
		"count":      len(out),
	})
}
