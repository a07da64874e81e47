// file: internals/features/academics/achievers/controller/achiever_controller.go
package controller

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gurukul_backend/internals/features/academics/achievers/dto"
	"gurukul_backend/internals/features/academics/achievers/model"
	StudentModel "gurukul_backend/internals/features/academics/students/model"
	helper "gurukul_backend/internals/helpers"
)

const achieverJoinSelect = `a.achievement_id, a.student_id, s.student_name, s.gender, s.dob,
	s.community, s.enrollment_year, s.course, s.branch, s.student_mobile, s.aadhar_no,
	s.email, s.grade, s.photo_url AS student_photo, a.batch_id, b.batch_name,
	b.start_year, b.end_year, a.achievement, a.achievement_details, a.rank, a.score,
	a.photo_url AS achievement_photo, a.achieved_date`

type AchieverController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAchieverController(db *gorm.DB) *AchieverController {
	return &AchieverController{DB: db, Validate: validator.New()}
}

func (acc *AchieverController) joined() *gorm.DB {
	return acc.DB.Table("achievers a").
		Select(achieverJoinSelect).
		Joins("JOIN student s ON a.student_id = s.student_id").
		Joins("LEFT JOIN batch b ON a.batch_id = b.batch_id")
}

func (acc *AchieverController) List(c *fiber.Ctx) error {
	var rows []dto.AchieverJoined
	if err := acc.joined().Order("a.created_at DESC").Scan(&rows).Error; err != nil {
		return helper.JsonDBError(c, err, "achiever")
	}

	out := make([]map[string]interface{}, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ToAchieverListItem(r))
	}
	return helper.JsonSuccess(c, "OK", fiber.Map{
		"achievers": out,
		"total":     len(out),
	})
}

func (acc *AchieverController) Get(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("achievement_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "achievement_id must be an integer")
	}

	var row dto.AchieverJoined
	err = acc.joined().Where("a.achievement_id = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "Achiever not found")
	}
	if err != nil {
		return helper.JsonDBError(c, err, "achiever")
	}
	return helper.JsonSuccess(c, "OK", dto.ToAchieverDetail(row))
}

func (acc *AchieverController) Create(c *fiber.Ctx) error {
	var req dto.AchieverCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := acc.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var student StudentModel.StudentModel
	err := acc.DB.Select("student_id").First(&student, "student_id = ?", req.StudentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusNotFound,
			"Student with ID '"+req.StudentID+"' not found. The student must be registered before adding as an achiever.")
	}
	if err != nil {
		return helper.JsonDBError(c, err, "student")
	}

	achiever := model.AchieverModel{
		StudentID:          req.StudentID,
		BatchID:            req.BatchID,
		Achievement:        req.Achievement,
		AchievementDetails: req.AchievementDetails,
		Rank:               req.Rank,
		Score:              req.Score,
		PhotoURL:           req.PhotoURL,
		AchievedDate:       dto.ParseAchievedDate(req.AchievedDate),
	}
	if err := acc.DB.Create(&achiever).Error; err != nil {
		return helper.JsonDBError(c, err, "achiever")
	}

	return helper.JsonSuccessWithCode(c, fiber.StatusCreated, "Achiever added successfully!", fiber.Map{
		"achievement_id": achiever.AchievementID,
		"created_at":     achiever.CreatedAt,
	})
}

func (acc *AchieverController) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("achievement_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "achievement_id must be an integer")
	}

	var req dto.AchieverUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := acc.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if req.Achievement != nil {
		updates["achievement"] = *req.Achievement
	}
	if req.AchievementDetails != nil {
		updates["achievement_details"] = *req.AchievementDetails
	}
	if req.Rank != nil {
		updates["rank"] = *req.Rank
	}
	if req.Score != nil {
		updates["score"] = *req.Score
	}
	if req.PhotoURL != nil {
		updates["photo_url"] = *req.PhotoURL
	}
	if d := dto.ParseAchievedDate(req.AchievedDate); d != nil {
		updates["achieved_date"] = *d
	}
	if len(updates) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "No fields to update")
	}

	res := acc.DB.Model(&model.AchieverModel{}).
		Where("achievement_id = ?", id).Updates(updates)
	if res.Error != nil {
		return helper.JsonDBError(c, res.Error, "achiever")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Achiever not found")
	}
	return helper.JsonSuccess(c, "Achiever updated successfully", fiber.Map{"achievement_id": id})
}

func (acc *AchieverController) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("achievement_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "achievement_id must be an integer")
	}

	res := acc.DB.Delete(&model.AchieverModel{}, "achievement_id = ?", id)
	if res.Error != nil {
		return helper.JsonDBError(c, res.Error, "achiever")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Achiever not found")
	}
	return helper.JsonSuccess(c, "Achiever deleted successfully", fiber.Map{"achievement_id": id})
}
