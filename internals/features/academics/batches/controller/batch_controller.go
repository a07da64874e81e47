// file: internals/features/academics/batches/controller/batch_controller.go
package controller

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"gurukul_backend/internals/features/academics/batches/dto"
	"gurukul_backend/internals/features/academics/batches/model"
	helper "gurukul_backend/internals/helpers"
)

type BatchController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewBatchController(db *gorm.DB) *BatchController {
	return &BatchController{DB: db, Validate: validator.New()}
}

func (bc *BatchController) Create(c *fiber.Ctx) error {
	var req dto.BatchCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := bc.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if req.EndYear <= req.StartYear {
		return fiber.NewError(fiber.StatusBadRequest, "end_year must be greater than start_year")
	}

	batch := req.ToModel()
	if err := bc.DB.Create(&batch).Error; err != nil {
		if helper.IsDuplicate(err) {
			return fiber.NewError(fiber.StatusConflict, "Batch with this name might already exist")
		}
		return helper.JsonDBError(c, err, "batch")
	}

	return helper.JsonSuccessWithCode(c, fiber.StatusCreated, "Batch created successfully",
		dto.ToBatchResponse(batch))
}

func (bc *BatchController) List(c *fiber.Ctx) error {
	var batches []model.BatchModel
	if err := bc.DB.Order("created_at DESC").Find(&batches).Error; err != nil {
		return helper.JsonDBError(c, err, "batch")
	}

	out := make([]dto.BatchResponse, 0, len(batches))
	for _, b := range batches {
		out = append(out, dto.ToBatchResponse(b))
	}
	return helper.JsonSuccess(c, "OK", dto.BatchListResponse{Batches: out, Count: len(out)})
}

func (bc *BatchController) Get(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("batch_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "batch_id must be an integer")
	}

	var batch model.BatchModel
	if err := bc.DB.First(&batch, "batch_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Batch "+c.Params("batch_id")+" not found")
		}
		return helper.JsonDBError(c, err, "batch")
	}
	return helper.JsonSuccess(c, "OK", dto.ToBatchResponse(batch))
}

func (bc *BatchController) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("batch_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "batch_id must be an integer")
	}

	var req dto.BatchUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := bc.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var batch model.BatchModel
	if err := bc.DB.First(&batch, "batch_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Batch "+c.Params("batch_id")+" not found")
		}
		return helper.JsonDBError(c, err, "batch")
	}

	if req.BatchName != nil {
		batch.BatchName = *req.BatchName
	}
	if req.StartYear != nil {
		batch.StartYear = *req.StartYear
	}
	if req.EndYear != nil {
		batch.EndYear = *req.EndYear
	}
	if req.Type != nil {
		batch.Type = req.Type
	}
	if req.Subjects != nil {
		batch.Subjects = pq.StringArray(req.Subjects)
	}
	if batch.EndYear <= batch.StartYear {
		return fiber.NewError(fiber.StatusBadRequest, "end_year must be greater than start_year")
	}

	if err := bc.DB.Save(&batch).Error; err != nil {
		return helper.JsonDBError(c, err, "batch")
	}
	return helper.JsonSuccess(c, "Batch updated successfully", dto.ToBatchResponse(batch))
}

func (bc *BatchController) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("batch_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "batch_id must be an integer")
	}

	res := bc.DB.Delete(&model.BatchModel{}, "batch_id = ?", id)
	if res.Error != nil {
		if helper.IsForeignKey(res.Error) {
			return fiber.NewError(fiber.StatusConflict, "Batch still has students assigned")
		}
		return helper.JsonDBError(c, res.Error, "batch")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Batch "+c.Params("batch_id")+" not found")
	}
	return helper.JsonSuccess(c, "Batch deleted successfully", fiber.Map{"batch_id": id})
}
