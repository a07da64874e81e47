// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gurukul_backend/internals/features/users/auth/dto"
	"gurukul_backend/internals/features/users/auth/model"
	"gurukul_backend/internals/features/users/auth/service"
	helper "gurukul_backend/internals/helpers"
	authmw "gurukul_backend/internals/middlewares/auth"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

func (ac *AuthController) Register(c *fiber.Ctx) error {
	return service.Register(ac.DB, c)
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	return service.Login(ac.DB, c)
}

func (ac *AuthController) Refresh(c *fiber.Ctx) error {
	return service.Refresh(ac.DB, c)
}

// Me returns the authenticated user's profile.
func (ac *AuthController) Me(c *fiber.Ctx) error {
	userID, ok := c.Locals(authmw.LocUserID).(string)
	if !ok || userID == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid user ID in context")
	}

	var user model.UserModel
	if err := ac.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonDBError(c, err, "user")
	}

	return helper.JsonSuccess(c, "OK", dto.ToUserResponse(user))
}

// GetUser returns a user's public profile by id.
func (ac *AuthController) GetUser(c *fiber.Ctx) error {
	var user model.UserModel
	if err := ac.DB.First(&user, "id = ?", c.Params("user_id")).Error; err != nil {
		return helper.JsonDBError(c, err, "user")
	}
	return helper.JsonSuccess(c, "OK", dto.ToUserResponse(user))
}
