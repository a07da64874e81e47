// file: internals/features/users/auth/service/auth_service.go
package service

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"gurukul_backend/internals/configs"
	"gurukul_backend/internals/constants"
	"gurukul_backend/internals/features/users/auth/dto"
	"gurukul_backend/internals/features/users/auth/model"
	helper "gurukul_backend/internals/helpers"
)

var validate = validator.New()

// Register creates a user with a short uuid id and a bcrypt password hash.
func Register(db *gorm.DB, c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return helper.JsonValidationError(c, verrs)
		}
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if !constants.IsValidRole(req.Role) {
		return fiber.NewError(fiber.StatusBadRequest,
			"role must be one of: "+strings.Join(constants.ValidRoles, ", "))
	}

	var existing model.UserModel
	err := db.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		return fiber.NewError(fiber.StatusConflict, "An account with this email already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonDBError(c, err, "user")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := model.UserModel{
		ID:       uuid.NewString()[:8],
		Email:    req.Email,
		Password: string(hashed),
		Role:     req.Role,
	}
	if err := db.Create(&user).Error; err != nil {
		if helper.IsDuplicate(err) {
			return fiber.NewError(fiber.StatusConflict, "An account with this email already exists")
		}
		return helper.JsonDBError(c, err, "user")
	}

	access, refresh, err := IssueTokens(user)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to issue tokens")
	}

	return helper.JsonSuccessWithCode(c, fiber.StatusCreated, "Registration successful", dto.AuthResponse{
		User:         dto.ToUserResponse(user),
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "bearer",
	})
}

// Login verifies credentials and returns a fresh token pair. Unknown email
// and wrong password share one message.
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return helper.JsonValidationError(c, verrs)
		}
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var user model.UserModel
	if err := db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
		}
		return helper.JsonDBError(c, err, "user")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
	}

	access, refresh, err := IssueTokens(user)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to issue tokens")
	}

	return helper.JsonSuccess(c, "Login successful", dto.AuthResponse{
		User:         dto.ToUserResponse(user),
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "bearer",
	})
}

// Refresh exchanges a valid refresh token for a new pair.
func Refresh(db *gorm.DB, c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "refresh_token is required")
	}

	claims := jwt.MapClaims{}
	tok, err := jwt.ParseWithClaims(req.RefreshToken, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired refresh token")
	}
	if typ, _ := claims["type"].(string); typ != "refresh" {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid token type")
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "Token missing user identity")
	}

	var user model.UserModel
	if err := db.First(&user, "id = ?", sub).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, "User no longer exists")
		}
		return helper.JsonDBError(c, err, "user")
	}

	access, refresh, err := IssueTokens(user)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to issue tokens")
	}

	return helper.JsonSuccess(c, "Token refreshed", dto.AuthResponse{
		User:         dto.ToUserResponse(user),
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "bearer",
	})
}

// IssueTokens signs the access/refresh pair for one user.
func IssueTokens(user model.UserModel) (access string, refresh string, err error) {
	now := time.Now()

	access, err = jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  user.Role,
		"type":  "access",
		"iat":   now.Unix(),
		"exp":   now.Add(configs.AccessTokenTTL).Unix(),
	}).SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return "", "", err
	}

	refresh, err = jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  user.ID,
		"type": "refresh",
		"iat":  now.Unix(),
		"exp":  now.Add(configs.RefreshTokenTTL).Unix(),
	}).SignedString([]byte(configs.JWTRefreshSecret))
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}
