// file: internals/features/users/auth/dto/auth_dto_test.go
package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gurukul_backend/internals/constants"
)

func TestRegisterRequestNormalize(t *testing.T) {
	req := RegisterRequest{Email: "  Asha@Example.COM ", Role: " Admin "}
	req.Normalize()
	assert.Equal(t, "asha@example.com", req.Email)
	assert.Equal(t, constants.RoleAdmin, req.Role)
}

func TestRegisterRequestNormalizeDefaultsRole(t *testing.T) {
	req := RegisterRequest{Email: "asha@example.com"}
	req.Normalize()
	assert.Equal(t, constants.RoleTeacher, req.Role)
}
