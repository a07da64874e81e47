package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidRole(t *testing.T) {
	for _, role := range ValidRoles {
		assert.True(t, IsValidRole(role), role)
	}
	assert.False(t, IsValidRole("admin"))
	assert.False(t, IsValidRole("Superuser"))
	assert.False(t, IsValidRole(""))
}
