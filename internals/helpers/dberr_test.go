// file: internals/helpers/dberr_test.go
package helper

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func pgError(code string) error {
	return fmt.Errorf("insert failed: %w", &pgconn.PgError{Code: code})
}

func TestIsDuplicate(t *testing.T) {
	assert.True(t, IsDuplicate(pgError("23505")))
	assert.False(t, IsDuplicate(pgError("23503")))
	assert.False(t, IsDuplicate(errors.New("plain error")))
	assert.False(t, IsDuplicate(nil))
}

func TestIsForeignKey(t *testing.T) {
	assert.True(t, IsForeignKey(pgError("23503")))
	assert.False(t, IsForeignKey(pgError("23505")))
}

func TestDBErrorStatus(t *testing.T) {
	assert.Equal(t, fiber.StatusNotFound, DBErrorStatus(gorm.ErrRecordNotFound))
	assert.Equal(t, fiber.StatusConflict, DBErrorStatus(pgError("23505")))
	assert.Equal(t, fiber.StatusServiceUnavailable, DBErrorStatus(pgError("53300")))
	assert.Equal(t, fiber.StatusInternalServerError, DBErrorStatus(errors.New("boom")))
}
