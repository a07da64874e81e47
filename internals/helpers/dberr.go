package helper

import (
	"context"
	"errors"
	"net"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// SQLSTATE classes we care about.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgQueryCanceled       = "57014"
	pgTooManyConnections  = "53300"
)

// IsDuplicate reports whether err is a unique-constraint violation.
func IsDuplicate(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// IsForeignKey reports whether err is a foreign-key violation.
func IsForeignKey(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation
}

// DBErrorStatus maps a storage error onto an HTTP status: 404 for missing
// rows, 409 for duplicates, 503 when the pool or server is unreachable,
// 500 otherwise.
func DBErrorStatus(err error) int {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fiber.StatusNotFound
	case IsDuplicate(err):
		return fiber.StatusConflict
	case isUnavailable(err):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

// JsonDBError writes the envelope for a storage error. Driver detail never
// reaches the client; entity names the thing being operated on so the
// message stays useful.
func JsonDBError(c *fiber.Ctx, err error, entity string) error {
	status := DBErrorStatus(err)
	switch status {
	case fiber.StatusNotFound:
		return JsonError(c, status, entity+" not found")
	case fiber.StatusConflict:
		return JsonError(c, status, entity+" already exists")
	case fiber.StatusServiceUnavailable:
		return JsonError(c, status, "Database temporarily unavailable")
	default:
		return JsonError(c, status, "Internal storage error")
	}
}

func isUnavailable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgQueryCanceled || pgErr.Code == pgTooManyConnections
	}
	return false
}
