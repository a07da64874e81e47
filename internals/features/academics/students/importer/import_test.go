// file: internals/features/academics/students/importer/import_test.go
package importer

import (
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func sheetRow(index int, studentID, studentName string) Row {
	return Row{
		Index: index,
		Fields: map[string]string{
			"student_id":   studentID,
			"student_name": studentName,
		},
	}
}

func dupErr() error {
	return &pgconn.PgError{Severity: "ERROR", Code: "23505", Message: "duplicate key value"}
}

func expectSavepoint(mock sqlmock.Sqlmock) {
	mock.ExpectExec(`SAVEPOINT student_row`).WillReturnResult(sqlmock.NewResult(0, 0))
}

func expectRollbackTo(mock sqlmock.Sqlmock) {
	mock.ExpectExec(`ROLLBACK TO SAVEPOINT student_row`).WillReturnResult(sqlmock.NewResult(0, 0))
}

// A row that hits a duplicate student_id rolls back to its savepoint and the
// surrounding rows still land, sub-records included.
func TestImportDuplicateRowIsolated(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	// row 2: clean
	expectSavepoint(mock)
	mock.ExpectExec(`INSERT INTO "student"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO "parent_info"`).WillReturnResult(sqlmock.NewResult(0, 1))
	// row 3: duplicate student_id, rolled back before anything else is written
	expectSavepoint(mock)
	mock.ExpectExec(`INSERT INTO "student"`).WillReturnError(dupErr())
	expectRollbackTo(mock)
	// row 4: clean again after the rollback
	expectSavepoint(mock)
	mock.ExpectExec(`INSERT INTO "student"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO "parent_info"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	out, err := Import(db, 7, []Row{
		sheetRow(2, "STU001", "Asha"),
		sheetRow(3, "STU001", "Asha again"),
		sheetRow(4, "STU002", "Vikram"),
	})
	require.NoError(t, err)

	assert.Equal(t, 2, out.SuccessCount)
	assert.Equal(t, 1, out.ErrorCount)
	require.Len(t, out.Errors, 1)
	assert.Equal(t, 3, out.Errors[0].Row)
	assert.Equal(t, "STU001", out.Errors[0].StudentID)
	assert.Equal(t, "Student STU001 already exists in the database", out.Errors[0].Error)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Non-duplicate row failures keep the raw driver text out of the outcome.
func TestImportGenericRowError(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	expectSavepoint(mock)
	mock.ExpectExec(`INSERT INTO "student"`).
		WillReturnError(&pgconn.PgError{Severity: "ERROR", Code: "22001", Message: "value too long for type"})
	expectRollbackTo(mock)
	mock.ExpectCommit()

	out, err := Import(db, 7, []Row{sheetRow(2, "STU001", "Asha")})
	require.NoError(t, err)

	assert.Equal(t, 0, out.SuccessCount)
	assert.Equal(t, 1, out.ErrorCount)
	require.Len(t, out.Errors, 1)
	assert.Equal(t, "Row could not be saved for student STU001", out.Errors[0].Error)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ErrorCount keeps counting past the reporting cap; the detail list stops
// at ten entries.
func TestImportErrorListTruncated(t *testing.T) {
	db, mock := newMockDB(t)

	const failing = 12

	mock.ExpectBegin()
	for i := 0; i < failing; i++ {
		expectSavepoint(mock)
		mock.ExpectExec(`INSERT INTO "student"`).WillReturnError(dupErr())
		expectRollbackTo(mock)
	}
	mock.ExpectCommit()

	rows := make([]Row, 0, failing)
	for i := 0; i < failing; i++ {
		rows = append(rows, sheetRow(i+2, fmt.Sprintf("STU%03d", i), "Dup"))
	}

	out, err := Import(db, 7, rows)
	require.NoError(t, err)

	assert.Equal(t, 0, out.SuccessCount)
	assert.Equal(t, failing, out.ErrorCount)
	assert.Len(t, out.Errors, maxReportedErrors)
	assert.Equal(t, 2, out.Errors[0].Row)
	assert.Equal(t, maxReportedErrors+1, out.Errors[len(out.Errors)-1].Row)
	assert.NoError(t, mock.ExpectationsWereMet())
}
