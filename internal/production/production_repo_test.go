package production_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Ammu12wqasr42/Manufacturing-Dashboard/internal/production"
)

func setupRepoTest(t *testing.T) (production.Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return production.NewRepository(gormDB), mock
}

func TestRepository_FindAll_Filters(t *testing.T) {
	repo, mock := setupRepoTest(t)

	recordID := uuid.New()
	recordedBy := uuid.New()
	day := time.Date(2026, 8, 21, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "line_no", "model_name", "plan_qty", "actual_qty", "date", "recorded_by"}).
		AddRow(recordID, "BE-01", "X100", int64(100), int64(95), day, recordedBy)

	mock.ExpectQuery(`SELECT \* FROM "production_records" WHERE line_no = \$1 AND shift_name = \$2 AND \(date >= \$3 AND date < \$4\) ORDER BY date DESC`).
		WithArgs("BE-01", "A", day, day.AddDate(0, 0, 1)).
		WillReturnRows(rows)

	// Preload("Recorder") issues a second query against users.
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE "users"\."id" = \$1`).
		WithArgs(recordedBy).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}).
			AddRow(recordedBy, "John Operator", "operator@example.com"))

	result, err := repo.FindAll(context.Background(), production.Filter{
		LineNo: "BE-01",
		Shift:  "A",
		Date:   &day,
	})

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "BE-01", result[0].LineNo)
	require.NotNil(t, result[0].Recorder)
	assert.Equal(t, "John Operator", result[0].Recorder.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	t.Run("Deletes Existing Row", func(t *testing.T) {
		repo, mock := setupRepoTest(t)
		id := uuid.New()

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "production_records" WHERE id = \$1`).
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.Delete(context.Background(), id))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing Row Is Not Found", func(t *testing.T) {
		repo, mock := setupRepoTest(t)
		id := uuid.New()

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "production_records" WHERE id = \$1`).
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		assert.ErrorIs(t, repo.Delete(context.Background(), id), gorm.ErrRecordNotFound)
	})
}
