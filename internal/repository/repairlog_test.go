package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"mechmate/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestRepairLogRepository_ListByVehicle(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRepairLogRepository(db)
	ctx := context.Background()

	// History is ordered by service date, most recent first.
	query := regexp.QuoteMeta(`SELECT * FROM "repair_logs" WHERE vehicle_id = $1 ORDER BY date DESC`)

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "date", "mileage", "description", "vehicle_id"}).
			AddRow(2, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), 50000, "Brake pads", 5).
			AddRow(1, time.Date(2023, 11, 1, 0, 0, 0, 0, time.UTC), 42000, "Oil change", 5)
		mock.ExpectQuery(query).WithArgs(5).WillReturnRows(rows)

		logs, err := repo.ListByVehicle(ctx, 5)
		require.NoError(t, err)
		require.Len(t, logs, 2)
		assert.Equal(t, "Brake pads", logs[0].Description)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("No Logs", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(6).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		logs, err := repo.ListByVehicle(ctx, 6)
		require.NoError(t, err)
		assert.Empty(t, logs)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepairLogRepository_GetByID_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRepairLogRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "repair_logs" WHERE "repair_logs"."id" = $1 ORDER BY "repair_logs"."id" LIMIT $2`)).
		WithArgs(99, 1).
		WillReturnError(gorm.ErrRecordNotFound)

	log, err := repo.GetByID(context.Background(), 99)
	assert.Nil(t, log)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepairLogRepository_Delete(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRepairLogRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "repair_logs" WHERE "repair_logs"."id" = $1`)).
		WithArgs(3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Delete(context.Background(), 3))
	assert.NoError(t, mock.ExpectationsWereMet())
}
