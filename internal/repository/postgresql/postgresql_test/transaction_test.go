package postgresql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/presensi-app/presensi-backend-go/internal/domain/attendance"
	"github.com/presensi-app/presensi-backend-go/internal/repository/postgresql"
)

func TestWithTransaction_RollbackOnError(t *testing.T) {
	db := requireTestDB(t)
	truncateTables(t, db)
	ctx := context.Background()

	u := createAttendanceTestUser(t, ctx)
	repo := postgresql.NewAttendanceRepository(db)

	date := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	boom := errors.New("boom")

	err := postgresql.WithTransaction(ctx, db, func(txCtx context.Context) error {
		if err := repo.Create(txCtx, attendance.Record{
			ID:     uuid.NewString(),
			UserID: u.ID,
			Date:   date,
			Status: attendance.StatusPending,
		}); err != nil {
			return err
		}
		return boom
	})
	assert.True(t, errors.Is(err, boom))

	got, err := repo.GetByUserAndDate(ctx, u.ID, date)
	require.NoError(t, err)
	assert.Nil(t, got, "rolled back insert must not be visible")
}

func TestWithTransaction_CommitsOnSuccess(t *testing.T) {
	db := requireTestDB(t)
	truncateTables(t, db)
	ctx := context.Background()

	u := createAttendanceTestUser(t, ctx)
	repo := postgresql.NewAttendanceRepository(db)

	date := time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)
	id := uuid.NewString()

	err := postgresql.WithTransaction(ctx, db, func(txCtx context.Context) error {
		return repo.Create(txCtx, attendance.Record{
			ID:     id,
			UserID: u.ID,
			Date:   date,
			Status: attendance.StatusPending,
		})
	})
	require.NoError(t, err)

	got, err := repo.GetByUserAndDate(ctx, u.ID, date)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, id, got.ID)
}
