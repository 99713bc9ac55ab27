package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/presensi-app/presensi-backend-go/internal/domain/attendance"
	"github.com/presensi-app/presensi-backend-go/internal/domain/user"
	"github.com/presensi-app/presensi-backend-go/internal/repository/postgresql"
)

func createAttendanceTestUser(t *testing.T, ctx context.Context) user.User {
	t.Helper()

	repo := postgresql.NewUserRepository(testDB)
	created, err := repo.Create(ctx, user.User{
		ID:           uuid.NewString(),
		Name:         "Sari Wulandari",
		Email:        uuid.NewString() + "@example.com",
		PasswordHash: "not-a-real-hash",
		Role:         user.RoleUser,
		Active:       true,
	})
	require.NoError(t, err)
	return created
}

func TestAttendanceRepository_CreateAndGet(t *testing.T) {
	db := requireTestDB(t)
	truncateTables(t, db)
	ctx := context.Background()

	u := createAttendanceTestUser(t, ctx)
	repo := postgresql.NewAttendanceRepository(db)

	date := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	morning := time.Date(2025, 3, 3, 7, 45, 0, 0, time.UTC)

	rec := attendance.Record{
		ID:      uuid.NewString(),
		UserID:  u.ID,
		Date:    date,
		Morning: &morning,
		Status:  attendance.StatusPending,
	}
	require.NoError(t, repo.Create(ctx, rec))

	got, err := repo.GetByUserAndDate(ctx, u.ID, date)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, rec.ID, got.ID)
	assert.Equal(t, attendance.StatusPending, got.Status)
	require.NotNil(t, got.Morning)
	assert.Nil(t, got.Midday)
	require.NotNil(t, got.UserName)
	assert.Equal(t, u.Name, *got.UserName)
}

func TestAttendanceRepository_DuplicateDateRejected(t *testing.T) {
	db := requireTestDB(t)
	truncateTables(t, db)
	ctx := context.Background()

	u := createAttendanceTestUser(t, ctx)
	repo := postgresql.NewAttendanceRepository(db)

	date := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	first := attendance.Record{ID: uuid.NewString(), UserID: u.ID, Date: date, Status: attendance.StatusPending}
	require.NoError(t, repo.Create(ctx, first))

	second := attendance.Record{ID: uuid.NewString(), UserID: u.ID, Date: date, Status: attendance.StatusPending}
	err := repo.Create(ctx, second)
	assert.ErrorIs(t, err, attendance.ErrDuplicateRecord)
}

func TestAttendanceRepository_FillSlotFirstWriterWins(t *testing.T) {
	db := requireTestDB(t)
	truncateTables(t, db)
	ctx := context.Background()

	u := createAttendanceTestUser(t, ctx)
	repo := postgresql.NewAttendanceRepository(db)

	date := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	rec := attendance.Record{ID: uuid.NewString(), UserID: u.ID, Date: date, Status: attendance.StatusPending}
	require.NoError(t, repo.Create(ctx, rec))

	first := time.Date(2025, 3, 3, 12, 10, 0, 0, time.UTC)
	ok, err := repo.FillSlot(ctx, rec.ID, attendance.SlotMidday, first, attendance.StatusPending)
	require.NoError(t, err)
	assert.True(t, ok)

	second := time.Date(2025, 3, 3, 12, 15, 0, 0, time.UTC)
	ok, err = repo.FillSlot(ctx, rec.ID, attendance.SlotMidday, second, attendance.StatusPending)
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := repo.GetByUserAndDate(ctx, u.ID, date)
	require.NoError(t, err)
	require.NotNil(t, got.Midday)
	assert.True(t, got.Midday.Equal(first))
}

func TestAttendanceRepository_UpdateStatusOptimistic(t *testing.T) {
	db := requireTestDB(t)
	truncateTables(t, db)
	ctx := context.Background()

	u := createAttendanceTestUser(t, ctx)
	repo := postgresql.NewAttendanceRepository(db)

	date := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	rec := attendance.Record{ID: uuid.NewString(), UserID: u.ID, Date: date, Status: attendance.StatusPending}
	require.NoError(t, repo.Create(ctx, rec))

	ok, err := repo.UpdateStatus(ctx, rec.ID, attendance.StatusPending, attendance.StatusInvalid)
	require.NoError(t, err)
	assert.True(t, ok)

	// The stored status is no longer Pending, so the same transition loses.
	ok, err = repo.UpdateStatus(ctx, rec.ID, attendance.StatusPending, attendance.StatusValid)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAttendanceRepository_ListByDateRange(t *testing.T) {
	db := requireTestDB(t)
	truncateTables(t, db)
	ctx := context.Background()

	u := createAttendanceTestUser(t, ctx)
	repo := postgresql.NewAttendanceRepository(db)

	for day := 3; day <= 7; day++ {
		rec := attendance.Record{
			ID:     uuid.NewString(),
			UserID: u.ID,
			Date:   time.Date(2025, 3, day, 0, 0, 0, 0, time.UTC),
			Status: attendance.StatusInvalid,
		}
		require.NoError(t, repo.Create(ctx, rec))
	}

	recs, err := repo.ListByDateRange(ctx,
		time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 6, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	assert.Len(t, recs, 3)
}
