package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/presensi-app/presensi-backend-go/internal/domain/attendance"
	"github.com/presensi-app/presensi-backend-go/internal/domain/user"
	"github.com/presensi-app/presensi-backend-go/internal/pkg/clock"
)

type fakeAttendanceRepo struct {
	records map[string]*attendance.Record // keyed by ID
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]*attendance.Record)}
}

func (f *fakeAttendanceRepo) Create(_ context.Context, rec attendance.Record) error {
	for _, existing := range f.records {
		if existing.UserID == rec.UserID && attendance.SameDate(existing.Date, rec.Date) {
			return attendance.ErrDuplicateRecord
		}
	}
	clone := rec
	f.records[rec.ID] = &clone
	return nil
}

func (f *fakeAttendanceRepo) GetByUserAndDate(_ context.Context, userID string, date time.Time) (*attendance.Record, error) {
	for _, rec := range f.records {
		if rec.UserID == userID && attendance.SameDate(rec.Date, date) {
			clone := *rec
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) FillSlot(_ context.Context, id string, slot attendance.Slot, t time.Time, status attendance.Status) (bool, error) {
	rec, ok := f.records[id]
	if !ok {
		return false, attendance.ErrRecordNotFound
	}
	if !rec.Fill(slot, t) {
		return false, nil
	}
	rec.Status = status
	return true, nil
}

func (f *fakeAttendanceRepo) UpdateStatus(_ context.Context, id string, from, to attendance.Status) (bool, error) {
	rec, ok := f.records[id]
	if !ok {
		return false, attendance.ErrRecordNotFound
	}
	if rec.Status != from {
		return false, nil
	}
	rec.Status = to
	return true, nil
}

func (f *fakeAttendanceRepo) ListByUser(_ context.Context, userID string) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range f.records {
		if rec.UserID == userID {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListByUserAndDateRange(_ context.Context, userID string, start, end time.Time) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range f.records {
		if rec.UserID != userID {
			continue
		}
		if attendance.DateBefore(rec.Date, start) || attendance.DateBefore(end, rec.Date) {
			continue
		}
		out = append(out, *rec)
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListByDate(_ context.Context, date time.Time) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range f.records {
		if attendance.SameDate(rec.Date, date) {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListByDateRange(_ context.Context, start, end time.Time) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range f.records {
		if attendance.DateBefore(rec.Date, start) || attendance.DateBefore(end, rec.Date) {
			continue
		}
		out = append(out, *rec)
	}
	return out, nil
}

type fakeUserRepo struct {
	users map[string]user.User
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(context.Context, string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}
func (f *fakeUserRepo) Create(_ context.Context, u user.User) (user.User, error) { return u, nil }
func (f *fakeUserRepo) ExistsByEmail(context.Context, string) (bool, error)      { return false, nil }
func (f *fakeUserRepo) ListActive(context.Context) ([]user.User, error)          { return nil, nil }
func (f *fakeUserRepo) List(context.Context) ([]user.User, error)                { return nil, nil }
func (f *fakeUserRepo) Update(context.Context, string, user.UpdateUserRequest) error {
	return nil
}
func (f *fakeUserRepo) UpdateRole(context.Context, string, user.Role) error      { return nil }
func (f *fakeUserRepo) UpdatePassword(context.Context, string, string) error     { return nil }
func (f *fakeUserRepo) UpdatePhotoPath(context.Context, string, string) error    { return nil }
func (f *fakeUserRepo) SetActive(context.Context, string, bool) error            { return nil }

func newTestService(now time.Time) (attendance.Service, *fakeAttendanceRepo) {
	repo := newFakeAttendanceRepo()
	users := &fakeUserRepo{users: map[string]user.User{
		"u1": {ID: "u1", Name: "Sari", Role: user.RoleUser, Active: true},
	}}
	return NewAttendanceService(repo, users, clock.Fixed{T: now}), repo
}

func jakartaTime(year int, month time.Month, day, hour, min int) time.Time {
	loc, _ := time.LoadLocation("Asia/Jakarta")
	return time.Date(year, month, day, hour, min, 0, 0, loc)
}

func TestClockIn_FirstPressCreatesRecord(t *testing.T) {
	// Monday morning inside the window.
	svc, repo := newTestService(jakartaTime(2025, 3, 3, 7, 45))

	resp, err := svc.ClockIn(context.Background(), "u1", attendance.ClockInRequest{Slot: "morning"})
	require.NoError(t, err)

	assert.True(t, resp.Accepted)
	assert.NotNil(t, resp.Record.MorningTime)
	assert.Equal(t, string(attendance.StatusPending), resp.Record.Status)
	assert.Len(t, repo.records, 1)
}

func TestClockIn_RepeatPressKeepsFirstTimestamp(t *testing.T) {
	svc, _ := newTestService(jakartaTime(2025, 3, 3, 7, 45))
	ctx := context.Background()

	first, err := svc.ClockIn(ctx, "u1", attendance.ClockInRequest{Slot: "morning"})
	require.NoError(t, err)

	second, err := svc.ClockIn(ctx, "u1", attendance.ClockInRequest{Slot: "morning"})
	require.NoError(t, err)

	assert.False(t, second.Accepted)
	assert.Equal(t, first.Record.MorningTime, second.Record.MorningTime)
}

func TestClockIn_FullDayBecomesValid(t *testing.T) {
	repo := newFakeAttendanceRepo()
	users := &fakeUserRepo{users: map[string]user.User{
		"u1": {ID: "u1", Name: "Sari", Role: user.RoleUser, Active: true},
	}}
	ctx := context.Background()

	steps := []struct {
		at   time.Time
		slot string
	}{
		{jakartaTime(2025, 3, 3, 7, 45), "morning"},
		{jakartaTime(2025, 3, 3, 12, 30), "midday"},
		{jakartaTime(2025, 3, 3, 16, 30), "evening"},
	}
	var last attendance.ClockInResponse
	for _, step := range steps {
		svc := NewAttendanceService(repo, users, clock.Fixed{T: step.at})
		resp, err := svc.ClockIn(ctx, "u1", attendance.ClockInRequest{Slot: step.slot})
		require.NoError(t, err)
		assert.True(t, resp.Accepted)
		last = resp
	}

	assert.Equal(t, string(attendance.StatusValid), last.Record.Status)
}

func TestClockIn_OutsideWindowStaysRecordedButLate(t *testing.T) {
	// Morning press at 09:00 is kept, marked late in the response, and the
	// day can no longer become Valid.
	svc, _ := newTestService(jakartaTime(2025, 3, 3, 9, 0))

	resp, err := svc.ClockIn(context.Background(), "u1", attendance.ClockInRequest{Slot: "morning"})
	require.NoError(t, err)

	assert.True(t, resp.Accepted)
	require.NotNil(t, resp.Record.MorningTime)
	assert.Equal(t, attendance.TimelinessLate, resp.Record.MorningStatus)
}

func TestClockIn_UnknownSlotRejected(t *testing.T) {
	svc, repo := newTestService(jakartaTime(2025, 3, 3, 7, 45))

	_, err := svc.ClockIn(context.Background(), "u1", attendance.ClockInRequest{Slot: "night"})
	assert.ErrorIs(t, err, attendance.ErrUnknownSlot)
	assert.Empty(t, repo.records, "a rejected slot must not create a record")
}

func TestClockIn_MissingSlotRejected(t *testing.T) {
	svc, repo := newTestService(jakartaTime(2025, 3, 3, 7, 45))

	_, err := svc.ClockIn(context.Background(), "u1", attendance.ClockInRequest{})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, attendance.ErrUnknownSlot)
	assert.Empty(t, repo.records)
}

func TestClockIn_UnknownUserRejected(t *testing.T) {
	svc, _ := newTestService(jakartaTime(2025, 3, 3, 7, 45))

	_, err := svc.ClockIn(context.Background(), "ghost", attendance.ClockInRequest{Slot: "morning"})
	assert.ErrorIs(t, err, attendance.ErrUserNotFound)
}

func TestTodayRecord_NilWhenAbsent(t *testing.T) {
	svc, _ := newTestService(jakartaTime(2025, 3, 3, 10, 0))

	rec, err := svc.TodayRecord(context.Background(), "u1")
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestRecomputeRange_SettlesStalePending(t *testing.T) {
	repo := newFakeAttendanceRepo()
	users := &fakeUserRepo{users: map[string]user.User{
		"u1": {ID: "u1", Name: "Sari", Role: user.RoleUser, Active: true},
	}}
	ctx := context.Background()

	// Clock in only the morning slot on Monday, leaving the day Pending.
	svc := NewAttendanceService(repo, users, clock.Fixed{T: jakartaTime(2025, 3, 3, 7, 45)})
	_, err := svc.ClockIn(ctx, "u1", attendance.ClockInRequest{Slot: "morning"})
	require.NoError(t, err)

	// Recompute the next day: the incomplete record must settle to Invalid.
	later := NewAttendanceService(repo, users, clock.Fixed{T: jakartaTime(2025, 3, 4, 2, 0)})
	changed, err := later.RecomputeRange(ctx, attendance.RangeFilter{
		StartDate: "2025-03-01",
		EndDate:   "2025-03-31",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, changed)

	recs, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, attendance.StatusInvalid, recs[0].Status)
}

func TestRecomputeRange_IdempotentSecondRun(t *testing.T) {
	repo := newFakeAttendanceRepo()
	users := &fakeUserRepo{users: map[string]user.User{
		"u1": {ID: "u1", Name: "Sari", Role: user.RoleUser, Active: true},
	}}
	ctx := context.Background()

	svc := NewAttendanceService(repo, users, clock.Fixed{T: jakartaTime(2025, 3, 3, 7, 45)})
	_, err := svc.ClockIn(ctx, "u1", attendance.ClockInRequest{Slot: "morning"})
	require.NoError(t, err)

	later := NewAttendanceService(repo, users, clock.Fixed{T: jakartaTime(2025, 3, 4, 2, 0)})
	filter := attendance.RangeFilter{StartDate: "2025-03-01", EndDate: "2025-03-31"}

	changed, err := later.RecomputeRange(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, 1, changed)

	changed, err = later.RecomputeRange(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, 0, changed)
}

func TestHistoryRange_InvalidFilterRejected(t *testing.T) {
	svc, _ := newTestService(jakartaTime(2025, 3, 3, 10, 0))

	_, err := svc.HistoryRange(context.Background(), "u1", attendance.RangeFilter{
		StartDate: "2025-03-10",
		EndDate:   "2025-03-01",
	})
	assert.Error(t, err)
}
