package attendance

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/presensi-app/presensi-backend-go/internal/domain/attendance"
	"github.com/presensi-app/presensi-backend-go/internal/domain/user"
	"github.com/presensi-app/presensi-backend-go/internal/pkg/clock"
)

type AttendanceServiceImpl struct {
	attendance.Repository
	users user.Repository
	clock clock.Clock
}

func NewAttendanceService(
	attendanceRepo attendance.Repository,
	userRepo user.Repository,
	clk clock.Clock,
) attendance.Service {
	return &AttendanceServiceImpl{
		Repository: attendanceRepo,
		users:      userRepo,
		clock:      clk,
	}
}

// ClockIn implements attendance.Service.
//
// The day's record is created lazily on first clock-in. A slot accepts only
// the first timestamp; repeats are reported back with Accepted=false and the
// unchanged record. Status is re-evaluated after every attempt, accepted or
// not, so a stale Pending row settles as soon as anyone touches it.
func (a *AttendanceServiceImpl) ClockIn(ctx context.Context, userID string, req attendance.ClockInRequest) (attendance.ClockInResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ClockInResponse{}, err
	}
	slot, err := attendance.ParseSlot(req.Slot)
	if err != nil {
		return attendance.ClockInResponse{}, err
	}

	if _, err := a.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return attendance.ClockInResponse{}, attendance.ErrUserNotFound
		}
		return attendance.ClockInResponse{}, fmt.Errorf("failed to load user: %w", err)
	}

	now := a.clock.Now().In(a.clock.Location())
	today := clock.Today(a.clock)

	rec, err := a.Repository.GetByUserAndDate(ctx, userID, today)
	if err != nil {
		return attendance.ClockInResponse{}, fmt.Errorf("failed to load today's record: %w", err)
	}

	if rec == nil {
		created := attendance.Record{
			ID:     uuid.NewString(),
			UserID: userID,
			Date:   today,
		}
		created.Fill(slot, now)
		created.Status = attendance.Evaluate(created, now)

		if err := a.Repository.Create(ctx, created); err != nil {
			if !errors.Is(err, attendance.ErrDuplicateRecord) {
				return attendance.ClockInResponse{}, fmt.Errorf("failed to create record: %w", err)
			}
			// Another request created today's row first; fall through to
			// the update path against the winner.
			rec, err = a.Repository.GetByUserAndDate(ctx, userID, today)
			if err != nil {
				return attendance.ClockInResponse{}, fmt.Errorf("failed to reload record: %w", err)
			}
			if rec == nil {
				return attendance.ClockInResponse{}, attendance.ErrRecordNotFound
			}
		} else {
			return attendance.ClockInResponse{
				Accepted: true,
				Record:   attendance.NewRecordResponse(created),
			}, nil
		}
	}

	accepted := false
	if rec.SlotTime(slot) == nil {
		next := *rec
		next.Fill(slot, now)
		status := attendance.Evaluate(next, now)

		accepted, err = a.Repository.FillSlot(ctx, rec.ID, slot, now, status)
		if err != nil {
			return attendance.ClockInResponse{}, fmt.Errorf("failed to record slot: %w", err)
		}
	}

	// Reload so a lost race still returns whatever actually landed.
	rec, err = a.Repository.GetByUserAndDate(ctx, userID, today)
	if err != nil {
		return attendance.ClockInResponse{}, fmt.Errorf("failed to reload record: %w", err)
	}
	if rec == nil {
		return attendance.ClockInResponse{}, attendance.ErrRecordNotFound
	}

	if status := attendance.Evaluate(*rec, now); status != rec.Status {
		if _, err := a.Repository.UpdateStatus(ctx, rec.ID, rec.Status, status); err != nil {
			return attendance.ClockInResponse{}, fmt.Errorf("failed to settle status: %w", err)
		}
		rec.Status = status
	}

	return attendance.ClockInResponse{
		Accepted: accepted,
		Record:   attendance.NewRecordResponse(*rec),
	}, nil
}

// TodayRecord implements attendance.Service. Returns nil when the user has
// not clocked in today.
func (a *AttendanceServiceImpl) TodayRecord(ctx context.Context, userID string) (*attendance.RecordResponse, error) {
	rec, err := a.Repository.GetByUserAndDate(ctx, userID, clock.Today(a.clock))
	if err != nil {
		return nil, fmt.Errorf("failed to load today's record: %w", err)
	}
	if rec == nil {
		return nil, nil
	}
	resp := attendance.NewRecordResponse(*rec)
	return &resp, nil
}

// History implements attendance.Service.
func (a *AttendanceServiceImpl) History(ctx context.Context, userID string) ([]attendance.RecordResponse, error) {
	recs, err := a.Repository.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	return toResponses(recs), nil
}

// HistoryRange implements attendance.Service.
func (a *AttendanceServiceImpl) HistoryRange(ctx context.Context, userID string, filter attendance.RangeFilter) ([]attendance.RecordResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	start, end := filter.Bounds()

	recs, err := a.Repository.ListByUserAndDateRange(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	return toResponses(recs), nil
}

// RecomputeRange implements attendance.Service. It re-evaluates every record
// in the span against the current rules and clock, writing back only genuine
// transitions. Returns the number of records whose status changed.
func (a *AttendanceServiceImpl) RecomputeRange(ctx context.Context, filter attendance.RangeFilter) (int, error) {
	if err := filter.Validate(); err != nil {
		return 0, err
	}
	start, end := filter.Bounds()

	recs, err := a.Repository.ListByDateRange(ctx, start, end)
	if err != nil {
		return 0, fmt.Errorf("failed to list records: %w", err)
	}

	now := a.clock.Now().In(a.clock.Location())
	changed := 0
	for _, rec := range recs {
		status := attendance.Evaluate(rec, now)
		if status == rec.Status {
			continue
		}
		ok, err := a.Repository.UpdateStatus(ctx, rec.ID, rec.Status, status)
		if err != nil {
			return changed, fmt.Errorf("failed to update status for record %s: %w", rec.ID, err)
		}
		if ok {
			changed++
		}
	}
	return changed, nil
}

func toResponses(recs []attendance.Record) []attendance.RecordResponse {
	out := make([]attendance.RecordResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, attendance.NewRecordResponse(rec))
	}
	return out
}
