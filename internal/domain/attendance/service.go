package attendance

import (
	"context"
)

// Service defines business logic for attendance operations
type Service interface {
	// ClockIn records one clock-in event for today's record, creating the
	// record on the first event of the day. Re-submitting a filled slot is
	// a no-op returning the existing record with Accepted=false.
	ClockIn(ctx context.Context, userID string, req ClockInRequest) (ClockInResponse, error)

	// TodayRecord returns the caller's record for today, or nil when the
	// user has not clocked in yet.
	TodayRecord(ctx context.Context, userID string) (*RecordResponse, error)

	// History returns the caller's full attendance history, newest first.
	History(ctx context.Context, userID string) ([]RecordResponse, error)

	// HistoryRange returns the caller's records within a date range.
	HistoryRange(ctx context.Context, userID string, filter RangeFilter) ([]RecordResponse, error)

	// RecomputeRange re-evaluates every stored record in the range and
	// persists only those whose derived status differs, returning how many
	// records changed. Running it twice without new events changes nothing
	// the second time.
	RecomputeRange(ctx context.Context, filter RangeFilter) (int, error)
}
