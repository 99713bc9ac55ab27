package attendance

import (
	"context"
	"time"
)

// Repository defines data access for attendance records. One record exists
// per (user_id, date); the database enforces that with a unique constraint.
type Repository interface {
	// Create inserts a new record. Returns ErrDuplicateRecord when a record
	// for the same user and date already exists (concurrent first clock-in).
	Create(ctx context.Context, rec Record) error

	// GetByUserAndDate returns the record for a user on a date, or nil when
	// none exists.
	GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*Record, error)

	// FillSlot sets one slot column and the derived status, guarded by the
	// slot still being NULL. Returns false when a concurrent writer filled
	// the slot first; the caller treats that as an idempotent no-op.
	FillSlot(ctx context.Context, id string, slot Slot, t time.Time, status Status) (bool, error)

	// UpdateStatus sets the status of a record only if it still holds the
	// expected previous value. Returns false when the record changed
	// underneath (optimistic concurrency with live clock-in traffic).
	UpdateStatus(ctx context.Context, id string, from, to Status) (bool, error)

	// ListByUser returns all records for a user, newest first.
	ListByUser(ctx context.Context, userID string) ([]Record, error)

	// ListByUserAndDateRange returns a user's records within [start, end].
	ListByUserAndDateRange(ctx context.Context, userID string, start, end time.Time) ([]Record, error)

	// ListByDate returns every user's record for one date.
	ListByDate(ctx context.Context, date time.Time) ([]Record, error)

	// ListByDateRange returns all records within [start, end], across users.
	ListByDateRange(ctx context.Context, start, end time.Time) ([]Record, error)
}
