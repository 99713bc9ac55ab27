package leave

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, req Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)
	ListByUser(ctx context.Context, userID string) ([]Request, error)
	List(ctx context.Context, filter ListFilter) ([]Request, error)

	// HasOverlap reports whether the user already has a pending or approved
	// request intersecting the span.
	HasOverlap(ctx context.Context, userID string, start, end time.Time) (bool, error)

	// UpdateStatus transitions a pending request; returns false when the
	// request was no longer pending.
	UpdateStatus(ctx context.Context, id string, status RequestStatus, decidedBy string, note *string) (bool, error)

	UpdateAttachmentPath(ctx context.Context, id, path string) error
}
