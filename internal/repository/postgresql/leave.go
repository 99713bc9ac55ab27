package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/presensi-app/presensi-backend-go/internal/domain/leave"
	"github.com/presensi-app/presensi-backend-go/internal/pkg/database"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.Repository {
	return &leaveRepository{db: db}
}

const leaveColumns = `
	l.id, l.user_id, l.type, l.start_date, l.end_date, l.reason,
	l.attachment_path, l.status, l.decided_by, l.decision_note,
	l.created_at, l.updated_at, u.name
`

func scanLeave(row pgx.Row) (leave.Request, error) {
	var req leave.Request
	err := row.Scan(
		&req.ID, &req.UserID, &req.Type, &req.StartDate, &req.EndDate, &req.Reason,
		&req.AttachmentPath, &req.Status, &req.DecidedBy, &req.DecisionNote,
		&req.CreatedAt, &req.UpdatedAt, &req.UserName,
	)
	return req, err
}

// Create implements leave.Repository.
func (r *leaveRepository) Create(ctx context.Context, req leave.Request) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (id, user_id, type, start_date, end_date, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.ID, req.UserID, req.Type, req.StartDate, req.EndDate, req.Reason, req.Status,
	).Scan(&req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	return req, nil
}

// GetByID implements leave.Repository.
func (r *leaveRepository) GetByID(ctx context.Context, id string) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests l
		JOIN users u ON u.id = l.user_id
		WHERE l.id = $1
	`

	req, err := scanLeave(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Request{}, leave.ErrRequestNotFound
		}
		return leave.Request{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	return req, nil
}

// ListByUser implements leave.Repository.
func (r *leaveRepository) ListByUser(ctx context.Context, userID string) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests l
		JOIN users u ON u.id = l.user_id
		WHERE l.user_id = $1
		ORDER BY l.created_at DESC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return collectLeaves(rows)
}

// List implements leave.Repository.
func (r *leaveRepository) List(ctx context.Context, filter leave.ListFilter) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	var conditions []string
	var args []interface{}

	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("l.status = $%d", len(args)))
	}
	if filter.UserID != "" {
		args = append(args, filter.UserID)
		conditions = append(conditions, fmt.Sprintf("l.user_id = $%d", len(args)))
	}

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests l
		JOIN users u ON u.id = l.user_id
	`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY l.created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return collectLeaves(rows)
}

// HasOverlap implements leave.Repository.
func (r *leaveRepository) HasOverlap(ctx context.Context, userID string, start, end time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS(
			SELECT 1 FROM leave_requests
			WHERE user_id = $1
			  AND status IN ('pending', 'approved')
			  AND start_date <= $3
			  AND end_date >= $2
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, userID, start, end).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check leave overlap: %w", err)
	}
	return exists, nil
}

// UpdateStatus implements leave.Repository. Guarded so only pending requests
// transition; a processed request reports false.
func (r *leaveRepository) UpdateStatus(ctx context.Context, id string, status leave.RequestStatus, decidedBy string, note *string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $1, decided_by = $2, decision_note = $3, updated_at = NOW()
		WHERE id = $4 AND status = 'pending'
	`

	tag, err := q.Exec(ctx, query, status, decidedBy, note, id)
	if err != nil {
		return false, fmt.Errorf("failed to update leave status: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// UpdateAttachmentPath implements leave.Repository.
func (r *leaveRepository) UpdateAttachmentPath(ctx context.Context, id, path string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE leave_requests SET attachment_path = $1, updated_at = NOW() WHERE id = $2`,
		path, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update attachment path: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrRequestNotFound
	}
	return nil
}

func collectLeaves(rows pgx.Rows) ([]leave.Request, error) {
	defer rows.Close()

	var out []leave.Request
	for rows.Next() {
		req, err := scanLeave(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		out = append(out, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read leave requests: %w", err)
	}
	return out, nil
}
