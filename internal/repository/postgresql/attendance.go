package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/presensi-app/presensi-backend-go/internal/domain/attendance"
	"github.com/presensi-app/presensi-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	r.id, r.user_id, r.date, r.morning, r.midday, r.evening, r.status,
	r.created_at, r.updated_at, u.name, u.work_field
`

func scanRecord(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(
		&rec.ID, &rec.UserID, &rec.Date, &rec.Morning, &rec.Midday, &rec.Evening,
		&rec.Status, &rec.CreatedAt, &rec.UpdatedAt, &rec.UserName, &rec.WorkField,
	)
	return rec, err
}

func collectRecords(rows pgx.Rows) ([]attendance.Record, error) {
	defer rows.Close()

	var out []attendance.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}
	return out, nil
}

// slotColumn maps a slot to its column. Callers always go through
// attendance.ParseSlot first, so an unknown value here is a programming error.
func slotColumn(slot attendance.Slot) (string, error) {
	switch slot {
	case attendance.SlotMorning:
		return "morning", nil
	case attendance.SlotMidday:
		return "midday", nil
	case attendance.SlotEvening:
		return "evening", nil
	}
	return "", attendance.ErrUnknownSlot
}

// Create implements attendance.Repository. The unique (user_id, date) index
// turns a lost create race into ErrDuplicateRecord.
func (a *attendanceRepository) Create(ctx context.Context, rec attendance.Record) error {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (id, user_id, date, morning, midday, evening, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := q.Exec(ctx, query,
		rec.ID, rec.UserID, rec.Date, rec.Morning, rec.Midday, rec.Evening, rec.Status,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.ErrDuplicateRecord
		}
		return fmt.Errorf("failed to create record: %w", err)
	}
	return nil
}

// GetByUserAndDate implements attendance.Repository. Returns nil when the
// user has no record for that date.
func (a *attendanceRepository) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records r
		JOIN users u ON u.id = r.user_id
		WHERE r.user_id = $1 AND r.date = $2
	`

	rec, err := scanRecord(q.QueryRow(ctx, query, userID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get record: %w", err)
	}
	return &rec, nil
}

// FillSlot implements attendance.Repository. The IS NULL guard makes the
// first writer win; a raced second write reports false with no error.
func (a *attendanceRepository) FillSlot(ctx context.Context, id string, slot attendance.Slot, t time.Time, status attendance.Status) (bool, error) {
	column, err := slotColumn(slot)
	if err != nil {
		return false, err
	}

	q := GetQuerier(ctx, a.db)

	query := fmt.Sprintf(`
		UPDATE attendance_records
		SET %s = $1, status = $2, updated_at = NOW()
		WHERE id = $3 AND %s IS NULL
	`, column, column)

	tag, err := q.Exec(ctx, query, t, status, id)
	if err != nil {
		return false, fmt.Errorf("failed to fill slot: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// UpdateStatus implements attendance.Repository. The status guard makes the
// write optimistic: a concurrent transition leaves this one a no-op.
func (a *attendanceRepository) UpdateStatus(ctx context.Context, id string, from, to attendance.Status) (bool, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_records
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
	`

	tag, err := q.Exec(ctx, query, to, id, from)
	if err != nil {
		return false, fmt.Errorf("failed to update status: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ListByUser implements attendance.Repository.
func (a *attendanceRepository) ListByUser(ctx context.Context, userID string) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records r
		JOIN users u ON u.id = r.user_id
		WHERE r.user_id = $1
		ORDER BY r.date DESC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	return collectRecords(rows)
}

// ListByUserAndDateRange implements attendance.Repository.
func (a *attendanceRepository) ListByUserAndDateRange(ctx context.Context, userID string, start, end time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records r
		JOIN users u ON u.id = r.user_id
		WHERE r.user_id = $1 AND r.date BETWEEN $2 AND $3
		ORDER BY r.date
	`

	rows, err := q.Query(ctx, query, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	return collectRecords(rows)
}

// ListByDate implements attendance.Repository.
func (a *attendanceRepository) ListByDate(ctx context.Context, date time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records r
		JOIN users u ON u.id = r.user_id
		WHERE r.date = $1
		ORDER BY u.name
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	return collectRecords(rows)
}

// ListByDateRange implements attendance.Repository.
func (a *attendanceRepository) ListByDateRange(ctx context.Context, start, end time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records r
		JOIN users u ON u.id = r.user_id
		WHERE r.date BETWEEN $1 AND $2
		ORDER BY r.date, u.name
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	return collectRecords(rows)
}
