package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/presensi-app/presensi-backend-go/internal/domain/notice"
	"github.com/presensi-app/presensi-backend-go/internal/pkg/database"
)

type noticeRepository struct {
	db *database.DB
}

func NewNoticeRepository(db *database.DB) notice.Repository {
	return &noticeRepository{db: db}
}

const noticeColumns = `
	n.id, n.author_id, n.title, n.body, n.published_at,
	n.created_at, n.updated_at, u.name
`

func scanNotice(row pgx.Row) (notice.Notice, error) {
	var n notice.Notice
	err := row.Scan(
		&n.ID, &n.AuthorID, &n.Title, &n.Body, &n.PublishedAt,
		&n.CreatedAt, &n.UpdatedAt, &n.AuthorName,
	)
	return n, err
}

// Create implements notice.Repository.
func (r *noticeRepository) Create(ctx context.Context, n notice.Notice) (notice.Notice, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO notices (id, author_id, title, body, published_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query, n.ID, n.AuthorID, n.Title, n.Body, n.PublishedAt).
		Scan(&n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return notice.Notice{}, fmt.Errorf("failed to create notice: %w", err)
	}
	return n, nil
}

// GetByID implements notice.Repository.
func (r *noticeRepository) GetByID(ctx context.Context, id string) (notice.Notice, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + noticeColumns + `
		FROM notices n
		JOIN users u ON u.id = n.author_id
		WHERE n.id = $1
	`

	n, err := scanNotice(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return notice.Notice{}, notice.ErrNoticeNotFound
		}
		return notice.Notice{}, fmt.Errorf("failed to get notice: %w", err)
	}
	return n, nil
}

// List implements notice.Repository. Newest first.
func (r *noticeRepository) List(ctx context.Context, limit, offset int) ([]notice.Notice, int, error) {
	q := GetQuerier(ctx, r.db)

	var total int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM notices`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count notices: %w", err)
	}

	query := `
		SELECT ` + noticeColumns + `
		FROM notices n
		JOIN users u ON u.id = n.author_id
		ORDER BY n.published_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list notices: %w", err)
	}
	defer rows.Close()

	var out []notice.Notice
	for rows.Next() {
		n, err := scanNotice(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan notice: %w", err)
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read notices: %w", err)
	}
	return out, total, nil
}

// Update implements notice.Repository.
func (r *noticeRepository) Update(ctx context.Context, id string, req notice.UpdateNoticeRequest) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE notices
		SET title = COALESCE($1, title),
		    body = COALESCE($2, body),
		    updated_at = NOW()
		WHERE id = $3
	`

	tag, err := q.Exec(ctx, query, req.Title, req.Body, id)
	if err != nil {
		return false, fmt.Errorf("failed to update notice: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Delete implements notice.Repository.
func (r *noticeRepository) Delete(ctx context.Context, id string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM notices WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete notice: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
