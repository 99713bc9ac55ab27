package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/presensi-app/presensi-backend-go/internal/domain/user"
	"github.com/presensi-app/presensi-backend-go/internal/pkg/database"
)

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.Repository {
	return &userRepository{db: db}
}

const userColumns = `
	id, name, email, password_hash, role, work_field, photo_path, active,
	created_at, updated_at
`

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.WorkField,
		&u.PhotoPath, &u.Active, &u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}

// GetByEmail implements user.Repository.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	u, err := scanUser(q.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	return u, nil
}

// GetByID implements user.Repository.
func (r *userRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	u, err := scanUser(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return u, nil
}

// Create implements user.Repository.
func (r *userRepository) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (id, name, email, password_hash, role, work_field, photo_path, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newUser.ID, newUser.Name, newUser.Email, newUser.PasswordHash,
		newUser.Role, newUser.WorkField, newUser.PhotoPath, newUser.Active,
	).Scan(&newUser.CreatedAt, &newUser.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return user.User{}, user.ErrUserEmailExists
		}
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}
	return newUser, nil
}

// ExistsByEmail implements user.Repository.
func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return exists, nil
}

func (r *userRepository) list(ctx context.Context, query string) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var out []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read users: %w", err)
	}
	return out, nil
}

// ListActive implements user.Repository.
func (r *userRepository) ListActive(ctx context.Context) ([]user.User, error) {
	return r.list(ctx, `SELECT `+userColumns+` FROM users WHERE active ORDER BY name`)
}

// List implements user.Repository.
func (r *userRepository) List(ctx context.Context) ([]user.User, error) {
	return r.list(ctx, `SELECT `+userColumns+` FROM users ORDER BY name`)
}

// Update implements user.Repository. Only non-nil fields are written.
func (r *userRepository) Update(ctx context.Context, id string, req user.UpdateUserRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET name = COALESCE($1, name),
		    work_field = COALESCE($2, work_field),
		    updated_at = NOW()
		WHERE id = $3
	`

	tag, err := q.Exec(ctx, query, req.Name, req.WorkField, id)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// UpdateRole implements user.Repository.
func (r *userRepository) UpdateRole(ctx context.Context, id string, role user.Role) error {
	return r.setColumn(ctx, id, "role", string(role))
}

// UpdatePassword implements user.Repository.
func (r *userRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	return r.setColumn(ctx, id, "password_hash", passwordHash)
}

// UpdatePhotoPath implements user.Repository.
func (r *userRepository) UpdatePhotoPath(ctx context.Context, id, path string) error {
	return r.setColumn(ctx, id, "photo_path", path)
}

// SetActive implements user.Repository.
func (r *userRepository) SetActive(ctx context.Context, id string, active bool) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE users SET active = $1, updated_at = NOW() WHERE id = $2`, active, id)
	if err != nil {
		return fmt.Errorf("failed to update active flag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

func (r *userRepository) setColumn(ctx context.Context, id, column, value string) error {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`UPDATE users SET %s = $1, updated_at = NOW() WHERE id = $2`, column)
	tag, err := q.Exec(ctx, query, value, id)
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", column, err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}
