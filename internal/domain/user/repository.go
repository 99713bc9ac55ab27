package user

import (
	"context"
)

type Repository interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	Create(ctx context.Context, newUser User) (User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ListActive(ctx context.Context) ([]User, error)
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, id string, req UpdateUserRequest) error
	UpdateRole(ctx context.Context, id string, role Role) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	UpdatePhotoPath(ctx context.Context, id, path string) error
	SetActive(ctx context.Context, id string, active bool) error
}
