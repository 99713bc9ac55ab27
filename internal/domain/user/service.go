package user

import (
	"context"
	"io"
)

type Service interface {
	// GetProfile returns the user's own profile.
	GetProfile(ctx context.Context, userID string) (UserResponse, error)

	// UpdateProfile updates the user's own name and work field.
	UpdateProfile(ctx context.Context, userID string, req UpdateUserRequest) (UserResponse, error)

	// ChangePassword verifies the old password and sets a new one.
	ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error

	// UploadPhoto stores a profile photo and records its path.
	UploadPhoto(ctx context.Context, userID, filename string, file io.Reader, size int64) (UserResponse, error)

	// Admin operations. actorID identifies the admin performing the call;
	// role-based restrictions apply (admins cannot touch other admins).
	CreateUser(ctx context.Context, actorID string, req CreateUserRequest) (UserResponse, error)
	ListUsers(ctx context.Context) ([]UserResponse, error)
	GetUser(ctx context.Context, actorID, targetID string) (UserResponse, error)
	UpdateUserRole(ctx context.Context, actorID, targetID string, req UpdateUserRoleRequest) error
	DeactivateUser(ctx context.Context, actorID, targetID string) error
	ReactivateUser(ctx context.Context, actorID, targetID string) error
}
