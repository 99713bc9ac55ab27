package user

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/presensi-app/presensi-backend-go/internal/domain/user"
	"github.com/presensi-app/presensi-backend-go/internal/service/file"
)

type UserServiceImpl struct {
	users       user.Repository
	fileService file.FileService
}

func NewUserService(userRepo user.Repository, fileService file.FileService) user.Service {
	return &UserServiceImpl{
		users:       userRepo,
		fileService: fileService,
	}
}

// GetProfile implements user.Service.
func (s *UserServiceImpl) GetProfile(ctx context.Context, userID string) (user.UserResponse, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.UserResponse{}, user.ErrUserNotFound
		}
		return user.UserResponse{}, fmt.Errorf("failed to load user: %w", err)
	}
	return user.NewUserResponse(u), nil
}

// UpdateProfile implements user.Service.
func (s *UserServiceImpl) UpdateProfile(ctx context.Context, userID string, req user.UpdateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	if err := s.users.Update(ctx, userID, req); err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to update user: %w", err)
	}
	return s.GetProfile(ctx, userID)
}

// ChangePassword implements user.Service.
func (s *UserServiceImpl) ChangePassword(ctx context.Context, userID string, req user.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.OldPassword)); err != nil {
		return user.ErrInsufficientPermissions
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.users.UpdatePassword(ctx, userID, string(hash)); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

// UploadPhoto implements user.Service.
func (s *UserServiceImpl) UploadPhoto(ctx context.Context, userID, filename string, fileReader io.Reader, size int64) (user.UserResponse, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to load user: %w", err)
	}

	path, err := s.fileService.UploadProfilePhoto(ctx, userID, fileReader, filename)
	if err != nil {
		return user.UserResponse{}, err
	}

	// Best effort cleanup of the replaced photo.
	if u.PhotoPath != nil {
		_ = s.fileService.DeleteFile(ctx, *u.PhotoPath)
	}

	if err := s.users.UpdatePhotoPath(ctx, userID, path); err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to record photo path: %w", err)
	}
	return s.GetProfile(ctx, userID)
}

func (s *UserServiceImpl) requireActor(ctx context.Context, actorID string) (user.User, error) {
	actor, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to load acting user: %w", err)
	}
	if !actor.IsAdmin() {
		return user.User{}, user.ErrAdminPrivilegeRequired
	}
	return actor, nil
}

// CreateUser implements user.Service. Only super admins may mint admins.
func (s *UserServiceImpl) CreateUser(ctx context.Context, actorID string, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	actor, err := s.requireActor(ctx, actorID)
	if err != nil {
		return user.UserResponse{}, err
	}
	if user.Role(req.Role) != user.RoleUser && !actor.IsSuperAdmin() {
		return user.UserResponse{}, user.ErrInsufficientPermissions
	}

	exists, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return user.UserResponse{}, user.ErrUserEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.users.Create(ctx, user.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         user.Role(req.Role),
		WorkField:    req.WorkField,
		Active:       true,
	})
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to create user: %w", err)
	}
	return user.NewUserResponse(created), nil
}

// ListUsers implements user.Service.
func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]user.UserResponse, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	out := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, user.NewUserResponse(u))
	}
	return out, nil
}

// GetUser implements user.Service.
func (s *UserServiceImpl) GetUser(ctx context.Context, actorID, targetID string) (user.UserResponse, error) {
	if _, err := s.requireActor(ctx, actorID); err != nil {
		return user.UserResponse{}, err
	}
	return s.GetProfile(ctx, targetID)
}

// UpdateUserRole implements user.Service.
func (s *UserServiceImpl) UpdateUserRole(ctx context.Context, actorID, targetID string, req user.UpdateUserRoleRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	actor, err := s.requireActor(ctx, actorID)
	if err != nil {
		return err
	}

	target, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		return fmt.Errorf("failed to load target user: %w", err)
	}
	if !actor.CanManage(&target) {
		return user.ErrInsufficientPermissions
	}
	if user.Role(req.Role) != user.RoleUser && !actor.IsSuperAdmin() {
		return user.ErrInsufficientPermissions
	}

	if err := s.users.UpdateRole(ctx, targetID, user.Role(req.Role)); err != nil {
		return fmt.Errorf("failed to update role: %w", err)
	}
	return nil
}

// DeactivateUser implements user.Service. Accounts are never hard-deleted so
// historical attendance stays attributable.
func (s *UserServiceImpl) DeactivateUser(ctx context.Context, actorID, targetID string) error {
	return s.setActive(ctx, actorID, targetID, false)
}

// ReactivateUser implements user.Service.
func (s *UserServiceImpl) ReactivateUser(ctx context.Context, actorID, targetID string) error {
	return s.setActive(ctx, actorID, targetID, true)
}

func (s *UserServiceImpl) setActive(ctx context.Context, actorID, targetID string, active bool) error {
	actor, err := s.requireActor(ctx, actorID)
	if err != nil {
		return err
	}

	target, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		return fmt.Errorf("failed to load target user: %w", err)
	}
	if !actor.CanManage(&target) {
		return user.ErrInsufficientPermissions
	}

	if err := s.users.SetActive(ctx, targetID, active); err != nil {
		return fmt.Errorf("failed to update active flag: %w", err)
	}
	return nil
}
