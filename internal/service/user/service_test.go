package user

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/presensi-app/presensi-backend-go/internal/domain/user"
)

type fakeUserRepo struct {
	users map[string]user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]user.User)}
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) Create(_ context.Context, newUser user.User) (user.User, error) {
	for _, u := range r.users {
		if u.Email == newUser.Email {
			return user.User{}, user.ErrUserEmailExists
		}
	}
	r.users[newUser.ID] = newUser
	return newUser, nil
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(context.Background(), email)
	return err == nil, nil
}

func (r *fakeUserRepo) ListActive(_ context.Context) ([]user.User, error) {
	var out []user.User
	for _, u := range r.users {
		if u.Active {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]user.User, error) {
	var out []user.User
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) Update(_ context.Context, id string, req user.UpdateUserRequest) error {
	u, ok := r.users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.WorkField != nil {
		u.WorkField = req.WorkField
	}
	r.users[id] = u
	return nil
}

func (r *fakeUserRepo) UpdateRole(_ context.Context, id string, role user.Role) error {
	u, ok := r.users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	u.Role = role
	r.users[id] = u
	return nil
}

func (r *fakeUserRepo) UpdatePassword(_ context.Context, id, passwordHash string) error {
	u, ok := r.users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	r.users[id] = u
	return nil
}

func (r *fakeUserRepo) UpdatePhotoPath(_ context.Context, id, path string) error {
	u, ok := r.users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	u.PhotoPath = &path
	r.users[id] = u
	return nil
}

func (r *fakeUserRepo) SetActive(_ context.Context, id string, active bool) error {
	u, ok := r.users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	u.Active = active
	r.users[id] = u
	return nil
}

func seedUser(t *testing.T, repo *fakeUserRepo, id string, role user.Role, password string) user.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := user.User{
		ID:           id,
		Name:         "User " + id,
		Email:        id + "@example.com",
		PasswordHash: string(hash),
		Role:         role,
		Active:       true,
	}
	repo.users[id] = u
	return u
}

func TestChangePasswordVerifiesOldPassword(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "u1", user.RoleUser, "oldpassword")
	svc := NewUserService(repo, nil)

	err := svc.ChangePassword(context.Background(), "u1", user.ChangePasswordRequest{
		OldPassword: "wrongpassword",
		NewPassword: "newpassword1",
	})
	assert.True(t, errors.Is(err, user.ErrInsufficientPermissions))

	err = svc.ChangePassword(context.Background(), "u1", user.ChangePasswordRequest{
		OldPassword: "oldpassword",
		NewPassword: "newpassword1",
	})
	require.NoError(t, err)

	stored := repo.users["u1"]
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("newpassword1")))
}

func TestCreateUserRequiresAdmin(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "plain", user.RoleUser, "password1")
	svc := NewUserService(repo, nil)

	_, err := svc.CreateUser(context.Background(), "plain", user.CreateUserRequest{
		Name:     "New User",
		Email:    "new@example.com",
		Password: "password1",
		Role:     "user",
	})
	assert.True(t, errors.Is(err, user.ErrAdminPrivilegeRequired))
}

func TestOnlySuperAdminMintsAdmins(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "admin", user.RoleAdmin, "password1")
	seedUser(t, repo, "root", user.RoleSuperAdmin, "password1")
	svc := NewUserService(repo, nil)

	_, err := svc.CreateUser(context.Background(), "admin", user.CreateUserRequest{
		Name:     "Another Admin",
		Email:    "admin2@example.com",
		Password: "password1",
		Role:     "admin",
	})
	assert.True(t, errors.Is(err, user.ErrInsufficientPermissions))

	created, err := svc.CreateUser(context.Background(), "root", user.CreateUserRequest{
		Name:     "Another Admin",
		Email:    "admin2@example.com",
		Password: "password1",
		Role:     "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, "admin", created.Role)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "admin", user.RoleAdmin, "password1")
	seedUser(t, repo, "taken", user.RoleUser, "password1")
	svc := NewUserService(repo, nil)

	_, err := svc.CreateUser(context.Background(), "admin", user.CreateUserRequest{
		Name:     "Someone",
		Email:    "taken@example.com",
		Password: "password1",
		Role:     "user",
	})
	assert.True(t, errors.Is(err, user.ErrUserEmailExists))
}

func TestAdminCannotManageAdmin(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "admin1", user.RoleAdmin, "password1")
	seedUser(t, repo, "admin2", user.RoleAdmin, "password1")
	svc := NewUserService(repo, nil)

	err := svc.DeactivateUser(context.Background(), "admin1", "admin2")
	assert.True(t, errors.Is(err, user.ErrInsufficientPermissions))
}

func TestDeactivateAndReactivate(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "admin", user.RoleAdmin, "password1")
	seedUser(t, repo, "member", user.RoleUser, "password1")
	svc := NewUserService(repo, nil)

	require.NoError(t, svc.DeactivateUser(context.Background(), "admin", "member"))
	assert.False(t, repo.users["member"].Active)

	require.NoError(t, svc.ReactivateUser(context.Background(), "admin", "member"))
	assert.True(t, repo.users["member"].Active)
}

func TestUpdateProfileLeavesNilFieldsUntouched(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "u1", user.RoleUser, "password1")
	svc := NewUserService(repo, nil)

	name := "Renamed"
	updated, err := svc.UpdateProfile(context.Background(), "u1", user.UpdateUserRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, "u1@example.com", updated.Email)
}
