package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/presensi-app/presensi-backend-go/internal/domain/auth"
	"github.com/presensi-app/presensi-backend-go/internal/domain/user"
	"github.com/presensi-app/presensi-backend-go/internal/pkg/jwt"
)

const (
	testSecret     = "test-secret-key-for-jwt"
	testAccessExp  = "1h"
	testRefreshExp = "24h"
)

type fakeUserRepo struct {
	byID    map[string]user.User
	byEmail map[string]user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[string]user.User),
		byEmail: make(map[string]user.User),
	}
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) Create(_ context.Context, u user.User) (user.User, error) {
	f.byID[u.ID] = u
	f.byEmail[u.Email] = u
	return u, nil
}

func (f *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := f.byEmail[email]
	return ok, nil
}

func (f *fakeUserRepo) ListActive(context.Context) ([]user.User, error) { return nil, nil }
func (f *fakeUserRepo) List(context.Context) ([]user.User, error)       { return nil, nil }
func (f *fakeUserRepo) Update(context.Context, string, user.UpdateUserRequest) error {
	return nil
}
func (f *fakeUserRepo) UpdateRole(context.Context, string, user.Role) error   { return nil }
func (f *fakeUserRepo) UpdatePassword(context.Context, string, string) error  { return nil }
func (f *fakeUserRepo) UpdatePhotoPath(context.Context, string, string) error { return nil }
func (f *fakeUserRepo) SetActive(context.Context, string, bool) error         { return nil }

func newTestAuthService() (auth.Service, *fakeUserRepo) {
	repo := newFakeUserRepo()
	jwtSvc := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	return NewAuthService(repo, jwtSvc), repo
}

func registerRequest() auth.RegisterRequest {
	return auth.RegisterRequest{
		Name:            "Sari Wulandari",
		Email:           "sari@example.com",
		Password:        "password123",
		ConfirmPassword: "password123",
	}
}

func TestRegister_IssuesTokens(t *testing.T) {
	svc, repo := newTestAuthService()

	resp, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, string(user.RoleUser), resp.User.Role)

	stored, err := repo.GetByEmail(context.Background(), "sari@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", stored.PasswordHash)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)

	_, err = svc.Register(ctx, registerRequest())
	assert.ErrorIs(t, err, user.ErrUserEmailExists)
}

func TestRegister_PasswordMismatch(t *testing.T) {
	svc, _ := newTestAuthService()

	req := registerRequest()
	req.ConfirmPassword = "different123"
	_, err := svc.Register(context.Background(), req)
	assert.Error(t, err)
}

func TestLogin_RoundTrip(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)

	resp, err := svc.Login(ctx, auth.LoginRequest{
		Email:    "sari@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)

	_, err = svc.Login(ctx, auth.LoginRequest{
		Email:    "sari@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _ := newTestAuthService()

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_InactiveAccount(t *testing.T) {
	svc, repo := newTestAuthService()
	ctx := context.Background()

	resp, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)

	u := repo.byID[resp.User.ID]
	u.Active = false
	repo.byID[u.ID] = u
	repo.byEmail[u.Email] = u

	_, err = svc.Login(ctx, auth.LoginRequest{
		Email:    "sari@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, auth.ErrAccountInactive)
}

func TestRefreshToken_RoundTrip(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	registered, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)

	resp, err := svc.RefreshToken(ctx, auth.RefreshTokenRequest{
		RefreshToken: registered.RefreshToken,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestRefreshToken_AccessTokenRejected(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	registered, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)

	// An access token must not pass as a refresh token.
	_, err = svc.RefreshToken(ctx, auth.RefreshTokenRequest{
		RefreshToken: registered.AccessToken,
	})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestRefreshToken_Garbage(t *testing.T) {
	svc, _ := newTestAuthService()

	_, err := svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{
		RefreshToken: "not-a-token",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
