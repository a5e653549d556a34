package auth

import (
	"context"
	"errors"
	"testing"

	"taskboard/internal/testutils"
	"taskboard/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type failingUserRepository struct{}

var errStorage = errors.New("storage unavailable")

func (failingUserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	return nil, errStorage
}

func (failingUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return nil, errStorage
}

func newTestAuthService(t *testing.T) *AuthService {
	factory := testutils.SetupTestRepositoryFactory(t)
	return NewAuthService(factory.NewUserRepository(), testutils.GetTestConfig())
}

func TestAuthService_RegisterThenLogin(t *testing.T) {
	service := newTestAuthService(t)
	ctx := context.Background()

	user, err := service.Register(ctx, "alice", "pw1")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "pw1", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pw1")))

	token, loggedIn, err := service.Login(ctx, "alice", "pw1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
	assert.Equal(t, "alice", loggedIn.Username)

	identity, err := Verify(token, service.Config.JwtKey)
	require.NoError(t, err)
	assert.Equal(t, Identity{UserID: user.ID, Username: "alice"}, identity)
}

func TestAuthService_RegisterHashCost(t *testing.T) {
	service := newTestAuthService(t)

	user, err := service.Register(context.Background(), "alice", "pw1")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(user.PasswordHash))
	require.NoError(t, err)
	assert.Equal(t, service.Config.BcryptCost, cost)
}

func TestAuthService_MissingFields(t *testing.T) {
	service := newTestAuthService(t)
	ctx := context.Background()

	_, err := service.Register(ctx, "alice", "pw1")
	require.NoError(t, err)

	for _, creds := range [][2]string{{"", "pw"}, {"alice", ""}, {"", ""}} {
		_, err := service.Register(ctx, creds[0], creds[1])
		assert.ErrorIs(t, err, ErrMissingFields)

		// Login treats empty fields as wrong credentials
		_, _, err = service.Login(ctx, creds[0], creds[1])
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	}
}

func TestAuthService_LoginInvalidCredentials(t *testing.T) {
	service := newTestAuthService(t)
	ctx := context.Background()

	_, err := service.Register(ctx, "alice", "pw1")
	require.NoError(t, err)

	_, _, err = service.Login(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = service.Login(ctx, "mallory", "pw1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_DuplicateUsernames(t *testing.T) {
	service := newTestAuthService(t)
	ctx := context.Background()

	first, err := service.Register(ctx, "alice", "first-pw")
	require.NoError(t, err)
	second, err := service.Register(ctx, "alice", "second-pw")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	_, user, err := service.Login(ctx, "alice", "first-pw")
	require.NoError(t, err)
	assert.Equal(t, first.ID, user.ID)

	// The second account is shadowed by the first
	_, _, err = service.Login(ctx, "alice", "second-pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_StorageErrors(t *testing.T) {
	service := NewAuthService(failingUserRepository{}, testutils.GetTestConfig())
	ctx := context.Background()

	_, err := service.Register(ctx, "alice", "pw1")
	assert.ErrorIs(t, err, errStorage)

	_, _, err = service.Login(ctx, "alice", "pw1")
	assert.ErrorIs(t, err, errStorage)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}
