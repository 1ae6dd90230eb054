package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/vitalbites-backend/internal/lib/jwt"
	"github.com/magabrotheeeer/vitalbites-backend/internal/lib/password"
	"github.com/magabrotheeeer/vitalbites-backend/internal/models"
	"github.com/magabrotheeeer/vitalbites-backend/internal/storage"
)

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) RegisterUser(ctx context.Context, user models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *UserRepoMock) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *UserRepoMock) GetUser(ctx context.Context, userUID string) (*models.User, error) {
	args := m.Called(ctx, userUID)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func NewNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestAuth_Register(t *testing.T) {
	repo := new(UserRepoMock)
	repo.On("RegisterUser", mock.Anything, mock.MatchedBy(func(u models.User) bool {
		return u.Email == "anna@example.com" && u.Name == "Anna" && u.PasswordHash != "secret123"
	})).Return("uid-1", nil)

	svc := NewAuthService(repo, jwt.NewJWTMaker("test-secret", time.Hour))

	uid, err := svc.Register(context.Background(), "anna@example.com", "Anna", "secret123")

	require.NoError(t, err)
	assert.Equal(t, "uid-1", uid)
	repo.AssertExpectations(t)
}

func TestAuth_Register_EmailTaken(t *testing.T) {
	repo := new(UserRepoMock)
	repo.On("RegisterUser", mock.Anything, mock.Anything).Return("", storage.ErrEmailTaken)

	svc := NewAuthService(repo, jwt.NewJWTMaker("test-secret", time.Hour))

	_, err := svc.Register(context.Background(), "anna@example.com", "Anna", "secret123")

	assert.True(t, errors.Is(err, storage.ErrEmailTaken))
}

func TestAuth_Login(t *testing.T) {
	hash, err := password.GetHash("secret123")
	require.NoError(t, err)

	repo := new(UserRepoMock)
	repo.On("GetUserByEmail", mock.Anything, "anna@example.com").Return(&models.User{
		UID:          "uid-1",
		Email:        "anna@example.com",
		PasswordHash: hash,
	}, nil)

	maker := jwt.NewJWTMaker("test-secret", time.Hour)
	svc := NewAuthService(repo, maker)

	token, err := svc.Login(context.Background(), "anna@example.com", "secret123")
	require.NoError(t, err)

	claims, err := maker.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "uid-1", claims.UserUID)
	assert.Equal(t, "anna@example.com", claims.Email)
}

func TestAuth_Login_WrongPassword(t *testing.T) {
	hash, err := password.GetHash("secret123")
	require.NoError(t, err)

	repo := new(UserRepoMock)
	repo.On("GetUserByEmail", mock.Anything, "anna@example.com").Return(&models.User{
		UID:          "uid-1",
		Email:        "anna@example.com",
		PasswordHash: hash,
	}, nil)

	svc := NewAuthService(repo, jwt.NewJWTMaker("test-secret", time.Hour))

	_, err = svc.Login(context.Background(), "anna@example.com", "wrong-password")

	assert.True(t, errors.Is(err, ErrInvalidCredentials))
}

func TestAuth_Login_UnknownEmail(t *testing.T) {
	repo := new(UserRepoMock)
	repo.On("GetUserByEmail", mock.Anything, "ghost@example.com").Return(nil, storage.ErrNotFound)

	svc := NewAuthService(repo, jwt.NewJWTMaker("test-secret", time.Hour))

	_, err := svc.Login(context.Background(), "ghost@example.com", "secret123")

	// чужому клиенту не нужно знать, что именно не совпало
	assert.True(t, errors.Is(err, ErrInvalidCredentials))
}

func TestAuth_Login_StoreFailure(t *testing.T) {
	repo := new(UserRepoMock)
	repo.On("GetUserByEmail", mock.Anything, "anna@example.com").
		Return(nil, errors.New("connection refused: database is down"))

	svc := NewAuthService(repo, jwt.NewJWTMaker("test-secret", time.Hour))

	_, err := svc.Login(context.Background(), "anna@example.com", "secret123")

	// сбой хранилища не должен выглядеть как неверный пароль
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalidCredentials))
	assert.Contains(t, err.Error(), "database is down")
}

func TestAuth_ValidateToken(t *testing.T) {
	maker := jwt.NewJWTMaker("test-secret", time.Hour)
	token, err := maker.GenerateToken("uid-1", "anna@example.com")
	require.NoError(t, err)

	svc := NewAuthService(new(UserRepoMock), maker)

	user, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "uid-1", user.UID)
	assert.Equal(t, "anna@example.com", user.Email)
}

func TestAuth_ValidateToken_Invalid(t *testing.T) {
	svc := NewAuthService(new(UserRepoMock), jwt.NewJWTMaker("test-secret", time.Hour))

	user, err := svc.ValidateToken(context.Background(), "not-a-token")

	assert.Error(t, err)
	assert.Nil(t, user)
}
