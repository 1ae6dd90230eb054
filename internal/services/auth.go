package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/vitalbites-backend/internal/lib/jwt"
	"github.com/magabrotheeeer/vitalbites-backend/internal/lib/password"
	"github.com/magabrotheeeer/vitalbites-backend/internal/models"
	"github.com/magabrotheeeer/vitalbites-backend/internal/storage"
)

// ErrInvalidCredentials возвращается при неверной паре email/пароль.
// Ответ для несуществующего пользователя и неверного пароля одинаков.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Интерфейс репозитория пользователей
type UserRepository interface {
	RegisterUser(ctx context.Context, user models.User) (string, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUser(ctx context.Context, userUID string) (*models.User, error)
}

// AuthService реализует бизнес-логику регистрации и аутентификации
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

func NewAuthService(users UserRepository, jwtMaker jwt.Maker) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// Register — создание нового пользователя с хэшированием пароля.
// Возвращает UID созданного пользователя; при занятом email
// репозиторий отдаёт storage.ErrEmailTaken.
func (s *AuthService) Register(ctx context.Context, email, name, rawPassword string) (string, error) {
	const op = "services.auth.Register"

	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	user := models.User{
		Email:        email,
		Name:         name,
		PasswordHash: hashed,
	}
	return s.users.RegisterUser(ctx, user)
}

// Login — проверка пароля и генерация JWT с UID и email пользователя
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (string, error) {
	const op = "services.auth.Login"

	user, err := s.users.GetUserByEmail(ctx, email)
	if errors.Is(err, storage.ErrNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	// проверяем пароль
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", ErrInvalidCredentials
	}
	token, err := s.jwtMaker.GenerateToken(user.UID, user.Email)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return token, nil
}

// ValidateToken — проверка JWT и возврат пользователя из claims
func (s *AuthService) ValidateToken(ctx context.Context, token string) (*models.User, error) {
	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return nil, err
	}
	return &models.User{
		UID:   claims.UserUID,
		Email: claims.Email,
	}, nil
}

// Profile возвращает учётную запись пользователя по UID
func (s *AuthService) Profile(ctx context.Context, userUID string) (*models.User, error) {
	return s.users.GetUser(ctx, userUID)
}
