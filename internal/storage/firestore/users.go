package firestore

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"github.com/magabrotheeeer/vitalbites-backend/internal/models"
	"github.com/magabrotheeeer/vitalbites-backend/internal/storage"
)

type userDoc struct {
	Email        string    `firestore:"email"`
	Name         string    `firestore:"name"`
	PasswordHash string    `firestore:"passwordHash"`
	CreatedAt    time.Time `firestore:"createdAt"`
}

// RegisterUser сохраняет нового пользователя и возвращает его UID.
// При занятом email возвращает storage.ErrEmailTaken.
func (s *Storage) RegisterUser(ctx context.Context, user models.User) (string, error) {
	const op = "storage.firestore.RegisterUser"

	iter := s.client.Collection(usersCollection).
		Where("email", "==", user.Email).Limit(1).Documents(ctx)
	defer iter.Stop()
	if _, err := iter.Next(); err != iterator.Done {
		if err != nil {
			return "", fmt.Errorf("%s: %w", op, err)
		}
		return "", fmt.Errorf("%s: %w", op, storage.ErrEmailTaken)
	}

	newUID := uuid.New().String()
	doc := userDoc{
		Email:        user.Email,
		Name:         user.Name,
		PasswordHash: user.PasswordHash,
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := s.userRef(newUID).Create(ctx, doc); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newUID, nil
}

// GetUserByEmail возвращает пользователя по его email.
// Если пользователь не найден, возвращает storage.ErrNotFound.
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.firestore.GetUserByEmail"

	iter := s.client.Collection(usersCollection).
		Where("email", "==", email).Limit(1).Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err == iterator.Done {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var doc userDoc
	if err = snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &models.User{
		UID:          snap.Ref.ID,
		Email:        doc.Email,
		Name:         doc.Name,
		PasswordHash: doc.PasswordHash,
		CreatedAt:    doc.CreatedAt,
	}, nil
}

// GetUser возвращает пользователя по его UID.
func (s *Storage) GetUser(ctx context.Context, userUID string) (*models.User, error) {
	const op = "storage.firestore.GetUser"

	snap, err := s.userRef(userUID).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var doc userDoc
	if err = snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &models.User{
		UID:          snap.Ref.ID,
		Email:        doc.Email,
		Name:         doc.Name,
		PasswordHash: doc.PasswordHash,
		CreatedAt:    doc.CreatedAt,
	}, nil
}
