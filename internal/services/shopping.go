package services

import (
	"context"
	"log/slog"

	"github.com/magabrotheeeer/vitalbites-backend/internal/models"
)

// ShoppingRepository описывает хранилище списка покупок.
type ShoppingRepository interface {
	ListShoppingItems(ctx context.Context, userUID string) ([]*models.ShoppingItem, error)
	AddShoppingItem(ctx context.Context, userUID string, fields map[string]any) (string, error)
	UpdateShoppingItem(ctx context.Context, userUID, itemID string, fields map[string]any) error
	DeleteShoppingItem(ctx context.Context, userUID, itemID string) error
	ClearShoppingList(ctx context.Context, userUID string) error
}

// Метки времени createdAt/updatedAt проставляет хранилище.
// Одноимённые поля из запроса вырезаются до записи, чтобы оба драйвера
// вели себя одинаково.
var reservedItemFields = []string{"createdAt", "updatedAt"}

func sanitizeItemFields(fields map[string]any) map[string]any {
	for _, k := range reservedItemFields {
		delete(fields, k)
	}
	return fields
}

// ShoppingService управляет списком покупок пользователя.
// Позиции хранятся как свободные документы: сервис не навязывает им
// схему, кроме служебных меток времени.
type ShoppingService struct {
	repo ShoppingRepository
	log  *slog.Logger
}

func NewShoppingService(repo ShoppingRepository, log *slog.Logger) *ShoppingService {
	return &ShoppingService{
		repo: repo,
		log:  log,
	}
}

// List возвращает все позиции списка покупок пользователя.
func (s *ShoppingService) List(ctx context.Context, userUID string) ([]*models.ShoppingItem, error) {
	return s.repo.ListShoppingItems(ctx, userUID)
}

// Add добавляет позицию и возвращает её идентификатор.
func (s *ShoppingService) Add(ctx context.Context, userUID string, fields map[string]any) (string, error) {
	id, err := s.repo.AddShoppingItem(ctx, userUID, sanitizeItemFields(fields))
	if err != nil {
		return "", err
	}
	s.log.Info("added shopping item", slog.String("item_id", id), slog.String("user_uid", userUID))
	return id, nil
}

// Update изменяет указанные поля позиции, не трогая остальные.
// Для несуществующей позиции репозиторий отдаёт storage.ErrNotFound.
func (s *ShoppingService) Update(ctx context.Context, userUID, itemID string, fields map[string]any) error {
	return s.repo.UpdateShoppingItem(ctx, userUID, itemID, sanitizeItemFields(fields))
}

// Remove удаляет позицию; удаление несуществующей позиции не считается ошибкой.
func (s *ShoppingService) Remove(ctx context.Context, userUID, itemID string) error {
	return s.repo.DeleteShoppingItem(ctx, userUID, itemID)
}

// Clear удаляет все позиции списка покупок пользователя.
func (s *ShoppingService) Clear(ctx context.Context, userUID string) error {
	if err := s.repo.ClearShoppingList(ctx, userUID); err != nil {
		return err
	}
	s.log.Info("cleared shopping list", slog.String("user_uid", userUID))
	return nil
}
