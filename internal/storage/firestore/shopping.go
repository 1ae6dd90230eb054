package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/magabrotheeeer/vitalbites-backend/internal/models"
	"github.com/magabrotheeeer/vitalbites-backend/internal/storage"
)

// ListShoppingItems возвращает все элементы списка покупок пользователя
// в естественном порядке выборки.
func (s *Storage) ListShoppingItems(ctx context.Context, userUID string) ([]*models.ShoppingItem, error) {
	const op = "storage.firestore.ListShoppingItems"

	iter := s.userRef(userUID).Collection(shoppingCollection).Documents(ctx)
	defer iter.Stop()

	var result []*models.ShoppingItem
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		item := &models.ShoppingItem{
			ID:     snap.Ref.ID,
			Fields: snap.Data(),
		}
		if createdAt, ok := item.Fields["createdAt"].(time.Time); ok {
			item.CreatedAt = createdAt
			delete(item.Fields, "createdAt")
		}
		if updatedAt, ok := item.Fields["updatedAt"].(time.Time); ok {
			item.UpdatedAt = updatedAt
			delete(item.Fields, "updatedAt")
		}
		result = append(result, item)
	}
	return result, nil
}

// AddShoppingItem добавляет элемент в список покупок и возвращает
// идентификатор нового документа.
func (s *Storage) AddShoppingItem(ctx context.Context, userUID string, fields map[string]any) (string, error) {
	const op = "storage.firestore.AddShoppingItem"

	data := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		data[k] = v
	}
	data["createdAt"] = time.Now().UTC()

	ref := s.userRef(userUID).Collection(shoppingCollection).NewDoc()
	if _, err := ref.Create(ctx, data); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return ref.ID, nil
}

// UpdateShoppingItem обновляет поля элемента списка покупок.
// Если документа нет, возвращает storage.ErrNotFound.
func (s *Storage) UpdateShoppingItem(ctx context.Context, userUID, itemID string, fields map[string]any) error {
	const op = "storage.firestore.UpdateShoppingItem"

	updates := make([]firestore.Update, 0, len(fields)+1)
	for k, v := range fields {
		updates = append(updates, firestore.Update{Path: k, Value: v})
	}
	updates = append(updates, firestore.Update{Path: "updatedAt", Value: time.Now().UTC()})

	ref := s.userRef(userUID).Collection(shoppingCollection).Doc(itemID)
	if _, err := ref.Update(ctx, updates); err != nil {
		if isNotFound(err) {
			return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// DeleteShoppingItem удаляет элемент списка покупок.
// Удаление отсутствующего документа не является ошибкой.
func (s *Storage) DeleteShoppingItem(ctx context.Context, userUID, itemID string) error {
	const op = "storage.firestore.DeleteShoppingItem"

	ref := s.userRef(userUID).Collection(shoppingCollection).Doc(itemID)
	if _, err := ref.Delete(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ClearShoppingList удаляет все элементы списка покупок пользователя.
func (s *Storage) ClearShoppingList(ctx context.Context, userUID string) error {
	const op = "storage.firestore.ClearShoppingList"

	iter := s.userRef(userUID).Collection(shoppingCollection).Documents(ctx)
	defer iter.Stop()
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if _, err = snap.Ref.Delete(ctx); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}
	return nil
}
