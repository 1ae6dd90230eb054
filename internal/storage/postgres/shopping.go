package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/vitalbites-backend/internal/models"
	"github.com/magabrotheeeer/vitalbites-backend/internal/storage"
)

// ListShoppingItems возвращает все элементы списка покупок пользователя
// в естественном порядке выборки.
func (s *Storage) ListShoppingItems(ctx context.Context, userUID string) ([]*models.ShoppingItem, error) {
	const op = "storage.postgres.ListShoppingItems"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, fields, created_at, updated_at
			  FROM shopping_items
			  WHERE user_uid = $1`
	rows, err := s.DB.QueryContext(ctx, query, userUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.ShoppingItem
	for rows.Next() {
		var item models.ShoppingItem
		var fields []byte
		var updatedAt sql.NullTime
		if err = rows.Scan(&item.ID, &fields, &item.CreatedAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if err = json.Unmarshal(fields, &item.Fields); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if updatedAt.Valid {
			item.UpdatedAt = updatedAt.Time
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// AddShoppingItem добавляет элемент в список покупок и возвращает
// назначенный хранилищем идентификатор.
func (s *Storage) AddShoppingItem(ctx context.Context, userUID string, fields map[string]any) (string, error) {
	const op = "storage.postgres.AddShoppingItem"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	raw, err := json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	newID := uuid.New().String()
	query := `INSERT INTO shopping_items (id, user_uid, fields, created_at)
			  VALUES ($1, $2, $3, $4)`
	if _, err = s.DB.ExecContext(ctx, query, newID, userUID, raw, time.Now().UTC()); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// UpdateShoppingItem обновляет поля элемента списка покупок.
// Если элемент с таким ID у пользователя отсутствует, возвращает storage.ErrNotFound.
func (s *Storage) UpdateShoppingItem(ctx context.Context, userUID, itemID string, fields map[string]any) error {
	const op = "storage.postgres.UpdateShoppingItem"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	raw, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	// присланные поля заменяют одноимённые, остальные не трогаются
	query := `UPDATE shopping_items
			  SET fields = fields || $1::jsonb, updated_at = $2
			  WHERE user_uid = $3 AND id = $4`
	result, err := s.DB.ExecContext(ctx, query, raw, time.Now().UTC(), userUID, itemID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	return nil
}

// DeleteShoppingItem удаляет элемент списка покупок.
// Удаление отсутствующего элемента не является ошибкой.
func (s *Storage) DeleteShoppingItem(ctx context.Context, userUID, itemID string) error {
	const op = "storage.postgres.DeleteShoppingItem"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM shopping_items WHERE user_uid = $1 AND id = $2`
	if _, err := s.DB.ExecContext(ctx, query, userUID, itemID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ClearShoppingList удаляет все элементы списка покупок пользователя.
// Пустой список не является ошибкой.
func (s *Storage) ClearShoppingList(ctx context.Context, userUID string) error {
	const op = "storage.postgres.ClearShoppingList"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM shopping_items WHERE user_uid = $1`
	if _, err := s.DB.ExecContext(ctx, query, userUID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
