// Package models содержит структуру элемента списка покупок.
package models

import "time"

// ShoppingItem представляет элемент списка покупок пользователя.
// Поля элемента произвольные и хранятся как есть, идентификатор
// и дата создания назначаются хранилищем.
type ShoppingItem struct {
	ID        string         `json:"id"`                  // Идентификатор, назначается хранилищем
	Fields    map[string]any `json:"fields"`              // Произвольные поля элемента
	CreatedAt time.Time      `json:"createdAt,omitempty"` // Дата добавления
	UpdatedAt time.Time      `json:"updatedAt,omitempty"` // Дата последнего изменения
}
