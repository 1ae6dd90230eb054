// Package models содержит доменную модель пользователя системы,
// включающую данные учётной записи, хэш пароля и дату создания.
// Структура используется в бизнес‑логике и при работе с хранилищем.
package models

import "time"

// User представляет зарегистрированного пользователя системы.
type User struct {
	UID          string    // Уникальный идентификатор пользователя
	Email        string    // Электронная почта (уникальная)
	Name         string    // Отображаемое имя пользователя
	PasswordHash string    // Хэш пароля пользователя
	CreatedAt    time.Time // Дата создания учётной записи
}
