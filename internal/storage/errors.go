// Package storage определяет общие ошибки слоя хранения,
// одинаковые для обеих реализаций (PostgreSQL и Firestore).
// Сервисы различают их через errors.Is, не зная о конкретном драйвере.
package storage

import "errors"

var (
	// ErrNotFound возвращается, когда запись отсутствует.
	// Отсутствие записи — штатная ситуация, а не сбой хранилища.
	ErrNotFound = errors.New("record not found")

	// ErrEmailTaken возвращается при попытке регистрации
	// с уже занятым адресом электронной почты.
	ErrEmailTaken = errors.New("email already registered")
)
