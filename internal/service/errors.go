package service

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"
)

// Бизнес-ошибки. Хендлеры сопоставляют их с HTTP-статусами через errors.Is.
var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrStoreNameTaken     = errors.New("store name already taken")
	ErrAlreadyHasStore    = errors.New("user already owns a store")
	ErrNoStore            = errors.New("user has no store")
	ErrNotFound           = errors.New("not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrCheckoutFailed     = errors.New("checkout failed, no orders were placed")
)

const (
	maxUsernameLen = 64
	maxNameLen     = 128
)

// notFound превращает gorm.ErrRecordNotFound в ErrNotFound, остальное оборачивает.
func notFound(what string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return fmt.Errorf("%s: %w", what, err)
}

// cleanName обрезает пробелы и проверяет длину.
func cleanName(field, v string, max int) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", fmt.Errorf("%w: %s is required", ErrInvalidInput, field)
	}
	if utf8.RuneCountInString(v) > max {
		return "", fmt.Errorf("%w: %s is longer than %d characters", ErrInvalidInput, field, max)
	}
	return v, nil
}
