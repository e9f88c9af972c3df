// Package auth хеширует и проверяет пароли пользователей.
package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordLen: bcrypt учитывает не больше 72 байт пароля.
const MaxPasswordLen = 72

var (
	// ErrMismatch: пароль не совпал с хешем.
	ErrMismatch = errors.New("password mismatch")
	// ErrPasswordTooLong: пароль длиннее MaxPasswordLen байт.
	ErrPasswordTooLong = errors.New("password is longer than 72 bytes")
)

// dummyHash сравнивается, когда пользователя нет, чтобы оба пути стоили одного bcrypt.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("armory-exchange-dummy"), bcrypt.DefaultCost)

// HashPassword возвращает солёный bcrypt-хеш.
func HashPassword(password string) (string, error) {
	if len(password) > MaxPasswordLen {
		return "", ErrPasswordTooLong
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// CheckPassword сравнивает пароль с хешем за постоянное время.
func CheckPassword(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	return err
}

// BurnCompare тратит время одной проверки bcrypt впустую.
func BurnCompare(password string) {
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}
