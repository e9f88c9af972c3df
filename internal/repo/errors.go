package repo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var (
	// ErrDuplicate: нарушено ограничение уникальности.
	ErrDuplicate = errors.New("duplicate key")
	// ErrForeignKey: ссылка на несуществующую строку.
	ErrForeignKey = errors.New("foreign key violation")
	// ErrConstraint: нарушен CHECK или NOT NULL.
	ErrConstraint = errors.New("constraint violation")
)

// SQLSTATE коды Postgres
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgNotNullViolation    = "23502"
)

// classify приводит ошибки драйверов к ошибкам пакета, сохраняя исходную в цепочке.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if kind := kindOf(err); kind != nil {
		return fmt.Errorf("%w: %w", kind, err)
	}
	return err
}

func kindOf(err error) error {
	switch {
	case errors.Is(err, ErrDuplicate), errors.Is(err, ErrForeignKey), errors.Is(err, ErrConstraint):
		// уже классифицирована
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrForeignKey
	}

	var se *sqlite.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return ErrDuplicate
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			return ErrForeignKey
		case sqlite3.SQLITE_CONSTRAINT_CHECK, sqlite3.SQLITE_CONSTRAINT_NOTNULL:
			return ErrConstraint
		}
		// без расширенных кодов остаётся только текст
		if se.Code()&0xff == sqlite3.SQLITE_CONSTRAINT {
			return kindFromMessage(se.Error())
		}
		return nil
	}

	var pe *pgconn.PgError
	if errors.As(err, &pe) {
		switch pe.Code {
		case pgUniqueViolation:
			return ErrDuplicate
		case pgForeignKeyViolation:
			return ErrForeignKey
		case pgCheckViolation, pgNotNullViolation:
			return ErrConstraint
		}
	}
	return nil
}

func kindFromMessage(msg string) error {
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return ErrDuplicate
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return ErrForeignKey
	default:
		return ErrConstraint
	}
}
