package repo

import (
	"ArmoryExchange/internal/model"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// DefaultSQLitePath используется, когда строка подключения не задана.
const DefaultSQLitePath = "marketplace.db"

// sqlitePragmas включают проверку внешних ключей на каждом соединении пула.
const sqlitePragmas = "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

// InitDB открывает БД по строке подключения и создаёт схему.
// postgres:// и key=value DSN уходят в Postgres, всё остальное считается путём к файлу SQLite.
func InitDB(dsn string) (*gorm.DB, error) {
	db, err := Open(dsn)
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Open открывает соединение без миграций.
func Open(dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger: gormlogger.New(log.New(os.Stdout, "\r\n", log.LstdFlags), gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	}

	var dial gorm.Dialector
	if IsPostgresDSN(dsn) {
		dial = postgres.Open(dsn)
	} else {
		dial = gormsqlite.Dialector{DriverName: "sqlite", DSN: SQLiteDSN(dsn)}
	}

	db, err := gorm.Open(dial, cfg)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return db, nil
}

// Migrate идемпотентно создаёт таблицы, индексы и ограничения.
// Безопасно запускать на БД, где часть таблиц уже есть.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.User{},
		&model.Store{},
		&model.Category{},
		&model.Product{},
		&model.Order{},
	); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	// заказы, созданные до появления orders.store_id
	err := db.Exec("UPDATE orders SET store_id = (SELECT products.store_id FROM products WHERE products.id = orders.product_id) " +
		"WHERE store_id IS NULL AND product_id IS NOT NULL").Error
	if err != nil {
		return fmt.Errorf("backfill orders.store_id: %w", err)
	}
	return nil
}

// IsPostgresDSN определяет, относится ли строка подключения к Postgres.
func IsPostgresDSN(dsn string) bool {
	d := strings.TrimSpace(dsn)
	if strings.HasPrefix(d, "postgres://") || strings.HasPrefix(d, "postgresql://") {
		return true
	}
	return strings.Contains(d, "host=") && strings.Contains(d, "dbname=")
}

// SQLiteDSN дописывает к пути обязательные pragma.
func SQLiteDSN(path string) string {
	if strings.TrimSpace(path) == "" {
		path = DefaultSQLitePath
	}
	if strings.Contains(path, "?") {
		return path + "&" + sqlitePragmas
	}
	return path + "?" + sqlitePragmas
}
