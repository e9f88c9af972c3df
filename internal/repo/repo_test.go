package repo

import (
	"ArmoryExchange/internal/model"
	"path/filepath"
	"testing"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// newTestDB открывает SQLite (modernc.org/sqlite) во временном файле с включёнными внешними ключами.
// Файл, а не :memory:, потому что у пула gorm несколько соединений.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: SQLiteDSN(path)}
	db, err := gorm.Open(dial, &gorm.Config{Logger: gormlogger.Discard})
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func mkUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()
	u := &model.User{Username: username, PasswordHash: "hash"}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return u
}

func mkStore(t *testing.T, db *gorm.DB, owner *model.User, name string) *model.Store {
	t.Helper()
	s := &model.Store{Name: name, UserID: owner.ID}
	if err := db.Create(s).Error; err != nil {
		t.Fatalf("create store %s: %v", name, err)
	}
	return s
}

func mkProduct(t *testing.T, db *gorm.DB, store *model.Store, name string, price int64, categoryID *int64) *model.Product {
	t.Helper()
	p := &model.Product{Name: name, Price: price, StoreID: store.ID, CategoryID: categoryID}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("create product %s: %v", name, err)
	}
	return p
}

func countRows(t *testing.T, db *gorm.DB, m any, query string, args ...any) int64 {
	t.Helper()
	var n int64
	if err := db.Model(m).Where(query, args...).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func TestMigrate_Idempotent(t *testing.T) {
	db := newTestDB(t)
	// повторный запуск на уже созданной схеме
	if err := Migrate(db); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
}

func TestIsPostgresDSN(t *testing.T) {
	cases := map[string]bool{
		"postgres://u:p@localhost:5432/db":            true,
		"postgresql://u:p@localhost/db":               true,
		"host=localhost user=u dbname=db sslmode=off": true,
		"marketplace.db":                              false,
		"file:market.db?cache=shared":                 false,
		"":                                            false,
	}
	for dsn, want := range cases {
		if got := IsPostgresDSN(dsn); got != want {
			t.Errorf("IsPostgresDSN(%q) = %v, want %v", dsn, got, want)
		}
	}
}

func TestSQLiteDSN(t *testing.T) {
	if got := SQLiteDSN(""); got != DefaultSQLitePath+"?"+sqlitePragmas {
		t.Fatalf("empty path: %q", got)
	}
	if got := SQLiteDSN("file:x.db?cache=shared"); got != "file:x.db?cache=shared&"+sqlitePragmas {
		t.Fatalf("path with query: %q", got)
	}
}
