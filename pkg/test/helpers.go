package test

import (
	"database/sql"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"todoapi/internal/adapter/database/sqlite"
	"todoapi/internal/adapter/database/sqlite/repository"
	"todoapi/internal/core/port"
)

// Setup bundles an in-memory database with repositories over it.
type Setup struct {
	DB    *sqlite.DB
	Users port.UserRepository
	Todos port.TodoRepository
}

func NewSetup(t *testing.T) *Setup {
	t.Helper()

	db := InitTestDB(t)

	return &Setup{
		DB:    db,
		Users: repository.NewUserRepository(db),
		Todos: repository.NewTodoRepository(db),
	}
}

// InitTestDB opens a :memory: database with migrations applied. The pool is
// pinned to one connection so every query sees the same in-memory database.
func InitTestDB(t *testing.T) *sqlite.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")

	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}

	migrationsPath := filepath.Join(FindProjectRoot(), "db", "migrations", "sqlite")

	if err := sqlite.RunMigrations(db, migrationsPath); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() { db.Close() })

	return sqlite.WrapConn(db)
}

// FindProjectRoot walks up from this file until it finds go.mod.
func FindProjectRoot() string {
	_, filename, _, _ := runtime.Caller(0)
	dir := filepath.Dir(filename)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	if wd, err := os.Getwd(); err == nil {
		return wd
	}

	log.Fatal("could not find project root directory")
	return ""
}
