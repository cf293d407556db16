// Package testutil provides SQLite test helpers
package testutil

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteTestHelper provides utilities for SQLite testing
type SQLiteTestHelper struct {
	DB     *sql.DB
	DBPath string
}

// NewSQLiteTestHelper creates a new SQLite test helper with temp database
func NewSQLiteTestHelper(t *testing.T) (*SQLiteTestHelper, error) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open test database: %w", err)
	}

	helper := &SQLiteTestHelper{
		DB:     db,
		DBPath: dbPath,
	}

	t.Cleanup(func() {
		helper.DB.Close()
	})

	return helper, nil
}

// QuerySingle queries a single value
func (h *SQLiteTestHelper) QuerySingle(t *testing.T, query string, args ...interface{}) interface{} {
	var result interface{}
	err := h.DB.QueryRow(query, args...).Scan(&result)
	if err != nil {
		t.Fatalf("Failed to query: %v", err)
	}
	return result
}
