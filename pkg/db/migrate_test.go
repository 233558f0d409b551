package db

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestMigrationFilesExist verifies that migration files are present
func TestMigrationFilesExist(t *testing.T) {
	migrationsDir := "../../migrations"

	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		t.Fatalf("migrations directory does not exist: %s", migrationsDir)
	}

	expectedFiles := []string{
		"000001_init.up.sql",
		"000001_init.down.sql",
	}

	for _, filename := range expectedFiles {
		filePath := filepath.Join(migrationsDir, filename)
		if _, err := os.Stat(filePath); os.IsNotExist(err) {
			t.Errorf("migration file does not exist: %s", filePath)
		}
	}
}

// TestMigrationFilesParseable verifies that migration files contain valid SQL
func TestMigrationFilesParseable(t *testing.T) {
	migrationsDir := "../../migrations"

	migrationFiles := []string{
		"000001_init.up.sql",
		"000001_init.down.sql",
	}

	for _, filename := range migrationFiles {
		filePath := filepath.Join(migrationsDir, filename)
		content, err := os.ReadFile(filePath)
		if err != nil {
			t.Fatalf("failed to read migration file %s: %v", filename, err)
		}

		if len(content) == 0 {
			t.Errorf("migration file %s is empty", filename)
		}

		contentStr := string(content)
		if strings.HasSuffix(filename, ".up.sql") {
			if !strings.Contains(contentStr, "CREATE TABLE") && !strings.Contains(contentStr, "CREATE EXTENSION") {
				t.Errorf("up migration %s does not contain expected CREATE statements", filename)
			}
		} else {
			if !strings.Contains(contentStr, "DROP TABLE") && !strings.Contains(contentStr, "DROP EXTENSION") {
				t.Errorf("down migration %s does not contain expected DROP statements", filename)
			}
		}
	}
}

// TestUpMigrationCoversCoreTables checks the schema creates every table the
// repositories query
func TestUpMigrationCoversCoreTables(t *testing.T) {
	content, err := os.ReadFile(filepath.Join("../../migrations", "000001_init.up.sql"))
	if err != nil {
		t.Fatalf("failed to read up migration: %v", err)
	}

	contentStr := string(content)
	for _, table := range []string{"users", "mentors", "mentees", "groups", "slots", "session_logs", "invites"} {
		if !strings.Contains(contentStr, table) {
			t.Errorf("up migration does not create table %s", table)
		}
	}
}
