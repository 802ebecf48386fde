// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"testing"
)

func TestParseFlags_EnvVars(t *testing.T) {
	// Set env vars
	os.Setenv("PORT", "9000")
	os.Setenv("DATABASE_URL", "candidates.db")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("expected default database type sqlite, got %s", cfg.DatabaseType)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Setenv("PORT", "9000")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:test.db"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
}

func TestParseFlags_RequiresDatabaseURL(t *testing.T) {
	os.Clearenv()

	if _, err := ParseFlags([]string{}); err == nil {
		t.Error("expected error when no database URL is configured")
	}
}

func TestParseFlags_RejectsUnknownDatabaseType(t *testing.T) {
	os.Clearenv()

	if _, err := ParseFlags([]string{"-d", "x", "-t", "mysql"}); err == nil {
		t.Error("expected error for unsupported database type")
	}
}

func TestParseFlags_ImportFile(t *testing.T) {
	os.Clearenv()

	cfg, err := ParseFlags([]string{"-d", "x", "-import", "candidates.csv"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ImportFile != "candidates.csv" {
		t.Errorf("expected import file candidates.csv, got %s", cfg.ImportFile)
	}
}

func TestDriverName(t *testing.T) {
	if got := (Config{DatabaseType: "postgres"}).DriverName(); got != "postgres" {
		t.Errorf("expected postgres driver, got %s", got)
	}
	if got := (Config{DatabaseType: "sqlite"}).DriverName(); got != "sqlite" {
		t.Errorf("expected sqlite driver, got %s", got)
	}
}
