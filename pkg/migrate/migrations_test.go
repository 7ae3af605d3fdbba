package migrate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/strideworks/stride-backend/pkg/migrate"
)

func TestMigrationsDirValidates(t *testing.T) {
	if err := migrate.ValidateDir("migrations"); err != nil {
		t.Fatalf("validate migrations dir: %v", err)
	}
}

func TestCatalogueMigrationContainsConstraints(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("migrations", "*_create_catalogues.sql"))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no catalogue migration file found")
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	content := string(data)

	checks := []string{
		"CREATE TABLE IF NOT EXISTS catalogues",
		"primary_image JSONB NOT NULL",
		"CREATE TABLE IF NOT EXISTS catalogue_variants",
		"FOREIGN KEY (catalogue_id) REFERENCES catalogues(id) ON DELETE CASCADE",
		"DROP TABLE IF EXISTS catalogue_variants",
	}

	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestPurchaseOrderMigrationHasUniqueNumber(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("migrations", "*_create_purchase_orders.sql"))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no purchase order migration file found")
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	if !strings.Contains(string(data), "CREATE UNIQUE INDEX IF NOT EXISTS uq_purchase_orders_po_number") {
		t.Error("missing unique index on po_number")
	}
}
