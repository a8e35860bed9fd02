package collection

import (
	"context"
	"fmt"

	"github.com/arifmahmud/trendora-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Table names predate this service and are referenced by the storefront's
// legacy tooling, mixed case included.
const (
	CartTable     = "added_Items"
	WishlistTable = "WishList"
)

// EnsureTable creates the named collection table and its duplicate-guard
// unique index when absent. Idempotent: repeated and concurrent calls are
// safe because both statements carry IF NOT EXISTS semantics. It runs once
// at startup rather than on every write request.
func EnsureTable(ctx context.Context, conn *gorm.DB, table string) error {
	if table == "" {
		return fmt.Errorf("table name is required")
	}

	scoped := conn.WithContext(ctx)
	if !scoped.Migrator().HasTable(table) {
		if err := scoped.Table(table).Migrator().CreateTable(&models.CollectionItem{}); err != nil {
			return fmt.Errorf("creating table %q: %w", table, err)
		}
	}

	indexSQL := fmt.Sprintf(
		`CREATE UNIQUE INDEX IF NOT EXISTS %q ON %q (%q, %q)`,
		table+"_addedID_userEmail_key", table, "addedID", "userEmail",
	)
	if err := scoped.Exec(indexSQL).Error; err != nil {
		return fmt.Errorf("creating unique index on %q: %w", table, err)
	}

	return nil
}

// EnsureSchema provisions both collection tables.
func EnsureSchema(ctx context.Context, conn *gorm.DB) error {
	for _, table := range []string{CartTable, WishlistTable} {
		if err := EnsureTable(ctx, conn, table); err != nil {
			return err
		}
	}
	return nil
}
