package catalog

import (
	"context"

	"gorm.io/gorm"
)

// Repository reads the pre-existing products table. The table is externally
// owned and its shape is opaque to this service, so rows surface as plain
// record maps and no provisioning is ever attempted.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a catalog repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListAll returns every product row in database order.
func (r *Repository) ListAll(ctx context.Context) ([]map[string]any, error) {
	rows := []map[string]any{}
	err := r.db.WithContext(ctx).
		Table("products").
		Find(&rows).
		Error
	return rows, err
}
