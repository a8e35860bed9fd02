package collection

import (
	"context"

	"github.com/arifmahmud/trendora-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository persists one owner-scoped collection table. Cart and wishlist
// each get their own instance bound to a table name.
type Repository struct {
	db    *gorm.DB
	table string
}

// NewRepository constructs a repository bound to the provided gorm DB and table.
func NewRepository(db *gorm.DB, table string) *Repository {
	return &Repository{db: db, table: table}
}

// Table returns the bound table name.
func (r *Repository) Table() string {
	return r.table
}

// ListAll returns every row in database order.
func (r *Repository) ListAll(ctx context.Context) ([]models.CollectionItem, error) {
	items := []models.CollectionItem{}
	err := r.db.WithContext(ctx).
		Table(r.table).
		Find(&items).
		Error
	return items, err
}

// ListByOwner returns the rows whose userEmail matches exactly. A missing
// owner yields an empty slice, not an error.
func (r *Repository) ListByOwner(ctx context.Context, userEmail string) ([]models.CollectionItem, error) {
	items := []models.CollectionItem{}
	err := r.db.WithContext(ctx).
		Table(r.table).
		Where(`"userEmail" = ?`, userEmail).
		Find(&items).
		Error
	return items, err
}

// FindByPair looks up the row matching (addedID, userEmail).
func (r *Repository) FindByPair(ctx context.Context, addedID int, userEmail string) (*models.CollectionItem, error) {
	var item models.CollectionItem
	err := r.db.WithContext(ctx).
		Table(r.table).
		Where(`"addedID" = ? AND "userEmail" = ?`, addedID, userEmail).
		First(&item).
		Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Insert creates the row and back-fills the generated id and timestamps.
func (r *Repository) Insert(ctx context.Context, item *models.CollectionItem) error {
	return r.db.WithContext(ctx).
		Table(r.table).
		Create(item).
		Error
}

// DeleteByID removes the row with the given surrogate key and reports how
// many rows were affected (zero or one; id is the primary key).
func (r *Repository) DeleteByID(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Table(r.table).
		Where("id = ?", id).
		Delete(&models.CollectionItem{})
	return res.RowsAffected, res.Error
}
