package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CollectionItem is one row of an owner-scoped collection table. The cart
// (added_Items) and wishlist (WishList) tables share this exact layout, so
// the model carries no table name; the repository binds it at query time.
//
// Column names keep the storefront's legacy camelCase spelling: the frontend
// reads rows verbatim.
type CollectionItem struct {
	ID        uint            `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	AddedID   int             `gorm:"column:addedID;not null" json:"addedID"`
	Title     string          `gorm:"column:title;size:255;not null" json:"title"`
	UserEmail string          `gorm:"column:userEmail;size:255;not null" json:"userEmail"`
	Price     decimal.Decimal `gorm:"column:price;type:decimal(10,2);not null" json:"price"`
	ImageURL  string          `gorm:"column:image_url;type:text;not null" json:"image_url"`
	UserName  string          `gorm:"column:userName;size:255;not null" json:"userName"`
	Size      string          `gorm:"column:size;size:255;not null" json:"size"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}
