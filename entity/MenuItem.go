package entity

import (
	"gorm.io/gorm"
)

// MenuItem is the authoritative catalog entry. Checkout only reads it; the
// price here is the only one that ever reaches an order.
type MenuItem struct {
	gorm.Model
	Name     string `json:"name"`
	Price    int64  `json:"price"` // smallest currency unit, >= 0
	ImageURL string `json:"imageUrl"`

	MenuCategoryID uint `gorm:"index" json:"menuCategoryId"`
}
