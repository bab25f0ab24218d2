package entity

import (
	"gorm.io/gorm"
)

// OrderLine is one resolved cart line. Name and UnitPrice are snapshots of
// the menu item at checkout time, so later catalog edits do not rewrite
// order history.
type OrderLine struct {
	gorm.Model
	OrderID    uint   `gorm:"index" json:"orderId"`
	MenuItemID uint   `json:"menuItemId"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	UnitPrice  int64  `json:"unitPrice"`
}
