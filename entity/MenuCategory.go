package entity

import (
	"gorm.io/gorm"
)

type MenuCategory struct {
	gorm.Model
	Name string `json:"name"`

	RestaurantID uint `gorm:"index" json:"restaurantId"`

	MenuItems []MenuItem `gorm:"constraint:OnDelete:CASCADE" json:"menuItems"`
}
