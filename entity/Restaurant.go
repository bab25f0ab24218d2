package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	RestaurantName        string   `json:"restaurantName"`
	City                  string   `json:"city"`
	Country               string   `json:"country"`
	DeliveryPrice         int64    `json:"deliveryPrice"` // smallest currency unit
	EstimatedDeliveryTime int      `json:"estimatedDeliveryTime"`
	Cuisines              []string `gorm:"serializer:json" json:"cuisines"`
	ImageURL              string   `json:"imageUrl"`

	UserID uint `gorm:"index" json:"userId"` // owning user
	User   User `json:"-"`

	MenuCategories []MenuCategory `gorm:"constraint:OnDelete:CASCADE" json:"menuCategories"`

	Orders []Order `json:"-"`
}

// FindMenuItem looks an item up across all categories of the restaurant.
func (r *Restaurant) FindMenuItem(menuItemID uint) (*MenuItem, bool) {
	for ci := range r.MenuCategories {
		items := r.MenuCategories[ci].MenuItems
		for ii := range items {
			if items[ii].ID == menuItemID {
				return &items[ii], true
			}
		}
	}
	return nil, false
}
