package entity

import (
	"gorm.io/gorm"
)

// DeliveryDetails is a snapshot of what the payer typed at checkout. The
// backend never interprets it, only stores and echoes it.
type DeliveryDetails struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	AddressLine1 string `json:"addressLine1"`
	City         string `json:"city"`
	Country      string `json:"country"`
}

type Order struct {
	gorm.Model

	RestaurantID uint       `gorm:"index" json:"restaurantId"`
	Restaurant   Restaurant `json:"restaurant"`

	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"user"`

	Lines []OrderLine `gorm:"constraint:OnDelete:CASCADE" json:"lines"`

	DeliveryDetails DeliveryDetails `gorm:"embedded;embeddedPrefix:delivery_" json:"deliveryDetails"`

	TotalAmount int64       `json:"totalAmount"` // computed server-side, never from the client
	Status      OrderStatus `gorm:"type:varchar(20);index" json:"status"`
}
