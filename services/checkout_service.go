package services

import (
	"errors"
	"strconv"

	"gorm.io/gorm"

	"eats-backend/entity"
	"eats-backend/repository"
)

type CheckoutService struct {
	DB      *gorm.DB
	Orders  *repository.OrderRepository
	Rests   *repository.RestaurantRepository
	Gateway CheckoutGateway
	Events  OrderNotifier
}

func NewCheckoutService(
	db *gorm.DB,
	orders *repository.OrderRepository,
	rests *repository.RestaurantRepository,
	gateway CheckoutGateway,
	events OrderNotifier,
) *CheckoutService {
	return &CheckoutService{DB: db, Orders: orders, Rests: rests, Gateway: gateway, Events: events}
}

// ----- DTOs from Controller -----

type DeliveryDetailsIn struct {
	Email        string `json:"email" binding:"required,email"`
	Name         string `json:"name" binding:"required"`
	AddressLine1 string `json:"addressLine1" binding:"required"`
	City         string `json:"city" binding:"required"`
	Country      string `json:"country" binding:"required"`
}

type CreateCheckoutReq struct {
	RestaurantID    uint              `json:"restaurantId" binding:"required"`
	CartItems       []CartItem        `json:"cartItems" binding:"required,min=1,dive"`
	DeliveryDetails DeliveryDetailsIn `json:"deliveryDetails" binding:"required"`
}

// CreateCheckout turns the untrusted cart into a priced order and hands off
// to the gateway. The order is persisted in placed before the gateway call,
// so there is an auditable record even for abandoned payments and the
// webhook is left with a pure status transition.
func (s *CheckoutService) CreateCheckout(userID uint, req *CreateCheckoutReq) (string, error) {
	rest, err := s.Rests.FindByID(req.RestaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrRestaurantNotFound
		}
		return "", err
	}

	lines, err := ResolveLines(rest, req.CartItems)
	if err != nil {
		return "", err
	}

	total := rest.DeliveryPrice
	for _, l := range lines {
		total += l.UnitPrice * int64(l.Quantity)
	}

	order := entity.Order{
		RestaurantID: rest.ID,
		UserID:       userID,
		Status:       entity.StatusPlaced,
		TotalAmount:  total,
		DeliveryDetails: entity.DeliveryDetails{
			Email:        req.DeliveryDetails.Email,
			Name:         req.DeliveryDetails.Name,
			AddressLine1: req.DeliveryDetails.AddressLine1,
			City:         req.DeliveryDetails.City,
			Country:      req.DeliveryDetails.Country,
		},
	}
	for _, l := range lines {
		order.Lines = append(order.Lines, entity.OrderLine{
			MenuItemID: l.MenuItemID,
			Name:       l.Name,
			Quantity:   l.Quantity,
			UnitPrice:  l.UnitPrice,
		})
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Orders.Create(tx, &order)
	})
	if err != nil {
		return "", err
	}

	url, err := s.Gateway.CreateSession(lines, rest.DeliveryPrice, strconv.FormatUint(uint64(order.ID), 10))
	if err != nil {
		return "", err
	}

	if s.Events != nil {
		s.Events.OrderChanged(&order)
	}
	return url, nil
}
