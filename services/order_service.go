package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"eats-backend/entity"
	"eats-backend/repository"
)

type OrderService struct {
	DB     *gorm.DB
	Orders *repository.OrderRepository
	Rests  *repository.RestaurantRepository
	Events OrderNotifier
}

func NewOrderService(
	db *gorm.DB,
	orders *repository.OrderRepository,
	rests *repository.RestaurantRepository,
	events OrderNotifier,
) *OrderService {
	return &OrderService{DB: db, Orders: orders, Rests: rests, Events: events}
}

// ----- Listing -----

func (s *OrderService) ListForUser(userID uint) ([]entity.Order, error) {
	return s.Orders.ListForUser(userID)
}

// ListForOwner resolves the caller's restaurant first; a caller without a
// restaurant has no orders to see.
func (s *OrderService) ListForOwner(userID uint) ([]entity.Order, error) {
	rest, err := s.Rests.FindByOwner(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}
	return s.Orders.ListForRestaurant(rest.ID)
}

// ----- Owner status updates -----

// UpdateStatus advances an order one step along the fulfillment graph.
// Only the owner of the order's restaurant may call it, placed -> paid is
// reserved to the webhook path, and the write is guarded on the loaded
// status so concurrent clicks cannot double-advance.
func (s *OrderService) UpdateStatus(callerUserID, orderID uint, requested entity.OrderStatus) (*entity.Order, error) {
	order, err := s.Orders.Get(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if _, err := s.Rests.FindByID(order.RestaurantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}
	owned, err := s.Rests.IsOwnedBy(order.RestaurantID, callerUserID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, ErrUnauthorized
	}

	if requested == entity.StatusPaid || order.Status == entity.StatusPlaced || !order.Status.CanAdvanceTo(requested) {
		return nil, fmt.Errorf("%w: %s to %s", ErrInvalidTransition, order.Status, requested)
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		ok, err := s.Orders.UpdateStatusFromTo(tx, order.ID, order.Status, requested)
		if err != nil {
			return err
		}
		if !ok {
			// someone else moved the order since we loaded it
			return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, order.Status, requested)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.Orders.Get(order.ID)
	if err != nil {
		return nil, err
	}
	if s.Events != nil {
		s.Events.OrderChanged(updated)
	}
	return updated, nil
}
