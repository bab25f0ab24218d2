package services

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	"gorm.io/gorm"

	"eats-backend/entity"
	"eats-backend/repository"
)

type WebhookService struct {
	Orders  *repository.OrderRepository
	Gateway CheckoutGateway
	Events  OrderNotifier
}

func NewWebhookService(orders *repository.OrderRepository, gateway CheckoutGateway, events OrderNotifier) *WebhookService {
	return &WebhookService{Orders: orders, Gateway: gateway, Events: events}
}

// HandleEvent verifies and applies one gateway delivery. The gateway
// delivers at least once, so the paid transition is conditional on the
// stored status: a replay affects zero rows and still returns nil.
func (s *WebhookService) HandleEvent(payload []byte, sigHeader string) error {
	ev, err := s.Gateway.VerifyEvent(payload, sigHeader)
	if err != nil {
		return err
	}
	if !ev.Completed {
		// irrelevant event type; acknowledge and move on
		return nil
	}
	if ev.OrderID == "" {
		return fmt.Errorf("%w: order id missing in metadata", ErrMalformedEvent)
	}
	id64, err := strconv.ParseUint(ev.OrderID, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: order id %q", ErrMalformedEvent, ev.OrderID)
	}
	orderID := uint(id64)

	order, err := s.Orders.Get(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: %d", ErrOrderNotFound, orderID)
		}
		return err
	}

	applied, err := s.Orders.MarkPaidFromPlaced(orderID, ev.AmountTotal)
	if err != nil {
		return err
	}
	if !applied {
		// duplicate delivery, the order already left placed; the loaded
		// status may be stale by now, so it is not worth logging
		log.Printf("webhook: order %d already processed", orderID)
		return nil
	}

	log.Printf("webhook: order %d paid, amount %d", orderID, ev.AmountTotal)
	if s.Events != nil {
		order.Status = entity.StatusPaid
		order.TotalAmount = ev.AmountTotal
		s.Events.OrderChanged(order)
	}
	return nil
}
