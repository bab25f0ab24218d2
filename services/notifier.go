package services

import "eats-backend/entity"

// OrderNotifier receives order changes worth pushing to a live dashboard.
// The ws hub implements it; services treat it as optional and fire-and-forget.
type OrderNotifier interface {
	OrderChanged(o *entity.Order)
}
