package entity

type OrderStatus string

const (
	StatusPlaced         OrderStatus = "placed"
	StatusPaid           OrderStatus = "paid"
	StatusInProgress     OrderStatus = "inProgress"
	StatusOutForDelivery OrderStatus = "outForDelivery"
	StatusDelivered      OrderStatus = "delivered"
)

// forward edge per state; delivered is terminal
var nextStatus = map[OrderStatus]OrderStatus{
	StatusPlaced:         StatusPaid,
	StatusPaid:           StatusInProgress,
	StatusInProgress:     StatusOutForDelivery,
	StatusOutForDelivery: StatusDelivered,
}

func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(s) {
	case StatusPlaced, StatusPaid, StatusInProgress, StatusOutForDelivery, StatusDelivered:
		return OrderStatus(s), true
	}
	return "", false
}

// CanAdvanceTo reports whether to is the immediate forward edge from s.
// There are no backward edges and no jumps.
func (s OrderStatus) CanAdvanceTo(to OrderStatus) bool {
	next, ok := nextStatus[s]
	return ok && next == to
}
