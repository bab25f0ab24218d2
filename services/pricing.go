package services

import (
	"fmt"
	"strconv"
	"strings"

	"eats-backend/entity"
)

// CartItem is the untrusted client cart line. Name and Price are whatever
// the frontend happened to display; money calculations never read them.
type CartItem struct {
	MenuItemID uint   `json:"menuItemId" binding:"required"`
	Quantity   string `json:"quantity" binding:"required"`
	Name       string `json:"name"`
	Price      int64  `json:"price"`
}

// PricedLine is a cart line with the authoritative unit price resolved from
// the restaurant's stored catalog.
type PricedLine struct {
	MenuItemID uint
	Name       string
	Quantity   int
	UnitPrice  int64
}

// ResolveLines prices cartItems against the restaurant's current catalog.
// The restaurant must be freshly loaded by the caller; resolving against a
// stale copy could price deleted or changed items.
func ResolveLines(rest *entity.Restaurant, cartItems []CartItem) ([]PricedLine, error) {
	lines := make([]PricedLine, 0, len(cartItems))
	for _, ci := range cartItems {
		qty, err := strconv.Atoi(strings.TrimSpace(ci.Quantity))
		if err != nil || qty <= 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidQuantity, ci.Quantity)
		}
		item, ok := rest.FindMenuItem(ci.MenuItemID)
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrItemNotFound, ci.MenuItemID)
		}
		lines = append(lines, PricedLine{
			MenuItemID: item.ID,
			Name:       item.Name,
			Quantity:   qty,
			UnitPrice:  item.Price,
		})
	}
	return lines, nil
}
