package services

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eats-backend/entity"
	"eats-backend/repository"
)

func newCheckoutService(t *testing.T, gw CheckoutGateway) (*CheckoutService, *entity.Restaurant, *entity.User) {
	t.Helper()
	db := newTestDB(t)
	rest := seedRestaurant(t, db)
	user := seedCustomer(t, db)
	svc := NewCheckoutService(db, repository.NewOrderRepository(db), repository.NewRestaurantRepository(db), gw, nil)
	return svc, rest, user
}

func TestCreateCheckout_TotalAndOrder(t *testing.T) {
	gw := &fakeGateway{}
	svc, rest, user := newCheckoutService(t, gw)

	// 500*2 + 300*1 + 200 delivery = 1500; client-sent prices are garbage on purpose
	req := &CreateCheckoutReq{
		RestaurantID: rest.ID,
		CartItems: []CartItem{
			{MenuItemID: itemID(rest, "Item A"), Quantity: "2", Price: 1, Name: "cheap"},
			{MenuItemID: itemID(rest, "Item B"), Quantity: "1", Price: 1},
		},
		DeliveryDetails: DeliveryDetailsIn{
			Email: "diner@example.com", Name: "Diner", AddressLine1: "1 Test St", City: "Testville",
		},
	}

	url, err := svc.CreateCheckout(user.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example.com/session", url)

	var orders []entity.Order
	require.NoError(t, svc.DB.Preload("Lines").Find(&orders).Error)
	require.Len(t, orders, 1)

	order := orders[0]
	assert.Equal(t, entity.StatusPlaced, order.Status)
	assert.Equal(t, int64(1500), order.TotalAmount)
	assert.Equal(t, user.ID, order.UserID)
	assert.Equal(t, rest.ID, order.RestaurantID)
	assert.Equal(t, "1 Test St", order.DeliveryDetails.AddressLine1)
	require.Len(t, order.Lines, 2)
	assert.Equal(t, int64(500), order.Lines[0].UnitPrice)
	assert.Equal(t, 2, order.Lines[0].Quantity)
	assert.Equal(t, int64(300), order.Lines[1].UnitPrice)

	// gateway got the resolved lines and the order id in metadata
	assert.Equal(t, strconv.FormatUint(uint64(order.ID), 10), gw.lastOrderID)
	assert.Equal(t, int64(200), gw.lastDelivery)
	require.Len(t, gw.lastLines, 2)
	assert.Equal(t, int64(500), gw.lastLines[0].UnitPrice)
}

func TestCreateCheckout_BadCartCreatesNoOrder(t *testing.T) {
	tests := []struct {
		name    string
		cart    []CartItem
		wantErr error
	}{
		{
			name:    "unknown item",
			cart:    []CartItem{{MenuItemID: 424242, Quantity: "1"}},
			wantErr: ErrItemNotFound,
		},
		{
			name:    "bad quantity",
			cart:    []CartItem{{MenuItemID: 0, Quantity: "zero"}},
			wantErr: ErrInvalidQuantity,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			gw := &fakeGateway{}
			svc, rest, user := newCheckoutService(t, gw)

			if testCase.cart[0].MenuItemID == 0 {
				testCase.cart[0].MenuItemID = itemID(rest, "Item A")
			}
			req := &CreateCheckoutReq{
				RestaurantID:    rest.ID,
				CartItems:       testCase.cart,
				DeliveryDetails: DeliveryDetailsIn{Email: "d@e.com", Name: "D", AddressLine1: "1", City: "C"},
			}

			_, err := svc.CreateCheckout(user.ID, req)
			assert.ErrorIs(t, err, testCase.wantErr)

			var cnt int64
			require.NoError(t, svc.DB.Model(&entity.Order{}).Count(&cnt).Error)
			assert.Zero(t, cnt, "failed checkout must not persist an order")
			assert.Empty(t, gw.lastOrderID, "gateway must not be called")
		})
	}
}

func TestCreateCheckout_RestaurantNotFound(t *testing.T) {
	svc, _, user := newCheckoutService(t, &fakeGateway{})

	req := &CreateCheckoutReq{
		RestaurantID:    9999,
		CartItems:       []CartItem{{MenuItemID: 1, Quantity: "1"}},
		DeliveryDetails: DeliveryDetailsIn{Email: "d@e.com", Name: "D", AddressLine1: "1", City: "C"},
	}
	_, err := svc.CreateCheckout(user.ID, req)
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestCreateCheckout_GatewayFailureKeepsOrder(t *testing.T) {
	gw := &fakeGateway{createErr: ErrGateway}
	svc, rest, user := newCheckoutService(t, gw)

	req := &CreateCheckoutReq{
		RestaurantID:    rest.ID,
		CartItems:       []CartItem{{MenuItemID: itemID(rest, "Item A"), Quantity: "1"}},
		DeliveryDetails: DeliveryDetailsIn{Email: "d@e.com", Name: "D", AddressLine1: "1", City: "C"},
	}

	_, err := svc.CreateCheckout(user.ID, req)
	assert.ErrorIs(t, err, ErrGateway)

	// the placed order stays as the audit record of the attempt
	var orders []entity.Order
	require.NoError(t, svc.DB.Find(&orders).Error)
	require.Len(t, orders, 1)
	assert.Equal(t, entity.StatusPlaced, orders[0].Status)
}
