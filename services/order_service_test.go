package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"eats-backend/entity"
	"eats-backend/repository"
)

func newOrderFixture(t *testing.T, status entity.OrderStatus) (*OrderService, *gorm.DB, *entity.Order, *entity.Restaurant, *entity.User) {
	t.Helper()
	db := newTestDB(t)
	rest := seedRestaurant(t, db)
	user := seedCustomer(t, db)

	order := entity.Order{
		RestaurantID: rest.ID,
		UserID:       user.ID,
		Status:       status,
		TotalAmount:  1500,
	}
	require.NoError(t, db.Create(&order).Error)

	svc := NewOrderService(db, repository.NewOrderRepository(db), repository.NewRestaurantRepository(db), nil)
	return svc, db, &order, rest, user
}

func TestUpdateStatus_ForwardWalk(t *testing.T) {
	svc, _, order, rest, _ := newOrderFixture(t, entity.StatusPaid)
	ownerID := rest.UserID

	for _, next := range []entity.OrderStatus{
		entity.StatusInProgress,
		entity.StatusOutForDelivery,
		entity.StatusDelivered,
	} {
		updated, err := svc.UpdateStatus(ownerID, order.ID, next)
		require.NoError(t, err)
		assert.Equal(t, next, updated.Status)
	}
}

func TestUpdateStatus_Unauthorized(t *testing.T) {
	svc, db, order, _, customer := newOrderFixture(t, entity.StatusPaid)

	_, err := svc.UpdateStatus(customer.ID, order.ID, entity.StatusInProgress)
	assert.ErrorIs(t, err, ErrUnauthorized)

	assert.Equal(t, entity.StatusPaid, loadOrder(t, db, order.ID).Status, "order must be unchanged")
}

func TestUpdateStatus_InvalidTransitions(t *testing.T) {
	tests := []struct {
		name      string
		current   entity.OrderStatus
		requested entity.OrderStatus
	}{
		{"jump paid to delivered", entity.StatusPaid, entity.StatusDelivered},
		{"backward paid to placed", entity.StatusPaid, entity.StatusPlaced},
		{"backward delivered to outForDelivery", entity.StatusDelivered, entity.StatusOutForDelivery},
		{"placed to paid is webhook-only", entity.StatusPlaced, entity.StatusPaid},
		{"placed cannot be advanced by the owner", entity.StatusPlaced, entity.StatusInProgress},
		{"delivered is terminal", entity.StatusDelivered, entity.StatusDelivered},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc, db, order, rest, _ := newOrderFixture(t, testCase.current)

			_, err := svc.UpdateStatus(rest.UserID, order.ID, testCase.requested)
			assert.ErrorIs(t, err, ErrInvalidTransition)
			assert.Equal(t, testCase.current, loadOrder(t, db, order.ID).Status)
		})
	}
}

func TestUpdateStatus_OrderNotFound(t *testing.T) {
	svc, _, _, rest, _ := newOrderFixture(t, entity.StatusPaid)

	_, err := svc.UpdateStatus(rest.UserID, 424242, entity.StatusInProgress)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestUpdateStatus_GuardedAgainstConcurrentWrite(t *testing.T) {
	svc, db, order, _, _ := newOrderFixture(t, entity.StatusPaid)

	// simulate a concurrent dashboard click that won the race after our load
	require.NoError(t, db.Model(&entity.Order{}).Where("id = ?", order.ID).
		Update("status", entity.StatusInProgress).Error)

	// the repository-level guard: the conditional write from the stale
	// predecessor affects zero rows
	ok, err := svc.Orders.UpdateStatusFromTo(db, order.ID, entity.StatusPaid, entity.StatusInProgress)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, entity.StatusInProgress, loadOrder(t, db, order.ID).Status)
}

func TestListForOwner(t *testing.T) {
	svc, _, order, rest, customer := newOrderFixture(t, entity.StatusPaid)

	orders, err := svc.ListForOwner(rest.UserID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, order.ID, orders[0].ID)
	assert.Equal(t, customer.ID, orders[0].User.ID, "user reference expanded")

	_, err = svc.ListForOwner(customer.ID)
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestListForUser_ExpandsReferences(t *testing.T) {
	svc, _, order, rest, customer := newOrderFixture(t, entity.StatusPlaced)

	orders, err := svc.ListForUser(customer.ID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, order.ID, orders[0].ID)
	assert.Equal(t, rest.ID, orders[0].Restaurant.ID, "restaurant reference expanded")
}
