package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"eats-backend/entity"
	"eats-backend/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// unique shared-cache name per test so parallel tests do not collide
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{}, &entity.MenuCategory{}, &entity.MenuItem{},
		&entity.Order{}, &entity.OrderLine{},
	))
	return db
}

// seedRestaurant creates an owner plus a restaurant selling item A at 500
// and item B at 300, delivery price 200. Returns the freshly loaded
// restaurant.
func seedRestaurant(t *testing.T, db *gorm.DB) *entity.Restaurant {
	t.Helper()

	owner := entity.User{Email: "owner@example.com", Password: "x", Name: "Owner", Role: "owner"}
	require.NoError(t, db.Create(&owner).Error)

	rest := entity.Restaurant{
		RestaurantName: "Testaurant",
		City:           "Testville",
		Country:        "Testland",
		DeliveryPrice:  200,
		Cuisines:       []string{"pizza"},
		UserID:         owner.ID,
		MenuCategories: []entity.MenuCategory{
			{
				Name: "Mains",
				MenuItems: []entity.MenuItem{
					{Name: "Item A", Price: 500},
					{Name: "Item B", Price: 300},
				},
			},
		},
	}
	require.NoError(t, db.Create(&rest).Error)

	loaded, err := repository.NewRestaurantRepository(db).FindByID(rest.ID)
	require.NoError(t, err)
	return loaded
}

func seedCustomer(t *testing.T, db *gorm.DB) *entity.User {
	t.Helper()
	u := entity.User{Email: "diner@example.com", Password: "x", Name: "Diner", Role: "customer"}
	require.NoError(t, db.Create(&u).Error)
	return &u
}

func itemID(rest *entity.Restaurant, name string) uint {
	for _, c := range rest.MenuCategories {
		for _, i := range c.MenuItems {
			if i.Name == name {
				return i.ID
			}
		}
	}
	return 0
}

// fakeGateway satisfies CheckoutGateway without talking to Stripe.
type fakeGateway struct {
	url       string
	createErr error

	lastLines    []PricedLine
	lastDelivery int64
	lastOrderID  string

	event     CheckoutEvent
	verifyErr error
}

func (f *fakeGateway) CreateSession(lines []PricedLine, deliveryPrice int64, orderID string) (string, error) {
	f.lastLines = lines
	f.lastDelivery = deliveryPrice
	f.lastOrderID = orderID
	if f.createErr != nil {
		return "", f.createErr
	}
	if f.url == "" {
		return "https://pay.example.com/session", nil
	}
	return f.url, nil
}

func (f *fakeGateway) VerifyEvent(payload []byte, sigHeader string) (CheckoutEvent, error) {
	if f.verifyErr != nil {
		return CheckoutEvent{}, f.verifyErr
	}
	return f.event, nil
}
