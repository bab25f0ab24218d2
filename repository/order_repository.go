package repository

import (
	"eats-backend/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) Get(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Lines").First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GET /api/order — orders of one user, restaurant/user expanded
func (r *OrderRepository) ListForUser(userID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.
		Preload("Lines").
		Preload("Restaurant").
		Preload("User").
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&orders).Error
	return orders, err
}

// GET /api/my/restaurant/order — orders of one restaurant
func (r *OrderRepository) ListForRestaurant(restaurantID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.
		Preload("Lines").
		Preload("Restaurant").
		Preload("User").
		Where("restaurant_id = ?", restaurantID).
		Order("id DESC").
		Find(&orders).Error
	return orders, err
}

// ---------------- Status transitions ----------------

// MarkPaidFromPlaced applies placed -> paid and records the gateway-reported
// amount. The WHERE clause carries the current status, so a replayed or
// concurrent webhook delivery affects zero rows instead of overwriting.
func (r *OrderRepository) MarkPaidFromPlaced(orderID uint, amount int64) (bool, error) {
	res := r.DB.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, entity.StatusPlaced).
		Updates(map[string]any{"status": entity.StatusPaid, "total_amount": amount})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// UpdateStatusFromTo flips the status only while the stored value still
// matches from, so concurrent updates cannot jump or lose a transition.
func (r *OrderRepository) UpdateStatusFromTo(tx *gorm.DB, orderID uint, from, to entity.OrderStatus) (bool, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
