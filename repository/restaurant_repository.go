package repository

import (
	"eats-backend/entity"

	"gorm.io/gorm"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

// FindByID loads the restaurant with its full catalog. Checkout prices
// against this freshly loaded copy, never a cached one.
func (r *RestaurantRepository) FindByID(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	err := r.DB.
		Preload("MenuCategories", func(db *gorm.DB) *gorm.DB { return db.Order("menu_categories.id") }).
		Preload("MenuCategories.MenuItems", func(db *gorm.DB) *gorm.DB { return db.Order("menu_items.id") }).
		First(&rest, id).Error
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) FindByOwner(userID uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	err := r.DB.
		Preload("MenuCategories", func(db *gorm.DB) *gorm.DB { return db.Order("menu_categories.id") }).
		Preload("MenuCategories.MenuItems", func(db *gorm.DB) *gorm.DB { return db.Order("menu_items.id") }).
		Where("user_id = ?", userID).
		First(&rest).Error
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) IsOwnedBy(restaurantID, userID uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Restaurant{}).
		Where("id = ? AND user_id = ?", restaurantID, userID).
		Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *RestaurantRepository) SearchByCity(city string) ([]entity.Restaurant, error) {
	var rests []entity.Restaurant
	err := r.DB.
		Preload("MenuCategories.MenuItems").
		Where("LOWER(city) = LOWER(?)", city).
		Find(&rests).Error
	return rests, err
}

func (r *RestaurantRepository) Create(tx *gorm.DB, rest *entity.Restaurant) error {
	return tx.Create(rest).Error
}

func (r *RestaurantRepository) Save(rest *entity.Restaurant) error {
	return r.DB.Save(rest).Error
}

// ReplaceMenu swaps the whole catalog of a restaurant for a new one.
// Categories and items are replaced wholesale, matching how the frontend
// submits the full menu on every restaurant update.
func (r *RestaurantRepository) ReplaceMenu(tx *gorm.DB, restaurantID uint, categories []entity.MenuCategory) error {
	var old []entity.MenuCategory
	if err := tx.Where("restaurant_id = ?", restaurantID).Find(&old).Error; err != nil {
		return err
	}
	for i := range old {
		if err := tx.Where("menu_category_id = ?", old[i].ID).Delete(&entity.MenuItem{}).Error; err != nil {
			return err
		}
	}
	if err := tx.Where("restaurant_id = ?", restaurantID).Delete(&entity.MenuCategory{}).Error; err != nil {
		return err
	}
	for i := range categories {
		categories[i].ID = 0
		categories[i].RestaurantID = restaurantID
		for j := range categories[i].MenuItems {
			categories[i].MenuItems[j].ID = 0
			categories[i].MenuItems[j].MenuCategoryID = 0
		}
		if err := tx.Create(&categories[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
