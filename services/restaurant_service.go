package services

import (
	"errors"

	"gorm.io/gorm"

	"eats-backend/entity"
	"eats-backend/repository"
)

type RestaurantService struct {
	DB    *gorm.DB
	Rests *repository.RestaurantRepository
}

func NewRestaurantService(db *gorm.DB, rests *repository.RestaurantRepository) *RestaurantService {
	return &RestaurantService{DB: db, Rests: rests}
}

// ----- DTOs from Controller -----

type MenuItemIn struct {
	Name     string `json:"name" binding:"required"`
	Price    int64  `json:"price" binding:"min=0"`
	ImageURL string `json:"imageUrl"`
}

type MenuCategoryIn struct {
	Name      string       `json:"name" binding:"required"`
	MenuItems []MenuItemIn `json:"menuItems" binding:"dive"`
}

type RestaurantIn struct {
	RestaurantName        string           `json:"restaurantName" binding:"required"`
	City                  string           `json:"city" binding:"required"`
	Country               string           `json:"country" binding:"required"`
	DeliveryPrice         int64            `json:"deliveryPrice" binding:"min=0"`
	EstimatedDeliveryTime int              `json:"estimatedDeliveryTime" binding:"min=0"`
	Cuisines              []string         `json:"cuisines"`
	ImageURL              string           `json:"imageUrl"`
	MenuCategories        []MenuCategoryIn `json:"menuCategories" binding:"dive"`
}

func buildCategories(in []MenuCategoryIn) []entity.MenuCategory {
	cats := make([]entity.MenuCategory, 0, len(in))
	for _, c := range in {
		cat := entity.MenuCategory{Name: c.Name}
		for _, i := range c.MenuItems {
			cat.MenuItems = append(cat.MenuItems, entity.MenuItem{
				Name:     i.Name,
				Price:    i.Price,
				ImageURL: i.ImageURL,
			})
		}
		cats = append(cats, cat)
	}
	return cats
}

// ----- Owner side -----

func (s *RestaurantService) GetMyRestaurant(userID uint) (*entity.Restaurant, error) {
	rest, err := s.Rests.FindByOwner(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}
	return rest, nil
}

// CreateMyRestaurant creates the caller's restaurant; one per user.
// Creating a restaurant also promotes the user to the owner role so the
// order dashboard routes open up.
func (s *RestaurantService) CreateMyRestaurant(userID uint, in *RestaurantIn) (*entity.Restaurant, error) {
	if _, err := s.Rests.FindByOwner(userID); err == nil {
		return nil, ErrRestaurantExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	rest := &entity.Restaurant{
		RestaurantName:        in.RestaurantName,
		City:                  in.City,
		Country:               in.Country,
		DeliveryPrice:         in.DeliveryPrice,
		EstimatedDeliveryTime: in.EstimatedDeliveryTime,
		Cuisines:              in.Cuisines,
		ImageURL:              in.ImageURL,
		UserID:                userID,
		MenuCategories:        buildCategories(in.MenuCategories),
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Rests.Create(tx, rest); err != nil {
			return err
		}
		return tx.Model(&entity.User{}).Where("id = ?", userID).Update("role", "owner").Error
	})
	if err != nil {
		return nil, err
	}
	return rest, nil
}

// UpdateMyRestaurant replaces profile fields and the whole menu.
func (s *RestaurantService) UpdateMyRestaurant(userID uint, in *RestaurantIn) (*entity.Restaurant, error) {
	rest, err := s.Rests.FindByOwner(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}

	rest.RestaurantName = in.RestaurantName
	rest.City = in.City
	rest.Country = in.Country
	rest.DeliveryPrice = in.DeliveryPrice
	rest.EstimatedDeliveryTime = in.EstimatedDeliveryTime
	rest.Cuisines = in.Cuisines
	if in.ImageURL != "" {
		rest.ImageURL = in.ImageURL
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("MenuCategories").Save(rest).Error; err != nil {
			return err
		}
		return s.Rests.ReplaceMenu(tx, rest.ID, buildCategories(in.MenuCategories))
	})
	if err != nil {
		return nil, err
	}

	return s.Rests.FindByID(rest.ID)
}

// ----- Public side -----

func (s *RestaurantService) Detail(restaurantID uint) (*entity.Restaurant, error) {
	rest, err := s.Rests.FindByID(restaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}
	return rest, nil
}

func (s *RestaurantService) SearchByCity(city string) ([]entity.Restaurant, error) {
	return s.Rests.SearchByCity(city)
}
