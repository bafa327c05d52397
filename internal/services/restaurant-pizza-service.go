package services

import (
	"errors"

	"github.com/franciscosanchezn/restaurant-pizzas-api/internal/models"
	"gorm.io/gorm"
)

// RestaurantPizzaService manages the prices that link restaurants and pizzas
type RestaurantPizzaService interface {
	// CreateRestaurantPizza persists a new restaurant pizza after checking both references.
	// The returned value has its Restaurant and Pizza loaded.
	CreateRestaurantPizza(rp models.RestaurantPizza) (models.RestaurantPizza, error)
}

type restaurantPizzaService struct {
	db *gorm.DB
}

// NewRestaurantPizzaService creates a new instance of RestaurantPizzaService
func NewRestaurantPizzaService(db *gorm.DB) RestaurantPizzaService {
	return &restaurantPizzaService{db: db}
}

func (s *restaurantPizzaService) CreateRestaurantPizza(rp models.RestaurantPizza) (models.RestaurantPizza, error) {
	var created models.RestaurantPizza
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var restaurant models.Restaurant
		if err := tx.First(&restaurant, rp.RestaurantID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRestaurantNotFound
			}
			return err
		}
		var pizza models.Pizza
		if err := tx.First(&pizza, rp.PizzaID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPizzaNotFound
			}
			return err
		}

		record := models.RestaurantPizza{
			Price:        rp.Price,
			RestaurantID: restaurant.ID,
			PizzaID:      pizza.ID,
		}
		if err := tx.Create(&record).Error; err != nil {
			return err
		}
		return tx.Preload("Restaurant").Preload("Pizza").First(&created, record.ID).Error
	})
	if err != nil {
		return models.RestaurantPizza{}, err
	}
	return created, nil
}
