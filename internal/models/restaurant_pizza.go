package models

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Price bounds for a pizza sold by a restaurant, inclusive
const (
	MinPrice = 1
	MaxPrice = 30
)

// ErrInvalidPrice is returned by the save hook when the price is out of range
var ErrInvalidPrice = errors.New("price out of range")

// RestaurantPizza links a restaurant with a pizza at a given price
type RestaurantPizza struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Price        float64    `gorm:"not null;check:chk_restaurant_pizzas_price,price >= 1 AND price <= 30" json:"price"`
	RestaurantID uint       `gorm:"not null;index" json:"restaurant_id"`
	PizzaID      uint       `gorm:"not null;index" json:"pizza_id"`
	Restaurant   Restaurant `json:"restaurant"`
	Pizza        Pizza      `json:"pizza"`
}

func (RestaurantPizza) TableName() string {
	return "restaurant_pizzas"
}

// BeforeSave rejects prices outside [MinPrice, MaxPrice] before anything reaches the store
func (rp *RestaurantPizza) BeforeSave(tx *gorm.DB) error {
	return ValidatePrice(rp.Price)
}

// ValidatePrice reports whether price is within the accepted range
func ValidatePrice(price float64) error {
	if price < MinPrice || price > MaxPrice {
		return fmt.Errorf("%w: %v not in [%d, %d]", ErrInvalidPrice, price, MinPrice, MaxPrice)
	}
	return nil
}
