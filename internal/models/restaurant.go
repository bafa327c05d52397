package models

// Restaurant represents a restaurant and the pizzas it offers
type Restaurant struct {
	ID               uint              `gorm:"primaryKey" json:"id"`
	Name             string            `gorm:"not null" json:"name"`
	Address          string            `json:"address"`
	RestaurantPizzas []RestaurantPizza `gorm:"constraint:OnDelete:CASCADE" json:"restaurant_pizzas,omitempty"`
}

func (Restaurant) TableName() string {
	return "restaurants"
}
