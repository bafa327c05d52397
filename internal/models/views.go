package models

// The view types below are the JSON shapes returned by the API. They are
// built from loaded models so that encoding never touches the database.

// RestaurantSummary is a restaurant without its associations
type RestaurantSummary struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// PizzaView is a pizza as returned by the API
type PizzaView struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Ingredients string `json:"ingredients"`
}

// RestaurantPizzaView is a restaurant pizza nested under its restaurant
type RestaurantPizzaView struct {
	ID           uint      `json:"id"`
	PizzaID      uint      `json:"pizza_id"`
	RestaurantID uint      `json:"restaurant_id"`
	Price        float64   `json:"price"`
	Pizza        PizzaView `json:"pizza"`
}

// RestaurantDetail is a restaurant with its pizzas expanded one level
type RestaurantDetail struct {
	ID               uint                  `json:"id"`
	Name             string                `json:"name"`
	Address          string                `json:"address"`
	RestaurantPizzas []RestaurantPizzaView `json:"restaurant_pizzas"`
}

// RestaurantPizzaCreated is returned after creating a restaurant pizza
type RestaurantPizzaCreated struct {
	ID           uint              `json:"id"`
	PizzaID      uint              `json:"pizza_id"`
	Price        float64           `json:"price"`
	RestaurantID uint              `json:"restaurant_id"`
	Pizza        PizzaView         `json:"pizza"`
	Restaurant   RestaurantSummary `json:"restaurant"`
}

func (r Restaurant) Summary() RestaurantSummary {
	return RestaurantSummary{ID: r.ID, Name: r.Name, Address: r.Address}
}

func (r Restaurant) Detail() RestaurantDetail {
	pizzas := make([]RestaurantPizzaView, 0, len(r.RestaurantPizzas))
	for _, rp := range r.RestaurantPizzas {
		pizzas = append(pizzas, RestaurantPizzaView{
			ID:           rp.ID,
			PizzaID:      rp.PizzaID,
			RestaurantID: rp.RestaurantID,
			Price:        rp.Price,
			Pizza:        rp.Pizza.View(),
		})
	}
	return RestaurantDetail{
		ID:               r.ID,
		Name:             r.Name,
		Address:          r.Address,
		RestaurantPizzas: pizzas,
	}
}

func (p Pizza) View() PizzaView {
	return PizzaView{ID: p.ID, Name: p.Name, Ingredients: p.Ingredients}
}

func (rp RestaurantPizza) Created() RestaurantPizzaCreated {
	return RestaurantPizzaCreated{
		ID:           rp.ID,
		PizzaID:      rp.PizzaID,
		Price:        rp.Price,
		RestaurantID: rp.RestaurantID,
		Pizza:        rp.Pizza.View(),
		Restaurant:   rp.Restaurant.Summary(),
	}
}
