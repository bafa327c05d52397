package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/franciscosanchezn/restaurant-pizzas-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.Restaurant{}, &models.Pizza{}, &models.RestaurantPizza{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return db
}

type fixtures struct {
	dough  models.Restaurant
	other  models.Restaurant
	cheese models.Pizza
	veggie models.Pizza
}

func seedFixtures(t *testing.T, db *gorm.DB) fixtures {
	f := fixtures{
		dough:  models.Restaurant{Name: "Dough", Address: "1 Main St"},
		other:  models.Restaurant{Name: "Crust", Address: "2 Side St"},
		cheese: models.Pizza{Name: "Cheese", Ingredients: "Dough,Tomato,Cheese"},
		veggie: models.Pizza{Name: "Veggie", Ingredients: "Dough,Tomato,Peppers"},
	}
	require.NoError(t, db.Create(&f.dough).Error)
	require.NoError(t, db.Create(&f.other).Error)
	require.NoError(t, db.Create(&f.cheese).Error)
	require.NoError(t, db.Create(&f.veggie).Error)
	return f
}

func countRestaurantPizzas(t *testing.T, db *gorm.DB) int64 {
	var count int64
	require.NoError(t, db.Model(&models.RestaurantPizza{}).Count(&count).Error)
	return count
}

func TestGetAllRestaurants(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixtures(t, db)
	service := NewRestaurantService(db)

	restaurants, err := service.GetAllRestaurants()

	require.NoError(t, err)
	require.Len(t, restaurants, 2)
	assert.Equal(t, f.dough.ID, restaurants[0].ID)
	assert.Equal(t, "Crust", restaurants[1].Name)
	assert.Empty(t, restaurants[0].RestaurantPizzas)
}

func TestGetRestaurantByID(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixtures(t, db)
	require.NoError(t, db.Create(&models.RestaurantPizza{RestaurantID: f.dough.ID, PizzaID: f.cheese.ID, Price: 10}).Error)
	require.NoError(t, db.Create(&models.RestaurantPizza{RestaurantID: f.dough.ID, PizzaID: f.veggie.ID, Price: 12}).Error)
	require.NoError(t, db.Create(&models.RestaurantPizza{RestaurantID: f.other.ID, PizzaID: f.cheese.ID, Price: 9}).Error)
	service := NewRestaurantService(db)

	t.Run("loads pizzas of the restaurant only", func(t *testing.T) {
		restaurant, err := service.GetRestaurantByID(f.dough.ID)
		require.NoError(t, err)

		require.Len(t, restaurant.RestaurantPizzas, 2)
		assert.Equal(t, "Cheese", restaurant.RestaurantPizzas[0].Pizza.Name)
		assert.Equal(t, "Veggie", restaurant.RestaurantPizzas[1].Pizza.Name)

		count, err := service.CountRestaurantPizzas(f.dough.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(len(restaurant.RestaurantPizzas)), count)
	})

	t.Run("missing restaurant", func(t *testing.T) {
		_, err := service.GetRestaurantByID(9999)
		assert.ErrorIs(t, err, ErrRestaurantNotFound)
	})
}

func TestDeleteRestaurant(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixtures(t, db)
	require.NoError(t, db.Create(&models.RestaurantPizza{RestaurantID: f.dough.ID, PizzaID: f.cheese.ID, Price: 10}).Error)
	require.NoError(t, db.Create(&models.RestaurantPizza{RestaurantID: f.other.ID, PizzaID: f.cheese.ID, Price: 9}).Error)
	service := NewRestaurantService(db)

	require.NoError(t, service.DeleteRestaurant(f.dough.ID))

	count, err := service.CountRestaurantPizzas(f.dough.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	count, err = service.CountRestaurantPizzas(f.other.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	var pizzas int64
	db.Model(&models.Pizza{}).Count(&pizzas)
	assert.Equal(t, int64(2), pizzas)

	_, err = service.GetRestaurantByID(f.dough.ID)
	assert.ErrorIs(t, err, ErrRestaurantNotFound)

	// second delete of the same id
	assert.ErrorIs(t, service.DeleteRestaurant(f.dough.ID), ErrRestaurantNotFound)
}

func TestGetAllPizzas(t *testing.T) {
	db := setupTestDB(t)
	seedFixtures(t, db)
	service := NewPizzaService(db)

	pizzas, err := service.GetAllPizzas()

	require.NoError(t, err)
	require.Len(t, pizzas, 2)
	assert.Equal(t, "Cheese", pizzas[0].Name)
	assert.Equal(t, "Dough,Tomato,Peppers", pizzas[1].Ingredients)
}

func TestGetPizzaByID(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixtures(t, db)
	service := NewPizzaService(db)

	pizza, err := service.GetPizzaByID(f.veggie.ID)
	require.NoError(t, err)
	assert.Equal(t, "Veggie", pizza.Name)

	_, err = service.GetPizzaByID(4242)
	assert.ErrorIs(t, err, ErrPizzaNotFound)
}

func TestCreateRestaurantPizza(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixtures(t, db)
	service := NewRestaurantPizzaService(db)

	t.Run("creates and loads associations", func(t *testing.T) {
		created, err := service.CreateRestaurantPizza(models.RestaurantPizza{
			Price: 10, RestaurantID: f.dough.ID, PizzaID: f.cheese.ID,
		})
		require.NoError(t, err)

		assert.NotZero(t, created.ID)
		assert.Equal(t, float64(10), created.Price)
		assert.Equal(t, "Dough", created.Restaurant.Name)
		assert.Equal(t, "1 Main St", created.Restaurant.Address)
		assert.Equal(t, "Cheese", created.Pizza.Name)
	})

	testCases := []struct {
		name    string
		input   models.RestaurantPizza
		wantErr error
	}{
		{
			name:    "unknown restaurant",
			input:   models.RestaurantPizza{Price: 10, RestaurantID: 999, PizzaID: f.cheese.ID},
			wantErr: ErrRestaurantNotFound,
		},
		{
			name:    "unknown pizza",
			input:   models.RestaurantPizza{Price: 10, RestaurantID: f.dough.ID, PizzaID: 999},
			wantErr: ErrPizzaNotFound,
		},
		{
			name:    "price above range",
			input:   models.RestaurantPizza{Price: 31, RestaurantID: f.dough.ID, PizzaID: f.cheese.ID},
			wantErr: models.ErrInvalidPrice,
		},
		{
			name:    "price below range",
			input:   models.RestaurantPizza{Price: 0.5, RestaurantID: f.dough.ID, PizzaID: f.cheese.ID},
			wantErr: models.ErrInvalidPrice,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			before := countRestaurantPizzas(t, db)

			_, err := service.CreateRestaurantPizza(tt.input)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, before, countRestaurantPizzas(t, db))
		})
	}
}
