package routes

import (
	"net/http"
	"time"

	_ "github.com/franciscosanchezn/restaurant-pizzas-api/docs" // Import generated docs
	"github.com/franciscosanchezn/restaurant-pizzas-api/internal/controllers"
	"github.com/franciscosanchezn/restaurant-pizzas-api/internal/middleware"
	"github.com/franciscosanchezn/restaurant-pizzas-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

const indexPage = "<h1>Code Challenge</h1>"

// Dependencies holds what the handlers need. Nothing is read from globals.
type Dependencies struct {
	RestaurantService      services.RestaurantService
	PizzaService           services.PizzaService
	RestaurantPizzaService services.RestaurantPizzaService
	Logger                 *logrus.Logger
}

// NewDependencies wires the gorm backed services
func NewDependencies(db *gorm.DB, logger *logrus.Logger) Dependencies {
	return Dependencies{
		RestaurantService:      services.NewRestaurantService(db),
		PizzaService:           services.NewPizzaService(db),
		RestaurantPizzaService: services.NewRestaurantPizzaService(db),
		Logger:                 logger,
	}
}

// SetupRouter initializes the Gin router and sets up the routes
// It returns the configured router
func SetupRouter(deps Dependencies) *gin.Engine {
	logger := deps.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logger(logger), gin.Recovery())

	setupRoutes(router, deps)

	return router
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine, deps Dependencies) {
	restaurantController := controllers.NewRestaurantController(deps.RestaurantService)
	pizzaController := controllers.NewPizzaController(deps.PizzaService)
	restaurantPizzaController := controllers.NewRestaurantPizzaController(deps.RestaurantPizzaService)

	router.GET("/", indexHandler)
	router.GET("/health", healthCheckHandler)

	router.GET("/restaurants", restaurantController.GetAllRestaurants)
	router.GET("/restaurants/:id", restaurantController.GetRestaurantByID)
	router.DELETE("/restaurants/:id", restaurantController.DeleteRestaurant)

	router.GET("/pizzas", pizzaController.GetAllPizzas)
	router.GET("/pizzas/:id", pizzaController.GetPizzaByID)

	router.POST("/restaurant_pizzas", restaurantPizzaController.CreateRestaurantPizza)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

func indexHandler(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexPage))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "restaurant-pizzas-api",
	})
}
