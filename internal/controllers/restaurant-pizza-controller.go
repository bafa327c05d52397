package controllers

import (
	"errors"
	"net/http"

	"github.com/franciscosanchezn/restaurant-pizzas-api/internal/models"
	"github.com/franciscosanchezn/restaurant-pizzas-api/internal/services"
	"github.com/gin-gonic/gin"
)

var errMissingField = errors.New("missing required field")

// CreateRestaurantPizzaRequest is the body accepted by POST /restaurant_pizzas.
// Pointers tell an absent field apart from a zero one.
type CreateRestaurantPizzaRequest struct {
	Price        *float64 `json:"price"`
	RestaurantID *uint    `json:"restaurant_id"`
	PizzaID      *uint    `json:"pizza_id"`
}

// Validate requires every field to be present and non-zero
func (r CreateRestaurantPizzaRequest) Validate() error {
	if r.Price == nil || *r.Price == 0 {
		return errMissingField
	}
	if r.RestaurantID == nil || *r.RestaurantID == 0 {
		return errMissingField
	}
	if r.PizzaID == nil || *r.PizzaID == 0 {
		return errMissingField
	}
	return nil
}

// RestaurantPizzaController handles HTTP requests related to restaurant pizzas
type RestaurantPizzaController interface {
	// CreateRestaurantPizza links a restaurant and a pizza with a price
	CreateRestaurantPizza(c *gin.Context)
}

type restaurantPizzaController struct {
	service services.RestaurantPizzaService
}

// NewRestaurantPizzaController creates a new instance of RestaurantPizzaController
func NewRestaurantPizzaController(service services.RestaurantPizzaService) RestaurantPizzaController {
	return &restaurantPizzaController{service: service}
}

// CreateRestaurantPizza godoc
// @Summary Create a restaurant pizza
// @Description Sell an existing pizza at an existing restaurant for a price between 1 and 30
// @Tags restaurant_pizzas
// @Accept json
// @Produce json
// @Param restaurant_pizza body CreateRestaurantPizzaRequest true "Restaurant pizza"
// @Success 201 {object} models.RestaurantPizzaCreated
// @Failure 400 {object} models.ValidationErrors
// @Failure 500 {object} models.APIError
// @Router /restaurant_pizzas [post]
func (c *restaurantPizzaController) CreateRestaurantPizza(ctx *gin.Context) {
	var req CreateRestaurantPizzaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.reject(ctx, err)
		return
	}
	if err := req.Validate(); err != nil {
		c.reject(ctx, err)
		return
	}

	created, err := c.service.CreateRestaurantPizza(models.RestaurantPizza{
		Price:        *req.Price,
		RestaurantID: *req.RestaurantID,
		PizzaID:      *req.PizzaID,
	})
	switch {
	case err == nil:
		ctx.JSON(http.StatusCreated, created.Created())
	case errors.Is(err, services.ErrRestaurantNotFound),
		errors.Is(err, services.ErrPizzaNotFound),
		errors.Is(err, models.ErrInvalidPrice):
		c.reject(ctx, err)
	default:
		logFailure(ctx, err, "Failed to create restaurant pizza")
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError("Failed to create restaurant pizza"))
	}
}

// reject answers with the uniform validation body; the reason is only logged
func (c *restaurantPizzaController) reject(ctx *gin.Context, err error) {
	log.WithField("request_id", ctx.GetString("requestID")).WithError(err).Debug("Restaurant pizza rejected")
	ctx.JSON(http.StatusBadRequest, models.NewValidationErrors())
}
