package controllers

import (
	"errors"
	"net/http"

	"github.com/franciscosanchezn/restaurant-pizzas-api/internal/models"
	"github.com/franciscosanchezn/restaurant-pizzas-api/internal/services"
	"github.com/gin-gonic/gin"
)

// PizzaController handles HTTP requests related to pizzas
type PizzaController interface {
	// GetAllPizzas retrieves all pizzas
	GetAllPizzas(c *gin.Context)
	// GetPizzaByID retrieves a pizza by its ID
	GetPizzaByID(c *gin.Context)
}

type pizzaController struct {
	service services.PizzaService
}

// NewPizzaController creates a new instance of PizzaController
func NewPizzaController(service services.PizzaService) PizzaController {
	return &pizzaController{service: service}
}

// GetAllPizzas godoc
// @Summary Get all pizzas
// @Description Get a list of all pizzas
// @Tags pizzas
// @Produce json
// @Success 200 {array} models.PizzaView
// @Failure 500 {object} models.APIError
// @Router /pizzas [get]
func (c *pizzaController) GetAllPizzas(ctx *gin.Context) {
	pizzas, err := c.service.GetAllPizzas()
	if err != nil {
		logFailure(ctx, err, "Failed to retrieve pizzas")
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError("Failed to retrieve pizzas"))
		return
	}

	views := make([]models.PizzaView, 0, len(pizzas))
	for _, pizza := range pizzas {
		views = append(views, pizza.View())
	}
	ctx.JSON(http.StatusOK, views)
}

// GetPizzaByID godoc
// @Summary Get pizza by ID
// @Description Get a single pizza by its ID
// @Tags pizzas
// @Produce json
// @Param id path int true "Pizza ID"
// @Success 200 {object} models.PizzaView
// @Failure 404 {object} models.NotFoundError
// @Router /pizzas/{id} [get]
func (c *pizzaController) GetPizzaByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		ctx.JSON(http.StatusNotFound, models.NewNotFoundError(models.MsgPizzaNotFound))
		return
	}

	pizza, err := c.service.GetPizzaByID(id)
	if errors.Is(err, services.ErrPizzaNotFound) {
		ctx.JSON(http.StatusNotFound, models.NewNotFoundError(models.MsgPizzaNotFound))
		return
	}
	if err != nil {
		logFailure(ctx, err, "Failed to retrieve pizza")
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError("Failed to retrieve pizza"))
		return
	}
	ctx.JSON(http.StatusOK, pizza.View())
}
