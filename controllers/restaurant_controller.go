package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"eats-backend/pkg/resp"
	"eats-backend/services"
)

// RestaurantController is the public, unauthenticated catalog surface.
type RestaurantController struct {
	Rests *services.RestaurantService
}

func NewRestaurantController(rests *services.RestaurantService) *RestaurantController {
	return &RestaurantController{Rests: rests}
}

// GET /api/restaurant/:restaurantId
func (ctl *RestaurantController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("restaurantId"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}

	rest, err := ctl.Rests.Detail(uint(id))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, rest)
}

// GET /api/restaurant/search/:city
func (ctl *RestaurantController) Search(c *gin.Context) {
	city := c.Param("city")
	if city == "" {
		resp.BadRequest(c, "city is required")
		return
	}

	rests, err := ctl.Rests.SearchByCity(city)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, rests)
}
