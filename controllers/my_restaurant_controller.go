package controllers

import (
	"github.com/gin-gonic/gin"

	"eats-backend/pkg/resp"
	"eats-backend/services"
	"eats-backend/utils"
)

type MyRestaurantController struct {
	Rests *services.RestaurantService
}

func NewMyRestaurantController(rests *services.RestaurantService) *MyRestaurantController {
	return &MyRestaurantController{Rests: rests}
}

// GET /api/my/restaurant
func (ctl *MyRestaurantController) Get(c *gin.Context) {
	rest, err := ctl.Rests.GetMyRestaurant(utils.CurrentUserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, rest)
}

// POST /api/my/restaurant
func (ctl *MyRestaurantController) Create(c *gin.Context) {
	var req services.RestaurantIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rest, err := ctl.Rests.CreateMyRestaurant(utils.CurrentUserID(c), &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, rest)
}

// PUT /api/my/restaurant
func (ctl *MyRestaurantController) Update(c *gin.Context) {
	var req services.RestaurantIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rest, err := ctl.Rests.UpdateMyRestaurant(utils.CurrentUserID(c), &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, rest)
}
