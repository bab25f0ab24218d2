package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"eats-backend/entity"
	"eats-backend/pkg/resp"
	"eats-backend/services"
	"eats-backend/utils"
)

// MyRestaurantOrderController is the restaurant-owner side of orders:
// listing the dashboard and advancing fulfillment status.
type MyRestaurantOrderController struct {
	Orders *services.OrderService
}

func NewMyRestaurantOrderController(orders *services.OrderService) *MyRestaurantOrderController {
	return &MyRestaurantOrderController{Orders: orders}
}

// GET /api/my/restaurant/order
func (ctl *MyRestaurantOrderController) List(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	orders, err := ctl.Orders.ListForOwner(uid)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, orders)
}

type updateStatusReq struct {
	Status string `json:"status" binding:"required"`
}

// PATCH /api/my/restaurant/order/:orderId/status
func (ctl *MyRestaurantOrderController) UpdateStatus(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	orderID, err := strconv.ParseUint(c.Param("orderId"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	status, ok := entity.ParseOrderStatus(req.Status)
	if !ok {
		resp.BadRequest(c, "unknown status: "+req.Status)
		return
	}

	order, err := ctl.Orders.UpdateStatus(uid, uint(orderID), status)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, order)
}
