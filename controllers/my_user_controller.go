package controllers

import (
	"github.com/gin-gonic/gin"

	"eats-backend/pkg/resp"
	"eats-backend/services"
	"eats-backend/utils"
)

type MyUserController struct {
	Auth *services.AuthService
}

func NewMyUserController(auth *services.AuthService) *MyUserController {
	return &MyUserController{Auth: auth}
}

type updateMyUserReq struct {
	Name         string `json:"name" binding:"required"`
	AddressLine1 string `json:"addressLine1" binding:"required"`
	City         string `json:"city" binding:"required"`
	Country      string `json:"country" binding:"required"`
}

// PUT /api/my/user
func (ctl *MyUserController) Update(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req updateMyUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := ctl.Auth.UpdateProfile(uid, req.Name, req.AddressLine1, req.City, req.Country)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, user)
}
