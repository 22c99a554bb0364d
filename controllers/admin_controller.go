package controllers

import (
	"github.com/elshafee/Horus-cafee-managment/pkg/resp"
	"github.com/elshafee/Horus-cafee-managment/services"

	"github.com/gin-gonic/gin"
)

type AdminController struct{ Orders *services.OrderService }

func NewAdminController(orders *services.OrderService) *AdminController {
	return &AdminController{Orders: orders}
}

// GET /admin/orders?status= - every order, newest first
func (a *AdminController) ListOrders(c *gin.Context) {
	status := c.Query("status")

	orders, err := a.Orders.ListAll(status)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders})
}
