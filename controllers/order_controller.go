package controllers

import (
	"net/http"

	"github.com/elshafee/Horus-cafee-managment/pkg/resp"
	"github.com/elshafee/Horus-cafee-managment/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

// ===== Create Order =====

type OrderItemReq struct {
	Name  string  `json:"name" binding:"required"`
	Qty   int     `json:"qty" binding:"required,min=1"`
	Price float64 `json:"price" binding:"min=0"`
}

type CreateOrderReq struct {
	StaffName    string         `json:"staff_name" binding:"required"`
	StaffID      string         `json:"staff_id" binding:"required"`
	OfficeBoyID  string         `json:"office_boy_id" binding:"required"`
	DeliveryRoom string         `json:"delivery_room" binding:"required"`
	Notes        string         `json:"notes"`
	Items        []OrderItemReq `json:"items" binding:"required,min=1,dive"`
}

// POST /order
func (oc *OrderController) Create(c *gin.Context) {
	var req CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	items := make([]services.OrderItemIn, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, services.OrderItemIn{Name: it.Name, Qty: it.Qty, Price: it.Price})
	}

	orderID, err := oc.Svc.Create(&services.CreateOrderIn{
		StaffName:    req.StaffName,
		StaffID:      req.StaffID,
		OfficeBoyID:  req.OfficeBoyID,
		DeliveryRoom: req.DeliveryRoom,
		Notes:        req.Notes,
		Items:        items,
	})
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{"order_id": orderID})
}

// ===== Lists =====

// GET /orders/:staff_id - open orders of one staff member, with items
func (oc *OrderController) ListForStaff(c *gin.Context) {
	staffID := c.Param("staff_id")

	orders, err := oc.Svc.ListForStaff(staffID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GET /orders/active/:office_boy_id - the delivery queue the ESP32 polls
func (oc *OrderController) ActiveForOfficeBoy(c *gin.Context) {
	officeBoyID := c.Param("office_boy_id")

	orders, err := oc.Svc.ActiveForOfficeBoy(officeBoyID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// ===== Status =====

type UpdateStatusReq struct {
	OrderID uint   `json:"order_id" binding:"required"`
	Status  string `json:"status" binding:"required"`
}

// POST /order/status - sent by the device on accept/deliver
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	var req UpdateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := oc.Svc.UpdateStatus(req.OrderID, req.Status); err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{})
}
