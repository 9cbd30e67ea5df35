package controllers

import (
	"net/http"

	"github.com/3bdelrahman-ibrahim/foodash/pkg/apperr"
	"github.com/3bdelrahman-ibrahim/foodash/pkg/resp"
	"github.com/3bdelrahman-ibrahim/foodash/services"
	"github.com/3bdelrahman-ibrahim/foodash/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Svc *services.OrderService
}

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Svc: s}
}

// POST /orders
func (h *OrderController) Place(c *gin.Context) {
	var req services.PlaceOrderIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Message(c, http.StatusBadRequest, err.Error())
		return
	}

	order, err := h.Svc.Place(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, order)
}

// PUT /orders/:orderId/status
func (h *OrderController) UpdateStatus(c *gin.Context) {
	orderID, ok := paramUint(c, "orderId")
	if !ok {
		resp.Message(c, http.StatusBadRequest, "invalid order id")
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Message(c, http.StatusBadRequest, err.Error())
		return
	}

	order, err := h.Svc.UpdateStatus(orderID, req.Status)
	if err != nil {
		// the duplicate-confirm guard renders as 400 on this wire contract
		if apperr.IsConflict(err) {
			resp.Message(c, http.StatusBadRequest, err.Error())
			return
		}
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}

// GET /orders
func (h *OrderController) List(c *gin.Context) {
	orders, err := h.Svc.List()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /orders/mine
func (h *OrderController) ListMine(c *gin.Context) {
	orders, err := h.Svc.ListForUser(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /restaurants/:restaurantId/orders
func (h *OrderController) ListForRestaurant(c *gin.Context) {
	restID, ok := paramUint(c, "restaurantId")
	if !ok {
		resp.Message(c, http.StatusBadRequest, "invalid restaurant id")
		return
	}

	orders, err := h.Svc.ListForRestaurant(restID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, orders)
}
