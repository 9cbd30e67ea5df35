package controllers

import (
	"net/http"

	"github.com/3bdelrahman-ibrahim/foodash/pkg/resp"
	"github.com/3bdelrahman-ibrahim/foodash/services"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	Svc *services.CartService
}

func NewCartController(s *services.CartService) *CartController {
	return &CartController{Svc: s}
}

// GET /users/:userId/cart
func (h *CartController) Get(c *gin.Context) {
	userID, ok := paramUint(c, "userId")
	if !ok {
		resp.Message(c, http.StatusBadRequest, "invalid user id")
		return
	}

	cart, err := h.Svc.Get(userID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, cart)
}

// POST /users/:userId/cart
func (h *CartController) AddItem(c *gin.Context) {
	userID, ok := paramUint(c, "userId")
	if !ok {
		resp.Message(c, http.StatusBadRequest, "invalid user id")
		return
	}

	var req services.AddItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Message(c, http.StatusBadRequest, err.Error())
		return
	}

	cart, err := h.Svc.AddItem(userID, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, cart)
}

// PUT /users/:userId/cart (set quantity for a line located by food id)
func (h *CartController) SetQuantityByFood(c *gin.Context) {
	userID, ok := paramUint(c, "userId")
	if !ok {
		resp.Message(c, http.StatusBadRequest, "invalid user id")
		return
	}

	var req struct {
		FoodID   uint `json:"foodId" binding:"required"`
		Quantity int  `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Message(c, http.StatusBadRequest, err.Error())
		return
	}

	cart, err := h.Svc.SetQuantityByFood(userID, req.FoodID, req.Quantity)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, cart)
}

// PUT /users/:userId/cart/items/:itemId
func (h *CartController) SetQuantityByLine(c *gin.Context) {
	userID, ok := paramUint(c, "userId")
	if !ok {
		resp.Message(c, http.StatusBadRequest, "invalid user id")
		return
	}
	lineID, ok := paramUint(c, "itemId")
	if !ok {
		resp.Message(c, http.StatusBadRequest, "invalid item id")
		return
	}

	var req struct {
		Quantity int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Message(c, http.StatusBadRequest, err.Error())
		return
	}

	cart, err := h.Svc.SetQuantityByLine(userID, lineID, req.Quantity)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, cart)
}

// DELETE /users/:userId/cart/items/:itemId
func (h *CartController) RemoveByLine(c *gin.Context) {
	userID, ok := paramUint(c, "userId")
	if !ok {
		resp.Message(c, http.StatusBadRequest, "invalid user id")
		return
	}
	lineID, ok := paramUint(c, "itemId")
	if !ok {
		resp.Message(c, http.StatusBadRequest, "invalid item id")
		return
	}

	if err := h.Svc.RemoveByLine(userID, lineID); err != nil {
		resp.Error(c, err)
		return
	}
	resp.NoContent(c)
}

// DELETE /users/:userId/cart/foods/:foodId
func (h *CartController) RemoveByFood(c *gin.Context) {
	userID, ok := paramUint(c, "userId")
	if !ok {
		resp.Message(c, http.StatusBadRequest, "invalid user id")
		return
	}
	foodID, ok := paramUint(c, "foodId")
	if !ok {
		resp.Message(c, http.StatusBadRequest, "invalid food id")
		return
	}

	if err := h.Svc.RemoveByFood(userID, foodID); err != nil {
		resp.Error(c, err)
		return
	}
	resp.NoContent(c)
}

// DELETE /users/:userId/cart
func (h *CartController) Clear(c *gin.Context) {
	userID, ok := paramUint(c, "userId")
	if !ok {
		resp.Message(c, http.StatusBadRequest, "invalid user id")
		return
	}

	if err := h.Svc.Clear(userID); err != nil {
		resp.Error(c, err)
		return
	}
	resp.NoContent(c)
}
