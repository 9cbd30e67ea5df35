package controllers

import (
	"net/http"

	"github.com/3bdelrahman-ibrahim/foodash/pkg/resp"
	"github.com/3bdelrahman-ibrahim/foodash/services"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	Svc *services.CatalogService
}

func NewFoodController(s *services.CatalogService) *FoodController {
	return &FoodController{Svc: s}
}

// GET /foods
func (f *FoodController) List(c *gin.Context) {
	foods, err := f.Svc.ListFoods()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, foods)
}

// GET /restaurants/:restaurantId/foods
func (f *FoodController) ListForRestaurant(c *gin.Context) {
	id, ok := paramUint(c, "restaurantId")
	if !ok {
		resp.Message(c, http.StatusBadRequest, "invalid restaurant id")
		return
	}

	foods, err := f.Svc.ListFoodsFor(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, foods)
}

// POST /restaurants/:restaurantId/foods (multipart: name/price + "image" file)
func (f *FoodController) Create(c *gin.Context) {
	id, ok := paramUint(c, "restaurantId")
	if !ok {
		resp.Message(c, http.StatusBadRequest, "invalid restaurant id")
		return
	}

	var req services.CreateFoodIn
	if err := c.ShouldBind(&req); err != nil {
		resp.Message(c, http.StatusBadRequest, err.Error())
		return
	}

	image, err := formUpload(c, "image")
	if err != nil {
		resp.Message(c, http.StatusInternalServerError, "failed to create food")
		return
	}

	food, err := f.Svc.CreateFood(id, &req, image)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, food)
}
