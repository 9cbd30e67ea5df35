package controllers

import (
	"net/http"

	"github.com/3bdelrahman-ibrahim/foodash/pkg/resp"
	"github.com/3bdelrahman-ibrahim/foodash/services"
	"github.com/3bdelrahman-ibrahim/foodash/utils"

	"github.com/gin-gonic/gin"
)

type RestaurantController struct {
	Svc *services.CatalogService
}

func NewRestaurantController(s *services.CatalogService) *RestaurantController {
	return &RestaurantController{Svc: s}
}

func formUpload(c *gin.Context, field string) (*services.Upload, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, nil
	}
	data, ctype, err := utils.ReadUpload(fh)
	if err != nil {
		return nil, err
	}
	return &services.Upload{Data: data, ContentType: ctype}, nil
}

// POST /restaurants (multipart: fields + "image" + "adImage" files)
func (r *RestaurantController) Create(c *gin.Context) {
	var req services.CreateRestaurantIn
	if err := c.ShouldBind(&req); err != nil {
		resp.Message(c, http.StatusBadRequest, err.Error())
		return
	}

	image, err := formUpload(c, "image")
	if err != nil {
		resp.Message(c, http.StatusInternalServerError, "failed to create restaurant")
		return
	}
	adImage, err := formUpload(c, "adImage")
	if err != nil {
		resp.Message(c, http.StatusInternalServerError, "failed to create restaurant")
		return
	}

	rest, err := r.Svc.CreateRestaurant(&req, image, adImage)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, rest)
}

// GET /restaurants
func (r *RestaurantController) List(c *gin.Context) {
	rests, err := r.Svc.ListRestaurants()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, rests)
}

// GET /restaurants/:restaurantId
func (r *RestaurantController) Detail(c *gin.Context) {
	id, ok := paramUint(c, "restaurantId")
	if !ok {
		resp.Message(c, http.StatusBadRequest, "invalid restaurant id")
		return
	}

	rest, err := r.Svc.GetRestaurant(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, rest)
}

// GET /top
func (r *RestaurantController) Top(c *gin.Context) {
	rests, err := r.Svc.TopRated()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, rests)
}

// GET /popular
func (r *RestaurantController) Popular(c *gin.Context) {
	rests, err := r.Svc.MostLoved()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, rests)
}
