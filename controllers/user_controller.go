package controllers

import (
	"net/http"

	"github.com/3bdelrahman-ibrahim/foodash/pkg/resp"
	"github.com/3bdelrahman-ibrahim/foodash/services"
	"github.com/3bdelrahman-ibrahim/foodash/utils"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Svc *services.UserService
}

func NewUserController(s *services.UserService) *UserController {
	return &UserController{Svc: s}
}

// GET /users
func (u *UserController) List(c *gin.Context) {
	users, err := u.Svc.List()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, users)
}

// GET /users/:userId
func (u *UserController) Get(c *gin.Context) {
	id, ok := paramUint(c, "userId")
	if !ok {
		resp.Message(c, http.StatusBadRequest, "invalid user id")
		return
	}

	user, err := u.Svc.Get(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, user)
}

// PUT /users/:userId (multipart: name/phone/location + optional "image" file)
func (u *UserController) Update(c *gin.Context) {
	id, ok := paramUint(c, "userId")
	if !ok {
		resp.Message(c, http.StatusBadRequest, "invalid user id")
		return
	}

	var req services.UpdateProfileIn
	if err := c.ShouldBind(&req); err != nil {
		resp.Message(c, http.StatusBadRequest, err.Error())
		return
	}

	var image *services.Upload
	if fh, err := c.FormFile("image"); err == nil {
		data, ctype, err := utils.ReadUpload(fh)
		if err != nil {
			resp.Message(c, http.StatusInternalServerError, "internal server error")
			return
		}
		image = &services.Upload{Data: data, ContentType: ctype}
	}

	user, err := u.Svc.UpdateProfile(id, &req, image)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, user)
}
