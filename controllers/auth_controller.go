package controllers

import (
	"net/http"

	"github.com/3bdelrahman-ibrahim/foodash/pkg/apperr"
	"github.com/3bdelrahman-ibrahim/foodash/pkg/resp"
	"github.com/3bdelrahman-ibrahim/foodash/services"
	"github.com/3bdelrahman-ibrahim/foodash/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Svc *services.AuthService
}

func NewAuthController(s *services.AuthService) *AuthController {
	return &AuthController{Svc: s}
}

// POST /signup (multipart: profile fields + "image" file)
func (a *AuthController) Signup(c *gin.Context) {
	var req services.SignupIn
	if err := c.ShouldBind(&req); err != nil {
		resp.Message(c, http.StatusBadRequest, err.Error())
		return
	}

	var image []byte
	var imageType string
	if fh, err := c.FormFile("image"); err == nil {
		image, imageType, err = utils.ReadUpload(fh)
		if err != nil {
			resp.Message(c, http.StatusInternalServerError, "internal server error")
			return
		}
	}

	out, err := a.Svc.Signup(&req, image, imageType)
	if err != nil {
		// the duplicate-email conflict renders as 400 on this wire contract
		if apperr.IsConflict(err) {
			resp.Message(c, http.StatusBadRequest, err.Error())
			return
		}
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

type SigninRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /signin
func (a *AuthController) Signin(c *gin.Context) {
	var req SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Message(c, http.StatusBadRequest, err.Error())
		return
	}

	out, err := a.Svc.Signin(req.Email, req.Password)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}
