package resp

import (
	"net/http"

	"github.com/3bdelrahman-ibrahim/foodash/pkg/apperr"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}

// Error renders a service error using its apperr kind.
func Error(c *gin.Context, err error) {
	Message(c, apperr.HTTPStatus(err), err.Error())
}
