package utils

import "github.com/gin-gonic/gin"

// CurrentUserID reads the caller's id that AuthMiddleware stored on the
// request context. Zero means the route ran without the middleware.
func CurrentUserID(c *gin.Context) uint {
	v, ok := c.Get("userId")
	if !ok {
		return 0
	}
	id, _ := v.(uint)
	return id
}
