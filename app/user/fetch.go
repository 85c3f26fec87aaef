package user

import (
	"net/http"

	"github.com/ilyamazurenko/Dance-partner-app/pkg/middleware"

	"github.com/gin-gonic/gin"
)

// UserFetch returns the authenticated user
func UserFetch(c *gin.Context) {
	c.JSON(http.StatusOK, middleware.CurrentUser(c))
}
