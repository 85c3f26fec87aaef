package user

import (
	"net/http"

	"github.com/ilyamazurenko/Dance-partner-app/app/respond"
	"github.com/ilyamazurenko/Dance-partner-app/internal"
	"github.com/ilyamazurenko/Dance-partner-app/pkg/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserDelete removes the authenticated user's account along with their profile
func UserDelete(c *gin.Context, d *internal.Deps) {
	user := middleware.CurrentUser(c)

	if err := d.Users.Delete(c.Request.Context(), user.ID); err != nil {
		respond.Error(c, err, "Failed to delete user")
		return
	}

	zap.L().Info("User deleted", zap.Uint("userID", user.ID), zap.String("requestID", middleware.RequestID(c)))

	c.Status(http.StatusNoContent)
}
