package auth

import (
	"errors"
	"net/http"

	"github.com/ilyamazurenko/Dance-partner-app/app/respond"
	"github.com/ilyamazurenko/Dance-partner-app/internal"
	"github.com/ilyamazurenko/Dance-partner-app/internal/service"
	"github.com/ilyamazurenko/Dance-partner-app/pkg/middleware"

	"github.com/gin-gonic/gin"
)

// tokenForm follows the OAuth2 password grant, so the email travels as username
type tokenForm struct {
	Username string `form:"username" binding:"required,notblank"`
	Password string `form:"password" binding:"required"`
}

// AuthToken exchanges an email and password for a bearer token
func AuthToken(c *gin.Context, d *internal.Deps) {
	var data tokenForm
	if err := c.ShouldBind(&data); err != nil {
		respond.BindError(c, err)
		return
	}

	user, err := d.Auth.Authenticate(c.Request.Context(), data.Username, data.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		middleware.Unauthorized(c, "Incorrect email or password")
		return
	}

	if err != nil {
		respond.Error(c, err, "Failed to authenticate user")
		return
	}

	token, err := d.Auth.IssueToken(user.Email)
	if err != nil {
		respond.Error(c, err, "Failed to issue token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
	})
}
