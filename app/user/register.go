package user

import (
	"net/http"

	"github.com/ilyamazurenko/Dance-partner-app/app/respond"
	"github.com/ilyamazurenko/Dance-partner-app/internal"
	"github.com/ilyamazurenko/Dance-partner-app/pkg/middleware"
	"github.com/ilyamazurenko/Dance-partner-app/pkg/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type registerBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func UserRegister(c *gin.Context, d *internal.Deps) {
	requestID := middleware.RequestID(c)

	var data registerBody
	if err := c.ShouldBindJSON(&data); err != nil {
		respond.BindError(c, err)
		return
	}

	if err := validators.EmailValidator(data.Email); err != nil {
		zap.L().Debug("Invalid email", zap.Error(err), zap.String("requestID", requestID))

		respond.BadRequest(c, err.Error())
		return
	}

	if err := validators.PasswordValidator(data.Password); err != nil {
		zap.L().Debug("Invalid password", zap.Error(err), zap.String("requestID", requestID))

		respond.BadRequest(c, err.Error())
		return
	}

	user, err := d.Users.Register(c.Request.Context(), data.Email, data.Password)
	if err != nil {
		respond.Error(c, err, "Failed to register user")
		return
	}

	zap.L().Info("User registered", zap.Uint("userID", user.ID), zap.String("requestID", requestID))

	c.JSON(http.StatusCreated, user)
}
