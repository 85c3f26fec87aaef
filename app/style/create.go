package style

import (
	"net/http"
	"strings"

	"github.com/ilyamazurenko/Dance-partner-app/app/respond"
	"github.com/ilyamazurenko/Dance-partner-app/internal"
	"github.com/ilyamazurenko/Dance-partner-app/pkg/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type createBody struct {
	Name        string  `json:"name" binding:"required,notblank,max=100"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
}

// StyleCreate adds a dance style to the catalog
func StyleCreate(c *gin.Context, d *internal.Deps) {
	var data createBody
	if err := c.ShouldBindJSON(&data); err != nil {
		respond.BindError(c, err)
		return
	}

	s, err := d.Styles.Create(c.Request.Context(), strings.TrimSpace(data.Name), data.Description)
	if err != nil {
		respond.Error(c, err, "Failed to create dance style")
		return
	}

	zap.L().Info("Dance style created", zap.Uint("styleID", s.ID), zap.String("requestID", middleware.RequestID(c)))

	c.JSON(http.StatusCreated, s)
}
