package matching

import (
	"errors"
	"io"
	"net/http"

	"github.com/ilyamazurenko/Dance-partner-app/app/respond"
	"github.com/ilyamazurenko/Dance-partner-app/internal"
	"github.com/ilyamazurenko/Dance-partner-app/internal/model"
	"github.com/ilyamazurenko/Dance-partner-app/internal/service"
	"github.com/ilyamazurenko/Dance-partner-app/pkg/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FindPartners searches other users' profiles. An empty body means no filters.
func FindPartners(c *gin.Context, d *internal.Deps) {
	user := middleware.CurrentUser(c)

	var criteria service.PartnerCriteria
	if err := c.ShouldBindJSON(&criteria); err != nil && !errors.Is(err, io.EOF) {
		respond.BindError(c, err)
		return
	}

	profiles, err := d.Matching.FindPartners(c.Request.Context(), user.ID, criteria)
	if err != nil {
		respond.Error(c, err, "Failed to find partners")
		return
	}

	zap.L().Debug("Partner search",
		zap.Uint("userID", user.ID),
		zap.Int("results", len(profiles)),
		zap.String("requestID", middleware.RequestID(c)),
	)

	c.JSON(http.StatusOK, model.NewProfileViews(profiles))
}
