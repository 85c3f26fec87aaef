package profile

import (
	"errors"
	"net/http"

	"github.com/ilyamazurenko/Dance-partner-app/app/respond"
	"github.com/ilyamazurenko/Dance-partner-app/internal"
	"github.com/ilyamazurenko/Dance-partner-app/internal/model"
	"github.com/ilyamazurenko/Dance-partner-app/internal/service"
	"github.com/ilyamazurenko/Dance-partner-app/pkg/middleware"

	"github.com/gin-gonic/gin"
)

// ProfileFetchMe returns the authenticated user's profile
func ProfileFetchMe(c *gin.Context, d *internal.Deps) {
	user := middleware.CurrentUser(c)

	p, err := d.Profiles.GetByUser(c.Request.Context(), user.ID)
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":     "Profile not found for the current user. Please create one.",
			"requestID": middleware.RequestID(c),
		})
		return
	}

	if err != nil {
		respond.Error(c, err, "Failed to fetch profile")
		return
	}

	c.JSON(http.StatusOK, model.NewProfileView(p))
}

// ProfileUpsertMe creates the authenticated user's profile or applies a
// partial update to it. Fields missing from the body are left untouched.
func ProfileUpsertMe(c *gin.Context, d *internal.Deps) {
	user := middleware.CurrentUser(c)

	var patch service.ProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respond.BindError(c, err)
		return
	}

	p, err := d.Profiles.Upsert(c.Request.Context(), user.ID, &patch)
	if err != nil {
		respond.Error(c, err, "Failed to save profile")
		return
	}

	c.JSON(http.StatusOK, model.NewProfileView(p))
}
