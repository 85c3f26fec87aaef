package profile

import (
	"net/http"
	"strconv"

	"github.com/ilyamazurenko/Dance-partner-app/app/respond"
	"github.com/ilyamazurenko/Dance-partner-app/internal"
	"github.com/ilyamazurenko/Dance-partner-app/internal/model"

	"github.com/gin-gonic/gin"
)

// ProfileFetch returns any profile by its ID
func ProfileFetch(c *gin.Context, d *internal.Deps) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil {
		respond.BadRequest(c, "Invalid profile ID")
		return
	}

	p, err := d.Profiles.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		respond.Error(c, err, "Failed to fetch profile")
		return
	}

	c.JSON(http.StatusOK, model.NewProfileView(p))
}
