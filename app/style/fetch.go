package style

import (
	"net/http"
	"strconv"

	"github.com/ilyamazurenko/Dance-partner-app/app/respond"
	"github.com/ilyamazurenko/Dance-partner-app/internal"
	"github.com/ilyamazurenko/Dance-partner-app/internal/service"

	"github.com/gin-gonic/gin"
)

func StyleFetch(c *gin.Context, d *internal.Deps) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil {
		respond.BadRequest(c, "Invalid dance style ID")
		return
	}

	s, err := d.Styles.Get(c.Request.Context(), uint(id))
	if err != nil {
		respond.Error(c, err, "Failed to fetch dance style")
		return
	}

	c.JSON(http.StatusOK, s)
}

// StyleList returns a page of the catalog. skip and limit default to 0 and 100.
func StyleList(c *gin.Context, d *internal.Deps) {
	skip, err := queryInt(c, "skip", 0)
	if err != nil {
		respond.BadRequest(c, "skip must be an integer")
		return
	}

	limit, err := queryInt(c, "limit", service.DefaultStyleLimit)
	if err != nil {
		respond.BadRequest(c, "limit must be an integer")
		return
	}

	styles, err := d.Styles.List(c.Request.Context(), skip, limit)
	if err != nil {
		respond.Error(c, err, "Failed to list dance styles")
		return
	}

	c.JSON(http.StatusOK, styles)
}

func queryInt(c *gin.Context, key string, def int) (int, error) {
	v, ok := c.GetQuery(key)
	if !ok {
		return def, nil
	}

	return strconv.Atoi(v)
}
