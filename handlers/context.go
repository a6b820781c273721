package handlers

import (
	"strconv"

	"github.com/sud2610/set-u-free-sub000/middleware"
	"github.com/sud2610/set-u-free-sub000/models"

	"github.com/gin-gonic/gin"
)

// currentActor reads the authenticated identity placed on the context by the
// auth middleware.
func currentActor(c *gin.Context) (id string, role models.Role) {
	if v, ok := c.Get(middleware.CtxUserID); ok {
		id, _ = v.(string)
	}
	if v, ok := c.Get(middleware.CtxRole); ok {
		role, _ = v.(models.Role)
	}
	return id, role
}

// queryInt parses an integer query parameter, falling back to def when the
// parameter is absent or malformed.
func queryInt(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

// queryBool parses an optional tri-state boolean filter. nil means the
// parameter was absent and the filter should not apply.
func queryBool(c *gin.Context, name string) *bool {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &b
}
