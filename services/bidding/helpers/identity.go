package helpers

import (
	"auction-engine/internal/models"

	"github.com/gin-gonic/gin"
)

// Identity headers set by the auth gateway in front of the engine
const (
	HeaderUserID    = "X-User-Id"
	HeaderUserName  = "X-User-Name"
	HeaderUserImage = "X-User-Image"
)

const userKey = "auction.user"

// SetUser stores the caller identity on the request
func SetUser(c *gin.Context, user models.User) {
	c.Set(userKey, user)
}

// CurrentUser returns the identity stored by SetUser
func CurrentUser(c *gin.Context) (models.User, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return models.User{}, false
	}
	user, ok := v.(models.User)
	return user, ok
}
