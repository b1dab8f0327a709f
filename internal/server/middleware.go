package server

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"
	"time"

	"auction-engine/internal/models"
	"auction-engine/services/bidding/helpers"
	"auction-engine/utils"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	fields := map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	}
	if user, ok := helpers.CurrentUser(c); ok {
		fields["user_id"] = user.UserID
	}
	utils.Info("HTTP Request", fields)
}

// RequireUser takes the caller identity from the gateway headers
func RequireUser(c *gin.Context) {
	id := strings.TrimSpace(c.GetHeader(helpers.HeaderUserID))
	if id == "" {
		utils.JSONAbort(c, http.StatusUnauthorized, errors.New("missing "+helpers.HeaderUserID+" header"), "missing caller identity")
		return
	}
	helpers.SetUser(c, models.User{
		UserID: id,
		Name:   c.GetHeader(helpers.HeaderUserName),
		Image:  c.GetHeader(helpers.HeaderUserImage),
	})
	c.Next()
}

// RequireOperator guards operator routes with a static bearer token
func RequireOperator(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			utils.JSONAbort(c, http.StatusForbidden, errors.New("no operator token configured"), "operator routes disabled")
			return
		}
		got, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
			utils.JSONAbort(c, http.StatusUnauthorized, errors.New("invalid operator token"), "unauthorized")
			utils.Warn("operator request rejected", map[string]any{"path": c.Request.URL.Path})
			return
		}
		c.Next()
	}
}
