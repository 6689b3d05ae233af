package middleware

import (
	"net/http"
	"strings"

	"supportcenter/internal/actor"
	"supportcenter/pkg/response"

	"github.com/gin-gonic/gin"
)

// UserIDHeader carries the opaque identity of the caller. It is not authenticated.
const UserIDHeader = "user-id"

const userIDKey = "userID"

// AttachActor copies the user-id header, when present, into the request
// context so services can attribute writes.
func AttachActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		if id := strings.TrimSpace(c.GetHeader(UserIDHeader)); id != "" {
			c.Set(userIDKey, id)
			c.Request = c.Request.WithContext(actor.WithID(c.Request.Context(), id))
		}
		c.Next()
	}
}

// RequireUserID rejects requests without a user-id header.
func RequireUserID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(UserIDHeader))
		if id == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "User ID header is required"))
			return
		}
		if actor.FromContext(c.Request.Context()) == "" {
			c.Set(userIDKey, id)
			c.Request = c.Request.WithContext(actor.WithID(c.Request.Context(), id))
		}
		c.Next()
	}
}
