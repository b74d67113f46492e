package middlewares

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/zaywreck/warehouse_backend/utils"
)

type authString string

const authKey authString = "auth"

// AuthMiddleware guards a route group with bearer-token authentication.
// Missing token, bad signature, expiry and a missing subject all produce
// the same 401 body so a caller cannot probe which check failed.
func AuthMiddleware(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.Request.Header.Get("Authorization")

		bearer := "Bearer "
		if !strings.HasPrefix(auth, bearer) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
			return
		}
		auth = auth[len(bearer):]

		email, err := utils.JwtValidate(secret, auth)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
			return
		}

		ctx := context.WithValue(c.Request.Context(), authKey, email)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// CtxValue returns the authenticated subject email, if any.
func CtxValue(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(authKey).(string)
	return email, ok && email != ""
}
