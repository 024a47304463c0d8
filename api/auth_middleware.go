package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/opencourt/court-booking-backend/auth"
)

type TokenVerifier interface {
	VerifyAccessToken(token string) (*auth.AccessClaims, error)
}

// BearerAuth guards mutating routes. The access token is stateless: the
// middleware only checks the signature and expiry, no storage call.
func BearerAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")

		if token == "" || token == header {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authentication"})
			c.Abort()
			return
		}

		claims, err := verifier.VerifyAccessToken(token)

		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authentication"})
			c.Abort()
			return
		}

		c.Set("userID", claims.Subject)
		c.Set("email", claims.Email)
	}
}
