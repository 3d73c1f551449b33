package middleware

import (
	"log"
	"net/http"

	"suuq-storefront/utils"

	"github.com/gin-gonic/gin"
)

// ClientTokenCookie is the cookie carrying the gateway's signed client
// token.
const ClientTokenCookie = "suuq_client_token"

const clientTokenMaxAge = 30 * 24 * 60 * 60 // seconds, matches token expiry

// EnsureClientToken makes sure every response leaves the client with a
// valid signed token cookie, minting a fresh one when the request carries
// none or an expired/garbled one.
func EnsureClientToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		if cookie, err := c.Cookie(ClientTokenCookie); err == nil {
			if claims, err := utils.ValidateClientToken(cookie); err == nil {
				c.Set("client_id", claims.ClientID)
				c.Next()
				return
			}
		}

		token, err := utils.GenerateClientToken()
		if err != nil {
			log.Printf("Failed to mint client token: %v", err)
			c.Next()
			return
		}
		c.SetCookie(ClientTokenCookie, token, clientTokenMaxAge, "/", "", false, true)
		c.Next()
	}
}

// RequireClientToken rejects mutating requests that arrive without a valid
// client token cookie.
func RequireClientToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(ClientTokenCookie)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Client token required"})
			c.Abort()
			return
		}

		claims, err := utils.ValidateClientToken(cookie)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired client token"})
			c.Abort()
			return
		}

		c.Set("client_id", claims.ClientID)
		c.Next()
	}
}
