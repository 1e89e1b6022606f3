package middleware

import (
	"net/http"

	"ntreal/notes/services"
	"ntreal/notes/utils/token"

	"github.com/gin-gonic/gin"
)

// LoginURL is where unauthenticated browsers are sent.
const LoginURL = "/accounts/login/"

// AuthMiddleware validates the session token and stores the caller's
// identity in the context. A request without a valid session is redirected
// to the login page before any handler runs.
func AuthMiddleware(authService services.AuthServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := token.ExtractToken(c)
		if err != nil {
			c.Redirect(http.StatusFound, LoginURL)
			c.Abort()
			return
		}

		claims, err := authService.ValidateToken(tokenString)
		if err != nil {
			c.Redirect(http.StatusFound, LoginURL)
			c.Abort()
			return
		}

		// Store user info in the context for later use
		c.Set("userID", claims.UserID)
		c.Set("email", claims.Email)

		c.Next()
	}
}
