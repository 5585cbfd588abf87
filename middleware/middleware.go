package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/dinerozz/screen-time-backend/internal/model/response/wrapper"
	"github.com/dinerozz/screen-time-backend/pkg/utils"
	"github.com/gin-gonic/gin"
)

// AuthenticationMiddleware accepts the token either as a cookie (browser) or
// as a bearer header (tracker agents).
func AuthenticationMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie("token")
		if err != nil {
			header := c.GetHeader("Authorization")
			if strings.HasPrefix(header, "Bearer ") {
				tokenString = strings.TrimPrefix(header, "Bearer ")
			}
		}

		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, wrapper.ErrorWrapper{Message: "Missing authentication token", Success: false})
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			fmt.Println("Error validating token", err)
			c.JSON(http.StatusUnauthorized, wrapper.ErrorWrapper{Message: "Invalid authentication token", Success: false})
			c.Abort()
			return
		}

		c.Set("subject", claims["sub"])
		c.Next()
	}
}
