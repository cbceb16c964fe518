package middlewares

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/andyrob2215/AAASmores/configs"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware guards staff routes with a bearer token.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing or invalid token"})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")

		cfg := configs.LoadConfig()
		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "invalid token"})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "invalid claims"})
			c.Abort()
			return
		}

		var staffID uint
		switch v := claims["staffId"].(type) {
		case float64:
			staffID = uint(v)
		case int:
			staffID = uint(v)
		case int64:
			staffID = uint(v)
		case uint:
			staffID = v
		}
		var username string
		if v, ok := claims["username"].(string); ok {
			username = v
		}

		c.Set("staffId", staffID)
		c.Set("username", username)

		c.Next()
	}
}
