package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/secureride/booking-service/internal/dto"
	"github.com/secureride/booking-service/internal/service"
)

// AccessTokenCookie is the cookie fallback for browser clients that do not
// send an Authorization header.
const AccessTokenCookie = "access_token"

// AuthMiddleware validates the access token and adds user info to context.
// The token is read from the Authorization header first, then from the
// access cookie. All failures produce the same response body.
func AuthMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error:   "Unauthorized",
				Message: "authentication required",
			})
			c.Abort()
			return
		}

		claims, err := authService.ValidateToken(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error:   "Unauthorized",
				Message: "invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Set("claims", claims)

		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return ""
	}

	cookie, err := c.Cookie(AccessTokenCookie)
	if err != nil {
		return ""
	}
	return cookie
}
