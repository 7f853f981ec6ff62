package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/secureride/booking-service/internal/domain"
	"github.com/secureride/booking-service/internal/dto"
)

// PrefixRule binds a path prefix to the minimum role it requires.
type PrefixRule struct {
	Prefix  string
	MinRole domain.Role
}

// defaultPolicy is the single table of path-prefix role requirements.
// Evaluation is first match wins; paths matching no rule require only an
// authenticated caller.
var defaultPolicy = []PrefixRule{
	{Prefix: "/api/v1/admin", MinRole: domain.RoleAdmin},
	{Prefix: "/api/v1/staff", MinRole: domain.RoleStaff},
}

// MinRoleFor returns the minimum role the policy requires for a path
func MinRoleFor(policy []PrefixRule, path string) domain.Role {
	for _, rule := range policy {
		if strings.HasPrefix(path, rule.Prefix) {
			return rule.MinRole
		}
	}
	return domain.RoleUser
}

// RoleGuard enforces the prefix policy on authenticated routes. It must run
// after AuthMiddleware has resolved the caller's role.
func RoleGuard() gin.HandlerFunc {
	return RoleGuardWithPolicy(defaultPolicy)
}

// RoleGuardWithPolicy enforces an explicit prefix policy
func RoleGuardWithPolicy(policy []PrefixRule) gin.HandlerFunc {
	return func(c *gin.Context) {
		minRole := MinRoleFor(policy, c.Request.URL.Path)

		roleValue, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error:   "Unauthorized",
				Message: "authentication required",
			})
			c.Abort()
			return
		}

		role, ok := roleValue.(domain.Role)
		if !ok || !role.AtLeast(minRole) {
			c.JSON(http.StatusForbidden, dto.ErrorResponse{
				Error:   "Forbidden",
				Message: "insufficient privileges",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
