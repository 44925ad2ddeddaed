package middleware

import (
	"github.com/gin-gonic/gin"

	"ecommerce-backend/internal/shared/response"
)

// RequireRoles chỉ cho phép các role được liệt kê, dùng sau AuthMiddleware
func RequireRoles(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := allowed[CurrentRole(c)]; !ok {
			response.Forbidden(c, "Access denied")
			c.Abort()
			return
		}
		c.Next()
	}
}

// AdminMiddleware cho phép ADMIN và STAFF quản trị voucher/promotion
func AdminMiddleware() gin.HandlerFunc {
	return RequireRoles("ADMIN", "STAFF")
}
