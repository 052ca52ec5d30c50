package middleware

import (
	"net/http"

	"shortlink-manager/internal/auth"

	"github.com/gin-gonic/gin"
)

// 存入 gin 上下文的键
const (
	UserIDKey   = "user_id"
	IdentityKey = "identity"
)

// Authenticate 解析调用方身份并写入请求 context
// 无身份时继续处理，由下游决定是否拒绝
func Authenticate(authenticator auth.Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if id, ok := authenticator.Authenticate(c.Request); ok {
			c.Request = c.Request.WithContext(auth.WithIdentity(c.Request.Context(), id))
			c.Set(UserIDKey, id.UserID)
			c.Set(IdentityKey, id)
		}
		c.Next()
	}
}

// RequireAuth 要求已认证，需在 Authenticate 之后使用
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := auth.IdentityFromContext(c.Request.Context()); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Unauthorized"})
			return
		}
		c.Next()
	}
}
