package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/penta-book/internal/service"
	"github.com/d60-Lab/penta-book/pkg/response"
)

// PrincipalKey gin context 中已认证主体的键
const PrincipalKey = "principal"

// JWTAuth 解析 Bearer token 并把主体放进请求上下文
func JWTAuth(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			response.Unauthorized(c, "missing bearer token")
			c.Abort()
			return
		}
		p, err := auth.ParseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			response.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}
		c.Set(PrincipalKey, p)
		c.Next()
	}
}

// RequireBuyer 仅放行买家主体
func RequireBuyer() gin.HandlerFunc {
	return func(c *gin.Context) {
		p := CurrentPrincipal(c)
		if p == nil || p.Role != service.RoleBuyer {
			response.Unauthorized(c, "buyer account required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentPrincipal 取出已认证主体；未认证返回 nil
func CurrentPrincipal(c *gin.Context) *service.Principal {
	v, ok := c.Get(PrincipalKey)
	if !ok {
		return nil
	}
	p, _ := v.(*service.Principal)
	return p
}
