package middleware

import (
	"net/http"
	"strings"

	"staybook/internal/auth"
	"staybook/internal/authz"
	"staybook/internal/domain"

	"github.com/casbin/casbin"
	"github.com/gin-gonic/gin"
)

const (
	callerKey = "caller"
	claimsKey = "token_claims"
)

// Auth resolves the bearer token when present and stores the caller in the
// context. Anonymous requests pass through; handlers that need a login use
// RequireAuth.
func Auth(tm auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "invalid authorization header"})
			return
		}

		claims, err := tm.Verify(strings.TrimSpace(parts[1]))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}

		c.Set(callerKey, domain.Caller{UserID: claims.UserID, IsStaff: claims.IsStaff})
		c.Set(claimsKey, claims)
		c.Next()
	}
}

// RequireAuth rejects anonymous requests.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !GetCaller(c).Authenticated() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Authentication required"})
			return
		}
		c.Next()
	}
}

// RequireStaff enforces the casbin policy against the route template.
func RequireStaff(enforcer *casbin.Enforcer) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := GetCaller(c)
		if !caller.Authenticated() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Authentication required"})
			return
		}
		role := authz.RoleUser
		if caller.IsStaff {
			role = authz.RoleStaff
		}
		if !authz.Allowed(enforcer, role, c.FullPath(), c.Request.Method) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Staff permission required"})
			return
		}
		c.Next()
	}
}

// GetCaller returns the authenticated caller, zero value when anonymous.
func GetCaller(c *gin.Context) domain.Caller {
	if v, ok := c.Get(callerKey); ok {
		if caller, ok := v.(domain.Caller); ok {
			return caller
		}
	}
	return domain.Caller{}
}

// GetClaims returns the verified token claims when present.
func GetClaims(c *gin.Context) (auth.Claims, bool) {
	if v, ok := c.Get(claimsKey); ok {
		if claims, ok := v.(auth.Claims); ok {
			return claims, true
		}
	}
	return auth.Claims{}, false
}
