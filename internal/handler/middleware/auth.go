package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"lounge-engine/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxStaffIDKey   = "staff_id"
	ctxStaffRoleKey = "staff_role"
	ctxBranchIDKey  = "branch_id"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth authenticates the staff token and stamps the request context
// with the staff identity. Handlers read the branch from here, never from the
// request body: a terminal only acts on its own branch.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		identity, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxStaffIDKey, identity.StaffID)
		c.Set(ctxStaffRoleKey, identity.Role)
		c.Set(ctxBranchIDKey, identity.BranchID)
		c.Set("jwt_claims", map[string]any{
			"staff_id":  identity.StaffID,
			"role":      identity.Role,
			"branch_id": identity.BranchID,
		})
		c.Next()
	}
}

func GetStaffID(c *gin.Context) (string, bool) {
	staffID, exists := c.Get(ctxStaffIDKey)
	if !exists {
		return "", false
	}
	id, ok := staffID.(string)
	return id, ok && id != ""
}

func GetBranchID(c *gin.Context) (string, bool) {
	branchID, exists := c.Get(ctxBranchIDKey)
	if !exists {
		return "", false
	}
	id, ok := branchID.(string)
	return id, ok && id != ""
}

func GetStaffRole(c *gin.Context) (string, bool) {
	role, exists := c.Get(ctxStaffRoleKey)
	if !exists {
		return "", false
	}
	r, ok := role.(string)
	return r, ok
}
