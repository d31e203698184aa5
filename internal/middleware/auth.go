package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/cleancity/internal/features/auth"
	"github.com/xyz-asif/cleancity/internal/pkg/response"
	"github.com/xyz-asif/cleancity/internal/pkg/token"
)

const subjectKey = "subject"

// SubjectSource resolves a token's id+role pair to a live account record.
type SubjectSource interface {
	FindSubject(ctx context.Context, id string, role auth.Role) (*auth.Subject, error)
}

// Auth validates the bearer token and attaches the resolved subject to the
// request context. Every failure mode (missing header, garbled token, bad
// signature, expired, deleted account) yields the same 401 so callers can't
// probe which check tripped.
func Auth(src SubjectSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Not authorized, no token")
			c.Abort()
			return
		}

		fields := strings.Fields(authHeader)
		var tokenString string
		if len(fields) == 2 && strings.EqualFold(fields[0], "Bearer") {
			tokenString = fields[1]
		} else {
			tokenString = authHeader
		}

		claims, err := token.ValidateToken(tokenString)
		if err != nil {
			response.Unauthorized(c, "Not authorized, token failed")
			c.Abort()
			return
		}

		role := auth.RoleUser
		if claims.Role == string(auth.RoleAdmin) {
			role = auth.RoleAdmin
		}

		subject, err := src.FindSubject(c.Request.Context(), claims.ID, role)
		if err != nil || subject == nil {
			response.Unauthorized(c, "Not authorized, token failed")
			c.Abort()
			return
		}

		c.Set(subjectKey, subject)
		c.Set("userID", subject.ID)
		c.Set("role", string(subject.Role))
		c.Next()
	}
}

// AdminOnly rejects any caller whose resolved subject is not an administrator.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		subject := GetSubject(c)
		if subject == nil || subject.Role != auth.RoleAdmin {
			response.Forbidden(c, "Admin access only")
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetSubject returns the authenticated subject set by Auth, or nil.
func GetSubject(c *gin.Context) *auth.Subject {
	value, ok := c.Get(subjectKey)
	if !ok {
		return nil
	}
	subject, ok := value.(*auth.Subject)
	if !ok {
		return nil
	}
	return subject
}
