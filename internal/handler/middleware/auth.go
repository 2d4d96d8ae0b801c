package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"room-reservation-engine/internal/domain/user"
	"room-reservation-engine/internal/handler/httperr"
	"room-reservation-engine/internal/pkg/errs"
	"room-reservation-engine/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxActorKey  = "actor"
	ctxClaimsKey = "jwt_claims"
)

var (
	errMissingToken     = errs.New("missing bearer token")
	errNoActor          = errs.New("no actor in context")
	errInsufficientRole = errs.New("insufficient role")
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, "Access token required", nil)
			return
		}

		actor, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		SetActor(c, actor)
		c.Next()
	}
}

// RequireRoleAtLeast must run after RequireAuth.
func (m *AuthMiddleware) RequireRoleAtLeast(minRole user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError, errNoActor, "Internal server error", nil)
			return
		}

		if !actor.Role.AtLeast(minRole) {
			httperr.AbortWithError(c, http.StatusForbidden, errInsufficientRole, "Insufficient permissions", nil)
			return
		}

		c.Next()
	}
}

// SetActor also records the claims the logging middleware reads.
func SetActor(c *gin.Context, actor user.Actor) {
	c.Set(ctxActorKey, actor)
	c.Set(ctxClaimsKey, map[string]any{
		"user_id": actor.ID.String(),
		"role":    actor.Role.String(),
	})
}

func GetActor(c *gin.Context) (user.Actor, bool) {
	v, exists := c.Get(ctxActorKey)
	if !exists {
		return user.Actor{}, false
	}
	actor, ok := v.(user.Actor)
	return actor, ok && actor.ID != uuid.Nil
}
