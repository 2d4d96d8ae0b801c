//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"room-reservation-engine/internal/domain/user"
	"room-reservation-engine/internal/handler/middleware"
	"room-reservation-engine/internal/pkg/config"
	"room-reservation-engine/internal/pkg/jwt"
	"room-reservation-engine/internal/usecase"
	"room-reservation-engine/tests/common/authtest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(cfg config.JWTConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	auth := middleware.NewAuthMiddleware(usecase.NewTokenValidator(jwt.NewService(cfg.Secret, time.Hour)))

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	g := r.Group("/", auth.RequireAuth())
	g.GET("/me", func(c *gin.Context) {
		actor, ok := middleware.GetActor(c)
		if !ok {
			c.Status(http.StatusTeapot)
			return
		}
		c.String(http.StatusOK, actor.Role.String())
	})
	g.GET("/ops", auth.RequireRoleAtLeast(user.RoleOperator), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	cfg := config.NewTestConfig().JWT
	router := newAuthRouter(cfg)
	tokens := authtest.NewJWTHelper(cfg)

	foreign := authtest.NewJWTHelper(config.JWTConfig{Secret: "someone-else", Duration: "1h"})

	testCases := []struct {
		name       string
		path       string
		header     func(t *testing.T) string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "no header",
			path:       "/me",
			header:     func(*testing.T) string { return "" },
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not a bearer header",
			path:       "/me",
			header:     func(*testing.T) string { return "Basic dXNlcjpwYXNz" },
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "token signed with another secret",
			path: "/me",
			header: func(t *testing.T) string {
				return "Bearer " + foreign.GenerateToken(t, uuid.New(), user.RoleAdmin)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "viewer token",
			path: "/me",
			header: func(t *testing.T) string {
				_, token := tokens.NewActorToken(t, user.RoleViewer)
				return "Bearer " + token
			},
			wantStatus: http.StatusOK,
			wantBody:   "viewer",
		},
		{
			name: "viewer on operator route",
			path: "/ops",
			header: func(t *testing.T) string {
				_, token := tokens.NewActorToken(t, user.RoleViewer)
				return "Bearer " + token
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name: "admin on operator route",
			path: "/ops",
			header: func(t *testing.T) string {
				_, token := tokens.NewActorToken(t, user.RoleAdmin)
				return "Bearer " + token
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodGet, tc.path, nil)
			require.NoError(t, err)
			if h := tc.header(t); h != "" {
				req.Header.Set("Authorization", h)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tc.wantStatus, w.Code)
			if tc.wantBody != "" {
				assert.Equal(t, tc.wantBody, w.Body.String())
			}
		})
	}
}
