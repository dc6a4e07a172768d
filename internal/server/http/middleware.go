package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vkarpovs/crudboard/internal/common"
	"github.com/vkarpovs/crudboard/internal/server/services"
)

const userIDContextKey = "userID"

// AuthMiddleware guards endpoints that require a valid bearer access token.
type AuthMiddleware struct {
	auth *services.AuthService
}

// NewAuthMiddleware constructs the middleware over the auth service.
func NewAuthMiddleware(auth *services.AuthService) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// RequireAccessToken aborts with 401 unless the request carries a valid,
// unexpired access token in the Authorization header. On success the
// caller's user id is stored in the gin context.
func (m *AuthMiddleware) RequireAccessToken(c *gin.Context) {
	header := c.GetHeader(common.AuthorizationHeaderName)
	if !strings.HasPrefix(header, common.BearerPrefix) {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	token := strings.TrimPrefix(header, common.BearerPrefix)
	userID, err := m.auth.AccessTokenSubject(token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	c.Set(userIDContextKey, userID)
	c.Next()
}

// currentUserID returns the authenticated user id stored by the middleware.
func currentUserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(userIDContextKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
