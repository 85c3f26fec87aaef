package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/ilyamazurenko/Dance-partner-app/internal/model"
	"github.com/ilyamazurenko/Dance-partner-app/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	userKey = "user"

	msgBadCredentials = "Could not validate credentials"
)

// Authenticator resolves a bearer token to the user it was issued for
type Authenticator interface {
	ResolveCurrentUser(ctx context.Context, token string) (*model.User, error)
}

// NewAuthMiddleware requires an "Authorization: Bearer <token>" header that
// resolves to an active user. The user is stored on the context under "user"
// and their id under "userID".
func NewAuthMiddleware(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := RequestID(c)

		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			Unauthorized(c, msgBadCredentials)
			return
		}

		user, err := auth.ResolveCurrentUser(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, service.ErrInvalidCredentials) {
				Unauthorized(c, msgBadCredentials)
				return
			}

			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to resolve current user", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		c.Set(userKey, user)
		c.Set("userID", user.ID)
		c.Next()
	}
}

// CurrentUser returns the user stored by NewAuthMiddleware
func CurrentUser(c *gin.Context) *model.User {
	return c.MustGet(userKey).(*model.User)
}

// Unauthorized aborts with 401 and the bearer challenge header
func Unauthorized(c *gin.Context, msg string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":     msg,
		"requestID": RequestID(c),
	})
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)
	return token, token != ""
}
