package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/ridepoints/internal/domain/model"
	pkgAuth "github.com/polkiloo/ridepoints/internal/pkg/auth"
	"github.com/polkiloo/ridepoints/internal/server/http/dto"
)

// IdentityContextKey is the gin context key holding the authenticated model.Identity.
const IdentityContextKey = "identity"

const bearerScheme = "Bearer"

// TokenParser resolves a session token into an identity.
type TokenParser interface {
	ParseToken(token string) (model.Identity, error)
}

// AuthRequired ensures the caller presents a valid session token.
func AuthRequired(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: dto.MsgAccessDenied})
			return
		}

		identity, err := parser.ParseToken(token)
		if err != nil {
			if errors.Is(err, pkgAuth.ErrInvalidToken) {
				c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Error: dto.MsgInvalidToken})
				return
			}
			_ = c.Error(err)
			c.Abort()
			return
		}

		c.Set(IdentityContextKey, identity)
		c.Next()
	}
}

// extractToken accepts both "Bearer <token>" and a bare token.
func extractToken(c *gin.Context) string {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	scheme, rest, _ := strings.Cut(header, " ")
	if strings.EqualFold(scheme, bearerScheme) {
		return strings.TrimSpace(rest)
	}
	return header
}

// SetAuthHeader echoes the issued token in the Authorization response header.
func SetAuthHeader(c *gin.Context, token string) {
	c.Header("Authorization", "Bearer "+token)
}
