package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/teamkudos/kudos-backend/internal/domain/entity"
	"github.com/teamkudos/kudos-backend/internal/domain/policy"
	"github.com/teamkudos/kudos-backend/internal/infrastructure/revocation"
	"github.com/teamkudos/kudos-backend/pkg/apperrors"
	"github.com/teamkudos/kudos-backend/pkg/helpers"
	"github.com/teamkudos/kudos-backend/pkg/response"
)

const (
	CtxUserIDKey    = "userID"
	CtxUserEmailKey = "userEmail"
	CtxUserRoleKey  = "userRole"
)

// Auth enforces the Bearer token contract on protected routes. The revocation
// store is consulted before signature verification so a revoked token is
// reported as revoked even after it expires. On success the caller identity
// lands in the Gin context under CtxUserIDKey/CtxUserEmailKey/CtxUserRoleKey.
func Auth(jwt *helpers.JWTManager, revoked revocation.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := bearerToken(c.GetHeader("Authorization"))
		if err != nil {
			abort(c, err)
			return
		}

		isRevoked, err := revoked.IsRevoked(c.Request.Context(), token)
		if err != nil {
			abort(c, err)
			return
		}
		if isRevoked {
			abort(c, apperrors.TokenRevoked("token has been revoked"))
			return
		}

		claims, err := jwt.Parse(token)
		if err != nil {
			abort(c, err)
			return
		}

		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxUserEmailKey, claims.Email)
		c.Set(CtxUserRoleKey, claims.Role)
		c.Next()
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header. A missing header and a malformed one are distinct failures.
func bearerToken(header string) (string, error) {
	if header == "" {
		return "", apperrors.AuthenticationRequired("authentication required")
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found || scheme != "Bearer" || strings.TrimSpace(token) == "" {
		return "", apperrors.InvalidFormat("authorization header must be 'Bearer <token>'")
	}
	return token, nil
}

// ActorFrom rebuilds the policy actor from the identity Auth stored in the
// context.
func ActorFrom(c *gin.Context) policy.Actor {
	return policy.Actor{
		ID:    c.GetString(CtxUserIDKey),
		Email: c.GetString(CtxUserEmailKey),
		Role:  entity.Role(c.GetString(CtxUserRoleKey)),
	}
}

func abort(c *gin.Context, err error) {
	response.Error[any](c, apperrors.HTTPStatus(err), err.Error(), nil)
	c.Abort()
}
