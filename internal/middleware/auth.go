package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Zooracle/internal/dto"
	"github.com/lshigami/Zooracle/internal/model"
	"github.com/lshigami/Zooracle/internal/service"
)

// CurrentUserKey is the gin context key the auth middlewares set.
const CurrentUserKey = "currentUser"

func bearerToken(ctx *gin.Context) string {
	header := ctx.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// RequireAuth rejects requests without a valid bearer token.
func RequireAuth(auth service.AuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := bearerToken(ctx)
		if token == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Detail: "Not authenticated"})
			return
		}
		user, err := auth.ResolveToken(token)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Detail: "Could not validate credentials"})
			return
		}
		ctx.Set(CurrentUserKey, user)
		ctx.Next()
	}
}

// OptionalAuth resolves the bearer token when present but lets anonymous
// requests through. A bad token is ignored, not rejected.
func OptionalAuth(auth service.AuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if token := bearerToken(ctx); token != "" {
			if user, err := auth.ResolveToken(token); err == nil {
				ctx.Set(CurrentUserKey, user)
			}
		}
		ctx.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user := CurrentUser(ctx)
		if user == nil || !user.IsAdmin {
			ctx.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Detail: "Admin privileges required"})
			return
		}
		ctx.Next()
	}
}

// CurrentUser returns the authenticated user or nil.
func CurrentUser(ctx *gin.Context) *model.User {
	value, ok := ctx.Get(CurrentUserKey)
	if !ok {
		return nil
	}
	user, ok := value.(*model.User)
	if !ok {
		return nil
	}
	return user
}
