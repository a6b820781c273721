package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	userRepo "github.com/sud2610/set-u-free-sub000/database/repository/user"
	"github.com/sud2610/set-u-free-sub000/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Context keys set by AuthMiddleware.
const (
	CtxUserID = "userID"
	CtxRole   = "role"
	CtxUser   = "authUser"
)

// AuthMiddleware validates the bearer token, checks its hash against the
// auth cache (falling back to the user document), and resolves the full
// user in one pass, so identity and role are settled before any handler runs.
func AuthMiddleware(repo userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.JSONError(c, http.StatusUnauthorized, "Missing or invalid Authorization header")
			c.Abort()
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			utils.JSONError(c, http.StatusUnauthorized, "Invalid token")
			c.Abort()
			return
		}

		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + userID

		// Check the auth cache first; any cache trouble degrades to a DB
		// lookup rather than failing the request.
		hashOK := false
		authCache := utils.GetAuthCacheClient()
		cachedHash, err := authCache.Get(context.Background(), cacheKey).Result()
		if err == nil {
			if cachedHash != computedHash {
				utils.JSONError(c, http.StatusUnauthorized, "Token mismatch")
				c.Abort()
				return
			}
			_ = authCache.Expire(context.Background(), cacheKey, time.Hour).Err()
			hashOK = true
		} else if err != redis.Nil {
			utils.GetLogger().Warn("Auth cache unavailable, falling back to DB", zap.Error(err))
		}

		usr, err := repo.GetByID(userID)
		if err != nil || usr == nil {
			utils.JSONError(c, http.StatusUnauthorized, "Authentication error")
			c.Abort()
			return
		}
		if !hashOK {
			if usr.TokenHash == "" || usr.TokenHash != computedHash {
				utils.JSONError(c, http.StatusUnauthorized, "Token mismatch")
				c.Abort()
				return
			}
			_ = authCache.Set(context.Background(), cacheKey, computedHash, time.Hour).Err()
		}
		if !usr.Active {
			utils.JSONError(c, http.StatusForbidden, "Account is disabled")
			c.Abort()
			return
		}

		c.Set(CtxUserID, usr.ID)
		c.Set(CtxRole, usr.Role)
		c.Set(CtxUser, usr)
		c.Next()
	}
}
