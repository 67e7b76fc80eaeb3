package middleware

import (
	"net/http"
	"strings"

	"github.com/Nascian/socialnetwork-backend/pkg/context"
	"github.com/Nascian/socialnetwork-backend/pkg/jwt"
	"github.com/Nascian/socialnetwork-backend/pkg/log"
	"github.com/Nascian/socialnetwork-backend/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Auth requires "Authorization: Bearer <token>" and stores the user id
// (uint64) under context.CtxUserID.
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(authHeader, "Bearer ")
		token = strings.TrimSpace(token)
		if !ok || token == "" {
			response.Abort(c, http.StatusUnauthorized, "Missing or invalid Authorization header")
			return
		}

		claims, err := jwt.ParseToken(secret, jwt.TypeAccess, token)
		if err != nil {
			log.L.Debug("invalid token", zap.Error(err))
			response.Abort(c, http.StatusUnauthorized, "Invalid token")
			return
		}
		c.Set(context.CtxUserID, claims.UserID)

		c.Next()
	}
}
