package middleware

import (
	"context"
	"net/http"

	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminChecker is satisfied by user.UserService.
type AdminChecker interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// VerifyAdmin must run after VerifyJWT. Requesters without a user record are
// treated like non-admins.
func VerifyAdmin(users AdminChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := DecodedEmail(c)
		if !ok {
			utils.AbortJSONError(c, http.StatusUnauthorized, "UnAuthorized Access")
			return
		}

		isAdmin, err := users.IsAdmin(c.Request.Context(), email)
		if err != nil {
			GetLogger(c).Error("admin lookup failed", zap.String("email", email), zap.Error(err))
			utils.AbortJSONError(c, http.StatusInternalServerError, "Internal Server Error")
			return
		}
		if !isAdmin {
			utils.AbortJSONError(c, http.StatusForbidden, "Forbidden")
			return
		}
		c.Next()
	}
}
