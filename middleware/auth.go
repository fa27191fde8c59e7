package middleware

import (
	"net/http"
	"strings"

	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextEmail is the gin context key holding the verified token email.
const ContextEmail = "decodedEmail"

// TokenValidator is satisfied by *utils.TokenManager.
type TokenValidator interface {
	ValidateToken(tokenString string) (*utils.TokenClaims, error)
}

// VerifyJWT requires a valid bearer token. A missing or malformed header is
// 401; a token that fails signature or expiry checks is 403.
func VerifyJWT(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.AbortJSONError(c, http.StatusUnauthorized, "UnAuthorized Access")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			utils.AbortJSONError(c, http.StatusUnauthorized, "UnAuthorized Access")
			return
		}

		claims, err := tokens.ValidateToken(strings.TrimSpace(parts[1]))
		if err != nil {
			GetLogger(c).Debug("token rejected", zap.Bool("expired", utils.IsTokenExpired(err)), zap.Error(err))
			utils.AbortJSONError(c, http.StatusForbidden, "Forbidden Access")
			return
		}

		c.Set(ContextEmail, claims.Email)
		c.Next()
	}
}

// DecodedEmail returns the email set by VerifyJWT.
func DecodedEmail(c *gin.Context) (string, bool) {
	v, exists := c.Get(ContextEmail)
	if !exists {
		return "", false
	}
	email, ok := v.(string)
	return email, ok && email != ""
}
