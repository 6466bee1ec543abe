package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/eventhub/pkg/helpers"
	"github.com/oksasatya/eventhub/pkg/response"
)

const (
	CtxUserIDKey      = "userID"
	AccessTokenCookie = "access_token"
	CodeUnauthorized  = "UNAUTHORIZED"
)

// Auth requires a valid access token from the Authorization bearer header or
// the access_token cookie and stores the caller's user id under "userID".
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tok := bearerToken(c.GetHeader("Authorization"))
		if tok == "" {
			tok, _ = c.Cookie(AccessTokenCookie)
		}
		if tok == "" {
			response.Error[any](c, http.StatusUnauthorized, "missing access token", CodeUnauthorized, nil)
			return
		}
		claims, err := jwt.ParseAccessToken(tok)
		if err != nil {
			response.Error[any](c, http.StatusUnauthorized, "invalid access token", CodeUnauthorized, nil)
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Next()
	}
}

func bearerToken(h string) string {
	scheme, tok, ok := strings.Cut(strings.TrimSpace(h), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(tok)
}

// UserID returns the authenticated caller, or "" on public routes.
func UserID(c *gin.Context) string { return c.GetString(CtxUserIDKey) }
