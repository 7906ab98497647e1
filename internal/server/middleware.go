package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"open-hire/internal/auth"
	"open-hire/internal/hireerrors"
	"open-hire/utils"
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// CORSMiddleware allows the configured browser origins with credentials,
// which the cookie-based identity transport requires
func CORSMiddleware(origins []string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(origins))
	for _, o := range origins {
		allowed[o] = true
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if allowed[origin] {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// AuthRequiredMiddleware verifies the caller's token from the cookie or the
// Authorization header and stores the email identity in the gin context
func AuthRequiredMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := tokenFromRequest(c)
		if tokenString == "" {
			utils.JSONError(c, http.StatusUnauthorized, hireerrors.ErrUnauthenticated, "unauthorized access")
			c.Abort()
			return
		}

		email, err := tokens.Verify(tokenString)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, hireerrors.ErrUnauthenticated, "unauthorized access")
			utils.Warn("AuthRequiredMiddleware: token rejected", map[string]any{"error": err.Error()})
			c.Abort()
			return
		}

		c.Set(auth.IdentityKey, email)
		c.Next()
	}
}

// RequireEmailParamMiddleware rejects requests whose :email path parameter
// does not match the verified identity
func RequireEmailParamMiddleware(c *gin.Context) {
	email := c.Param("email")
	if !strings.EqualFold(Identity(c), email) {
		utils.JSONError(c, http.StatusForbidden, hireerrors.ErrUnauthorized, "forbidden access")
		c.Abort()
		return
	}
	c.Next()
}

// Identity returns the verified caller email set by AuthRequiredMiddleware
func Identity(c *gin.Context) string {
	v, _ := c.Get(auth.IdentityKey)
	email, _ := v.(string)
	return email
}

func tokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie(auth.TokenCookie); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	if after, ok := strings.CutPrefix(header, "Bearer "); ok {
		return after
	}
	return ""
}
