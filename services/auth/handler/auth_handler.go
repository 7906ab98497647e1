package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"open-hire/internal/auth"
	"open-hire/utils"
)

const tokenCookieMaxAge = 10 * 24 * 60 * 60 // matches the token lifetime

type IssueTokenRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// AuthHandler exposes the identity gate endpoints: token issuance and logout.
// The upstream authentication provider has already verified the email before
// the client asks for a token.
type AuthHandler struct {
	tokens        *auth.TokenManager
	secureCookies bool
}

func NewAuthHandler(tokens *auth.TokenManager, secureCookies bool) *AuthHandler {
	return &AuthHandler{tokens: tokens, secureCookies: secureCookies}
}

// IssueTokenHandler handles POST /jwt
func (h *AuthHandler) IssueTokenHandler(c *gin.Context) {
	var req IssueTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err, "invalid request payload")
		utils.Warn("IssueTokenHandler: binding error", map[string]any{"error": err.Error()})
		return
	}

	token, err := h.tokens.Issue(req.Email)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err, "failed to issue token")
		utils.Error("IssueTokenHandler: failed to issue token", map[string]any{"email": req.Email, "error": err.Error()})
		return
	}

	h.setTokenCookie(c, token, tokenCookieMaxAge)
	utils.JSONResponse(c, http.StatusOK, gin.H{"token": token}, "token issued")
}

// LogoutHandler handles GET /logout
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	h.setTokenCookie(c, "", -1)
	utils.JSONResponse(c, http.StatusOK, nil, "logged out")
}

func (h *AuthHandler) setTokenCookie(c *gin.Context, token string, maxAge int) {
	sameSite := http.SameSiteStrictMode
	if h.secureCookies {
		sameSite = http.SameSiteNoneMode
	}
	c.SetSameSite(sameSite)
	c.SetCookie(auth.TokenCookie, token, maxAge, "/", "", h.secureCookies, true)
}
