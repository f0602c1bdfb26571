package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

const jwtCookieName = "JWT"

// sessionResponse reports the caller's authentication state
type sessionResponse struct {
	Authenticated bool   `json:"authenticated"`
	Email         string `json:"email,omitempty"`
}

// getSession reports whether the request carries a valid session token.
// Unlike the gated routes it answers 200 either way so clients can probe
// their state without triggering an auth failure.
func (s *Server) getSession(c *gin.Context) {
	tokenStr := extractSessionToken(c.Request)
	if tokenStr == "" {
		c.JSON(http.StatusOK, sessionResponse{Authenticated: false})
		return
	}

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	})
	if err != nil {
		c.JSON(http.StatusOK, sessionResponse{Authenticated: false})
		return
	}

	c.JSON(http.StatusOK, sessionResponse{
		Authenticated: true,
		Email:         emailFromClaims(claims),
	})
}

// extractSessionToken reads the session JWT from the cookie set by the
// auth handlers, falling back to a bearer Authorization header
func extractSessionToken(req *http.Request) string {
	if cookie, err := req.Cookie(jwtCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	auth := req.Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

// emailFromClaims digs the identity email out of the token's user claim
func emailFromClaims(claims jwt.MapClaims) string {
	user, ok := claims["user"].(map[string]interface{})
	if !ok {
		return ""
	}
	if email, ok := user["email"].(string); ok && email != "" {
		return strings.ToLower(email)
	}
	if name, ok := user["name"].(string); ok && strings.Contains(name, "@") {
		return strings.ToLower(name)
	}
	return ""
}
