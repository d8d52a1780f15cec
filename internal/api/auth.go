package api

import (
	"fmt"
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

// identity extracts the caller's user ID from an optional Authorization
// bearer token. Guests get a nil identity; a malformed or unverifiable token
// is treated as a guest rather than rejected, matching the original's
// guest-mode behavior.
func (a *ChatAPI) identity(c *gin.Context) *string {
	header := c.GetHeader("Authorization")
	if header == "" || a.jwtSecret == "" {
		return nil
	}

	raw := strings.TrimPrefix(header, "Bearer ")
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(a.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		a.log.WithError(err).Debug("ignoring invalid bearer token")
		return nil
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil
	}
	return &sub
}
