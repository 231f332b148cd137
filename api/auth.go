package api

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

type accountClaims struct {
	Subject   string `json:"sub"`
	ExpiresAt int64  `json:"exp"`
	IssuedAt  int64  `json:"iat"`
}

func parseAccountJWT(jwtStr string, jwtSecret string) (*accountClaims, error) {
	token, err := jwt.Parse(jwtStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(jwtSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("failed to parse claims")
	}

	out := accountClaims{}
	if sub, ok := claims["sub"].(string); ok {
		out.Subject = sub
	}
	if exp, ok := claims["exp"].(float64); ok {
		out.ExpiresAt = int64(exp)
	}
	if iat, ok := claims["iat"].(float64); ok {
		out.IssuedAt = int64(iat)
	}

	if out.Subject == "" {
		return nil, fmt.Errorf("token has no subject")
	}
	if time.Now().UTC().Unix() > out.ExpiresAt {
		return nil, fmt.Errorf("jwt is expired")
	}

	return &out, nil
}

// authMiddleware resolves the caller's account from the bearer token and
// stashes it in the gin context under "account".
func (m ApiHandler) authMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		returnErrorJsonCode(fmt.Errorf("missing authorization header"), c, 401)
		return
	}
	jwtStr := strings.TrimPrefix(header, "Bearer ")

	claims, err := parseAccountJWT(jwtStr, m.JwtSecret)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	c.Set("account", claims.Subject)
	c.Next()
}

// callerAccount returns the account the auth middleware resolved.
func callerAccount(c *gin.Context) (string, error) {
	ginAccount, ok := c.Get("account")
	if !ok {
		return "", fmt.Errorf("must be logged in")
	}
	account, ok := ginAccount.(string)
	if !ok || account == "" {
		return "", fmt.Errorf("misformatted account")
	}
	return account, nil
}
