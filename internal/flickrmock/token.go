package flickrmock

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// 32 bytes of data is equal to 256 bits of entropy
var byteSize = 32

func GenerateRandomString() (string, error) {
	randomBytes := make([]byte, byteSize)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes")
	}
	return base64.RawURLEncoding.EncodeToString(randomBytes), nil
}

// requestTokenClaims carries the token secret and the granted callback inside
// the request token itself, so the three endpoints need no shared token
// state.
type requestTokenClaims struct {
	Secret   string `json:"secret"`
	Callback string `json:"callback"`
	jwt.RegisteredClaims
}

// mintRequestToken issues a request token as a signed JWT and returns the
// token string alongside its secret.
func (h *Handler) mintRequestToken(callback string) (string, string, error) {
	secret, err := GenerateRandomString()
	if err != nil {
		return "", "", err
	}

	claims := requestTokenClaims{
		Secret:   secret,
		Callback: callback,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(10 * time.Minute)),
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := tok.SignedString(h.jwtSecret)
	if err != nil {
		return "", "", err
	}

	return tokenString, secret, nil
}

// parseRequestToken validates a request token and recovers its claims.
func (h *Handler) parseRequestToken(tokenString string) (*requestTokenClaims, error) {
	claims := &requestTokenClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return h.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid request token: %w", err)
	}

	return claims, nil
}
