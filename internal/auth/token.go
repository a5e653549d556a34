package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
)

var ErrInvalidToken = errors.New("invalid token")

// Identity is the caller's identity as carried by a verified token
type Identity struct {
	UserID   string
	Username string
}

// Claims is the signed payload of a bearer token. No expiry is set, so a
// token stays valid until the server secret changes.
type Claims struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	jwt.StandardClaims
}

// Identity returns the identity embedded in the claims
func (c *Claims) Identity() Identity {
	return Identity{UserID: c.UserID, Username: c.Username}
}

// Sign issues an HS256 token for identity
func Sign(identity Identity, secret []byte) (string, error) {
	claims := &Claims{
		UserID:   identity.UserID,
		Username: identity.Username,
		StandardClaims: jwt.StandardClaims{
			IssuedAt: time.Now().Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// Verify checks the token signature against secret and returns the embedded identity
func Verify(tokenStr string, secret []byte) (Identity, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !token.Valid || claims.UserID == "" {
		return Identity{}, ErrInvalidToken
	}

	return claims.Identity(), nil
}
