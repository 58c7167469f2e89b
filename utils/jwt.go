package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessToken is a signed HS256 JWT plus its expiry.
type AccessToken struct {
	Token string
	Exp   time.Time
}

// TokenClaims is what the auth middleware extracts from a verified token.
type TokenClaims struct {
	UserID  uint
	IsStaff bool
}

var errInvalidToken = errors.New("invalid token")

// NewAccessToken signs an access token carrying the user id (sub) and the
// staff flag. ttl controls how long the token is honoured.
func NewAccessToken(secret string, userID uint, isStaff bool, ttl time.Duration) (AccessToken, error) {
	exp := time.Now().UTC().Add(ttl)
	claims := jwt.MapClaims{
		"sub":      float64(userID),
		"is_staff": isStaff,
		"exp":      exp.Unix(),
		"iat":      time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{Token: signed, Exp: exp}, nil
}

// ParseAccessToken verifies the signature and expiry of a raw token and
// returns its claims.
func ParseAccessToken(secret, raw string) (TokenClaims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return TokenClaims{}, errInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return TokenClaims{}, errInvalidToken
	}
	sub, ok := claims["sub"].(float64)
	if !ok || sub <= 0 {
		return TokenClaims{}, errInvalidToken
	}
	isStaff, _ := claims["is_staff"].(bool)
	return TokenClaims{UserID: uint(sub), IsStaff: isStaff}, nil
}
