package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingAuthorization   = errors.New("authorization header missing")
	ErrMalformedAuthorization = errors.New("invalid authorization header format")
	ErrInvalidToken           = errors.New("invalid or expired token")
	ErrMissingActor           = errors.New("token carries no email or subject")
)

// VerifyToken validates the request's HS256 bearer token against secret and
// returns the acting user: the email claim, or the subject when no email is
// present.
func VerifyToken(r *http.Request, secret []byte) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrMissingAuthorization
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", ErrMalformedAuthorization
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return "", errors.Join(ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}

	if email, ok := claims["email"].(string); ok && strings.TrimSpace(email) != "" {
		return strings.TrimSpace(email), nil
	}
	subject, err := claims.GetSubject()
	if err != nil || strings.TrimSpace(subject) == "" {
		return "", ErrMissingActor
	}
	return strings.TrimSpace(subject), nil
}
