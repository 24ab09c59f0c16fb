package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

const SESSION_COOKIE_NAME = "session_token"

type SessionClaims struct {
	SessionID string `json:"sessionId"`
	Scope     string `json:"scope"`
	jwt.RegisteredClaims
}

func ValidateSessionToken(tokenString string, secret string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})

	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || claims.Scope != "session" {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}
