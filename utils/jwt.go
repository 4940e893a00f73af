package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ActorAuthority is the actor_type claim carried by authority tokens.
const ActorAuthority = "authority"

// GenerateAuthorityJWT generates a JWT for an authority desk (NGT registry, CPCB field team, ...).
func GenerateAuthorityJWT(authority string, secret []byte, expiresInHours int, now time.Time) (string, error) {
	expiresAt := now.Add(time.Duration(expiresInHours) * time.Hour)
	claims := jwt.MapClaims{
		"authority":  authority,
		"actor_type": ActorAuthority,
		"exp":        expiresAt.Unix(),
		"iat":        now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseAuthorityJWT validates an authority token and returns the authority name.
// exp is checked against clock, the same clock GenerateAuthorityJWT was given (nil = wall time).
func ParseAuthorityJWT(tokenString string, secret []byte, clock Clock) (string, error) {
	if clock == nil {
		clock = time.Now
	}
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	}, jwt.WithTimeFunc(clock))
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("invalid token claims")
	}
	if at, _ := claims["actor_type"].(string); at != ActorAuthority {
		return "", fmt.Errorf("token is not authority-scoped")
	}
	authority, _ := claims["authority"].(string)
	if authority == "" {
		return "", fmt.Errorf("authority claim missing")
	}
	return authority, nil
}
