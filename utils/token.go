package utils

import (
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// JwtCustomClaim is the session token payload. Subject carries the user's
// email; expiry is absolute, there is no server-side revocation.
type JwtCustomClaim struct {
	jwt.StandardClaims
}

// JwtGenerate issues an HS256 token for the given email, expiring a fixed
// lifespan from now. The signing secret comes from the caller's config,
// never from ambient state.
func JwtGenerate(secret []byte, email string, lifespan time.Duration) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, &JwtCustomClaim{
		StandardClaims: jwt.StandardClaims{
			Subject:   email,
			ExpiresAt: now.Add(lifespan).Unix(),
			IssuedAt:  now.Unix(),
		},
	})

	token, err := t.SignedString(secret)
	if err != nil {
		return "", err
	}

	return token, nil
}

// JwtValidate verifies signature and expiry and returns the subject email.
// Every failure mode (bad signature, expired, missing subject) collapses
// into ErrInvalidToken so callers cannot leak which check failed.
func JwtValidate(secret []byte, token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &JwtCustomClaim{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*JwtCustomClaim)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}
