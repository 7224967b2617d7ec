package utils

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ParseRSAPrivateKey decodes a PEM-encoded RSA private key in either PKCS#1
// ("RSA PRIVATE KEY") or PKCS#8 ("PRIVATE KEY") form, as found in Google
// service-account key files.
func ParseRSAPrivateKey(pemKey string) (*rsa.PrivateKey, error) {
	if pemKey == "" {
		return nil, errors.New("empty private key")
	}

	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(pemKey))
	if err != nil {
		return nil, fmt.Errorf("error parsing RSA private key: %w", err)
	}

	return key, nil
}

// SignRS256 signs claims with key using RS256 and returns the compact JWS.
// keyID, when non-empty, is placed in the "kid" header.
//
// Example usage:
//
//	assertion, err := utils.SignRS256(jwt.MapClaims{"iss": email}, key, "")
func SignRS256(claims jwt.Claims, key *rsa.PrivateKey, keyID string) (string, error) {
	if key == nil {
		return "", errors.New("nil signing key")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	if keyID != "" {
		token.Header["kid"] = keyID
	}

	signed, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return signed, nil
}

// ExpiryFromJWT reads the "exp" claim of tokenString without verifying its
// signature. It is meant for tokens received directly from a trusted issuer
// over TLS, where only the lifetime is of interest.
func ExpiryFromJWT(tokenString string) (time.Time, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, fmt.Errorf("error parsing token: %w", err)
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("error reading token expiry: %w", err)
	}
	if exp == nil {
		return time.Time{}, errors.New("token has no expiry")
	}

	return exp.Time, nil
}
