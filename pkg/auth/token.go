package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Saksham10-11/GSD/pkg/config"
	apperrors "github.com/Saksham10-11/GSD/pkg/errors"
)

var jwtSigningMethod = jwt.SigningMethodHS256

// MintAccessToken signs an access token for the user. The returned access ID
// is the token's jti and identifies the server-side session.
func MintAccessToken(cfg config.JWTConfig, userID uuid.UUID, email string, accessID string) (string, error) {
	if cfg.Secret == "" {
		return "", fmt.Errorf("jwt secret is not configured")
	}
	now := time.Now().UTC()

	claims := AccessTokenClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        accessID,
			Issuer:    cfg.Issuer,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(cfg.ExpirationMinutes) * time.Minute)),
		},
	}

	token := jwt.NewWithClaims(jwtSigningMethod, claims)
	signed, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("signing access token: %w", err)
	}
	return signed, nil
}

// ParseAccessToken validates the signature, issuer and expiry and returns the
// claims. All failures map to an unauthorized application error.
func ParseAccessToken(cfg config.JWTConfig, raw string) (*AccessTokenClaims, error) {
	return parseAccessToken(cfg, raw, false)
}

// ParseAccessTokenAllowExpired accepts an expired token as long as the
// signature is valid. Used by the refresh flow, which trades an expired token
// plus a live session for a new pair.
func ParseAccessTokenAllowExpired(cfg config.JWTConfig, raw string) (*AccessTokenClaims, error) {
	return parseAccessToken(cfg, raw, true)
}

func parseAccessToken(cfg config.JWTConfig, raw string, allowExpired bool) (*AccessTokenClaims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwtSigningMethod.Alg()}),
		jwt.WithIssuer(cfg.Issuer),
	}
	if allowExpired {
		opts = append(opts, jwt.WithoutClaimsValidation())
	}

	claims := &AccessTokenClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(cfg.Secret), nil
	}, opts...)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeUnauthorized, err, "invalid access token")
	}
	if !token.Valid && !allowExpired {
		return nil, apperrors.New(apperrors.CodeUnauthorized, "invalid access token")
	}
	if claims.UserID == uuid.Nil || claims.ID == "" {
		return nil, apperrors.New(apperrors.CodeUnauthorized, "access token is missing identity claims")
	}
	return claims, nil
}
