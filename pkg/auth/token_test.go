package auth_test

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Saksham10-11/GSD/pkg/auth"
	"github.com/Saksham10-11/GSD/pkg/config"
	apperrors "github.com/Saksham10-11/GSD/pkg/errors"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "unit-test-secret",
		Issuer:            "gsd-test",
		ExpirationMinutes: 30,
	}
}

func TestMintAndParseAccessToken(t *testing.T) {
	cfg := testJWTConfig()
	userID := uuid.New()
	accessID := uuid.NewString()

	raw, err := auth.MintAccessToken(cfg, userID, "shopper@example.com", accessID)
	if err != nil {
		t.Fatalf("MintAccessToken returned error: %v", err)
	}

	claims, err := auth.ParseAccessToken(cfg, raw)
	if err != nil {
		t.Fatalf("ParseAccessToken returned error: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("UserID = %s, want %s", claims.UserID, userID)
	}
	if claims.Email != "shopper@example.com" {
		t.Fatalf("Email = %q", claims.Email)
	}
	if claims.ID != accessID {
		t.Fatalf("jti = %q, want %q", claims.ID, accessID)
	}
}

func TestParseAccessTokenWrongSecret(t *testing.T) {
	cfg := testJWTConfig()
	raw, err := auth.MintAccessToken(cfg, uuid.New(), "a@b.c", uuid.NewString())
	if err != nil {
		t.Fatalf("MintAccessToken returned error: %v", err)
	}

	bad := cfg
	bad.Secret = "a-different-secret"
	_, err = auth.ParseAccessToken(bad, raw)
	if err == nil {
		t.Fatal("expected error for wrong secret")
	}
	var appErr *apperrors.Error
	if !errors.As(err, &appErr) || appErr.Code() != apperrors.CodeUnauthorized {
		t.Fatalf("expected UNAUTHORIZED error, got %v", err)
	}
}

func TestParseAccessTokenExpired(t *testing.T) {
	cfg := testJWTConfig()
	userID := uuid.New()
	accessID := uuid.NewString()

	claims := auth.AccessTokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        accessID,
			Issuer:    cfg.Issuer,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.Secret))
	if err != nil {
		t.Fatalf("signing test token: %v", err)
	}

	if _, err := auth.ParseAccessToken(cfg, raw); err == nil {
		t.Fatal("expected expired token to be rejected")
	}

	parsed, err := auth.ParseAccessTokenAllowExpired(cfg, raw)
	if err != nil {
		t.Fatalf("ParseAccessTokenAllowExpired returned error: %v", err)
	}
	if parsed.UserID != userID {
		t.Fatalf("UserID = %s, want %s", parsed.UserID, userID)
	}
}

func TestParseAccessTokenWrongIssuer(t *testing.T) {
	cfg := testJWTConfig()
	other := cfg
	other.Issuer = "someone-else"

	raw, err := auth.MintAccessToken(other, uuid.New(), "a@b.c", uuid.NewString())
	if err != nil {
		t.Fatalf("MintAccessToken returned error: %v", err)
	}
	if _, err := auth.ParseAccessToken(cfg, raw); err == nil {
		t.Fatal("expected token from another issuer to be rejected")
	}
}
