package token_test

import (
	"context"
	"testing"
	"time"

	"github.com/danieltechTI/ReiBurguer/internal/token"

	"github.com/google/uuid"
)

func TestHSProvider_SignAndParse(t *testing.T) {
	p := token.NewHSProvider("test-secret", "reiburguer", "reiburguer-api")
	ctx := context.Background()

	sub := uuid.New()
	access, exp, err := p.SignAccess(ctx, sub, "ROLE_CUSTOMER", time.Hour)
	if err != nil {
		t.Fatalf("SignAccess: %v", err)
	}
	if access == "" {
		t.Fatal("Expected a signed token")
	}
	if time.Until(exp) <= 0 {
		t.Errorf("Expected future expiry, got %v", exp)
	}

	claims, err := p.ParseAndValidateAccess(ctx, access)
	if err != nil {
		t.Fatalf("ParseAndValidateAccess: %v", err)
	}
	if claims.CustomerID != sub {
		t.Errorf("Expected subject %v, got %v", sub, claims.CustomerID)
	}
	if claims.Role != "ROLE_CUSTOMER" {
		t.Errorf("Expected role ROLE_CUSTOMER, got %s", claims.Role)
	}
}

func TestHSProvider_RejectsWrongSecret(t *testing.T) {
	signer := token.NewHSProvider("secret-a", "reiburguer", "reiburguer-api")
	verifier := token.NewHSProvider("secret-b", "reiburguer", "reiburguer-api")
	ctx := context.Background()

	access, _, err := signer.SignAccess(ctx, uuid.New(), "ROLE_CUSTOMER", time.Hour)
	if err != nil {
		t.Fatalf("SignAccess: %v", err)
	}

	if _, err := verifier.ParseAndValidateAccess(ctx, access); err == nil {
		t.Fatal("Expected signature verification to fail")
	}
}

func TestHSProvider_RejectsWrongAudienceAndIssuer(t *testing.T) {
	signer := token.NewHSProvider("secret", "other-issuer", "other-api")
	verifier := token.NewHSProvider("secret", "reiburguer", "reiburguer-api")
	ctx := context.Background()

	access, _, err := signer.SignAccess(ctx, uuid.New(), "ROLE_CUSTOMER", time.Hour)
	if err != nil {
		t.Fatalf("SignAccess: %v", err)
	}

	if _, err := verifier.ParseAndValidateAccess(ctx, access); err == nil {
		t.Fatal("Expected audience/issuer validation to fail")
	}
}

func TestHSProvider_RejectsExpiredToken(t *testing.T) {
	p := token.NewHSProvider("secret", "reiburguer", "reiburguer-api")
	ctx := context.Background()

	access, _, err := p.SignAccess(ctx, uuid.New(), "ROLE_CUSTOMER", -time.Minute)
	if err != nil {
		t.Fatalf("SignAccess: %v", err)
	}

	if _, err := p.ParseAndValidateAccess(ctx, access); err == nil {
		t.Fatal("Expected expired token to be rejected")
	}
}

func TestHSProvider_RejectsGarbage(t *testing.T) {
	p := token.NewHSProvider("secret", "reiburguer", "reiburguer-api")

	if _, err := p.ParseAndValidateAccess(context.Background(), "not.a.token"); err == nil {
		t.Fatal("Expected parse failure")
	}
}
