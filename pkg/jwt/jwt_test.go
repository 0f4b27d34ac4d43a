package jwt

import (
	"testing"
	"time"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	token, tokenID, err := svc.GenerateSessionToken(42, "doc@example.com", "doctor")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tokenID == "" {
		t.Fatal("expected token id")
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.UserID != 42 || claims.Email != "doc@example.com" || claims.Role != "doctor" {
		t.Errorf("unexpected claims: %+v", claims)
	}
	if claims.TokenID != tokenID {
		t.Errorf("expected token id %s, got %s", tokenID, claims.TokenID)
	}
	if claims.TokenType != SessionToken {
		t.Errorf("expected session token type, got %s", claims.TokenType)
	}
}

func TestValidate_WrongSecret(t *testing.T) {
	token, _, err := NewJWTService("one", time.Hour).GenerateSessionToken(1, "a@b.c", "admin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := NewJWTService("two", time.Hour).ValidateToken(token); err == nil {
		t.Error("expected signature error")
	}
}

func TestValidate_Expired(t *testing.T) {
	svc := NewJWTService("secret", -time.Minute)
	token, _, err := svc.GenerateSessionToken(1, "a@b.c", "admin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.ValidateToken(token); err == nil {
		t.Error("expected expiry error")
	}
}

func TestValidate_Garbage(t *testing.T) {
	if _, err := NewJWTService("secret", time.Hour).ValidateToken("not-a-token"); err == nil {
		t.Error("expected parse error")
	}
}
