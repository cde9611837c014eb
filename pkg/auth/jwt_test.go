package auth

import (
	"strings"
	"testing"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("user-1", "admin@labtrack.com", "Admin")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Errorf("expected user id user-1, got %q", claims.UserID)
	}
	if claims.Email != "admin@labtrack.com" {
		t.Errorf("expected email to round-trip, got %q", claims.Email)
	}
	if claims.Role != "Admin" {
		t.Errorf("expected role to round-trip, got %q", claims.Role)
	}
	if claims.Issuer != "labtrack" {
		t.Errorf("expected issuer labtrack, got %q", claims.Issuer)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	for _, token := range []string{"", "not.a.token", "aaaa.bbbb.cccc"} {
		if _, err := ValidateToken(token); err == nil {
			t.Errorf("expected error for token %q", token)
		}
	}
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	token, err := GenerateToken("user-1", "tech@labtrack.com", "Technician")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	parts := strings.Split(token, ".")
	tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))
	if _, err := ValidateToken(tampered); err == nil {
		t.Error("expected error for tampered signature")
	}
}
