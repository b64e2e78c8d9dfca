package auth

import (
	"strings"
	"testing"
	"time"

	"sjavs-go/internal/config"
)

func testConfig() config.Config {
	return config.Config{
		JWTSecret: "test-secret",
		JWTIssuer: "sjavs-go",
		JWTTTL:    time.Hour,
	}
}

func TestSeatTokenRoundTrip(t *testing.T) {
	cfg := testConfig()

	token, err := GenerateSeatToken("main", 3, "Carl", 42, cfg)
	if err != nil {
		t.Fatalf("GenerateSeatToken: %v", err)
	}

	claims, err := ParseAndValidateToken(token, cfg)
	if err != nil {
		t.Fatalf("ParseAndValidateToken: %v", err)
	}
	if claims.Table != "main" || claims.Seat != 3 || claims.Username != "Carl" || claims.UserID != 42 {
		t.Fatalf("claims = %+v", claims)
	}
	if claims.Subject != "seat:3" {
		t.Fatalf("subject = %q, want seat:3", claims.Subject)
	}
}

func TestAccountTokenRoundTrip(t *testing.T) {
	cfg := testConfig()

	token, err := GenerateToken(7, "anna", cfg)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	claims, err := ParseAndValidateToken(token, cfg)
	if err != nil {
		t.Fatalf("ParseAndValidateToken: %v", err)
	}
	if claims.UserID != 7 || claims.Username != "anna" || claims.Seat != 0 {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	cfg := testConfig()
	token, err := GenerateToken(7, "anna", cfg)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	other := cfg
	other.JWTSecret = "different"
	if _, err := ParseAndValidateToken(token, other); err == nil {
		t.Fatal("token signed with another secret should fail validation")
	}
}

func TestParseRejectsWrongIssuer(t *testing.T) {
	cfg := testConfig()
	token, err := GenerateToken(7, "anna", cfg)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	other := cfg
	other.JWTIssuer = "someone-else"
	if _, err := ParseAndValidateToken(token, other); err == nil {
		t.Fatal("token from another issuer should fail validation")
	}
}

func TestGenerateRequiresSecret(t *testing.T) {
	cfg := testConfig()
	cfg.JWTSecret = ""
	if _, err := GenerateToken(7, "anna", cfg); err == nil {
		t.Fatal("empty secret should be rejected")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct horse battery")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if err := ComparePasswordHash(hash, "correct horse battery"); err != nil {
		t.Fatalf("ComparePasswordHash: %v", err)
	}
	if err := ComparePasswordHash(hash, "wrong"); err == nil {
		t.Fatal("wrong password should not match")
	}
}

func TestPasswordValidation(t *testing.T) {
	if _, err := HashPassword("short"); !IsPasswordValidationError(err) {
		t.Fatalf("short password error = %v, want validation error", err)
	}
	if _, err := HashPassword(strings.Repeat("x", 80)); !IsPasswordValidationError(err) {
		t.Fatalf("oversized password error = %v, want validation error", err)
	}
	if _, err := HashPassword(""); !IsPasswordValidationError(err) {
		t.Fatalf("empty password error = %v, want validation error", err)
	}
}
