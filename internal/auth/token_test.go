package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	token, err := IssueToken("a@x.com", "secret", time.Hour)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	email, err := VerifyToken(token, "secret")
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if email != "a@x.com" {
		t.Fatalf("expected a@x.com, got %q", email)
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	token, err := IssueToken("a@x.com", "secret", -time.Minute)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	if _, err := VerifyToken(token, "secret"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	token, err := IssueToken("a@x.com", "secret", time.Hour)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	if _, err := VerifyToken(token, "other-secret"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyRejectsOtherAlgorithms(t *testing.T) {
	// Same key family, different algorithm. Must fail the valid-methods
	// check even though the signature itself would verify.
	claims := jwt.MapClaims{
		"email": "a@x.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("SignedString: %v", err)
	}

	if _, err := VerifyToken(token, "secret"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyMalformedToken(t *testing.T) {
	for _, raw := range []string{"", "garbage", "a.b", "a.b.c"} {
		if _, err := VerifyToken(raw, "secret"); err != ErrInvalidToken {
			t.Fatalf("expected ErrInvalidToken for %q, got %v", raw, err)
		}
	}
}

func TestVerifyRequiresEmailClaim(t *testing.T) {
	claims := jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("SignedString: %v", err)
	}

	if _, err := VerifyToken(token, "secret"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
