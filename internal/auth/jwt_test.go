package auth

import (
	"testing"
	"time"
)

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")
	var userID int64 = 123

	tok, err := GenerateToken(userID, secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	gotUserID, err := ParseUserID(tok, secret)
	if err != nil {
		t.Fatalf("ParseUserID error: %v", err)
	}
	if gotUserID != userID {
		t.Fatalf("userID mismatch: got %d want %d", gotUserID, userID)
	}
}

func TestParseUserID_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")

	tok, err := GenerateToken(1, secret, -1*time.Second)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	if _, err = ParseUserID(tok, secret); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestParseUserID_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken(2, []byte("right-secret"), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	if _, err = ParseUserID(tok, []byte("wrong-secret")); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for invalid signature, got %v", err)
	}
}

func TestParseUserID_MalformedString(t *testing.T) {
	t.Parallel()

	if _, err := ParseUserID("not.a.jwt", []byte("k")); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for malformed token, got %v", err)
	}
}

func TestTokenExpiry(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken(7, []byte("k"), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	exp, err := TokenExpiry(tok)
	if err != nil {
		t.Fatalf("TokenExpiry error: %v", err)
	}
	if until := time.Until(exp); until < 59*time.Minute || until > time.Hour {
		t.Fatalf("unexpected expiry %v", exp)
	}

	if _, err := TokenExpiry("garbage"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for garbage, got %v", err)
	}
}
