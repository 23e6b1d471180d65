package auth

import "testing"

func TestHashPassword_SaltsEachCall(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	h2, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("expected different hashes for the same plaintext")
	}
}

func TestCheckPassword(t *testing.T) {
	t.Parallel()

	h, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if !CheckPassword("secret1", h) {
		t.Fatalf("expected matching password to verify")
	}
	if CheckPassword("wrong", h) {
		t.Fatalf("expected mismatching password to fail")
	}
	if CheckPassword("secret1", "not-a-hash") {
		t.Fatalf("expected garbage hash to fail")
	}
}
