package utils

import (
	"errors"
	"strings"
	"testing"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	const secret = "test-secret"
	tok, err := NewSessionToken(secret, "64f1b2a3c4d5e6f708192a3b", "ann@x.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	claims, err := ParseSessionToken(secret, tok)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID != "64f1b2a3c4d5e6f708192a3b" {
		t.Errorf("user id = %q", claims.UserID)
	}
	if claims.Email != "ann@x.com" {
		t.Errorf("email = %q", claims.Email)
	}
}

func TestSessionTokenBadSignature(t *testing.T) {
	tok, err := NewSessionToken("secret-a", "64f1b2a3c4d5e6f708192a3b", "ann@x.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// Verified with a different secret.
	if _, err := ParseSessionToken("secret-b", tok); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("wrong secret: got %v, want ErrInvalidToken", err)
	}

	// Tampered signature bytes.
	parts := strings.Split(tok, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %q", tok)
	}
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)
	if _, err := ParseSessionToken("secret-a", tampered); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("tampered: got %v, want ErrInvalidToken", err)
	}
}

func TestSessionTokenGarbage(t *testing.T) {
	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := ParseSessionToken("secret", raw); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("ParseSessionToken(%q): got %v, want ErrInvalidToken", raw, err)
		}
	}
}
