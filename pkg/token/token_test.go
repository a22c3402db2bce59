package token

import (
	"testing"
	"time"
)

func TestVerify_ReturnsSubjectAfterIssue(t *testing.T) {
	codec := New("test-secret", time.Hour)

	raw, err := codec.Issue("user-42")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	subject, err := codec.Verify(raw)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if subject != "user-42" {
		t.Errorf("subject = %q, want %q", subject, "user-42")
	}
}

func TestVerify_RejectsExpiredToken(t *testing.T) {
	codec := New("test-secret", -time.Minute)

	raw, err := codec.Issue("user-42")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := codec.Verify(raw); err != ErrInvalidToken {
		t.Errorf("expired token: err = %v, want ErrInvalidToken", err)
	}
}

func TestVerify_RejectsForeignSecret(t *testing.T) {
	issuer := New("secret-a", time.Hour)
	verifier := New("secret-b", time.Hour)

	raw, err := issuer.Issue("user-42")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := verifier.Verify(raw); err != ErrInvalidToken {
		t.Errorf("foreign-secret token: err = %v, want ErrInvalidToken", err)
	}
}

func TestVerify_RejectsStructurallyInvalidTokens(t *testing.T) {
	codec := New("test-secret", time.Hour)

	for _, raw := range []string{"", "garbage", "a.b", "a.b.c.d", "eyJh.eyJz.sig"} {
		if _, err := codec.Verify(raw); err != ErrInvalidToken {
			t.Errorf("Verify(%q): err = %v, want ErrInvalidToken", raw, err)
		}
	}
}

func TestVerify_RejectsMissingSubject(t *testing.T) {
	codec := New("test-secret", time.Hour)

	raw, err := codec.Issue("")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := codec.Verify(raw); err != ErrInvalidToken {
		t.Errorf("subject-less token: err = %v, want ErrInvalidToken", err)
	}
}
