package sessions_test

import (
	"errors"
	"testing"

	"agenda_backend/internal/sessions"
)

func TestCookieSignerRoundTrip(t *testing.T) {
	signer := sessions.NewCookieSigner("test-secret")

	cookieValue, err := signer.Sign("abc-123")
	if err != nil {
		t.Fatalf("Sign returned error: %v", err)
	}

	sessionID, err := signer.Parse(cookieValue)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if sessionID != "abc-123" {
		t.Errorf("session ID = %s, want abc-123", sessionID)
	}
}

func TestCookieSignerRejectsTampering(t *testing.T) {
	signer := sessions.NewCookieSigner("test-secret")

	cookieValue, err := signer.Sign("abc-123")
	if err != nil {
		t.Fatalf("Sign returned error: %v", err)
	}

	tampered := cookieValue[:len(cookieValue)-2] + "xx"
	if _, err := signer.Parse(tampered); !errors.Is(err, sessions.ErrInvalidCookie) {
		t.Errorf("tampered cookie error = %v, want ErrInvalidCookie", err)
	}
}

func TestCookieSignerRejectsOtherSecret(t *testing.T) {
	signer := sessions.NewCookieSigner("secret-one")
	other := sessions.NewCookieSigner("secret-two")

	cookieValue, err := signer.Sign("abc-123")
	if err != nil {
		t.Fatalf("Sign returned error: %v", err)
	}

	if _, err := other.Parse(cookieValue); !errors.Is(err, sessions.ErrInvalidCookie) {
		t.Errorf("foreign-secret cookie error = %v, want ErrInvalidCookie", err)
	}
}

func TestCookieSignerRejectsGarbage(t *testing.T) {
	signer := sessions.NewCookieSigner("test-secret")

	for _, value := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := signer.Parse(value); !errors.Is(err, sessions.ErrInvalidCookie) {
			t.Errorf("Parse(%q) error = %v, want ErrInvalidCookie", value, err)
		}
	}
}
