package auth

import (
	"net/http/httptest"
	"testing"
	"time"
)

func TestIssueAndValidate(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-secret"), time.Hour)
	token, err := issuer.Issue("session-1", "GUEST")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	claims, err := issuer.Validate(token)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if claims.Subject != "session-1" {
		t.Fatalf("subject = %q, want %q", claims.Subject, "session-1")
	}
	if claims.Name != "GUEST" {
		t.Fatalf("name = %q, want %q", claims.Name, "GUEST")
	}
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenIssuer([]byte("right"), time.Hour)
	token, err := issuer.Issue("session-1", "GUEST")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	other := NewTokenIssuer([]byte("wrong"), time.Hour)
	if _, err := other.Validate(token); err == nil {
		t.Fatalf("token signed with a different secret validated")
	}
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-secret"), -time.Minute)
	token, err := issuer.Issue("session-1", "GUEST")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := issuer.Validate(token); err == nil {
		t.Fatalf("expired token validated")
	}
}

func TestFromRequest(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-secret"), time.Hour)
	token, err := issuer.Issue("session-1", "GUEST")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	r := httptest.NewRequest("GET", "/ws", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	claims, err := issuer.FromRequest(r)
	if err != nil {
		t.Fatalf("FromRequest with header: %v", err)
	}
	if claims.Subject != "session-1" {
		t.Fatalf("subject = %q", claims.Subject)
	}

	r = httptest.NewRequest("GET", "/ws?token="+token, nil)
	if _, err := issuer.FromRequest(r); err != nil {
		t.Fatalf("FromRequest with query parameter: %v", err)
	}

	r = httptest.NewRequest("GET", "/ws", nil)
	if _, err := issuer.FromRequest(r); err == nil {
		t.Fatalf("request without a token produced claims")
	}
}
