package utils

import (
	"testing"
	"time"
)

func TestNewManagerRequiresKey(t *testing.T) {
	if _, err := NewManager("", time.Hour, time.Hour); err == nil {
		t.Fatal("expected error for empty signing key")
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	m, err := NewManager("test-key", time.Hour, 24*time.Hour)
	if err != nil {
		t.Fatalf("NewManager returned error: %v", err)
	}

	token, err := m.AccessToken(42)
	if err != nil {
		t.Fatalf("AccessToken returned error: %v", err)
	}

	claims, err := m.Parse(token)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("expected user id 42, got %d", claims.UserID)
	}
	if claims.TokenType != TokenTypeAccess {
		t.Errorf("expected token type %q, got %q", TokenTypeAccess, claims.TokenType)
	}
}

func TestRefreshTokenType(t *testing.T) {
	m, err := NewManager("test-key", time.Hour, 24*time.Hour)
	if err != nil {
		t.Fatalf("NewManager returned error: %v", err)
	}

	token, err := m.RefreshToken(7)
	if err != nil {
		t.Fatalf("RefreshToken returned error: %v", err)
	}

	claims, err := m.Parse(token)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if claims.TokenType != TokenTypeRefresh {
		t.Errorf("expected token type %q, got %q", TokenTypeRefresh, claims.TokenType)
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	m, err := NewManager("test-key", -time.Minute, 24*time.Hour)
	if err != nil {
		t.Fatalf("NewManager returned error: %v", err)
	}

	token, err := m.AccessToken(1)
	if err != nil {
		t.Fatalf("AccessToken returned error: %v", err)
	}

	if _, err := m.Parse(token); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestParseRejectsWrongKey(t *testing.T) {
	m1, _ := NewManager("key-one", time.Hour, time.Hour)
	m2, _ := NewManager("key-two", time.Hour, time.Hour)

	token, err := m1.AccessToken(1)
	if err != nil {
		t.Fatalf("AccessToken returned error: %v", err)
	}

	if _, err := m2.Parse(token); err == nil {
		t.Fatal("expected error for token signed with a different key")
	}
}

func TestNewSessionID(t *testing.T) {
	a, err := NewSessionID()
	if err != nil {
		t.Fatalf("NewSessionID returned error: %v", err)
	}
	b, err := NewSessionID()
	if err != nil {
		t.Fatalf("NewSessionID returned error: %v", err)
	}

	if len(a) != 64 {
		t.Errorf("expected 64 hex characters, got %d", len(a))
	}
	if a == b {
		t.Error("expected distinct session ids")
	}
}
