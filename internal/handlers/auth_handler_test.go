package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"recircleBack/utils"
)

func testTokenManager(t *testing.T) *utils.Manager {
	t.Helper()

	m, err := utils.NewManager("test-signing-key", time.Hour, 24*time.Hour)
	if err != nil {
		t.Fatalf("NewManager returned error: %v", err)
	}
	return m
}

func TestRefreshIssuesNewAccessToken(t *testing.T) {
	m := testTokenManager(t)
	h := &AuthHandler{Tokens: m}

	refresh, err := m.RefreshToken(9)
	if err != nil {
		t.Fatalf("RefreshToken returned error: %v", err)
	}

	body := strings.NewReader(`{"refresh":"` + refresh + `"}`)
	rr := httptest.NewRecorder()
	h.Refresh(rr, httptest.NewRequest("POST", "/token/refresh", body))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d: %s", http.StatusOK, rr.Code, rr.Body.String())
	}

	var resp struct {
		Access string `json:"access"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}

	claims, err := m.Parse(resp.Access)
	if err != nil {
		t.Fatalf("issued access token does not parse: %v", err)
	}
	if claims.UserID != 9 {
		t.Errorf("expected user id 9, got %d", claims.UserID)
	}
	if claims.TokenType != utils.TokenTypeAccess {
		t.Errorf("expected an access token, got %q", claims.TokenType)
	}
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	m := testTokenManager(t)
	h := &AuthHandler{Tokens: m}

	access, err := m.AccessToken(9)
	if err != nil {
		t.Fatalf("AccessToken returned error: %v", err)
	}

	body := strings.NewReader(`{"refresh":"` + access + `"}`)
	rr := httptest.NewRecorder()
	h.Refresh(rr, httptest.NewRequest("POST", "/token/refresh", body))

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected %d, got %d", http.StatusUnauthorized, rr.Code)
	}
}

func TestRefreshRejectsMissingBody(t *testing.T) {
	h := &AuthHandler{Tokens: testTokenManager(t)}

	rr := httptest.NewRecorder()
	h.Refresh(rr, httptest.NewRequest("POST", "/token/refresh", strings.NewReader(`{}`)))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rr.Code)
	}
}
