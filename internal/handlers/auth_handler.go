package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"recircleBack/internal/models"
	"recircleBack/internal/services"
	"recircleBack/utils"
)

// SessionCookieName carries the browser login session id.
const SessionCookieName = "sessionid"

type AuthHandler struct {
	Users    *services.UserService
	Tokens   *utils.Manager
	Sessions *services.SessionService
}

// TokenPair handles POST /token: credentials in, access+refresh out.
func (h *AuthHandler) TokenPair(w http.ResponseWriter, r *http.Request) {
	var req models.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.Users.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			http.Error(w, "No active account found with the given credentials", http.StatusUnauthorized)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	access, err := h.Tokens.AccessToken(user.ID)
	if err != nil {
		http.Error(w, "Error generating access token", http.StatusInternalServerError)
		return
	}
	refresh, err := h.Tokens.RefreshToken(user.ID)
	if err != nil {
		http.Error(w, "Error generating refresh token", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, models.Tokens{AccessToken: access, RefreshToken: refresh})
}

// Refresh handles POST /token/refresh: a valid refresh token buys a new
// access token. Access tokens are rejected here.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Refresh string `json:"refresh"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Refresh == "" {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	claims, err := h.Tokens.Parse(req.Refresh)
	if err != nil || claims.TokenType != utils.TokenTypeRefresh {
		http.Error(w, "Token is invalid or expired", http.StatusUnauthorized)
		return
	}

	access, err := h.Tokens.AccessToken(claims.UserID)
	if err != nil {
		http.Error(w, "Error generating access token", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, models.Tokens{AccessToken: access})
}

// TestAuth handles GET /test-auth and echoes the requester's identity.
func (h *AuthHandler) TestAuth(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		http.Error(w, "Authorization required", http.StatusUnauthorized)
		return
	}

	user, err := h.Users.GetUserByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			http.Error(w, "User not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": fmt.Sprintf("Hello %s! Token authentication is working!", user.Username),
		"user_id": user.ID,
		"email":   user.Email,
	})
}

// SessionLogin handles POST /auth/login for browser clients: on valid
// credentials a session id is stored in Redis and set as a cookie.
func (h *AuthHandler) SessionLogin(w http.ResponseWriter, r *http.Request) {
	var req models.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.Users.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			http.Error(w, "Invalid credentials", http.StatusUnauthorized)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	sid, err := h.Sessions.Create(r.Context(), user.ID)
	if err != nil {
		http.Error(w, "Failed to create session", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    sid,
		Path:     "/",
		MaxAge:   int(h.Sessions.TTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, http.StatusOK, user)
}

// SessionLogout handles POST /auth/logout.
func (h *AuthHandler) SessionLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		if err := h.Sessions.Delete(r.Context(), cookie.Value); err != nil {
			http.Error(w, "Failed to delete session", http.StatusInternalServerError)
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}
