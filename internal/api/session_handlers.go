package api

import (
	"net/http"

	"github.com/example/storefront/internal/command"
	"github.com/example/storefront/internal/domain/session"
	"github.com/example/storefront/internal/query"
)

// SessionResponse represents the session response
type SessionResponse struct {
	User    *query.UserReadModel `json:"user"`
	Message string               `json:"message,omitempty"`
}

func userResponse(u session.User, message string) SessionResponse {
	return SessionResponse{
		User:    &query.UserReadModel{ID: u.ID, Name: u.Name, Email: u.Email},
		Message: message,
	}
}

// Register handles user registration
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var cmd command.Register
	if err := decodeJSON(r, &cmd); err != nil {
		respondError(w, err)
		return
	}

	user, err := h.cmdHandler.Register(r.Context(), cmd)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, userResponse(user, "Registration successful!"))
}

// Login handles user login
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var cmd command.Login
	if err := decodeJSON(r, &cmd); err != nil {
		respondError(w, err)
		return
	}

	user, err := h.cmdHandler.Login(r.Context(), cmd)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, userResponse(user, "Login successful!"))
}

// Logout ends the current session
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.cmdHandler.Logout(r.Context(), command.Logout{}); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, SessionResponse{Message: "Logged out successfully"})
}

// Me returns the current user
func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := h.queryHandler.CurrentUser()
	if !ok {
		respondJSONError(w, "not logged in", http.StatusUnauthorized)
		return
	}
	respondJSON(w, http.StatusOK, SessionResponse{User: user})
}
