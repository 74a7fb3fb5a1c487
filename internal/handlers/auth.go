package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"career-compass-backend/internal/models"
	"career-compass-backend/internal/repository"
)

// UserStore is the subset of repository.UserRepo the auth handlers use.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

type AuthHandler struct {
	users UserStore
}

// NewAuthHandler returns a handler backed by users. A nil store means the
// database is not connected and every request is answered with 500.
func NewAuthHandler(users UserStore) *AuthHandler {
	return &AuthHandler{
		users: users,
	}
}

// --- Request types ---

type SignupRequest struct {
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// --- POST /api/auth/signup ---

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	if h.users == nil {
		writeDatabaseNotConnected(w)
		return
	}

	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	switch {
	case req.Email == "":
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "email is required"})
		return
	case req.FullName == "":
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "fullName is required"})
		return
	case req.Password == "":
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "password is required"})
		return
	}

	user := &models.User{
		Email:    req.Email,
		FullName: req.FullName,
		Password: req.Password,
	}
	if err := h.users.Create(r.Context(), user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "User already exists"})
			return
		}
		log.Printf("Error creating user: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(w, http.StatusCreated, user.Profile())
}

// --- POST /api/auth/login ---

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if h.users == nil {
		writeDatabaseNotConnected(w)
		return
	}

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if req.Email == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "email is required"})
		return
	}

	user, err := h.users.FindByEmail(r.Context(), req.Email)
	if err != nil {
		log.Printf("Error finding user: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	// Plain comparison: passwords are stored as sent.
	if user == nil || user.Password != req.Password {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid credentials"})
		return
	}

	writeJSON(w, http.StatusOK, user.Profile())
}

// --- Helpers ---

func writeDatabaseNotConnected(w http.ResponseWriter) {
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Database not connected"})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
