package auth

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"taskboard/internal/respond"
)

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

type AuthHandlers struct {
	Service *AuthService
}

func NewAuthHandlers(service *AuthService) *AuthHandlers {
	return &AuthHandlers{Service: service}
}

func (h *AuthHandlers) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var creds Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		respond.Error(w, http.StatusBadRequest, "Fields required")
		return
	}

	_, err := h.Service.Register(r.Context(), creds.Username, creds.Password)
	if err != nil {
		if errors.Is(err, ErrMissingFields) {
			respond.Error(w, http.StatusBadRequest, "Fields required")
			return
		}
		log.Printf("Register failed: %v", err)
		respond.Error(w, http.StatusInternalServerError, "Error registering")
		return
	}

	respond.Message(w, http.StatusOK, "User registered")
}

func (h *AuthHandlers) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var creds Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		respond.Error(w, http.StatusBadRequest, "Fields required")
		return
	}

	token, user, err := h.Service.Login(r.Context(), creds.Username, creds.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			respond.Message(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		log.Printf("Login failed: %v", err)
		respond.Error(w, http.StatusInternalServerError, "Error logging in")
		return
	}

	respond.JSON(w, http.StatusOK, LoginResponse{Token: token, Username: user.Username})
}
