package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/mail"
	"strings"

	"github.com/gorilla/mux"

	"github.com/sauticheck/sauticheck-api/internal/auth"
	"github.com/sauticheck/sauticheck-api/internal/http/respond"
	"github.com/sauticheck/sauticheck-api/internal/middleware"
	"github.com/sauticheck/sauticheck-api/internal/models"
	"github.com/sauticheck/sauticheck-api/internal/models/dto"
	"github.com/sauticheck/sauticheck-api/internal/storage"
)

// AuthHandler owns the register, login, and me endpoints.
type AuthHandler struct {
	store  storage.Store
	tokens *auth.TokenManager
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(store storage.Store, tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{store: store, tokens: tokens}
}

// Register attaches the public auth routes to api and /auth/me to the
// token-protected subrouter.
func (h *AuthHandler) Register(api, protected *mux.Router) {
	api.HandleFunc("/auth/register", h.handleRegister).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", h.handleLogin).Methods(http.MethodPost)
	protected.HandleFunc("/auth/me", h.handleMe).Methods(http.MethodGet)
}

func (h *AuthHandler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if err := validateRegistration(req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.store.GetUserByEmail(r.Context(), req.Email); err == nil {
		respond.Error(w, http.StatusBadRequest, "User already exists")
		return
	} else if !errors.Is(err, storage.ErrNotFound) {
		log.Printf("register: lookup failed: %v", err)
		respond.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	user := models.User{
		Username:  strings.TrimSpace(req.Username),
		Email:     strings.TrimSpace(req.Email),
		Password:  hash,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Location:  defaultString(req.Location, "Kenya"),
		Role:      defaultString(req.Role, models.RoleUser),
	}
	created, err := h.store.CreateUser(r.Context(), user)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			respond.Error(w, http.StatusBadRequest, "User already exists")
			return
		}
		log.Printf("register: create user failed: %v", err)
		respond.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	token, err := h.tokens.Generate(created.ID)
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	respond.JSON(w, http.StatusCreated, dto.AuthResponse{Token: token, User: created})
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if !validEmail(req.Email) {
		respond.Error(w, http.StatusBadRequest, "Invalid email")
		return
	}
	if len(req.Password) < 6 {
		respond.Error(w, http.StatusBadRequest, "Password must be at least 6 characters")
		return
	}

	// Absent user and wrong password produce the same response so login
	// cannot be used to probe which emails are registered.
	user, err := h.store.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		log.Printf("login: lookup failed: %v", err)
		respond.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if !auth.CheckPassword(req.Password, user.Password) {
		respond.Error(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.tokens.Generate(user.ID)
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	respond.JSON(w, http.StatusOK, dto.AuthResponse{Token: token, User: user})
}

func (h *AuthHandler) handleMe(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "Access token required")
		return
	}
	respond.JSON(w, http.StatusOK, map[string]models.User{"user": user})
}

// validateRegistration reports the first failing field only.
func validateRegistration(req dto.RegisterRequest) error {
	if strings.TrimSpace(req.Username) == "" {
		return errors.New("Username is required")
	}
	if !validEmail(req.Email) {
		return errors.New("Invalid email")
	}
	if len(req.Password) < 6 {
		return errors.New("Password must be at least 6 characters")
	}
	if req.Password != req.ConfirmPassword {
		return errors.New("Passwords don't match")
	}
	if strings.TrimSpace(req.FirstName) == "" {
		return errors.New("First name is required")
	}
	if strings.TrimSpace(req.LastName) == "" {
		return errors.New("Last name is required")
	}
	return nil
}

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(strings.TrimSpace(email))
	return err == nil && addr.Address == strings.TrimSpace(email)
}

func defaultString(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return value
}
