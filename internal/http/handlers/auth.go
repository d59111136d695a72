package handlers

import (
	"net/http"

	"github.com/Shubhendu-bhakat/cafe-demo/internal/http/respond"
	"github.com/Shubhendu-bhakat/cafe-demo/internal/models/dto"
	"github.com/Shubhendu-bhakat/cafe-demo/internal/service"
)

// AuthHandler owns the signup/login endpoints.
type AuthHandler struct {
	identity *service.Identity
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(identity *service.Identity) *AuthHandler {
	return &AuthHandler{identity: identity}
}

// Register attaches auth routes to the mux.
func (h *AuthHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/auth/signup", h.handleSignup)
	mux.HandleFunc("POST /api/auth/login", h.handleLogin)
}

func (h *AuthHandler) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req dto.SignupRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	resp, err := h.identity.Register(r.Context(), req)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusCreated, resp)
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	resp, err := h.identity.Authenticate(r.Context(), req)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, resp)
}
