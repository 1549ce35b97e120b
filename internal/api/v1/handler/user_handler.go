package handler

import (
	"encoding/json"
	"net/http"

	"app/internal/api/v1/dto"
	"app/internal/middleware"
)

// UserHandler handles endpoints describing the authenticated principal
type UserHandler struct{}

// NewUserHandler creates a new UserHandler
func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// RegisterRoutes mounts user routes
func (h *UserHandler) RegisterRoutes(mux *http.ServeMux, authMw func(http.Handler) http.Handler) {
	mux.Handle("/me", authMw(http.HandlerFunc(h.getMe)))
}

// getMe godoc
// @Summary Current session
// @Description Returns the authenticated user and its resolved role.
// @Tags users
// @Produce json
// @Success 200 {object} dto.MeResponseDTO
// @Failure 401 {string} string "Unauthorized"
// @Router /me [get]
func (h *UserHandler) getMe(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet || r.URL.Path != "/me" {
		http.NotFound(w, r)
		return
	}
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized: actor not found in context", http.StatusUnauthorized)
		return
	}
	resp := dto.MeResponseDTO{
		UserID:  actor.UserID,
		Email:   actor.Email,
		Role:    string(actor.Role),
		IsAdmin: actor.Role.IsAdmin(),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
