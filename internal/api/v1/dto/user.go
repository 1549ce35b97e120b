package dto

// MeResponseDTO describes the authenticated principal and its resolved role,
// letting the dashboard gate its admin-only affordances.
type MeResponseDTO struct {
	UserID  string `json:"user_id"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	IsAdmin bool   `json:"is_admin"`
}
