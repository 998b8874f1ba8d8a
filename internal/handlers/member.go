package handlers

import (
	"net/http"

	"couple-wellness-backend/internal/middleware"
	"couple-wellness-backend/internal/services"
)

// MemberHandler handles account endpoints
type MemberHandler struct {
	memberService *services.MemberService
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(memberService *services.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PushTokenRequest represents the push token request body
type PushTokenRequest struct {
	PushToken string `json:"push_token"`
}

// Signup handles POST /api/v1/members/signup
func (h *MemberHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req services.SignupInput
	if err := decodeJSON(r, &req); err != nil {
		respondServiceError(w, r, err, "Failed to sign up")
		return
	}

	member, err := h.memberService.Signup(r.Context(), req)
	if err != nil {
		respondServiceError(w, r, err, "Failed to sign up")
		return
	}

	respondJSON(w, map[string]interface{}{
		"success":  true,
		"memberId": member.ID,
	}, http.StatusCreated)
}

// Login handles POST /api/v1/members/login
func (h *MemberHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondServiceError(w, r, err, "Failed to log in")
		return
	}

	result, err := h.memberService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(w, r, err, "Failed to log in")
		return
	}

	respondResult(w, result, http.StatusOK)
}

// UpdatePushToken handles PUT /api/v1/members/push-token
func (h *MemberHandler) UpdatePushToken(w http.ResponseWriter, r *http.Request) {
	memberID := middleware.GetMemberID(r.Context())

	var req PushTokenRequest
	if err := decodeJSON(r, &req); err != nil {
		respondServiceError(w, r, err, "Failed to update push token")
		return
	}

	if err := h.memberService.UpdatePushToken(r.Context(), memberID, req.PushToken); err != nil {
		respondServiceError(w, r, err, "Failed to update push token")
		return
	}

	respondJSON(w, Envelope{Success: true}, http.StatusOK)
}
