package http

import (
	"encoding/json"
	"net/http"

	"github.com/Sujal861/knee-xray-insight-system/pkg/domain/model/auth"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authResponse struct {
	Token    string `json:"token"`
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if req.Username == "" || req.Email == "" {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "username and email are required"})
		return
	}

	if _, err := s.uc.Register(r.Context(), req.Username, req.Email, req.Password); err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, messageResponse{Message: "User created successfully"})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if req.Username == "" {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "username is required"})
		return
	}

	session, err := s.uc.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, sessionToAuthResponse(session))
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.uc.Logout(r.Context()); err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, messageResponse{Message: "Logged out"})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	session := auth.SessionFromContext(r.Context())
	if session == nil {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
		return
	}

	respondJSON(w, http.StatusOK, sessionToAuthResponse(session))
}

func sessionToAuthResponse(session *auth.Session) authResponse {
	return authResponse{
		Token:    session.Token.String(),
		UserID:   int64(session.UserID),
		Username: session.Username,
		IsAdmin:  session.IsAdmin,
	}
}
