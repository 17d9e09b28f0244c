package http

import (
	"net/http"
)

type historyEntryResponse struct {
	ID         int64           `json:"id"`
	Grade      string          `json:"grade"`
	Confidence float64         `json:"confidence"`
	Date       string          `json:"date"`
	Results    predictResponse `json:"results"`
}

type userResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	IsAdmin   bool   `json:"is_admin"`
	CreatedAt string `json:"created_at"`
}

type adminPredictionResponse struct {
	ID         int64   `json:"id"`
	UserID     int64   `json:"user_id"`
	Username   string  `json:"username"`
	Grade      string  `json:"grade"`
	GradeIndex int     `json:"grade_index"`
	Confidence float64 `json:"confidence"`
	Date       string  `json:"date"`
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	entries, err := s.uc.History(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	resp := make([]historyEntryResponse, len(entries))
	for i, entry := range entries {
		resp[i] = historyEntryResponse{
			ID:         int64(entry.ID),
			Grade:      entry.Grade,
			Confidence: entry.Confidence,
			Date:       formatTime(entry.Date),
			Results:    resultToResponse(entry.Results, true),
		}
	}
	respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAdminUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.uc.ListUsers(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	resp := make([]userResponse, len(users))
	for i, user := range users {
		resp[i] = userResponse{
			ID:        int64(user.ID),
			Username:  user.Username,
			Email:     user.Email,
			IsAdmin:   user.IsAdmin,
			CreatedAt: formatTime(user.CreatedAt),
		}
	}
	respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAdminPredictions(w http.ResponseWriter, r *http.Request) {
	records, err := s.uc.ListPredictions(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	resp := make([]adminPredictionResponse, len(records))
	for i, record := range records {
		resp[i] = adminPredictionResponse{
			ID:         int64(record.ID),
			UserID:     int64(record.UserID),
			Username:   record.Username,
			Grade:      record.Grade.String(),
			GradeIndex: record.Grade.Index(),
			Confidence: record.Confidence,
			Date:       formatTime(record.CreatedAt),
		}
	}
	respondJSON(w, http.StatusOK, resp)
}
