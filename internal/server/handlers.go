package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/froghouse/jumper/internal/leaderboard"
)

// submitBody is the POST /api/leaderboard request payload. Score is a
// pointer so a missing field is distinguishable from zero.
type submitBody struct {
	Score     *float64 `json:"score"`
	Username  string   `json:"username"`
	Character string   `json:"character"`
	Date      string   `json:"date"`
	Time      string   `json:"time"`
}

type topResponse struct {
	Success bool                `json:"success"`
	Scores  []leaderboard.Entry `json:"scores"`
}

type submitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type userStatsResponse struct {
	Success      bool               `json:"success"`
	PersonalBest *leaderboard.Entry `json:"personalBest"`
	TotalGames   int                `json:"totalGames"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

func (s *Server) handleTop(w http.ResponseWriter, r *http.Request) {
	scores, err := s.svc.Top()
	if err != nil {
		s.logger.Error("failed to load leaderboard", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Failed to get leaderboard"})
		return
	}
	if scores == nil {
		scores = []leaderboard.Entry{}
	}
	writeJSON(w, http.StatusOK, topResponse{Success: true, Scores: scores})
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var body submitBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid score or username"})
		return
	}

	entry, err := s.svc.Submit(leaderboard.SubmitRequest{
		Score:     body.Score,
		Username:  body.Username,
		Character: body.Character,
		Date:      body.Date,
		Time:      body.Time,
	})
	switch {
	case errors.Is(err, leaderboard.ErrInvalidScore):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid score or username"})
		return
	case errors.Is(err, leaderboard.ErrInvalidUsername):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Username must be between 2 and 20 characters"})
		return
	case err != nil:
		s.logger.Error("failed to save score", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Failed to save score"})
		return
	}

	s.logger.Info("new score", "username", entry.Username, "score", entry.Score)
	writeJSON(w, http.StatusOK, submitResponse{Success: true, Message: "Score saved successfully"})
}

func (s *Server) handleUserStats(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")

	stats, err := s.svc.UserStats(username)
	if err != nil {
		s.logger.Error("failed to load user stats", "error", err, "username", username)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Failed to get user stats"})
		return
	}
	writeJSON(w, http.StatusOK, userStatsResponse{
		Success:      true,
		PersonalBest: stats.PersonalBest,
		TotalGames:   stats.TotalGames,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "OK",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // Response write failures leave nothing to recover
	json.NewEncoder(w).Encode(v)
}
