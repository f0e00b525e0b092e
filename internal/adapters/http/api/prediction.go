package api

import (
	"net/http"

	service "github.com/okian/grandstand/internal/app"
)

type predictionRequest struct {
	Team1     string `json:"team1"`
	Team2     string `json:"team2"`
	MatchType string `json:"match_type"`
}

type predictionResponse struct {
	Success bool `json:"success"`
	service.PredictionResponse
}

type savePredictionRequest struct {
	Team1     string `json:"team1"`
	Team2     string `json:"team2"`
	UserPick  string `json:"user_pick"`
	MatchType string `json:"match_type"`
}

type savePredictionResponse struct {
	Success bool `json:"success"`
	service.SavePredictionResult
}

func (s *Server) handlePrediction(w http.ResponseWriter, r *http.Request) {
	if _, err := s.ensureUser(w, r); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	var req predictionRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	result, err := s.deps.Predict(r.Context(), req.Team1, req.Team2, req.MatchType)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, predictionResponse{Success: true, PredictionResponse: result})
}

func (s *Server) handleSavePrediction(w http.ResponseWriter, r *http.Request) {
	user, err := s.ensureUser(w, r)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	var req savePredictionRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	result, err := s.deps.SavePrediction(r.Context(), user.ID, req.Team1, req.Team2, req.UserPick, req.MatchType)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, savePredictionResponse{Success: true, SavePredictionResult: result})
}
