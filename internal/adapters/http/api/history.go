package api

import "net/http"

type historyResponse struct {
	Success bool `json:"success"`
	History any  `json:"history"`
}

func (s *Server) handleQuizHistory(w http.ResponseWriter, r *http.Request) {
	user, err := s.ensureUser(w, r)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	records, err := s.deps.QuizHistory(r.Context(), user.ID, queryInt(r, "limit", 10))
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, historyResponse{Success: true, History: records})
}

func (s *Server) handlePredictionHistory(w http.ResponseWriter, r *http.Request) {
	user, err := s.ensureUser(w, r)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	records, err := s.deps.PredictionHistory(r.Context(), user.ID, queryInt(r, "limit", 10))
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, historyResponse{Success: true, History: records})
}

func (s *Server) handleChatHistory(w http.ResponseWriter, r *http.Request) {
	user, err := s.ensureUser(w, r)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	records, err := s.deps.ChatHistory(r.Context(), user.ID, queryInt(r, "limit", 20))
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, historyResponse{Success: true, History: records})
}
