package api

import (
	"net/http"
	"strconv"

	service "github.com/okian/grandstand/internal/app"
	"github.com/okian/grandstand/internal/domain/quiz"
)

type generateQuizRequest struct {
	Team         string `json:"team"`
	Difficulty   string `json:"difficulty"`
	NumQuestions int    `json:"num_questions"`
}

type generateQuizResponse struct {
	Success bool      `json:"success"`
	Quiz    quiz.Quiz `json:"quiz"`
}

type submitQuizRequest struct {
	QuizData *quiz.Quiz        `json:"quiz_data"`
	Answers  map[string]string `json:"answers"`
}

type submitQuizResponse struct {
	Success bool `json:"success"`
	service.SubmitQuizResult
}

func (s *Server) handleGenerateQuiz(w http.ResponseWriter, r *http.Request) {
	user, err := s.ensureUser(w, r)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	var req generateQuizRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	team := req.Team
	if team == "" {
		team = user.FavoriteTeam
	}
	if team == "" {
		team = "Lakers"
	}
	q := s.deps.GenerateQuiz(r.Context(), team, req.Difficulty, req.NumQuestions)
	writeJSON(w, http.StatusOK, generateQuizResponse{Success: true, Quiz: q})
}

func (s *Server) handleSubmitQuiz(w http.ResponseWriter, r *http.Request) {
	user, err := s.ensureUser(w, r)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	var req submitQuizRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.QuizData == nil {
		writeError(w, http.StatusBadRequest, ErrNoActiveQuiz)
		return
	}
	answers := make(map[int]string, len(req.Answers))
	for k, v := range req.Answers {
		id, err := strconv.Atoi(k)
		if err != nil {
			continue
		}
		answers[id] = v
	}
	result, err := s.deps.SubmitQuiz(r.Context(), user.ID, *req.QuizData, answers)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, submitQuizResponse{Success: true, SubmitQuizResult: result})
}
