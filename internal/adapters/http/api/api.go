// Package api declares HTTP contracts and route registration for the fan
// engagement service.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	service "github.com/okian/grandstand/internal/app"
	"github.com/okian/grandstand/internal/domain/model"
	"github.com/okian/grandstand/internal/domain/quiz"
	"github.com/okian/grandstand/internal/domain/rewards"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to the service implementation.
type Dependencies interface {
	Login(ctx context.Context, username string) (model.User, bool, error)
	UserOverview(ctx context.Context, userID int64) (service.Overview, error)
	SetFavoriteTeam(ctx context.Context, userID int64, team string) (model.User, error)

	ProcessMessage(ctx context.Context, userID int64, message string) (service.ChatReply, error)

	GenerateQuiz(ctx context.Context, team, difficulty string, numQuestions int) quiz.Quiz
	SubmitQuiz(ctx context.Context, userID int64, q quiz.Quiz, answers map[int]string) (service.SubmitQuizResult, error)

	Predict(ctx context.Context, team1, team2, matchType string) (service.PredictionResponse, error)
	SavePrediction(ctx context.Context, userID int64, team1, team2, userPick, matchType string) (service.SavePredictionResult, error)

	Leaderboard(ctx context.Context, userID int64, limit int) rewards.Outcome
	UserRewards(ctx context.Context, userID int64) rewards.Outcome

	QuizHistory(ctx context.Context, userID int64, limit int) ([]model.QuizRecord, error)
	PredictionHistory(ctx context.Context, userID int64, limit int) ([]model.PredictionRecord, error)
	ChatHistory(ctx context.Context, userID int64, limit int) ([]model.ChatMessage, error)
}

// Server wires HTTP routes for the engagement API.
type Server struct {
	deps           Dependencies
	allowedOrigins []string
}

// Option configures a Server.
type Option func(*Server)

// WithAllowedOrigins sets the CORS origin allowlist.
func WithAllowedOrigins(origins []string) Option {
	return func(s *Server) {
		if len(origins) > 0 {
			s.allowedOrigins = origins
		}
	}
}

// NewServer creates the API server.
func NewServer(deps Dependencies, opts ...Option) *Server {
	s := &Server{
		deps:           deps,
		allowedOrigins: []string{"*"},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Router builds the chi router with all routes attached.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Get("/healthz", metricsMiddleware(s.handleHealth, "healthz"))

	r.Route("/api", func(r chi.Router) {
		r.Get("/user", metricsMiddleware(s.handleGetUser, "user"))
		r.Post("/user/login", metricsMiddleware(s.handleLogin, "login"))
		r.Post("/user/favorite-team", metricsMiddleware(s.handleFavoriteTeam, "favorite_team"))

		r.Post("/chat", metricsMiddleware(s.handleChat, "chat"))

		r.Post("/quiz/generate", metricsMiddleware(s.handleGenerateQuiz, "quiz_generate"))
		r.Post("/quiz/submit", metricsMiddleware(s.handleSubmitQuiz, "quiz_submit"))

		r.Post("/prediction", metricsMiddleware(s.handlePrediction, "prediction"))
		r.Post("/prediction/save", metricsMiddleware(s.handleSavePrediction, "prediction_save"))

		r.Get("/leaderboard", metricsMiddleware(s.handleLeaderboard, "leaderboard"))
		r.Get("/rewards", metricsMiddleware(s.handleRewards, "rewards"))

		r.Get("/history/quizzes", metricsMiddleware(s.handleQuizHistory, "history_quizzes"))
		r.Get("/history/predictions", metricsMiddleware(s.handlePredictionHistory, "history_predictions"))
		r.Get("/history/chat", metricsMiddleware(s.handleChatHistory, "history_chat"))
	})

	return r
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Success: false, Error: msg})
}

func decodeBody(r *http.Request, v any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return ErrBadRequest
	}
	return nil
}
