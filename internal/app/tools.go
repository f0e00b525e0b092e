package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/okian/grandstand/internal/adapters/completion"
	"github.com/okian/grandstand/internal/domain/model"
	"github.com/okian/grandstand/internal/domain/predict"
	"github.com/okian/grandstand/internal/domain/quiz"
	"github.com/okian/grandstand/internal/domain/rewards"
	"github.com/okian/grandstand/pkg/logger"
	"github.com/okian/grandstand/pkg/metrics"
)

const (
	historyLimit     = 10
	chatHistoryLimit = 20

	engineFallbackNote = "Using statistical prediction - configure a completion API key for AI-powered analysis"
)

// PredictionResponse is one match prediction plus its framing.
type PredictionResponse struct {
	Match      string         `json:"match"`
	MatchType  string         `json:"match_type"`
	Prediction predict.Result `json:"prediction"`
	Note       string         `json:"note,omitempty"`
}

// SubmitQuizResult bundles the graded quiz with the reward it produced.
type SubmitQuizResult struct {
	Graded quiz.Graded     `json:"graded"`
	Reward rewards.Outcome `json:"reward"`
}

// SavePredictionResult confirms a recorded user pick.
type SavePredictionResult struct {
	Match        string `json:"match"`
	YourPick     string `json:"your_pick"`
	PointsEarned int    `json:"points_earned"`
	Message      string `json:"message"`
}

// Overview is the current user plus their aggregates.
type Overview struct {
	User  model.User      `json:"user"`
	Stats model.UserStats `json:"stats"`
}

// Login returns the user for a username, creating it on first sight.
func (s *Service) Login(ctx context.Context, username string) (model.User, bool, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return model.User{}, false, ErrEmptyUsername
	}
	return s.store.GetOrCreateUser(ctx, username)
}

// GuestUsername generates a username for a visitor without one.
func GuestUsername() string {
	return "Fan_" + uuid.NewString()[:8]
}

// SetFavoriteTeam records the user's favorite team.
func (s *Service) SetFavoriteTeam(ctx context.Context, userID int64, team string) (model.User, error) {
	team = strings.TrimSpace(team)
	if team == "" {
		return model.User{}, ErrEmptyTeam
	}
	if err := s.store.UpdateFavoriteTeam(ctx, userID, team); err != nil {
		return model.User{}, err
	}
	return s.store.GetUser(ctx, userID)
}

// UserOverview loads the user and their stats.
func (s *Service) UserOverview(ctx context.Context, userID int64) (Overview, error) {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return Overview{}, err
	}
	stats, err := s.store.UserStats(ctx, userID)
	if err != nil {
		return Overview{}, err
	}
	return Overview{User: user, Stats: stats}, nil
}

// GenerateQuiz builds a quiz about a team, from the completion backend when
// available and the built-in bank otherwise.
func (s *Service) GenerateQuiz(ctx context.Context, team, difficulty string, numQuestions int) quiz.Quiz {
	team = strings.TrimSpace(team)
	difficulty = quiz.NormalizeDifficulty(difficulty)
	if numQuestions <= 0 {
		numQuestions = s.defaultQuizQuestions
	}
	numQuestions = quiz.ClampQuestions(numQuestions)

	if s.completer.Enabled() {
		if q, err := s.generateQuizCompletion(ctx, team, difficulty, numQuestions); err == nil {
			metrics.RecordQuizGenerated("completion")
			return q
		} else {
			s.logger.Warn(ctx, "quiz generation fell back to question bank",
				logger.String("team", team),
				logger.Error(err),
			)
		}
	}
	metrics.RecordQuizGenerated("fallback")
	return quiz.Fallback(team, difficulty, numQuestions)
}

func (s *Service) generateQuizCompletion(ctx context.Context, team, difficulty string, numQuestions int) (quiz.Quiz, error) {
	content, err := s.completer.Complete(ctx, completion.Request{
		System:    completion.QuizSystemPrompt,
		Messages:  []completion.Message{{Role: model.RoleUser, Content: completion.QuizPrompt(team, difficulty, numQuestions)}},
		MaxTokens: completion.QuizMaxTokens,
	})
	if err != nil {
		return quiz.Quiz{}, err
	}
	var q quiz.Quiz
	if err := completion.ExtractJSON(content, &q); err != nil {
		return quiz.Quiz{}, err
	}
	if err := validateQuiz(q); err != nil {
		return quiz.Quiz{}, err
	}
	q.Team = team
	q.Difficulty = difficulty
	return q, nil
}

// validateQuiz rejects structurally unusable generated quizzes.
func validateQuiz(q quiz.Quiz) error {
	if len(q.Questions) == 0 || len(q.Questions) > quiz.MaxQuestions {
		return fmt.Errorf("generated quiz has %d questions", len(q.Questions))
	}
	for i, question := range q.Questions {
		if question.ID == 0 || question.Question == "" {
			return fmt.Errorf("question %d incomplete", i+1)
		}
		if len(question.Options) != 4 {
			return fmt.Errorf("question %d has %d options", i+1, len(question.Options))
		}
		switch strings.ToUpper(strings.TrimSpace(question.CorrectAnswer)) {
		case "A", "B", "C", "D":
		default:
			return fmt.Errorf("question %d has invalid answer %q", i+1, question.CorrectAnswer)
		}
	}
	return nil
}

// SubmitQuiz grades a submission, persists it and awards points. The quiz is
// saved before the award so first-quiz and team badges see it.
func (s *Service) SubmitQuiz(ctx context.Context, userID int64, q quiz.Quiz, answers map[int]string) (SubmitQuizResult, error) {
	if len(q.Questions) == 0 {
		return SubmitQuizResult{}, ErrNoQuiz
	}

	graded := quiz.Grade(q, answers)
	earned, _ := rewards.QuizPoints(graded.Score, graded.Total)

	questions, err := json.Marshal(q.Questions)
	if err != nil {
		return SubmitQuizResult{}, err
	}
	if _, err := s.store.SaveQuizResult(ctx, model.QuizRecord{
		UserID:       userID,
		Team:         q.Team,
		Difficulty:   q.Difficulty,
		Score:        graded.Score,
		Total:        graded.Total,
		PointsEarned: earned,
	}, questions); err != nil {
		return SubmitQuizResult{}, err
	}

	out := s.ledger.Apply(ctx, rewards.ActionAwardQuizPoints, userID, rewards.Params{
		Score: graded.Score,
		Total: graded.Total,
		Team:  q.Team,
	})
	metrics.RecordQuizGraded()

	return SubmitQuizResult{Graded: graded, Reward: out}, nil
}

// Predict forecasts a match. The completion backend is tried first; its
// answer must name one of the two teams and parse cleanly, otherwise the
// statistical engine answers.
func (s *Service) Predict(ctx context.Context, team1, team2, matchType string) (PredictionResponse, error) {
	team1 = strings.TrimSpace(team1)
	team2 = strings.TrimSpace(team2)
	if team1 == "" || team2 == "" {
		return PredictionResponse{}, ErrEmptyTeam
	}
	if matchType == "" {
		matchType = "regular"
	}

	resp := PredictionResponse{
		Match:     fmt.Sprintf("%s vs %s", team1, team2),
		MatchType: matchType,
	}

	if s.completer.Enabled() {
		if result, err := s.predictCompletion(ctx, team1, team2, matchType); err == nil {
			metrics.RecordPrediction("completion")
			resp.Prediction = result
			return resp, nil
		} else {
			s.logger.Warn(ctx, "prediction fell back to statistical engine",
				logger.String("match", resp.Match),
				logger.Error(err),
			)
		}
	}

	metrics.RecordPrediction("engine")
	resp.Prediction = s.engine.Predict(ctx, team1, team2)
	resp.Note = engineFallbackNote
	return resp, nil
}

func (s *Service) predictCompletion(ctx context.Context, team1, team2, matchType string) (predict.Result, error) {
	p1, _ := s.catalog.Lookup(team1)
	p2, _ := s.catalog.Lookup(team2)

	content, err := s.completer.Complete(ctx, completion.Request{
		System:    completion.PredictionSystemPrompt,
		Messages:  []completion.Message{{Role: model.RoleUser, Content: completion.PredictionPrompt(team1, team2, matchType, p1, p2)}},
		MaxTokens: completion.PredictionMaxTokens,
	})
	if err != nil {
		return predict.Result{}, err
	}

	var parsed struct {
		Winner      string `json:"winner"`
		Confidence  int    `json:"confidence"`
		Explanation string `json:"explanation"`
	}
	if err := completion.ExtractJSON(content, &parsed); err != nil {
		return predict.Result{}, err
	}

	var result predict.Result
	switch {
	case strings.EqualFold(strings.TrimSpace(parsed.Winner), team1):
		result.Winner, result.Loser = team1, team2
		result.WinnerStrength, result.LoserStrength = p1.Strength, p2.Strength
	case strings.EqualFold(strings.TrimSpace(parsed.Winner), team2):
		result.Winner, result.Loser = team2, team1
		result.WinnerStrength, result.LoserStrength = p2.Strength, p1.Strength
	default:
		return predict.Result{}, fmt.Errorf("winner %q is neither team", parsed.Winner)
	}

	conf := parsed.Confidence
	if conf < 0 {
		conf = 0
	}
	if conf > predict.MaxConfidence {
		conf = predict.MaxConfidence
	}
	result.Confidence = conf
	result.Explanation = strings.TrimSpace(parsed.Explanation)
	return result, nil
}

// SavePrediction records the user's own pick and pays participation points.
// Whether the pick was right is unknown at record time, so no correctness
// bonus is paid here.
func (s *Service) SavePrediction(ctx context.Context, userID int64, team1, team2, userPick, matchType string) (SavePredictionResult, error) {
	team1 = strings.TrimSpace(team1)
	team2 = strings.TrimSpace(team2)
	userPick = strings.TrimSpace(userPick)
	if team1 == "" || team2 == "" || userPick == "" {
		return SavePredictionResult{}, ErrEmptyTeam
	}
	if matchType == "" {
		matchType = "regular"
	}

	match := fmt.Sprintf("%s vs %s (%s)", team1, team2, matchType)
	if _, err := s.store.SavePrediction(ctx, model.PredictionRecord{
		UserID: userID,
		Match:  match,
		Pick:   userPick,
	}); err != nil {
		return SavePredictionResult{}, err
	}

	out := s.ledger.Apply(ctx, rewards.ActionAwardPredictionPoints, userID, rewards.Params{IsCorrect: false})
	return SavePredictionResult{
		Match:        match,
		YourPick:     userPick,
		PointsEarned: out.PointsEarned,
		Message:      fmt.Sprintf("Your prediction (%s to win) has been recorded! You earned %d points.", userPick, out.PointsEarned),
	}, nil
}

// Leaderboard returns the top users, capped at the configured window.
func (s *Service) Leaderboard(ctx context.Context, userID int64, limit int) rewards.Outcome {
	if limit < 1 || limit > s.maxLeaderboardLimit {
		limit = s.maxLeaderboardLimit
	}
	return s.ledger.Apply(ctx, rewards.ActionGetLeaderboard, userID, rewards.Params{Limit: limit})
}

// UserRewards returns the user's points, badges, rank and next badge.
func (s *Service) UserRewards(ctx context.Context, userID int64) rewards.Outcome {
	return s.ledger.Apply(ctx, rewards.ActionGetUserRewards, userID, rewards.Params{})
}

// QuizHistory returns the user's recent quizzes.
func (s *Service) QuizHistory(ctx context.Context, userID int64, limit int) ([]model.QuizRecord, error) {
	if limit < 1 {
		limit = historyLimit
	}
	return s.store.QuizHistory(ctx, userID, limit)
}

// PredictionHistory returns the user's recent predictions.
func (s *Service) PredictionHistory(ctx context.Context, userID int64, limit int) ([]model.PredictionRecord, error) {
	if limit < 1 {
		limit = historyLimit
	}
	return s.store.PredictionHistory(ctx, userID, limit)
}

// ChatHistory returns the user's recent chat turns, oldest first.
func (s *Service) ChatHistory(ctx context.Context, userID int64, limit int) ([]model.ChatMessage, error) {
	if limit < 1 {
		limit = chatHistoryLimit
	}
	return s.store.ChatHistory(ctx, userID, limit)
}
