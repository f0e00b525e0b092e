// Package model contains domain models passed between layers.
package model

import "time"

// User is a snapshot of a fan's stored profile. The user store owns this
// state; nothing in the domain layer caches it across calls.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	FavoriteTeam string `json:"favorite_team,omitempty"`
	Points       int    `json:"points"`
	// Badges preserves insertion order for display; membership checks treat
	// it as a set.
	Badges     []string  `json:"badges"`
	CreatedAt  time.Time `json:"created_at"`
	LastActive time.Time `json:"last_active"`
}

// HasBadge reports whether the badge id is already in the user's badge set.
func (u User) HasBadge(id string) bool {
	for _, b := range u.Badges {
		if b == id {
			return true
		}
	}
	return false
}

// QuizRecord is one completed quiz in a user's history.
type QuizRecord struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	Team         string    `json:"team"`
	Difficulty   string    `json:"difficulty"`
	Score        int       `json:"score"`
	Total        int       `json:"total_questions"`
	PointsEarned int       `json:"points_earned"`
	CreatedAt    time.Time `json:"created_at"`
}

// PredictionRecord is one recorded prediction in a user's history.
type PredictionRecord struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	Match        string    `json:"match_description"`
	Pick         string    `json:"predicted_outcome"`
	Outcome      string    `json:"actual_outcome,omitempty"`
	IsCorrect    *bool     `json:"is_correct"` // nil until the match resolves
	PointsEarned int       `json:"points_earned"`
	CreatedAt    time.Time `json:"created_at"`
}

// ChatMessage is one stored chat turn.
type ChatMessage struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	ToolUsed  string    `json:"tool_used,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Chat roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// QuizStats aggregates a user's quiz history.
type QuizStats struct {
	TotalQuizzes   int     `json:"total_quizzes"`
	TotalCorrect   int     `json:"total_correct"`
	TotalQuestions int     `json:"total_questions"`
	AvgScorePct    float64 `json:"avg_score"`
}

// PredictionStats aggregates a user's prediction history.
type PredictionStats struct {
	TotalPredictions   int `json:"total_predictions"`
	CorrectPredictions int `json:"correct_predictions"`
}

// UserStats bundles both aggregates.
type UserStats struct {
	Quizzes     QuizStats       `json:"quizzes"`
	Predictions PredictionStats `json:"predictions"`
}
