package store

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"github.com/okian/grandstand/internal/domain/model"
)

// userRow is the persisted user. Badges is a JSON array of badge ids so the
// set survives without a join table.
type userRow struct {
	ID           int64          `gorm:"primaryKey"`
	Username     string         `gorm:"uniqueIndex;not null"`
	FavoriteTeam string         `gorm:""`
	Points       int            `gorm:"not null;default:0"`
	Badges       datatypes.JSON `gorm:"type:json"`
	CreatedAt    time.Time
	LastActive   time.Time
}

func (userRow) TableName() string { return "users" }

func (r userRow) toModel() model.User {
	u := model.User{
		ID:           r.ID,
		Username:     r.Username,
		FavoriteTeam: r.FavoriteTeam,
		Points:       r.Points,
		CreatedAt:    r.CreatedAt,
		LastActive:   r.LastActive,
	}
	if len(r.Badges) > 0 {
		// A corrupt badge column yields an empty set rather than an error.
		_ = json.Unmarshal(r.Badges, &u.Badges)
	}
	return u
}

// quizRow is one completed quiz, questions included so a submission can be
// regraded or reviewed later.
type quizRow struct {
	ID             int64 `gorm:"primaryKey"`
	UserID         int64 `gorm:"index;not null"`
	Team           string
	Difficulty     string
	Questions      datatypes.JSON `gorm:"type:json"`
	Score          int
	TotalQuestions int
	PointsEarned   int
	CreatedAt      time.Time
}

func (quizRow) TableName() string { return "quiz_history" }

func (r quizRow) toModel() model.QuizRecord {
	return model.QuizRecord{
		ID:           r.ID,
		UserID:       r.UserID,
		Team:         r.Team,
		Difficulty:   r.Difficulty,
		Score:        r.Score,
		Total:        r.TotalQuestions,
		PointsEarned: r.PointsEarned,
		CreatedAt:    r.CreatedAt,
	}
}

// predictionRow is one recorded prediction. IsCorrect stays NULL until the
// real outcome is known.
type predictionRow struct {
	ID               int64 `gorm:"primaryKey"`
	UserID           int64 `gorm:"index;not null"`
	MatchDescription string
	PredictedOutcome string
	ActualOutcome    string
	IsCorrect        *bool
	PointsEarned     int `gorm:"not null;default:0"`
	CreatedAt        time.Time
}

func (predictionRow) TableName() string { return "predictions" }

func (r predictionRow) toModel() model.PredictionRecord {
	return model.PredictionRecord{
		ID:           r.ID,
		UserID:       r.UserID,
		Match:        r.MatchDescription,
		Pick:         r.PredictedOutcome,
		Outcome:      r.ActualOutcome,
		IsCorrect:    r.IsCorrect,
		PointsEarned: r.PointsEarned,
		CreatedAt:    r.CreatedAt,
	}
}

type chatRow struct {
	ID        int64 `gorm:"primaryKey"`
	UserID    int64 `gorm:"index;not null"`
	Role      string
	Content   string
	ToolUsed  string
	CreatedAt time.Time
}

func (chatRow) TableName() string { return "chat_history" }

func (r chatRow) toModel() model.ChatMessage {
	return model.ChatMessage{
		ID:        r.ID,
		UserID:    r.UserID,
		Role:      r.Role,
		Content:   r.Content,
		ToolUsed:  r.ToolUsed,
		CreatedAt: r.CreatedAt,
	}
}
