package store

import (
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okian/grandstand/internal/domain/model"
	"github.com/okian/grandstand/pkg/logger"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	require.NoError(t, err)
	return s
}

func TestGetOrCreateUser(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	u, created, err := s.GetOrCreateUser(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, 0, u.Points)
	assert.Empty(t, u.Badges)
	require.NotZero(t, u.ID)

	again, created, err := s.GetOrCreateUser(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, u.ID, again.ID)

	byName, err := s.GetUserByName(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byName.ID)

	_, err = s.GetUserByName(ctx, "nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = s.GetUser(ctx, 9999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateFavoriteTeam(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	u, _, err := s.GetOrCreateUser(ctx, "alice")
	require.NoError(t, err)

	require.NoError(t, s.UpdateFavoriteTeam(ctx, u.ID, "Arsenal"))
	got, err := s.GetUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Arsenal", got.FavoriteTeam)

	assert.ErrorIs(t, s.UpdateFavoriteTeam(ctx, 9999, "Arsenal"), ErrUserNotFound)
}

func TestAddPoints(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	u, _, err := s.GetOrCreateUser(ctx, "alice")
	require.NoError(t, err)

	got, err := s.AddPoints(ctx, u.ID, 35)
	require.NoError(t, err)
	assert.Equal(t, 35, got.Points)

	got, err = s.AddPoints(ctx, u.ID, 70)
	require.NoError(t, err)
	assert.Equal(t, 105, got.Points)

	_, err = s.AddPoints(ctx, 9999, 10)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAddBadgeIdempotent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	u, _, err := s.GetOrCreateUser(ctx, "alice")
	require.NoError(t, err)

	got, err := s.AddBadge(ctx, u.ID, "quiz_rookie")
	require.NoError(t, err)
	assert.Equal(t, []string{"quiz_rookie"}, got.Badges)

	got, err = s.AddBadge(ctx, u.ID, "quiz_master")
	require.NoError(t, err)
	assert.Equal(t, []string{"quiz_rookie", "quiz_master"}, got.Badges)

	// Re-granting must not duplicate.
	got, err = s.AddBadge(ctx, u.ID, "quiz_rookie")
	require.NoError(t, err)
	assert.Equal(t, []string{"quiz_rookie", "quiz_master"}, got.Badges)

	_, err = s.AddBadge(ctx, 9999, "quiz_rookie")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestQuizHistory(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	u, _, err := s.GetOrCreateUser(ctx, "alice")
	require.NoError(t, err)

	questions := json.RawMessage(`[{"id":1,"question":"Q?"}]`)
	for i, score := range []int{3, 5} {
		rec, err := s.SaveQuizResult(ctx, model.QuizRecord{
			UserID:       u.ID,
			Team:         "Arsenal",
			Difficulty:   "medium",
			Score:        score,
			Total:        5,
			PointsEarned: score * 10,
		}, questions)
		require.NoError(t, err)
		assert.NotZero(t, rec.ID, "record %d", i)
	}

	history, err := s.QuizHistory(ctx, u.ID, 10)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, 5, history[0].Score, "newest first")
	assert.Equal(t, 3, history[1].Score)

	limited, err := s.QuizHistory(ctx, u.ID, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestPredictionHistory(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	u, _, err := s.GetOrCreateUser(ctx, "alice")
	require.NoError(t, err)

	rec, err := s.SavePrediction(ctx, model.PredictionRecord{
		UserID:       u.ID,
		Match:        "Arsenal vs Chelsea",
		Pick:         "Arsenal",
		PointsEarned: 5,
	})
	require.NoError(t, err)
	assert.NotZero(t, rec.ID)
	assert.Nil(t, rec.IsCorrect)

	history, err := s.PredictionHistory(ctx, u.ID, 10)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "Arsenal vs Chelsea", history[0].Match)
	assert.Equal(t, "Arsenal", history[0].Pick)
}

func TestChatHistoryOrder(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	u, _, err := s.GetOrCreateUser(ctx, "alice")
	require.NoError(t, err)

	for _, msg := range []string{"first", "second", "third"} {
		_, err := s.SaveChatMessage(ctx, model.ChatMessage{
			UserID:  u.ID,
			Role:    model.RoleUser,
			Content: msg,
		})
		require.NoError(t, err)
	}

	history, err := s.ChatHistory(ctx, u.ID, 2)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "second", history[0].Content, "last two messages in chronological order")
	assert.Equal(t, "third", history[1].Content)
}

func TestLeaderboard(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for _, seed := range []struct {
		name   string
		points int
	}{
		{"alice", 300},
		{"bob", 100},
		{"carol", 500},
	} {
		u, _, err := s.GetOrCreateUser(ctx, seed.name)
		require.NoError(t, err)
		_, err = s.AddPoints(ctx, u.ID, seed.points)
		require.NoError(t, err)
	}

	top, err := s.Leaderboard(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "carol", top[0].Username)
	assert.Equal(t, 500, top[0].Points)
	assert.Equal(t, "alice", top[1].Username)
}

func TestUserStats(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	u, _, err := s.GetOrCreateUser(ctx, "alice")
	require.NoError(t, err)

	empty, err := s.UserStats(ctx, u.ID)
	require.NoError(t, err)
	assert.Zero(t, empty.Quizzes.TotalQuizzes)
	assert.Zero(t, empty.Predictions.TotalPredictions)

	questions := json.RawMessage(`[]`)
	_, err = s.SaveQuizResult(ctx, model.QuizRecord{UserID: u.ID, Team: "Arsenal", Score: 4, Total: 5}, questions)
	require.NoError(t, err)
	_, err = s.SaveQuizResult(ctx, model.QuizRecord{UserID: u.ID, Team: "Arsenal", Score: 2, Total: 5}, questions)
	require.NoError(t, err)

	correct := true
	_, err = s.SavePrediction(ctx, model.PredictionRecord{UserID: u.ID, Match: "A vs B", Pick: "A", IsCorrect: &correct})
	require.NoError(t, err)
	wrong := false
	_, err = s.SavePrediction(ctx, model.PredictionRecord{UserID: u.ID, Match: "C vs D", Pick: "C", IsCorrect: &wrong})
	require.NoError(t, err)

	stats, err := s.UserStats(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Quizzes.TotalQuizzes)
	assert.Equal(t, 6, stats.Quizzes.TotalCorrect)
	assert.Equal(t, 10, stats.Quizzes.TotalQuestions)
	assert.InDelta(t, 60.0, stats.Quizzes.AvgScorePct, 0.01)
	assert.Equal(t, 2, stats.Predictions.TotalPredictions)
	assert.Equal(t, 1, stats.Predictions.CorrectPredictions)
}
