// Package store persists users, quiz history, predictions and chat messages
// in sqlite through gorm.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/okian/grandstand/internal/domain/model"
	"github.com/okian/grandstand/pkg/logger"
	"github.com/okian/grandstand/pkg/metrics"
)

// Store is the sqlite-backed persistence layer. All methods are safe for
// concurrent use; sqlite serializes writes underneath.
type Store struct {
	db *gorm.DB
	lg logger.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger overrides the default named logger.
func WithLogger(lg logger.Logger) Option {
	return func(s *Store) {
		s.lg = lg
	}
}

// Open opens (creating if needed) the sqlite database at path and runs
// migrations. Parent directories are created. ":memory:" works for tests.
func Open(path string, opts ...Option) (*Store, error) {
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrOpenStore, err)
			}
		}
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenStore, err)
	}
	return New(db, opts...)
}

// New wraps an existing gorm handle and runs migrations.
func New(db *gorm.DB, opts ...Option) (*Store, error) {
	if err := db.AutoMigrate(&userRow{}, &quizRow{}, &predictionRow{}, &chatRow{}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenStore, err)
	}
	s := &Store{
		db: db,
		lg: logger.Named("store"),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.lg.Debug(context.Background(), "store migrated")
	return s, nil
}

// track records latency and error metrics for one store operation.
func track(op string) func(error) {
	start := time.Now()
	return func(err error) {
		metrics.RecordStoreLatency(op, float64(time.Since(start).Microseconds())/1000)
		if err != nil && !errors.Is(err, ErrUserNotFound) {
			metrics.RecordStoreError(op)
		}
	}
}

// GetUser loads a user by id.
func (s *Store) GetUser(ctx context.Context, userID int64) (u model.User, err error) {
	done := track("get_user")
	defer func() { done(err) }()

	var row userRow
	if err = s.db.WithContext(ctx).First(&row, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = ErrUserNotFound
		}
		return model.User{}, err
	}
	return row.toModel(), nil
}

// GetUserByName loads a user by exact username.
func (s *Store) GetUserByName(ctx context.Context, username string) (u model.User, err error) {
	done := track("get_user_by_name")
	defer func() { done(err) }()

	var row userRow
	if err = s.db.WithContext(ctx).Where("username = ?", username).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = ErrUserNotFound
		}
		return model.User{}, err
	}
	return row.toModel(), nil
}

// GetOrCreateUser returns the user with that username, creating it on first
// login. Existing users get their last_active refreshed. created reports
// whether a new row was inserted.
func (s *Store) GetOrCreateUser(ctx context.Context, username string) (u model.User, created bool, err error) {
	done := track("get_or_create_user")
	defer func() { done(err) }()

	now := time.Now().UTC()
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row userRow
		ferr := tx.Where("username = ?", username).First(&row).Error
		switch {
		case ferr == nil:
			if uerr := tx.Model(&row).UpdateColumn("last_active", now).Error; uerr != nil {
				return uerr
			}
			row.LastActive = now
			u = row.toModel()
			return nil
		case errors.Is(ferr, gorm.ErrRecordNotFound):
			row = userRow{
				Username:   username,
				Badges:     []byte("[]"),
				CreatedAt:  now,
				LastActive: now,
			}
			if cerr := tx.Create(&row).Error; cerr != nil {
				return cerr
			}
			created = true
			u = row.toModel()
			return nil
		default:
			return ferr
		}
	})
	if err != nil {
		return model.User{}, false, err
	}
	return u, created, nil
}

// UpdateFavoriteTeam sets the user's favorite team.
func (s *Store) UpdateFavoriteTeam(ctx context.Context, userID int64, team string) (err error) {
	done := track("update_favorite_team")
	defer func() { done(err) }()

	res := s.db.WithContext(ctx).Model(&userRow{}).Where("id = ?", userID).
		UpdateColumn("favorite_team", team)
	if res.Error != nil {
		err = res.Error
		return err
	}
	if res.RowsAffected == 0 {
		err = ErrUserNotFound
	}
	return err
}

// AddPoints increments a user's points in a single UPDATE so concurrent
// awards never lose increments, then returns the fresh snapshot.
func (s *Store) AddPoints(ctx context.Context, userID int64, delta int) (u model.User, err error) {
	done := track("add_points")
	defer func() { done(err) }()

	res := s.db.WithContext(ctx).Model(&userRow{}).Where("id = ?", userID).
		UpdateColumn("points", gorm.Expr("points + ?", delta))
	if res.Error != nil {
		return model.User{}, res.Error
	}
	if res.RowsAffected == 0 {
		err = ErrUserNotFound
		return model.User{}, err
	}

	var row userRow
	if err = s.db.WithContext(ctx).First(&row, userID).Error; err != nil {
		return model.User{}, err
	}
	return row.toModel(), nil
}

// AddBadge unions a badge id into the user's badge set inside a transaction.
// Re-granting an already held badge is a no-op.
func (s *Store) AddBadge(ctx context.Context, userID int64, badgeID string) (u model.User, err error) {
	done := track("add_badge")
	defer func() { done(err) }()

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row userRow
		if ferr := tx.First(&row, userID).Error; ferr != nil {
			if errors.Is(ferr, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return ferr
		}

		var badges []string
		if len(row.Badges) > 0 {
			_ = json.Unmarshal(row.Badges, &badges)
		}
		for _, b := range badges {
			if b == badgeID {
				u = row.toModel()
				return nil
			}
		}
		badges = append(badges, badgeID)
		raw, merr := json.Marshal(badges)
		if merr != nil {
			return merr
		}
		if uerr := tx.Model(&row).UpdateColumn("badges", raw).Error; uerr != nil {
			return uerr
		}
		row.Badges = raw
		u = row.toModel()
		return nil
	})
	if err != nil {
		return model.User{}, err
	}
	return u, nil
}

// SaveQuizResult appends one graded quiz to the user's history. questions is
// the full question set as JSON, kept for later review.
func (s *Store) SaveQuizResult(ctx context.Context, rec model.QuizRecord, questions json.RawMessage) (out model.QuizRecord, err error) {
	done := track("save_quiz_result")
	defer func() { done(err) }()

	row := quizRow{
		UserID:         rec.UserID,
		Team:           rec.Team,
		Difficulty:     rec.Difficulty,
		Questions:      []byte(questions),
		Score:          rec.Score,
		TotalQuestions: rec.Total,
		PointsEarned:   rec.PointsEarned,
		CreatedAt:      time.Now().UTC(),
	}
	if err = s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return model.QuizRecord{}, err
	}
	return row.toModel(), nil
}

// QuizHistory returns the user's most recent quizzes, newest first.
func (s *Store) QuizHistory(ctx context.Context, userID int64, limit int) (out []model.QuizRecord, err error) {
	done := track("quiz_history")
	defer func() { done(err) }()

	var rows []quizRow
	err = s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out = make([]model.QuizRecord, len(rows))
	for i, r := range rows {
		out[i] = r.toModel()
	}
	return out, nil
}

// SavePrediction appends one prediction to the user's history.
func (s *Store) SavePrediction(ctx context.Context, rec model.PredictionRecord) (out model.PredictionRecord, err error) {
	done := track("save_prediction")
	defer func() { done(err) }()

	row := predictionRow{
		UserID:           rec.UserID,
		MatchDescription: rec.Match,
		PredictedOutcome: rec.Pick,
		ActualOutcome:    rec.Outcome,
		IsCorrect:        rec.IsCorrect,
		PointsEarned:     rec.PointsEarned,
		CreatedAt:        time.Now().UTC(),
	}
	if err = s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return model.PredictionRecord{}, err
	}
	return row.toModel(), nil
}

// PredictionHistory returns the user's most recent predictions, newest first.
func (s *Store) PredictionHistory(ctx context.Context, userID int64, limit int) (out []model.PredictionRecord, err error) {
	done := track("prediction_history")
	defer func() { done(err) }()

	var rows []predictionRow
	err = s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out = make([]model.PredictionRecord, len(rows))
	for i, r := range rows {
		out[i] = r.toModel()
	}
	return out, nil
}

// SaveChatMessage appends one chat turn.
func (s *Store) SaveChatMessage(ctx context.Context, msg model.ChatMessage) (out model.ChatMessage, err error) {
	done := track("save_chat_message")
	defer func() { done(err) }()

	row := chatRow{
		UserID:    msg.UserID,
		Role:      msg.Role,
		Content:   msg.Content,
		ToolUsed:  msg.ToolUsed,
		CreatedAt: time.Now().UTC(),
	}
	if err = s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return model.ChatMessage{}, err
	}
	return row.toModel(), nil
}

// ChatHistory returns the user's last limit messages in chronological order.
func (s *Store) ChatHistory(ctx context.Context, userID int64, limit int) (out []model.ChatMessage, err error) {
	done := track("chat_history")
	defer func() { done(err) }()

	var rows []chatRow
	err = s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out = make([]model.ChatMessage, len(rows))
	for i, r := range rows {
		out[len(rows)-1-i] = r.toModel()
	}
	return out, nil
}

// Leaderboard returns up to limit users ordered by points descending. Equal
// points order by insertion (id).
func (s *Store) Leaderboard(ctx context.Context, limit int) (out []model.User, err error) {
	done := track("leaderboard")
	defer func() { done(err) }()

	var rows []userRow
	err = s.db.WithContext(ctx).
		Order("points DESC, id ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out = make([]model.User, len(rows))
	for i, r := range rows {
		out[i] = r.toModel()
	}
	return out, nil
}

// UserStats aggregates quiz and prediction history in SQL.
func (s *Store) UserStats(ctx context.Context, userID int64) (stats model.UserStats, err error) {
	done := track("user_stats")
	defer func() { done(err) }()

	var quiz struct {
		TotalQuizzes   int
		TotalCorrect   int
		TotalQuestions int
		AvgScore       float64
	}
	err = s.db.WithContext(ctx).Model(&quizRow{}).
		Select(`COUNT(*) AS total_quizzes,
			COALESCE(SUM(score), 0) AS total_correct,
			COALESCE(SUM(total_questions), 0) AS total_questions,
			COALESCE(AVG(CAST(score AS FLOAT) / total_questions * 100), 0) AS avg_score`).
		Where("user_id = ?", userID).
		Scan(&quiz).Error
	if err != nil {
		return model.UserStats{}, err
	}

	var pred struct {
		TotalPredictions   int
		CorrectPredictions int
	}
	err = s.db.WithContext(ctx).Model(&predictionRow{}).
		Select(`COUNT(*) AS total_predictions,
			COALESCE(SUM(CASE WHEN is_correct = 1 THEN 1 ELSE 0 END), 0) AS correct_predictions`).
		Where("user_id = ?", userID).
		Scan(&pred).Error
	if err != nil {
		return model.UserStats{}, err
	}

	return model.UserStats{
		Quizzes: model.QuizStats{
			TotalQuizzes:   quiz.TotalQuizzes,
			TotalCorrect:   quiz.TotalCorrect,
			TotalQuestions: quiz.TotalQuestions,
			AvgScorePct:    quiz.AvgScore,
		},
		Predictions: model.PredictionStats{
			TotalPredictions:   pred.TotalPredictions,
			CorrectPredictions: pred.CorrectPredictions,
		},
	}, nil
}
