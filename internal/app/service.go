// Package service provides the core engagement service that implements the
// dependencies required by the HTTP API.
package service

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/okian/grandstand/internal/adapters/completion"
	"github.com/okian/grandstand/internal/domain/catalog"
	"github.com/okian/grandstand/internal/domain/model"
	"github.com/okian/grandstand/internal/domain/predict"
	"github.com/okian/grandstand/internal/domain/rewards"
	"github.com/okian/grandstand/pkg/logger"
)

// Store is the persistence surface the service needs. *store.Store satisfies
// it; tests use an in-memory fake.
type Store interface {
	GetUser(ctx context.Context, userID int64) (model.User, error)
	GetOrCreateUser(ctx context.Context, username string) (model.User, bool, error)
	UpdateFavoriteTeam(ctx context.Context, userID int64, team string) error
	AddPoints(ctx context.Context, userID int64, delta int) (model.User, error)
	AddBadge(ctx context.Context, userID int64, badgeID string) (model.User, error)
	SaveQuizResult(ctx context.Context, rec model.QuizRecord, questions json.RawMessage) (model.QuizRecord, error)
	QuizHistory(ctx context.Context, userID int64, limit int) ([]model.QuizRecord, error)
	SavePrediction(ctx context.Context, rec model.PredictionRecord) (model.PredictionRecord, error)
	PredictionHistory(ctx context.Context, userID int64, limit int) ([]model.PredictionRecord, error)
	SaveChatMessage(ctx context.Context, msg model.ChatMessage) (model.ChatMessage, error)
	ChatHistory(ctx context.Context, userID int64, limit int) ([]model.ChatMessage, error)
	Leaderboard(ctx context.Context, limit int) ([]model.User, error)
	UserStats(ctx context.Context, userID int64) (model.UserStats, error)
}

// Completer is the completion backend. A disabled completer makes every
// feature fall back to its built-in behavior.
type Completer interface {
	Enabled() bool
	Complete(ctx context.Context, req completion.Request) (string, error)
}

// Service wires the engagement tools together behind one API.
type Service struct {
	mu sync.RWMutex

	store     Store
	completer Completer

	catalog *catalog.Catalog
	engine  *predict.Engine
	ledger  *rewards.Ledger

	defaultQuizQuestions int
	maxLeaderboardLimit  int
	rand                 predict.Rand

	started bool
	logger  logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStore sets the persistence layer. Required before Start.
func WithStore(st Store) Option {
	return func(s *Service) {
		s.store = st
	}
}

// WithCompleter sets the completion backend. Required before Start; pass a
// key-less client to run fully offline.
func WithCompleter(c Completer) Option {
	return func(s *Service) {
		s.completer = c
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(lg logger.Logger) Option {
	return func(s *Service) {
		if lg != nil {
			s.logger = lg
		}
	}
}

// WithDefaultQuizQuestions sets the question count used when a request
// leaves it unset.
func WithDefaultQuizQuestions(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.defaultQuizQuestions = n
		}
	}
}

// WithMaxLeaderboardLimit caps how many rows a leaderboard request may ask
// for.
func WithMaxLeaderboardLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxLeaderboardLimit = n
		}
	}
}

// WithRand overrides the close-match random source of the prediction engine.
func WithRand(r predict.Rand) Option {
	return func(s *Service) {
		s.rand = r
	}
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		defaultQuizQuestions: 5,
		maxLeaderboardLimit:  100,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.store == nil {
		return ErrNoStore
	}
	if s.completer == nil {
		return ErrNoCompleter
	}

	if s.logger == nil {
		s.logger = logger.Named("service")
	}

	s.logger.Info(ctx, "starting engagement service...")

	s.catalog = catalog.New()
	engineOpts := []predict.Option{}
	if s.rand != nil {
		engineOpts = append(engineOpts, predict.WithRand(s.rand))
	}
	s.engine = predict.New(s.catalog, engineOpts...)
	s.ledger = rewards.New(s.store, rewards.WithLogger(s.logger.Named("rewards")))

	s.started = true
	s.logger.Info(ctx, "engagement service started",
		logger.Int("teams", s.catalog.Size()),
		logger.Bool("completions", s.completer.Enabled()),
	)
	return nil
}

// Stop shuts the service down.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "engagement service stopped")
}
