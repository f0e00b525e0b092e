package rewards

import (
	"context"
	"fmt"
	"strings"

	"github.com/okian/grandstand/internal/domain/model"
	"github.com/okian/grandstand/pkg/logger"
	"github.com/okian/grandstand/pkg/metrics"
)

// Action selects a ledger operation. The set is closed; anything else yields
// a failure outcome naming the valid actions.
type Action string

const (
	ActionAwardQuizPoints       Action = "award_quiz_points"
	ActionAwardPredictionPoints Action = "award_prediction_points"
	ActionCheckBadges           Action = "check_badges"
	ActionGetLeaderboard        Action = "get_leaderboard"
	ActionGetUserRewards        Action = "get_user_rewards"
	ActionGetStats              Action = "get_stats"
)

// Actions returns the valid action set in declaration order.
func Actions() []Action {
	return []Action{
		ActionAwardQuizPoints,
		ActionAwardPredictionPoints,
		ActionCheckBadges,
		ActionGetLeaderboard,
		ActionGetUserRewards,
		ActionGetStats,
	}
}

// Point amounts per event.
const (
	quizPointsPerCorrect   = 10
	quizParticipationBonus = 5
	quizPerfectBonus       = 50

	predictionParticipation = 5
	predictionCorrectBonus  = 25
)

// History windows used by badge trigger checks and rank scans.
const (
	historyWindow = 100
	rankScanDepth = 100

	defaultLeaderboardLimit = 10
)

// Params carries the per-action inputs. Unused fields are ignored by actions
// that do not read them.
type Params struct {
	// Quiz results.
	Score int
	Total int
	Team  string

	// Prediction results.
	IsCorrect bool

	// Leaderboard window.
	Limit int
}

// Breakdown itemizes the points earned from one quiz.
type Breakdown struct {
	BasePoints    int `json:"base_points"`
	Participation int `json:"participation"`
	PerfectBonus  int `json:"perfect_bonus"`
}

// Entry is one leaderboard row.
type Entry struct {
	Rank          int    `json:"rank"`
	Username      string `json:"username"`
	Points        int    `json:"points"`
	BadgeCount    int    `json:"badge_count"`
	IsCurrentUser bool   `json:"is_current_user"`
}

// NextBadge names the closest unearned badge and how far along the user is.
type NextBadge struct {
	Badge    Badge  `json:"badge"`
	Progress string `json:"progress"`
}

// Outcome is the structured result of one Apply call. Success outcomes fill
// the fields relevant to the action; failure outcomes set Error.
type Outcome struct {
	Success bool   `json:"success"`
	Action  Action `json:"action"`
	Error   string `json:"error,omitempty"`

	PointsEarned      int        `json:"points_earned,omitempty"`
	Breakdown         *Breakdown `json:"breakdown,omitempty"`
	PredictionCorrect *bool      `json:"prediction_correct,omitempty"`
	TotalPoints       int        `json:"total_points,omitempty"`
	NewBadges         []Badge    `json:"new_badges,omitempty"`
	CurrentBadges     []Badge    `json:"current_badges,omitempty"`
	AvailableBadges   []Badge    `json:"available_badges,omitempty"`

	Leaderboard []Entry `json:"leaderboard,omitempty"`
	UserRank    *int    `json:"user_rank,omitempty"`
	TotalUsers  int     `json:"total_users,omitempty"`

	Username   string           `json:"username,omitempty"`
	Points     int              `json:"points,omitempty"`
	BadgeCount int              `json:"badge_count,omitempty"`
	Badges     []Badge          `json:"badges,omitempty"`
	NextBadge  *NextBadge       `json:"next_badge,omitempty"`
	Stats      *model.UserStats `json:"stats,omitempty"`
}

// Ledger applies reward actions against a Store.
type Ledger struct {
	store Store
	lg    logger.Logger
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithLogger overrides the default named logger.
func WithLogger(lg logger.Logger) Option {
	return func(l *Ledger) {
		l.lg = lg
	}
}

// New builds a Ledger over the given store.
func New(store Store, opts ...Option) *Ledger {
	l := &Ledger{
		store: store,
		lg:    logger.Named("rewards"),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Apply dispatches one reward action for a user and returns its outcome.
// Store failures surface as failure outcomes, not panics, so a broken
// rewards path never takes down the caller's request.
func (l *Ledger) Apply(ctx context.Context, action Action, userID int64, params Params) Outcome {
	var out Outcome
	switch action {
	case ActionAwardQuizPoints:
		out = l.awardQuizPoints(ctx, userID, params)
	case ActionAwardPredictionPoints:
		out = l.awardPredictionPoints(ctx, userID, params)
	case ActionCheckBadges:
		out = l.checkBadges(ctx, userID)
	case ActionGetLeaderboard:
		out = l.getLeaderboard(ctx, userID, params.Limit)
	case ActionGetUserRewards:
		out = l.getUserRewards(ctx, userID)
	case ActionGetStats:
		out = l.getStats(ctx, userID)
	default:
		out = Outcome{
			Action: action,
			Error:  fmt.Sprintf("%v: %q, valid actions: %s", ErrUnknownAction, action, joinActions(Actions())),
		}
	}
	out.Action = action
	if out.Success {
		metrics.RecordRewardAction(string(action), "success")
	} else {
		metrics.RecordRewardAction(string(action), "failure")
		l.lg.Warn(ctx, "reward action failed",
			logger.String("action", string(action)),
			logger.Int64("user_id", userID),
			logger.String("error", out.Error),
		)
	}
	return out
}

// QuizPoints returns the points one graded quiz is worth, itemized.
func QuizPoints(score, total int) (int, Breakdown) {
	breakdown := Breakdown{
		BasePoints:    score * quizPointsPerCorrect,
		Participation: quizParticipationBonus,
	}
	if total > 0 && score == total {
		breakdown.PerfectBonus = quizPerfectBonus
	}
	return breakdown.BasePoints + breakdown.Participation + breakdown.PerfectBonus, breakdown
}

func (l *Ledger) awardQuizPoints(ctx context.Context, userID int64, params Params) Outcome {
	earned, breakdown := QuizPoints(params.Score, params.Total)

	user, err := l.store.AddPoints(ctx, userID, earned)
	if err != nil {
		return Outcome{Error: err.Error()}
	}
	metrics.RecordPointsAwarded("quiz", earned)

	newBadges, err := l.checkQuizBadges(ctx, user, params)
	if err != nil {
		return Outcome{Error: err.Error()}
	}
	return Outcome{
		Success:      true,
		PointsEarned: earned,
		Breakdown:    &breakdown,
		TotalPoints:  user.Points,
		NewBadges:    newBadges,
	}
}

func (l *Ledger) awardPredictionPoints(ctx context.Context, userID int64, params Params) Outcome {
	earned := predictionParticipation
	if params.IsCorrect {
		earned += predictionCorrectBonus
	}
	user, err := l.store.AddPoints(ctx, userID, earned)
	if err != nil {
		return Outcome{Error: err.Error()}
	}
	metrics.RecordPointsAwarded("prediction", earned)

	newBadges, err := l.checkPredictionBadges(ctx, user)
	if err != nil {
		return Outcome{Error: err.Error()}
	}
	correct := params.IsCorrect
	return Outcome{
		Success:           true,
		PointsEarned:      earned,
		PredictionCorrect: &correct,
		TotalPoints:       user.Points,
		NewBadges:         newBadges,
	}
}

func (l *Ledger) checkBadges(ctx context.Context, userID int64) Outcome {
	user, err := l.store.GetUser(ctx, userID)
	if err != nil {
		return Outcome{Error: err.Error()}
	}
	newBadges, user, err := l.grantPointBadges(ctx, user)
	if err != nil {
		return Outcome{Error: err.Error()}
	}

	var current, available []Badge
	for _, b := range badgeCatalog {
		if user.HasBadge(b.ID) {
			current = append(current, b)
		} else {
			available = append(available, b)
		}
	}
	return Outcome{
		Success:         true,
		NewBadges:       newBadges,
		CurrentBadges:   current,
		AvailableBadges: available,
	}
}

func (l *Ledger) getLeaderboard(ctx context.Context, userID int64, limit int) Outcome {
	if limit < 1 {
		limit = defaultLeaderboardLimit
	}
	users, err := l.store.Leaderboard(ctx, limit)
	if err != nil {
		return Outcome{Error: err.Error()}
	}
	metrics.RecordLeaderboardView()

	entries := make([]Entry, 0, len(users))
	var userRank *int
	for i, u := range users {
		rank := i + 1
		if u.ID == userID {
			r := rank
			userRank = &r
		}
		entries = append(entries, Entry{
			Rank:          rank,
			Username:      u.Username,
			Points:        u.Points,
			BadgeCount:    len(u.Badges),
			IsCurrentUser: u.ID == userID,
		})
	}
	return Outcome{
		Success:     true,
		Leaderboard: entries,
		UserRank:    userRank,
		TotalUsers:  len(users),
	}
}

func (l *Ledger) getUserRewards(ctx context.Context, userID int64) Outcome {
	user, err := l.store.GetUser(ctx, userID)
	if err != nil {
		return Outcome{Error: err.Error()}
	}
	stats, err := l.store.UserStats(ctx, userID)
	if err != nil {
		return Outcome{Error: err.Error()}
	}
	rank, err := l.rankOf(ctx, userID)
	if err != nil {
		return Outcome{Error: err.Error()}
	}

	badges := make([]Badge, 0, len(user.Badges))
	for _, id := range user.Badges {
		if b, ok := BadgeByID(id); ok {
			badges = append(badges, b)
		}
	}
	return Outcome{
		Success:    true,
		Username:   user.Username,
		Points:     user.Points,
		UserRank:   rank,
		Badges:     badges,
		BadgeCount: len(badges),
		Stats:      &stats,
		NextBadge:  l.nextBadge(user, stats),
	}
}

func (l *Ledger) getStats(ctx context.Context, userID int64) Outcome {
	user, err := l.store.GetUser(ctx, userID)
	if err != nil {
		return Outcome{Error: err.Error()}
	}
	stats, err := l.store.UserStats(ctx, userID)
	if err != nil {
		return Outcome{Error: err.Error()}
	}
	return Outcome{
		Success:  true,
		Username: user.Username,
		Points:   user.Points,
		Stats:    &stats,
	}
}

// rankOf scans the top of the leaderboard for the user. Users below the scan
// depth get no rank.
func (l *Ledger) rankOf(ctx context.Context, userID int64) (*int, error) {
	users, err := l.store.Leaderboard(ctx, rankScanDepth)
	if err != nil {
		return nil, err
	}
	for i, u := range users {
		if u.ID == userID {
			rank := i + 1
			return &rank, nil
		}
	}
	return nil, nil
}

// nextBadge picks the closest unearned badge: point thresholds in ascending
// order, then the first quiz, then the prediction count.
func (l *Ledger) nextBadge(user model.User, stats model.UserStats) *NextBadge {
	for _, pb := range pointBadges {
		if user.Points < pb.Threshold && !user.HasBadge(pb.ID) {
			return &NextBadge{
				Badge:    pb.Badge,
				Progress: fmt.Sprintf("%d/%d points", user.Points, pb.Threshold),
			}
		}
	}
	if !user.HasBadge(BadgeQuizRookie) {
		return &NextBadge{
			Badge:    mustBadge(BadgeQuizRookie),
			Progress: "Complete your first quiz",
		}
	}
	if !user.HasBadge(BadgePredictionPro) {
		return &NextBadge{
			Badge:    mustBadge(BadgePredictionPro),
			Progress: fmt.Sprintf("%d/5 predictions", stats.Predictions.TotalPredictions),
		}
	}
	return nil
}

// checkQuizBadges evaluates quiz triggers after a quiz award. The quiz being
// awarded is expected to already be in the history.
func (l *Ledger) checkQuizBadges(ctx context.Context, user model.User, params Params) ([]Badge, error) {
	history, err := l.store.QuizHistory(ctx, user.ID, historyWindow)
	if err != nil {
		return nil, err
	}

	var granted []Badge
	if len(history) >= 1 {
		user, granted, err = l.grant(ctx, user, BadgeQuizRookie, granted)
		if err != nil {
			return nil, err
		}
	}
	if params.Total > 0 && params.Score == params.Total {
		user, granted, err = l.grant(ctx, user, BadgeQuizMaster, granted)
		if err != nil {
			return nil, err
		}
	}
	if team := strings.TrimSpace(params.Team); team != "" {
		count := 0
		for _, q := range history {
			if strings.EqualFold(q.Team, team) {
				count++
			}
		}
		if count >= 5 {
			user, granted, err = l.grant(ctx, user, BadgeTeamExpert, granted)
			if err != nil {
				return nil, err
			}
		}
	}

	pointGrants, _, err := l.grantPointBadges(ctx, user)
	if err != nil {
		return nil, err
	}
	return append(granted, pointGrants...), nil
}

func (l *Ledger) checkPredictionBadges(ctx context.Context, user model.User) ([]Badge, error) {
	history, err := l.store.PredictionHistory(ctx, user.ID, historyWindow)
	if err != nil {
		return nil, err
	}

	var granted []Badge
	if len(history) >= 5 {
		user, granted, err = l.grant(ctx, user, BadgePredictionPro, granted)
		if err != nil {
			return nil, err
		}
	}
	pointGrants, _, err := l.grantPointBadges(ctx, user)
	if err != nil {
		return nil, err
	}
	return append(granted, pointGrants...), nil
}

// grantPointBadges awards every threshold badge the balance covers, in
// ascending order.
func (l *Ledger) grantPointBadges(ctx context.Context, user model.User) ([]Badge, model.User, error) {
	var granted []Badge
	var err error
	for _, pb := range pointBadges {
		if user.Points < pb.Threshold {
			break
		}
		user, granted, err = l.grant(ctx, user, pb.ID, granted)
		if err != nil {
			return nil, user, err
		}
	}
	return granted, user, nil
}

// grant awards a badge if the user does not already hold it, appending the
// catalog entry to acc on a fresh grant.
func (l *Ledger) grant(ctx context.Context, user model.User, badgeID string, acc []Badge) (model.User, []Badge, error) {
	if user.HasBadge(badgeID) {
		return user, acc, nil
	}
	updated, err := l.store.AddBadge(ctx, user.ID, badgeID)
	if err != nil {
		return user, acc, err
	}
	metrics.RecordBadgeAwarded(badgeID)
	l.lg.Info(ctx, "badge awarded",
		logger.Int64("user_id", user.ID),
		logger.String("badge", badgeID),
	)
	return updated, append(acc, mustBadge(badgeID)), nil
}

func joinActions(actions []Action) string {
	parts := make([]string, len(actions))
	for i, a := range actions {
		parts[i] = string(a)
	}
	return strings.Join(parts, ", ")
}
