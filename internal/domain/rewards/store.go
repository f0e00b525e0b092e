// Package rewards converts quiz and prediction activity into points and badges.
package rewards

import (
	"context"

	"github.com/okian/grandstand/internal/domain/model"
)

// Store is the external user-state accessor the ledger reads and writes
// through. The ledger never caches state across calls, so correctness under
// concurrent requests for the same user depends entirely on the store:
//
//   - AddPoints MUST be applied as an atomic increment (a single UPDATE with
//     an arithmetic expression), never a read-then-overwrite from a stale
//     snapshot.
//   - AddBadge MUST be an idempotent set-union: a no-op when the badge is
//     already present.
type Store interface {
	// GetUser returns the current snapshot for a user id.
	GetUser(ctx context.Context, userID int64) (model.User, error)

	// AddPoints atomically increments a user's points and returns the
	// updated snapshot.
	AddPoints(ctx context.Context, userID int64, delta int) (model.User, error)

	// AddBadge inserts a badge id into the user's badge set if absent and
	// returns the updated snapshot.
	AddBadge(ctx context.Context, userID int64, badgeID string) (model.User, error)

	// QuizHistory returns the user's most recent quiz records, newest first.
	QuizHistory(ctx context.Context, userID int64, limit int) ([]model.QuizRecord, error)

	// PredictionHistory returns the user's most recent predictions, newest first.
	PredictionHistory(ctx context.Context, userID int64, limit int) ([]model.PredictionRecord, error)

	// Leaderboard returns up to limit users ordered by points descending.
	// Tie ordering follows the underlying store's iteration order and is not
	// guaranteed stable across implementations.
	Leaderboard(ctx context.Context, limit int) ([]model.User, error)

	// UserStats returns quiz and prediction aggregates for a user.
	UserStats(ctx context.Context, userID int64) (model.UserStats, error)
}
