// Package predict computes match outcome predictions from catalog profiles.
package predict

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"sync"

	"github.com/okian/grandstand/internal/domain/catalog"
	"github.com/okian/grandstand/pkg/metrics"
)

// Scoring weights and outcome thresholds. Rank contributes inversely
// (1 is best), strength dominates, recent form is a moderate tiebreaker.
const (
	strengthWeight = 0.7
	formWeight     = 8
	rankBase       = 100
	rankWeight     = 2

	// Outside (upsetLow, upsetHigh) the outcome is deterministic; inside,
	// a random draw decides.
	upsetLow  = 0.4
	upsetHigh = 0.6

	// MaxConfidence caps every reported confidence, whatever produced it.
	MaxConfidence = 95

	// Explanation clause thresholds.
	strengthGapClause = 10
	formGapClause     = 1

	defaultRandomSeed = 42
)

// Rand supplies the uniform draw for the close-match branch. Injectable so
// tests can pin outcomes deterministically.
type Rand interface {
	Float64() float64
}

// Result is the outcome of a single prediction. Created fresh per call and
// never persisted by this package.
type Result struct {
	Winner         string `json:"winner"`
	Loser          string `json:"loser"`
	Confidence     int    `json:"confidence"`
	Explanation    string `json:"explanation"`
	WinnerStrength int    `json:"winner_strength"`
	LoserStrength  int    `json:"loser_strength"`
}

// Engine combines two catalog profiles into a prediction.
type Engine struct {
	catalog *catalog.Catalog
	rng     Rand
}

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithRand sets the random source used for close matches.
func WithRand(r Rand) Option {
	return func(e *Engine) {
		if r != nil {
			e.rng = r
		}
	}
}

// New constructs an Engine over the given catalog.
func New(cat *catalog.Catalog, opts ...Option) *Engine {
	e := &Engine{
		catalog: cat,
		rng:     newLockedRand(defaultRandomSeed),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Predict resolves both teams (unknown names degrade to the default profile,
// never an error) and returns the predicted winner, a confidence in [0, 95],
// and a one-line explanation.
func (e *Engine) Predict(ctx context.Context, team1, team2 string) Result {
	_ = ctx // synchronous; kept for interface symmetry with other collaborators

	p1, _ := e.catalog.Lookup(team1)
	p2, _ := e.catalog.Lookup(team2)

	s1 := compositeScore(p1)
	s2 := compositeScore(p2)

	winProb1 := 0.5
	if total := s1 + s2; total > 0 {
		winProb1 = s1 / total
	}

	var winner, loser catalog.TeamProfile
	var confidence int
	switch {
	case winProb1 > upsetHigh:
		winner, loser = p1, p2
		confidence = cappedConfidence(winProb1)
	case winProb1 < upsetLow:
		winner, loser = p2, p1
		confidence = cappedConfidence(1 - winProb1)
	default:
		// Close match: only here is the outcome probabilistic.
		metrics.RecordCloseMatch()
		if e.rng.Float64() < winProb1 {
			winner, loser = p1, p2
			confidence = int(math.Round(winProb1 * 100))
		} else {
			winner, loser = p2, p1
			confidence = int(math.Round((1 - winProb1) * 100))
		}
	}

	return Result{
		Winner:         winner.Name,
		Loser:          loser.Name,
		Confidence:     confidence,
		Explanation:    explain(winner, loser, confidence),
		WinnerStrength: winner.Strength,
		LoserStrength:  loser.Strength,
	}
}

func compositeScore(p catalog.TeamProfile) float64 {
	return float64(p.Strength)*strengthWeight +
		float64(p.RecentForm)*formWeight +
		float64(rankBase-p.Rank*rankWeight)
}

func cappedConfidence(prob float64) int {
	c := int(math.Round(prob * 100))
	if c > MaxConfidence {
		return MaxConfidence
	}
	return c
}

// explain builds the explanation string: the confidence prefix, at most one
// reasoning clause chosen by first-match-wins priority, and always a
// key-players clause.
func explain(winner, loser catalog.TeamProfile, confidence int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s should win with %d%% confidence. ", winner.Name, confidence)

	switch {
	case winner.Strength > loser.Strength+strengthGapClause:
		fmt.Fprintf(&b, "Superior team strength (%d vs %d). ", winner.Strength, loser.Strength)
	case winner.RecentForm > loser.RecentForm+formGapClause:
		b.WriteString("Better recent form. ")
	case winner.Rank < loser.Rank:
		fmt.Fprintf(&b, "Higher ranking (%d vs %d). ", winner.Rank, loser.Rank)
	}

	if len(winner.KeyPlayers) >= 2 {
		fmt.Fprintf(&b, "Key players: %s, %s expected to lead the performance.", winner.KeyPlayers[0], winner.KeyPlayers[1])
	} else {
		fmt.Fprintf(&b, "Key player %s expected to perform well.", winner.KeyPlayers[0])
	}

	return b.String()
}

// lockedRand is the default seeded source, safe for concurrent requests.
type lockedRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func newLockedRand(seed int64) *lockedRand {
	return &lockedRand{rng: rand.New(rand.NewSource(seed))} //nolint:gosec // deterministic seed for reproducible behavior
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.Float64()
}
