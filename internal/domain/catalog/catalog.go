// Package catalog provides the static team lookup used by the prediction engine.
//
// The catalog is built once at construction and never mutated afterwards;
// lookups return copies so callers cannot alter the shared table.
package catalog

import "strings"

// Default profile values for unknown teams.
const (
	defaultRank     = 50
	defaultStrength = 50
	defaultForm     = 5
)

// TeamProfile holds the attributes the prediction engine scores on.
type TeamProfile struct {
	Name string
	// Rank is the team's position, 1 = best.
	Rank int
	// Strength is an overall rating in 0-100.
	Strength int
	// RecentForm rates the last stretch of matches in 0-10.
	RecentForm int
	// KeyPlayers is ordered by importance and always has at least one entry.
	KeyPlayers []string
}

// Catalog is an immutable name -> profile table.
type Catalog struct {
	byName map[string]TeamProfile
}

// New builds the catalog from the built-in team table.
func New() *Catalog {
	c := &Catalog{byName: make(map[string]TeamProfile, len(teams))}
	for _, t := range teams {
		c.byName[strings.ToLower(t.Name)] = t
	}
	return c
}

// Lookup resolves a team name case-insensitively. Unknown names return the
// documented default profile and false; this is never an error condition.
func (c *Catalog) Lookup(name string) (TeamProfile, bool) {
	t, ok := c.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return DefaultProfile(name), false
	}
	return copyProfile(t), true
}

// DefaultProfile returns the fallback profile substituted for unknown teams.
func DefaultProfile(name string) TeamProfile {
	return TeamProfile{
		Name:       name,
		Rank:       defaultRank,
		Strength:   defaultStrength,
		RecentForm: defaultForm,
		KeyPlayers: []string{"Player 1"},
	}
}

// Size returns the number of known teams.
func (c *Catalog) Size() int {
	return len(c.byName)
}

func copyProfile(t TeamProfile) TeamProfile {
	players := make([]string, len(t.KeyPlayers))
	copy(players, t.KeyPlayers)
	t.KeyPlayers = players
	return t
}
