package rewards

// Badge describes an achievement a user can earn. The catalog below is the
// complete set; grants reference entries here by id.
type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// PointBadge pairs a point-threshold badge with the total required to earn it.
type PointBadge struct {
	Badge
	Threshold int
}

const (
	BadgeQuizRookie     = "quiz_rookie"
	BadgeQuizMaster     = "quiz_master"
	BadgePredictionPro  = "prediction_pro"
	BadgeStreakStarter  = "streak_starter"
	BadgeTeamExpert     = "team_expert"
	BadgePointCollector = "point_collector"
	BadgeSuperFan       = "super_fan"
	BadgeLegend         = "legend"
)

var badgeCatalog = []Badge{
	{ID: BadgeQuizRookie, Name: "Quiz Rookie", Description: "Complete your first quiz", Icon: "🎯"},
	{ID: BadgeQuizMaster, Name: "Quiz Master", Description: "Get a perfect score on a quiz", Icon: "🏆"},
	{ID: BadgePredictionPro, Name: "Prediction Pro", Description: "Make 5 match predictions", Icon: "🔮"},
	{ID: BadgeStreakStarter, Name: "Streak Starter", Description: "Answer 3 questions correctly in a row", Icon: "🔥"},
	{ID: BadgeTeamExpert, Name: "Team Expert", Description: "Complete 5 quizzes about your favorite team", Icon: "⭐"},
	{ID: BadgePointCollector, Name: "Point Collector", Description: "Earn 100 total points", Icon: "💰"},
	{ID: BadgeSuperFan, Name: "Super Fan", Description: "Earn 500 total points", Icon: "🌟"},
	{ID: BadgeLegend, Name: "Legend", Description: "Earn 1000 total points", Icon: "👑"},
}

// pointBadges lists threshold badges in ascending order. Award checks walk
// this slice in order so a large enough balance earns every tier at once.
var pointBadges = []PointBadge{
	{Badge: mustBadge(BadgePointCollector), Threshold: 100},
	{Badge: mustBadge(BadgeSuperFan), Threshold: 500},
	{Badge: mustBadge(BadgeLegend), Threshold: 1000},
}

// Catalog returns a copy of the full badge catalog in declaration order.
func Catalog() []Badge {
	out := make([]Badge, len(badgeCatalog))
	copy(out, badgeCatalog)
	return out
}

// BadgeByID looks up a catalog entry.
func BadgeByID(id string) (Badge, bool) {
	for _, b := range badgeCatalog {
		if b.ID == id {
			return b, true
		}
	}
	return Badge{}, false
}

func mustBadge(id string) Badge {
	b, ok := BadgeByID(id)
	if !ok {
		panic("rewards: unknown badge id " + id)
	}
	return b
}
