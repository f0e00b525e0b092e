// Package intent routes free-form chat messages to the engagement tools.
// Detection is pattern based: the first matching rule wins, checked in the
// order quiz, prediction, rewards. Messages matching nothing fall through to
// general chat.
package intent

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/okian/grandstand/internal/domain/quiz"
	"github.com/okian/grandstand/internal/domain/rewards"
)

// Tool identifies which engagement tool a message should invoke.
type Tool string

const (
	ToolNone       Tool = ""
	ToolQuiz       Tool = "quiz_generator"
	ToolPrediction Tool = "prediction_engine"
	ToolRewards    Tool = "fan_reward_tracker"
)

// defaultTeam is used when a quiz is requested without a team and the user
// has no favorite set.
const defaultTeam = "Lakers"

// QuizParams are the extracted inputs for a quiz request.
type QuizParams struct {
	Team         string
	Difficulty   string
	NumQuestions int
}

// PredictionParams are the extracted inputs for a prediction request.
type PredictionParams struct {
	Team1     string
	Team2     string
	MatchType string
}

// Intent is the routing decision for one message.
type Intent struct {
	Tool         Tool
	Quiz         QuizParams
	Prediction   PredictionParams
	RewardAction rewards.Action
}

var quizPatterns = []*regexp.Regexp{
	regexp.MustCompile(`quiz\s*(?:me\s*)?(?:about|on)?\s*(?:the\s*)?(\w+)`),
	regexp.MustCompile(`trivia\s*(?:about|on)?\s*(?:the\s*)?(\w+)`),
	regexp.MustCompile(`test\s*(?:my\s*)?knowledge\s*(?:about|on)?\s*(?:the\s*)?(\w+)`),
	regexp.MustCompile(`questions?\s*about\s*(?:the\s*)?(\w+)`),
	regexp.MustCompile(`(?:start|take|give me)\s*(?:a\s*)?quiz`),
}

var predictionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`predict\s*(?:the\s*)?(?:outcome|result|winner|score)?\s*(?:of\s*)?(?:the\s*)?(\w+)\s*(?:vs?\.?|versus|against)\s*(?:the\s*)?(\w+)`),
	regexp.MustCompile(`who\s*(?:will|would|is going to)\s*win\s*(?:between\s*)?(?:the\s*)?(\w+)\s*(?:and|vs?\.?|versus)\s*(?:the\s*)?(\w+)`),
	regexp.MustCompile(`(\w+)\s*(?:vs?\.?|versus|against)\s*(\w+)\s*(?:prediction|who wins)`),
}

var rewardPatterns = []struct {
	re     *regexp.Regexp
	action rewards.Action
}{
	{regexp.MustCompile(`leaderboard|rankings?|top\s*(?:users?|fans?|players?)`), rewards.ActionGetLeaderboard},
	{regexp.MustCompile(`(?:my\s*)?(?:points?|score|rewards?|badges?|stats?|profile)`), rewards.ActionGetUserRewards},
	{regexp.MustCompile(`how\s*(?:am\s*)?i\s*doing|my\s*progress`), rewards.ActionGetUserRewards},
}

var questionCountPattern = regexp.MustCompile(`(\d+)\s*questions?`)

// Detect routes a message. favoriteTeam fills in the quiz team when the
// message names none.
func Detect(message, favoriteTeam string) Intent {
	lower := strings.ToLower(message)

	for _, re := range quizPatterns {
		m := re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		team := favoriteTeam
		if len(m) > 1 && m[1] != "" {
			team = capitalize(m[1])
		}
		if team == "" {
			team = defaultTeam
		}

		difficulty := quiz.DifficultyMedium
		if strings.Contains(lower, quiz.DifficultyEasy) {
			difficulty = quiz.DifficultyEasy
		} else if strings.Contains(lower, quiz.DifficultyHard) {
			difficulty = quiz.DifficultyHard
		}

		numQuestions := 5
		if nm := questionCountPattern.FindStringSubmatch(lower); nm != nil {
			if n, err := strconv.Atoi(nm[1]); err == nil {
				numQuestions = quiz.ClampQuestions(n)
			}
		}

		return Intent{
			Tool: ToolQuiz,
			Quiz: QuizParams{Team: team, Difficulty: difficulty, NumQuestions: numQuestions},
		}
	}

	for _, re := range predictionPatterns {
		m := re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		matchType := "regular"
		if strings.Contains(lower, "playoff") {
			matchType = "playoff"
		} else if strings.Contains(lower, "championship") || strings.Contains(lower, "final") {
			matchType = "championship"
		}
		return Intent{
			Tool: ToolPrediction,
			Prediction: PredictionParams{
				Team1:     capitalize(m[1]),
				Team2:     capitalize(m[2]),
				MatchType: matchType,
			},
		}
	}

	for _, rp := range rewardPatterns {
		if rp.re.MatchString(lower) {
			return Intent{Tool: ToolRewards, RewardAction: rp.action}
		}
	}

	return Intent{Tool: ToolNone}
}

// capitalize uppercases the first letter and lowercases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
