package completion

import (
	"fmt"
	"strings"

	"github.com/okian/grandstand/internal/domain/catalog"
)

// Per-use generation settings. Quizzes need room for a full question set;
// chat stays short and a little warmer.
const (
	QuizMaxTokens = 2000

	PredictionMaxTokens = 500

	ChatTemperature = 0.8
	ChatMaxTokens   = 300
)

// System prompts per tool.
const (
	QuizSystemPrompt = "You are a sports trivia expert. Generate quiz questions in valid JSON format only."

	PredictionSystemPrompt = "You are a sports analyst. Provide match predictions in JSON format."
)

// QuizPrompt asks for a structured quiz about a team.
func QuizPrompt(team, difficulty string, numQuestions int) string {
	return fmt.Sprintf(`Generate %d sports trivia questions about the %s.
Difficulty level: %s

Return ONLY a valid JSON object with this exact structure:
{
    "team": "%s",
    "difficulty": "%s",
    "questions": [
        {
            "id": 1,
            "question": "Question text here?",
            "options": ["A) Option 1", "B) Option 2", "C) Option 3", "D) Option 4"],
            "correct_answer": "A",
            "explanation": "Brief explanation of the answer"
        }
    ]
}

Make questions appropriate for %s difficulty:
- easy: Basic facts any casual fan would know
- medium: Facts a regular fan would know
- hard: Detailed statistics or historical facts

Ensure all questions have exactly 4 options labeled A, B, C, D.`,
		numQuestions, team, difficulty, team, difficulty, difficulty)
}

// PredictionPrompt asks for a structured match prediction using the catalog
// profiles of both teams.
func PredictionPrompt(team1, team2, matchType string, p1, p2 catalog.TeamProfile) string {
	return fmt.Sprintf(`Predict the outcome of a %s match between %s and %s.

Team Statistics:
%s
%s

Return ONLY a valid JSON object with this exact structure:
{
    "winner": "Team name",
    "confidence": 75,
    "explanation": "2-3 sentence explanation of the prediction"
}

The winner must be exactly "%s" or "%s" and confidence an integer from 0 to 100.

Consider:
1. League ranking
2. Team strength and recent form
3. Match type importance
4. Historical matchups (general sports knowledge)`,
		matchType, team1, team2,
		profileLine(team1, p1), profileLine(team2, p2),
		team1, team2)
}

func profileLine(team string, p catalog.TeamProfile) string {
	return fmt.Sprintf("%s: rank %d, strength %d/100, recent form %d/10, key players: %s",
		team, p.Rank, p.Strength, p.RecentForm, strings.Join(p.KeyPlayers, ", "))
}

// ChatSystemPrompt frames the general-chat assistant around the current user.
func ChatSystemPrompt(username, favoriteTeam string, points int) string {
	if username == "" {
		username = "Guest"
	}
	if favoriteTeam == "" {
		favoriteTeam = "Not set"
	}
	return fmt.Sprintf(`You are a friendly AI sports fan engagement assistant. You help fans with:
1. Sports trivia quizzes (say "quiz me about [team]")
2. Match predictions (say "predict [team1] vs [team2]")
3. Tracking rewards and leaderboards (say "show my stats" or "leaderboard")

Current user: %s
Favorite team: %s
Points: %d

Be enthusiastic about sports but keep responses concise. If the user seems to want a quiz, prediction, or to see their stats, guide them to use those features.`,
		username, favoriteTeam, points)
}
