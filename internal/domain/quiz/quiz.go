// Package quiz holds the trivia quiz model, the built-in question bank and
// answer grading.
package quiz

import (
	"fmt"
	"strings"
)

// Question count and difficulty bounds.
const (
	MinQuestions = 1
	MaxQuestions = 10

	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Question is one multiple-choice item. Options carry their letter prefix
// ("A) ...") and CorrectAnswer is the bare letter.
type Question struct {
	ID            int      `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

// Quiz is a generated set of questions for one team.
type Quiz struct {
	Team       string     `json:"team"`
	Difficulty string     `json:"difficulty"`
	Questions  []Question `json:"questions"`
	// Note is set when the quiz came from the built-in bank rather than a
	// completion backend.
	Note string `json:"note,omitempty"`
}

// QuestionResult is the graded outcome of one question.
type QuestionResult struct {
	QuestionID    int    `json:"question_id"`
	Question      string `json:"question"`
	UserAnswer    string `json:"user_answer"`
	CorrectAnswer string `json:"correct_answer"`
	IsCorrect     bool   `json:"is_correct"`
	Explanation   string `json:"explanation"`
}

// Graded is the result of grading a whole quiz.
type Graded struct {
	Score      int              `json:"score"`
	Total      int              `json:"total"`
	Percentage float64          `json:"percentage"`
	Results    []QuestionResult `json:"results"`
}

// Perfect reports whether every question was answered correctly.
func (g Graded) Perfect() bool {
	return g.Total > 0 && g.Score == g.Total
}

// ClampQuestions bounds a requested question count to the valid range.
func ClampQuestions(n int) int {
	if n < MinQuestions {
		return MinQuestions
	}
	if n > MaxQuestions {
		return MaxQuestions
	}
	return n
}

// NormalizeDifficulty maps free-form input onto the difficulty levels,
// defaulting to medium.
func NormalizeDifficulty(d string) string {
	switch strings.ToLower(strings.TrimSpace(d)) {
	case DifficultyEasy:
		return DifficultyEasy
	case DifficultyHard:
		return DifficultyHard
	default:
		return DifficultyMedium
	}
}

// Fallback builds a quiz from the built-in question bank. The bank holds
// generic questions templated with the team name, so any team gets a
// playable quiz when no completion backend is available.
func Fallback(team, difficulty string, numQuestions int) Quiz {
	numQuestions = ClampQuestions(numQuestions)

	bank := []Question{
		{
			ID:            1,
			Question:      fmt.Sprintf("What league does the %s compete in?", team),
			Options:       []string{"A) NFL", "B) NBA", "C) MLB", "D) NHL"},
			CorrectAnswer: "B",
			Explanation:   "This depends on the specific team.",
		},
		{
			ID:            2,
			Question:      fmt.Sprintf("In what city is the %s based?", team),
			Options:       []string{"A) New York", "B) Los Angeles", "C) Chicago", "D) It varies"},
			CorrectAnswer: "D",
			Explanation:   "The home city depends on the specific team.",
		},
		{
			ID:            3,
			Question:      fmt.Sprintf("What are the typical team colors of the %s?", team),
			Options:       []string{"A) Red and White", "B) Blue and Gold", "C) Green and Yellow", "D) Team specific"},
			CorrectAnswer: "D",
			Explanation:   "Team colors vary by organization.",
		},
		{
			ID:            4,
			Question:      fmt.Sprintf("When was the %s franchise established?", team),
			Options:       []string{"A) Before 1950", "B) 1950-1975", "C) 1976-2000", "D) After 2000"},
			CorrectAnswer: "B",
			Explanation:   "Most major sports franchises were established in this era.",
		},
		{
			ID:            5,
			Question:      fmt.Sprintf("How many championships has the %s won?", team),
			Options:       []string{"A) 0", "B) 1-5", "C) 6-10", "D) More than 10"},
			CorrectAnswer: "B",
			Explanation:   "Championship counts vary by team.",
		},
	}
	if numQuestions < len(bank) {
		bank = bank[:numQuestions]
	}

	return Quiz{
		Team:       team,
		Difficulty: NormalizeDifficulty(difficulty),
		Questions:  bank,
		Note:       "Using fallback questions - configure a completion API key for AI-generated quizzes",
	}
}

// Grade scores submitted answers against a quiz. Answers are keyed by
// question id and compared to the correct letter case-insensitively. Missing
// answers count as wrong.
func Grade(q Quiz, answers map[int]string) Graded {
	g := Graded{
		Total:   len(q.Questions),
		Results: make([]QuestionResult, 0, len(q.Questions)),
	}
	for _, question := range q.Questions {
		userAnswer := strings.ToUpper(strings.TrimSpace(answers[question.ID]))
		correct := strings.ToUpper(strings.TrimSpace(question.CorrectAnswer))
		isCorrect := userAnswer != "" && userAnswer == correct
		if isCorrect {
			g.Score++
		}
		g.Results = append(g.Results, QuestionResult{
			QuestionID:    question.ID,
			Question:      question.Question,
			UserAnswer:    userAnswer,
			CorrectAnswer: correct,
			IsCorrect:     isCorrect,
			Explanation:   question.Explanation,
		})
	}
	if g.Total > 0 {
		g.Percentage = float64(g.Score) / float64(g.Total) * 100
	}
	return g
}
