package service

import (
	"fmt"
	"strings"

	"github.com/okian/grandstand/internal/domain/quiz"
	"github.com/okian/grandstand/internal/domain/rewards"
)

// formatQuiz renders a quiz as a chat message.
func formatQuiz(q quiz.Quiz) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Here's a %s quiz about the %s!\n\n", q.Difficulty, q.Team)
	for i, question := range q.Questions {
		fmt.Fprintf(&b, "**Question %d:** %s\n", i+1, question.Question)
		for _, opt := range question.Options {
			fmt.Fprintf(&b, "  %s\n", opt)
		}
		b.WriteString("\n")
	}
	b.WriteString("Reply with your answers (e.g., '1-A, 2-B, 3-C') when you're ready!")
	return b.String()
}

// formatPrediction renders a prediction as a chat message.
func formatPrediction(resp PredictionResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**Prediction for %s**\n\n", resp.Match)
	fmt.Fprintf(&b, "**Winner:** %s\n", resp.Prediction.Winner)
	fmt.Fprintf(&b, "**Confidence:** %d%%\n\n", resp.Prediction.Confidence)
	fmt.Fprintf(&b, "**Analysis:** %s", resp.Prediction.Explanation)
	if resp.Note != "" {
		fmt.Fprintf(&b, "\n\n_%s_", resp.Note)
	}
	return b.String()
}

// formatRewardOutcome renders a reward action for chat.
func formatRewardOutcome(out rewards.Outcome) string {
	switch out.Action {
	case rewards.ActionGetLeaderboard:
		var b strings.Builder
		b.WriteString("**Fan Leaderboard**\n\n")
		for _, e := range out.Leaderboard {
			marker := ""
			if e.IsCurrentUser {
				marker = " (You)"
			}
			fmt.Fprintf(&b, "%d. %s%s - %d pts (%d badges)\n", e.Rank, e.Username, marker, e.Points, e.BadgeCount)
		}
		return b.String()

	case rewards.ActionGetUserRewards:
		var b strings.Builder
		b.WriteString("**Your Fan Profile**\n\n")
		fmt.Fprintf(&b, "**Username:** %s\n", out.Username)
		fmt.Fprintf(&b, "**Total Points:** %d\n", out.Points)
		if out.UserRank != nil {
			fmt.Fprintf(&b, "**Rank:** #%d\n\n", *out.UserRank)
		} else {
			b.WriteString("**Rank:** N/A\n\n")
		}

		if len(out.Badges) > 0 {
			fmt.Fprintf(&b, "**Badges Earned (%d):**\n", len(out.Badges))
			for _, badge := range out.Badges {
				fmt.Fprintf(&b, "  - %s: %s\n", badge.Name, badge.Description)
			}
		} else {
			b.WriteString("**Badges:** None yet - keep playing to earn badges!\n")
		}

		if out.Stats != nil {
			b.WriteString("\n**Quiz Stats:**\n")
			fmt.Fprintf(&b, "  - Quizzes Completed: %d\n", out.Stats.Quizzes.TotalQuizzes)
			fmt.Fprintf(&b, "  - Total Correct: %d\n", out.Stats.Quizzes.TotalCorrect)
			fmt.Fprintf(&b, "  - Average Score: %.1f%%\n", out.Stats.Quizzes.AvgScorePct)
			b.WriteString("\n**Prediction Stats:**\n")
			fmt.Fprintf(&b, "  - Total Predictions: %d\n", out.Stats.Predictions.TotalPredictions)
			fmt.Fprintf(&b, "  - Correct Predictions: %d\n", out.Stats.Predictions.CorrectPredictions)
		}

		if out.NextBadge != nil {
			fmt.Fprintf(&b, "\n**Next Badge:** %s - %s", out.NextBadge.Badge.Name, out.NextBadge.Progress)
		}
		return b.String()

	case rewards.ActionAwardQuizPoints:
		var b strings.Builder
		b.WriteString("**Quiz Complete!**\n\n")
		fmt.Fprintf(&b, "Points Earned: +%d\n", out.PointsEarned)
		fmt.Fprintf(&b, "Total Points: %d\n", out.TotalPoints)
		if len(out.NewBadges) > 0 {
			b.WriteString("\n**New Badges Unlocked!**\n")
			for _, badge := range out.NewBadges {
				fmt.Fprintf(&b, "  - %s: %s\n", badge.Name, badge.Description)
			}
		}
		return b.String()
	}

	return "Reward information updated!"
}
