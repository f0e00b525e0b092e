package intent

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/grandstand/internal/domain/quiz"
	"github.com/okian/grandstand/internal/domain/rewards"
)

func TestDetectQuiz(t *testing.T) {
	Convey("Given quiz-flavored messages", t, func() {
		Convey("A team mentioned in the message wins over the favorite", func() {
			in := Detect("Quiz me about the lakers", "Arsenal")
			So(in.Tool, ShouldEqual, ToolQuiz)
			So(in.Quiz.Team, ShouldEqual, "Lakers")
			So(in.Quiz.Difficulty, ShouldEqual, quiz.DifficultyMedium)
			So(in.Quiz.NumQuestions, ShouldEqual, 5)
		})

		Convey("Difficulty and question count are extracted", func() {
			in := Detect("make it hard: give me 3 questions about the patriots", "")
			So(in.Tool, ShouldEqual, ToolQuiz)
			So(in.Quiz.Team, ShouldEqual, "Patriots")
			So(in.Quiz.Difficulty, ShouldEqual, quiz.DifficultyHard)
			So(in.Quiz.NumQuestions, ShouldEqual, 3)
		})

		Convey("A count not adjacent to the word questions keeps the default", func() {
			in := Detect("give me 3 hard questions about the patriots", "")
			So(in.Tool, ShouldEqual, ToolQuiz)
			So(in.Quiz.Team, ShouldEqual, "Patriots")
			So(in.Quiz.NumQuestions, ShouldEqual, 5)
		})

		Convey("A requested count is clamped to the valid range", func() {
			in := Detect("quiz me with 50 questions about chelsea", "")
			So(in.Quiz.NumQuestions, ShouldEqual, quiz.MaxQuestions)
		})

		Convey("A bare quiz request falls back to the favorite team", func() {
			in := Detect("start a quiz", "Celtics")
			So(in.Tool, ShouldEqual, ToolQuiz)
			So(in.Quiz.Team, ShouldEqual, "Celtics")
		})

		Convey("With no favorite team a default is used", func() {
			in := Detect("take a quiz", "")
			So(in.Quiz.Team, ShouldEqual, defaultTeam)
		})

		Convey("Trivia phrasing works too", func() {
			in := Detect("easy trivia about arsenal please", "")
			So(in.Tool, ShouldEqual, ToolQuiz)
			So(in.Quiz.Team, ShouldEqual, "Arsenal")
			So(in.Quiz.Difficulty, ShouldEqual, quiz.DifficultyEasy)
		})
	})
}

func TestDetectPrediction(t *testing.T) {
	Convey("Given prediction-flavored messages", t, func() {
		Convey("Both teams are extracted and capitalized", func() {
			in := Detect("predict lakers vs celtics", "")
			So(in.Tool, ShouldEqual, ToolPrediction)
			So(in.Prediction.Team1, ShouldEqual, "Lakers")
			So(in.Prediction.Team2, ShouldEqual, "Celtics")
			So(in.Prediction.MatchType, ShouldEqual, "regular")
		})

		Convey("Who-will-win phrasing matches", func() {
			in := Detect("who will win between the chiefs and cowboys?", "")
			So(in.Tool, ShouldEqual, ToolPrediction)
			So(in.Prediction.Team1, ShouldEqual, "Chiefs")
			So(in.Prediction.Team2, ShouldEqual, "Cowboys")
		})

		Convey("Playoff and championship qualifiers set the match type", func() {
			So(Detect("predict lakers vs celtics playoff game", "").Prediction.MatchType, ShouldEqual, "playoff")
			So(Detect("predict arsenal vs chelsea in the championship final", "").Prediction.MatchType, ShouldEqual, "championship")
		})
	})
}

func TestDetectRewards(t *testing.T) {
	Convey("Given reward-flavored messages", t, func() {
		Convey("Leaderboard requests map to the leaderboard action", func() {
			in := Detect("show me the leaderboard", "")
			So(in.Tool, ShouldEqual, ToolRewards)
			So(in.RewardAction, ShouldEqual, rewards.ActionGetLeaderboard)
		})

		Convey("Stats and badge requests map to user rewards", func() {
			for _, msg := range []string{"show my stats", "my badges", "what's my score"} {
				in := Detect(msg, "")
				So(in.Tool, ShouldEqual, ToolRewards)
				So(in.RewardAction, ShouldEqual, rewards.ActionGetUserRewards)
			}
		})

		Convey("Top fans phrasing hits the leaderboard", func() {
			in := Detect("who are the top fans", "")
			So(in.RewardAction, ShouldEqual, rewards.ActionGetLeaderboard)
		})
	})
}

func TestDetectNone(t *testing.T) {
	Convey("Messages matching nothing fall through to chat", t, func() {
		for _, msg := range []string{"hello there", "what a great game yesterday", "tell me a joke"} {
			So(Detect(msg, "").Tool, ShouldEqual, ToolNone)
		}
	})
}
