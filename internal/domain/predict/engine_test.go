package predict_test

import (
	"context"
	"strings"
	"testing"

	"github.com/okian/grandstand/internal/domain/catalog"
	"github.com/okian/grandstand/internal/domain/predict"
	. "github.com/smartystreets/goconvey/convey"
)

// fixedRand pins the close-match draw.
type fixedRand struct{ v float64 }

func (f fixedRand) Float64() float64 { return f.v }

func TestConfidenceBounds(t *testing.T) {
	Convey("Given an engine over the built-in catalog", t, func() {
		e := predict.New(catalog.New())
		ctx := context.Background()

		Convey("Then confidence stays within [0, 95] for any pairing", func() {
			pairs := [][2]string{
				{"Arsenal", "Everton"},
				{"Arsenal", "Nowhere FC"},
				{"Nowhere FC", "Elsewhere United"},
				{"Seattle Seahawks", "Villarreal"},
				{"Boston Celtics", "Boston Celtics"},
				{"Green Bay Packers", "Oklahoma City Thunder"},
			}
			for _, p := range pairs {
				r := e.Predict(ctx, p[0], p[1])
				So(r.Confidence, ShouldBeBetweenOrEqual, 0, 95)
				So(r.Winner, ShouldBeIn, p[0], p[1])
				So(r.Loser, ShouldBeIn, p[0], p[1])
				So(r.Explanation, ShouldNotBeEmpty)
			}
		})
	})
}

func TestDeterministicBranch(t *testing.T) {
	Convey("Given a lopsided pairing (known team vs default profile)", t, func() {
		e := predict.New(catalog.New())
		ctx := context.Background()

		Convey("When predicting in both argument orders", func() {
			ab := e.Predict(ctx, "Arsenal", "Nowhere FC")
			ba := e.Predict(ctx, "Nowhere FC", "Arsenal")

			Convey("Then the winner is the same team regardless of order", func() {
				So(ab.Winner, ShouldEqual, "Arsenal")
				So(ba.Winner, ShouldEqual, "Arsenal")
				So(ab.Loser, ShouldEqual, "Nowhere FC")
				So(ab.Confidence, ShouldEqual, ba.Confidence)
			})

			Convey("And strengths are reported for both sides", func() {
				So(ab.WinnerStrength, ShouldEqual, 96)
				So(ab.LoserStrength, ShouldEqual, 50)
			})

			Convey("And the strength-gap clause is chosen", func() {
				So(ab.Explanation, ShouldStartWith, "Arsenal should win with")
				So(ab.Explanation, ShouldContainSubstring, "Superior team strength (96 vs 50)")
				So(ab.Explanation, ShouldContainSubstring, "Key players: Bukayo Saka, Martin Ødegaard")
			})
		})
	})
}

func TestCloseMatchBranch(t *testing.T) {
	Convey("Given two identical profiles", t, func() {
		ctx := context.Background()

		Convey("When the pinned draw favors team1", func() {
			e := predict.New(catalog.New(), predict.WithRand(fixedRand{v: 0.49}))
			r := e.Predict(ctx, "Nowhere FC", "Elsewhere United")

			Convey("Then team1 wins at exactly 50% confidence", func() {
				So(r.Winner, ShouldEqual, "Nowhere FC")
				So(r.Confidence, ShouldEqual, 50)
			})
		})

		Convey("When the pinned draw favors team2", func() {
			e := predict.New(catalog.New(), predict.WithRand(fixedRand{v: 0.51}))
			r := e.Predict(ctx, "Nowhere FC", "Elsewhere United")

			Convey("Then team2 wins at exactly 50% confidence", func() {
				So(r.Winner, ShouldEqual, "Elsewhere United")
				So(r.Confidence, ShouldEqual, 50)
			})
		})
	})
}

func TestExplanationPriority(t *testing.T) {
	Convey("Given pairings that select each explanation clause", t, func() {
		ctx := context.Background()

		Convey("A form gap beyond one picks the form clause", func() {
			// Chelsea (85/8/12) over Tottenham (84/6/13): strength gap 1, form gap 2.
			e := predict.New(catalog.New(), predict.WithRand(fixedRand{v: 0.0}))
			r := e.Predict(ctx, "Chelsea", "Tottenham")
			So(r.Winner, ShouldEqual, "Chelsea")
			So(r.Explanation, ShouldContainSubstring, "Better recent form.")
			So(r.Explanation, ShouldNotContainSubstring, "Superior team strength")
		})

		Convey("A better rank alone picks the rank clause", func() {
			// Arsenal (96/10/1) over Barcelona (95/9/2): strength gap 1, form gap 1.
			e := predict.New(catalog.New(), predict.WithRand(fixedRand{v: 0.0}))
			r := e.Predict(ctx, "Arsenal", "Barcelona")
			So(r.Winner, ShouldEqual, "Arsenal")
			So(r.Explanation, ShouldContainSubstring, "Higher ranking (1 vs 2).")
		})

		Convey("No middle clause when the winner trails on all three", func() {
			// Force Barcelona over Arsenal through the close-match draw.
			e := predict.New(catalog.New(), predict.WithRand(fixedRand{v: 0.99}))
			r := e.Predict(ctx, "Arsenal", "Barcelona")
			So(r.Winner, ShouldEqual, "Barcelona")
			So(r.Explanation, ShouldNotContainSubstring, "Superior team strength")
			So(r.Explanation, ShouldNotContainSubstring, "Better recent form")
			So(r.Explanation, ShouldNotContainSubstring, "Higher ranking")
			So(strings.Count(r.Explanation, "Key players:"), ShouldEqual, 1)
		})
	})
}
