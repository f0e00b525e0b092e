package config_test

import (
	"context"
	"os"
	"testing"

	"github.com/okian/grandstand/internal/config"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDefaults(t *testing.T) {
	Convey("Given a default Config", t, func() {
		c := config.New()

		Convey("Then sane defaults are present", func() {
			So(c.Addr, ShouldEqual, ":9080")
			So(c.LogLevel, ShouldEqual, "info")
			So(c.DBPath, ShouldNotBeEmpty)
			So(c.MaxLeaderboardLimit, ShouldEqual, 100)
			So(c.DefaultQuizQuestions, ShouldEqual, 5)
			So(c.MaxQuizQuestions, ShouldEqual, 10)
			So(c.CompletionTimeoutMS, ShouldBeGreaterThan, 0)
		})

		Convey("And the completion key defaults to empty (disabled)", func() {
			So(c.CompletionKey, ShouldBeEmpty)
		})
	})
}

func TestLoadFromEnv(t *testing.T) {
	Convey("Given env overrides with the GRANDSTAND_ prefix", t, func() {
		t.Setenv("GRANDSTAND_ADDR", ":7070")
		t.Setenv("GRANDSTAND_LOG_LEVEL", "debug")
		t.Setenv("GRANDSTAND_DB_PATH", "/tmp/fans.db")
		t.Setenv("GRANDSTAND_COMPLETION_KEY", "sk-test")

		Convey("When loading", func() {
			cfg, err := config.Load(context.Background())

			Convey("Then env values win over defaults", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":7070")
				So(cfg.LogLevel, ShouldEqual, "debug")
				So(cfg.DBPath, ShouldEqual, "/tmp/fans.db")
				So(cfg.CompletionKey, ShouldEqual, "sk-test")
				// untouched defaults survive
				So(cfg.MaxQuizQuestions, ShouldEqual, 10)
			})
		})
	})
}

func TestLoadValidation(t *testing.T) {
	Convey("Given an invalid addr override", t, func() {
		t.Setenv("GRANDSTAND_ADDR", "")

		Convey("When loading", func() {
			_, err := config.Load(context.Background())

			Convey("Then validation fails with the sentinel kind", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, config.ErrInvalidConfig.Error())
			})
		})
	})
}

func TestLoadFromFile(t *testing.T) {
	Convey("Given a YAML config file", t, func() {
		f, err := os.CreateTemp(t.TempDir(), "cfg-*.yaml")
		So(err, ShouldBeNil)
		_, err = f.WriteString("addr: \":6060\"\nmax_leaderboard_limit: 25\n")
		So(err, ShouldBeNil)
		So(f.Close(), ShouldBeNil)
		t.Setenv("GRANDSTAND_CONFIG", f.Name())

		Convey("When loading", func() {
			cfg, err := config.Load(context.Background())

			Convey("Then file values layer over defaults", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":6060")
				So(cfg.MaxLeaderboardLimit, ShouldEqual, 25)
			})
		})
	})
}
