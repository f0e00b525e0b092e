package logger_test

import (
	"context"
	"errors"
	"testing"

	"github.com/okian/grandstand/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLoggerInit(t *testing.T) {
	Convey("Given an initialized global logger", t, func() {
		So(logger.Init(), ShouldBeNil)

		Convey("Then Get returns a usable logger", func() {
			l := logger.Get()
			So(l, ShouldNotBeNil)
			So(func() {
				l.Info(context.Background(), "hello", logger.String("k", "v"))
			}, ShouldNotPanic)
		})

		Convey("And Named returns a scoped logger", func() {
			l := logger.Named("rewards")
			So(l, ShouldNotBeNil)
			So(func() {
				l.Debug(context.Background(), "scoped", logger.Int("n", 1))
			}, ShouldNotPanic)
		})

		Convey("And Sync never fails", func() {
			So(logger.Sync(), ShouldBeNil)
		})
	})
}

func TestSetLevelString(t *testing.T) {
	Convey("Given the global level setter", t, func() {
		So(logger.Init(), ShouldBeNil)

		Convey("Then known levels are accepted", func() {
			for _, lvl := range []string{"debug", "info", "warn", "warning", "error", ""} {
				So(logger.SetLevelString(lvl), ShouldBeNil)
			}
		})

		Convey("And unknown levels are rejected", func() {
			So(logger.SetLevelString("verbose"), ShouldNotBeNil)
		})
	})
}

func TestFieldConstructors(t *testing.T) {
	Convey("Given the field constructors", t, func() {
		So(logger.String("a", "b").Key, ShouldEqual, "a")
		So(logger.Int("n", 3).Value, ShouldEqual, 3)
		So(logger.Int64("n64", 4).Value, ShouldEqual, int64(4))
		So(logger.Float64("f", 1.5).Value, ShouldEqual, 1.5)
		So(logger.Bool("ok", true).Value, ShouldEqual, true)
		So(logger.Error(errors.New("boom")).Key, ShouldEqual, "error")
	})
}
