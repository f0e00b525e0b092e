package completion

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/grandstand/pkg/logger"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func completionResponse(content string) string {
	body, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	})
	return string(body)
}

func TestComplete(t *testing.T) {
	Convey("Given a completion endpoint", t, func() {
		var gotAuth string
		var gotBody apiRequest
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			_ = json.NewDecoder(r.Body).Decode(&gotBody)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(completionResponse("hello fan")))
		}))
		defer srv.Close()

		Convey("When a request with a system prompt is sent", func() {
			c := New(srv.URL, "test-key", WithModel("test/model"))
			out, err := c.Complete(context.Background(), Request{
				System:   "be brief",
				Messages: []Message{{Role: "user", Content: "hi"}},
			})

			Convey("Then the content comes back and the wire shape is right", func() {
				So(err, ShouldBeNil)
				So(out, ShouldEqual, "hello fan")
				So(gotAuth, ShouldEqual, "Bearer test-key")
				So(gotBody.Model, ShouldEqual, "test/model")
				So(gotBody.Messages, ShouldHaveLength, 2)
				So(gotBody.Messages[0].Role, ShouldEqual, "system")
				So(gotBody.Messages[0].Content, ShouldEqual, "be brief")
				So(gotBody.Temperature, ShouldEqual, defaultTemperature)
				So(gotBody.MaxTokens, ShouldEqual, defaultMaxTokens)
			})
		})

		Convey("When per-request settings are given", func() {
			c := New(srv.URL, "test-key")
			_, err := c.Complete(context.Background(), Request{
				Messages:    []Message{{Role: "user", Content: "hi"}},
				Temperature: ChatTemperature,
				MaxTokens:   ChatMaxTokens,
			})

			So(err, ShouldBeNil)
			So(gotBody.Temperature, ShouldEqual, ChatTemperature)
			So(gotBody.MaxTokens, ShouldEqual, ChatMaxTokens)
		})
	})
}

func TestCompleteFailures(t *testing.T) {
	Convey("Given clients against misbehaving endpoints", t, func() {
		Convey("A client without an API key fails fast", func() {
			c := New("http://unused", "")
			So(c.Enabled(), ShouldBeFalse)
			_, err := c.Complete(context.Background(), Request{})
			So(err, ShouldEqual, ErrDisabled)
		})

		Convey("A non-200 status surfaces as ErrBadStatus", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
			}))
			defer srv.Close()

			c := New(srv.URL, "key")
			_, err := c.Complete(context.Background(), Request{Messages: []Message{{Role: "user", Content: "hi"}}})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "429")
		})

		Convey("An empty choices list surfaces as ErrEmptyResponse", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"choices":[]}`))
			}))
			defer srv.Close()

			c := New(srv.URL, "key")
			_, err := c.Complete(context.Background(), Request{Messages: []Message{{Role: "user", Content: "hi"}}})
			So(err, ShouldEqual, ErrEmptyResponse)
		})

		Convey("An unreachable endpoint surfaces a transport error", func() {
			c := New("http://127.0.0.1:1", "key")
			_, err := c.Complete(context.Background(), Request{Messages: []Message{{Role: "user", Content: "hi"}}})
			So(err, ShouldNotBeNil)
		})
	})
}

func TestExtractJSON(t *testing.T) {
	Convey("Given model output in various wrappings", t, func() {
		type payload struct {
			Winner     string `json:"winner"`
			Confidence int    `json:"confidence"`
		}

		Convey("Clean JSON parses directly", func() {
			var p payload
			So(ExtractJSON(`{"winner":"Arsenal","confidence":80}`, &p), ShouldBeNil)
			So(p.Winner, ShouldEqual, "Arsenal")
			So(p.Confidence, ShouldEqual, 80)
		})

		Convey("JSON wrapped in prose is sliced out", func() {
			var p payload
			content := "Sure! Here is the prediction:\n```json\n{\"winner\":\"Chelsea\",\"confidence\":61}\n```\nEnjoy."
			So(ExtractJSON(content, &p), ShouldBeNil)
			So(p.Winner, ShouldEqual, "Chelsea")
		})

		Convey("Output without any object fails with ErrNoJSON", func() {
			var p payload
			So(ExtractJSON("I cannot answer that.", &p), ShouldEqual, ErrNoJSON)
		})

		Convey("A malformed object fails with ErrNoJSON", func() {
			var p payload
			So(ExtractJSON("{broken", &p), ShouldEqual, ErrNoJSON)
		})
	})
}
