package scoring_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/okian/chefcontest/internal/domain/model"
	scoring "github.com/okian/chefcontest/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func reply(text string, err error) scoring.CompleterFunc {
	return func(context.Context, string) (string, error) { return text, err }
}

func TestEvaluator_Evaluate(t *testing.T) {
	Convey("Given an evaluator", t, func() {
		ctx := context.Background()

		Convey("When the completer answers with JSON", func() {
			var prompt string
			ev := scoring.NewEvaluator(scoring.CompleterFunc(func(_ context.Context, p string) (string, error) {
				prompt = p
				return `{"score": 9, "reason": "Memorable"}`, nil
			}))
			res := ev.Evaluate(ctx, "Thyme Traveller Stew")

			Convey("Then the parsed result is returned and the prompt names the recipe", func() {
				So(res, ShouldResemble, model.ScoreResult{Score: 9, Reason: "Memorable"})
				So(prompt, ShouldContainSubstring, `"Thyme Traveller Stew"`)
				So(prompt, ShouldContainSubstring, "'score' and 'reason'")
			})
		})

		Convey("When the completer fails", func() {
			ev := scoring.NewEvaluator(reply("", errors.New("connection reset")))
			res := ev.Evaluate(ctx, "x")

			Convey("Then an AI error result is returned", func() {
				So(res, ShouldResemble, model.ScoreResult{Score: 0, Reason: "AI error: connection reset"})
			})
		})

		Convey("When the completer returns blank text", func() {
			res := scoring.NewEvaluator(reply("  \n", nil)).Evaluate(ctx, "x")

			Convey("Then it is reported as an empty response", func() {
				So(res.Score, ShouldEqual, 0)
				So(res.Reason, ShouldEqual, "AI error: empty response")
			})
		})

		Convey("When the completer panics", func() {
			ev := scoring.NewEvaluator(scoring.CompleterFunc(func(context.Context, string) (string, error) {
				panic("nil candidate")
			}))

			Convey("Then the panic is folded into the reason", func() {
				var res model.ScoreResult
				So(func() { res = ev.Evaluate(ctx, "x") }, ShouldNotPanic)
				So(res.Score, ShouldEqual, 0)
				So(res.Reason, ShouldStartWith, "AI error: ")
				So(res.Reason, ShouldContainSubstring, "nil candidate")
			})
		})

		Convey("When no completer is configured", func() {
			res := scoring.NewEvaluator(nil).Evaluate(ctx, "x")
			So(res.Reason, ShouldEqual, "AI error: "+scoring.ErrNoCompleter.Error())
		})

		Convey("When a timeout is configured and the completer blocks", func() {
			ev := scoring.NewEvaluator(scoring.CompleterFunc(func(ctx context.Context, _ string) (string, error) {
				<-ctx.Done()
				return "", ctx.Err()
			}), scoring.WithTimeout(10*time.Millisecond))
			res := ev.Evaluate(ctx, "x")

			Convey("Then the deadline surfaces as an AI error", func() {
				So(res.Score, ShouldEqual, 0)
				So(res.Reason, ShouldContainSubstring, context.DeadlineExceeded.Error())
			})
		})
	})
}

func TestEvaluator_Suggest(t *testing.T) {
	Convey("Given an evaluator for the leftover challenge", t, func() {
		ctx := context.Background()

		Convey("When the reply is a fenced JSON list", func() {
			var prompt string
			ev := scoring.NewEvaluator(scoring.CompleterFunc(func(_ context.Context, p string) (string, error) {
				prompt = p
				return "```json\n[{\"name\": \"Rice Cakes\", \"recipe\": \"Fry the rice.\"}, {\"name\": \"Bean Dip\", \"recipe\": \"Mash.\"}]\n```", nil
			}))
			out := ev.Suggest(ctx, []string{"rice", "beans"})

			Convey("Then each suggestion is decoded", func() {
				So(out, ShouldResemble, []model.Suggestion{
					{Name: "Rice Cakes", Recipe: "Fry the rice."},
					{Name: "Bean Dip", Recipe: "Mash."},
				})
				So(prompt, ShouldContainSubstring, "rice, beans")
			})
		})

		Convey("When the reply is not a list", func() {
			out := scoring.NewEvaluator(reply("Try fried rice!", nil)).Suggest(ctx, []string{"rice"})

			Convey("Then a single error suggestion is returned", func() {
				So(len(out), ShouldEqual, 1)
				So(out[0].Name, ShouldEqual, "Error")
				So(strings.HasPrefix(out[0].Recipe, "decode suggestions"), ShouldBeTrue)
			})
		})

		Convey("When the completer fails", func() {
			out := scoring.NewEvaluator(reply("", errors.New("quota exceeded"))).Suggest(ctx, []string{"rice"})
			So(out, ShouldResemble, []model.Suggestion{{Name: "Error", Recipe: "quota exceeded"}})
		})

		Convey("When the list is empty", func() {
			_, err := scoring.ParseSuggestions("[]")
			So(errors.Is(err, scoring.ErrEmptyResponse), ShouldBeTrue)
		})
	})
}
