package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/okian/chefcontest/internal/adapters/ledger"
	service "github.com/okian/chefcontest/internal/app"
	"github.com/okian/chefcontest/internal/domain/model"
	"github.com/okian/chefcontest/internal/domain/scoring"
	"github.com/okian/chefcontest/internal/domain/standings"
	. "github.com/smartystreets/goconvey/convey"
)

// scoreByName scores a recipe by the number embedded after "#" in its name.
func scoreByName() scoring.CompleterFunc {
	return func(_ context.Context, prompt string) (string, error) {
		i := strings.LastIndex(prompt, "#")
		return prompt[i+1:i+2] + ", judged", nil
	}
}

func TestServiceIntegration(t *testing.T) {
	Convey("Given a service with a real CSV ledger and a moving clock", t, func() {
		ctx := context.Background()
		now := time.Date(2024, 3, 8, 9, 0, 0, 0, time.UTC) // Friday, week 10
		clock := func() time.Time { return now }

		store := tempLedger(t)
		svc := service.New(
			service.WithLedger(store),
			service.WithEvaluator(scoring.NewEvaluator(scoreByName())),
			service.WithClock(clock),
			service.WithDedupeSize(500),
		)
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		Convey("When the ledger is still empty", func() {
			_, ok, err := svc.Winners(ctx)

			Convey("Then there is no data", func() {
				So(err, ShouldBeNil)
				So(ok, ShouldBeFalse)
			})
		})

		Convey("When chefs submit across two ISO weeks", func() {
			submit := func(chef, recipe string) {
				_, err := svc.Submit(ctx, service.SubmitRequest{ChefName: chef, RecipeName: recipe})
				So(err, ShouldBeNil)
			}
			submit("Ana", "Sunrise Stack #3")
			submit("Bo", "Moonlit Noodles #7")
			submit("Cy", "Crunch Time #5")

			now = now.AddDate(0, 0, 3) // Monday, week 11
			submit("Di", "Monday Mash #4")

			Convey("Then the leaderboard lists every row in submission order", func() {
				table, err := svc.Leaderboard(ctx, 0)
				So(err, ShouldBeNil)
				So(table.Columns, ShouldResemble, ledger.Header())
				So(table.Len(), ShouldEqual, 4)
				So(table.Rows[0].ChefName, ShouldEqual, "Ana")
				So(table.Rows[3], ShouldResemble, model.ContestEntry{
					ChefName: "Di", RecipeName: "Monday Mash #4", Score: 4, Reason: "judged", Date: "2024-03-11",
				})

				limited, _ := svc.Leaderboard(ctx, 2)
				So(limited.Len(), ShouldEqual, 2)
			})

			Convey("Then winners are computed per day, week and month", func() {
				w, ok, err := svc.Winners(ctx)
				So(err, ShouldBeNil)
				So(ok, ShouldBeTrue)
				So(w.Daily, ShouldResemble, []standings.Winner{
					{ChefName: "Bo", RecipeName: "Moonlit Noodles #7", Score: 7, Period: "2024-03-08"},
					{ChefName: "Di", RecipeName: "Monday Mash #4", Score: 4, Period: "2024-03-11"},
				})
				So(w.Weekly, ShouldHaveLength, 2)
				So(w.Weekly[0].Period, ShouldEqual, "2024-W10")
				So(w.Weekly[1].Period, ShouldEqual, "2024-W11")
				So(w.Monthly, ShouldResemble, []standings.Winner{
					{ChefName: "Bo", RecipeName: "Moonlit Noodles #7", Score: 7, Period: "2024-03"},
				})
			})

			Convey("Then stats reflect the activity", func() {
				stats := svc.GetStats()
				So(stats["submissions"], ShouldEqual, int64(4))
				So(stats["ledgerPath"], ShouldEqual, store.Path())
				So(stats["rememberedSubmissions"], ShouldEqual, int64(4))
			})
		})
	})
}
