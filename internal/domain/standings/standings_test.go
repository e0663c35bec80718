package standings_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/okian/chefcontest/internal/domain/model"
	"github.com/okian/chefcontest/internal/domain/standings"
	. "github.com/smartystreets/goconvey/convey"
)

func entry(chef string, score int, date string) model.ContestEntry {
	return model.ContestEntry{ChefName: chef, RecipeName: chef + "'s dish", Score: score, Date: date}
}

func TestCompute(t *testing.T) {
	Convey("Given a ledger table", t, func() {
		Convey("When three entries share a day with scores 3, 7, 5", func() {
			tbl := model.Table{Rows: []model.ContestEntry{
				entry("ana", 3, "2024-03-05"),
				entry("ben", 7, "2024-03-05"),
				entry("cy", 5, "2024-03-05"),
			}}
			w, ok := standings.Compute(tbl)

			Convey("Then the score-7 entry wins the day, week and month", func() {
				So(ok, ShouldBeTrue)
				want := []standings.Winner{{ChefName: "ben", RecipeName: "ben's dish", Score: 7, Period: "2024-03-05"}}
				So(cmp.Diff(want, w.Daily), ShouldBeEmpty)
				So(w.Weekly, ShouldHaveLength, 1)
				So(w.Weekly[0].ChefName, ShouldEqual, "ben")
				So(w.Weekly[0].Period, ShouldEqual, "2024-W10")
				So(w.Monthly[0].Period, ShouldEqual, "2024-03")
			})
		})

		Convey("When entries span two ISO weeks", func() {
			// 2024-03-10 is a Sunday (W10); 2024-03-11 is the Monday of W11.
			tbl := model.Table{Rows: []model.ContestEntry{
				entry("ana", 4, "2024-03-10"),
				entry("ben", 6, "2024-03-11"),
				entry("cy", 9, "2024-03-12"),
			}}
			w, ok := standings.Compute(tbl)

			Convey("Then there is one weekly winner per week, in first-occurrence order", func() {
				So(ok, ShouldBeTrue)
				So(w.Weekly, ShouldHaveLength, 2)
				So(w.Weekly[0].Period, ShouldEqual, "2024-W10")
				So(w.Weekly[0].ChefName, ShouldEqual, "ana")
				So(w.Weekly[1].Period, ShouldEqual, "2024-W11")
				So(w.Weekly[1].ChefName, ShouldEqual, "cy")
				So(w.Daily, ShouldHaveLength, 3)
				So(w.Monthly, ShouldHaveLength, 1)
				So(w.Monthly[0].ChefName, ShouldEqual, "cy")
			})
		})

		Convey("When two entries tie for the maximum", func() {
			tbl := model.Table{Rows: []model.ContestEntry{
				entry("ana", 8, "2024-05-01"),
				entry("ben", 8, "2024-05-01"),
			}}
			w, _ := standings.Compute(tbl)

			Convey("Then the first row in file order wins", func() {
				So(w.Daily[0].ChefName, ShouldEqual, "ana")
				So(w.Monthly[0].ChefName, ShouldEqual, "ana")
			})
		})

		Convey("When the ISO year differs from the calendar year", func() {
			tbl := model.Table{Rows: []model.ContestEntry{entry("ana", 1, "2024-12-30")}}
			w, _ := standings.Compute(tbl)
			So(w.Weekly[0].Period, ShouldEqual, "2025-W01")
			So(w.Monthly[0].Period, ShouldEqual, "2024-12")
		})

		Convey("When the table is empty", func() {
			_, ok := standings.Compute(model.Table{})

			Convey("Then it reports no data", func() {
				So(ok, ShouldBeFalse)
			})
		})

		Convey("When no row has a parseable date", func() {
			_, ok := standings.Compute(model.Table{Rows: []model.ContestEntry{entry("ana", 5, ""), entry("ben", 6, "yesterday")}})
			So(ok, ShouldBeFalse)
		})

		Convey("When some rows have bad dates", func() {
			w, ok := standings.Compute(model.Table{Rows: []model.ContestEntry{entry("ana", 10, "n/a"), entry("ben", 2, "2024-01-02")}})
			So(ok, ShouldBeTrue)
			So(w.Daily[0].ChefName, ShouldEqual, "ben")
		})
	})
}

func TestPeriodKey(t *testing.T) {
	Convey("Given a date", t, func() {
		d := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
		So(standings.PeriodKey(d, standings.Daily), ShouldEqual, "2023-01-01")
		So(standings.PeriodKey(d, standings.Weekly), ShouldEqual, "2022-W52")
		So(standings.PeriodKey(d, standings.Monthly), ShouldEqual, "2023-01")
	})
}
