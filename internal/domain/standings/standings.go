// Package standings computes contest winners from a loaded ledger table.
package standings

import (
	"fmt"
	"strings"
	"time"

	"github.com/okian/chefcontest/internal/domain/model"
)

// Granularity selects how rows are grouped into periods.
type Granularity string

// Supported granularities.
const (
	Daily   Granularity = "daily"
	Weekly  Granularity = "weekly"
	Monthly Granularity = "monthly"
)

// Winner is the best entry of one period.
type Winner struct {
	ChefName   string `json:"chef_name"`
	RecipeName string `json:"recipe_name"`
	Score      int    `json:"score"`
	Period     string `json:"period"`
}

// Winners holds one winner per period for each granularity, periods in
// first-occurrence order.
type Winners struct {
	Daily   []Winner `json:"daily"`
	Weekly  []Winner `json:"weekly"`
	Monthly []Winner `json:"monthly"`
}

// PeriodKey returns the group key of date at granularity g:
// YYYY-MM-DD, YYYY-Www (ISO week) or YYYY-MM.
func PeriodKey(date time.Time, g Granularity) string {
	switch g {
	case Weekly:
		year, week := date.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week)
	case Monthly:
		return date.Format("2006-01")
	default:
		return date.Format(model.DateLayout)
	}
}

// Compute returns the winners of t. ok is false when t holds no row with a
// usable date, which callers render as "no data". Rows whose Date does not
// parse are ignored. Ties keep the earliest row in file order.
func Compute(t model.Table) (w Winners, ok bool) {
	dated := make([]datedEntry, 0, len(t.Rows))
	for _, e := range t.Rows {
		d, err := time.Parse(model.DateLayout, strings.TrimSpace(e.Date))
		if err != nil {
			continue
		}
		dated = append(dated, datedEntry{entry: e, date: d})
	}
	if len(dated) == 0 {
		return Winners{}, false
	}
	return Winners{
		Daily:   best(dated, Daily),
		Weekly:  best(dated, Weekly),
		Monthly: best(dated, Monthly),
	}, true
}

type datedEntry struct {
	entry model.ContestEntry
	date  time.Time
}

func best(rows []datedEntry, g Granularity) []Winner {
	index := make(map[string]int)
	var out []Winner
	for _, r := range rows {
		key := PeriodKey(r.date, g)
		i, seen := index[key]
		if !seen {
			index[key] = len(out)
			out = append(out, project(r.entry, key))
			continue
		}
		if r.entry.Score > out[i].Score {
			out[i] = project(r.entry, key)
		}
	}
	return out
}

func project(e model.ContestEntry, period string) Winner {
	return Winner{
		ChefName:   e.ChefName,
		RecipeName: e.RecipeName,
		Score:      e.Score,
		Period:     period,
	}
}
