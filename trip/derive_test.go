package trip

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestClassify(t *testing.T) {
	tr := Trip{StartDate: "2026-01-01", EndDate: "2026-01-10"}

	assert.Equal(t, StatusOngoing, Classify(tr, day("2026-01-05")))
	assert.Equal(t, StatusUpcoming, Classify(tr, day("2025-12-01")))
	assert.Equal(t, StatusCompleted, Classify(tr, day("2026-02-01")))

	// boundary days count as ongoing
	assert.Equal(t, StatusOngoing, Classify(tr, day("2026-01-01")))
	assert.Equal(t, StatusOngoing, Classify(tr, day("2026-01-10")))
}

func TestClassifyIsTotal(t *testing.T) {
	today := day("2026-01-05")
	for _, tr := range []Trip{
		{},
		{StartDate: "garbage", EndDate: "also garbage"},
		{StartDate: "2026-01-01"},
		{EndDate: "2026-01-10"},
	} {
		got := Classify(tr, today)
		assert.Contains(t, []Status{StatusOngoing, StatusUpcoming, StatusCompleted}, got)
	}
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 5, DaysBetween("2026-01-01", "2026-01-05"))
	assert.Equal(t, 1, DaysBetween("2026-01-05", "2026-01-05"))
	assert.Equal(t, 0, DaysBetween("2026-01-05", "2026-01-01"))
	assert.Equal(t, 0, DaysBetween("not a date", "2026-01-05"))
	assert.Equal(t, 0, DaysBetween("2026-01-01", ""))
}

func TestGroupByStatus(t *testing.T) {
	today := day("2026-01-05")
	trips := []Trip{
		{ID: "a", StartDate: "2026-01-04", EndDate: "2026-01-06"},
		{ID: "b", StartDate: "2026-02-01", EndDate: "2026-02-03"},
		{ID: "c", StartDate: "2025-12-01", EndDate: "2025-12-05"},
	}
	g := GroupByStatus(trips, today)
	assert.Len(t, g.Ongoing, 1)
	assert.Len(t, g.Upcoming, 1)
	assert.Len(t, g.Completed, 1)
	assert.Equal(t, "a", g.Ongoing[0].ID)
	assert.Equal(t, "b", g.Upcoming[0].ID)
	assert.Equal(t, "c", g.Completed[0].ID)
}

func TestAggregateSpend(t *testing.T) {
	stops := []Stop{
		{
			Activities:      []ActivityRef{{ActivityID: "a1", Cost: 15}, {ActivityID: "a2", Cost: 30}},
			EstimatedBudget: &Budget{TotalCost: 400},
		},
		{Activities: []ActivityRef{{ActivityID: "a3", Cost: 10}}}, // budget not fetched yet
	}
	assert.Equal(t, 455.0, AggregateSpend(stops))
	assert.Equal(t, 0.0, AggregateSpend(nil))
}

func TestMonthGrid(t *testing.T) {
	trips := []Trip{{ID: "bali", Title: "Trip to Bali", StartDate: "2026-02-05", EndDate: "2026-02-10"}}
	m := MonthGrid(2026, time.February, day("2026-02-07"), trips)

	// February 2026 starts on a Sunday: no leading blanks, 28 cells.
	assert.Len(t, m.Cells, 28)
	assert.Equal(t, 1, m.Cells[0].Day)

	var hits int
	for _, c := range m.Cells {
		if len(c.Trips) > 0 {
			hits++
		}
		if c.Day == 7 {
			assert.True(t, c.Today)
			assert.Len(t, c.Trips, 1)
		}
	}
	assert.Equal(t, 6, hits) // Feb 5..10 inclusive

	// March 2026 starts on a Sunday as well, but January does not.
	jan := MonthGrid(2026, time.January, day("2026-02-07"), nil)
	assert.Equal(t, 0, jan.Cells[0].Day) // Jan 1 2026 is a Thursday: 4 blanks
	assert.Len(t, jan.Cells, 4+31)
}
