package trip

import (
	"math"
	"time"
)

type Status string

const (
	StatusOngoing   Status = "ongoing"
	StatusUpcoming  Status = "upcoming"
	StatusCompleted Status = "completed"
)

const dateLayout = "2006-01-02"

// Classify derives a trip's status from its dates. The backend sometimes
// labels trips itself, but the client derives status everywhere so listing
// and calendar can never disagree. ISO date strings order lexically, so no
// parsing is needed; anything malformed classifies as completed.
func Classify(t Trip, today time.Time) Status {
	d := today.Format(dateLayout)
	if t.StartDate > d {
		return StatusUpcoming
	}
	if t.StartDate <= d && t.EndDate >= d {
		return StatusOngoing
	}
	return StatusCompleted
}

// Grouped holds trips bucketed by derived status, in input order.
type Grouped struct {
	Ongoing   []Trip
	Upcoming  []Trip
	Completed []Trip
}

func GroupByStatus(trips []Trip, today time.Time) Grouped {
	var g Grouped
	for _, t := range trips {
		switch Classify(t, today) {
		case StatusOngoing:
			g.Ongoing = append(g.Ongoing, t)
		case StatusUpcoming:
			g.Upcoming = append(g.Upcoming, t)
		default:
			g.Completed = append(g.Completed, t)
		}
	}
	return g
}

// DaysBetween is the inclusive day count between two ISO dates: both
// endpoints count, a single day is 1, and a reversed or unparseable range
// is 0, never negative.
func DaysBetween(start, end string) int {
	s, err := time.Parse(dateLayout, start)
	if err != nil {
		return 0
	}
	e, err := time.Parse(dateLayout, end)
	if err != nil {
		return 0
	}
	diff := e.Sub(s)
	if diff < 0 {
		return 0
	}
	return int(math.Ceil(diff.Hours()/24)) + 1
}

// AggregateSpend sums selected activity costs plus each stop's fetched
// budget total. A stop whose budget has not arrived yet contributes only
// its activity costs; this never fails and never blocks rendering.
func AggregateSpend(stops []Stop) float64 {
	var total float64
	for _, s := range stops {
		for _, a := range s.Activities {
			total += a.Cost
		}
		if s.EstimatedBudget != nil {
			total += s.EstimatedBudget.TotalCost
		}
	}
	return total
}
