package pages

import (
	"log"
	"net/http"
	"time"

	"trotter/gateway"
	"trotter/trip"
	"trotter/views"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
)

// SchedulePage shows a saved trip day by day with its budget standing.
// The trip itself is the primary content; schedule, budget and stops are
// secondary and degrade to empty sections.
func (h *Handlers) SchedulePage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	c := chrome(r, "Trip", "trips")
	c.Banner = r.URL.Query().Get("err")

	t, err := h.API.GetTrip(r.Context(), ps.ByName("id"))
	if errors.Is(err, gateway.ErrNotFound) {
		views.RenderNotFound(w, c, r.URL.Path)
		return
	}
	if err != nil {
		views.RenderError(w, c, "Could not load this trip. Try again in a moment.")
		return
	}
	c.Title = t.Title

	view := views.ScheduleView{
		Chrome:    c,
		Trip:      t,
		Status:    trip.Classify(t, time.Now()),
		DayCount:  trip.DaysBetween(t.StartDate, t.EndDate),
		ShareSlug: r.URL.Query().Get("shared"),
	}

	if sched, err := h.API.TripSchedule(r.Context(), t.ID); err != nil {
		log.Printf("schedule for trip %s unavailable: %v", t.ID, err)
	} else {
		view.Days = sched.Days
	}

	if stops, err := h.API.ListStops(r.Context(), t.ID); err != nil {
		log.Printf("stops for trip %s unavailable: %v", t.ID, err)
	} else {
		view.Spent = trip.AggregateSpend(stops)
	}

	if budget, err := h.API.TripBudget(r.Context(), t.ID); err != nil {
		log.Printf("budget for trip %s unavailable: %v", t.ID, err)
	} else {
		view.Budget = &budget
		view.Remaining = budget.TotalCost - view.Spent
		if view.DayCount > 0 {
			view.PerDay = budget.TotalCost / float64(view.DayCount)
		}
		if budget.TotalCost > 0 {
			view.Percent = int(view.Spent / budget.TotalCost * 100)
			if view.Percent > 100 {
				view.Percent = 100
			}
		}
	}

	views.Render(w, http.StatusOK, "schedule", view)
}
