package pages

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"trotter/trip"
	"trotter/views"

	"github.com/julienschmidt/httprouter"
)

// CalendarPage renders one month of the user's trips. ?y and ?m navigate;
// anything unparseable falls back to the current month.
func (h *Handlers) CalendarPage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	c := chrome(r, "Trip Calendar", "calendar")

	now := time.Now()
	year, month := now.Year(), now.Month()
	if y, err := strconv.Atoi(r.URL.Query().Get("y")); err == nil && y >= 1970 && y <= 9999 {
		year = y
	}
	if m, err := strconv.Atoi(r.URL.Query().Get("m")); err == nil && m >= 1 && m <= 12 {
		month = time.Month(m)
	}

	trips, err := h.API.ListTrips(r.Context(), "")
	if err != nil {
		views.RenderError(w, c, "Could not load your trips. Try again in a moment.")
		return
	}

	anchor := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	prev := anchor.AddDate(0, -1, 0)
	next := anchor.AddDate(0, 1, 0)

	views.Render(w, http.StatusOK, "calendar", views.CalendarView{
		Chrome:    c,
		Month:     trip.MonthGrid(year, month, now, trips),
		MonthName: month.String(),
		PrevQuery: fmt.Sprintf("y=%d&m=%d", prev.Year(), int(prev.Month())),
		NextQuery: fmt.Sprintf("y=%d&m=%d", next.Year(), int(next.Month())),
		TripCount: len(trips),
	})
}
