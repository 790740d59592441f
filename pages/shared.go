package pages

import (
	"net/http"
	"time"

	"trotter/gateway"
	"trotter/rdx"
	"trotter/trip"
	"trotter/views"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
)

const sharedCacheTTL = time.Minute

// SharedPage is the public, read-only view behind a share slug. No session
// required; it is also the one page worth caching since a popular link can
// get hammered.
func (h *Handlers) SharedPage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	c := chrome(r, "Shared Trip", "")
	slug := ps.ByName("slug")

	var shared trip.SharedTrip
	cacheKey := "shared:" + slug
	if !rdx.CacheGet(cacheKey, &shared) {
		var err error
		shared, err = h.API.SharedTrip(r.Context(), slug)
		if errors.Is(err, gateway.ErrNotFound) {
			views.RenderNotFound(w, c, r.URL.Path)
			return
		}
		if err != nil {
			views.RenderError(w, c, "Could not load this shared trip.")
			return
		}
		rdx.CacheSet(cacheKey, shared, sharedCacheTTL)
	}

	c.Title = shared.Trip.Title
	views.Render(w, http.StatusOK, "shared", views.SharedView{
		Chrome: c,
		Shared: shared,
		Days:   trip.DaysBetween(shared.Trip.StartDate, shared.Trip.EndDate),
		Spend:  trip.AggregateSpend(shared.Stops),
	})
}
