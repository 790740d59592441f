package pages

import (
	"net/http"
	"strings"

	"trotter/views"

	"github.com/julienschmidt/httprouter"
)

// ActivitiesPage is the standalone Discover search over the activity
// catalog.
func (h *Handlers) ActivitiesPage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	c := chrome(r, "Discover Activities", "discover")

	search := strings.TrimSpace(r.URL.Query().Get("search"))
	category := r.URL.Query().Get("category")

	results, err := h.API.SearchActivities(r.Context(), search, category)
	if err != nil {
		views.RenderError(w, c, "Could not search activities right now.")
		return
	}

	views.Render(w, http.StatusOK, "activities", views.ActivitiesView{
		Chrome:   c,
		Search:   search,
		Category: category,
		Results:  results,
	})
}
