package itinerary

import (
	"log"
	"net/http"
	"net/url"
	"time"

	"trotter/gateway"
	"trotter/rdx"
	"trotter/session"
	"trotter/trip"
	"trotter/utils"
	"trotter/views"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
)

// Handlers serves the itinerary builder pages. All routes here sit behind
// RequireSession.
type Handlers struct {
	API   *gateway.Client
	Store *Store
}

func NewHandlers(api *gateway.Client, store *Store) *Handlers {
	return &Handlers{API: api, Store: store}
}

const citiesCacheTTL = 10 * time.Minute

// cities returns the city catalog, cached because it changes rarely and
// every builder render needs it. A fetch failure degrades to an empty
// dropdown instead of killing the page.
func (h *Handlers) cities(r *http.Request) []trip.City {
	var out []trip.City
	if rdx.CacheGet("cities", &out) {
		return out
	}
	out, err := h.API.ListCities(r.Context(), nil)
	if err != nil {
		log.Printf("city catalog fetch failed: %v", err)
		return nil
	}
	rdx.CacheSet("cities", out, citiesCacheTTL)
	return out
}

// BuilderPage renders the stop editor for a trip.
func (h *Handlers) BuilderPage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, _ := session.FromContext(r.Context())
	chrome := views.Chrome{Title: "Build Itinerary", UserName: id.UserName, Active: "trips"}

	t, err := h.API.GetTrip(r.Context(), ps.ByName("id"))
	if errors.Is(err, gateway.ErrNotFound) {
		views.RenderNotFound(w, chrome, r.URL.Path)
		return
	}
	if err != nil {
		views.RenderError(w, chrome, "Could not load this trip. Try again in a moment.")
		return
	}

	b := h.Store.Get(id.UserID, t)
	cities := h.cities(r)
	names := make(map[string]string, len(cities))
	for _, c := range cities {
		names[c.ID] = c.CityName
	}

	drafts := b.Stops()
	stops := make([]views.StopView, len(drafts))
	var total float64
	for i, sd := range drafts {
		stops[i] = views.StopView{
			Index:     i + 1,
			LocalID:   sd.LocalID,
			Stop:      sd.Stop,
			State:     string(sd.State),
			CityName:  names[sd.Stop.CityID],
			Removable: len(drafts) > 1,
		}
		if sd.Stop.EstimatedBudget != nil {
			total += sd.Stop.EstimatedBudget.TotalCost
		}
	}

	chrome.Banner = r.URL.Query().Get("err")
	views.Render(w, http.StatusOK, "builder", views.BuilderView{
		Chrome:   chrome,
		Trip:     b.Trip(),
		Stops:    stops,
		Cities:   cities,
		Warnings: b.Warnings(),
		Total:    total,
	})
}

// AddStop appends an empty stop and returns to the builder.
func (h *Handlers) AddStop(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, _ := session.FromContext(r.Context())
	tripID := ps.ByName("id")
	if b, ok := h.Store.Find(id.UserID, tripID); ok {
		b.AddStop()
	}
	http.Redirect(w, r, "/trips/"+tripID+"/itinerary", http.StatusSeeOther)
}

// RemoveStop deletes a stop. Refusing to delete the last one comes back as
// a banner, not an error page.
func (h *Handlers) RemoveStop(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, _ := session.FromContext(r.Context())
	tripID := ps.ByName("id")
	back := "/trips/" + tripID + "/itinerary"
	b, ok := h.Store.Find(id.UserID, tripID)
	if !ok {
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}
	if err := b.RemoveStop(ps.ByName("sid")); err != nil {
		http.Redirect(w, r, back+"?err="+url.QueryEscape(err.Error()), http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, back, http.StatusSeeOther)
}

// UpdateStop applies one field edit posted by the builder page's inline
// script. It answers JSON because nothing navigates.
func (h *Handlers) UpdateStop(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, _ := session.FromContext(r.Context())
	b, ok := h.Store.Find(id.UserID, ps.ByName("id"))
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "no itinerary in progress for this trip")
		return
	}
	if err := r.ParseMultipartForm(1 << 16); err != nil {
		if err := r.ParseForm(); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "bad form")
			return
		}
	}
	err := b.UpdateStop(ps.ByName("sid"), r.FormValue("field"), r.FormValue("value"))
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		utils.RespondWithError(w, http.StatusBadRequest, verr.Msg)
	case errors.Is(err, ErrUnknownStop):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case err != nil:
		utils.RespondWithError(w, http.StatusInternalServerError, "update failed")
	default:
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"ok": true})
	}
}

// OpenPicker starts the activity-selection sub-flow for a stop and sends
// the browser to the recommendations page carrying the pick token.
func (h *Handlers) OpenPicker(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, _ := session.FromContext(r.Context())
	tripID := ps.ByName("id")
	back := "/trips/" + tripID + "/itinerary"
	b, ok := h.Store.Find(id.UserID, tripID)
	if !ok {
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}
	pick, err := b.OpenActivityPicker(ps.ByName("sid"), back)
	if err != nil {
		http.Redirect(w, r, back+"?err="+url.QueryEscape(err.Error()), http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/recommendations/"+pick.CityID+"?pick="+pick.Token, http.StatusSeeOther)
}

// SaveTrip persists the stop list. On success the builder is dropped and
// the user lands back on the trip list; any failure returns to the builder
// with the message as a banner.
func (h *Handlers) SaveTrip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, _ := session.FromContext(r.Context())
	tripID := ps.ByName("id")
	back := "/trips/" + tripID + "/itinerary"
	b, ok := h.Store.Find(id.UserID, tripID)
	if !ok {
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}
	if err := b.Save(r.Context(), h.API); err != nil {
		http.Redirect(w, r, back+"?err="+url.QueryEscape(err.Error()), http.StatusSeeOther)
		return
	}
	h.Store.Drop(id.UserID, tripID)
	http.Redirect(w, r, "/trips", http.StatusSeeOther)
}
