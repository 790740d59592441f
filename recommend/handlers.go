package recommend

import (
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"trotter/gateway"
	"trotter/itinerary"
	"trotter/session"
	"trotter/trip"
	"trotter/views"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
)

// Handlers serves the recommendations page. The page runs in two modes:
// as the builder's activity-picker sub-flow (pick token issued by the
// builder) or standalone from Discover, where picks just total up and go
// nowhere on confirm.
type Handlers struct {
	API   *gateway.Client
	Store *itinerary.Store

	mu         sync.Mutex
	selections map[string]*Selection
}

// standalonePrefix marks tokens this package minted itself, as opposed to
// builder pick tokens.
const standalonePrefix = "b-"

const catalogLimit = 20

func NewHandlers(api *gateway.Client, store *itinerary.Store) *Handlers {
	h := &Handlers{API: api, Store: store, selections: map[string]*Selection{}}
	go h.sweep()
	return h
}

func (h *Handlers) selection(token string) *Selection {
	h.mu.Lock()
	defer h.mu.Unlock()
	if s, ok := h.selections[token]; ok {
		return s
	}
	s := NewSelection()
	h.selections[token] = s
	return s
}

func (h *Handlers) dropSelection(token string) {
	h.mu.Lock()
	delete(h.selections, token)
	h.mu.Unlock()
}

// Page renders recommendations for a city, filtered by category and budget
// tier. With a builder pick token it also shows the stop's date window and
// a live budget estimate.
func (h *Handlers) Page(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, _ := session.FromContext(r.Context())
	chrome := views.Chrome{Title: "Recommendations", UserName: id.UserName, Active: "discover"}

	cityID := ps.ByName("cityid")
	q := r.URL.Query()
	token := q.Get("pick")
	category := q.Get("category")
	budgetTier := q.Get("budget")

	// no token yet: mint a standalone one so toggles have somewhere to live
	if token == "" {
		token = standalonePrefix + uuid.New().String()
		dest := r.URL.Path + "?pick=" + token
		if category != "" {
			dest += "&category=" + url.QueryEscape(category)
		}
		if budgetTier != "" {
			dest += "&budget=" + url.QueryEscape(budgetTier)
		}
		http.Redirect(w, r, dest, http.StatusSeeOther)
		return
	}

	var pick itinerary.PendingPick
	var fromBuilder bool
	if !strings.HasPrefix(token, standalonePrefix) {
		if _, p, ok := h.Store.LookupPick(token); ok {
			pick = p
			fromBuilder = true
		}
	}

	sel := h.selection(token)
	if fromBuilder && sel.Count() == 0 && len(pick.Selected) > 0 {
		ids := make([]string, 0, len(pick.Selected))
		costs := make(map[string]float64, len(pick.Selected))
		for _, ref := range pick.Selected {
			ids = append(ids, ref.ActivityID)
			costs[ref.ActivityID] = ref.Cost
		}
		sel.Seed(ids, costs)
	}

	city, err := h.API.GetCity(r.Context(), cityID)
	if errors.Is(err, gateway.ErrNotFound) {
		views.RenderNotFound(w, chrome, r.URL.Path)
		return
	}
	if err != nil {
		views.RenderError(w, chrome, "Could not load this city right now.")
		return
	}

	acts, err := h.API.CityRecommendations(r.Context(), cityID, category, budgetTier, catalogLimit)
	if err != nil {
		views.RenderError(w, chrome, "Could not load recommendations right now.")
		return
	}

	cards := make([]views.ActivityCard, len(acts))
	inCatalog := map[string]bool{}
	for i, a := range acts {
		cards[i] = views.ActivityCard{Activity: a, Selected: sel.Has(a.ID)}
		inCatalog[a.ID] = true
	}
	var orphans []string
	for _, sid := range sel.IDs() {
		if !inCatalog[sid] {
			orphans = append(orphans, sid)
		}
	}

	// budget estimate is secondary content: show the page without it
	var estimate *trip.Budget
	if fromBuilder && pick.StartDate != "" && pick.EndDate != "" {
		b, err := h.API.EstimateBudget(r.Context(), cityID, pick.StartDate, pick.EndDate, sel.IDs())
		if err != nil {
			log.Printf("budget estimate for city %s failed: %v", cityID, err)
		} else {
			estimate = &b
		}
	}

	views.Render(w, http.StatusOK, "recommend", views.RecommendView{
		Chrome:        chrome,
		City:          city,
		Token:         token,
		PickURL:       r.URL.Path,
		Category:      category,
		BudgetTier:    budgetTier,
		StartDate:     pick.StartDate,
		EndDate:       pick.EndDate,
		Days:          trip.DaysBetween(pick.StartDate, pick.EndDate),
		Activities:    cards,
		Orphans:       orphans,
		SelectedCount: sel.Count(),
		SelectedTotal: sel.Total(),
		Estimate:      estimate,
		HasReturn:     fromBuilder,
	})
}

// Toggle flips one activity in or out of the selection and returns to the
// page with the filters intact.
func (h *Handlers) Toggle(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	token := r.FormValue("pick")
	cityID := r.FormValue("city_id")
	actID := r.FormValue("activity_id")
	if token == "" || cityID == "" || actID == "" {
		http.Error(w, "missing fields", http.StatusBadRequest)
		return
	}
	var cost float64
	if v := r.FormValue("cost"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			cost = parsed
		}
	}
	h.selection(token).Toggle(actID, cost)

	dest := "/recommendations/" + cityID + "?pick=" + url.QueryEscape(token)
	if c := r.FormValue("category"); c != "" {
		dest += "&category=" + url.QueryEscape(c)
	}
	if b := r.FormValue("budget"); b != "" {
		dest += "&budget=" + url.QueryEscape(b)
	}
	http.Redirect(w, r, dest, http.StatusSeeOther)
}

// Confirm resolves the selection. A builder pick merges back into its stop
// and returns to the builder; a standalone browse just heads to Discover.
func (h *Handlers) Confirm(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	token := r.FormValue("pick")
	sel := h.selection(token)

	if !strings.HasPrefix(token, standalonePrefix) {
		if b, _, ok := h.Store.LookupPick(token); ok {
			returnTo, err := b.Merge(token, sel.IDs(), sel.Costs())
			h.dropSelection(token)
			if err != nil {
				log.Printf("merge for pick %s failed: %v", token, err)
			}
			if returnTo == "" {
				returnTo = "/trips"
			}
			http.Redirect(w, r, returnTo, http.StatusSeeOther)
			return
		}
	}
	h.dropSelection(token)
	http.Redirect(w, r, "/activities", http.StatusSeeOther)
}

// sweep evicts selections nobody has confirmed, mirroring the builder
// store's eviction.
func (h *Handlers) sweep() {
	ticker := time.NewTicker(10 * time.Minute)
	for range ticker.C {
		cutoff := time.Now().Add(-2 * time.Hour)
		h.mu.Lock()
		for k, s := range h.selections {
			if s.created.Before(cutoff) {
				delete(h.selections, k)
			}
		}
		h.mu.Unlock()
	}
}
