package pages

import (
	"net/http"

	"trotter/gateway"
	"trotter/session"
	"trotter/views"

	"github.com/julienschmidt/httprouter"
)

// Handlers serves everything outside the itinerary builder and the
// recommendations flow: auth, trip CRUD, schedule, calendar, profile,
// discover and the public shared view.
type Handlers struct {
	API *gateway.Client
}

func NewHandlers(api *gateway.Client) *Handlers {
	return &Handlers{API: api}
}

func chrome(r *http.Request, title, active string) views.Chrome {
	c := views.Chrome{Title: title, Active: active}
	if id, ok := session.FromContext(r.Context()); ok {
		c.UserName = id.UserName
	}
	return c
}

func (h *Handlers) Home(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if r.URL.Path != "/" {
		h.NotFound(w, r)
		return
	}
	views.Render(w, http.StatusOK, "home", views.HomeView{Chrome: chrome(r, "Welcome", "")})
}

// NotFound is plugged into the router so unknown paths keep the site
// chrome. It runs outside the middleware chain, so the cookie is read
// directly.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	c := views.Chrome{Title: "Not found"}
	if id, ok := session.Restore(r); ok {
		c.UserName = id.UserName
	}
	views.RenderNotFound(w, c, r.URL.Path)
}
