package pages

import (
	"net/http"
	"strings"

	"trotter/session"
	"trotter/views"

	"github.com/julienschmidt/httprouter"
)

func (h *Handlers) ProfilePage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	c := chrome(r, "My Profile", "profile")
	user, err := h.API.CurrentUser(r.Context())
	if err != nil {
		views.RenderError(w, c, "Could not load your profile. Try again in a moment.")
		return
	}
	views.Render(w, http.StatusOK, "profile", views.ProfileView{Chrome: c, User: user})
}

// UpdateProfile pushes edited fields to the backend and refreshes the
// session cookie so the displayed name follows a rename immediately.
func (h *Handlers) UpdateProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	c := chrome(r, "My Profile", "profile")
	if err := r.ParseForm(); err != nil {
		views.RenderError(w, c, "Invalid form data")
		return
	}

	fields := map[string]any{}
	for _, key := range []string{"first_name", "last_name", "phone_number", "city", "country", "additional_info"} {
		if r.Form.Has(key) {
			fields[key] = strings.TrimSpace(r.FormValue(key))
		}
	}

	user, err := h.API.UpdateProfile(r.Context(), fields)
	if err != nil {
		views.RenderError(w, c, "Could not save your profile. Try again in a moment.")
		return
	}

	if id, ok := session.FromContext(r.Context()); ok {
		id.UserName = strings.TrimSpace(user.FirstName + " " + user.LastName)
		if err := session.Login(w, id); err == nil {
			c.UserName = id.UserName
		}
	}
	c.Notice = "Profile saved."
	views.Render(w, http.StatusOK, "profile", views.ProfileView{Chrome: c, User: user})
}
