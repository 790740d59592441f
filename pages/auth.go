package pages

import (
	"net/http"
	"strings"

	"trotter/gateway"
	"trotter/session"
	"trotter/views"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
)

func (h *Handlers) LoginPage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if _, ok := session.FromContext(r.Context()); ok {
		http.Redirect(w, r, "/trips", http.StatusSeeOther)
		return
	}
	c := chrome(r, "Sign In", "")
	if r.URL.Query().Get("registered") == "1" {
		c.Notice = "Account created. Sign in to start planning."
	}
	views.Render(w, http.StatusOK, "login", views.AuthView{Chrome: c})
}

// Login exchanges credentials with the backend and turns the answer into a
// session cookie. The backend's own message shows on bad credentials.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := r.ParseForm(); err != nil {
		views.Render(w, http.StatusBadRequest, "login", views.AuthView{Chrome: chrome(r, "Sign In", "")})
		return
	}
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	resp, err := h.API.Login(r.Context(), email, password)
	if err != nil {
		c := chrome(r, "Sign In", "")
		var apiErr *gateway.APIError
		if errors.As(err, &apiErr) {
			c.Banner = apiErr.Message
		} else {
			c.Banner = "Could not reach the server. Try again in a moment."
		}
		views.Render(w, http.StatusUnauthorized, "login", views.AuthView{Chrome: c, Email: email})
		return
	}

	id := session.Identity{
		UserID:    resp.UserID,
		UserName:  strings.TrimSpace(resp.FirstName + " " + resp.LastName),
		UserEmail: resp.Email,
	}
	if err := session.Login(w, id); err != nil {
		views.RenderError(w, chrome(r, "Sign In", ""), "Could not start your session.")
		return
	}
	http.Redirect(w, r, "/trips", http.StatusSeeOther)
}

func (h *Handlers) SignupPage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if _, ok := session.FromContext(r.Context()); ok {
		http.Redirect(w, r, "/trips", http.StatusSeeOther)
		return
	}
	views.Render(w, http.StatusOK, "signup", views.AuthView{Chrome: chrome(r, "Create Account", "")})
}

func (h *Handlers) Signup(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := r.ParseForm(); err != nil {
		views.Render(w, http.StatusBadRequest, "signup", views.AuthView{Chrome: chrome(r, "Create Account", "")})
		return
	}
	req := gateway.SignupRequest{
		Email:          strings.TrimSpace(r.FormValue("email")),
		Password:       r.FormValue("password"),
		FirstName:      strings.TrimSpace(r.FormValue("first_name")),
		LastName:       strings.TrimSpace(r.FormValue("last_name")),
		Phone:          strings.TrimSpace(r.FormValue("phone")),
		City:           strings.TrimSpace(r.FormValue("city")),
		Country:        strings.TrimSpace(r.FormValue("country")),
		AdditionalInfo: strings.TrimSpace(r.FormValue("additional_info")),
	}
	if _, err := h.API.Signup(r.Context(), req); err != nil {
		c := chrome(r, "Create Account", "")
		var apiErr *gateway.APIError
		if errors.As(err, &apiErr) {
			c.Banner = apiErr.Message
		} else {
			c.Banner = "Could not reach the server. Try again in a moment."
		}
		views.Render(w, http.StatusBadRequest, "signup", views.AuthView{Chrome: c, Email: req.Email})
		return
	}
	http.Redirect(w, r, "/login?registered=1", http.StatusSeeOther)
}

// Logout clears the cookie; the backend keeps no session to tear down.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	session.Logout(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
