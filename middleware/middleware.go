package middleware

import (
	"net/http"

	"trotter/session"

	"github.com/julienschmidt/httprouter"
)

// RequireSession gates a page behind a valid session cookie. Browsers get
// a redirect to the login form rather than a bare 401.
func RequireSession(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		id, ok := session.Restore(r)
		if !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next(w, r.WithContext(session.WithIdentity(r.Context(), id)), ps)
	}
}

// OptionalSession attaches the identity when a valid cookie is present and
// lets the request through either way. Public pages use this so the chrome
// can still show who is signed in.
func OptionalSession(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if id, ok := session.Restore(r); ok {
			r = r.WithContext(session.WithIdentity(r.Context(), id))
		}
		next(w, r, ps)
	}
}
