package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"trotter/session"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func passthrough(hit *bool, gotID *string) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		*hit = true
		if id, ok := session.FromContext(r.Context()); ok {
			*gotID = id.UserID
		}
		w.WriteHeader(http.StatusOK)
	}
}

func TestRequireSessionRedirectsAnonymous(t *testing.T) {
	var hit bool
	var gotID string
	h := RequireSession(passthrough(&hit, &gotID))

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/trips", nil), nil)

	assert.False(t, hit)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestRequireSessionAttachesIdentity(t *testing.T) {
	cookieRec := httptest.NewRecorder()
	require.NoError(t, session.Login(cookieRec, session.Identity{
		UserID: "u-9", UserName: "Ana Reyes", UserEmail: "ana@example.com",
	}))

	var hit bool
	var gotID string
	h := RequireSession(passthrough(&hit, &gotID))

	req := httptest.NewRequest(http.MethodGet, "/trips", nil)
	for _, c := range cookieRec.Result().Cookies() {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h(rec, req, nil)

	assert.True(t, hit)
	assert.Equal(t, "u-9", gotID)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOptionalSessionLetsAnonymousThrough(t *testing.T) {
	var hit bool
	var gotID string
	h := OptionalSession(passthrough(&hit, &gotID))

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/", nil), nil)

	assert.True(t, hit)
	assert.Empty(t, gotID)
}
