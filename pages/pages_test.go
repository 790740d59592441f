package pages

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"trotter/gateway"
	"trotter/session"
	"trotter/trip"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeBackend(t *testing.T, routes map[string]any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path
		payload, ok := routes[key]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"detail": "Not found"})
			return
		}
		json.NewEncoder(w).Encode(payload)
	}))
}

func authedRequest(t *testing.T, method, target string, body string) *http.Request {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	id := session.Identity{UserID: "u1", UserName: "Ana Reyes", UserEmail: "ana@example.com"}
	return req.WithContext(session.WithIdentity(req.Context(), id))
}

func TestLoginSetsCookieAndRedirects(t *testing.T) {
	backend := fakeBackend(t, map[string]any{
		"POST /api/auth/login": map[string]string{
			"user_id": "u1", "first_name": "Ana", "last_name": "Reyes", "email": "ana@example.com",
		},
	})
	defer backend.Close()
	h := NewHandlers(gateway.New(backend.URL))

	form := url.Values{"email": {"ana@example.com"}, "password": {"pw"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.Login(rec, req, nil)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/trips", rec.Header().Get("Location"))

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, session.CookieName, cookies[0].Name)

	restoreReq := httptest.NewRequest(http.MethodGet, "/trips", nil)
	restoreReq.AddCookie(cookies[0])
	id, ok := session.Restore(restoreReq)
	require.True(t, ok)
	assert.Equal(t, "u1", id.UserID)
	assert.Equal(t, "Ana Reyes", id.UserName)
}

func TestLoginShowsBackendMessageOnBadCredentials(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Invalid email or password"})
	}))
	defer backend.Close()
	h := NewHandlers(gateway.New(backend.URL))

	form := url.Values{"email": {"ana@example.com"}, "password": {"wrong"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.Login(rec, req, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid email or password")
	// the typed email survives the round trip
	assert.Contains(t, rec.Body.String(), "ana@example.com")
}

func TestTripsPageGroupsByStatus(t *testing.T) {
	backend := fakeBackend(t, map[string]any{
		"GET /api/trips": map[string]any{"trips": []trip.Trip{
			{ID: "t1", Title: "Ancient Rome", StartDate: "2001-01-01", EndDate: "2001-01-05"},
			{ID: "t2", Title: "Mars 3000", StartDate: "3000-01-01", EndDate: "3000-01-05"},
		}},
	})
	defer backend.Close()
	h := NewHandlers(gateway.New(backend.URL))

	rec := httptest.NewRecorder()
	h.TripsPage(rec, authedRequest(t, http.MethodGet, "/trips", ""), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Past Adventures")
	assert.Contains(t, body, "Ancient Rome")
	assert.Contains(t, body, "Coming Up")
	assert.Contains(t, body, "Mars 3000")
	assert.NotContains(t, body, "Happening Now")
}

func TestTripsPageDegradesWhenBackendDown(t *testing.T) {
	backend := fakeBackend(t, nil) // every call 404s
	backend.Close()               // and then the server is gone entirely
	h := NewHandlers(gateway.New(backend.URL))

	rec := httptest.NewRecorder()
	h.TripsPage(rec, authedRequest(t, http.MethodGet, "/trips", ""), nil)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "Could not load your trips")
}

func TestCalendarPageFallsBackToCurrentMonth(t *testing.T) {
	backend := fakeBackend(t, map[string]any{
		"GET /api/trips": map[string]any{"trips": []trip.Trip{}},
	})
	defer backend.Close()
	h := NewHandlers(gateway.New(backend.URL))

	rec := httptest.NewRecorder()
	h.CalendarPage(rec, authedRequest(t, http.MethodGet, "/calendar?y=junk&m=99", ""), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Trip Calendar")
	assert.Contains(t, rec.Body.String(), "No trips scheduled yet")
}

func TestValidateTripForm(t *testing.T) {
	assert.NotEmpty(t, validateTripForm(trip.Trip{}))
	assert.NotEmpty(t, validateTripForm(trip.Trip{Title: "X", StartDate: "2026-06-10", EndDate: "2026-06-01"}))
	assert.Empty(t, validateTripForm(trip.Trip{Title: "X", StartDate: "2026-06-01", EndDate: "2026-06-10"}))
}
