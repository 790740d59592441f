package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cookieRequest(t *testing.T, rec *httptest.ResponseRecorder) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/trips", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestLoginThenRestore(t *testing.T) {
	rec := httptest.NewRecorder()
	want := Identity{UserID: "u42", UserName: "Sarah Jenkins", UserEmail: "sarah.j@traveler.com"}
	require.NoError(t, Login(rec, want))

	// simulated reload: a fresh request carrying only the cookie
	got, ok := Restore(cookieRequest(t, rec))
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestRestoreWithoutCookieIsAnonymous(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/trips", nil)
	_, ok := Restore(req)
	assert.False(t, ok)
}

func TestRestoreRejectsTamperedCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, Login(rec, Identity{UserID: "u1", UserName: "A B", UserEmail: "a@b.c"}))

	req := cookieRequest(t, rec)
	c, err := req.Cookie(CookieName)
	require.NoError(t, err)
	req.Header.Set("Cookie", CookieName+"="+c.Value+"x")

	_, ok := Restore(req)
	assert.False(t, ok)
}

func TestRestoreRejectsPartialIdentity(t *testing.T) {
	rec := httptest.NewRecorder()
	// no email: must not produce a half-authenticated session
	require.NoError(t, Login(rec, Identity{UserID: "u1", UserName: "A B"}))

	_, ok := Restore(cookieRequest(t, rec))
	assert.False(t, ok)
}

func TestLogoutExpiresCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	Logout(rec)
	cs := rec.Result().Cookies()
	require.Len(t, cs, 1)
	assert.Equal(t, CookieName, cs[0].Name)
	assert.Less(t, cs[0].MaxAge, 0)
}
