package session

import (
	"context"
	"net/http"
	"time"

	"trotter/globals"

	"github.com/golang-jwt/jwt/v5"
)

// The session is the only client-side state that survives a reload: the
// user's id, display name and email, carried in a signed cookie. Everything
// else is re-fetched from the backend.

const CookieName = "trotter_session"

const sessionTTL = 7 * 24 * time.Hour

type Identity struct {
	UserID    string
	UserName  string
	UserEmail string
}

type Claims struct {
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
	jwt.RegisteredClaims
}

// Login and Logout are the only two operations that mutate the session.
// Every other component reads it through Restore or FromContext.

func Login(w http.ResponseWriter, id Identity) error {
	claims := &Claims{
		UserName:  id.UserName,
		UserEmail: id.UserEmail,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.UserID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(globals.JwtSecret)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(sessionTTL.Seconds()),
	})
	return nil
}

func Logout(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

// Restore rebuilds the identity from the session cookie alone; it never
// talks to the backend. A missing, expired or partially populated cookie
// leaves the session anonymous.
func Restore(r *http.Request) (Identity, bool) {
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return Identity{}, false
	}
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(c.Value, claims, func(t *jwt.Token) (any, error) {
		return globals.JwtSecret, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, false
	}
	id := Identity{
		UserID:    claims.Subject,
		UserName:  claims.UserName,
		UserEmail: claims.UserEmail,
	}
	if id.UserID == "" || id.UserName == "" || id.UserEmail == "" {
		return Identity{}, false
	}
	return id, true
}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, globals.IdentityKey, id)
}

func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(globals.IdentityKey).(Identity)
	return id, ok && id.UserID != ""
}
