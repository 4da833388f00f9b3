package auth

import (
	"net/http"
	"time"

	"github.com/goliatone/go-router"
)

// SessionCookieName is the cookie carrying the signed session
const SessionCookieName = "fahr-zua_session"

// SessionDuration is the default cookie lifetime
const SessionDuration = 30 * 24 * time.Hour

// commitCookie builds the Set-Cookie instruction that establishes a session.
// Secure only in production so local development over plain HTTP still works.
func commitCookie(token string, duration time.Duration, secure bool) *router.Cookie {
	return &router.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(duration.Seconds()),
		Expires:  time.Now().Add(duration),
		HTTPOnly: true,
		Secure:   secure,
		SameSite: "Lax",
	}
}

// destroyCookie builds the Set-Cookie instruction that expires the session
// client side. Revocation only works if the client honors it.
func destroyCookie(secure bool) *router.Cookie {
	return &router.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Now().Add(-time.Hour * (24 * 365)),
		HTTPOnly: true,
		Secure:   secure,
		SameSite: "Lax",
	}
}

// sessionTokenFromHeader extracts the raw session token from a Cookie
// request header. A missing or empty cookie is an empty session, not an
// error.
func sessionTokenFromHeader(cookieHeader string) (string, bool) {
	if cookieHeader == "" {
		return "", false
	}

	req := http.Request{Header: http.Header{"Cookie": []string{cookieHeader}}}
	cookie, err := req.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}

	return cookie.Value, true
}
