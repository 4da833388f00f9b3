package auth

import (
	"github.com/goliatone/go-router"
)

// RouteAuthenticator adapts the session manager to the router: a guard
// middleware for protected routes plus request-scoped helpers.
type RouteAuthenticator struct {
	sessions *SessionManager
	Logger   Logger
}

func NewHTTPAuthenticator(sessions *SessionManager) *RouteAuthenticator {
	return &RouteAuthenticator{
		sessions: sessions,
		Logger:   defLogger{},
	}
}

// Protected guards a route behind a valid session. Unauthenticated requests
// are redirected instead of handled; authenticated ones carry the user id in
// both the router locals and the request context.
func (a *RouteAuthenticator) Protected(redirectTo ...string) router.MiddlewareFunc {
	return func(next router.HandlerFunc) router.HandlerFunc {
		return func(ctx router.Context) error {
			authz := a.sessions.RequireUserID(ctx.Header("Cookie"), redirectTo...)
			if !authz.Authorized() {
				a.Logger.Info("Unauthenticated request, redirecting", "path", ctx.Path(), "to", authz.RedirectTo)
				return ctx.Redirect(authz.RedirectTo, router.StatusSeeOther)
			}

			ctx.Locals(UserIDLocalsKey, authz.UserID)
			ctx.SetContext(WithUserID(ctx.Context(), authz.UserID))

			return next(ctx)
		}
	}
}

// CurrentUser resolves the request's session to its user record. Either
// return may be nil: no valid session yields neither, and a store failure
// yields the logout redirect the caller must apply.
func (a *RouteAuthenticator) CurrentUser(ctx router.Context) (*PublicUser, *SessionRedirect) {
	return a.sessions.GetUser(ctx.Context(), ctx.Header("Cookie"))
}

// Logout clears the session cookie and redirects home
func (a *RouteAuthenticator) Logout(ctx router.Context) error {
	return a.sessions.Logout(ctx.Header("Cookie")).Apply(ctx)
}
