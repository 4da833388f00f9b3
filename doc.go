// Package auth implements cookie-session authentication for fahr-zua:
// registration, login, logout, and session-bound request authorization
// backed by a relational users table.
//
// Sessions are stateless. The cookie itself is the session: a signed token
// carrying the user id, verified against the configured secret on every
// request. There is no server-side session table, so logout only clears the
// client cookie.
//
// The package splits into three layers:
//   - Auther validates credentials and decides between a ValidationErrors
//     object (rendered back into the form) and a SessionRedirect (a redirect
//     instruction carrying the Set-Cookie commit).
//   - SessionManager owns the session lifecycle: create, read, require, and
//     destroy, all keyed off the raw Cookie request header.
//   - AuthController binds both to HTTP routes via go-router.
package auth
