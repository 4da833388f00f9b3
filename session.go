package auth

import (
	"context"
	"time"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-router"
	"github.com/google/uuid"
)

// SessionRedirect is an instruction for the request boundary: redirect to To
// and commit Cookie on the way out. It is the only success value the auth
// operations produce.
type SessionRedirect struct {
	To     string
	Cookie *router.Cookie
}

// Apply writes the cookie and issues the redirect on the given context
func (r *SessionRedirect) Apply(ctx router.Context) error {
	if r.Cookie != nil {
		ctx.Cookie(r.Cookie)
	}
	return ctx.Redirect(r.To, router.StatusSeeOther)
}

// Authorization is the result of RequireUserID. Callers must branch: either
// the request is authorized and carries the user id, or it must be redirected
// instead of handled.
type Authorization struct {
	UserID     string
	RedirectTo string
}

// Authorized reports whether the session carried a trusted user id
func (a Authorization) Authorized() bool {
	return a.UserID != ""
}

// SessionManager owns the cookie session lifecycle. Sessions are immutable
// values exchanged per request; the manager holds no per-session state.
type SessionManager struct {
	tokens   TokenService
	repo     RepositoryManager
	duration time.Duration
	secure   bool
	logger   Logger
}

// NewSessionManager builds a SessionManager from the configured secret. The
// deployment mode flag only toggles the Secure cookie attribute.
func NewSessionManager(cfg Config, repo RepositoryManager) *SessionManager {
	duration := SessionDuration
	if cfg.GetSessionDuration() > 0 {
		duration = time.Duration(cfg.GetSessionDuration()) * time.Hour
	}

	logger := defLogger{}

	return &SessionManager{
		tokens:   NewTokenService([]byte(cfg.GetSigningKey()), duration, logger),
		repo:     repo,
		duration: duration,
		secure:   cfg.IsProduction(),
		logger:   logger,
	}
}

func (m *SessionManager) WithLogger(logger Logger) *SessionManager {
	m.logger = logger
	return m
}

// CreateUserSession builds a fresh session for the given user id and returns
// the redirect instruction committing it. Any prior session cookie is
// overwritten wholesale.
func (m *SessionManager) CreateUserSession(userID, redirectTo string) (*SessionRedirect, error) {
	token, err := m.tokens.Generate(userID)
	if err != nil {
		return nil, err
	}

	return &SessionRedirect{
		To:     redirectTo,
		Cookie: commitCookie(token, m.duration, m.secure),
	}, nil
}

// Logout destroys the client session: redirect to / with an expiring
// Set-Cookie. A missing or invalid incoming cookie is treated as an empty
// session, not an error.
func (m *SessionManager) Logout(cookieHeader string) *SessionRedirect {
	return &SessionRedirect{
		To:     "/",
		Cookie: destroyCookie(m.secure),
	}
}

// GetUserID parses and verifies the session from the raw Cookie header. The
// second return is false when there is no valid session; that is an absent
// result, not an error.
func (m *SessionManager) GetUserID(cookieHeader string) (string, bool) {
	token, ok := sessionTokenFromHeader(cookieHeader)
	if !ok {
		return "", false
	}

	claims, err := m.tokens.Validate(token)
	if err != nil {
		return "", false
	}

	if claims.UserID() == "" {
		return "", false
	}

	return claims.UserID(), true
}

// RequireUserID authorizes the request or tells the caller where to redirect
// instead. The redirect target defaults to /.
func (m *SessionManager) RequireUserID(cookieHeader string, redirectTo ...string) Authorization {
	target := "/"
	if len(redirectTo) > 0 && redirectTo[0] != "" {
		target = redirectTo[0]
	}

	userID, ok := m.GetUserID(cookieHeader)
	if !ok {
		return Authorization{RedirectTo: target}
	}

	return Authorization{UserID: userID}
}

// GetUser resolves the session to its user record, returning only the
// non-sensitive fields. No session or no matching record yields a nil user.
// An unexpected store error invalidates the session instead of surfacing:
// the caller gets the logout redirect and the session is treated as
// untrustworthy.
func (m *SessionManager) GetUser(ctx context.Context, cookieHeader string) (*PublicUser, *SessionRedirect) {
	userID, ok := m.GetUserID(cookieHeader)
	if !ok {
		return nil, nil
	}

	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, nil
	}

	user, err := m.repo.Users().GetByUserID(ctx, id)
	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, nil
		}

		m.logger.Error("GetUser store lookup failed, invalidating session", "error", err)
		return nil, m.Logout(cookieHeader)
	}

	return user.Public(), nil
}
