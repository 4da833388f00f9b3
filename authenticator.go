package auth

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/goliatone/hashid/pkg/hashid"
	"github.com/uptrace/bun"
)

// AuthResult is the outcome of Register and Login: exactly one of Errors or
// Redirect is set. Neither operation ever returns a bare user.
type AuthResult struct {
	Errors   *ValidationErrors
	Redirect *SessionRedirect
}

// Failed reports whether the attempt produced validation errors
func (r *AuthResult) Failed() bool {
	return r != nil && r.Errors.Any()
}

// Auther orchestrates the user store, the password hasher, and the session
// manager
type Auther struct {
	repo      RepositoryManager
	sessions  *SessionManager
	logger    Logger
	useHashid bool
}

// NewAuthenticator returns a new Authenticator
func NewAuthenticator(repo RepositoryManager, sessions *SessionManager) *Auther {
	return &Auther{
		repo:     repo,
		sessions: sessions,
		logger:   defLogger{},
	}
}

func (s *Auther) WithLogger(logger Logger) *Auther {
	s.logger = logger
	return s
}

// WithHashidIDs derives new user ids deterministically from the email
// instead of minting random UUIDs.
func (s *Auther) WithHashidIDs() *Auther {
	s.useHashid = true
	return s
}

var _ Authenticator = (*Auther)(nil)

// Register validates the raw credentials and either creates the user and
// establishes a session, or returns the field errors. Rules run in order and
// the first failing group wins; only the required-field group may flag both
// fields at once. No record is written until every rule passes.
func (s *Auther) Register(ctx context.Context, email, password string) (*AuthResult, error) {
	if errs := validateRegistration(email, password); errs.Any() {
		return &AuthResult{Errors: errs}, nil
	}

	if _, err := s.repo.Users().GetByEmail(ctx, email); err == nil {
		return &AuthResult{Errors: &ValidationErrors{Email: MsgEmailTaken}}, nil
	} else if !repository.IsRecordNotFound(err) {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to check for existing user")
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to hash password")
	}

	user := &User{
		Email:        email,
		PasswordHash: hash,
	}
	if s.useHashid {
		if id, err := hashid.NewUUID(email); err == nil {
			user.ID = id
		}
	}

	ctx, cancel := context.WithTimeout(ctx, time.Second*10)
	defer cancel()

	err = s.repo.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		created, err := s.repo.Users().CreateTx(ctx, tx, user)
		if err != nil {
			return err
		}
		user = created
		return nil
	})

	if err != nil {
		// a concurrent registration won the insert; same answer as the
		// lookup above
		if IsUniqueViolation(err) {
			return &AuthResult{Errors: &ValidationErrors{Email: MsgEmailTaken}}, nil
		}
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "user registration transaction failed")
	}

	redirect, err := s.sessions.CreateUserSession(user.ID.String(), "/")
	if err != nil {
		return nil, err
	}

	return &AuthResult{Redirect: redirect}, nil
}

// Login verifies the credentials and establishes a session. Unknown email
// and wrong password produce byte-identical results.
func (s *Auther) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	incorrect := &AuthResult{Errors: &ValidationErrors{Email: MsgIncorrectEmailOrPw}}

	user, err := s.repo.Users().GetByEmail(ctx, email)
	if err != nil {
		if repository.IsRecordNotFound(err) {
			return incorrect, nil
		}
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to retrieve user during login")
	}

	if err := ComparePasswordAndHash(password, user.PasswordHash); err != nil {
		if err != ErrMismatchedHashAndPassword {
			s.logger.Error("Login password comparison error", "error", err)
		}
		return incorrect, nil
	}

	redirect, err := s.sessions.CreateUserSession(user.ID.String(), "/")
	if err != nil {
		return nil, err
	}

	return &AuthResult{Redirect: redirect}, nil
}

func validateRegistration(email, password string) *ValidationErrors {
	errs := &ValidationErrors{}

	if email == "" {
		errs.Email = MsgEmailRequired
	}
	if password == "" {
		errs.Password = MsgPasswordRequired
	}
	if errs.Any() {
		return errs
	}

	if !strings.Contains(email, "@") {
		errs.Email = MsgEmailInvalid
		return errs
	}

	if utf8.RuneCountInString(password) < 6 {
		errs.Password = MsgPasswordTooShort
		return errs
	}

	return errs
}

// Sessions exposes the session manager the authenticator commits through
func (s *Auther) Sessions() *SessionManager {
	return s.sessions
}
