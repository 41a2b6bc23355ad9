package session

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mr-fahad-03/grace-tailor/internal/api"
	"github.com/mr-fahad-03/grace-tailor/internal/domain"
)

// AuthAPI is the slice of the API surface the store needs. api.AuthClient
// implements it.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*api.LoginResult, error)
	Verify(ctx context.Context) (*domain.User, error)
}

// Store holds the current authenticated identity and bearer token. It is the
// single writer of the token; every request reads it through the TokenSource
// interface. The token is persisted to disk so a restart can resume the
// session after a successful Verify.
type Store struct {
	Auth             AuthAPI // set after the API client is constructed
	Logger           *slog.Logger
	TokenPath        string
	OnSessionExpired func()

	mu    sync.Mutex
	token string
	user  *domain.User
}

// New returns a store primed with any token persisted at tokenPath. A token
// that is already past its JWT expiry is dropped without a network call.
func New(tokenPath string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{Logger: logger, TokenPath: tokenPath}
	if tokenPath == "" {
		return s
	}
	raw, err := os.ReadFile(tokenPath)
	if err != nil {
		return s
	}
	token := string(raw)
	if tokenExpired(token) {
		logger.Info("persisted token expired, discarding")
		_ = os.Remove(tokenPath)
		return s
	}
	s.token = token
	return s
}

// Login authenticates and stores the resulting token and user. The returned
// error carries the server's message when the server provided one; callers
// derive the display text with api.ErrorMessage.
func (s *Store) Login(ctx context.Context, email, password string) error {
	res, err := s.Auth.Login(ctx, email, password)
	if err != nil {
		s.Logger.Warn("login failed", "email", email, "err", err)
		return err
	}
	s.mu.Lock()
	s.token = res.Token
	user := res.User
	s.user = &user
	s.mu.Unlock()
	s.persist(res.Token)
	return nil
}

// Logout clears the stored token and identity.
func (s *Store) Logout() {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()
	s.discard()
}

// Verify validates a persisted token against the server once at startup.
// Any failure invalidates the session and the store proceeds
// unauthenticated; the failure is not fatal.
func (s *Store) Verify(ctx context.Context) bool {
	s.mu.Lock()
	token := s.token
	s.mu.Unlock()
	if token == "" {
		return false
	}
	user, err := s.Auth.Verify(ctx)
	if err != nil {
		s.Logger.Warn("session verification failed", "err", err)
		s.Logout()
		return false
	}
	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	return true
}

// CurrentUser returns the authenticated identity, or nil.
func (s *Store) CurrentUser() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Token implements api.TokenSource.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// HandleUnauthorized implements api.TokenSource: any 401 from any resource
// call clears the session exactly like Logout and fires the expiry hook so
// the shell can return to its login surface.
func (s *Store) HandleUnauthorized() {
	s.Logout()
	if s.OnSessionExpired != nil {
		s.OnSessionExpired()
	}
}

func (s *Store) persist(token string) {
	if s.TokenPath == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.TokenPath), 0o700); err != nil {
		s.Logger.Warn("could not create token directory", "err", err)
		return
	}
	if err := os.WriteFile(s.TokenPath, []byte(token), 0o600); err != nil {
		s.Logger.Warn("could not persist token", "err", err)
	}
}

func (s *Store) discard() {
	if s.TokenPath == "" {
		return
	}
	_ = os.Remove(s.TokenPath)
}

func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		// Not a JWT; let the server judge it.
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
