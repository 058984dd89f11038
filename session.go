package askademy

import (
	"context"
	"sync"

	"github.com/goliatone/go-errors"
)

// AuthResponse is the payload the backend returns from the auth endpoints.
type AuthResponse struct {
	Token string `json:"token"`
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// AuthService is the external auth endpoint boundary the Session delegates
// to. The REST client implements it; tests mock it.
type AuthService interface {
	Login(ctx context.Context, email, password string) (AuthResponse, error)
	Register(ctx context.Context, input RegisterInput) error
}

// Session is the single holder of the current credential and derived
// identity. One instance exists per client process; it is injected into the
// Pipeline and Gate rather than shared through package state. Every mutation
// replaces credential and identity together, so consumers never observe a
// half-updated session.
type Session struct {
	mu         sync.RWMutex
	credential string
	identity   *Identity
	loading    bool

	store  CredentialStore
	codec  *Codec
	auth   AuthService
	logger Logger
}

// NewSession returns a Session in the loading state. Call Restore once at
// startup; until then, Gate renders pending rather than redirecting.
func NewSession(store CredentialStore) *Session {
	return &Session{
		store:   store,
		codec:   NewCodec(),
		loading: true,
		logger:  defLogger{},
	}
}

func (s *Session) WithLogger(logger Logger) *Session {
	if logger != nil {
		s.logger = logger
		s.codec = s.codec.WithLogger(logger)
	}
	return s
}

func (s *Session) WithCodec(codec *Codec) *Session {
	if codec != nil {
		s.codec = codec
	}
	return s
}

// WithAuthService wires the auth endpoint client. Kept as a builder because
// the REST client needs the Session (for the pipeline) before the Session
// can point back at the client's auth service.
func (s *Session) WithAuthService(auth AuthService) *Session {
	s.auth = auth
	return s
}

// Restore reads any persisted credential and derives the identity from it.
// It always finishes by clearing the loading flag, success or not, so
// dependent views are never blocked indefinitely. A credential that fails to
// decode is discarded entirely.
func (s *Session) Restore() {
	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	credential, ok := s.store.Get()
	if !ok {
		return
	}

	identity, err := s.codec.DecodeIdentity(credential)
	if err != nil {
		s.logger.Warn("persisted credential failed to decode, discarding", "error", err)
		if clearErr := s.store.Clear(); clearErr != nil {
			s.logger.Warn("unable to clear persisted credential", "error", clearErr)
		}
		return
	}

	s.mu.Lock()
	s.credential = credential
	s.identity = &identity
	s.mu.Unlock()
}

// Login authenticates against the backend and installs the returned
// credential. The server response is authoritative for id, email, and role,
// taking precedence over anything embedded in the token. On failure the
// session is left unchanged and a classified error is returned for inline
// display.
func (s *Session) Login(ctx context.Context, email, password string) error {
	input := LoginInput{Email: email, Password: password}
	if err := input.Validate(); err != nil {
		return err
	}

	if s.auth == nil {
		return errors.New("session has no auth service configured", errors.CategoryOperation)
	}

	res, err := s.auth.Login(ctx, email, password)
	if err != nil {
		s.logger.Info("login rejected", "email", email, "error", err)
		return err
	}

	role, ok := ParseRole(res.Role)
	if !ok {
		s.logger.Error("login response carried unknown role", "role", res.Role)
		return errors.New("unexpected role in login response", errors.CategoryInternal).
			WithTextCode(textCodeServerError)
	}

	identity := Identity{AccountID: res.ID, Email: res.Email, Role: role}

	s.mu.Lock()
	s.credential = res.Token
	s.identity = &identity
	s.mu.Unlock()

	if err := s.store.Set(res.Token); err != nil {
		// The in-memory session stays valid for this process either way.
		s.logger.Warn("unable to persist credential", "error", err)
	}

	return nil
}

// Register creates an account via the backend. It never mutates the session;
// the user still logs in explicitly afterwards.
func (s *Session) Register(ctx context.Context, input RegisterInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	if s.auth == nil {
		return errors.New("session has no auth service configured", errors.CategoryOperation)
	}

	return s.auth.Register(ctx, input)
}

// Logout clears the credential, identity, and persisted storage. Safe to
// call when already logged out.
func (s *Session) Logout() {
	s.clear()
}

// Revoke implements SessionRevoker; the pipeline calls it when the backend
// rejects the credential on a non-auth endpoint.
func (s *Session) Revoke() {
	s.logger.Info("session revoked by server, clearing credentials")
	s.clear()
}

func (s *Session) clear() {
	s.mu.Lock()
	s.credential = ""
	s.identity = nil
	s.mu.Unlock()

	if err := s.store.Clear(); err != nil {
		s.logger.Warn("unable to clear persisted credential", "error", err)
	}
}

// Credential implements CredentialSource for the pipeline.
func (s *Session) Credential() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.credential, s.credential != ""
}

// Identity returns the active identity, if any.
func (s *Session) Identity() (Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return Identity{}, false
	}
	return *s.identity, true
}

// Loading reports whether the initial restore has completed yet.
func (s *Session) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Authenticated reports whether a credential and identity are present.
func (s *Session) Authenticated() bool {
	_, ok := s.Identity()
	return ok
}
