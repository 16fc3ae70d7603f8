package session

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/byetz/internal/models"
	"github.com/desertthunder/byetz/internal/shared"
	"github.com/google/uuid"
)

// AuthState enumerates the coarse application states.
//
// Exactly one is active at a time. StateNeedsTasteProfile is only reachable
// mid-session after a fresh login; it is never restored across restarts.
type AuthState int

const (
	StateLoading AuthState = iota
	StateUnauthenticated
	StateNeedsTasteProfile
	StateAuthenticated
)

func (s AuthState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateUnauthenticated:
		return "unauthenticated"
	case StateNeedsTasteProfile:
		return "needs-taste-profile"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// AuthGateway is the gateway surface the auth session needs.
type AuthGateway interface {
	AuthenticatePlex(ctx context.Context, plexToken string) (models.AuthResponse, error)
}

// CredentialStore is the persistence capability for the two authentication
// secrets. Reads are infallible; absence is a valid state.
type CredentialStore interface {
	SaveAccessToken(token string) error
	SavePlexToken(token string) error
	AccessToken() (string, bool)
	PlexToken() (string, bool)
	Clear() error
}

// AuthSession owns the application state machine.
//
// It is the sole writer of the auth state; all other components only read it.
// Valid transitions:
//
//	loading → unauthenticated | authenticated   (CheckExistingAuth)
//	unauthenticated → needs-taste-profile       (AuthenticateWithPlex, success)
//	needs-taste-profile → authenticated         (CompleteTasteProfile)
//	authenticated → unauthenticated             (Logout)
//
// Anything else is ignored.
type AuthSession struct {
	gw     AuthGateway
	store  CredentialStore
	logger *log.Logger

	mu       sync.Mutex
	state    AuthState
	userID   uuid.UUID
	username string
	errMsg   string
}

// NewAuthSession creates an AuthSession in the loading state.
//
// Callers are expected to invoke CheckExistingAuth immediately at process
// start; loading is transient and exits synchronously.
func NewAuthSession(gw AuthGateway, store CredentialStore, logger *log.Logger) *AuthSession {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	return &AuthSession{
		gw:     gw,
		store:  store,
		logger: logger,
		state:  StateLoading,
	}
}

// CheckExistingAuth derives the initial state from the credential store.
//
// A present token means authenticated, an absent one unauthenticated; there is
// no failure mode.
func (s *AuthSession) CheckExistingAuth() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.store.AccessToken(); ok {
		s.state = StateAuthenticated
	} else {
		s.state = StateUnauthenticated
	}
}

// AuthenticateWithPlex exchanges the upstream Plex token for a bearer token.
//
// On success both secrets are persisted and the session moves to
// needs-taste-profile. On failure the state is left unchanged and a
// human-readable message is published via ErrorMessage; no retry is attempted.
func (s *AuthSession) AuthenticateWithPlex(ctx context.Context, plexToken string) error {
	s.mu.Lock()
	if s.state != StateUnauthenticated {
		state := s.state
		s.mu.Unlock()
		s.logger.Warnf("ignoring login attempt in state %s", state)
		return nil
	}
	s.mu.Unlock()

	resp, err := s.gw.AuthenticatePlex(ctx, plexToken)
	if err != nil {
		s.mu.Lock()
		s.errMsg = err.Error()
		s.mu.Unlock()
		s.logger.Warnf("plex authentication failed: %v", err)
		return shared.ErrAuthFailed
	}

	// Two independent secrets; losing either forces a re-login.
	if err := s.store.SaveAccessToken(resp.AccessToken); err != nil {
		s.logger.Errorf("failed to persist access token: %v", err)
	}
	if err := s.store.SavePlexToken(plexToken); err != nil {
		s.logger.Errorf("failed to persist plex token: %v", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.userID = resp.UserID
	s.username = resp.Username
	s.errMsg = ""
	s.state = StateNeedsTasteProfile
	return nil
}

// CompleteTasteProfile is the pure needs-taste-profile → authenticated
// transition. The selections were already submitted by the taste profile
// session; there is no network call here.
func (s *AuthSession) CompleteTasteProfile() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateNeedsTasteProfile {
		return
	}
	s.state = StateAuthenticated
}

// Logout clears the credential store and cached identity and moves to
// unauthenticated unconditionally. It never fails from the caller's
// perspective; a store-clear error is logged and ignored.
func (s *AuthSession) Logout() {
	if err := s.store.Clear(); err != nil {
		s.logger.Warnf("failed to clear credential store: %v", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.userID = uuid.Nil
	s.username = ""
	s.errMsg = ""
	s.state = StateUnauthenticated
}

// State returns the current auth state.
func (s *AuthSession) State() AuthState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// UserID returns the cached user id from the last successful login.
func (s *AuthSession) UserID() uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userID
}

// Username returns the cached username from the last successful login.
func (s *AuthSession) Username() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.username
}

// ErrorMessage returns the human-readable message from the last failed login,
// empty when the last attempt succeeded.
func (s *AuthSession) ErrorMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}
