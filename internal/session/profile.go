package session

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/byetz/internal/models"
	"github.com/desertthunder/byetz/internal/shared"
)

// ProfileGateway is the gateway surface the profile session needs.
type ProfileGateway interface {
	Profile(ctx context.Context) (models.UserProfile, error)
	SavedClips(ctx context.Context) ([]models.Clip, error)
}

// ProfileSession holds the account summary and saved-clip list.
type ProfileSession struct {
	gw     ProfileGateway
	logger *log.Logger

	mu         sync.Mutex
	profile    *models.UserProfile
	savedClips []models.Clip
	loading    bool
}

// NewProfileSession creates a ProfileSession.
func NewProfileSession(gw ProfileGateway, logger *log.Logger) *ProfileSession {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	return &ProfileSession{gw: gw, logger: logger}
}

// LoadProfile issues the profile and saved-clip reads in parallel and joins
// both before returning. Each result is applied on its own success, so one
// failing read does not discard the other; failures are logged and prior
// state kept.
func (s *ProfileSession) LoadProfile(ctx context.Context) {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	var (
		wg       sync.WaitGroup
		profile  models.UserProfile
		saved    []models.Clip
		pErr     error
		savedErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		profile, pErr = s.gw.Profile(ctx)
	}()
	go func() {
		defer wg.Done()
		saved, savedErr = s.gw.SavedClips(ctx)
	}()
	wg.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if pErr != nil {
		s.logger.Warnf("failed to load profile: %v", pErr)
	} else {
		s.profile = &profile
	}
	if savedErr != nil {
		s.logger.Warnf("failed to load saved clips: %v", savedErr)
	} else {
		s.savedClips = saved
	}
}

// Profile returns the last loaded account summary; false before the first
// successful load.
func (s *ProfileSession) Profile() (models.UserProfile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.profile == nil {
		return models.UserProfile{}, false
	}
	return *s.profile, true
}

// SavedClips returns the last loaded saved-clip list.
func (s *ProfileSession) SavedClips() []models.Clip {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Clip, len(s.savedClips))
	copy(out, s.savedClips)
	return out
}

// IsLoading reports whether a load is in flight.
func (s *ProfileSession) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}
