package session

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/byetz/internal/models"
	"github.com/desertthunder/byetz/internal/shared"
	"github.com/google/uuid"
)

// LibraryGateway is the gateway surface the library session needs.
type LibraryGateway interface {
	LibraryStatus(ctx context.Context) (models.LibraryStatus, error)
	DiscoverLibraries(ctx context.Context) error
	ProcessLibraries(ctx context.Context) error
	TriggerRescan(ctx context.Context) error
	ToggleLibrary(ctx context.Context, libraryID uuid.UUID, enabled bool) error
}

// LibrarySession holds the Plex library processing view.
type LibrarySession struct {
	gw     LibraryGateway
	logger *log.Logger

	mu      sync.Mutex
	status  *models.LibraryStatus
	loading bool
}

// NewLibrarySession creates a LibrarySession.
func NewLibrarySession(gw LibraryGateway, logger *log.Logger) *LibrarySession {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	return &LibrarySession{gw: gw, logger: logger}
}

// LoadStatus refreshes the library status; failures keep the prior view.
func (s *LibrarySession) LoadStatus(ctx context.Context) {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	status, err := s.gw.LibraryStatus(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.logger.Warnf("failed to load library status: %v", err)
		return
	}
	s.status = &status
}

// Discover asks the backend to discover Plex libraries.
func (s *LibrarySession) Discover(ctx context.Context) {
	if err := s.gw.DiscoverLibraries(ctx); err != nil {
		s.logger.Warnf("failed to discover libraries: %v", err)
	}
}

// Process asks the backend to start processing enabled libraries.
func (s *LibrarySession) Process(ctx context.Context) {
	if err := s.gw.ProcessLibraries(ctx); err != nil {
		s.logger.Warnf("failed to process libraries: %v", err)
	}
}

// Rescan asks the backend to rescan processed libraries.
func (s *LibrarySession) Rescan(ctx context.Context) {
	if err := s.gw.TriggerRescan(ctx); err != nil {
		s.logger.Warnf("failed to trigger rescan: %v", err)
	}
}

// Toggle enables or disables one library and reloads the status on success.
func (s *LibrarySession) Toggle(ctx context.Context, libraryID uuid.UUID, enabled bool) {
	if err := s.gw.ToggleLibrary(ctx, libraryID, enabled); err != nil {
		s.logger.Warnf("failed to toggle library %s: %v", libraryID, err)
		return
	}
	s.LoadStatus(ctx)
}

// Status returns the last loaded library view; false before the first
// successful load.
func (s *LibrarySession) Status() (models.LibraryStatus, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status == nil {
		return models.LibraryStatus{}, false
	}
	return *s.status, true
}

// IsLoading reports whether a status load is in flight.
func (s *LibrarySession) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}
