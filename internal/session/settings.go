package session

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/byetz/internal/models"
	"github.com/desertthunder/byetz/internal/shared"
)

// DefaultDebounce is how long edits are coalesced before the record is pushed.
const DefaultDebounce = 500 * time.Millisecond

// SettingsGateway is the gateway surface the settings sync needs.
type SettingsGateway interface {
	Settings(ctx context.Context) (models.UserSettings, error)
	UpdateSettings(ctx context.Context, settings models.UserSettings) (models.UserSettings, error)
}

// SettingsSync owns the preference record with debounced write-through.
//
// Any mutation restarts the single debounce timer; only the most recent edit
// within the window results in a network write, and the entire current record
// (not a diff) is pushed. Last-write-wins on both sides, no versioning.
type SettingsSync struct {
	ctx      context.Context
	gw       SettingsGateway
	logger   *log.Logger
	debounce time.Duration

	mu       sync.Mutex
	settings models.UserSettings
	timer    *time.Timer
}

// SettingsOpts configures a SettingsSync.
type SettingsOpts struct {
	Context  context.Context
	Logger   *log.Logger
	Debounce time.Duration // tests shorten this; zero means DefaultDebounce
}

// NewSettingsSync creates a SettingsSync with client-side defaults that hold
// until Load overwrites them.
func NewSettingsSync(gw SettingsGateway, opts SettingsOpts) *SettingsSync {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}

	return &SettingsSync{
		ctx:      opts.Context,
		gw:       gw,
		logger:   opts.Logger,
		debounce: opts.Debounce,
		settings: models.UserSettings{
			ContentMaturityFilter: "all",
			ClipQuality:           "1080p",
			NotificationsEnabled:  true,
		},
	}
}

// Load fetches the record once at session start and overwrites all local
// fields without scheduling a write. Failures keep the defaults.
func (s *SettingsSync) Load(ctx context.Context) {
	settings, err := s.gw.Settings(ctx)
	if err != nil {
		s.logger.Warnf("failed to load settings: %v", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
}

// SetSubtitleOverlay mutates the field and restarts the debounce window.
func (s *SettingsSync) SetSubtitleOverlay(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.SubtitleOverlay = v
	s.scheduleLocked()
}

// SetContentMaturityFilter mutates the field and restarts the debounce window.
func (s *SettingsSync) SetContentMaturityFilter(v string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.ContentMaturityFilter = v
	s.scheduleLocked()
}

// SetClipQuality mutates the field and restarts the debounce window.
func (s *SettingsSync) SetClipQuality(v string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.ClipQuality = v
	s.scheduleLocked()
}

// SetNotificationsEnabled mutates the field and restarts the debounce window.
func (s *SettingsSync) SetNotificationsEnabled(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.NotificationsEnabled = v
	s.scheduleLocked()
}

// scheduleLocked restarts the debounce timer. Earlier pending writes are
// cancelled outright, not queued. Callers hold s.mu.
func (s *SettingsSync) scheduleLocked() {
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, s.push)
}

// push writes the full current record to the server.
func (s *SettingsSync) push() {
	s.mu.Lock()
	settings := s.settings
	s.mu.Unlock()

	if _, err := s.gw.UpdateSettings(s.ctx, settings); err != nil {
		s.logger.Warnf("failed to save settings: %v", err)
	}
}

// Flush cancels any pending debounce and pushes the current record
// immediately. Used before process exit so a trailing edit is not lost.
func (s *SettingsSync) Flush() error {
	s.mu.Lock()
	pending := s.timer != nil && s.timer.Stop()
	s.timer = nil
	settings := s.settings
	s.mu.Unlock()

	if !pending {
		return nil
	}
	_, err := s.gw.UpdateSettings(s.ctx, settings)
	return err
}

// Settings returns the current local record.
func (s *SettingsSync) Settings() models.UserSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}
