// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"net/http"
	"sync"

	"github.com/desertthunder/byetz/internal/models"
	"github.com/google/uuid"
)

// FakeGateway is a test double covering every session gateway interface.
//
// Behavior is injected per call via the *Func fields; unset fields return
// zero values. Calls and submitted interactions are recorded for assertions.
type FakeGateway struct {
	mu sync.Mutex

	AuthenticatePlexFunc func(ctx context.Context, plexToken string) (models.AuthResponse, error)
	FeedFunc             func(ctx context.Context, limit, offset int) (models.FeedPage, error)
	SubmitFunc           func(ctx context.Context, interaction models.InteractionRequest) (models.InteractionResponse, error)
	ProfileFunc          func(ctx context.Context) (models.UserProfile, error)
	SavedClipsFunc       func(ctx context.Context) ([]models.Clip, error)
	SettingsFunc         func(ctx context.Context) (models.UserSettings, error)
	UpdateSettingsFunc   func(ctx context.Context, settings models.UserSettings) (models.UserSettings, error)
	TitlesFunc           func(ctx context.Context) ([]models.TasteProfileTitle, error)
	SubmitTasteFunc      func(ctx context.Context, selection models.TasteProfileSelection) error
	LibraryStatusFunc    func(ctx context.Context) (models.LibraryStatus, error)
	ToggleLibraryFunc    func(ctx context.Context, libraryID uuid.UUID, enabled bool) error

	feedCalls    int
	updateCalls  int
	Interactions []models.InteractionRequest
	Updates      []models.UserSettings
	Selections   []models.TasteProfileSelection
}

func (f *FakeGateway) AuthenticatePlex(ctx context.Context, plexToken string) (models.AuthResponse, error) {
	if f.AuthenticatePlexFunc != nil {
		return f.AuthenticatePlexFunc(ctx, plexToken)
	}
	return models.AuthResponse{}, nil
}

func (f *FakeGateway) Feed(ctx context.Context, limit, offset int) (models.FeedPage, error) {
	f.mu.Lock()
	f.feedCalls++
	f.mu.Unlock()

	if f.FeedFunc != nil {
		return f.FeedFunc(ctx, limit, offset)
	}
	return models.FeedPage{}, nil
}

// FeedCalls returns how many times Feed was invoked.
func (f *FakeGateway) FeedCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.feedCalls
}

func (f *FakeGateway) SubmitInteraction(ctx context.Context, interaction models.InteractionRequest) (models.InteractionResponse, error) {
	f.mu.Lock()
	f.Interactions = append(f.Interactions, interaction)
	f.mu.Unlock()

	if f.SubmitFunc != nil {
		return f.SubmitFunc(ctx, interaction)
	}
	return models.InteractionResponse{ID: uuid.New(), ClipID: interaction.ClipID, Action: string(interaction.Action)}, nil
}

// SubmittedInteractions returns a copy of the recorded interactions.
func (f *FakeGateway) SubmittedInteractions() []models.InteractionRequest {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]models.InteractionRequest, len(f.Interactions))
	copy(out, f.Interactions)
	return out
}

func (f *FakeGateway) Profile(ctx context.Context) (models.UserProfile, error) {
	if f.ProfileFunc != nil {
		return f.ProfileFunc(ctx)
	}
	return models.UserProfile{}, nil
}

func (f *FakeGateway) SavedClips(ctx context.Context) ([]models.Clip, error) {
	if f.SavedClipsFunc != nil {
		return f.SavedClipsFunc(ctx)
	}
	return nil, nil
}

func (f *FakeGateway) Settings(ctx context.Context) (models.UserSettings, error) {
	if f.SettingsFunc != nil {
		return f.SettingsFunc(ctx)
	}
	return models.UserSettings{}, nil
}

func (f *FakeGateway) UpdateSettings(ctx context.Context, settings models.UserSettings) (models.UserSettings, error) {
	f.mu.Lock()
	f.updateCalls++
	f.Updates = append(f.Updates, settings)
	f.mu.Unlock()

	if f.UpdateSettingsFunc != nil {
		return f.UpdateSettingsFunc(ctx, settings)
	}
	return settings, nil
}

// UpdateCalls returns how many times UpdateSettings was invoked.
func (f *FakeGateway) UpdateCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.updateCalls
}

// LastUpdate returns the most recent settings record pushed, if any.
func (f *FakeGateway) LastUpdate() (models.UserSettings, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.Updates) == 0 {
		return models.UserSettings{}, false
	}
	return f.Updates[len(f.Updates)-1], true
}

func (f *FakeGateway) TasteProfileTitles(ctx context.Context) ([]models.TasteProfileTitle, error) {
	if f.TitlesFunc != nil {
		return f.TitlesFunc(ctx)
	}
	return nil, nil
}

func (f *FakeGateway) SubmitTasteProfile(ctx context.Context, selection models.TasteProfileSelection) error {
	f.mu.Lock()
	f.Selections = append(f.Selections, selection)
	f.mu.Unlock()

	if f.SubmitTasteFunc != nil {
		return f.SubmitTasteFunc(ctx, selection)
	}
	return nil
}

func (f *FakeGateway) LibraryStatus(ctx context.Context) (models.LibraryStatus, error) {
	if f.LibraryStatusFunc != nil {
		return f.LibraryStatusFunc(ctx)
	}
	return models.LibraryStatus{}, nil
}

func (f *FakeGateway) DiscoverLibraries(ctx context.Context) error { return nil }

func (f *FakeGateway) ProcessLibraries(ctx context.Context) error { return nil }

func (f *FakeGateway) TriggerRescan(ctx context.Context) error { return nil }

func (f *FakeGateway) ToggleLibrary(ctx context.Context, libraryID uuid.UUID, enabled bool) error {
	if f.ToggleLibraryFunc != nil {
		return f.ToggleLibraryFunc(ctx, libraryID, enabled)
	}
	return nil
}

// MemStore is an in-memory credential store double.
type MemStore struct {
	mu     sync.Mutex
	tokens map[string]string
	Errs   map[string]error // per-operation injected failures: "save", "clear"
}

func NewMemStore() *MemStore {
	return &MemStore{tokens: make(map[string]string)}
}

func (m *MemStore) SaveAccessToken(token string) error { return m.save("access_token", token) }

func (m *MemStore) SavePlexToken(token string) error { return m.save("plex_token", token) }

func (m *MemStore) save(name, token string) error {
	if err := m.Errs["save"]; err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens[name] = token
	return nil
}

func (m *MemStore) AccessToken() (string, bool) { return m.get("access_token") }

func (m *MemStore) PlexToken() (string, bool) { return m.get("plex_token") }

func (m *MemStore) get(name string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	token, ok := m.tokens[name]
	return token, ok && token != ""
}

func (m *MemStore) Clear() error {
	if err := m.Errs["clear"]; err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens = make(map[string]string)
	return nil
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FWriter is an io.Writer that fails every write.
type FWriter struct{}

func (FWriter) Write([]byte) (int, error) {
	return 0, errors.New("write failed")
}

// LimitedWriter succeeds for a fixed number of writes, then fails.
type LimitedWriter struct {
	remaining int
	written   int
	w         io.Writer
}

func NewLimitedWriter(maxWrites, written int, w io.Writer) LimitedWriter {
	return LimitedWriter{remaining: maxWrites, written: written, w: w}
}

func (l *LimitedWriter) Write(p []byte) (int, error) {
	if l.remaining <= 0 {
		return 0, errors.New("write limit reached")
	}
	l.remaining--
	l.written += len(p)
	return l.w.Write(p)
}

// SyncSubmitter is an InteractionSubmitter double that records submissions
// synchronously, so tests can assert immediately after the call.
type SyncSubmitter struct {
	mu        sync.Mutex
	sessionID uuid.UUID
	Submitted []models.InteractionRequest
}

func NewSyncSubmitter() *SyncSubmitter {
	return &SyncSubmitter{sessionID: uuid.New()}
}

func (s *SyncSubmitter) Submit(clipID uuid.UUID, action models.ActionType, watchDurationMs *int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Submitted = append(s.Submitted, models.InteractionRequest{
		ClipID:          clipID,
		Action:          action,
		WatchDurationMs: watchDurationMs,
		SessionID:       s.sessionID,
	})
}

func (s *SyncSubmitter) SessionID() uuid.UUID { return s.sessionID }

// Actions returns the recorded action sequence in submission order.
func (s *SyncSubmitter) Actions() []models.ActionType {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.ActionType, len(s.Submitted))
	for i, req := range s.Submitted {
		out[i] = req.Action
	}
	return out
}
