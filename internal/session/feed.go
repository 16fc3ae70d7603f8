package session

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/byetz/internal/models"
	"github.com/desertthunder/byetz/internal/shared"
	"github.com/google/uuid"
)

const (
	// feedPageSize is the page size requested from the backend.
	feedPageSize = 20
	// prefetchThreshold is the remaining-clip count that triggers an
	// anticipatory next-page fetch after an advance.
	prefetchThreshold = 5
)

// FeedGateway is the gateway surface the feed session needs.
type FeedGateway interface {
	Feed(ctx context.Context, limit, offset int) (models.FeedPage, error)
}

// InteractionSubmitter delivers interactions asynchronously; submissions are
// fire-and-forget and must never block the caller.
type InteractionSubmitter interface {
	Submit(clipID uuid.UUID, action models.ActionType, watchDurationMs *int)
	SessionID() uuid.UUID
}

// FeedSession owns the paginated clip sequence and playback cursor.
//
// The sequence is append-only and preserves server order; the server is
// trusted not to repeat clips across pages within one session, so no
// deduplication happens here. Liked/saved flags are optimistic local overlays
// that never regress, even when the server write fails.
type FeedSession struct {
	ctx       context.Context
	gw        FeedGateway
	submitter InteractionSubmitter
	logger    *log.Logger

	mu           sync.Mutex
	clips        []models.Clip
	currentIndex int
	loading      bool
	playing      bool
	progress     float64
	liked        map[uuid.UUID]struct{}
	saved        map[uuid.UUID]struct{}
}

// FeedOpts configures a FeedSession.
type FeedOpts struct {
	// Context is used for loads the session starts on its own (prefetch,
	// tail refill). In-flight requests are never cancelled by navigation,
	// so this is typically the process context.
	Context context.Context
	Logger  *log.Logger
}

// NewFeedSession creates a FeedSession over the given gateway and submitter.
func NewFeedSession(gw FeedGateway, submitter InteractionSubmitter, opts FeedOpts) *FeedSession {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}

	return &FeedSession{
		ctx:       opts.Context,
		gw:        gw,
		submitter: submitter,
		logger:    opts.Logger,
		playing:   true,
		liked:     make(map[uuid.UUID]struct{}),
		saved:     make(map[uuid.UUID]struct{}),
	}
}

// LoadFeed fetches the next page and appends it to the sequence.
//
// Reentrancy guard: if a load is already in flight the call is a no-op, so
// rapid navigation cannot issue duplicate page fetches. Failures are swallowed
// (logged) and the sequence is left unchanged; the next forward navigation
// retries naturally.
func (s *FeedSession) LoadFeed(ctx context.Context) {
	s.mu.Lock()
	if s.loading {
		s.mu.Unlock()
		return
	}
	s.loading = true
	offset := len(s.clips)
	s.mu.Unlock()

	page, err := s.gw.Feed(ctx, feedPageSize, offset)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.logger.Warnf("failed to load feed: %v", err)
		return
	}
	s.clips = append(s.clips, page.Clips...)
}

// NextClip advances the cursor by one and resets playback progress.
//
// Advancing past the tail is deferred: at the tail the cursor stays put and a
// fresh load is started instead, so the user never skips past an unfetched
// region. After a successful advance, crossing into the last
// prefetchThreshold clips starts an asynchronous read-ahead load without
// blocking, so playback never stalls waiting on network.
func (s *FeedSession) NextClip() {
	s.mu.Lock()
	if s.currentIndex >= len(s.clips)-1 {
		s.mu.Unlock()
		go s.LoadFeed(s.ctx)
		return
	}

	s.currentIndex++
	s.progress = 0
	prefetch := s.currentIndex >= len(s.clips)-prefetchThreshold
	s.mu.Unlock()

	if prefetch {
		go s.LoadFeed(s.ctx)
	}
}

// PreviousClip moves the cursor back by one; no-op at the head.
func (s *FeedSession) PreviousClip() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentIndex == 0 {
		return
	}
	s.currentIndex--
	s.progress = 0
}

// TogglePlayback flips the playing flag. Purely local.
func (s *FeedSession) TogglePlayback() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playing = !s.playing
}

// LikeClip records a like optimistically and submits it in the background.
//
// The local flag is never reverted if the submission fails; instant feedback
// wins over server consistency.
func (s *FeedSession) LikeClip(clip models.Clip) {
	s.mu.Lock()
	s.liked[clip.ID] = struct{}{}
	s.mu.Unlock()

	s.submitter.Submit(clip.ID, models.ActionLike, nil)
}

// DislikeClip submits a dislike and advances to the next clip.
func (s *FeedSession) DislikeClip(clip models.Clip) {
	s.submitter.Submit(clip.ID, models.ActionDislike, nil)
	s.NextClip()
}

// SaveClip records a save optimistically and submits it in the background.
func (s *FeedSession) SaveClip(clip models.Clip) {
	s.mu.Lock()
	s.saved[clip.ID] = struct{}{}
	s.mu.Unlock()

	s.submitter.Submit(clip.ID, models.ActionSave, nil)
}

// SkipClip submits a skip with the watched duration and advances.
func (s *FeedSession) SkipClip(clip models.Clip, watchDurationMs int) {
	s.submitter.Submit(clip.ID, models.ActionSkip, &watchDurationMs)
	s.NextClip()
}

// CompleteWatch submits a watch-complete with the full watched duration.
func (s *FeedSession) CompleteWatch(clip models.Clip, watchDurationMs int) {
	s.submitter.Submit(clip.ID, models.ActionWatchComplete, &watchDurationMs)
}

// IsLiked reports whether the clip is in the local liked overlay.
func (s *FeedSession) IsLiked(clip models.Clip) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.liked[clip.ID]
	return ok
}

// IsSaved reports whether the clip is in the local saved overlay.
func (s *FeedSession) IsSaved(clip models.Clip) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.saved[clip.ID]
	return ok
}

// CurrentClip returns the clip under the cursor; false while the sequence is
// empty.
func (s *FeedSession) CurrentClip() (models.Clip, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentIndex < 0 || s.currentIndex >= len(s.clips) {
		return models.Clip{}, false
	}
	return s.clips[s.currentIndex], true
}

// Clips returns a copy of the loaded clip sequence in server order.
func (s *FeedSession) Clips() []models.Clip {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Clip, len(s.clips))
	copy(out, s.clips)
	return out
}

// CurrentIndex returns the playback cursor.
func (s *FeedSession) CurrentIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentIndex
}

// IsLoading reports whether a page load is in flight.
func (s *FeedSession) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// IsPlaying reports the playback flag.
func (s *FeedSession) IsPlaying() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playing
}

// Progress returns the playback progress fraction in [0, 1].
func (s *FeedSession) Progress() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.progress
}

// SetProgress records the playback progress reported by the player, clamped
// to [0, 1].
func (s *FeedSession) SetProgress(fraction float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	s.progress = fraction
}

// SessionID returns the fixed identifier attached to every interaction.
func (s *FeedSession) SessionID() uuid.UUID {
	return s.submitter.SessionID()
}
