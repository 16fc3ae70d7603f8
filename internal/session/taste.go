package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/byetz/internal/models"
	"github.com/desertthunder/byetz/internal/shared"
)

// MinSelections is the smallest taste profile the backend accepts. The
// session validates it locally instead of trusting the presentation layer to
// gate the submit button.
const MinSelections = 10

// TasteGateway is the gateway surface the taste profile session needs.
type TasteGateway interface {
	TasteProfileTitles(ctx context.Context) ([]models.TasteProfileTitle, error)
	SubmitTasteProfile(ctx context.Context, selection models.TasteProfileSelection) error
}

// TasteProfileSession owns the one-time multi-select taste setup flow.
//
// Selection toggling is idempotent and purely local; the set is cleared only
// by process restart or successful submission.
type TasteProfileSession struct {
	gw     TasteGateway
	logger *log.Logger

	mu       sync.Mutex
	titles   []models.TasteProfileTitle
	selected map[string]struct{}
	loading  bool
}

// NewTasteProfileSession creates a TasteProfileSession.
func NewTasteProfileSession(gw TasteGateway, logger *log.Logger) *TasteProfileSession {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	return &TasteProfileSession{
		gw:       gw,
		logger:   logger,
		selected: make(map[string]struct{}),
	}
}

// LoadTitles fetches the candidate list once. Failures are swallowed and the
// prior (possibly empty) list kept.
func (s *TasteProfileSession) LoadTitles(ctx context.Context) {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	titles, err := s.gw.TasteProfileTitles(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.logger.Warnf("failed to load taste profile titles: %v", err)
		return
	}
	s.titles = titles
}

// ToggleSelection flips membership of the media id in the selection set.
func (s *TasteProfileSession) ToggleSelection(mediaID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.selected[mediaID]; ok {
		delete(s.selected, mediaID)
	} else {
		s.selected[mediaID] = struct{}{}
	}
}

// IsSelected reports membership of the media id in the selection set.
func (s *TasteProfileSession) IsSelected(mediaID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.selected[mediaID]
	return ok
}

// SelectedCount returns the size of the selection set.
func (s *TasteProfileSession) SelectedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.selected)
}

// Titles returns the candidate list in server order.
func (s *TasteProfileSession) Titles() []models.TasteProfileTitle {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.TasteProfileTitle, len(s.titles))
	copy(out, s.titles)
	return out
}

// IsLoading reports whether the candidate fetch is in flight.
func (s *TasteProfileSession) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Submit sends the selected subset of candidate titles.
//
// The selection must contain at least MinSelections entries; a smaller set is
// rejected here with [shared.ErrTooFewSelections], matching the backend's
// contract. On success the selection set is cleared so the flow cannot be
// replayed.
func (s *TasteProfileSession) Submit(ctx context.Context) error {
	s.mu.Lock()
	if len(s.selected) < MinSelections {
		count := len(s.selected)
		s.mu.Unlock()
		return fmt.Errorf("%w: have %d, need %d", shared.ErrTooFewSelections, count, MinSelections)
	}

	var picked []models.TasteProfileTitle
	for _, title := range s.titles {
		if _, ok := s.selected[title.MediaID]; ok {
			picked = append(picked, title)
		}
	}
	s.mu.Unlock()

	if err := s.gw.SubmitTasteProfile(ctx, models.TasteProfileSelection{Selections: picked}); err != nil {
		s.logger.Warnf("failed to submit taste profile: %v", err)
		return err
	}

	s.mu.Lock()
	s.selected = make(map[string]struct{})
	s.mu.Unlock()
	return nil
}
