package tasks

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/byetz/internal/models"
	"github.com/desertthunder/byetz/internal/shared"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const defaultTimeout = 10 * time.Second

// InteractionGateway is the gateway surface the submitter needs.
type InteractionGateway interface {
	SubmitInteraction(ctx context.Context, interaction models.InteractionRequest) (models.InteractionResponse, error)
}

// Submitter sends interactions to the backend without blocking the caller.
//
// Every submission carries the same session id, generated once per submitter
// lifetime, so the server can group one viewing session.
type Submitter struct {
	gw        InteractionGateway
	logger    *log.Logger
	limiter   *rate.Limiter
	sessionID uuid.UUID
	timeout   time.Duration
	wg        sync.WaitGroup
}

// SubmitterOpts configures a Submitter.
type SubmitterOpts struct {
	Logger    *log.Logger
	SessionID uuid.UUID     // zero means a fresh id is generated
	Limiter   *rate.Limiter // nil means 5 req/s with burst 10
	Timeout   time.Duration // per-submission deadline; zero means 10s
}

// NewSubmitter creates a Submitter over the given gateway.
func NewSubmitter(gw InteractionGateway, opts SubmitterOpts) *Submitter {
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.SessionID == uuid.Nil {
		opts.SessionID = uuid.New()
	}
	if opts.Limiter == nil {
		opts.Limiter = rate.NewLimiter(rate.Limit(5), 10)
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}

	return &Submitter{
		gw:        gw,
		logger:    opts.Logger,
		limiter:   opts.Limiter,
		sessionID: opts.SessionID,
		timeout:   opts.Timeout,
	}
}

// Submit records one interaction in the background and returns immediately.
//
// The goroutine runs to completion regardless of caller navigation; a result
// arriving after the owning session is gone is simply discarded.
func (s *Submitter) Submit(clipID uuid.UUID, action models.ActionType, watchDurationMs *int) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		if err := s.limiter.Wait(ctx); err != nil {
			s.logger.Warnf("interaction %s for clip %s dropped: %v", action, clipID, err)
			return
		}

		req := models.InteractionRequest{
			ClipID:          clipID,
			Action:          action,
			WatchDurationMs: watchDurationMs,
			SessionID:       s.sessionID,
		}
		if _, err := s.gw.SubmitInteraction(ctx, req); err != nil {
			s.logger.Warnf("failed to submit %s for clip %s: %v", action, clipID, err)
		}
	}()
}

// SessionID returns the fixed identifier attached to every submission.
func (s *Submitter) SessionID() uuid.UUID {
	return s.sessionID
}

// Wait blocks until all in-flight submissions finish. Called before process
// exit so trailing interactions are not lost.
func (s *Submitter) Wait() {
	s.wg.Wait()
}
