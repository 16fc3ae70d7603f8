package tasks

import (
	"context"
	"io"
	"testing"

	"github.com/desertthunder/byetz/internal/models"
	"github.com/desertthunder/byetz/internal/shared"
	tu "github.com/desertthunder/byetz/internal/testing"
	"github.com/google/uuid"
)

func newTestSubmitter(gw InteractionGateway) *Submitter {
	return NewSubmitter(gw, SubmitterOpts{Logger: shared.NewLogger(io.Discard)})
}

func TestSubmitter(t *testing.T) {
	t.Run("delivers with the session id attached", func(t *testing.T) {
		fake := &tu.FakeGateway{}
		sub := newTestSubmitter(fake)
		clipID := uuid.New()

		sub.Submit(clipID, models.ActionLike, nil)
		sub.Wait()

		got := fake.SubmittedInteractions()
		if len(got) != 1 {
			t.Fatalf("expected 1 interaction, got %d", len(got))
		}
		if got[0].ClipID != clipID {
			t.Errorf("expected clip %s, got %s", clipID, got[0].ClipID)
		}
		if got[0].Action != models.ActionLike {
			t.Errorf("expected like, got %s", got[0].Action)
		}
		if got[0].SessionID != sub.SessionID() {
			t.Error("expected the submitter's session id on the interaction")
		}
	})

	t.Run("carries the watched duration", func(t *testing.T) {
		fake := &tu.FakeGateway{}
		sub := newTestSubmitter(fake)
		watched := 4200

		sub.Submit(uuid.New(), models.ActionSkip, &watched)
		sub.Wait()

		got := fake.SubmittedInteractions()
		if len(got) != 1 {
			t.Fatalf("expected 1 interaction, got %d", len(got))
		}
		if got[0].WatchDurationMs == nil || *got[0].WatchDurationMs != watched {
			t.Errorf("expected watch duration %d, got %v", watched, got[0].WatchDurationMs)
		}
	})

	t.Run("wait drains all in-flight submissions", func(t *testing.T) {
		fake := &tu.FakeGateway{}
		sub := newTestSubmitter(fake)

		for i := 0; i < 8; i++ {
			sub.Submit(uuid.New(), models.ActionWatchComplete, nil)
		}
		sub.Wait()

		if got := len(fake.SubmittedInteractions()); got != 8 {
			t.Errorf("expected 8 interactions after Wait, got %d", got)
		}
	})

	t.Run("gateway failure is swallowed", func(t *testing.T) {
		fake := &tu.FakeGateway{}
		fake.SubmitFunc = func(ctx context.Context, interaction models.InteractionRequest) (models.InteractionResponse, error) {
			return models.InteractionResponse{}, shared.ErrServer
		}
		sub := newTestSubmitter(fake)

		sub.Submit(uuid.New(), models.ActionDislike, nil)
		sub.Wait() // must not panic or block

		if got := len(fake.SubmittedInteractions()); got != 1 {
			t.Errorf("expected the attempt recorded, got %d", got)
		}
	})

	t.Run("uses a provided session id", func(t *testing.T) {
		fake := &tu.FakeGateway{}
		sessionID := uuid.New()
		sub := NewSubmitter(fake, SubmitterOpts{
			Logger:    shared.NewLogger(io.Discard),
			SessionID: sessionID,
		})

		sub.Submit(uuid.New(), models.ActionSave, nil)
		sub.Wait()

		got := fake.SubmittedInteractions()
		if len(got) != 1 || got[0].SessionID != sessionID {
			t.Errorf("expected session id %s on the interaction, got %+v", sessionID, got)
		}
	})
}
