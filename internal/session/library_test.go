package session

import (
	"context"
	"io"
	"testing"

	"github.com/desertthunder/byetz/internal/models"
	"github.com/desertthunder/byetz/internal/shared"
	tu "github.com/desertthunder/byetz/internal/testing"
	"github.com/google/uuid"
)

func TestLibrarySession(t *testing.T) {
	t.Run("status undefined before first load", func(t *testing.T) {
		session := NewLibrarySession(&tu.FakeGateway{}, shared.NewLogger(io.Discard))

		if _, ok := session.Status(); ok {
			t.Error("expected no status before first load")
		}
	})

	t.Run("load applies the status", func(t *testing.T) {
		fake := &tu.FakeGateway{}
		fake.LibraryStatusFunc = func(ctx context.Context) (models.LibraryStatus, error) {
			return models.LibraryStatus{
				ServerName:      "den",
				ServerReachable: true,
				Libraries:       []models.LibraryDetail{{LibraryTitle: "Movies", Enabled: true}},
			}, nil
		}
		session := NewLibrarySession(fake, shared.NewLogger(io.Discard))

		session.LoadStatus(context.Background())

		status, ok := session.Status()
		if !ok {
			t.Fatal("expected a status after load")
		}
		if status.ServerName != "den" || len(status.Libraries) != 1 {
			t.Errorf("unexpected status: %+v", status)
		}
	})

	t.Run("failed load keeps the prior view", func(t *testing.T) {
		fake := &tu.FakeGateway{}
		fake.LibraryStatusFunc = func(ctx context.Context) (models.LibraryStatus, error) {
			return models.LibraryStatus{ServerName: "den"}, nil
		}
		session := NewLibrarySession(fake, shared.NewLogger(io.Discard))
		session.LoadStatus(context.Background())

		fake.LibraryStatusFunc = func(ctx context.Context) (models.LibraryStatus, error) {
			return models.LibraryStatus{}, shared.ErrNetwork
		}
		session.LoadStatus(context.Background())

		status, ok := session.Status()
		if !ok || status.ServerName != "den" {
			t.Errorf("expected prior status kept, got %+v (%t)", status, ok)
		}
	})

	t.Run("toggle reloads status on success", func(t *testing.T) {
		fake := &tu.FakeGateway{}
		loads := 0
		fake.LibraryStatusFunc = func(ctx context.Context) (models.LibraryStatus, error) {
			loads++
			return models.LibraryStatus{}, nil
		}
		session := NewLibrarySession(fake, shared.NewLogger(io.Discard))

		session.Toggle(context.Background(), uuid.New(), false)

		if loads != 1 {
			t.Errorf("expected one status reload after toggle, got %d", loads)
		}
	})

	t.Run("failed toggle skips the reload", func(t *testing.T) {
		fake := &tu.FakeGateway{}
		loads := 0
		fake.LibraryStatusFunc = func(ctx context.Context) (models.LibraryStatus, error) {
			loads++
			return models.LibraryStatus{}, nil
		}
		fake.ToggleLibraryFunc = func(ctx context.Context, libraryID uuid.UUID, enabled bool) error {
			return shared.ErrServer
		}
		session := NewLibrarySession(fake, shared.NewLogger(io.Discard))

		session.Toggle(context.Background(), uuid.New(), true)

		if loads != 0 {
			t.Errorf("expected no reload after failed toggle, got %d", loads)
		}
	})
}
