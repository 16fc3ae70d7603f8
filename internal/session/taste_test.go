package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/desertthunder/byetz/internal/models"
	"github.com/desertthunder/byetz/internal/shared"
	tu "github.com/desertthunder/byetz/internal/testing"
)

func makeTitles(n int) []models.TasteProfileTitle {
	titles := make([]models.TasteProfileTitle, n)
	for i := range titles {
		titles[i] = models.TasteProfileTitle{
			MediaID:   fmt.Sprintf("media-%02d", i),
			Title:     fmt.Sprintf("Title %d", i),
			MediaType: "movie",
		}
	}
	return titles
}

func newTestTaste(fake *tu.FakeGateway, titles []models.TasteProfileTitle) *TasteProfileSession {
	fake.TitlesFunc = func(ctx context.Context) ([]models.TasteProfileTitle, error) {
		return titles, nil
	}
	taste := NewTasteProfileSession(fake, shared.NewLogger(io.Discard))
	taste.LoadTitles(context.Background())
	return taste
}

func TestTasteProfileSession(t *testing.T) {
	t.Run("toggle flips membership", func(t *testing.T) {
		taste := newTestTaste(&tu.FakeGateway{}, makeTitles(20))

		taste.ToggleSelection("media-03")
		if !taste.IsSelected("media-03") {
			t.Error("expected media-03 selected after toggle")
		}
		if taste.SelectedCount() != 1 {
			t.Errorf("expected 1 selection, got %d", taste.SelectedCount())
		}

		taste.ToggleSelection("media-03")
		if taste.IsSelected("media-03") {
			t.Error("expected media-03 deselected after second toggle")
		}
		if taste.SelectedCount() != 0 {
			t.Errorf("expected 0 selections, got %d", taste.SelectedCount())
		}
	})

	t.Run("under-selection is rejected locally", func(t *testing.T) {
		fake := &tu.FakeGateway{}
		taste := newTestTaste(fake, makeTitles(20))

		for i := 0; i < MinSelections-1; i++ {
			taste.ToggleSelection(fmt.Sprintf("media-%02d", i))
		}

		err := taste.Submit(context.Background())
		if !errors.Is(err, shared.ErrTooFewSelections) {
			t.Errorf("expected ErrTooFewSelections, got %v", err)
		}
		if len(fake.Selections) != 0 {
			t.Errorf("expected no gateway call, got %d", len(fake.Selections))
		}
	})

	t.Run("submit sends the subset in title order", func(t *testing.T) {
		fake := &tu.FakeGateway{}
		taste := newTestTaste(fake, makeTitles(20))

		// Toggle out of order; the payload must still follow title order.
		picked := []string{"media-15", "media-02", "media-11", "media-04", "media-19",
			"media-00", "media-08", "media-13", "media-06", "media-17", "media-09"}
		for _, id := range picked {
			taste.ToggleSelection(id)
		}

		if err := taste.Submit(context.Background()); err != nil {
			t.Fatal(err)
		}

		if len(fake.Selections) != 1 {
			t.Fatalf("expected 1 submission, got %d", len(fake.Selections))
		}
		sent := fake.Selections[0].Selections
		if len(sent) != len(picked) {
			t.Fatalf("expected %d titles in payload, got %d", len(picked), len(sent))
		}
		for i := 1; i < len(sent); i++ {
			if sent[i-1].MediaID >= sent[i].MediaID {
				t.Fatalf("payload out of title order at %d: %s before %s",
					i, sent[i-1].MediaID, sent[i].MediaID)
			}
		}
	})

	t.Run("success clears the selection set", func(t *testing.T) {
		taste := newTestTaste(&tu.FakeGateway{}, makeTitles(20))
		for i := 0; i < MinSelections; i++ {
			taste.ToggleSelection(fmt.Sprintf("media-%02d", i))
		}

		if err := taste.Submit(context.Background()); err != nil {
			t.Fatal(err)
		}

		if taste.SelectedCount() != 0 {
			t.Errorf("expected selection cleared after submit, got %d", taste.SelectedCount())
		}
	})

	t.Run("gateway failure keeps the selection", func(t *testing.T) {
		fake := &tu.FakeGateway{}
		fake.SubmitTasteFunc = func(ctx context.Context, selection models.TasteProfileSelection) error {
			return shared.ErrServer
		}
		taste := newTestTaste(fake, makeTitles(20))
		for i := 0; i < MinSelections; i++ {
			taste.ToggleSelection(fmt.Sprintf("media-%02d", i))
		}

		err := taste.Submit(context.Background())
		if !errors.Is(err, shared.ErrServer) {
			t.Errorf("expected ErrServer, got %v", err)
		}
		if taste.SelectedCount() != MinSelections {
			t.Errorf("expected selection kept for retry, got %d", taste.SelectedCount())
		}
	})

	t.Run("load failure leaves titles empty", func(t *testing.T) {
		fake := &tu.FakeGateway{}
		fake.TitlesFunc = func(ctx context.Context) ([]models.TasteProfileTitle, error) {
			return nil, shared.ErrNetwork
		}
		taste := NewTasteProfileSession(fake, shared.NewLogger(io.Discard))

		taste.LoadTitles(context.Background())

		if len(taste.Titles()) != 0 {
			t.Error("expected no titles after failed load")
		}
		if taste.IsLoading() {
			t.Error("loading flag should reset after failure")
		}
	})
}
