package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/byetz/internal/session"
	"github.com/urfave/cli/v3"
)

// TasteTitles lists the candidate titles for taste-profile setup.
func (r *Runner) TasteTitles(ctx context.Context, cmd *cli.Command) error {
	titles, err := r.client.TasteProfileTitles(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch titles: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(titles, true)
	}

	r.writePlainHeader("Taste Profile Titles")
	for _, title := range titles {
		line := fmt.Sprintf("%-14s %s", title.MediaID, title.Title)
		if title.Year != nil {
			line = fmt.Sprintf("%s (%d)", line, *title.Year)
		}
		r.writePlain("%s\n", line)
	}
	r.writePlain("\nSelect at least %d with `byetz taste submit --id <media-id> ...`\n", session.MinSelections)
	return nil
}

// TasteSubmit selects titles by media id and submits the taste profile.
func (r *Runner) TasteSubmit(ctx context.Context, cmd *cli.Command) error {
	taste := session.NewTasteProfileSession(r.client, r.logger)
	taste.LoadTitles(ctx)
	if len(taste.Titles()) == 0 {
		return fmt.Errorf("no candidate titles available")
	}

	for _, id := range cmd.StringSlice("id") {
		if !taste.IsSelected(id) {
			taste.ToggleSelection(id)
		}
	}

	if err := taste.Submit(ctx); err != nil {
		return fmt.Errorf("failed to submit taste profile: %w", err)
	}

	return r.writePlain("✓ Taste profile submitted\n")
}
