package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/byetz/internal/formatter"
	"github.com/desertthunder/byetz/internal/shared"
	"github.com/urfave/cli/v3"
)

// ProfileShow prints the account summary.
func (r *Runner) ProfileShow(ctx context.Context, cmd *cli.Command) error {
	profile, err := r.client.Profile(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch profile: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(profile, true)
	}

	r.writePlainHeader(profile.PlexUsername)
	r.writePlain("Email:          %s\n", profile.PlexEmail)
	r.writePlain("Likes:          %d\n", profile.TotalLikes)
	r.writePlain("Saves:          %d\n", profile.TotalSaves)
	r.writePlain("Clips watched:  %d\n", profile.TotalClipsWatched)
	return nil
}

// ProfileSaved lists or exports the saved clips.
func (r *Runner) ProfileSaved(ctx context.Context, cmd *cli.Command) error {
	clips, err := r.client.SavedClips(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch saved clips: %w", err)
	}

	switch cmd.String("export") {
	case "csv":
		result, err := formatter.WriteCSVExport(clips, cmd.String("output"))
		if err != nil {
			return err
		}
		return r.writePlain("✓ Exported %d clips to %s\n", len(clips), result.ClipsFile)
	case "markdown":
		written, err := formatter.WriteMarkdownExport("Saved Clips", clips, cmd.String("output"))
		if err != nil {
			return err
		}
		return r.writePlain("✓ Exported %d clips to %s\n", len(clips), written)
	case "":
	default:
		return fmt.Errorf("unknown export format %q (want csv or markdown)", cmd.String("export"))
	}

	if cmd.Bool("json") {
		return r.writeJSON(clips, true)
	}

	r.writePlainHeader("Saved Clips")
	for i, clip := range clips {
		r.writePlain("%2d. %s [%s]\n", i+1, clip.Title, shared.FormatDurationMS(clip.DurationMs))
	}
	if len(clips) == 0 {
		r.writePlain("No saved clips yet.\n")
	}
	return nil
}
