package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/desertthunder/byetz/internal/shared"
	"github.com/urfave/cli/v3"
)

// FeedPage fetches one page of the feed and prints it.
func (r *Runner) FeedPage(ctx context.Context, cmd *cli.Command) error {
	limit := cmd.Int("limit")
	offset := cmd.Int("offset")

	r.logger.Info("fetching feed page", "limit", limit, "offset", offset)
	page, err := r.client.Feed(ctx, limit, offset)
	if err != nil {
		return fmt.Errorf("failed to fetch feed: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(page, true)
	}

	r.writePlainHeader(fmt.Sprintf("Feed (offset %d)", offset))
	for i, clip := range page.Clips {
		line := fmt.Sprintf("%2d. %s [%s]", offset+i+1, clip.Title, shared.FormatDurationMS(clip.DurationMs))
		if clip.SeasonEpisode != "" {
			line = fmt.Sprintf("%s (%s)", line, clip.SeasonEpisode)
		}
		if len(clip.GenreTags) > 0 {
			line = fmt.Sprintf("%s • %s", line, strings.Join(clip.GenreTags, ", "))
		}
		r.writePlain("%s\n", line)
	}
	if page.HasMore {
		r.writePlain("\nMore clips available: --offset %d\n", offset+len(page.Clips))
	}
	return nil
}
