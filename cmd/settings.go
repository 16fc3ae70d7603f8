package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/byetz/internal/session"
	"github.com/urfave/cli/v3"
)

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

// SettingsShow prints the current preference record.
func (r *Runner) SettingsShow(ctx context.Context, cmd *cli.Command) error {
	settings, err := r.client.Settings(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch settings: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(settings, true)
	}

	r.writePlainHeader("Settings")
	r.writePlain("Clip quality:      %s\n", settings.ClipQuality)
	r.writePlain("Maturity filter:   %s\n", settings.ContentMaturityFilter)
	r.writePlain("Subtitle overlay:  %s\n", onOff(settings.SubtitleOverlay))
	r.writePlain("Notifications:     %s\n", onOff(settings.NotificationsEnabled))
	return nil
}

// SettingsSet updates preference fields and pushes the full record.
func (r *Runner) SettingsSet(ctx context.Context, cmd *cli.Command) error {
	sync := session.NewSettingsSync(r.client, session.SettingsOpts{
		Context: ctx,
		Logger:  r.logger,
	})
	sync.Load(ctx)

	changed := false
	if v := cmd.String("quality"); v != "" {
		sync.SetClipQuality(v)
		changed = true
	}
	if v := cmd.String("maturity"); v != "" {
		sync.SetContentMaturityFilter(v)
		changed = true
	}
	if v := cmd.String("subtitles"); v != "" {
		sync.SetSubtitleOverlay(v == "on")
		changed = true
	}
	if v := cmd.String("notifications"); v != "" {
		sync.SetNotificationsEnabled(v == "on")
		changed = true
	}

	if !changed {
		return r.writePlain("Nothing to change. Pass --quality, --maturity, --subtitles, or --notifications.\n")
	}

	if err := sync.Flush(); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return r.writePlain("✓ Settings saved\n")
}
