package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"
)

// LibraryStatus prints the Plex server and library processing state.
func (r *Runner) LibraryStatus(ctx context.Context, cmd *cli.Command) error {
	status, err := r.client.LibraryStatus(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch library status: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(status, true)
	}

	r.writePlainHeader(status.ServerName)
	if status.ServerReachable {
		r.writePlain("Server: ✓ reachable\n\n")
	} else {
		r.writePlain("Server: ✗ unreachable\n\n")
	}

	for _, lib := range status.Libraries {
		state := "disabled"
		if lib.Enabled {
			state = fmt.Sprintf("%d/%d (%.1f%%)", lib.ProcessedItems, lib.TotalItems, lib.ProcessingPercentage)
		}
		r.writePlain("%-24s %-8s %s\n", lib.LibraryTitle, lib.LibraryType, state)
		r.writePlain("  id: %s\n", lib.ID)
	}
	return nil
}

// LibraryDiscover asks the backend to discover Plex libraries.
func (r *Runner) LibraryDiscover(ctx context.Context, cmd *cli.Command) error {
	if err := r.client.DiscoverLibraries(ctx); err != nil {
		return fmt.Errorf("failed to discover libraries: %w", err)
	}
	return r.writePlain("✓ Discovery started\n")
}

// LibraryProcess asks the backend to start processing enabled libraries.
func (r *Runner) LibraryProcess(ctx context.Context, cmd *cli.Command) error {
	if err := r.client.ProcessLibraries(ctx); err != nil {
		return fmt.Errorf("failed to start processing: %w", err)
	}
	return r.writePlain("✓ Processing started\n")
}

// LibraryRescan asks the backend to rescan processed libraries.
func (r *Runner) LibraryRescan(ctx context.Context, cmd *cli.Command) error {
	if err := r.client.TriggerRescan(ctx); err != nil {
		return fmt.Errorf("failed to trigger rescan: %w", err)
	}
	return r.writePlain("✓ Rescan started\n")
}

// LibraryToggle enables or disables one library section.
func (r *Runner) LibraryToggle(ctx context.Context, cmd *cli.Command) error {
	libraryID, err := uuid.Parse(cmd.String("id"))
	if err != nil {
		return fmt.Errorf("invalid library id: %w", err)
	}

	enabled := cmd.Bool("enable")
	if err := r.client.ToggleLibrary(ctx, libraryID, enabled); err != nil {
		return fmt.Errorf("failed to toggle library: %w", err)
	}

	if enabled {
		return r.writePlain("✓ Library enabled\n")
	}
	return r.writePlain("✓ Library disabled\n")
}
