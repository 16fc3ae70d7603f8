package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/byetz/internal/session"
	"github.com/desertthunder/byetz/internal/shared"
	"github.com/desertthunder/byetz/internal/tasks"
	"github.com/desertthunder/byetz/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive terminal feed browser.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	auth, err := r.newAuthSession()
	if err != nil {
		return err
	}
	if auth.State() == session.StateUnauthenticated {
		return fmt.Errorf("%w: run `byetz auth login` first", shared.ErrNotAuthenticated)
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger("./tmp/byetz-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	submitter := tasks.NewSubmitter(r.client, tasks.SubmitterOpts{Logger: fileLogger})
	defer submitter.Wait()

	feed := session.NewFeedSession(r.client, submitter, session.FeedOpts{Context: ctx, Logger: fileLogger})
	taste := session.NewTasteProfileSession(r.client, fileLogger)
	profile := session.NewProfileSession(r.client, fileLogger)

	model := ui.NewModel(ctx, auth, feed, taste, profile)
	p := tea.NewProgram(model)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
