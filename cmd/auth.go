package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/byetz/internal/session"
	"github.com/desertthunder/byetz/internal/shared"
	"github.com/urfave/cli/v3"
)

// newAuthSession builds an auth session over the runner's gateway and store.
func (r *Runner) newAuthSession() (*session.AuthSession, error) {
	if r.tokens == nil {
		return nil, fmt.Errorf("%w: credential store unavailable, run setup first", shared.ErrMissingConfig)
	}

	auth := session.NewAuthSession(r.client, r.tokens, r.logger)
	auth.CheckExistingAuth()
	return auth, nil
}

// AuthLogin exchanges a Plex token for a bearer token and persists both.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	auth, err := r.newAuthSession()
	if err != nil {
		return err
	}

	if auth.State() == session.StateAuthenticated {
		return r.writePlain("Already logged in. Run `byetz auth logout` first to switch accounts.\n")
	}

	r.logger.Info("exchanging plex token")
	if err := auth.AuthenticateWithPlex(ctx, cmd.String("plex-token")); err != nil {
		return fmt.Errorf("%w: %s", err, auth.ErrorMessage())
	}

	r.writePlain("✓ Logged in as %s\n", auth.Username())
	if auth.State() == session.StateNeedsTasteProfile {
		r.writePlain("Next: run `byetz taste titles` and `byetz taste submit` to seed your feed.\n")
	}
	return nil
}

// AuthStatus shows the stored session state without a network call.
func (r *Runner) AuthStatus(ctx context.Context, cmd *cli.Command) error {
	auth, err := r.newAuthSession()
	if err != nil {
		return err
	}

	switch auth.State() {
	case session.StateAuthenticated:
		r.writePlain("✓ Logged in\n")
	default:
		r.writePlain("✗ Not logged in\n")
	}
	return nil
}

// AuthLogout clears stored credentials.
func (r *Runner) AuthLogout(ctx context.Context, cmd *cli.Command) error {
	auth, err := r.newAuthSession()
	if err != nil {
		return err
	}

	auth.Logout()
	return r.writePlain("✓ Logged out\n")
}
