// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Initialize database and run migrations",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
		},
		Action: r.Setup,
	}
}

// authCommand handles login, logout, and session inspection
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Manage the authenticated session",
		Commands: []*cli.Command{
			{
				Name:  "login",
				Usage: "Exchange a Plex token for an access token",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "plex-token",
						Aliases:  []string{"t"},
						Usage:    "Plex account token to exchange",
						Required: true,
					},
				},
				Action: r.AuthLogin,
			},
			{
				Name:   "status",
				Usage:  "Show the current session state",
				Action: r.AuthStatus,
			},
			{
				Name:   "logout",
				Usage:  "Clear stored credentials",
				Action: r.AuthLogout,
			},
		},
	}
}

// feedCommand handles non-interactive feed access
func feedCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "feed",
		Usage: "Clip feed operations",
		Commands: []*cli.Command{
			{
				Name:  "page",
				Usage: "Fetch one page of the feed",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Number of clips to fetch",
						Value: 20,
					},
					&cli.IntFlag{
						Name:  "offset",
						Usage: "Feed offset to start from",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.FeedPage,
			},
		},
	}
}

// tasteCommand handles one-time taste-profile setup
func tasteCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "taste",
		Usage: "Taste profile setup",
		Commands: []*cli.Command{
			{
				Name:  "titles",
				Usage: "List candidate titles",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.TasteTitles,
			},
			{
				Name:  "submit",
				Usage: "Submit selected titles by media id",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:     "id",
						Usage:    "Media id to select (repeatable)",
						Required: true,
					},
				},
				Action: r.TasteSubmit,
			},
		},
	}
}

// settingsCommand handles the preference record
func settingsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "settings",
		Usage: "View and edit preferences",
		Commands: []*cli.Command{
			{
				Name:  "show",
				Usage: "Show the current preference record",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.SettingsShow,
			},
			{
				Name:  "set",
				Usage: "Update preference fields",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "quality",
						Usage: "Clip quality (480p, 720p, 1080p)",
					},
					&cli.StringFlag{
						Name:  "maturity",
						Usage: "Content maturity filter",
					},
					&cli.StringFlag{
						Name:  "subtitles",
						Usage: "Subtitle overlay (on/off)",
					},
					&cli.StringFlag{
						Name:  "notifications",
						Usage: "Notifications (on/off)",
					},
				},
				Action: r.SettingsSet,
			},
		},
	}
}

// profileCommand handles the account summary and saved clips
func profileCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "profile",
		Usage: "Account summary and saved clips",
		Commands: []*cli.Command{
			{
				Name:  "show",
				Usage: "Show the account summary",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.ProfileShow,
			},
			{
				Name:  "saved",
				Usage: "List saved clips",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.StringFlag{
						Name:  "export",
						Usage: "Export format (csv, markdown)",
					},
					&cli.StringFlag{
						Name:  "output",
						Aliases: []string{"o"},
						Usage: "Export file path",
					},
				},
				Action: r.ProfileSaved,
			},
		},
	}
}

// libraryCommand handles Plex library processing
func libraryCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "library",
		Usage: "Plex library processing",
		Commands: []*cli.Command{
			{
				Name:  "status",
				Usage: "Show server and library processing state",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.LibraryStatus,
			},
			{
				Name:   "discover",
				Usage:  "Discover Plex libraries",
				Action: r.LibraryDiscover,
			},
			{
				Name:   "process",
				Usage:  "Start processing enabled libraries",
				Action: r.LibraryProcess,
			},
			{
				Name:   "rescan",
				Usage:  "Rescan processed libraries",
				Action: r.LibraryRescan,
			},
			{
				Name:  "toggle",
				Usage: "Enable or disable one library",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "id",
						Usage:    "Library id",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "enable",
						Usage: "Enable instead of disable",
					},
				},
				Action: r.LibraryToggle,
			},
		},
	}
}

// tuiCommand launches the interactive feed browser
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "browse",
		Aliases: []string{"tui"},
		Usage:   "Browse the feed interactively",
		Action:  r.TUI,
	}
}
