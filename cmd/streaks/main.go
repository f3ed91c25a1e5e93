package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/jmills-dev/streaks/internal/apperr"
	"github.com/jmills-dev/streaks/internal/cli"
	"github.com/jmills-dev/streaks/internal/cli/backups"
	"github.com/jmills-dev/streaks/internal/cli/system"
	"github.com/jmills-dev/streaks/internal/constants"
	"github.com/jmills-dev/streaks/internal/habits"
	"github.com/jmills-dev/streaks/internal/logger"
	"github.com/jmills-dev/streaks/internal/session"
	"github.com/jmills-dev/streaks/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage file path. A .json extension selects the JSON backend, anything else SQLite." type:"path" default:"~/.config/streaks/streaks.json"`
	Debug   bool   `help:"Enable debug logging."`

	Init   system.InitCmd   `cmd:"" help:"Initialize streaks storage."`
	Doctor system.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	Tui    system.TuiCmd    `cmd:"" help:"Launch the interactive TUI." default:"1"`

	Habit cli.HabitCmd `cmd:"" help:"Manage habits and completions."`
	Stats cli.StatsCmd `cmd:"" help:"Completion statistics and history."`

	Register cli.RegisterCmd `cmd:"" help:"Create the on-device account."`
	Login    cli.LoginCmd    `cmd:"" help:"Log in to the on-device account."`
	Logout   cli.LogoutCmd   `cmd:"" help:"Log out."`
	Whoami   cli.WhoamiCmd   `cmd:"" help:"Show the active session."`

	Backup struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage storage backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Habit tracker with streaks and completion history"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	// Pick the storage backend from the file extension.
	var kv storage.KV
	if strings.HasSuffix(CLI.Config, ".json") {
		kv = storage.NewJSONStore(CLI.Config)
	} else {
		kv = storage.NewSQLiteStore(CLI.Config)
	}

	ledger := habits.NewLedger(kv)
	appCtx := &cli.Context{
		KV:       kv,
		Store:    habits.NewStore(kv, ledger),
		Ledger:   ledger,
		Sessions: session.NewManager(kv),
	}

	// Load the store before running the command (init handles its own loading)
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := kv.Load(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	apperr.Fatal(ctx.Run(appCtx))
}
