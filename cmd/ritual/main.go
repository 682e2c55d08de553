package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ritual-app/ritual/internal/celebrate"
	"github.com/ritual-app/ritual/internal/cli"
	"github.com/ritual-app/ritual/internal/constants"
	"github.com/ritual-app/ritual/internal/errors"
	"github.com/ritual-app/ritual/internal/logger"
	"github.com/ritual-app/ritual/internal/session"
	"github.com/ritual-app/ritual/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage file path. A .json extension selects the JSON backend, anything else uses SQLite." type:"string" default:"~/.config/ritual/ritual.db"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init         cli.InitCmd         `cmd:"" help:"Initialize ritual storage."`
	Tui          cli.TuiCmd          `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Today        cli.TodayCmd        `cmd:"" help:"Show today's habits and progress."`
	Reminders    cli.RemindersCmd    `cmd:"" help:"Show smart reminders."`
	Habit        cli.HabitCmd        `cmd:"" help:"Manage habits and habit tracking."`
	Mood         cli.MoodCmd         `cmd:"" help:"Log and review daily moods."`
	Achievements cli.AchievementsCmd `cmd:"" help:"Show unlocked and in-progress achievements."`
	Recommend    cli.RecommendCmd    `cmd:"" help:"Suggest new habits based on your history and mood."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Habit tracker with streaks, moods, and achievements"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	path := expandHome(CLI.Config)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(path),
	}); err != nil {
		errors.Fatal(err)
	}

	var backend storage.Backend
	if strings.HasSuffix(path, ".json") {
		backend = storage.NewJSONStore(path)
	} else {
		backend = storage.NewSQLiteStore(path)
	}

	sess := session.New(backend)
	sess.OnMilestone(celebrate.StreakMilestone)
	sess.OnUnlock(celebrate.AchievementUnlocked)

	appCtx := &cli.Context{
		Backend: backend,
		Session: sess,
	}

	// Init creates the storage itself; every other command needs it loaded.
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := backend.Load(); err != nil {
			errors.Fatal(err)
		}
		defer backend.Close()

		if err := sess.Load(); err != nil {
			errors.Fatal(err)
		}
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
