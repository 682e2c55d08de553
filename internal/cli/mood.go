package cli

import (
	"fmt"

	"github.com/ritual-app/ritual/internal/models"
	"github.com/ritual-app/ritual/internal/utils"
)

type MoodCmd struct {
	Set MoodSetCmd `cmd:"" help:"Record today's mood."`
	Log MoodLogCmd `cmd:"" help:"Show recent mood entries."`
}

type MoodSetCmd struct {
	Mood string `arg:"" help:"happy, neutral, sad, excited, or stressed."`
	Note string `help:"Optional journal note." short:"n"`
}

func (c *MoodSetCmd) Run(ctx *Context) error {
	mood, err := models.ParseMood(c.Mood)
	if err != nil {
		return err
	}

	entry, err := ctx.Session.AddMood(mood, c.Note)
	if err != nil {
		return err
	}

	fmt.Printf("Mood for %s recorded: %s\n", utils.FormatDay(entry.Date), entry.Mood)
	return nil
}

type MoodLogCmd struct {
	Days int `help:"Lookback window in days." default:"7"`
}

func (c *MoodLogCmd) Run(ctx *Context) error {
	entries := ctx.Session.Tracker().MoodTrend(c.Days)
	if len(entries) == 0 {
		fmt.Printf("No moods recorded in the last %d days.\n", c.Days)
		return nil
	}

	for _, e := range entries {
		line := fmt.Sprintf("%s  %s", utils.FormatDay(e.Date), e.Mood)
		if e.Note != "" {
			line += "  — " + e.Note
		}
		fmt.Println(line)
	}
	return nil
}
