package cli

import (
	"fmt"

	"github.com/ritual-app/ritual/internal/icons"
	"github.com/ritual-app/ritual/internal/utils"
)

type AchievementsCmd struct {
	Unlocked bool `help:"Show only unlocked achievements."`
	Locked   bool `help:"Show only locked achievements."`
}

func (c *AchievementsCmd) Run(ctx *Context) error {
	all := ctx.Session.Achievements()
	if c.Unlocked {
		all = ctx.Session.Unlocked()
	} else if c.Locked {
		all = ctx.Session.InProgress()
	}

	if len(all) == 0 {
		fmt.Println("Nothing to show.")
		return nil
	}

	for _, a := range all {
		if a.Unlocked() {
			fmt.Printf("%s %s — unlocked %s\n", icons.Glyph(a.Icon), a.Title, utils.FormatDay(*a.UnlockedAt))
		} else {
			fmt.Printf("%s %s  %s\n", icons.Glyph(a.Icon), a.Title, FormatProgressBar(a.Progress, 10))
		}
		fmt.Printf("   %s\n", a.Description)
	}
	return nil
}
