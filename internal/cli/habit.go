package cli

import (
	"fmt"

	"github.com/ritual-app/ritual/internal/icons"
	"github.com/ritual-app/ritual/internal/models"
	"github.com/ritual-app/ritual/internal/tracker"
	"github.com/ritual-app/ritual/internal/utils"
)

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Add a new habit."`
	List   HabitListCmd   `cmd:"" help:"List habits."`
	Edit   HabitEditCmd   `cmd:"" help:"Edit an existing habit."`
	Delete HabitDeleteCmd `cmd:"" help:"Delete a habit."`
	Done   HabitDoneCmd   `cmd:"" help:"Toggle today's completion for a habit."`
	Show   HabitShowCmd   `cmd:"" help:"Show a habit's details and history."`
}

type HabitAddCmd struct {
	Name        string `arg:"" help:"Habit name."`
	Description string `help:"What the habit involves." short:"d"`
	Frequency   string `help:"daily, weekly, or monthly." default:"daily" short:"f"`
	Color       string `help:"Display color (hex)." short:"c"`
	Icon        string `help:"Icon key." short:"i"`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	// The store treats a blank name as a no-op, so reject it here.
	if c.Name == "" {
		return fmt.Errorf("habit name cannot be empty")
	}

	frequency, err := models.ParseFrequency(c.Frequency)
	if err != nil {
		return err
	}

	if _, ok := ctx.Session.Tracker().HabitByName(c.Name); ok {
		return fmt.Errorf("habit with name %q already exists", c.Name)
	}

	habit, err := ctx.Session.AddHabit(c.Name, c.Description, frequency, c.Color, c.Icon)
	if err != nil {
		return err
	}

	fmt.Printf("Added habit: %s (%s)\n", habit.Name, habit.Frequency)
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	habits := ctx.Session.Tracker().Habits()
	if len(habits) == 0 {
		fmt.Println("No habits yet. Add one with 'ritual habit add'.")
		return nil
	}

	for _, h := range habits {
		fmt.Println(FormatHabitLine(h, ctx.Session.Tracker().IsCompletedToday(h.ID)))
	}
	return nil
}

type HabitEditCmd struct {
	Habit       string  `arg:"" help:"Habit id or name."`
	Name        *string `help:"New name."`
	Description *string `help:"New description." short:"d"`
	Frequency   *string `help:"New frequency." short:"f"`
	Color       *string `help:"New display color." short:"c"`
	Icon        *string `help:"New icon key." short:"i"`
}

func (c *HabitEditCmd) Run(ctx *Context) error {
	h, err := findHabit(ctx, c.Habit)
	if err != nil {
		return err
	}

	update := tracker.HabitUpdate{
		Name:        c.Name,
		Description: c.Description,
		Color:       c.Color,
		Icon:        c.Icon,
	}
	if c.Frequency != nil {
		frequency, err := models.ParseFrequency(*c.Frequency)
		if err != nil {
			return err
		}
		update.Frequency = &frequency
	}

	if err := ctx.Session.EditHabit(h.ID, update); err != nil {
		return err
	}

	fmt.Println("Habit updated.")
	return nil
}

type HabitDeleteCmd struct {
	Habit string `arg:"" help:"Habit id or name."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	h, err := findHabit(ctx, c.Habit)
	if err != nil {
		return err
	}

	if err := ctx.Session.DeleteHabit(h.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted habit: %s\n", h.Name)
	return nil
}

type HabitDoneCmd struct {
	Habit string `arg:"" help:"Habit id or name."`
}

func (c *HabitDoneCmd) Run(ctx *Context) error {
	h, err := findHabit(ctx, c.Habit)
	if err != nil {
		return err
	}

	updated, err := ctx.Session.ToggleHabit(h.ID)
	if err != nil {
		return err
	}

	if ctx.Session.Tracker().IsCompletedToday(h.ID) {
		fmt.Printf("Completed %q. Streak: %d\n", updated.Name, updated.Streak)
	} else {
		fmt.Printf("Unmarked %q. Streak: %d\n", updated.Name, updated.Streak)
	}
	return nil
}

type HabitShowCmd struct {
	Habit string `arg:"" help:"Habit id or name."`
}

func (c *HabitShowCmd) Run(ctx *Context) error {
	h, err := findHabit(ctx, c.Habit)
	if err != nil {
		return err
	}

	fmt.Printf("%s %s\n", icons.Glyph(h.Icon), h.Name)
	if h.Description != "" {
		fmt.Printf("  %s\n", h.Description)
	}
	fmt.Printf("  Frequency:  %s\n", h.Frequency)
	fmt.Printf("  Created:    %s\n", utils.FormatDay(h.CreatedAt))
	fmt.Printf("  Streak:     %d\n", h.Streak)
	fmt.Printf("  This week:  %d completions\n", ctx.Session.Tracker().CompletionsThisWeek(h.ID))
	fmt.Printf("  This month: %d completions\n", ctx.Session.Tracker().CompletionsThisMonth(h.ID))
	fmt.Printf("  All time:   %d completions\n", len(h.CompletedDates))

	if len(h.CompletedDates) > 0 {
		fmt.Println("  Recent days:")
		start := len(h.CompletedDates) - 7
		if start < 0 {
			start = 0
		}
		for _, d := range h.CompletedDates[start:] {
			fmt.Printf("    %s\n", utils.FormatDay(d))
		}
	}
	return nil
}
