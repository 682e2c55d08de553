package cli

import "fmt"

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *Context) error {
	t := ctx.Session.Tracker()
	due := t.HabitsForToday()

	if len(due) == 0 {
		fmt.Println("Nothing scheduled today. Add a habit with 'ritual habit add'.")
		return nil
	}

	fmt.Printf("Today: %s\n\n", FormatProgressBar(float64(t.CompletionPercentage())/100, 20))
	for _, h := range due {
		fmt.Println(FormatHabitLine(h, t.IsCompletedToday(h.ID)))
	}

	if reminders := t.SmartReminders(); len(reminders) > 0 {
		fmt.Println()
		for _, r := range reminders {
			fmt.Printf("• %s\n", r)
		}
	}

	if recent, ok := ctx.Session.RecentlyUnlocked(); ok {
		fmt.Printf("\nRecently unlocked: %s\n", recent.Title)
	}

	return nil
}

type RemindersCmd struct{}

func (c *RemindersCmd) Run(ctx *Context) error {
	reminders := ctx.Session.Tracker().SmartReminders()
	if len(reminders) == 0 {
		fmt.Println("No reminders right now.")
		return nil
	}

	for _, r := range reminders {
		fmt.Printf("• %s\n", r)
	}
	return nil
}
